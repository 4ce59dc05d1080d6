package repositories

import (
	"database/sql"
	"strings"

	"seaboat-backend/internal/domain"
	"seaboat-backend/internal/domain/models"
)

type AgentRepository struct {
	DB *sql.DB
}

func (r AgentRepository) List() ([]models.Agent, error) {
	rows, err := r.DB.Query(`SELECT id, kode_agen, nama, COALESCE(email,''), role
		FROM agents ORDER BY nama ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Agent{}
	for rows.Next() {
		var a models.Agent
		if err := rows.Scan(&a.ID, &a.KodeAgen, &a.Nama, &a.Email, &a.Role); err != nil {
			return out, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetByKode mencari agen berdasarkan kode unik, dipakai resolusi agen
// saat admin membuat order.
func (r AgentRepository) GetByKode(kode string) (models.Agent, error) {
	var a models.Agent
	err := r.DB.QueryRow(`SELECT id, kode_agen, nama, COALESCE(email,''), role
		FROM agents WHERE kode_agen = ?`, kode).
		Scan(&a.ID, &a.KodeAgen, &a.Nama, &a.Email, &a.Role)
	if err == sql.ErrNoRows {
		return a, domain.NotFoundError{Resource: "agent"}
	}
	return a, err
}

func (r AgentRepository) Create(a models.Agent) (int64, error) {
	res, err := r.DB.Exec(`INSERT INTO agents (kode_agen, nama, email, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, NOW(), NOW())`,
		a.KodeAgen, a.Nama, nullIfEmpty(a.Email), a.Role)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, domain.ConflictError{Resource: "agent", Msg: "kode agen sudah dipakai"}
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r AgentRepository) Update(a models.Agent) error {
	res, err := r.DB.Exec(`UPDATE agents
		SET kode_agen = ?, nama = ?, email = ?, role = ?, updated_at = NOW()
		WHERE id = ?`,
		a.KodeAgen, a.Nama, nullIfEmpty(a.Email), a.Role, a.ID)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ConflictError{Resource: "agent", Msg: "kode agen sudah dipakai"}
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "agent"}
	}
	return nil
}

func (r AgentRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM agents WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "agent"}
	}
	return nil
}

// GetCredentials mengambil hash password untuk login.
func (r AgentRepository) GetCredentials(identity string) (models.Agent, string, error) {
	var (
		a    models.Agent
		hash string
	)
	err := r.DB.QueryRow(`SELECT id, kode_agen, nama, COALESCE(email,''), role, password_hash
		FROM agents WHERE kode_agen = ? OR email = ?`, identity, identity).
		Scan(&a.ID, &a.KodeAgen, &a.Nama, &a.Email, &a.Role, &hash)
	if err == sql.ErrNoRows {
		return a, "", domain.NotFoundError{Resource: "agent"}
	}
	return a, hash, err
}

// SetPassword menyimpan hash bcrypt; dipakai register.
func (r AgentRepository) SetPassword(id int64, hash string) error {
	_, err := r.DB.Exec(`UPDATE agents SET password_hash = ?, updated_at = NOW() WHERE id = ?`, hash, id)
	return err
}

// isDuplicateKey mendeteksi MySQL error 1062 tanpa bergantung pada tipe driver.
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
