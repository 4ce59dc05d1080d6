package repositories

import (
	"database/sql"
	"strings"

	"seaboat-backend/internal/domain"
	"seaboat-backend/internal/domain/models"
)

type BoatRepository struct {
	DB *sql.DB
}

// List mengambil kapal, opsional difilter per kategori layanan
// (seaboat / tiketboat / car-harbour). Kategori kosong = semua.
func (r BoatRepository) List(category string) ([]models.Boat, error) {
	query := `SELECT boat_id, boat_name, capacity, service_category, COALESCE(image_url,'')
		FROM boats`
	args := []any{}
	if strings.TrimSpace(category) != "" {
		query += ` WHERE service_category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY boat_name ASC`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Boat{}
	for rows.Next() {
		var b models.Boat
		if err := rows.Scan(&b.BoatID, &b.BoatName, &b.Capacity, &b.ServiceCategory, &b.ImageURL); err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BoatRepository) GetByID(id int64) (models.Boat, error) {
	var b models.Boat
	err := r.DB.QueryRow(`SELECT boat_id, boat_name, capacity, service_category, COALESCE(image_url,'')
		FROM boats WHERE boat_id = ?`, id).
		Scan(&b.BoatID, &b.BoatName, &b.Capacity, &b.ServiceCategory, &b.ImageURL)
	if err == sql.ErrNoRows {
		return b, domain.NotFoundError{Resource: "boat"}
	}
	return b, err
}

func (r BoatRepository) Create(b models.Boat) (int64, error) {
	res, err := r.DB.Exec(`INSERT INTO boats (boat_name, capacity, service_category, image_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, NOW(), NOW())`,
		b.BoatName, b.Capacity, b.ServiceCategory, nullIfEmpty(b.ImageURL))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r BoatRepository) Update(b models.Boat) error {
	res, err := r.DB.Exec(`UPDATE boats
		SET boat_name = ?, capacity = ?, service_category = ?, image_url = ?, updated_at = NOW()
		WHERE boat_id = ?`,
		b.BoatName, b.Capacity, b.ServiceCategory, nullIfEmpty(b.ImageURL), b.BoatID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "boat"}
	}
	return nil
}

func (r BoatRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM boats WHERE boat_id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "boat"}
	}
	return nil
}

// nullIfEmpty helps store optional strings without wiping existing data.
func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
