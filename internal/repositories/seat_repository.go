package repositories

import (
	"database/sql"

	"seaboat-backend/internal/domain/models"
)

type SeatRepository struct {
	DB *sql.DB
}

// ListByTrip mengambil kursi satu trip sesuai urutan pembuatan (row-major).
func (r SeatRepository) ListByTrip(tripID int64) ([]models.Seat, error) {
	rows, err := r.DB.Query(`SELECT seat_id, trip_id, seat_number, is_available
		FROM seats WHERE trip_id = ? ORDER BY seat_id ASC`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Seat{}
	for rows.Next() {
		var s models.Seat
		if err := rows.Scan(&s.SeatID, &s.TripID, &s.SeatNumber, &s.IsAvailable); err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Create menyimpan satu kursi. Dipanggil berurutan per kursi oleh
// SeatService; tidak ada batch insert.
func (r SeatRepository) Create(s models.Seat) (int64, error) {
	res, err := r.DB.Exec(`INSERT INTO seats (trip_id, seat_number, is_available, created_at)
		VALUES (?, ?, ?, NOW())`,
		s.TripID, s.SeatNumber, s.IsAvailable)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// DeleteByTrip menghapus seluruh kursi satu trip dalam satu statement.
func (r SeatRepository) DeleteByTrip(tripID int64) (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM seats WHERE trip_id = ?`, tripID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// CountByTrip dipakai untuk tahu apakah trip sudah pernah di-generate.
func (r SeatRepository) CountByTrip(tripID int64) (int, error) {
	var n int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM seats WHERE trip_id = ?`, tripID).Scan(&n)
	return n, err
}
