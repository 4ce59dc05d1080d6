package repositories

import (
	"database/sql"
	"time"

	"seaboat-backend/internal/domain"
	"seaboat-backend/internal/domain/models"
	"seaboat-backend/internal/utils"
)

type TripRepository struct {
	DB *sql.DB
}

// List mengambil semua trip harian, terbaru dulu.
func (r TripRepository) List() ([]models.Trip, error) {
	rows, err := r.DB.Query(`
		SELECT t.trip_id, t.boat_id, b.boat_name, t.route_from, t.route_to,
		       DATE_FORMAT(t.trip_date, '%Y-%m-%d'), t.etd, COALESCE(t.remark,'')
		FROM trips t
		JOIN boats b ON b.boat_id = t.boat_id
		ORDER BY t.trip_date ASC, t.etd ASC, t.trip_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		var t models.Trip
		if err := rows.Scan(&t.TripID, &t.BoatID, &t.BoatName, &t.RouteFrom, &t.RouteTo, &t.TripDate, &t.ETD, &t.Remark); err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ListSchedules mengembalikan jadwal unik (boat+rute+etd) dengan jumlah hari,
// pengganti dedup yang dulu dihitung di layar Trips.
func (r TripRepository) ListSchedules() ([]models.TripSchedule, error) {
	rows, err := r.DB.Query(`
		SELECT MIN(t.trip_id), t.boat_id, b.boat_name, t.route_from, t.route_to,
		       t.etd, COALESCE(t.remark,''), COUNT(*)
		FROM trips t
		JOIN boats b ON b.boat_id = t.boat_id
		GROUP BY t.boat_id, b.boat_name, t.route_from, t.route_to, t.etd, t.remark
		ORDER BY b.boat_name ASC, t.etd ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TripSchedule{}
	for rows.Next() {
		var s models.TripSchedule
		if err := rows.Scan(&s.TripID, &s.BoatID, &s.BoatName, &s.RouteFrom, &s.RouteTo, &s.ETD, &s.Remark, &s.DayCount); err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// CreateSeries membuat trip harian untuk satu jadwal, satu baris per tanggal
// sejauh days ke depan. Tanggal mulai mengikuti t.TripDate bila diisi,
// selain itu hari ini. Insert berjalan dalam satu transaksi.
func (r TripRepository) CreateSeries(t models.Trip, days int) (int, error) {
	if days <= 0 {
		days = 30
	}

	start := time.Now()
	if t.TripDate != "" {
		d, err := utils.ParseDate(t.TripDate)
		if err != nil {
			return 0, domain.ValidationError{Field: "trip_date", Msg: "format tanggal tidak valid", Err: err}
		}
		start = d
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO trips (boat_id, route_from, route_to, trip_date, etd, remark, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	created := 0
	for i := 0; i < days; i++ {
		date := utils.FormatDate(start.AddDate(0, 0, i))
		if _, err := stmt.Exec(t.BoatID, t.RouteFrom, t.RouteTo, date, t.ETD, nullIfEmpty(t.Remark)); err != nil {
			return created, err
		}
		created++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return created, nil
}

func (r TripRepository) Update(t models.Trip) error {
	res, err := r.DB.Exec(`UPDATE trips
		SET boat_id = ?, route_from = ?, route_to = ?, etd = ?, remark = ?, updated_at = NOW()
		WHERE trip_id = ?`,
		t.BoatID, t.RouteFrom, t.RouteTo, t.ETD, nullIfEmpty(t.Remark), t.TripID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "trip"}
	}
	return nil
}

// DeleteSeries menghapus semua trip harian untuk satu jadwal
// (kapal + rute + jam), sesuai tombol "Hapus Semua" di layar Trips.
func (r TripRepository) DeleteSeries(boatID int64, routeFrom, routeTo, etd string) (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM trips
		WHERE boat_id = ? AND route_from = ? AND route_to = ? AND etd = ?`,
		boatID, routeFrom, routeTo, etd)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r TripRepository) GetByID(id int64) (models.Trip, error) {
	var t models.Trip
	err := r.DB.QueryRow(`
		SELECT t.trip_id, t.boat_id, b.boat_name, t.route_from, t.route_to,
		       DATE_FORMAT(t.trip_date, '%Y-%m-%d'), t.etd, COALESCE(t.remark,'')
		FROM trips t
		JOIN boats b ON b.boat_id = t.boat_id
		WHERE t.trip_id = ?`, id).
		Scan(&t.TripID, &t.BoatID, &t.BoatName, &t.RouteFrom, &t.RouteTo, &t.TripDate, &t.ETD, &t.Remark)
	if err == sql.ErrNoRows {
		return t, domain.NotFoundError{Resource: "trip"}
	}
	return t, err
}

// FindByTuple mencari trip untuk tuple pemilihan form order, plus kapasitas
// kapalnya, bahan hitung sisa kursi.
func (r TripRepository) FindByTuple(boatID int64, routeFrom, routeTo, tripDate, etd string) (models.Trip, int, error) {
	var (
		t        models.Trip
		capacity int
	)
	err := r.DB.QueryRow(`
		SELECT t.trip_id, t.boat_id, b.boat_name, t.route_from, t.route_to,
		       DATE_FORMAT(t.trip_date, '%Y-%m-%d'), t.etd, b.capacity
		FROM trips t
		JOIN boats b ON b.boat_id = t.boat_id
		WHERE t.boat_id = ? AND t.route_from = ? AND t.route_to = ? AND t.trip_date = ? AND t.etd = ?
		LIMIT 1`,
		boatID, routeFrom, routeTo, tripDate, etd).
		Scan(&t.TripID, &t.BoatID, &t.BoatName, &t.RouteFrom, &t.RouteTo, &t.TripDate, &t.ETD, &capacity)
	if err == sql.ErrNoRows {
		return t, 0, domain.NotFoundError{Resource: "trip"}
	}
	return t, capacity, err
}
