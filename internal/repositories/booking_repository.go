package repositories

import (
	"database/sql"
	"strings"

	"seaboat-backend/internal/domain"
	"seaboat-backend/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

const bookingColumns = `bo.booking_id, COALESCE(bo.order_id,''), bo.is_admin_order,
	bo.user_id, bo.agent_name, bo.trip_id,
	DATE_FORMAT(bo.trip_date, '%Y-%m-%d'), COALESCE(bo.etd,''),
	COALESCE(bo.boat_name,''), COALESCE(bo.trip_route,''),
	COALESCE(bo.tour_name,''), COALESCE(bo.service_type,''), bo.source_type,
	bo.seats, bo.adult_seats, bo.child_seats, bo.passenger_type, bo.status,
	COALESCE(bo.passengers_data,''), COALESCE(bo.agent_notes,''),
	COALESCE(bo.total_price,0),
	DATE_FORMAT(bo.created_at, '%Y-%m-%d %H:%i:%s')`

// ListBySource mengambil baris booking mentah per lini layanan
// (FASTBOAT / TOUR), urut kemunculan supaya grouping stabil.
func (r BookingRepository) ListBySource(sourceType string) ([]models.BookingRow, error) {
	rows, err := r.DB.Query(`SELECT `+bookingColumns+`
		FROM booking_orders bo
		WHERE bo.source_type = ?
		ORDER BY bo.created_at ASC, bo.booking_id ASC`, sourceType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.BookingRow{}
	for rows.Next() {
		b, err := scanBookingRow(rows)
		if err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BookingRepository) GetByID(id int64) (models.BookingRow, error) {
	row := r.DB.QueryRow(`SELECT `+bookingColumns+` FROM booking_orders bo WHERE bo.booking_id = ?`, id)
	b, err := scanBookingRow(row)
	if err == sql.ErrNoRows {
		return b, domain.NotFoundError{Resource: "booking"}
	}
	return b, err
}

func (r BookingRepository) Insert(b models.BookingRow) (int64, error) {
	res, err := r.DB.Exec(`INSERT INTO booking_orders
		(order_id, is_admin_order, user_id, agent_name, trip_id, trip_date, etd,
		 boat_name, trip_route, tour_name, service_type, source_type,
		 seats, adult_seats, child_seats, passenger_type, status,
		 passengers_data, agent_notes, total_price, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`,
		nullIfEmpty(b.OrderID), b.IsAdminOrder, b.UserID, b.AgentName, b.TripID, b.TripDate, b.ETD,
		b.BoatName, b.TripRoute, nullIfEmpty(b.TourName), nullIfEmpty(b.ServiceType), b.SourceType,
		b.Seats, b.AdultSeats, b.ChildSeats, b.PassengerType, b.Status,
		b.PassengerData, nullIfEmpty(b.AgentNotes), b.TotalPrice)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateStatus mengubah status satu baris booking.
func (r BookingRepository) UpdateStatus(id int64, status string) error {
	res, err := r.DB.Exec(`UPDATE booking_orders SET status = ? WHERE booking_id = ?`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

// BulkUpdateStatus mengubah status semua baris satu order logis dalam satu
// statement; id datang dari BookingIDs hasil grouping.
func (r BookingRepository) BulkUpdateStatus(ids []int64, status string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query := `UPDATE booking_orders SET status = ? WHERE booking_id IN (` + placeholders(len(ids)) + `)`
	args := make([]any, 0, len(ids)+1)
	args = append(args, status)
	for _, id := range ids {
		args = append(args, id)
	}
	res, err := r.DB.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r BookingRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM booking_orders WHERE booking_id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

func (r BookingRepository) BulkDelete(ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query := `DELETE FROM booking_orders WHERE booking_id IN (` + placeholders(len(ids)) + `)`
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}
	res, err := r.DB.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// CountBookedSeats menjumlah kursi yang sudah terjual untuk satu trip,
/// bahan hitung sisa kursi: kapasitas - terjual.
func (r BookingRepository) CountBookedSeats(tripID int64, tripDate string) (int, error) {
	var n int
	err := r.DB.QueryRow(`SELECT COALESCE(SUM(seats),0)
		FROM booking_orders WHERE trip_id = ? AND trip_date = ?`, tripID, tripDate).Scan(&n)
	return n, err
}

func scanBookingRow(row rowScanner) (models.BookingRow, error) {
	var b models.BookingRow
	err := row.Scan(&b.BookingID, &b.OrderID, &b.IsAdminOrder,
		&b.UserID, &b.AgentName, &b.TripID,
		&b.TripDate, &b.ETD,
		&b.BoatName, &b.TripRoute,
		&b.TourName, &b.ServiceType, &b.SourceType,
		&b.Seats, &b.AdultSeats, &b.ChildSeats, &b.PassengerType, &b.Status,
		&b.PassengerData, &b.AgentNotes,
		&b.TotalPrice,
		&b.CreatedAt)
	return b, err
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
