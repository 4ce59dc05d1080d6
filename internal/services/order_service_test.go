package services

import (
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"seaboat-backend/internal/domain"
	"seaboat-backend/internal/domain/models"
	"seaboat-backend/internal/repositories"
)

var bookingCols = []string{"booking_id", "order_id", "is_admin_order", "user_id", "agent_name",
	"trip_id", "trip_date", "etd", "boat_name", "trip_route", "tour_name", "service_type",
	"source_type", "seats", "adult_seats", "child_seats", "passenger_type", "status",
	"passengers_data", "agent_notes", "total_price", "created_at"}

func fastboatRow(id int64, boatName, etd, status string) []driver.Value {
	return []driver.Value{id, "", false, "AG01", "Wayan", int64(42), "2026-09-10", etd,
		boatName, "Sanur ke Nusa Penida", "", "", models.SourceFastboat,
		2, 2, 0, models.NationalityDomestic, status,
		`[{"fullName":"Made","type":"adult"},{"fullName":"Ketut","type":"adult"}]`,
		"", int64(500000), "2026-09-01 10:00:00"}
}

func orderFixture(t *testing.T) (OrderService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := OrderService{
		BookingRepo: repositories.BookingRepository{DB: db},
		TripRepo:    repositories.TripRepository{DB: db},
		AgentRepo:   repositories.AgentRepository{DB: db},
	}
	return svc, mock, func() { db.Close() }
}

func TestOrderServiceListOrdersDropsIncompleteFastboatRows(t *testing.T) {
	svc, mock, done := orderFixture(t)
	defer done()

	rows := sqlmock.NewRows(bookingCols).
		AddRow(fastboatRow(1, "Sea Star", "08:30", models.StatusBooked)...).
		AddRow(fastboatRow(2, "", "08:30", models.StatusBooked)...). // tanpa nama kapal
		AddRow(fastboatRow(3, "Sea Star", "", models.StatusBooked)...) // tanpa etd
	mock.ExpectQuery("SELECT bo.booking_id").
		WithArgs(models.SourceFastboat).
		WillReturnRows(rows)

	orders, err := svc.ListOrders(models.SourceFastboat, OrderFilters{})
	if err != nil {
		t.Fatalf("ListOrders error: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("jumlah order %d, want 1 (baris tak lengkap dibuang)", len(orders))
	}
	if orders[0].BookingIDs[0] != 1 {
		t.Fatalf("order salah: %+v", orders[0])
	}
}

func TestOrderServiceListOrdersPassengerNameFilter(t *testing.T) {
	svc, mock, done := orderFixture(t)
	defer done()

	rows := sqlmock.NewRows(bookingCols).
		AddRow(fastboatRow(1, "Sea Star", "08:30", models.StatusBooked)...).
		AddRow(fastboatRow(2, "Blue Wave", "10:00", models.StatusBooked)...)
	mock.ExpectQuery("SELECT bo.booking_id").
		WithArgs(models.SourceFastboat).
		WillReturnRows(rows)

	// dua baris beda kapal tidak digabung; filter nama case-insensitive substring
	orders, err := svc.ListOrders(models.SourceFastboat, OrderFilters{BoatName: "Blue Wave", PassengerName: "ketut"})
	if err != nil {
		t.Fatalf("ListOrders error: %v", err)
	}
	if len(orders) != 1 || orders[0].BoatName != "Blue Wave" {
		t.Fatalf("filter salah: %+v", orders)
	}
}

func TestOrderServiceCreateAdminOrder(t *testing.T) {
	svc, mock, done := orderFixture(t)
	defer done()

	svc.Now = func() time.Time {
		return time.Date(2026, 9, 10, 7, 0, 0, 0, time.Local)
	}
	svc.NewOrderID = func() string { return "ord-1" }

	mock.ExpectQuery("SELECT id, kode_agen, nama").
		WithArgs("AG01").
		WillReturnRows(sqlmock.NewRows([]string{"id", "kode_agen", "nama", "email", "role"}).
			AddRow(5, "AG01", "Wayan", "", models.RoleAgent))
	// cek ketersediaan sebelum submit
	mock.ExpectQuery("SELECT t.trip_id, t.boat_id, b.boat_name").
		WillReturnRows(sqlmock.NewRows([]string{"trip_id", "boat_id", "boat_name", "route_from", "route_to", "trip_date", "etd", "capacity"}).
			AddRow(42, 3, "Sea Star", "Sanur", "Nusa Penida", "2026-09-10", "08:30", 30))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(seats\),0\)`).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(10))
	// lookup trip untuk baris order
	mock.ExpectQuery("SELECT t.trip_id, t.boat_id, b.boat_name").
		WillReturnRows(sqlmock.NewRows([]string{"trip_id", "boat_id", "boat_name", "route_from", "route_to", "trip_date", "etd", "capacity"}).
			AddRow(42, 3, "Sea Star", "Sanur", "Nusa Penida", "2026-09-10", "08:30", 30))
	mock.ExpectExec("INSERT INTO booking_orders").
		WillReturnResult(sqlmock.NewResult(77, 1))

	row, err := svc.CreateAdminOrder(CreateOrderInput{
		BoatID:         3,
		RouteFrom:      "Sanur",
		RouteTo:        "Nusa Penida",
		TripDate:       "2026-09-10",
		ETD:            "08:30",
		KodeAgen:       "AG01",
		Adults:         2,
		Children:       1,
		Names:          []string{"Made", "Ketut"},
		TotalPriceText: "Rp 1.500.000",
	})
	if err != nil {
		t.Fatalf("CreateAdminOrder error: %v", err)
	}
	if row.BookingID != 77 || row.OrderID != "ord-1" || !row.IsAdminOrder {
		t.Fatalf("baris order salah: %+v", row)
	}
	if row.TripRoute != "Sanur ke Nusa Penida" || row.Seats != 3 || row.Status != models.StatusBooked {
		t.Fatalf("baris order salah: %+v", row)
	}
	if row.TotalPrice != 1500000 {
		t.Fatalf("total harga %d, want 1500000", row.TotalPrice)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderServiceCreateAdminOrderRejectsOverCapacity(t *testing.T) {
	svc, mock, done := orderFixture(t)
	defer done()

	svc.Now = func() time.Time {
		return time.Date(2026, 9, 10, 7, 0, 0, 0, time.Local)
	}

	mock.ExpectQuery("SELECT id, kode_agen, nama").
		WithArgs("AG01").
		WillReturnRows(sqlmock.NewRows([]string{"id", "kode_agen", "nama", "email", "role"}).
			AddRow(5, "AG01", "Wayan", "", models.RoleAgent))
	mock.ExpectQuery("SELECT t.trip_id, t.boat_id, b.boat_name").
		WillReturnRows(sqlmock.NewRows([]string{"trip_id", "boat_id", "boat_name", "route_from", "route_to", "trip_date", "etd", "capacity"}).
			AddRow(42, 3, "Sea Star", "Sanur", "Nusa Penida", "2026-09-10", "08:30", 30))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(seats\),0\)`).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(29))

	_, err := svc.CreateAdminOrder(CreateOrderInput{
		BoatID:    3,
		RouteFrom: "Sanur",
		RouteTo:   "Nusa Penida",
		TripDate:  "2026-09-10",
		ETD:       "08:30",
		KodeAgen:  "AG01",
		Adults:    2,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestOrderServiceToggleStatus(t *testing.T) {
	svc, mock, done := orderFixture(t)
	defer done()

	mock.ExpectQuery("SELECT bo.booking_id").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(bookingCols).
			AddRow(fastboatRow(9, "Sea Star", "08:30", models.StatusBooked)...))
	mock.ExpectExec("UPDATE booking_orders SET status").
		WithArgs(models.StatusCheckIn, int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	next, err := svc.ToggleStatus(9)
	if err != nil {
		t.Fatalf("ToggleStatus error: %v", err)
	}
	if next != models.StatusCheckIn {
		t.Fatalf("status %q, want %q", next, models.StatusCheckIn)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderServiceUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, _, done := orderFixture(t)
	defer done()

	if err := svc.UpdateStatus(9, "Selesai"); !domain.IsValidation(err) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestOrderServiceBulkUpdateStatusEmptySelection(t *testing.T) {
	svc, _, done := orderFixture(t)
	defer done()

	if _, err := svc.BulkUpdateStatus(nil, models.StatusCheckIn); !domain.IsValidation(err) {
		t.Fatalf("want validation error, got %v", err)
	}
	if _, err := svc.BulkDelete(nil); !domain.IsValidation(err) {
		t.Fatalf("want validation error, got %v", err)
	}
}
