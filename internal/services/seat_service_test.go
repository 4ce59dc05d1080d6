package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"seaboat-backend/internal/domain"
	"seaboat-backend/internal/repositories"
)

func newMockDB(t *testing.T) (repositories.SeatRepository, repositories.TripRepository, repositories.BoatRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	return repositories.SeatRepository{DB: db},
		repositories.TripRepository{DB: db},
		repositories.BoatRepository{DB: db},
		mock,
		func() { db.Close() }
}

func expectTrip(mock sqlmock.Sqlmock, tripID, boatID int64) {
	mock.ExpectQuery("SELECT t.trip_id, t.boat_id, b.boat_name").
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"trip_id", "boat_id", "boat_name", "route_from", "route_to", "trip_date", "etd", "remark"}).
			AddRow(tripID, boatID, "Sea Star", "Sanur", "Nusa Penida", "2026-09-10", "08:30", ""))
}

func TestSeatServiceGenerateForTrip(t *testing.T) {
	seatRepo, tripRepo, boatRepo, mock, done := newMockDB(t)
	defer done()

	expectTrip(mock, 7, 3)
	// kapasitas 5 kursi, 2 per baris -> 3 baris, 6 kursi
	mock.ExpectQuery("SELECT boat_id, boat_name, capacity").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"boat_id", "boat_name", "capacity", "service_category", "image_url"}).
			AddRow(3, "Sea Star", 5, "seaboat", ""))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM seats`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	for i := 0; i < 6; i++ {
		mock.ExpectExec("INSERT INTO seats").
			WillReturnResult(sqlmock.NewResult(int64(i+1), 1))
	}

	svc := SeatService{SeatRepo: seatRepo, TripRepo: tripRepo, BoatRepo: boatRepo}
	result, err := svc.GenerateForTrip(7, 0, 0)
	if err != nil {
		t.Fatalf("GenerateForTrip error: %v", err)
	}
	if result.Requested != 6 || len(result.Created) != 6 {
		t.Fatalf("requested=%d created=%d, want 6/6", result.Requested, len(result.Created))
	}
	if result.Created[0].SeatNumber != "A1" || result.Created[5].SeatNumber != "C2" {
		t.Fatalf("urutan kursi salah: %s .. %s", result.Created[0].SeatNumber, result.Created[5].SeatNumber)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSeatServiceGenerateConflictWhenSeatsExist(t *testing.T) {
	seatRepo, tripRepo, boatRepo, mock, done := newMockDB(t)
	defer done()

	expectTrip(mock, 7, 3)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM seats`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(12))

	svc := SeatService{SeatRepo: seatRepo, TripRepo: tripRepo, BoatRepo: boatRepo}
	_, err := svc.GenerateForTrip(7, 6, 2)
	if !domain.IsConflict(err) {
		t.Fatalf("want conflict error, got %v", err)
	}
}

func TestSeatServiceGenerateAbortsMidBatch(t *testing.T) {
	seatRepo, tripRepo, boatRepo, mock, done := newMockDB(t)
	defer done()

	expectTrip(mock, 7, 3)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM seats`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectExec("INSERT INTO seats").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO seats").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec("INSERT INTO seats").WillReturnError(sqlmock.ErrCancelled)

	svc := SeatService{SeatRepo: seatRepo, TripRepo: tripRepo, BoatRepo: boatRepo}
	result, err := svc.GenerateForTrip(7, 2, 2)
	if !domain.IsInternal(err) {
		t.Fatalf("want internal error, got %v", err)
	}
	// dua kursi pertama sempat tersimpan dan harus dilaporkan
	if len(result.Created) != 2 || result.Created[1].SeatNumber != "A2" {
		t.Fatalf("created %+v, want A1 dan A2", result.Created)
	}
}

func TestSeatServiceCreateOne(t *testing.T) {
	seatRepo, tripRepo, boatRepo, mock, done := newMockDB(t)
	defer done()

	expectTrip(mock, 7, 3)
	mock.ExpectExec("INSERT INTO seats").
		WithArgs(int64(7), "B2", false).
		WillReturnResult(sqlmock.NewResult(9, 1))

	svc := SeatService{SeatRepo: seatRepo, TripRepo: tripRepo, BoatRepo: boatRepo}
	seat, err := svc.CreateOne(7, "B2", false)
	if err != nil {
		t.Fatalf("CreateOne error: %v", err)
	}
	if seat.SeatID != 9 || seat.SeatNumber != "B2" || seat.IsAvailable {
		t.Fatalf("kursi salah: %+v", seat)
	}

	if _, err := svc.CreateOne(0, "B2", true); !domain.IsValidation(err) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestSeatServiceResetTrip(t *testing.T) {
	seatRepo, tripRepo, boatRepo, mock, done := newMockDB(t)
	defer done()

	mock.ExpectExec("DELETE FROM seats WHERE trip_id").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 12))

	svc := SeatService{SeatRepo: seatRepo, TripRepo: tripRepo, BoatRepo: boatRepo}
	n, err := svc.ResetTrip(7)
	if err != nil {
		t.Fatalf("ResetTrip error: %v", err)
	}
	if n != 12 {
		t.Fatalf("deleted %d, want 12", n)
	}
}
