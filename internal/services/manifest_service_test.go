package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"seaboat-backend/internal/domain"
	"seaboat-backend/internal/domain/models"
	"seaboat-backend/internal/repositories"
)

func TestManifestBuildPDF(t *testing.T) {
	svc := ManifestService{Now: func() time.Time {
		return time.Date(2026, 9, 10, 6, 0, 0, 0, time.Local)
	}}

	orders := []models.Order{{
		OrderID:    "abc-123",
		AgentName:  "Wayan",
		BoatName:   "Sea Star",
		TripRoute:  "Sanur ke Nusa Penida",
		TripDate:   "2026-09-10",
		ETD:        "08:30",
		SourceType: models.SourceFastboat,
		Status:     models.StatusCheckIn,
		Passengers: []models.Passenger{
			{FullName: "Made", Type: models.PassengerAdult, Nationality: models.NationalityDomestic},
			{FullName: "Ketut", Type: models.PassengerChild, Nationality: models.NationalityForeign},
		},
	}}

	pdf, err := svc.buildManifestPDF(models.SourceFastboat, orders)
	if err != nil {
		t.Fatalf("buildManifestPDF error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output bukan PDF, prefix %q", pdf[:min(8, len(pdf))])
	}
}

func TestManifestExportRejectsWhenNothingCheckedIn(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT bo.booking_id").
		WithArgs(models.SourceFastboat).
		WillReturnRows(sqlmock.NewRows(bookingCols).
			AddRow(fastboatRow(1, "Sea Star", "08:30", models.StatusBooked)...))

	svc := ManifestService{Orders: OrderService{
		BookingRepo: repositories.BookingRepository{DB: db},
		TripRepo:    repositories.TripRepository{DB: db},
		AgentRepo:   repositories.AgentRepository{DB: db},
	}}
	if _, _, err := svc.ExportCheckIn(models.SourceFastboat, OrderFilters{}); !domain.IsValidation(err) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestPassengerCategoryLabels(t *testing.T) {
	got := passengerCategory(models.Passenger{Type: models.PassengerChild, Nationality: models.NationalityForeign}, "")
	if got != "Anak / Mancanegara" {
		t.Fatalf("label %q", got)
	}
	got = passengerCategory(models.Passenger{Type: models.PassengerAdult}, models.NationalityDomestic)
	if got != "Dewasa / Domestik" {
		t.Fatalf("label %q", got)
	}
}
