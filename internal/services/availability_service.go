package services

import (
	"fmt"
	"time"

	"seaboat-backend/internal/booking"
	"seaboat-backend/internal/domain"
	"seaboat-backend/internal/repositories"
	"seaboat-backend/internal/utils"
)

// AvailabilityService menghitung sisa kursi satu trip: kapasitas kapal
// dikurangi kursi yang sudah terpesan pada tanggal yang sama, lalu dipaksa 0
// bila waktu keberangkatan sudah lewat.
type AvailabilityService struct {
	TripRepo    repositories.TripRepository
	BookingRepo repositories.BookingRepository
	RequestID   string

	// Now bisa diganti di test; nil berarti time.Now.
	Now func() time.Time
}

func (s AvailabilityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Check mencari trip untuk tuple pemilihan dan menghitung sisa kursinya.
// Pemilihan yang belum lengkap ditolak sebagai validation error; trip yang
// tidak ada sebagai not found. Trip yang sudah lewat bukan error: sisa kursi
// 0 dengan trip_passed true, biar form bisa menampilkan alasannya.
func (s AvailabilityService) Check(sel booking.Selection) (booking.Availability, error) {
	var avail booking.Availability

	if !sel.Complete() {
		return avail, domain.ValidationError{Msg: "lengkapi kapal, rute, tanggal dan jam terlebih dahulu"}
	}

	trip, capacity, err := s.TripRepo.FindByTuple(sel.BoatID, sel.RouteFrom, sel.RouteTo, sel.TripDate, sel.ETD)
	if err != nil {
		return avail, err
	}

	booked, err := s.BookingRepo.CountBookedSeats(trip.TripID, sel.TripDate)
	if err != nil {
		return avail, domain.InternalError{Msg: "tidak bisa menghitung kursi terpesan", Err: err}
	}

	remaining := capacity - booked
	if remaining < 0 {
		remaining = 0
	}
	avail = booking.Availability{TripID: trip.TripID, AvailableSeats: remaining}

	departure, err := sel.DepartureAt()
	if err != nil {
		return avail, domain.ValidationError{Field: "etd", Msg: "format tanggal atau jam tidak valid", Err: err}
	}
	avail = avail.ApplyTimeGate(s.now(), departure)

	utils.LogEvent(s.RequestID, "availability", "check",
		fmt.Sprintf("trip_id=%d capacity=%d booked=%d available=%d passed=%t",
			trip.TripID, capacity, booked, avail.AvailableSeats, avail.TripPassed))
	return avail, nil
}
