package services

import (
	"fmt"

	"seaboat-backend/internal/domain"
	"seaboat-backend/internal/domain/models"
	"seaboat-backend/internal/repositories"
	"seaboat-backend/internal/seating"
	"seaboat-backend/internal/utils"
)

// SeatService membuat dan menghapus kursi per trip. Insert berjalan
// berurutan per kursi; kegagalan di tengah batch menghentikan proses apa
// adanya (tanpa rollback), tapi daftar kursi yang sempat tersimpan tetap
// dilaporkan supaya operator tahu harus reset dulu.
type SeatService struct {
	SeatRepo  repositories.SeatRepository
	TripRepo  repositories.TripRepository
	BoatRepo  repositories.BoatRepository
	RequestID string
}

// GenerateResult melaporkan hasil generate, termasuk kursi yang sempat
// tersimpan saat batch gagal di tengah jalan.
type GenerateResult struct {
	TripID    int64         `json:"trip_id"`
	Requested int           `json:"requested"`
	Created   []models.Seat `json:"created"`
}

// GenerateForTrip membuat kursi untuk satu trip. rowCount <= 0 diturunkan
// dari kapasitas kapal; seatsPerRow <= 0 memakai default 2.
func (s SeatService) GenerateForTrip(tripID int64, rowCount, seatsPerRow int) (GenerateResult, error) {
	result := GenerateResult{TripID: tripID}

	if tripID <= 0 {
		return result, domain.ValidationError{Field: "trip_id", Msg: "pilih kapal dan trip terlebih dahulu"}
	}
	trip, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return result, err
	}

	if seatsPerRow <= 0 {
		seatsPerRow = seating.DefaultSeatsPerRow
	}
	if rowCount <= 0 {
		boat, err := s.BoatRepo.GetByID(trip.BoatID)
		if err != nil {
			return result, err
		}
		rowCount = seating.RowCount(boat.Capacity, seatsPerRow)
	}
	if rowCount <= 0 {
		return result, domain.ValidationError{Field: "rows", Msg: "lengkapi jumlah baris dan kursi per baris"}
	}

	existing, err := s.SeatRepo.CountByTrip(tripID)
	if err != nil {
		return result, err
	}
	if existing > 0 {
		return result, domain.ConflictError{Resource: "seats", Msg: "kursi untuk trip ini sudah ada, reset dulu sebelum generate ulang"}
	}

	layout := seating.Generate(rowCount, seatsPerRow)
	result.Requested = len(layout)
	utils.LogEvent(s.RequestID, "seat", "generate",
		fmt.Sprintf("trip_id=%d rows=%d per_row=%d total=%d", tripID, rowCount, seatsPerRow, len(layout)))

	result.Created = make([]models.Seat, 0, len(layout))
	for _, gs := range layout {
		seat := models.Seat{
			TripID:      tripID,
			SeatNumber:  gs.SeatNumber,
			IsAvailable: gs.IsAvailable,
		}
		id, err := s.SeatRepo.Create(seat)
		if err != nil {
			utils.LogEvent(s.RequestID, "seat", "generate_abort",
				fmt.Sprintf("trip_id=%d gagal di kursi %s setelah %d tersimpan", tripID, gs.SeatNumber, len(result.Created)))
			return result, domain.InternalError{Msg: "tidak bisa menyimpan kursi", Err: err}
		}
		seat.SeatID = id
		result.Created = append(result.Created, seat)
	}

	return result, nil
}

// CreateOne menyimpan satu kursi, bentuk request lama yang masih dipakai
// beberapa klien: loop generate dijalankan di sisi klien.
func (s SeatService) CreateOne(tripID int64, seatNumber string, available bool) (models.Seat, error) {
	var seat models.Seat
	if tripID <= 0 || seatNumber == "" {
		return seat, domain.ValidationError{Msg: "trip_id dan seat_number wajib diisi"}
	}
	if _, err := s.TripRepo.GetByID(tripID); err != nil {
		return seat, err
	}

	seat = models.Seat{TripID: tripID, SeatNumber: seatNumber, IsAvailable: available}
	id, err := s.SeatRepo.Create(seat)
	if err != nil {
		return seat, domain.InternalError{Msg: "tidak bisa menyimpan kursi", Err: err}
	}
	seat.SeatID = id
	return seat, nil
}

// ResetTrip menghapus semua kursi satu trip dalam satu statement.
func (s SeatService) ResetTrip(tripID int64) (int64, error) {
	if tripID <= 0 {
		return 0, domain.ValidationError{Field: "trip_id", Msg: "pilih trip terlebih dahulu"}
	}
	n, err := s.SeatRepo.DeleteByTrip(tripID)
	if err != nil {
		return 0, domain.InternalError{Msg: "tidak bisa menghapus kursi", Err: err}
	}
	utils.LogEvent(s.RequestID, "seat", "reset", fmt.Sprintf("trip_id=%d deleted=%d", tripID, n))
	return n, nil
}

// LayoutForTrip mengambil kursi trip dan menyusunnya jadi baris tampilan
// 2 kiri / 2 kanan.
func (s SeatService) LayoutForTrip(tripID int64) ([]models.Seat, []seating.DisplayRow, error) {
	seats, err := s.SeatRepo.ListByTrip(tripID)
	if err != nil {
		return nil, nil, err
	}
	flat := make([]seating.Seat, len(seats))
	for i, seat := range seats {
		flat[i] = seating.Seat{SeatNumber: seat.SeatNumber, IsAvailable: seat.IsAvailable}
	}
	return seats, seating.LayoutForDisplay(flat), nil
}
