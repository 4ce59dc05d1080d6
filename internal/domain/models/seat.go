package models

// Seat adalah satu kursi pada satu trip. SeatNumber unik per trip,
// formatnya huruf baris + nomor kolom ("A1", "B2", "AA1").
type Seat struct {
	SeatID      int64  `json:"seat_id"`
	TripID      int64  `json:"trip_id"`
	SeatNumber  string `json:"seat_number"`
	IsAvailable bool   `json:"is_available"`
}
