package booking

import (
	"time"

	"seaboat-backend/internal/domain"
	"seaboat-backend/internal/utils"
)

// Selection adalah tuple pemilihan trip pada form order.
type Selection struct {
	BoatID    int64
	RouteFrom string
	RouteTo   string
	TripDate  string // YYYY-MM-DD
	ETD       string // HH:MM
}

// Complete melapor apakah semua field pemilihan sudah terisi. Selama belum
// lengkap, cek ketersediaan adalah no-op, bukan kegagalan.
func (s Selection) Complete() bool {
	return s.BoatID > 0 && s.RouteFrom != "" && s.RouteTo != "" && s.TripDate != "" && s.ETD != ""
}

// DepartureAt menggabungkan tanggal trip dengan jam ETD jadi satu instant
// di timezone lokal.
func (s Selection) DepartureAt() (time.Time, error) {
	return utils.CombineDateTime(s.TripDate, s.ETD)
}

// Availability adalah hasil cek ketersediaan untuk satu tuple pemilihan.
type Availability struct {
	TripID         int64 `json:"trip_id"`
	AvailableSeats int   `json:"available_seats"`
	TripPassed     bool  `json:"trip_passed"`
}

// ApplyTimeGate menutup ketersediaan bila waktu keberangkatan sudah lewat:
// sisa kursi dipaksa 0 berapapun angka dari database. now >= departure
// dihitung lewat.
func (a Availability) ApplyTimeGate(now, departure time.Time) Availability {
	if !now.Before(departure) {
		a.AvailableSeats = 0
		a.TripPassed = true
	}
	return a
}

// ValidateSubmit menjalankan pemeriksaan sesaat sebelum order dikirim.
// Waktu keberangkatan dicek ulang di sini karena pemilihan dan submit bisa
// berselang lama. Tidak ada satupun yang boleh gagal tanpa pesan yang jelas
// sebelum request create-order dibuat.
func ValidateSubmit(sel Selection, agentName string, adults, children, availableSeats int, now time.Time) error {
	if !sel.Complete() {
		return domain.ValidationError{Msg: "mohon lengkapi semua data"}
	}
	if agentName == "" {
		return domain.ValidationError{Field: "agent", Msg: "nama agen tidak ditemukan, mohon pilih ulang agen"}
	}

	// cek jam keberangkatan dulu: trip yang sudah lewat selalu bersisa 0
	// kursi, dan pesan "melebihi sisa kursi" akan menyesatkan operator
	departure, err := sel.DepartureAt()
	if err != nil {
		return domain.ValidationError{Field: "etd", Msg: "format tanggal atau jam tidak valid", Err: err}
	}
	if !now.Before(departure) {
		return domain.ValidationError{Field: "etd", Msg: "waktu keberangkatan sudah lewat"}
	}

	total := adults + children
	if total < 1 {
		return domain.ValidationError{Field: "seats", Msg: "jumlah kursi minimal 1"}
	}
	if total > availableSeats {
		return domain.ValidationError{Field: "seats", Msg: "jumlah kursi yang diminta melebihi sisa kursi yang tersedia"}
	}
	return nil
}
