// Package booking berisi logika inti pemesanan: penggabungan baris booking
// mentah menjadi order logis dan validasi ketersediaan sebelum submit.
package booking

import (
	"encoding/json"
	"strings"

	"seaboat-backend/internal/domain/models"
	"seaboat-backend/internal/utils"
)

// DecodePassengers membaca kolom passengers_data. Data lama kadang
// ter-encode JSON dua kali (string berisi string JSON); dua bentuk diterima.
// Payload rusak atau bukan array dianggap kosong dan hanya dicatat di log,
// tidak pernah jadi error.
func DecodePassengers(requestID, raw string) []models.Passenger {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var passengers []models.Passenger
	if err := json.Unmarshal([]byte(raw), &passengers); err == nil {
		return passengers
	}

	// bentuk lama: string JSON di dalam string JSON
	var inner string
	if err := json.Unmarshal([]byte(raw), &inner); err == nil {
		if err := json.Unmarshal([]byte(inner), &passengers); err == nil {
			return passengers
		}
	}

	utils.LogEvent(requestID, "booking", "decode_passengers", "passengers_data tidak valid, dianggap kosong")
	return nil
}

// BuildRoster membagi daftar nama jadi kategori dewasa/anak murni berdasar
// posisi: N nama pertama (N = adults) dewasa, sisanya anak. Label kategori
// hanya untuk tampilan/ekspor, bukan bahan validasi.
func BuildRoster(names []string, adults, children int, nationality string) []models.Passenger {
	total := adults + children
	if total <= 0 {
		return nil
	}
	roster := make([]models.Passenger, 0, total)
	for i := 0; i < total; i++ {
		name := ""
		if i < len(names) {
			name = strings.TrimSpace(names[i])
		}
		paxType := models.PassengerChild
		if i < adults {
			paxType = models.PassengerAdult
		}
		roster = append(roster, models.Passenger{
			FullName:    name,
			Type:        paxType,
			Nationality: nationality,
		})
	}
	return roster
}
