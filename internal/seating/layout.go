// Package seating menghasilkan denah kursi kapal: penomoran deterministik
// per baris dan pengelompokan untuk tampilan kabin 2 kiri / 2 kanan.
package seating

import "strconv"

// DefaultSeatsPerRow adalah lebar baris standar kabin fastboat.
const DefaultSeatsPerRow = 2

// Seat adalah kursi hasil generate, sebelum disimpan ke trip tertentu.
type Seat struct {
	SeatNumber  string `json:"seat_number"`
	IsAvailable bool   `json:"is_available"`
}

// DisplayRow adalah satu baris tampilan: dua kursi kiri, lorong, dua kursi kanan.
type DisplayRow struct {
	Left  []Seat `json:"left"`
	Right []Seat `json:"right"`
}

// RowCount menghitung jumlah baris yang dibutuhkan untuk kapasitas kapal.
func RowCount(capacity, seatsPerRow int) int {
	if capacity <= 0 {
		return 0
	}
	if seatsPerRow <= 0 {
		seatsPerRow = DefaultSeatsPerRow
	}
	return (capacity + seatsPerRow - 1) / seatsPerRow
}

// RowLabel mengubah index baris (mulai 0) jadi huruf gaya spreadsheet:
// A..Z, lalu AA, AB, dst. Tidak ada batas atas.
func RowLabel(index int) string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	if index < 0 {
		return ""
	}
	label := ""
	n := index
	for n >= 0 {
		label = string(alphabet[n%26]) + label
		n = n/26 - 1
	}
	return label
}

// Generate menghasilkan kursi urut row-major: untuk tiap baris, kolom 1..seatsPerRow.
// Semua kursi baru berstatus tersedia.
func Generate(rowCount, seatsPerRow int) []Seat {
	if rowCount <= 0 || seatsPerRow <= 0 {
		return nil
	}
	seats := make([]Seat, 0, rowCount*seatsPerRow)
	for row := 0; row < rowCount; row++ {
		label := RowLabel(row)
		for col := 1; col <= seatsPerRow; col++ {
			seats = append(seats, Seat{
				SeatNumber:  label + strconv.Itoa(col),
				IsAvailable: true,
			})
		}
	}
	return seats
}

// LayoutForDisplay memotong urutan kursi jadi baris tampilan berisi 4 kursi
// (2 kiri + 2 kanan), terlepas dari lebar baris saat generate. Sisa kursi di
// baris terakhir tetap dirender walau kurang dari 4; sisi kanan boleh kosong.
func LayoutForDisplay(seats []Seat) []DisplayRow {
	if len(seats) == 0 {
		return nil
	}
	rows := make([]DisplayRow, 0, (len(seats)+3)/4)
	for i := 0; i < len(seats); i += 4 {
		left := seats[i:min(i+2, len(seats))]
		right := seats[min(i+2, len(seats)):min(i+4, len(seats))]
		rows = append(rows, DisplayRow{Left: left, Right: right})
	}
	return rows
}
