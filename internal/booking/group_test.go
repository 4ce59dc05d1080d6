package booking

import (
	"testing"

	"seaboat-backend/internal/domain/models"
)

func sampleRow(id int64) models.BookingRow {
	return models.BookingRow{
		BookingID:     id,
		UserID:        "AG001",
		AgentName:     "Made",
		TripDate:      "2026-09-10",
		ETD:           "08:30",
		BoatName:      "Sea Express",
		TripRoute:     "Sanur ke Nusa Penida",
		SourceType:    models.SourceFastboat,
		Seats:         2,
		Status:        models.StatusBooked,
		PassengerData: `[{"fullName":"Wayan","type":"adult"},{"fullName":"Kadek","type":"child"}]`,
		CreatedAt:     "2026-09-01 10:00:00",
	}
}

func TestGroupOrdersMergesMatchingRows(t *testing.T) {
	a := sampleRow(1)
	b := sampleRow(2)
	b.PassengerData = `[{"fullName":"Nyoman","type":"adult"},{"fullName":"Ketut","type":"adult"}]`

	orders := GroupOrders("", []models.BookingRow{a, b})
	if len(orders) != 1 {
		t.Fatalf("jumlah order %d, want 1", len(orders))
	}

	got := orders[0]
	if got.Seats != 4 {
		t.Fatalf("total kursi %d, want 4", got.Seats)
	}
	if len(got.BookingIDs) != 2 || got.BookingIDs[0] != 1 || got.BookingIDs[1] != 2 {
		t.Fatalf("booking ids %v, want [1 2]", got.BookingIDs)
	}
	if len(got.Passengers) != 4 {
		t.Fatalf("jumlah penumpang %d, want 4", len(got.Passengers))
	}
	// urutan concat harus mengikuti urutan input
	if got.Passengers[0].FullName != "Wayan" || got.Passengers[2].FullName != "Nyoman" {
		t.Fatalf("urutan penumpang salah: %+v", got.Passengers)
	}
}

func TestGroupOrdersDifferentKeyNotMerged(t *testing.T) {
	a := sampleRow(1)
	b := sampleRow(2)
	b.CreatedAt = "2026-09-01 10:05:00"

	orders := GroupOrders("", []models.BookingRow{a, b})
	if len(orders) != 2 {
		t.Fatalf("jumlah order %d, want 2", len(orders))
	}
}

func TestGroupOrdersAdminNeverMerged(t *testing.T) {
	a := sampleRow(1)
	a.IsAdminOrder = true
	a.OrderID = "ord-1"
	b := sampleRow(2)
	b.IsAdminOrder = true
	b.OrderID = "ord-2"
	// baris ketiga identik dengan a di semua field selain order id
	c := sampleRow(3)
	c.IsAdminOrder = true
	c.OrderID = "ord-1"

	orders := GroupOrders("", []models.BookingRow{a, b, c})
	if len(orders) != 2 {
		t.Fatalf("jumlah order %d, want 2 (per order_id)", len(orders))
	}
	if orders[0].GroupKey != "admin-ord-1" {
		t.Fatalf("group key %q, want admin-ord-1", orders[0].GroupKey)
	}
}

func TestGroupOrdersNoteDeduplication(t *testing.T) {
	a := sampleRow(1)
	a.AgentNotes = "bayar cash"
	b := sampleRow(2)
	b.AgentNotes = "bayar cash"
	c := sampleRow(3)
	c.AgentNotes = "jemput di hotel"

	orders := GroupOrders("", []models.BookingRow{a, b, c})
	if len(orders) != 1 {
		t.Fatalf("jumlah order %d, want 1", len(orders))
	}
	notes := orders[0].AgentNotes
	if len(notes) != 2 || notes[0] != "bayar cash" || notes[1] != "jemput di hotel" {
		t.Fatalf("notes %v, want [bayar cash, jemput di hotel]", notes)
	}
}

func TestGroupOrdersStableOrder(t *testing.T) {
	a := sampleRow(1)
	b := sampleRow(2)
	b.UserID = "AG002" // grup kedua
	c := sampleRow(3) // gabung ke grup pertama

	orders := GroupOrders("", []models.BookingRow{a, b, c})
	if len(orders) != 2 {
		t.Fatalf("jumlah order %d, want 2", len(orders))
	}
	if orders[0].UserID != "AG001" || orders[1].UserID != "AG002" {
		t.Fatalf("urutan grup tidak stabil: %s, %s", orders[0].UserID, orders[1].UserID)
	}
	if orders[0].Seats != 4 {
		t.Fatalf("grup pertama kursi %d, want 4", orders[0].Seats)
	}
}

func TestDecodePassengersPlain(t *testing.T) {
	got := DecodePassengers("", `[{"fullName":"Wayan","type":"adult"}]`)
	if len(got) != 1 || got[0].FullName != "Wayan" {
		t.Fatalf("decode plain gagal: %+v", got)
	}
}

func TestDecodePassengersDoubleEncoded(t *testing.T) {
	got := DecodePassengers("", `"[{\"fullName\":\"Kadek\",\"type\":\"child\"}]"`)
	if len(got) != 1 || got[0].FullName != "Kadek" || got[0].Type != "child" {
		t.Fatalf("decode double-encoded gagal: %+v", got)
	}
}

func TestDecodePassengersMalformed(t *testing.T) {
	for _, raw := range []string{"", "   ", "bukan json", `{"fullName":"obj bukan array"}`, `"masih bukan array"`} {
		if got := DecodePassengers("", raw); len(got) != 0 {
			t.Fatalf("payload %q harus kosong, got %+v", raw, got)
		}
	}
}

func TestBuildRosterPositionalSplit(t *testing.T) {
	roster := BuildRoster([]string{"Wayan", "Made", "Komang"}, 2, 1, models.NationalityDomestic)
	if len(roster) != 3 {
		t.Fatalf("jumlah roster %d, want 3", len(roster))
	}
	if roster[0].Type != models.PassengerAdult || roster[1].Type != models.PassengerAdult {
		t.Fatalf("dua entri pertama harus adult: %+v", roster)
	}
	if roster[2].Type != models.PassengerChild {
		t.Fatalf("entri terakhir harus child: %+v", roster[2])
	}
	if roster[2].FullName != "Komang" {
		t.Fatalf("nama entri terakhir %q, want Komang", roster[2].FullName)
	}
}

func TestBuildRosterMissingNames(t *testing.T) {
	roster := BuildRoster([]string{"Wayan"}, 1, 1, models.NationalityForeign)
	if len(roster) != 2 {
		t.Fatalf("jumlah roster %d, want 2", len(roster))
	}
	if roster[1].FullName != "" || roster[1].Type != models.PassengerChild {
		t.Fatalf("entri kedua harus child tanpa nama: %+v", roster[1])
	}
}
