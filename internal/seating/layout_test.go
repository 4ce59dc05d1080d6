package seating

import "testing"

func TestRowLabelSingleLetters(t *testing.T) {
	for i := 0; i < 26; i++ {
		want := string(rune('A' + i))
		if got := RowLabel(i); got != want {
			t.Fatalf("RowLabel(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestRowLabelMultiLetter(t *testing.T) {
	cases := map[int]string{
		26:  "AA",
		27:  "AB",
		51:  "AZ",
		52:  "BA",
		701: "ZZ",
		702: "AAA",
	}
	for index, want := range cases {
		if got := RowLabel(index); got != want {
			t.Fatalf("RowLabel(%d) = %q, want %q", index, got, want)
		}
	}
}

func TestRowCount(t *testing.T) {
	if got := RowCount(30, 2); got != 15 {
		t.Fatalf("RowCount(30,2) = %d, want 15", got)
	}
	if got := RowCount(31, 2); got != 16 {
		t.Fatalf("RowCount(31,2) = %d, want 16", got)
	}
	if got := RowCount(5, 0); got != 3 {
		t.Fatalf("RowCount(5,0) harus pakai default 2 per baris, got %d", got)
	}
	if got := RowCount(0, 2); got != 0 {
		t.Fatalf("RowCount(0,2) = %d, want 0", got)
	}
}

func TestGenerateOrderAndNumbers(t *testing.T) {
	seats := Generate(3, 2)
	want := []string{"A1", "A2", "B1", "B2", "C1", "C2"}
	if len(seats) != len(want) {
		t.Fatalf("jumlah kursi %d, want %d", len(seats), len(want))
	}
	for i, w := range want {
		if seats[i].SeatNumber != w {
			t.Fatalf("seat[%d] = %q, want %q", i, seats[i].SeatNumber, w)
		}
		if !seats[i].IsAvailable {
			t.Fatalf("seat %q harus tersedia saat generate", w)
		}
	}
}

func TestGenerateWideRows(t *testing.T) {
	seats := Generate(2, 3)
	want := []string{"A1", "A2", "A3", "B1", "B2", "B3"}
	for i, w := range want {
		if seats[i].SeatNumber != w {
			t.Fatalf("seat[%d] = %q, want %q", i, seats[i].SeatNumber, w)
		}
	}
}

func TestGenerateInvalidInput(t *testing.T) {
	if seats := Generate(0, 2); seats != nil {
		t.Fatalf("Generate(0,2) harus nil, got %v", seats)
	}
	if seats := Generate(2, 0); seats != nil {
		t.Fatalf("Generate(2,0) harus nil, got %v", seats)
	}
}

func TestLayoutForDisplayRoundTrip(t *testing.T) {
	seats := Generate(5, 2) // 10 kursi
	rows := LayoutForDisplay(seats)

	if len(rows) != 3 {
		t.Fatalf("jumlah baris tampilan %d, want 3", len(rows))
	}
	total := 0
	for _, row := range rows {
		total += len(row.Left) + len(row.Right)
	}
	if total != 10 {
		t.Fatalf("total kursi di layout %d, want 10", total)
	}

	// baris terakhir: sisa 2 kursi, semua di kiri
	last := rows[len(rows)-1]
	if len(last.Left) != 2 || len(last.Right) != 0 {
		t.Fatalf("baris terakhir left=%d right=%d, want 2/0", len(last.Left), len(last.Right))
	}
}

func TestLayoutForDisplayUnevenTail(t *testing.T) {
	rows := LayoutForDisplay(Generate(1, 3)) // 3 kursi
	if len(rows) != 1 {
		t.Fatalf("jumlah baris %d, want 1", len(rows))
	}
	if len(rows[0].Left) != 2 || len(rows[0].Right) != 1 {
		t.Fatalf("baris left=%d right=%d, want 2/1", len(rows[0].Left), len(rows[0].Right))
	}
}

func TestLayoutForDisplayEmpty(t *testing.T) {
	if rows := LayoutForDisplay(nil); rows != nil {
		t.Fatalf("layout dari kursi kosong harus nil, got %v", rows)
	}
}
