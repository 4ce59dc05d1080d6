package utils

import "testing"

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Rp0"},
		{950, "Rp950"},
		{1500000, "Rp1.500.000"},
		{-25000, "-Rp25.000"},
	}
	for _, c := range cases {
		if got := FormatRupiah(c.in); got != c.want {
			t.Fatalf("FormatRupiah(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseRupiahToInt(t *testing.T) {
	for _, in := range []string{"Rp 1.500.000", "rp1.500.000", "1,500,000", " 1500000 "} {
		got, err := ParseRupiahToInt(in)
		if err != nil {
			t.Fatalf("ParseRupiahToInt(%q) error: %v", in, err)
		}
		if got != 1500000 {
			t.Fatalf("ParseRupiahToInt(%q) = %d", in, got)
		}
	}

	if _, err := ParseRupiahToInt("Rp"); err == nil {
		t.Fatal("input tanpa angka harus error")
	}
}
