package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"
)

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// ParseDateTime parses "YYYY-MM-DD HH:MM:SS" in local timezone.
func ParseDateTime(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDateTime, strings.TrimSpace(s), time.Local)
}

// CombineDateTime gabungkan tanggal trip (YYYY-MM-DD) dengan jam ETD
// (HH:MM atau HH:MM:SS) menjadi satu instant di timezone lokal.
func CombineDateTime(date, clock string) (time.Time, error) {
	d := strings.TrimSpace(date)
	c := strings.TrimSpace(clock)
	if d == "" || c == "" {
		return time.Time{}, fmt.Errorf("tanggal atau jam kosong")
	}
	if len(c) == 5 { // HH:MM
		c += ":00"
	}
	return ParseDateTime(d + " " + c)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}
