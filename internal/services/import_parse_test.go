package services

import (
	"testing"
	"time"
)

func TestParseFloatValue(t *testing.T) {
	cases := []struct {
		in       string
		expected float64
	}{
		{"1,234", 1234},
		{"1,234.5", 1234.5},
		{"=SUM(A1:A2)", 0},
		{"", 0},
		{"42", 42},
		{"garbage", 0},
	}
	for _, tc := range cases {
		if got := parseFloatValue(tc.in); got != tc.expected {
			t.Errorf("parseFloatValue(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestParseOrderDate(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"2024.03.05", "2024-03-05"},
		{"2024.3.5", "2024-03-05"},
		{" 2024.03.05 ", "2024-03-05"},
		{"2024-03-05", "2024-03-05"},
		{"2024/03/05", "2024-03-05"},
	}
	for _, tc := range cases {
		if got := parseOrderDate(tc.in); got != tc.expected {
			t.Errorf("parseOrderDate(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestParseOrderDateFallsBackToToday(t *testing.T) {
	for _, in := range []string{"not-a-date", "2024.13.45", ""} {
		got := parseOrderDate(in)
		if _, err := time.Parse("2006-01-02", got); err != nil {
			t.Errorf("parseOrderDate(%q) = %q, not a valid date", in, got)
		}
	}
}

func TestParseOrderDateExcelSerial(t *testing.T) {
	// 45356 is a date-styled cell read as a raw serial number
	got := parseOrderDate("45356")
	if _, err := time.Parse("2006-01-02", got); err != nil {
		t.Errorf("parseOrderDate(serial) = %q, not a valid date", got)
	}
}
