package cli

import (
	"testing"
	"time"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		v        float64
		currency string
		want     string
	}{
		{123.45, "$", "$123.45"},
		{0, "$", "$0.00"},
		{12.5, "€", "€12.50"},
		{0.126, "$", "$0.13"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.v, tc.currency); got != tc.want {
			t.Errorf("FormatAmount(%v, %q) = %q, want %q", tc.v, tc.currency, got, tc.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	cases := []struct {
		p    float64
		want string
	}{
		{75, "75.0%"},
		{33.333, "33.3%"},
		{0, "0.0%"},
		{100, "100.0%"},
	}
	for _, tc := range cases {
		if got := FormatPercent(tc.p); got != tc.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tc.p, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "-" {
		t.Errorf("FormatDate(zero) = %q, want %q", got, "-")
	}
	d := time.Date(2026, 3, 9, 14, 30, 0, 0, time.UTC)
	if got := FormatDate(d); got != "2026-03-09" {
		t.Errorf("FormatDate = %q, want %q", got, "2026-03-09")
	}
}

func TestFormatTimestamp(t *testing.T) {
	if got := FormatTimestamp(time.Time{}); got != "-" {
		t.Errorf("FormatTimestamp(zero) = %q, want %q", got, "-")
	}
	ts := time.Date(2026, 3, 9, 14, 30, 45, 0, time.UTC)
	if got := FormatTimestamp(ts); got != "2026-03-09 14:30" {
		t.Errorf("FormatTimestamp = %q, want %q", got, "2026-03-09 14:30")
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.n); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
