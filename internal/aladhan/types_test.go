package aladhan

import (
	"testing"
	"time"
)

func TestHijriFormat(t *testing.T) {
	h := HijriDate{Day: "1", Year: "1445", Month: HijriMonth{En: "Muḥarram", Ar: "مُحَرَّم"}}
	if got := h.Format(); got != "1 Muḥarram 1445 AH" {
		t.Fatalf("Format = %q, want 1 Muḥarram 1445 AH", got)
	}
	if got := h.FormatArabic(); got != "1 مُحَرَّم 1445 هـ" {
		t.Fatalf("FormatArabic = %q", got)
	}
	if got := (HijriDate{}).Format(); got != "" {
		t.Fatalf("Format on empty = %q, want empty", got)
	}
	if got := (HijriDate{Day: "1"}).FormatArabic(); got != "" {
		t.Fatalf("FormatArabic on partial = %q, want empty", got)
	}
}

func TestDayParsedDate(t *testing.T) {
	d := Day{Date: DateInfo{Gregorian: GregorianDate{Date: "14-03-2025"}}}
	got := d.ParsedDate(time.UTC)
	if !got.Equal(time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("ParsedDate = %v, want 2025-03-14", got)
	}

	d = Day{Date: DateInfo{Readable: "02 Jan 2026"}}
	got = d.ParsedDate(time.UTC)
	if got.Year() != 2026 || got.Month() != time.January || got.Day() != 2 {
		t.Fatalf("ParsedDate from readable = %v, want 2026-01-02", got)
	}

	if !(Day{}).ParsedDate(nil).IsZero() {
		t.Fatalf("ParsedDate on empty day should be zero")
	}
}

func TestDayLocation(t *testing.T) {
	if (Day{}).Location() != nil {
		t.Fatalf("Location on empty meta should be nil")
	}
	if (Day{Meta: Meta{Timezone: "Not/AZone"}}).Location() != nil {
		t.Fatalf("Location on unknown zone should be nil")
	}
	loc := (Day{Meta: Meta{Timezone: "UTC"}}).Location()
	if loc == nil || loc.String() != "UTC" {
		t.Fatalf("Location = %v, want UTC", loc)
	}
}
