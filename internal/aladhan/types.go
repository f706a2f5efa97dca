package aladhan

import (
	"strings"
	"time"
)

// Response mirrors the top-level envelope of /v1/timingsByCity.
type Response struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   Day    `json:"data"`
}

// Day holds one day's timings and calendar details. Timings is keyed by the
// API's names ("Fajr", "Sunrise", ...) and values may carry a zone suffix
// such as "05:12 (EET)".
type Day struct {
	Timings map[string]string `json:"timings"`
	Date    DateInfo          `json:"date"`
	Meta    Meta              `json:"meta"`
}

// DateInfo contains the Gregorian and Hijri representations of the day.
type DateInfo struct {
	Readable  string        `json:"readable"` // "14 Mar 2025"
	Timestamp string        `json:"timestamp"`
	Hijri     HijriDate     `json:"hijri"`
	Gregorian GregorianDate `json:"gregorian"`
}

// HijriDate is the Islamic calendar date.
type HijriDate struct {
	Date        string      `json:"date"` // "14-09-1446"
	Day         string      `json:"day"`
	Weekday     Names       `json:"weekday"`
	Month       HijriMonth  `json:"month"`
	Year        string      `json:"year"`
	Designation Designation `json:"designation"`
}

// Names carries a value in English and Arabic.
type Names struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// HijriMonth is the Hijri month with its localized names.
type HijriMonth struct {
	Number int    `json:"number"`
	En     string `json:"en"`
	Ar     string `json:"ar"`
}

// Designation holds the era labels ("AH").
type Designation struct {
	Abbreviated string `json:"abbreviated"`
	Expanded    string `json:"expanded"`
}

// Format renders "DD Month YYYY AH", or "" when fields are missing.
func (h HijriDate) Format() string {
	if h.Day == "" || h.Month.En == "" || h.Year == "" {
		return ""
	}
	abbr := h.Designation.Abbreviated
	if abbr == "" {
		abbr = "AH"
	}
	return h.Day + " " + h.Month.En + " " + h.Year + " " + abbr
}

// FormatArabic renders "weekday، day month year هـ". The weekday is omitted
// when the API did not send one.
func (h HijriDate) FormatArabic() string {
	if h.Day == "" || h.Month.Ar == "" || h.Year == "" {
		return ""
	}
	var b strings.Builder
	if wd := strings.TrimSpace(h.Weekday.Ar); wd != "" {
		b.WriteString(wd)
		b.WriteString("، ")
	}
	b.WriteString(h.Day + " " + h.Month.Ar + " " + h.Year + " هـ")
	return b.String()
}

// GregorianDate is the civil calendar date.
type GregorianDate struct {
	Date    string         `json:"date"` // "14-03-2025"
	Day     string         `json:"day"`
	Weekday Names          `json:"weekday"`
	Month   GregorianMonth `json:"month"`
	Year    string         `json:"year"`
}

// GregorianMonth contains the month number and English name.
type GregorianMonth struct {
	Number int    `json:"number"`
	En     string `json:"en"`
}

// Meta describes how the timings were computed.
type Meta struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Timezone  string     `json:"timezone"`
	Method    MethodInfo `json:"method"`
	School    string     `json:"school"`
}

// MethodInfo identifies the calculation method.
type MethodInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ParsedDate returns the Gregorian date as a calendar day in loc, falling
// back to the readable form. It returns the zero time when neither parses.
func (d Day) ParsedDate(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.ParseInLocation(dateLayout, d.Date.Gregorian.Date, loc); err == nil {
		return t
	}
	if t, err := time.ParseInLocation("02 Jan 2006", d.Date.Readable, loc); err == nil {
		return t
	}
	return time.Time{}
}

// Location loads the timezone named in Meta, or returns nil when the name is
// empty or unknown.
func (d Day) Location() *time.Location {
	name := strings.TrimSpace(d.Meta.Timezone)
	if name == "" {
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil
	}
	return loc
}
