package provider

import (
	"time"

	"github.com/five82/prayerclock/internal/aladhan"
)

// FallbackTimings are served when the API cannot be reached.
var FallbackTimings = map[string]string{
	"Fajr":    "05:00",
	"Dhuhr":   "12:00",
	"Asr":     "15:30",
	"Maghrib": "18:00",
	"Isha":    "19:30",
}

// Fallback returns the fixed default day for date. The Hijri part is a
// placeholder, not a conversion of date.
func Fallback(date time.Time) *aladhan.Day {
	timings := make(map[string]string, len(FallbackTimings))
	for k, v := range FallbackTimings {
		timings[k] = v
	}
	return &aladhan.Day{
		Timings: timings,
		Date: aladhan.DateInfo{
			Readable: date.Format("02 Jan 2006"),
			Gregorian: aladhan.GregorianDate{
				Date: date.Format("02-01-2006"),
				Day:  date.Format("02"),
				Year: date.Format("2006"),
				Month: aladhan.GregorianMonth{
					Number: int(date.Month()),
					En:     date.Month().String(),
				},
				Weekday: aladhan.Names{En: date.Weekday().String()},
			},
			Hijri: aladhan.HijriDate{
				Day:         "1",
				Year:        "1445",
				Weekday:     aladhan.Names{En: "Al Sabt", Ar: "السبت"},
				Month:       aladhan.HijriMonth{Number: 1, En: "Muḥarram", Ar: "محرم"},
				Designation: aladhan.Designation{Abbreviated: "AH", Expanded: "Anno Hegirae"},
			},
		},
	}
}
