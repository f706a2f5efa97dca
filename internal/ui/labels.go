package ui

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/five82/prayerclock/internal/prayer"
	"github.com/five82/prayerclock/internal/provider"
)

// labels is one language's worth of user-facing strings.
type labels struct {
	code  string
	slots map[prayer.Slot]string

	Next            string
	In              string
	Prayer          string
	Time            string
	RefreshRequired string
	NoSchedule      string
	Waiting         string
	Offline         string
	Sources         map[provider.Source]string
}

var englishLabels = labels{
	code: "en",
	slots: map[prayer.Slot]string{
		prayer.Fajr:    "Fajr",
		prayer.Dhuhr:   "Dhuhr",
		prayer.Asr:     "Asr",
		prayer.Maghrib: "Maghrib",
		prayer.Isha:    "Isha",
	},
	Next:            "Next:",
	In:              "in",
	Prayer:          "Prayer",
	Time:            "Time",
	RefreshRequired: "Refresh required",
	NoSchedule:      "No usable schedule",
	Waiting:         "Fetching timings...",
	Offline:         "OFFLINE",
	Sources: map[provider.Source]string{
		provider.SourceLive:     "LIVE",
		provider.SourceCache:    "CACHE",
		provider.SourceFallback: "FALLBACK",
	},
}

var arabicLabels = labels{
	code: "ar",
	slots: map[prayer.Slot]string{
		prayer.Fajr:    "الفجر",
		prayer.Dhuhr:   "الظهر",
		prayer.Asr:     "العصر",
		prayer.Maghrib: "المغرب",
		prayer.Isha:    "العشاء",
	},
	Next:            "الصلاة القادمة:",
	In:              "خلال",
	Prayer:          "الصلاة",
	Time:            "الوقت",
	RefreshRequired: "تحديث البيانات مطلوب",
	NoSchedule:      "لا يوجد جدول صالح",
	Waiting:         "جارٍ جلب المواقيت...",
	Offline:         "غير متصل",
	Sources: map[provider.Source]string{
		provider.SourceLive:     "مباشر",
		provider.SourceCache:    "مخزن",
		provider.SourceFallback: "احتياطي",
	},
}

var labelMatcher = language.NewMatcher([]language.Tag{
	language.English, // first entry is the fallback
	language.Arabic,
})

// labelsFor picks the closest supported label set for a language preference
// such as "ar", "ar-EG" or "en-US". Anything unrecognized gets English.
func labelsFor(pref string) labels {
	pref = strings.TrimSpace(pref)
	if pref == "" {
		return englishLabels
	}
	_, index, confidence := labelMatcher.Match(language.Make(pref))
	if confidence == language.No {
		return englishLabels
	}
	if index == 1 {
		return arabicLabels
	}
	return englishLabels
}

// otherLanguage returns the language code the L key switches to.
func otherLanguage(code string) string {
	if labelsFor(code).code == "ar" {
		return "en"
	}
	return "ar"
}

// SlotName returns the display name of a prayer.
func (l labels) SlotName(s prayer.Slot) string {
	if name, ok := l.slots[s]; ok {
		return name
	}
	return s.String()
}

// SourceName returns the badge text for a schedule source.
func (l labels) SourceName(s provider.Source) string {
	if name, ok := l.Sources[s]; ok {
		return name
	}
	return strings.ToUpper(s.String())
}

// HijriDate returns the Hijri date rendering for this language.
func (l labels) HijriDate(s provider.Schedule) string {
	if l.code == "ar" && s.HijriArabic != "" {
		return s.HijriArabic
	}
	return s.Hijri
}

// RightToLeft reports whether the label set is written right to left.
func (l labels) RightToLeft() bool {
	return l.code == "ar"
}
