package prayer

// Slot identifies one of the five daily prayers.
type Slot int

const (
	Fajr Slot = iota
	Dhuhr
	Asr
	Maghrib
	Isha
)

var slotOrder = [...]Slot{Fajr, Dhuhr, Asr, Maghrib, Isha}

var slotNames = [...]string{
	Fajr:    "Fajr",
	Dhuhr:   "Dhuhr",
	Asr:     "Asr",
	Maghrib: "Maghrib",
	Isha:    "Isha",
}

// Slots returns the prayers in canonical daily order.
func Slots() []Slot {
	out := make([]Slot, len(slotOrder))
	copy(out, slotOrder[:])
	return out
}

// String returns the provider key for the slot, e.g. "Maghrib".
func (s Slot) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return slotNames[s]
}

// Valid reports whether s is one of the five known slots.
func (s Slot) Valid() bool {
	return s >= Fajr && s <= Isha
}

// ParseSlot maps a provider key to its Slot. Keys are matched exactly.
func ParseSlot(name string) (Slot, bool) {
	for _, s := range slotOrder {
		if slotNames[s] == name {
			return s, true
		}
	}
	return 0, false
}
