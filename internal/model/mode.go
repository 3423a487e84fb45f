package model

import (
	"fmt"
	"strings"
)

// Mode is the inventory domain a session is working in.
type Mode string

const (
	ModeGrocery   Mode = "grocery"
	ModePharmacy  Mode = "pharmacy"
	ModeCosmetics Mode = "cosmetics"
	ModeCleaning  Mode = "cleaning"
	ModePetCare   Mode = "pet_care"
)

// CategoryOther is the catch-all category present in every mode.
const CategoryOther = "Other"

// Disposal holds disposal instructions and the reason behind them.
type Disposal struct {
	Instructions string `json:"instructions" yaml:"instructions"`
	Reason       string `json:"reason" yaml:"reason"`
}

// ModeProfile is the per-mode configuration record: categories,
// classification thresholds and feature switches.
type ModeProfile struct {
	Mode       Mode     `json:"mode"`
	Label      string   `json:"label"`
	Categories []string `json:"categories"`

	// Per-item bucket thresholds, inclusive upper bounds in days.
	UrgentMaxDays   int `json:"urgentMaxDays"`
	ModerateMaxDays int `json:"moderateMaxDays"`

	// Home page counters, inclusive upper bounds in days. These differ from
	// the bucket thresholds in grocery mode.
	SoonStatMaxDays     int `json:"soonStatMaxDays"`
	ModerateStatMaxDays int `json:"moderateStatMaxDays"`

	TracksCalories  bool `json:"tracksCalories"`
	RecipesEnabled  bool `json:"recipesEnabled"`
	ScheduleEnabled bool `json:"scheduleEnabled"`

	// FixedDisposal applies to every category when set.
	FixedDisposal *Disposal `json:"-"`
}

var modeOrder = []Mode{ModeGrocery, ModePharmacy, ModeCosmetics, ModeCleaning, ModePetCare}

var profiles = map[Mode]ModeProfile{
	ModeGrocery: {
		Mode:                ModeGrocery,
		Label:               "Grocery",
		Categories:          []string{"Dairy", "Meat", "Vegetable", "Fruit", "Bakery", CategoryOther},
		UrgentMaxDays:       0,
		ModerateMaxDays:     2,
		SoonStatMaxDays:     3,
		ModerateStatMaxDays: 7,
		TracksCalories:      true,
		RecipesEnabled:      true,
	},
	ModePharmacy: {
		Mode:                ModePharmacy,
		Label:               "Pharmacy",
		Categories:          []string{"Pain Relief", "Antibiotic", "Supplements", "Allergy", CategoryOther},
		UrgentMaxDays:       7,
		ModerateMaxDays:     30,
		SoonStatMaxDays:     7,
		ModerateStatMaxDays: 30,
		ScheduleEnabled:     true,
		FixedDisposal: &Disposal{
			Instructions: "Return to pharmacy for safe disposal. Do not flush or throw in trash.",
			Reason:       "Prevents environmental contamination and misuse.",
		},
	},
	ModeCosmetics: {
		Mode:                ModeCosmetics,
		Label:               "Cosmetics",
		Categories:          []string{"Skincare", "Haircare", "Makeup", CategoryOther},
		UrgentMaxDays:       7,
		ModerateMaxDays:     30,
		SoonStatMaxDays:     7,
		ModerateStatMaxDays: 30,
		ScheduleEnabled:     true,
		FixedDisposal: &Disposal{
			Instructions: "Check for recycling symbols. Dispose in appropriate recycling bin or return to store programs.",
			Reason:       "Reduces plastic waste.",
		},
	},
	ModeCleaning: {
		Mode:                ModeCleaning,
		Label:               "Cleaning Supplies",
		Categories:          []string{"Kitchen", "Bathroom", "Laundry", CategoryOther},
		UrgentMaxDays:       7,
		ModerateMaxDays:     30,
		SoonStatMaxDays:     7,
		ModerateStatMaxDays: 30,
		ScheduleEnabled:     true,
		FixedDisposal: &Disposal{
			Instructions: "Empty contents safely and recycle container if possible.",
			Reason:       "Prevents chemical contamination.",
		},
	},
	ModePetCare: {
		Mode:                ModePetCare,
		Label:               "Pet Care",
		Categories:          []string{"Pet Food", "Pet Supplies", CategoryOther},
		UrgentMaxDays:       7,
		ModerateMaxDays:     30,
		SoonStatMaxDays:     7,
		ModerateStatMaxDays: 30,
		ScheduleEnabled:     true,
		FixedDisposal: &Disposal{
			Instructions: "Compost organic waste or dispose in food waste bin. Recycle packaging.",
			Reason:       "Reduces landfill waste.",
		},
	},
}

// Modes returns every mode in display order.
func Modes() []Mode {
	out := make([]Mode, len(modeOrder))
	copy(out, modeOrder)
	return out
}

// ParseMode converts a wire value into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.TrimSpace(s))
	if _, ok := profiles[m]; !ok {
		return "", NewValidationError(fmt.Sprintf("unknown mode %q", s))
	}
	return m, nil
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	_, ok := profiles[m]
	return ok
}

// Profile returns the configuration record for m. Unknown modes get the
// grocery profile.
func (m Mode) Profile() ModeProfile {
	if p, ok := profiles[m]; ok {
		return p
	}
	return profiles[ModeGrocery]
}

// HasCategory reports whether category belongs to the profile.
func (p ModeProfile) HasCategory(category string) bool {
	for _, c := range p.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Display renders the mode the way page headings show it ("pet care").
func (m Mode) Display() string {
	return strings.ReplaceAll(string(m), "_", " ")
}
