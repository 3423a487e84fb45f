// Package expiry classifies inventory entries by days until expiry.
package expiry

import (
	"fmt"
	"sort"
	"strings"

	"smartexpire/internal/model"
)

// DaysUntil returns the whole calendar days from today to expiry. Negative
// values mean the entry has expired.
func DaysUntil(expiry, today model.Date) int {
	return expiry.DaysSince(today)
}

// BucketFor maps a day count onto the profile's urgency buckets.
func BucketFor(days int, profile model.ModeProfile) model.Bucket {
	switch {
	case days <= profile.UrgentMaxDays:
		return model.BucketUrgent
	case days <= profile.ModerateMaxDays:
		return model.BucketModerate
	default:
		return model.BucketFine
	}
}

// Classify returns the days until expiry of entry and its bucket in mode.
func Classify(entry model.InventoryEntry, today model.Date, mode model.Mode) (int, model.Bucket) {
	days := DaysUntil(entry.ExpiryDate, today)
	return days, BucketFor(days, mode.Profile())
}

// StatusText renders a day count for display.
func StatusText(days int) string {
	switch {
	case days < 0:
		return "Expired"
	case days == 0:
		return "Expires today"
	case days == 1:
		return "Expires tomorrow"
	default:
		return fmt.Sprintf("Expires in %d days", days)
	}
}

// Annotate classifies entry in its own mode.
func Annotate(entry model.InventoryEntry, today model.Date) model.ClassifiedEntry {
	days, bucket := Classify(entry, today, entry.Mode)
	return model.ClassifiedEntry{
		InventoryEntry:  entry,
		DaysUntilExpiry: days,
		Bucket:          bucket,
		Status:          StatusText(days),
	}
}

// ListView annotates entries and sorts them by days until expiry, keeping
// insertion order for ties. A non-empty search keeps only entries whose name
// contains it, ignoring case.
func ListView(entries []model.InventoryEntry, today model.Date, search string) []model.ClassifiedEntry {
	needle := strings.ToLower(strings.TrimSpace(search))

	out := make([]model.ClassifiedEntry, 0, len(entries))
	for _, e := range entries {
		if needle != "" && !strings.Contains(strings.ToLower(e.ItemName), needle) {
			continue
		}
		out = append(out, Annotate(e, today))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysUntilExpiry < out[j].DaysUntilExpiry
	})
	return out
}

// ComputeStats returns the home page counters for entries in mode.
func ComputeStats(entries []model.InventoryEntry, mode model.Mode, today model.Date) model.Stats {
	profile := mode.Profile()
	stats := model.Stats{Mode: mode, TotalItems: len(entries)}
	categories := make(map[string]struct{})

	for _, e := range entries {
		categories[e.Category] = struct{}{}
		days := DaysUntil(e.ExpiryDate, today)
		switch {
		case days <= profile.SoonStatMaxDays:
			stats.ExpiringSoon++
		case days <= profile.ModerateStatMaxDays:
			stats.ModerateExpiry++
		}
	}

	stats.Categories = len(categories)
	return stats
}

// ExpiringWithin returns the names of entries in list-view order whose days
// until expiry are at most limit.
func ExpiringWithin(entries []model.InventoryEntry, today model.Date, limit int) []string {
	var names []string
	for _, e := range ListView(entries, today, "") {
		if e.DaysUntilExpiry <= limit {
			names = append(names, e.ItemName)
		}
	}
	return names
}
