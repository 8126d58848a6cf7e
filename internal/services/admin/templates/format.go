package templates

import (
	"strconv"
	"strings"
	"time"

	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Amounts are always shown in Indian grouping regardless of UI language.
var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR formats an amount in rupees with en-IN digit grouping.
func FormatINR(amount float64) string {
	return "₹" + inrPrinter.Sprint(number.Decimal(amount, number.MaxFractionDigits(2)))
}

// FormatPercent formats an offer percentage.
func FormatPercent(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64) + "%"
}

// displayZone is India Standard Time, the platform's operating zone.
var displayZone = time.FixedZone("IST", 5*60*60+30*60)

// FormatDateTime renders a timestamp, or "N/A" when it is missing.
func FormatDateTime(ts consultapi.Timestamp) string {
	if ts.IsZero() {
		return "N/A"
	}
	return ts.In(displayZone).Format("02 Jan 2006, 15:04")
}

// FormatCallTime renders a call start time in the short list form.
func FormatCallTime(ts consultapi.Timestamp) string {
	if ts.IsZero() {
		return "N/A"
	}
	return ts.In(displayZone).Format("Jan 2, 3:04 PM")
}

// FormatDuration renders seconds as "Xm Ys", "Ys", or "0s".
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return "0s"
	}
	d := time.Duration(seconds) * time.Second
	mins := int(d / time.Minute)
	secs := seconds % 60
	if mins > 0 {
		return strconv.Itoa(mins) + "m " + strconv.Itoa(secs) + "s"
	}
	return strconv.Itoa(secs) + "s"
}

// ShortID truncates long identifiers to 8 characters plus an ellipsis.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8] + "…"
}

// PartyName names a call participant, or "Unknown" when it was not populated.
func PartyName(party consultapi.CallParty) string {
	if name := strings.TrimSpace(party.Ref.Name); name != "" {
		return name
	}
	return "Unknown"
}

// RefName shows a populated reference by name, falling back to its id.
func RefName(ref consultapi.Ref) string {
	switch {
	case strings.TrimSpace(ref.Name) != "":
		return ref.Name
	case ref.ID != "":
		return ref.ID
	default:
		return "N/A"
	}
}

// OrNA replaces blank values with "N/A".
func OrNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return "N/A"
	}
	return value
}

// RatingTone classifies a review rating for its badge.
func RatingTone(rating float64) string {
	switch {
	case rating >= 4:
		return "good"
	case rating >= 2:
		return "fair"
	default:
		return "poor"
	}
}

// CategorySummary returns up to the first three categories and the count of
// the rest.
func CategorySummary(categories []string) ([]string, int) {
	const shown = 3
	if len(categories) <= shown {
		return categories, 0
	}
	return categories[:shown], len(categories) - shown
}

// TotalMinutes rounds a duration in seconds to whole minutes.
func TotalMinutes(seconds float64) int {
	return int(seconds/60 + 0.5)
}
