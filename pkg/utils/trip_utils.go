package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// TripDurationInDays returns the trip length inclusive of both endpoints, so
// a same-day trip counts as 1. Unparseable dates or an end before the start
// return 0 so callers can reject the input instead of crashing mid-workflow.
func TripDurationInDays(startDate, endDate string) int {
	if startDate == "" || endDate == "" {
		return 0
	}

	start, err := time.ParseInLocation(dateLayout, startDate, time.UTC)
	if err != nil {
		return 0
	}
	end, err := time.ParseInLocation(dateLayout, endDate, time.UTC)
	if err != nil {
		return 0
	}

	diff := end.Sub(start)
	if diff < 0 {
		return 0
	}

	return int(diff.Hours()/24) + 1
}

var digitsPattern = regexp.MustCompile(`\d+`)

// ParseTravelerCount turns free-text traveler descriptions ("Solo", "Couple",
// "2 adults") into an adult passenger count. Defaults to 1.
func ParseTravelerCount(travelers string) int {
	lower := strings.ToLower(travelers)
	if strings.Contains(lower, "solo") {
		return 1
	}
	if strings.Contains(lower, "couple") {
		return 2
	}
	if match := digitsPattern.FindString(lower); match != "" {
		if n, err := strconv.Atoi(match); err == nil {
			return n
		}
	}
	return 1
}

var (
	isoHoursPattern   = regexp.MustCompile(`(\d+)H`)
	isoMinutesPattern = regexp.MustCompile(`(\d+)M`)
)

// FormatISODuration converts an ISO 8601 duration like "PT5H30M" to the
// compact display form "5h 30m". Zero-valued components are omitted.
func FormatISODuration(isoDuration string) string {
	if !strings.HasPrefix(isoDuration, "PT") {
		return ""
	}
	timeStr := strings.TrimPrefix(isoDuration, "PT")

	hours := 0
	minutes := 0
	if m := isoHoursPattern.FindStringSubmatch(timeStr); m != nil {
		hours, _ = strconv.Atoi(m[1])
	}
	if m := isoMinutesPattern.FindStringSubmatch(timeStr); m != nil {
		minutes, _ = strconv.Atoi(m[1])
	}

	var result string
	if hours > 0 {
		result += fmt.Sprintf("%dh ", hours)
	}
	if minutes > 0 {
		result += fmt.Sprintf("%dm", minutes)
	}
	return strings.TrimSpace(result)
}
