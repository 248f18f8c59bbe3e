package season

import (
	"context"
	"strconv"
	"strings"
	"time"

	"bbref-transactions/lib/timezone"
)

// the date format used by day block labels, e.g. "July 1, 2020"
const DateLayout = "January 2, 2006"

// Year returns the season year a date belongs to. Seasons are named after
// the year they end in, so anything after June rolls into the next year's
// season.
func Year(date time.Time) int {
	year := date.Year()
	if date.Month() > time.June {
		year++
	}
	return year
}

// ParseDate parses a day block label, falling back to GuessDate when the
// label is not a full calendar date.
func ParseDate(label string, seasonYear int) time.Time {
	label = strings.TrimSpace(label)
	date, err := time.ParseInLocation(DateLayout, label, timezone.Location)
	if err != nil {
		return GuessDate(label, seasonYear)
	}
	return date
}

// GuessDate reconstructs a date from a malformed day block label. Labels
// shaped like "Month Day, Year" are parsed positionally, defaulting the
// month to January, the day to the 1st, and the year to the season year
// whenever a part doesn't parse. Anything else becomes January 1st of the
// season year.
func GuessDate(label string, seasonYear int) time.Time {
	spaceParts := strings.Split(label, " ")
	commaParts := strings.Split(label, ",")

	if len(spaceParts) != 3 || len(commaParts) != 2 {
		return time.Date(seasonYear, time.January, 1, 0, 0, 0, 0, timezone.Location)
	}

	month := time.January
	if parsed, err := time.Parse("January", spaceParts[0]); err == nil {
		month = parsed.Month()
	}

	day := 1
	if parsed, err := strconv.Atoi(strings.Split(spaceParts[1], ",")[0]); err == nil {
		day = parsed
	}

	year := seasonYear
	if parsed, err := strconv.Atoi(spaceParts[2]); err == nil {
		year = parsed
	}

	return time.Date(year, month, day, 0, 0, 0, 0, timezone.Location)
}

const minFetchInterval = time.Second * 3

// CrawlDelay sleeps out the remainder of the minimum interval between page
// fetches, so back-to-back season scrapes don't hammer the site. Returns
// early when the context is cancelled.
func CrawlDelay(ctx context.Context, elapsed time.Duration) {
	if elapsed >= minFetchInterval {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(minFetchInterval - elapsed):
	}
}
