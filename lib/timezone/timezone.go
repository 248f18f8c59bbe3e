package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/New_York")
	if err != nil {
		panic(err)
	}
}

// force the timezone to US eastern because the transaction pages date their
// day blocks in eastern time, and "is this transaction today or later"
// comparisons go wrong when the host runs in another zone
func Now() time.Time {
	return time.Now().In(Location)
}

// Today returns the start of the current day in eastern time.
func Today() time.Time {
	now := Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, Location)
}
