package util

import "time"

// swissLayout matches the de-CH locale rendering used for user creation
// timestamps, e.g. "03.06.2025 14:05:09".
const swissLayout = "02.01.2006 15:04:05"

var zurich = mustLoadZurich()

func mustLoadZurich() *time.Location {
	loc, err := time.LoadLocation("Europe/Zurich")
	if err != nil {
		// CET without DST rules; only reachable without a tzdata source.
		return time.FixedZone("CET", 60*60)
	}
	return loc
}

// SwissDateTime formats the current time in the Europe/Zurich zone.
func SwissDateTime() string {
	return time.Now().In(zurich).Format(swissLayout)
}
