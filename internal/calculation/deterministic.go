package calculation

import "time"

// nowFunc returns the current time; savings horizons are measured from it.
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// ResetNowFunc restores the wall clock.
func ResetNowFunc() { nowFunc = time.Now }
