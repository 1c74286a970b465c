package systems

import (
	"time"
)

var baseTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return baseTime.Add(time.Duration(ms) * time.Millisecond)
}
