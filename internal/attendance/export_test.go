package attendance

import "time"

// SetClock pins the service clock in tests.
func SetClock(s Service, now func() time.Time) {
	s.(*service).now = now
}
