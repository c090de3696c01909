package events

import "time"

const (
	AttendanceSyncRequestedTopic = "attendance.sync.requested.v1"
	PunchesIngestedTopic         = "attendance.punches.ingested.v1"

	EventAttendanceSyncRequested = "attendance.sync.requested"
	EventPunchesIngested         = "attendance.punches.ingested"
)

// AttendanceSyncRequestedEvent asks the device bridge to pull the punches
// of one logical date. Its key is the date.
type AttendanceSyncRequestedEvent struct {
	EventType   string    `json:"event_type"`
	Date        string    `json:"date"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// RawPunch is one timestamp as the clock device reported it. DeviceUserID
// matches employees.zktime_id.
type RawPunch struct {
	DeviceUserID string    `json:"device_user_id"`
	PunchedAt    time.Time `json:"punched_at"`
}

type PunchesIngestedEvent struct {
	EventType  string     `json:"event_type"`
	BatchID    string     `json:"batch_id"`
	DeviceID   string     `json:"device_id"`
	Punches    []RawPunch `json:"punches"`
	OccurredAt time.Time  `json:"occurred_at"`
}
