package gcalendar

import "time"

// Calendar is a simplified representation of a Google Calendar list entry.
type Calendar struct {
	ID      string
	Summary string
	Primary bool
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	CalendarID  string
	Summary     string
	Description string
	Location    string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Shanghai"
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
