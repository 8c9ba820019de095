package caldav

import "time"

// Calendar represents a CalDAV calendar collection.
type Calendar struct {
	Path        string
	DisplayName string
}

// Event represents a VEVENT.
type Event struct {
	UID         string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
}

// Todo represents a VTODO. Due may carry a date only; HasDueTime is false in
// that case.
type Todo struct {
	UID        string
	Summary    string
	Notes      string
	Due        *time.Time
	HasDueTime bool
	Completed  bool
}
