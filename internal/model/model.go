package model

import "time"

// Environment represents the deployment environment
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Calendar is a calendar known to the host store.
type Calendar struct {
	ID   string
	Name string
}

// Event is a calendar event read from or written to the host store.
// Instances are snapshots: the pipeline never mutates an event after reading it.
type Event struct {
	ID           string
	CalendarID   string
	CalendarName string
	Title        string
	StartAt      time.Time
	EndAt        time.Time
	Location     string // optional
	Notes        string // optional
}

// Reminder is a to-do item read from the host store. A reminder may carry a
// due date without a time of day; HasDueTime distinguishes the two cases.
type Reminder struct {
	ID           string
	CalendarID   string
	CalendarName string
	Title        string
	DueAt        *time.Time
	HasDueTime   bool
	Completed    bool
	Notes        string // optional
}
