package caldav

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-webdav/caldav"
	"github.com/google/uuid"
)

const productID = "-//calendar-copilot//CalDAV//EN"

// Client is a CalDAV client for any RFC 4791 server (iCloud, Nextcloud, ...).
type Client struct {
	baseURL  string
	username string
	password string
	client   *caldav.Client
}

// NewClient creates a new CalDAV client.
func NewClient(baseURL, username, password string) *Client {
	return &Client{
		baseURL:  baseURL,
		username: username,
		password: password,
	}
}

// connect establishes the connection lazily and reuses it.
func (c *Client) connect() (*caldav.Client, error) {
	if c.client != nil {
		return c.client, nil
	}

	httpClient := &http.Client{
		Transport: &basicAuthTransport{username: c.username, password: c.password},
		Timeout:   30 * time.Second,
	}

	client, err := caldav.NewClient(httpClient, c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to CalDAV: %w", err)
	}

	c.client = client
	return client, nil
}

type basicAuthTransport struct {
	username string
	password string
}

func (t *basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.SetBasicAuth(t.username, t.password)
	return http.DefaultTransport.RoundTrip(req)
}

// DiscoverCalendars returns all calendar collections for the user.
func (c *Client) DiscoverCalendars(ctx context.Context) ([]Calendar, error) {
	client, err := c.connect()
	if err != nil {
		return nil, err
	}

	principal, err := client.FindCurrentUserPrincipal(ctx)
	if err != nil {
		return nil, fmt.Errorf("find principal: %w", err)
	}

	homeSet, err := client.FindCalendarHomeSet(ctx, principal)
	if err != nil {
		return nil, fmt.Errorf("find home set: %w", err)
	}

	cals, err := client.FindCalendars(ctx, homeSet)
	if err != nil {
		return nil, fmt.Errorf("find calendars: %w", err)
	}

	result := make([]Calendar, 0, len(cals))
	for _, cal := range cals {
		result = append(result, Calendar{Path: cal.Path, DisplayName: cal.Name})
	}
	return result, nil
}

// GetEvents returns events in the given time range.
func (c *Client) GetEvents(ctx context.Context, calendarPath string, from, to time.Time) ([]Event, error) {
	client, err := c.connect()
	if err != nil {
		return nil, err
	}
	if calendarPath == "" {
		return nil, fmt.Errorf("calendar path not specified")
	}

	query := &caldav.CalendarQuery{
		CompFilter: caldav.CompFilter{
			Name: "VCALENDAR",
			Comps: []caldav.CompFilter{
				{Name: "VEVENT", Start: from, End: to},
			},
		},
	}

	objects, err := client.QueryCalendar(ctx, calendarPath, query)
	if err != nil {
		return nil, fmt.Errorf("query calendar: %w", err)
	}

	var events []Event
	for _, obj := range objects {
		event, parseErr := parseEventObject(&obj)
		if parseErr != nil {
			continue // skip invalid objects
		}
		events = append(events, event)
	}
	return events, nil
}

// CreateEvent creates a new event. A missing UID is generated.
func (c *Client) CreateEvent(ctx context.Context, calendarPath string, event *Event) error {
	client, err := c.connect()
	if err != nil {
		return err
	}
	if calendarPath == "" {
		return fmt.Errorf("calendar path not specified")
	}

	if event.UID == "" {
		event.UID = uuid.NewString()
	}

	cal := eventToICS(event)

	if _, err := client.PutCalendarObject(ctx, objectPath(calendarPath, event.UID), cal); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// DeleteEvent deletes an event by UID.
func (c *Client) DeleteEvent(ctx context.Context, calendarPath, uid string) error {
	client, err := c.connect()
	if err != nil {
		return err
	}

	if err := client.RemoveAll(ctx, objectPath(calendarPath, uid)); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// GetTodos returns todo items, optionally including completed ones.
func (c *Client) GetTodos(ctx context.Context, calendarPath string, includeCompleted bool) ([]Todo, error) {
	client, err := c.connect()
	if err != nil {
		return nil, err
	}
	if calendarPath == "" {
		return nil, fmt.Errorf("calendar path not specified")
	}

	query := &caldav.CalendarQuery{
		CompFilter: caldav.CompFilter{
			Name: "VCALENDAR",
			Comps: []caldav.CompFilter{
				{Name: "VTODO"},
			},
		},
	}

	objects, err := client.QueryCalendar(ctx, calendarPath, query)
	if err != nil {
		return nil, fmt.Errorf("query todos: %w", err)
	}

	var todos []Todo
	for _, obj := range objects {
		todo, parseErr := parseTodoObject(&obj)
		if parseErr != nil {
			continue
		}
		if todo.Completed && !includeCompleted {
			continue
		}
		todos = append(todos, todo)
	}
	return todos, nil
}

// CreateTodo creates a new todo item. A missing UID is generated.
func (c *Client) CreateTodo(ctx context.Context, calendarPath string, todo *Todo) error {
	client, err := c.connect()
	if err != nil {
		return err
	}
	if calendarPath == "" {
		return fmt.Errorf("calendar path not specified")
	}

	if todo.UID == "" {
		todo.UID = uuid.NewString()
	}

	cal := todoToICS(todo)

	if _, err := client.PutCalendarObject(ctx, objectPath(calendarPath, todo.UID), cal); err != nil {
		return fmt.Errorf("create todo: %w", err)
	}
	return nil
}

// DeleteTodo deletes a todo by UID.
func (c *Client) DeleteTodo(ctx context.Context, calendarPath, uid string) error {
	return c.DeleteEvent(ctx, calendarPath, uid)
}

func objectPath(calendarPath, uid string) string {
	if !strings.HasSuffix(calendarPath, "/") {
		calendarPath += "/"
	}
	return calendarPath + uid + ".ics"
}

func parseEventObject(obj *caldav.CalendarObject) (Event, error) {
	event := Event{}
	if obj.Data == nil {
		return event, fmt.Errorf("no data in calendar object")
	}

	for _, comp := range obj.Data.Children {
		if comp.Name != ical.CompEvent {
			continue
		}

		if prop := comp.Props.Get(ical.PropUID); prop != nil {
			event.UID = prop.Value
		}
		if prop := comp.Props.Get(ical.PropSummary); prop != nil {
			event.Summary = prop.Value
		}
		if prop := comp.Props.Get(ical.PropDescription); prop != nil {
			event.Description = prop.Value
		}
		if prop := comp.Props.Get(ical.PropLocation); prop != nil {
			event.Location = prop.Value
		}
		if prop := comp.Props.Get(ical.PropDateTimeStart); prop != nil {
			if t, err := prop.DateTime(time.UTC); err == nil {
				event.StartTime = t
			}
			if valueType := prop.Params.Get(ical.ParamValue); valueType == string(ical.ValueDate) {
				event.AllDay = true
			}
		}
		if prop := comp.Props.Get(ical.PropDateTimeEnd); prop != nil {
			if t, err := prop.DateTime(time.UTC); err == nil {
				event.EndTime = t
			}
		}

		break // only the first VEVENT
	}

	if event.UID == "" {
		return event, fmt.Errorf("object has no VEVENT")
	}
	return event, nil
}

func parseTodoObject(obj *caldav.CalendarObject) (Todo, error) {
	todo := Todo{}
	if obj.Data == nil {
		return todo, fmt.Errorf("no data in calendar object")
	}

	for _, comp := range obj.Data.Children {
		if comp.Name != ical.CompToDo {
			continue
		}

		if prop := comp.Props.Get(ical.PropUID); prop != nil {
			todo.UID = prop.Value
		}
		if prop := comp.Props.Get(ical.PropSummary); prop != nil {
			todo.Summary = prop.Value
		}
		if prop := comp.Props.Get(ical.PropDescription); prop != nil {
			todo.Notes = prop.Value
		}
		if prop := comp.Props.Get(ical.PropStatus); prop != nil {
			todo.Completed = prop.Value == "COMPLETED"
		}
		if prop := comp.Props.Get(ical.PropDue); prop != nil {
			if t, err := prop.DateTime(time.UTC); err == nil {
				todo.Due = &t
				todo.HasDueTime = prop.Params.Get(ical.ParamValue) != string(ical.ValueDate)
			}
		}

		break
	}

	if todo.UID == "" {
		return todo, fmt.Errorf("object has no VTODO")
	}
	return todo, nil
}

func eventToICS(event *Event) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	vevent := ical.NewEvent()
	vevent.Props.SetText(ical.PropUID, event.UID)
	vevent.Props.SetText(ical.PropSummary, event.Summary)

	if event.Description != "" {
		vevent.Props.SetText(ical.PropDescription, event.Description)
	}
	if event.Location != "" {
		vevent.Props.SetText(ical.PropLocation, event.Location)
	}

	if event.AllDay {
		vevent.Props.SetDate(ical.PropDateTimeStart, event.StartTime)
		if !event.EndTime.IsZero() {
			vevent.Props.SetDate(ical.PropDateTimeEnd, event.EndTime)
		}
	} else {
		vevent.Props.SetDateTime(ical.PropDateTimeStart, event.StartTime.UTC())
		if !event.EndTime.IsZero() {
			vevent.Props.SetDateTime(ical.PropDateTimeEnd, event.EndTime.UTC())
		}
	}

	vevent.Props.SetDateTime(ical.PropDateTimeStamp, time.Now().UTC())

	cal.Children = append(cal.Children, vevent.Component)
	return cal
}

func todoToICS(todo *Todo) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	vtodo := ical.NewComponent(ical.CompToDo)
	vtodo.Props.SetText(ical.PropUID, todo.UID)
	vtodo.Props.SetText(ical.PropSummary, todo.Summary)

	if todo.Notes != "" {
		vtodo.Props.SetText(ical.PropDescription, todo.Notes)
	}

	status := "NEEDS-ACTION"
	if todo.Completed {
		status = "COMPLETED"
	}
	vtodo.Props.SetText(ical.PropStatus, status)

	if todo.Due != nil {
		if todo.HasDueTime {
			vtodo.Props.SetDateTime(ical.PropDue, todo.Due.UTC())
		} else {
			vtodo.Props.SetDate(ical.PropDue, *todo.Due)
		}
	}

	vtodo.Props.SetDateTime(ical.PropDateTimeStamp, time.Now().UTC())

	cal.Children = append(cal.Children, vtodo)
	return cal
}
