package http

import (
	"calendar-copilot/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The suggest route is rate limited because every call fans out to the
// completion service.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sched := rg.Group("/schedule")
	{
		sched.POST("/suggest", mw.SuggestLimit(), h.Suggest)
		sched.GET("/runs/:id", h.GetRun)
	}

	rg.GET("/calendars", h.ListCalendars)

	events := rg.Group("/events")
	{
		events.GET("", h.ListEvents)
		events.POST("", h.CreateEvent)
		events.DELETE("/:id", h.DeleteEvent)
	}

	reminders := rg.Group("/reminders")
	{
		reminders.GET("", h.ListReminders)
		reminders.POST("", h.CreateReminder)
		reminders.DELETE("/:id", h.DeleteReminder)
	}
}
