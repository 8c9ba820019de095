package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"calendar-copilot/internal/middleware"
	scheduleHTTP "calendar-copilot/internal/schedule/delivery/http"
	scheduleUC "calendar-copilot/internal/schedule/usecase"
)

// setupScheduleDomain initializes the schedule domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.l, deps...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupScheduleDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCase over the configured store and completion client
	uc := scheduleUC.New(srv.l, srv.store, srv.ai, srv.timezone)

	// 2. HTTP Handler
	h, err := scheduleHTTP.New(srv.l, uc)
	if err != nil {
		return err
	}

	// 3. Routes: registers /api/v1/schedule, /calendars, /events, /reminders
	scheduleHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Schedule domain registered")
	return nil
}
