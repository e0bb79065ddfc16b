package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/classlab/helpdesk/pkg/audit"
	"github.com/classlab/helpdesk/pkg/helpqueue"
	"github.com/classlab/helpdesk/pkg/httpserver"
	"github.com/classlab/helpdesk/pkg/requestid"
)

// Dependencies wires the queue and its collaborators into the router.
// Queue is required; Audit, Roster, and Log are optional.
type Dependencies struct {
	Queue  *helpqueue.Queue
	Audit  audit.Logger
	Roster RosterChecker
	Log    *slog.Logger
}

// Router builds the service's HTTP handler.
//
// Routes:
//
//	POST   /api/v1/help          enqueue a help request
//	POST   /api/v1/help/next     serve the longest-waiting request
//	DELETE /api/v1/help/{group}  dismiss a request
//	DELETE /api/v1/help          clear the queue
//	GET    /api/v1/help          list waiting groups in arrival order
//	GET    /api/v1/help/count    queue size
//	GET    /healthz              liveness probe
func Router(deps Dependencies) http.Handler {
	if deps.Queue == nil {
		panic("api: queue cannot be nil")
	}
	if deps.Log == nil {
		deps.Log = slog.New(slog.DiscardHandler)
	}

	h := &handlers{
		queue:  deps.Queue,
		audit:  deps.Audit,
		roster: deps.Roster,
		log:    deps.Log,
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(context.Background(), deps.Log))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/help", h.enqueueHelp)
		r.Post("/help/next", h.nextHelp)
		r.Delete("/help/{group}", h.dismissHelp)
		r.Delete("/help", h.clearQueue)
		r.Get("/help", h.listQueue)
		r.Get("/help/count", h.queueCount)
	})

	return r
}
