package http

import (
	"net/http"
	"time"

	"github.com/go-kit/log"
	"github.com/matryer/way"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nakamauwu/hanghub/service"
)

type Options struct {
	// RequestTimeout bounds every request except room streams.
	// Zero disables it.
	RequestTimeout time.Duration
	// CreateRoomRate is room creations per minute per client IP.
	// Zero disables limiting.
	CreateRoomRate  int
	CreateRoomBurst int
}

type handler struct {
	svc     *service.Service
	logger  log.Logger
	router  *way.Router
	metrics *metrics
	limiter *ipRateLimiter
}

func New(svc *service.Service, logger log.Logger, opts Options) http.Handler {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	h := &handler{
		svc:     svc,
		logger:  logger,
		router:  way.NewRouter(),
		metrics: newMetrics(registry),
		limiter: newIPRateLimiter(opts.CreateRoomRate, opts.CreateRoomBurst),
	}

	h.route(http.MethodGet, "/", h.index)
	h.route(http.MethodGet, "/api/health", h.health)
	h.route(http.MethodGet, "/api/activities", h.activities)
	h.route(http.MethodPost, "/api/rooms", h.withRateLimit(h.createRoom))
	h.route(http.MethodGet, "/api/rooms/:code", h.room)
	h.route(http.MethodPost, "/api/rooms/:code/join", h.joinRoom)
	h.route(http.MethodPut, "/api/rooms/:code/participants/:participant_id/preferences", h.updatePreferences)
	h.route(http.MethodPost, "/api/rooms/:code/participants/:participant_id/swipes", h.submitSwipes)
	h.route(http.MethodGet, "/api/rooms/:code/stats", h.roomStats)

	h.router.Handle(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		Registry: registry,
	}))

	h.router.NotFound = http.HandlerFunc(h.notFound)

	var out http.Handler = h.router
	out = withTimeout(opts.RequestTimeout, out)
	out = withCORS(out)
	out = withRequestID(out)
	return out
}

// route registers fn instrumented with request metrics labeled by pattern.
func (h *handler) route(method, pattern string, fn http.HandlerFunc) {
	labels := prometheus.Labels{"route": pattern}

	var next http.Handler = fn
	next = promhttp.InstrumentHandlerDuration(h.metrics.duration.MustCurryWith(labels), next)
	next = promhttp.InstrumentHandlerCounter(h.metrics.requests.MustCurryWith(labels), next)
	next = promhttp.InstrumentHandlerInFlight(h.metrics.inFlight, next)

	h.router.Handle(method, pattern, next)
}

func (h *handler) index(w http.ResponseWriter, r *http.Request) {
	h.respond(w, map[string]string{"message": "HangHub Server is running!"}, http.StatusOK)
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Ping(r.Context()); err != nil {
		h.respondErr(w, r, err)
		return
	}

	h.respond(w, successRespBody{Success: true, Message: "ok"}, http.StatusOK)
}

func (h *handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.respondErr(w, r, errRouteNotFound)
}
