// Copyright 2025 NetApp, Inc. All Rights Reserved.

package events

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/kr/secureheader"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/netapp/multisvm/config"
	. "github.com/netapp/multisvm/logging"
	"github.com/netapp/multisvm/storage_drivers/ontap"
	"github.com/netapp/multisvm/utils/errors"
)

const (
	EventsURL  = "/v1/events"
	MetricsURL = "/metrics"
	HealthURL  = "/healthz"
	PoolsURL   = "/v1/pools"

	logInterval = 10 * time.Second
)

type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

type Routes []Route

type ErrorResponse struct {
	Error string `json:"error,omitempty"`
}

// StatsProvider reports the pools of a backend.
type StatsProvider interface {
	GetVolumeStats(ctx context.Context, refresh bool) (*ontap.VolumeStats, error)
}

// Server accepts project events over HTTP.
type Server struct {
	server  *http.Server
	handler *Handler
	stats   StatsProvider
}

type ServerOption func(*serverOptions)

type serverOptions struct {
	limit rate.Limit
	burst int
	stats StatsProvider
}

// WithStatsProvider serves the pool report of a driver at PoolsURL.
func WithStatsProvider(stats StatsProvider) ServerOption {
	return func(o *serverOptions) {
		o.stats = stats
	}
}

// WithRateLimit caps the rate of event requests.
func WithRateLimit(limit rate.Limit, burst int) ServerOption {
	return func(o *serverOptions) {
		o.limit = limit
		o.burst = burst
	}
}

func NewServer(handler *Handler, address string, options ...ServerOption) *Server {
	opts := serverOptions{limit: rate.Inf}
	for _, option := range options {
		option(&opts)
	}

	s := &Server{handler: handler, stats: opts.stats}
	s.server = &http.Server{
		Addr:         address,
		Handler:      NewRouter(s.routes(), opts.limit, opts.burst),
		ReadTimeout:  config.EventServerReadTimeout,
		WriteTimeout: config.EventServerWriteTimeout,
	}

	Log().WithField("address", s.server.Addr).Info("Initializing event frontend.")
	return s
}

func (s *Server) routes() Routes {
	routes := Routes{
		Route{"HandleEvent", http.MethodPost, EventsURL, s.HandleEvent},
		Route{"Metrics", http.MethodGet, MetricsURL, promhttp.Handler().ServeHTTP},
		Route{"Health", http.MethodGet, HealthURL, Health},
	}
	if s.stats != nil {
		routes = append(routes, Route{"GetPools", http.MethodGet, PoolsURL, s.GetPools})
	}
	return routes
}

// NewRouter sets up the event endpoints. Event requests are rate limited; metrics and health are not.
func NewRouter(routes Routes, limit rate.Limit, burst int) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	for _, route := range routes {
		var handler http.Handler = route.HandlerFunc
		if route.Pattern == EventsURL && limit != rate.Inf {
			handler = rateLimiterMiddleware(limit, burst)(handler)
		}
		handler = Logger(handler, route.Name, log.DebugLevel)
		handler = secureHeaders(handler)

		router.
			Path(route.Pattern).
			Methods(route.Method).
			Name(route.Name).
			Handler(handler)
	}
	return router
}

// secureHeaders adds the standard security headers. The server listens on plain HTTP behind the
// cluster ingress, so requests are not redirected to HTTPS.
func secureHeaders(next http.Handler) http.Handler {
	headers := *secureheader.DefaultConfig
	headers.HTTPSRedirect = false
	headers.Next = next
	return &headers
}

func (s *Server) Activate() error {
	go func() {
		Log().WithField("address", s.server.Addr).Info("Activating event frontend.")

		err := s.server.ListenAndServe()
		if err == http.ErrServerClosed {
			Log().WithField("address", s.server.Addr).Info("Event frontend server has closed.")
		} else if err != nil {
			Log().Fatal(err)
		}
	}()
	return nil
}

func (s *Server) Deactivate() error {
	Log().WithField("address", s.server.Addr).Info("Deactivating event frontend.")
	ctx, cancel := context.WithTimeout(context.Background(), config.HTTPClientTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) GetName() string {
	return "event"
}

func (s *Server) Version() string {
	return config.OrchestratorAPIVersion
}

// HandleEvent decodes one event from the request body and handles it.
func (s *Server) HandleEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	ctx := GenerateRequestContext(r.Context(), "", ContextSourceREST)

	body, err := io.ReadAll(io.LimitReader(r.Body, config.MaxEventRequestSize))
	if err != nil {
		writeHTTPResponse(ctx, w, ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}

	event, err := ParseEvent(body)
	if err != nil {
		writeHTTPResponse(ctx, w, ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}

	result, err := s.handler.Handle(ctx, event)
	if err != nil {
		Logc(ctx).WithError(err).Error("Could not handle event.")
		writeHTTPResponse(ctx, w, ErrorResponse{Error: err.Error()}, httpStatusCodeForEvent(err))
		return
	}
	writeHTTPResponse(ctx, w, result, http.StatusOK)
}

// GetPools returns the pool report. The query parameter refresh=true bypasses the cached report.
func (s *Server) GetPools(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	ctx := GenerateRequestContext(r.Context(), "", ContextSourceREST)

	refresh, _ := strconv.ParseBool(r.URL.Query().Get("refresh"))
	stats, err := s.stats.GetVolumeStats(ctx, refresh)
	if err != nil {
		writeHTTPResponse(ctx, w, ErrorResponse{Error: err.Error()}, httpStatusCodeForEvent(err))
		return
	}
	writeHTTPResponse(ctx, w, stats, http.StatusOK)
}

func Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func httpStatusCodeForEvent(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.IsInvalidInputError(err):
		return http.StatusBadRequest
	case errors.IsProvisioningConflictError(err):
		return http.StatusConflict
	case errors.IsClusterUnavailableError(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeHTTPResponse(ctx context.Context, w http.ResponseWriter, response interface{}, httpStatusCode int) {
	data, err := json.Marshal(response)
	if err != nil {
		Logc(ctx).WithFields(LogFields{
			"response": response,
			"error":    err,
		}).Error("Failed to marshal HTTP response.")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(httpStatusCode)
	if _, err = w.Write(append(data, '\n')); err != nil {
		Logc(ctx).WithError(err).Error("Failed to write HTTP response.")
	}
}

func Logger(inner http.Handler, routeName string, logLevel log.Level) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := GenerateRequestContext(r.Context(), "", ContextSourceREST)
		r = r.WithContext(ctx)

		logRestCallInfo(ctx, "REST API call received.", r, start, routeName, logLevel)
		inner.ServeHTTP(w, r)
		logRestCallInfo(ctx, "REST API call complete.", r, start, routeName, logLevel)
	})
}

func logRestCallInfo(
	ctx context.Context, msg string, r *http.Request, start time.Time, routeName string, logLevel log.Level,
) {
	Logc(ctx).WithFields(LogFields{
		"method":   r.Method,
		"uri":      r.RequestURI,
		"route":    routeName,
		"duration": time.Since(start),
	}).Log(logLevel, msg)
}

// rateLimiterMiddleware rejects requests over the limit. Sustained rejections are logged at most
// once per logInterval.
func rateLimiterMiddleware(r rate.Limit, b int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(r, b)
	logSometimes := rate.Sometimes{
		First:    1,
		Interval: logInterval,
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := limiter.Reserve()
			ok, delay := res.OK(), res.Delay()
			if ok && delay > 0 || !ok {
				logSometimes.Do(func() {
					Logc(r.Context()).WithField("path", r.URL.Path).Warn("Too many requests")
				})

				if ok {
					res.Cancel()
					w.Header().Add("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				}
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
