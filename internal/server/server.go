// Package server exposes the sizing engine over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rgehrsitz/fitsizer/internal/calculation"
	"github.com/rgehrsitz/fitsizer/internal/compare"
	"github.com/rgehrsitz/fitsizer/internal/domain"
	"github.com/rgehrsitz/fitsizer/internal/metrics"
	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"
)

// RequestIDHeader carries the per-request correlation id
const RequestIDHeader = "X-Request-ID"

var knownPaths = map[string]bool{
	"/healthz":      true,
	"/metrics":      true,
	"/v1/catalog":   true,
	"/v1/scenarios": true,
	"/v1/evaluate":  true,
	"/v1/compare":   true,
	"/v1/target":    true,
}

// Options configure the HTTP server
type Options struct {
	Addr               string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	MaxRequestBodySize int
	Version            string
	Defaults           Inputs
}

// Server wires HTTP routes to the engine
type Server struct {
	engine         *calculation.Engine
	compare        *compare.CompareEngine
	solver         *calculation.TargetSolver
	metrics        *metrics.Manager
	logger         *zap.Logger
	opts           Options
	metricsHandler fasthttp.RequestHandler
}

// New creates a server around engine. A nil logger disables logging; a nil
// metrics manager gets a private one.
func New(engine *calculation.Engine, m *metrics.Manager, logger *zap.Logger, opts Options) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if m == nil {
		m = metrics.NewManager()
	}
	return &Server{
		engine:         engine,
		compare:        compare.NewCompareEngine(engine),
		solver:         calculation.NewTargetSolver(engine),
		metrics:        m,
		logger:         logger,
		opts:           opts,
		metricsHandler: fasthttpadaptor.NewFastHTTPHandler(m.Handler()),
	}
}

// Handler returns the root request handler
func (s *Server) Handler() fasthttp.RequestHandler {
	return s.withRequestID(s.route)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &fasthttp.Server{
		Handler:            s.Handler(),
		Name:               "fitsizer",
		ReadTimeout:        s.opts.ReadTimeout,
		WriteTimeout:       s.opts.WriteTimeout,
		MaxRequestBodySize: s.opts.MaxRequestBodySize,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", s.opts.Addr))
		errCh <- srv.ListenAndServe(s.opts.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("%w: %v", ErrServe, err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("http server shutting down")
		return srv.Shutdown()
	}
}

func (s *Server) route(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	method := string(ctx.Method())
	start := time.Now()

	switch {
	case path == "/healthz" && method == fasthttp.MethodGet:
		s.handleHealth(ctx)
	case path == "/metrics" && method == fasthttp.MethodGet:
		s.metricsHandler(ctx)
	case path == "/v1/catalog" && method == fasthttp.MethodGet:
		writeJSON(ctx, fasthttp.StatusOK, s.engine.ListSubscriptionTypes())
	case path == "/v1/scenarios" && method == fasthttp.MethodGet:
		writeJSON(ctx, fasthttp.StatusOK, s.engine.ListScenarios())
	case path == "/v1/evaluate" && method == fasthttp.MethodPost:
		s.handleEvaluate(ctx)
	case path == "/v1/compare" && method == fasthttp.MethodPost:
		s.handleCompare(ctx)
	case path == "/v1/target" && method == fasthttp.MethodPost:
		s.handleTarget(ctx)
	case knownPaths[path]:
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}

	status := ctx.Response.StatusCode()
	s.metrics.RecordHTTPRequest(path, method, strconv.Itoa(status), time.Since(start))
	if status >= fasthttp.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("request_id", string(ctx.Response.Header.Peek(RequestIDHeader))),
			zap.String("path", path),
			zap.Int("status", status))
	}
}

func (s *Server) withRequestID(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		id := string(ctx.Request.Header.Peek(RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Response.Header.Set(RequestIDHeader, id)
		next(ctx)
	}
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, HealthResponse{Status: "ok", Version: s.opts.Version})
}

func (s *Server) handleEvaluate(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	var req EvaluateRequest
	in, err := s.decode(ctx, &req)
	if err != nil {
		s.fail(ctx, "evaluate", err)
		return
	}

	var result *domain.AnalysisResult
	if req.Occupancy != nil {
		result, err = s.engine.EvaluateOccupancy(*req.Occupancy, in.Distribution, in.Demographics, in.Campaign)
	} else {
		result, err = s.engine.EvaluateScenario(in.Scenario, in.Distribution, in.Demographics, in.Campaign)
	}
	if err != nil {
		s.fail(ctx, "evaluate", err)
		return
	}

	s.metrics.ObserveResult("evaluate", result)
	s.metrics.ObserveLatency("evaluate", time.Since(start))
	writeJSON(ctx, fasthttp.StatusOK, result)
}

func (s *Server) handleCompare(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	var req EvaluateRequest
	in, err := s.decode(ctx, &req)
	if err != nil {
		s.fail(ctx, "compare", err)
		return
	}

	results, err := s.engine.CompareAllScenarios(ctx, in.Distribution, in.Demographics, in.Campaign)
	if err != nil {
		s.fail(ctx, "compare", err)
		return
	}
	for i := range results {
		s.metrics.ObserveResult("compare", &results[i])
	}
	s.metrics.ObserveLatency("compare", time.Since(start))

	writeJSON(ctx, fasthttp.StatusOK, CompareResponse{
		Scenarios:  results,
		Comparison: s.compare.Build(results, ""),
	})
}

func (s *Server) handleTarget(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	var req TargetRequest
	in, err := s.decode(ctx, &req)
	if err != nil {
		s.fail(ctx, "target", err)
		return
	}
	target := s.engine.Config.RevenueTarget
	if req.Target != nil {
		target = decimal.NewFromFloat(*req.Target)
	}

	res, err := s.solver.SolveTargetOccupancy(ctx, in.Distribution, in.Demographics, in.Campaign, target)
	if err != nil {
		var solverErr *calculation.SolverError
		if errors.As(err, &solverErr) && solverErr.Cause == nil {
			err = badRequest("%s", solverErr.Message)
		}
		s.fail(ctx, "target", err)
		return
	}
	s.metrics.ObserveLatency("target", time.Since(start))
	writeJSON(ctx, fasthttp.StatusOK, res)
}

// decode parses the JSON body into req and resolves it against the defaults.
// An empty body means "all defaults".
func (s *Server) decode(ctx *fasthttp.RequestCtx, req interface{}) (Inputs, error) {
	if body := ctx.PostBody(); len(body) > 0 {
		if err := json.Unmarshal(body, req); err != nil {
			return Inputs{}, badRequest("invalid request body: %v", err)
		}
	}
	switch r := req.(type) {
	case *EvaluateRequest:
		return r.resolve(s.opts.Defaults)
	case *TargetRequest:
		if r.Target != nil && *r.Target < 0 {
			return Inputs{}, badRequest("target cannot be negative")
		}
		return r.EvaluateRequest.resolve(s.opts.Defaults)
	}
	return Inputs{}, fmt.Errorf("unsupported request type %T", req)
}

func (s *Server) fail(ctx *fasthttp.RequestCtx, operation string, err error) {
	s.metrics.RecordError(operation)
	if isClientError(err) {
		s.logger.Debug("rejected request", zap.String("operation", operation), zap.Error(err))
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		writeError(ctx, fasthttp.StatusServiceUnavailable, err.Error())
		return
	}
	s.logger.Error("operation failed", zap.String("operation", operation), zap.Error(err))
	writeError(ctx, fasthttp.StatusInternalServerError, "internal error")
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "failed to encode response")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	data, _ := json.Marshal(ErrorResponse{Status: status, Message: message})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}
