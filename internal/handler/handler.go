// Package handler exposes the calculators, batch engine, worksheet and rule
// table over fasthttp.
package handler

import (
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"familaw-engine/internal/calc"
	"familaw-engine/internal/calculators"
	"familaw-engine/internal/logger"
	"familaw-engine/internal/metrics"
	"familaw-engine/internal/model"
)

const (
	calculatorsPrefix = "/api/calculators/"
	compareSuffix     = "/compare"

	contentTypeJSON = "application/json"
	contentTypeHTML = "text/html; charset=utf-8"
)

// Server routes requests to the calculation endpoints.
type Server struct {
	calc        *calc.Calculator
	rulesSource string
	metrics     *metrics.Manager
	log         logger.Logger

	metricsHandler fasthttp.RequestHandler
}

// New creates a server bound to one calculator. rulesSource names where the
// calculator's rule table came from and is reported by /healthz.
func New(c *calc.Calculator, rulesSource string, m *metrics.Manager, log logger.Logger) *Server {
	return &Server{
		calc:           c,
		rulesSource:    rulesSource,
		metrics:        m,
		log:            log,
		metricsHandler: fasthttpadaptor.NewFastHTTPHandler(m.Handler()),
	}
}

// Handler returns the root request handler.
func (s *Server) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		route, method, h := s.route(ctx)

		switch {
		case h == nil:
			writeError(ctx, fasthttp.StatusNotFound, "Not found", nil)
		case string(ctx.Method()) != method:
			ctx.Response.Header.Set(fasthttp.HeaderAllow, method)
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed", nil)
		default:
			h(ctx)
		}

		status := ctx.Response.StatusCode()
		elapsed := time.Since(start)
		s.metrics.RecordHTTPRequest(string(ctx.Method()), route, status)
		s.metrics.RecordHTTPRequestDuration(string(ctx.Method()), route, elapsed)

		fields := []logger.Field{
			logger.String("method", string(ctx.Method())),
			logger.String("path", string(ctx.Path())),
			logger.Int("status", status),
			logger.Duration("elapsed", elapsed),
		}
		if status >= fasthttp.StatusInternalServerError {
			s.log.Error(ctx, "request failed", fields...)
		} else {
			s.log.Debug(ctx, "request", fields...)
		}
	}
}

// route resolves the path to a metrics label, the allowed method and the
// handler. Unknown calculator names share one label.
func (s *Server) route(ctx *fasthttp.RequestCtx) (string, string, fasthttp.RequestHandler) {
	path := string(ctx.Path())

	switch path {
	case "/healthz":
		return path, fasthttp.MethodGet, s.handleHealth
	case "/metrics":
		return path, fasthttp.MethodGet, s.metricsHandler
	case "/api/rules":
		return path, fasthttp.MethodGet, s.handleRules
	case "/api/counties":
		return path, fasthttp.MethodGet, s.handleCounties
	case "/api/forms/colorado":
		return path, fasthttp.MethodGet, s.handleForms
	case "/api/forms/jdf1360":
		return path, fasthttp.MethodPost, s.handleWorksheet
	case "/api/calculations":
		return path, fasthttp.MethodPost, s.handleBatch
	}

	rest, ok := strings.CutPrefix(path, calculatorsPrefix)
	if !ok {
		return "unmatched", "", nil
	}
	name, compare := strings.CutSuffix(rest, compareSuffix)
	if _, known := calculators.Get(name); !known {
		return "unmatched", "", nil
	}
	if compare {
		return calculatorsPrefix + "{name}" + compareSuffix, fasthttp.MethodPost, s.handleCompare(name)
	}
	return calculatorsPrefix + "{name}", fasthttp.MethodPost, s.handleCalculator(name)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = fasthttp.StatusInternalServerError
		body = []byte(`{"status":500,"message":"Failed to encode response"}`)
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType(contentTypeJSON)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string, msgs []model.CalculationMessage) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:   status,
		Message:  message,
		Messages: msgs,
	})
}
