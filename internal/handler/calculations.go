package handler

import (
	"errors"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"familaw-engine/internal/calculators"
	"familaw-engine/internal/engine"
	"familaw-engine/internal/logger"
	"familaw-engine/internal/model"
	"familaw-engine/internal/worksheet"
)

const validationFailed = "Validation failed"

// handleCalculator runs one calculator on the request body and responds with
// its bare result.
func (s *Server) handleCalculator(name string) fasthttp.RequestHandler {
	name = calculators.Normalize(name)
	return func(ctx *fasthttp.RequestCtx) {
		h, _ := calculators.Get(name)
		body := ctx.PostBody()

		msgs := h.Validate(s.calc, body)
		s.recordMessages(name, msgs)
		if model.HasCritical(msgs) {
			s.metrics.RecordCalculation(name, model.OutcomeFailure)
			writeError(ctx, fasthttp.StatusBadRequest, validationFailed, msgs)
			return
		}

		out, applyMsgs := h.Apply(s.calc, body)
		s.recordMessages(name, applyMsgs)
		if model.HasCritical(applyMsgs) {
			s.metrics.RecordCalculation(name, model.OutcomeFailure)
			writeError(ctx, fasthttp.StatusBadRequest, validationFailed, applyMsgs)
			return
		}

		s.metrics.RecordCalculation(name, model.OutcomeSuccess)
		if len(msgs) > 0 {
			s.log.Info(ctx, "calculation produced warnings",
				logger.String("calculator", name),
				logger.Int("warnings", len(msgs)),
			)
		}
		writeJSON(ctx, fasthttp.StatusOK, out)
	}
}

func (s *Server) handleCompare(name string) fasthttp.RequestHandler {
	name = calculators.Normalize(name)
	return func(ctx *fasthttp.RequestCtx) {
		var req model.CompareRequest
		if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
			return
		}

		resp, err := engine.Compare(s.calc, name, &req)
		if err != nil {
			if errors.Is(err, calculators.ErrUnknownCalculator) {
				writeError(ctx, fasthttp.StatusNotFound, err.Error(), nil)
				return
			}
			s.log.Error(ctx, "compare failed", logger.String("calculator", name), logger.Error(err))
			writeError(ctx, fasthttp.StatusInternalServerError, "Comparison failed", nil)
			return
		}

		s.recordMessages(name, resp.Messages)
		if model.HasCritical(resp.Messages) {
			writeError(ctx, fasthttp.StatusBadRequest, validationFailed, resp.Messages)
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, resp)
	}
}

func (s *Server) handleBatch(ctx *fasthttp.RequestCtx) {
	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}
	if len(req.Calculations) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "At least one calculation is required", nil)
		return
	}

	resp := engine.Process(s.calc, &req)

	for _, pc := range resp.CalculationResult.Calculations {
		name := calculators.Normalize(pc.Calculation.Calculator)
		if _, ok := calculators.Get(name); !ok {
			name = "unknown"
		}
		msgs := make([]model.CalculationMessage, 0, len(pc.CalculationMessageIndexes))
		for _, i := range pc.CalculationMessageIndexes {
			msgs = append(msgs, resp.CalculationResult.Messages[i])
		}
		s.recordMessages(name, msgs)
		outcome := model.OutcomeSuccess
		if model.HasCritical(msgs) {
			outcome = model.OutcomeFailure
		}
		s.metrics.RecordCalculation(name, outcome)
	}

	s.log.Info(ctx, "batch processed",
		logger.String("calculation_id", resp.CalculationMetadata.CalculationID),
		logger.String("case_id", resp.CalculationMetadata.CaseID),
		logger.String("outcome", resp.CalculationMetadata.CalculationOutcome),
		logger.Int("calculations", len(resp.CalculationResult.Calculations)),
	)
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

// handleWorksheet renders the child support worksheet for a child support
// request as HTML.
func (s *Server) handleWorksheet(ctx *fasthttp.RequestCtx) {
	const name = calculators.ChildSupport
	h, _ := calculators.Get(name)
	body := ctx.PostBody()

	msgs := h.Validate(s.calc, body)
	s.recordMessages(name, msgs)
	if model.HasCritical(msgs) {
		writeError(ctx, fasthttp.StatusBadRequest, validationFailed, msgs)
		return
	}

	var req model.ChildSupportRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}
	in := calculators.SupportInput(&req)
	ws := worksheet.Build(s.calc.Rules(), in, s.calc.ChildSupport(in))

	html, err := ws.HTML()
	if err != nil {
		s.log.Error(ctx, "worksheet render failed", logger.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to render worksheet", nil)
		return
	}
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType(contentTypeHTML)
	ctx.SetBody(html)
}

func (s *Server) recordMessages(name string, msgs []model.CalculationMessage) {
	for _, m := range msgs {
		s.metrics.RecordValidationMessage(name, m.Level, m.Code)
	}
}
