package handler

import (
	"github.com/valyala/fasthttp"

	"familaw-engine/internal/model"
)

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, model.HealthResponse{
		Status:       "ok",
		RulesVersion: s.calc.Rules().Version,
		RulesSource:  s.rulesSource,
	})
}

func (s *Server) handleRules(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, s.calc.Rules())
}

func (s *Server) handleCounties(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, s.calc.Rules().Counties)
}

// handleForms lists court forms as {id, name} using the form number and its
// short name.
func (s *Server) handleForms(ctx *fasthttp.RequestCtx) {
	forms := s.calc.Rules().FormList()
	out := make([]model.FormSummary, 0, len(forms))
	for _, f := range forms {
		out = append(out, model.FormSummary{ID: f.Number, Name: f.ShortName})
	}
	writeJSON(ctx, fasthttp.StatusOK, out)
}
