package api

import (
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/finplan/projection-engine/internal/calculation"
	"github.com/finplan/projection-engine/internal/config"
)

// handleProjection accumulates the posted sources to the horizon.
func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	var req ProjectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Sources) == 0 {
		s.writeError(w, http.StatusBadRequest, "at least one capital source is required")
		return
	}

	perSource := calculation.AccumulatePerSource(req.Sources, req.HorizonYears)
	s.writeJSON(w, http.StatusOK, ProjectionResponse{
		RunID:   uuid.NewString(),
		Total:   s.engine.Accumulate(req.Sources, req.HorizonYears),
		Sources: perSource,
	})
}

// handleDrawdown simulates consumption of a capital pool.
func (s *Server) handleDrawdown(w http.ResponseWriter, r *http.Request) {
	var req DrawdownRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result := s.engine.SimulateDrawdown(calculation.DrawdownInput{
		StartingCapital:      req.StartingCapital,
		CurrentAge:           req.CurrentAge,
		RetirementAge:        req.RetirementAge,
		PlanEndAge:           req.PlanEndAge,
		PostRetirementReturn: req.PostRetirementReturn,
		InflationRate:        req.InflationRate,
		MonthlyIncomeToday:   req.MonthlyIncomeToday,
		OnceOffCapitalNeed:   req.OnceOffCapitalNeed,
	})
	s.writeJSON(w, http.StatusOK, DrawdownResponse{
		RunID:  uuid.NewString(),
		Result: result,
	})
}

// handleSolve runs a full plan and reports the solved top-up contribution.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := config.NewInputParser().ValidatePlan(&req.Plan); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := s.engine.RunPlan(&req.Plan)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, SolveResponse{
		RunID:                uuid.NewString(),
		RequiredExtraMonthly: summary.RequiredExtraMonthly,
		Feasible:             summary.ExtraContributionFeasible,
	})
}

// handleFunding assesses projected against required capital.
func (s *Server) handleFunding(w http.ResponseWriter, r *http.Request) {
	var req FundingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	assessment := s.engine.AssessFunding(req.ProjectedCapital, req.TargetAnnualIncomeToday, req.RealDiscountRate, req.PeriodsInRetirement)
	s.writeJSON(w, http.StatusOK, FundingResponse{
		RunID:      uuid.NewString(),
		Assessment: assessment,
	})
}

// handlePlan runs a complete plan and returns the full summary.
func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := config.NewInputParser().ValidatePlan(&req.Plan); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := s.engine.RunPlan(&req.Plan)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, PlanResponse{
		RunID:   uuid.NewString(),
		Summary: summary,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Errorf("failed to encode response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, ErrorResponse{Status: status, Message: message})
}
