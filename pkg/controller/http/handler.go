package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/interfaces"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/model"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/types"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/usecase"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/utils/errutil"
)

// statusOf maps an orchestrator error kind to an HTTP status code
func statusOf(err error) int {
	switch {
	case errors.Is(err, usecase.ErrValidation), errors.Is(err, usecase.ErrIncompleteCase):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, usecase.ErrPartialMigration):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondError(r *http.Request, w http.ResponseWriter, err error) {
	errutil.HandleHTTP(r.Context(), w, err, statusOf(err))
}

func respondJSON(r *http.Request, w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data) //nolint:errcheck // header already committed
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return goerr.Wrap(usecase.ErrValidation, "invalid request body", goerr.V("cause", err.Error()))
	}
	return nil
}

func caseIDFrom(r *http.Request) types.CaseID {
	return types.CaseID(chi.URLParam(r, "caseID"))
}

// caseResponse pairs the updated case with the linked indictment for
// actions that touch both records.
type caseResponse struct {
	Case       *model.Case       `json:"case"`
	Indictment *model.Indictment `json:"indictment,omitempty"`
}

func (s *Server) handleListCases(w http.ResponseWriter, r *http.Request) {
	var opts []interfaces.ListCaseOption
	if v := r.URL.Query().Get("status"); v != "" {
		status, err := types.ParseCaseStatus(v)
		if err != nil {
			respondError(r, w, goerr.Wrap(usecase.ErrValidation, "invalid status filter", goerr.V("status", v)))
			return
		}
		opts = append(opts, interfaces.WithStatus(status))
	}
	if v := r.URL.Query().Get("closed"); v != "" {
		opts = append(opts, interfaces.WithClosed(v == "true"))
	}

	cases, err := s.uc.ListCases(r.Context(), opts...)
	if err != nil {
		respondError(r, w, err)
		return
	}
	respondJSON(r, w, http.StatusOK, map[string]any{"cases": cases})
}

func (s *Server) handleGetCase(w http.ResponseWriter, r *http.Request) {
	c, err := s.uc.GetCase(r.Context(), caseIDFrom(r))
	if err != nil {
		respondError(r, w, err)
		return
	}
	respondJSON(r, w, http.StatusOK, caseResponse{Case: c})
}

func (s *Server) handleGetIndictment(w http.ResponseWriter, r *http.Request) {
	ind, err := s.uc.GetIndictmentByCase(r.Context(), caseIDFrom(r))
	if err != nil {
		respondError(r, w, err)
		return
	}
	respondJSON(r, w, http.StatusOK, caseResponse{Indictment: ind})
}

func (s *Server) handleCreateCase(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID           types.CaseID `json:"id"`
		Defendant    string       `json:"defendant"`
		Charge       string       `json:"charge"`
		IncidentDate time.Time    `json:"incident_date"`
		District     string       `json:"district"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(r, w, err)
		return
	}

	c, err := s.uc.CreateCase(r.Context(), usecase.CreateCaseInput{
		ID:           req.ID,
		Defendant:    req.Defendant,
		Charge:       req.Charge,
		IncidentDate: req.IncidentDate,
		District:     req.District,
	})
	if err != nil {
		respondError(r, w, err)
		return
	}
	respondJSON(r, w, http.StatusCreated, caseResponse{Case: c})
}

func (s *Server) handleUpdateCase(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Defendant    string    `json:"defendant"`
		Charge       string    `json:"charge"`
		IncidentDate time.Time `json:"incident_date"`
		District     string    `json:"district"`
		Prosecutor   string    `json:"prosecutor"`
		Judge        string    `json:"judge"`
		BailAmount   string    `json:"bail_amount"`
		Witnesses    string    `json:"witnesses"`
		Victims      string    `json:"victims"`
		NewNote      string    `json:"new_note"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(r, w, err)
		return
	}

	c, err := s.uc.UpdateCase(r.Context(), caseIDFrom(r), usecase.UpdateCaseInput{
		Defendant:    req.Defendant,
		Charge:       req.Charge,
		IncidentDate: req.IncidentDate,
		District:     req.District,
		Prosecutor:   req.Prosecutor,
		Judge:        req.Judge,
		BailAmount:   req.BailAmount,
		Witnesses:    req.Witnesses,
		Victims:      req.Victims,
		NewNote:      req.NewNote,
	})
	if err != nil {
		respondError(r, w, err)
		return
	}
	respondJSON(r, w, http.StatusOK, caseResponse{Case: c})
}

func (s *Server) handleSubmitIndictment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(r, w, err)
		return
	}

	c, ind, err := s.uc.SubmitIndictment(r.Context(), caseIDFrom(r), usecase.SubmitIndictmentInput{Text: req.Text})
	if err != nil {
		respondError(r, w, err)
		return
	}
	respondJSON(r, w, http.StatusCreated, caseResponse{Case: c, Indictment: ind})
}

func (s *Server) handleRequestRevision(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Reason string `json:"reason"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(r, w, err)
		return
	}

	c, err := s.uc.RequestRevision(r.Context(), caseIDFrom(r), usecase.RequestRevisionInput{Reason: req.Reason})
	if err != nil {
		respondError(r, w, err)
		return
	}
	respondJSON(r, w, http.StatusOK, caseResponse{Case: c})
}

func (s *Server) handleAddVerdict(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text   string           `json:"text"`
		Date   time.Time        `json:"date"`
		Status types.CaseStatus `json:"status"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(r, w, err)
		return
	}

	c, err := s.uc.AddVerdict(r.Context(), caseIDFrom(r), usecase.AddVerdictInput{
		Text:   req.Text,
		Date:   req.Date,
		Status: req.Status,
	})
	if err != nil {
		respondError(r, w, err)
		return
	}
	respondJSON(r, w, http.StatusOK, caseResponse{Case: c})
}

func (s *Server) handleAddRevisionVerdict(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text   string           `json:"text"`
		Date   time.Time        `json:"date"`
		Status types.CaseStatus `json:"status"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(r, w, err)
		return
	}

	c, err := s.uc.AddRevisionVerdict(r.Context(), caseIDFrom(r), usecase.AddRevisionVerdictInput{
		Text:   req.Text,
		Date:   req.Date,
		Status: req.Status,
	})
	if err != nil {
		respondError(r, w, err)
		return
	}
	respondJSON(r, w, http.StatusOK, caseResponse{Case: c})
}

func (s *Server) handleCloseCase(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Reason string `json:"reason"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(r, w, err)
		return
	}

	c, ind, err := s.uc.CloseCase(r.Context(), caseIDFrom(r), usecase.CloseCaseInput{Reason: req.Reason})
	if err != nil {
		respondError(r, w, err)
		return
	}
	respondJSON(r, w, http.StatusOK, caseResponse{Case: c, Indictment: ind})
}

func (s *Server) handleSettlement(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Details string `json:"details"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(r, w, err)
		return
	}

	c, ind, err := s.uc.Settle(r.Context(), caseIDFrom(r), usecase.SettlementInput{Details: req.Details})
	if err != nil {
		respondError(r, w, err)
		return
	}
	respondJSON(r, w, http.StatusOK, caseResponse{Case: c, Indictment: ind})
}

func (s *Server) handleProcessPleaDeal(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Response types.PleaDealResponse `json:"response"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(r, w, err)
		return
	}

	c, err := s.uc.ProcessPleaDeal(r.Context(), caseIDFrom(r), usecase.ProcessPleaDealInput{Response: req.Response})
	if err != nil {
		respondError(r, w, err)
		return
	}
	respondJSON(r, w, http.StatusOK, caseResponse{Case: c})
}

func (s *Server) handleUpdateCaseID(w http.ResponseWriter, r *http.Request) {
	var req struct {
		NewID types.CaseID `json:"new_id"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(r, w, err)
		return
	}

	c, err := s.uc.UpdateCaseID(r.Context(), caseIDFrom(r), req.NewID)
	if err != nil {
		respondError(r, w, err)
		return
	}
	respondJSON(r, w, http.StatusOK, caseResponse{Case: c})
}
