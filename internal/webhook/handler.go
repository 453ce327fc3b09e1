package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/f3stcharles/f3utils/internal/calendar"
	"github.com/f3stcharles/f3utils/internal/signup"
	"github.com/f3stcharles/f3utils/internal/slack"
)

// requiredLabels are the modal fields a submission must carry, in the order
// they are checked and reported.
var requiredLabels = []string{
	slack.LabelF3Name,
	slack.LabelHospitalName,
	slack.LabelEmailAddress,
	slack.LabelCellPhone,
}

// handleInteraction handles every inbound Slack interaction. Slash commands
// and button presses open the signup dialog; a submitted modal runs the
// signup side effects; anything else is rejected.
func (s *Server) handleInteraction(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodySize+1))
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusInternalServerError)
		return
	}
	if int64(len(body)) > MaxBodySize {
		http.Error(w, "payload too large", http.StatusRequestEntityTooLarge)
		return
	}

	signature := r.Header.Get(SignatureHeader)
	timestamp := r.Header.Get(TimestampHeader)
	if err := s.verifier.Verify(body, timestamp, signature); err != nil {
		s.logger.Warn("interaction signature rejected",
			"error", err,
			"request_id", middleware.GetReqID(r.Context()),
			"remote_addr", r.RemoteAddr,
		)
		switch {
		case errors.Is(err, slack.ErrMissingSignature):
			http.Error(w, "signature header missing", http.StatusBadRequest)
		case errors.Is(err, slack.ErrMissingTimestamp):
			http.Error(w, "timestamp header missing", http.StatusBadRequest)
		default:
			http.Error(w, "invalid signature", http.StatusUnauthorized)
		}
		return
	}

	form, err := url.ParseQuery(string(body))
	if err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}

	switch ix := slack.Classify(form); ix.Kind {
	case slack.KindSlashCommand, slack.KindBlockAction:
		s.displayForm(w, r, ix.TriggerID)
	case slack.KindViewSubmission:
		s.processSubmission(w, r, ix.View)
	default:
		s.logger.Warn("unrecognized interaction", "request_id", middleware.GetReqID(r.Context()))
		http.Error(w, "unknown request", http.StatusBadRequest)
	}
}

// displayForm opens the signup dialog against the interaction's trigger id.
// Triggers are single-use and expire quickly, so a failed open is reported
// upstream rather than retried.
func (s *Server) displayForm(w http.ResponseWriter, r *http.Request, triggerID string) {
	if err := s.dialogs.OpenView(r.Context(), triggerID, slack.SignupModal()); err != nil {
		s.logger.Error("signup dialog open failed",
			"error", err,
			"request_id", middleware.GetReqID(r.Context()),
		)
		http.Error(w, "error opening signup dialog", http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// processSubmission extracts the four field values from the submitted view,
// runs the side effects, and answers with the status modal. Missing fields
// reject the submission before any side effect runs.
func (s *Server) processSubmission(w http.ResponseWriter, r *http.Request, view *slack.View) {
	index := slack.NewViewIndex(view)

	values := make(map[string]string, len(requiredLabels))
	for _, label := range requiredLabels {
		v, ok := index.Field(label)
		if !ok {
			http.Error(w, fmt.Sprintf("%s not specified or not in submission", label), http.StatusBadRequest)
			return
		}
		values[label] = v
	}

	sub := signup.Submission{
		F3Name:       values[slack.LabelF3Name],
		HospitalName: values[slack.LabelHospitalName],
		Email:        values[slack.LabelEmailAddress],
		CellPhone:    values[slack.LabelCellPhone],
	}

	// The side effects must run to completion once the submission is
	// accepted, even if Slack hangs up on the response.
	report := s.submissions.Process(context.WithoutCancel(r.Context()), sub)

	s.respondJSON(w, http.StatusOK, slack.StatusModal(report.Lines()))
}

// handleCalendar serves the Q-signup schedule for a team and date range.
// This endpoint serves region websites, not Slack, so it is not signed.
func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	if s.schedule == nil {
		http.Error(w, "calendar is not configured", http.StatusServiceUnavailable)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}

	teamID := r.PostFormValue("team_id")
	startDate := r.PostFormValue("start_date")
	endDate := r.PostFormValue("end_date")
	if teamID == "" || startDate == "" || endDate == "" {
		http.Error(w, "team_id, start_date and end_date are required", http.StatusBadRequest)
		return
	}

	entries, err := s.schedule.Events(r.Context(), teamID, startDate, endDate)
	if err != nil {
		s.logger.Error("calendar query failed",
			"error", err,
			"team_id", teamID,
			"request_id", middleware.GetReqID(r.Context()),
		)
		http.Error(w, "calendar query failed", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []calendar.Entry{}
	}

	s.respondJSON(w, http.StatusOK, CalendarResponse{
		Code:      http.StatusOK,
		Status:    "OK",
		Responses: entries,
	})
}

// respondJSON sends a JSON response.
func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
