package http

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/crewpay/crewpay-backend-go/internal/domain/payout"
)

// WebhookHandler receives "project closed" events from the project
// management tool. Its JSON shapes are a flat external contract agreed
// with that tool and deliberately bypass the response envelope used by
// the rest of the API.
type WebhookHandler interface {
	ProjectWebhook(w http.ResponseWriter, r *http.Request)
}

type WebhookHandlerImpl struct {
	payoutService payout.PayoutService

	// secret is compared against X-Webhook-Secret when non-empty.
	// Empty means the endpoint accepts unauthenticated calls.
	secret string
}

func NewWebhookHandler(payoutService payout.PayoutService, secret string) WebhookHandler {
	return &WebhookHandlerImpl{
		payoutService: payoutService,
		secret:        secret,
	}
}

type webhookSuccessBody struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Payouts []payout.PayoutResponse `json:"payouts"`
	Skipped []string                `json:"skipped_employees,omitempty"`
}

type webhookErrorBody struct {
	Error           string                  `json:"error"`
	Message         string                  `json:"message,omitempty"`
	ExistingPayouts []payout.PayoutResponse `json:"existing_payouts,omitempty"`
}

func writeWebhookJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// ProjectWebhook implements WebhookHandler.
func (h *WebhookHandlerImpl) ProjectWebhook(w http.ResponseWriter, r *http.Request) {
	if h.secret != "" {
		provided := r.Header.Get("X-Webhook-Secret")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(h.secret)) != 1 {
			slog.Warn("Webhook rejected: bad secret")
			writeWebhookJSON(w, http.StatusUnauthorized, webhookErrorBody{Error: "Unauthorized"})
			return
		}
	}

	var req payout.WebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Webhook decode error", "error", err)
		writeWebhookJSON(w, http.StatusBadRequest, webhookErrorBody{Error: "Missing required fields"})
		return
	}

	result, err := h.payoutService.ProcessWebhook(r.Context(), req)
	if err != nil {
		h.writeWebhookError(w, req, err)
		return
	}

	slog.Info("Webhook processed",
		"project_title", req.ProjectTitle,
		"payouts", len(result.Payouts),
		"skipped", len(result.Skipped),
	)
	writeWebhookJSON(w, http.StatusOK, webhookSuccessBody{
		Success: true,
		Message: result.Message,
		Payouts: result.Payouts,
		Skipped: result.Skipped,
	})
}

func (h *WebhookHandlerImpl) writeWebhookError(w http.ResponseWriter, req payout.WebhookRequest, err error) {
	var dupErr *payout.DuplicateJobError
	if errors.As(err, &dupErr) {
		existing := make([]payout.PayoutResponse, 0, len(dupErr.Existing))
		for _, p := range dupErr.Existing {
			existing = append(existing, p.ToResponse())
		}
		slog.Warn("Webhook rejected: duplicate job", "job_id", dupErr.JobID)
		writeWebhookJSON(w, http.StatusConflict, webhookErrorBody{
			Error:           "Duplicate payouts",
			Message:         "Payouts for this job have already been created",
			ExistingPayouts: existing,
		})
		return
	}

	switch {
	case errors.Is(err, payout.ErrMissingFields):
		writeWebhookJSON(w, http.StatusBadRequest, webhookErrorBody{Error: "Missing required fields"})
	case errors.Is(err, payout.ErrNoMatchingEmployees):
		slog.Warn("Webhook rejected: no matching employees", "project_title", req.ProjectTitle)
		writeWebhookJSON(w, http.StatusBadRequest, webhookErrorBody{Error: "No matching project-based employees found"})
	case errors.Is(err, payout.ErrNoPayoutsCalculated):
		slog.Warn("Webhook rejected: nothing to pay", "project_title", req.ProjectTitle)
		writeWebhookJSON(w, http.StatusBadRequest, webhookErrorBody{Error: "No payouts could be calculated"})
	default:
		slog.Error("Webhook processing error", "error", err)
		writeWebhookJSON(w, http.StatusInternalServerError, webhookErrorBody{Error: "Internal server error"})
	}
}
