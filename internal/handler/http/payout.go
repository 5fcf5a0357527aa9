package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crewpay/crewpay-backend-go/internal/domain/payout"
	"github.com/crewpay/crewpay-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayoutHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PayoutHandlerImpl struct {
	payoutService payout.PayoutService
}

func NewPayoutHandler(payoutService payout.PayoutService) PayoutHandler {
	return &PayoutHandlerImpl{payoutService: payoutService}
}

// Create implements PayoutHandler. This is the calculator's manual
// path; the webhook path lives in WebhookHandler.
func (h *PayoutHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payout.CreateManualPayoutRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create payout decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	payouts, err := h.payoutService.CreateManual(r.Context(), req)
	if err != nil {
		slog.Error("Create payout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payouts created", "count", len(payouts))
	response.Created(w, "Payouts created", payouts)
}

// List implements PayoutHandler.
func (h *PayoutHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := payout.PayoutFilter{
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: r.URL.Query().Get("sort_order"),
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("calculation_type"); v != "" {
		filter.CalculationType = &v
	}
	if v := r.URL.Query().Get("source"); v != "" {
		filter.Source = &v
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}

	list, err := h.payoutService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List payouts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.Payouts, &response.Meta{
		Page:       list.Page,
		Limit:      list.Limit,
		TotalItems: list.TotalCount,
		TotalPages: list.TotalPages,
	})
}

// Get implements PayoutHandler.
func (h *PayoutHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.payoutService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

// Update implements PayoutHandler.
func (h *PayoutHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req payout.UpdatePayoutRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update payout decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	p, err := h.payoutService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update payout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payout updated", p)
}

// Delete implements PayoutHandler.
func (h *PayoutHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.payoutService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete payout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payout deleted", "payout_id", id)
	response.SuccessWithMessage(w, "Payout deleted", nil)
}
