package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crewpay/crewpay-backend-go/internal/domain/timeentry"
	"github.com/crewpay/crewpay-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimeClockHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListToday(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TimeClockHandlerImpl struct {
	timeClockService timeentry.TimeClockService
}

func NewTimeClockHandler(timeClockService timeentry.TimeClockService) TimeClockHandler {
	return &TimeClockHandlerImpl{timeClockService: timeClockService}
}

// CheckIn implements TimeClockHandler.
func (h *TimeClockHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req timeentry.CheckInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entry, err := h.timeClockService.CheckIn(r.Context(), req)
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee checked in", "employee_id", req.EmployeeID, "entry_id", entry.ID)
	response.Created(w, "Checked in", entry)
}

// CheckOut implements TimeClockHandler.
func (h *TimeClockHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req timeentry.CheckOutRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entry, err := h.timeClockService.CheckOut(r.Context(), req)
	if err != nil {
		slog.Error("CheckOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee checked out", "employee_id", req.EmployeeID, "entry_id", entry.ID)
	response.SuccessWithMessage(w, "Checked out", entry)
}

// List implements TimeClockHandler.
func (h *TimeClockHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := timeentry.TimeEntryFilter{
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: r.URL.Query().Get("sort_order"),
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}

	list, err := h.timeClockService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List time entries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.Entries, &response.Meta{
		Page:       list.Page,
		Limit:      list.Limit,
		TotalItems: list.TotalCount,
		TotalPages: list.TotalPages,
	})
}

// ListToday implements TimeClockHandler.
func (h *TimeClockHandlerImpl) ListToday(w http.ResponseWriter, r *http.Request) {
	today, err := h.timeClockService.ListToday(r.Context())
	if err != nil {
		slog.Error("ListToday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, today)
}

// Get implements TimeClockHandler.
func (h *TimeClockHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	entry, err := h.timeClockService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}

// Update implements TimeClockHandler.
func (h *TimeClockHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req timeentry.UpdateTimeEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update time entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	entry, err := h.timeClockService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update time entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry updated", entry)
}

// Delete implements TimeClockHandler.
func (h *TimeClockHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.timeClockService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete time entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Time entry deleted", "entry_id", id)
	response.SuccessWithMessage(w, "Time entry deleted", nil)
}
