package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crewpay/crewpay-backend-go/internal/domain/setting"
	"github.com/crewpay/crewpay-backend-go/internal/handler/http/response"
)

type SettingHandler interface {
	GetBonusSettings(w http.ResponseWriter, r *http.Request)
	UpdateBonusSettings(w http.ResponseWriter, r *http.Request)
}

type SettingHandlerImpl struct {
	settingService setting.SettingService
}

func NewSettingHandler(settingService setting.SettingService) SettingHandler {
	return &SettingHandlerImpl{settingService: settingService}
}

// GetBonusSettings implements SettingHandler.
func (h *SettingHandlerImpl) GetBonusSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingService.GetBonusSettings(r.Context())
	if err != nil {
		slog.Error("GetBonusSettings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, settings)
}

// UpdateBonusSettings implements SettingHandler.
func (h *SettingHandlerImpl) UpdateBonusSettings(w http.ResponseWriter, r *http.Request) {
	var req setting.UpdateBonusSettingsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateBonusSettings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	settings, err := h.settingService.UpdateBonusSettings(r.Context(), req)
	if err != nil {
		slog.Error("UpdateBonusSettings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Bonus settings updated")
	response.SuccessWithMessage(w, "Settings updated", settings)
}
