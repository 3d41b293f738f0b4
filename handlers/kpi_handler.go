package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"contributorkpi/kpi"
	middleware "contributorkpi/middlewares"
	"contributorkpi/models"
	repository "contributorkpi/repositories"
	service "contributorkpi/services"
	"contributorkpi/utils"

	"github.com/sirupsen/logrus"
)

type KPIHandler struct {
	service       service.KPIService
	logger        *logrus.Logger
	defaultWindow kpi.TimeWindow
}

func NewKPIHandler(service service.KPIService, logger *logrus.Logger, defaultWindow kpi.TimeWindow) *KPIHandler {
	return &KPIHandler{
		service:       service,
		logger:        logger,
		defaultWindow: defaultWindow,
	}
}

// GetUserKPI serves GET /api/kpi/users/{userId}?window=30days
func (h *KPIHandler) GetUserKPI(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		utils.HandleMessageResponse(w, "User ID is required", http.StatusBadRequest)
		return
	}

	window := h.defaultWindow
	if raw := r.URL.Query().Get("window"); raw != "" {
		parsed, err := kpi.ParseTimeWindow(raw)
		if err != nil {
			utils.HandleMessageResponse(w, err.Error(), http.StatusBadRequest)
			return
		}
		window = parsed
	}

	h.logger.WithFields(logrus.Fields{
		"user_id":      userID,
		"window":       window,
		"requested_by": middleware.GetUsernameFromContext(r.Context()),
	}).Debug("KPI requested")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := h.service.CalculateUserKPI(ctx, userID, window)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			utils.HandleMessageResponse(w, "User not found", http.StatusNotFound)
		case errors.Is(err, kpi.ErrInvalidTimeWindow):
			utils.HandleMessageResponse(w, err.Error(), http.StatusBadRequest)
		default:
			utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	utils.HandleDataResponse(w, "KPI calculated successfully", result, http.StatusOK)
}

// CalculateKPI serves POST /api/kpi/calculate
func (h *KPIHandler) CalculateKPI(w http.ResponseWriter, r *http.Request) {
	var req models.CalculateKPIRequest
	if err := utils.DecodeAndValidate(w, r, &req); err != nil {
		return
	}

	h.logger.WithFields(logrus.Fields{
		"user_id":      req.User.ID,
		"window":       req.Window,
		"requested_by": middleware.GetUsernameFromContext(r.Context()),
	}).Debug("KPI calculation requested for posted activity")

	result, err := h.service.CalculateFromBundle(r.Context(), req.User, req.ActivityBundle, kpi.TimeWindow(req.Window))
	if err != nil {
		if errors.Is(err, kpi.ErrInvalidTimeWindow) {
			utils.HandleMessageResponse(w, err.Error(), http.StatusBadRequest)
			return
		}
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "KPI calculated successfully", result, http.StatusOK)
}

// GetRoleWeights serves GET /api/kpi/weights
func (h *KPIHandler) GetRoleWeights(w http.ResponseWriter, r *http.Request) {
	utils.HandleDataResponse(w, "Role weights retrieved successfully", h.service.RoleWeights(), http.StatusOK)
}
