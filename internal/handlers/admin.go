package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-synth-exchange/internal/logger"
	"github.com/sbilibin2017/gw-synth-exchange/internal/models"
	"github.com/sbilibin2017/gw-synth-exchange/internal/services"
)

// ConfigAdminer defines the interface that the admin service must implement.
type ConfigAdminer interface {
	GetConfig(ctx context.Context) (models.EngineConfigDB, error)
	SetWaitingPeriodSeconds(ctx context.Context, seconds int64) error
	SetFeeRateBps(ctx context.Context, bps int64) error
	SetEnabled(ctx context.Context, enabled bool) error
}

// NewGetConfigHandler returns the current engine configuration.
// @Summary Get engine configuration
// @Tags admin
// @Produce json
// @Success 200 {object} models.ConfigResponse "Current configuration"
// @Failure 401 {object} models.AdminErrorResponse "Unauthorized"
// @Router /admin/config [get]
// @Security BearerAuth
func NewGetConfigHandler(svc ConfigAdminer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := svc.GetConfig(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.AdminErrorResponse{Error: "Internal server error"})
			return
		}

		resp := models.ConfigResponse{
			WaitingPeriodSeconds: cfg.WaitingPeriodSeconds,
			FeeRateBps:           cfg.FeeRateBps,
			Enabled:              cfg.Enabled,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

// NewSetWaitingPeriodHandler updates the engine waiting period.
// @Summary Set waiting period
// @Description Applies to cooldowns computed after the update, including already-recorded entries
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.WaitingPeriodConfigRequest true "Waiting period"
// @Success 200 {object} models.ConfigResponse "Updated configuration"
// @Failure 400 {object} models.AdminErrorResponse "Invalid value"
// @Failure 401 {object} models.AdminErrorResponse "Unauthorized"
// @Router /admin/config/waiting-period [put]
// @Security BearerAuth
func NewSetWaitingPeriodHandler(svc ConfigAdminer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.WaitingPeriodConfigRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.AdminErrorResponse{Error: "invalid request body"})
			return
		}

		if err := svc.SetWaitingPeriodSeconds(r.Context(), req.Seconds); err != nil {
			writeAdminError(w, err)
			return
		}

		writeUpdatedConfig(w, r, svc)
	}
}

// NewSetFeeRateHandler updates the proportional exchange fee.
// @Summary Set fee rate
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.FeeRateConfigRequest true "Fee rate in basis points"
// @Success 200 {object} models.ConfigResponse "Updated configuration"
// @Failure 400 {object} models.AdminErrorResponse "Invalid value"
// @Failure 401 {object} models.AdminErrorResponse "Unauthorized"
// @Router /admin/config/fee-rate [put]
// @Security BearerAuth
func NewSetFeeRateHandler(svc ConfigAdminer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.FeeRateConfigRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.AdminErrorResponse{Error: "invalid request body"})
			return
		}

		if err := svc.SetFeeRateBps(r.Context(), req.Bps); err != nil {
			writeAdminError(w, err)
			return
		}

		writeUpdatedConfig(w, r, svc)
	}
}

// NewSetEnabledHandler toggles the engine on or off.
// @Summary Enable or disable the engine
// @Description When disabled, every exchange attempt fails without side effects. Balances and recorded entries are unaffected.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.EnabledConfigRequest true "Enabled flag"
// @Success 200 {object} models.ConfigResponse "Updated configuration"
// @Failure 401 {object} models.AdminErrorResponse "Unauthorized"
// @Router /admin/config/enabled [put]
// @Security BearerAuth
func NewSetEnabledHandler(svc ConfigAdminer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.EnabledConfigRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.AdminErrorResponse{Error: "invalid request body"})
			return
		}

		if err := svc.SetEnabled(r.Context(), req.Enabled); err != nil {
			writeAdminError(w, err)
			return
		}

		writeUpdatedConfig(w, r, svc)
	}
}

func writeAdminError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidWaitingPeriod),
		errors.Is(err, services.ErrInvalidFeeRate):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.AdminErrorResponse{Error: err.Error()})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.AdminErrorResponse{Error: "Internal server error"})
	}
}

func writeUpdatedConfig(w http.ResponseWriter, r *http.Request, svc ConfigAdminer) {
	cfg, err := svc.GetConfig(r.Context())
	if err != nil {
		logger.Log.Errorw("failed to read config after update", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.AdminErrorResponse{Error: "Internal server error"})
		return
	}

	resp := models.ConfigResponse{
		WaitingPeriodSeconds: cfg.WaitingPeriodSeconds,
		FeeRateBps:           cfg.FeeRateBps,
		Enabled:              cfg.Enabled,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
