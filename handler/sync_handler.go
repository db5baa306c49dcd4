package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/gommon/log"

	usecase "github.com/jaguilar/cobranza-sync/usecase/payment"
)

// SyncPendingPayments runs a manual drain of the pending queue ("sync now").
// A drain already in flight answers 409 rather than interleaving.
func (h *PaymentHandler) SyncPendingPayments(w http.ResponseWriter, r *http.Request) {
	operator := r.URL.Query().Get("operator")
	if operator == "" {
		operator = "manual"
	}

	result, err := h.Usecase.DrainQueue(r.Context(), operator)
	if errors.Is(err, usecase.ErrSyncInProgress) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "Failed to sync pending payments",
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data:   result,
	})
}

// ScheduledSync is the cron worker entry point: one guarded drain attempt,
// where a busy guard or an empty queue is a quiet no-op.
func (h *PaymentHandler) ScheduledSync(ctx context.Context) error {
	result, err := h.Usecase.DrainQueue(ctx, "cron")
	if errors.Is(err, usecase.ErrSyncInProgress) {
		log.Infof("[ScheduledSync] Drain already running, skipping")
		return nil
	}
	if err != nil {
		return err
	}

	if result.Total == 0 {
		log.Infof("[ScheduledSync] Queue empty")
		return nil
	}

	log.Infof("[ScheduledSync] Drain run %d: %d delivered, %d retained",
		result.RunID, len(result.Succeeded), len(result.Failed))
	return nil
}
