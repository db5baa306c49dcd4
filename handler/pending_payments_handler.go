package handler

import (
	"encoding/json"
	"net/http"
)

// ListPendingPayments returns queued payments, optionally filtered to one
// credit with ?credito=.
func (h *PaymentHandler) ListPendingPayments(w http.ResponseWriter, r *http.Request) {
	creditNumber := r.URL.Query().Get("credito")

	var err error
	var records interface{}
	if creditNumber != "" {
		records, err = h.Usecase.ListPendingByCredit(creditNumber)
	} else {
		records, err = h.Usecase.ListAllPending()
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "Failed to read pending payments",
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data:   records,
	})
}

// PendingTotalByCredit returns the summed queued amount for one credit.
func (h *PaymentHandler) PendingTotalByCredit(w http.ResponseWriter, r *http.Request) {
	creditNumber := r.URL.Query().Get("credito")
	if creditNumber == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "credito is required",
		})
		return
	}

	total := h.Usecase.SumPendingByCredit(creditNumber)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"credit_number": creditNumber,
			"total_pending": total,
		},
	})
}
