package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/gommon/log"

	"github.com/jaguilar/cobranza-sync/entity"
)

var creditNumberPattern = regexp.MustCompile(`^\d{6}$`)

// RegisterPayment handles the capture form submission. Field validation
// lives here at the boundary; the core below assumes it already passed.
func (h *PaymentHandler) RegisterPayment(w http.ResponseWriter, r *http.Request) {
	var req entity.RegisterPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "Invalid request body",
		})
		return
	}

	if err := validateRegisterPaymentRequest(req); err != nil {
		log.Infof("[RegisterPayment] Invalid input: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	result := h.Usecase.RegisterPayment(r.Context(), req)
	if !result.Success {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: result.Error,
			Data:    result,
		})
		return
	}

	message := "payment registered on the server"
	if result.SavedLocally {
		message = "payment saved locally, run a manual sync later"
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status:  "success",
		Message: message,
		Data:    result,
	})
}

func validateRegisterPaymentRequest(req entity.RegisterPaymentRequest) error {
	if !creditNumberPattern.MatchString(req.CreditNumber) {
		return errors.New("credit number must be 6 digits")
	}
	if strings.TrimSpace(req.Cycle) == "" {
		return errors.New("cycle is required")
	}
	if !req.Amount.IsPositive() {
		return errors.New("amount must be greater than 0")
	}
	if strings.TrimSpace(req.PaymentTypeCode) == "" {
		return errors.New("payment type is required")
	}
	if req.Latitude == 0 && req.Longitude == 0 {
		return errors.New("capture location is required")
	}
	if strings.TrimSpace(req.UserID) == "" {
		return errors.New("user id is required")
	}
	return nil
}
