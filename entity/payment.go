package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRecord is a payment captured in the field. Once created it is never
// mutated; reconciliation removes it from the pending store on remote
// acceptance or leaves it untouched for a later retry.
type PaymentRecord struct {
	ID               string          `json:"id"`
	IDSource         string          `json:"id_source,omitempty"`
	CreditNumber     string          `json:"credit_number"`
	Cycle            string          `json:"cycle"`
	Amount           decimal.Decimal `json:"amount"`
	PaymentTypeCode  string          `json:"payment_type"`
	Comments         string          `json:"comments,omitempty"`
	ClientName       string          `json:"client_name,omitempty"`
	ReceiptPhotoRef  string          `json:"receipt_photo,omitempty"`
	PayDayDate       string          `json:"pay_day_date,omitempty"`
	Latitude         float64         `json:"latitude"`
	Longitude        float64         `json:"longitude"`
	CaptureTimestamp time.Time       `json:"capture_timestamp"`
	UserID           string          `json:"user_id"`
}

// RegisterPaymentRequest is the payload posted by the capture UI after its
// own form validation has passed.
type RegisterPaymentRequest struct {
	CreditNumber     string          `json:"credit_number"`
	Cycle            string          `json:"cycle"`
	Amount           decimal.Decimal `json:"amount"`
	PaymentTypeCode  string          `json:"payment_type"`
	Comments         string          `json:"comments"`
	ClientName       string          `json:"client_name"`
	ReceiptPhotoRef  string          `json:"receipt_photo"`
	PayDayDate       string          `json:"pay_day_date"`
	Latitude         float64         `json:"latitude"`
	Longitude        float64         `json:"longitude"`
	CaptureTimestamp time.Time       `json:"capture_timestamp"`
	UserID           string          `json:"user_id"`
}

// SubmitResult classifies a single delivery attempt. Business rejection and
// network unreachability share the failure shape on purpose: the coordinator
// queues both for a later drain.
type SubmitResult struct {
	Success   bool            `json:"success"`
	PaymentID string          `json:"payment_id"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// RegisterResult is the outcome of the submit-then-queue flow. Exactly one
// of three states holds: delivered remotely (Success, !SavedLocally), queued
// for manual sync (Success, SavedLocally), or lost (!Success).
type RegisterResult struct {
	Success      bool            `json:"success"`
	SavedLocally bool            `json:"saved_locally"`
	Duplicate    bool            `json:"duplicate,omitempty"`
	PaymentID    string          `json:"payment_id"`
	Data         json.RawMessage `json:"data,omitempty"`
	Error        string          `json:"error,omitempty"`
}

// DrainItem is one payment's outcome within a batch drain.
type DrainItem struct {
	PaymentID    string          `json:"payment_id"`
	CreditNumber string          `json:"credit_number"`
	Amount       decimal.Decimal `json:"amount"`
	Data         json.RawMessage `json:"data,omitempty"`
	Error        string          `json:"error,omitempty"`
}

// DrainResult aggregates a full drain run. Success is true only when every
// queued payment was delivered.
type DrainResult struct {
	Success   bool        `json:"success"`
	RunID     int64       `json:"run_id,omitempty"`
	Total     int         `json:"total"`
	Succeeded []DrainItem `json:"succeeded"`
	Failed    []DrainItem `json:"failed"`
}
