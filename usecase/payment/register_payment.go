package payment

import (
	"context"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/jaguilar/cobranza-sync/consts"
	"github.com/jaguilar/cobranza-sync/entity"
)

// RegisterPayment is the single-payment flow: assign the ID, try the remote
// endpoint once, and fall back to the durable queue on any failure. Only a
// storage error while queuing is a hard failure; that payment is lost and
// the agent has to capture it again.
func (u *paymentUsecase) RegisterPayment(ctx context.Context, req entity.RegisterPaymentRequest) entity.RegisterResult {
	captured := req.CaptureTimestamp
	if captured.IsZero() {
		captured = time.Now()
	}

	id, strategy := GeneratePaymentID(req.CreditNumber, captured, req.UserID, req.Amount)
	if strategy == consts.IDStrategyFallback {
		log.Warnf("[RegisterPayment] Fallback ID %s for credit %s, capture tuple was incomplete", id, req.CreditNumber)
	}

	record := entity.PaymentRecord{
		ID:               id,
		IDSource:         strategy,
		CreditNumber:     req.CreditNumber,
		Cycle:            req.Cycle,
		Amount:           req.Amount,
		PaymentTypeCode:  req.PaymentTypeCode,
		Comments:         req.Comments,
		ClientName:       req.ClientName,
		ReceiptPhotoRef:  req.ReceiptPhotoRef,
		PayDayDate:       req.PayDayDate,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		CaptureTimestamp: captured,
		UserID:           req.UserID,
	}

	submit := u.submitter.Submit(ctx, record)
	if submit.Success {
		log.Infof("[RegisterPayment] Payment %s delivered remotely", record.ID)
		return entity.RegisterResult{
			Success:   true,
			PaymentID: record.ID,
			Data:      submit.Data,
		}
	}

	log.Infof("[RegisterPayment] Payment %s not delivered (%s), queuing locally", record.ID, submit.Error)

	stored, duplicate, err := u.appendPending(record)
	if err != nil {
		log.Errorf("[RegisterPayment] Could not queue payment %s: %v", record.ID, err)
		return entity.RegisterResult{
			Success:   false,
			PaymentID: record.ID,
			Error:     "payment could not be delivered or stored, it must be captured again",
		}
	}

	return entity.RegisterResult{
		Success:      true,
		SavedLocally: true,
		Duplicate:    duplicate,
		PaymentID:    stored.ID,
	}
}
