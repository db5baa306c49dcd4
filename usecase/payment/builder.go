package payment

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jaguilar/cobranza-sync/entity"
	"github.com/jaguilar/cobranza-sync/infra/db/dao"
	"github.com/jaguilar/cobranza-sync/infra/db/model"
	"github.com/jaguilar/cobranza-sync/infra/locker"
)

// ErrSyncInProgress is returned when a drain is requested while another one
// holds the guard.
var ErrSyncInProgress = errors.New("a payment sync is already in progress")

// PaymentSubmitter delivers exactly one payment to the remote endpoint.
// Implemented by infra/remote.Client.
type PaymentSubmitter interface {
	Submit(ctx context.Context, record entity.PaymentRecord) entity.SubmitResult
}

type PaymentUsecase interface {
	RegisterPayment(ctx context.Context, req entity.RegisterPaymentRequest) entity.RegisterResult
	DrainQueue(ctx context.Context, operator string) (entity.DrainResult, error)

	ListAllPending() ([]entity.PaymentRecord, error)
	ListPendingByCredit(creditNumber string) ([]entity.PaymentRecord, error)
	SumPendingByCredit(creditNumber string) decimal.Decimal
	ClearPending() error

	GetSyncRunLog(logID int64) (model.SyncRunLog, error)
	GetSyncRunLogs() ([]model.SyncRunLog, error)
}

type paymentUsecase struct {
	dao       dao.DaoMethod
	submitter PaymentSubmitter
	locker    *locker.Locker

	// storeMu serializes read-modify-write cycles on the pending blob.
	storeMu sync.Mutex
}

func NewPaymentUsecase(d dao.DaoMethod, submitter PaymentSubmitter, l *locker.Locker) PaymentUsecase {
	return &paymentUsecase{
		dao:       d,
		submitter: submitter,
		locker:    l,
	}
}
