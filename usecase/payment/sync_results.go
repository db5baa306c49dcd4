package payment

import (
	"github.com/jaguilar/cobranza-sync/infra/db/model"
)

func (u *paymentUsecase) GetSyncRunLog(logID int64) (model.SyncRunLog, error) {
	return u.dao.GetSyncRunLogByID(logID)
}

func (u *paymentUsecase) GetSyncRunLogs() ([]model.SyncRunLog, error) {
	return u.dao.GetSyncRunLogs()
}
