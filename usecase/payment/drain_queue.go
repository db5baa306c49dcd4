package payment

import (
	"context"
	"encoding/json"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/jaguilar/cobranza-sync/consts"
	"github.com/jaguilar/cobranza-sync/entity"
	"github.com/jaguilar/cobranza-sync/infra/db/model"
)

// DrainQueue submits every currently queued payment, one at a time. The run
// works on a snapshot taken at the start; payments queued while it runs wait
// for the next drain. A failed item stays queued and never aborts the rest.
// The guard admits one drain per process; concurrent callers get
// ErrSyncInProgress.
func (u *paymentUsecase) DrainQueue(ctx context.Context, operator string) (entity.DrainResult, error) {
	if !u.locker.TryAcquire(consts.DrainLockKey) {
		return entity.DrainResult{}, ErrSyncInProgress
	}
	defer u.locker.Release(consts.DrainLockKey)

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("[SyncJob] Panic recovered during drain: %v", r)
		}
	}()

	snapshot, err := u.ListAllPending()
	if err != nil {
		log.Errorf("[SyncJob] Could not read pending queue: %v", err)
		return entity.DrainResult{}, err
	}

	log.Infof("[SyncJob] Starting drain of %d pending payments", len(snapshot))

	runLog := u.openRunLog(len(snapshot), operator)

	result := entity.DrainResult{
		RunID:     runLog.ID,
		Total:     len(snapshot),
		Succeeded: []entity.DrainItem{},
		Failed:    []entity.DrainItem{},
	}

	for _, record := range snapshot {
		submit := u.submitter.Submit(ctx, record)

		item := entity.DrainItem{
			PaymentID:    record.ID,
			CreditNumber: record.CreditNumber,
			Amount:       record.Amount,
		}

		if submit.Success {
			// The remote accepted the payment; a removal failure here only
			// means it will be re-offered next drain, where the server-side
			// id_local dedup catches it.
			if err := u.removePending(record.ID); err != nil {
				log.Warnf("[SyncJob] Payment %s accepted but not removed from queue: %v", record.ID, err)
			}
			item.Data = submit.Data
			result.Succeeded = append(result.Succeeded, item)
			log.Infof("[SyncJob] Payment %s delivered", record.ID)
		} else {
			item.Error = submit.Error
			result.Failed = append(result.Failed, item)
			log.Warnf("[SyncJob] Payment %s kept in queue: %s", record.ID, submit.Error)
		}
	}

	result.Success = len(result.Failed) == 0

	u.closeRunLog(runLog, result, operator)

	log.Infof("[SyncJob] Drain finished: %d delivered, %d retained", len(result.Succeeded), len(result.Failed))
	return result, nil
}

// openRunLog records the start of a drain. The log is an audit trail, so a
// write failure is logged and the drain continues without one.
func (u *paymentUsecase) openRunLog(total int, operator string) model.SyncRunLog {
	now := time.Now().Unix()
	runLog := model.SyncRunLog{
		TotalPending: int64(total),
		Status:       consts.StatusRunning,
		Result:       "",
		CreateTime:   now,
		CreateBy:     operator,
		UpdateTime:   now,
		UpdateBy:     operator,
	}
	if err := u.dao.CreateSyncRunLog(&runLog); err != nil {
		log.Warnf("[SyncJob] Could not create sync run log: %v", err)
		runLog.ID = 0
	}
	return runLog
}

func (u *paymentUsecase) closeRunLog(runLog model.SyncRunLog, result entity.DrainResult, operator string) {
	if runLog.ID == 0 {
		return
	}

	summary, err := json.Marshal(result)
	if err != nil {
		log.Warnf("[SyncJob] Could not serialize drain summary: %v", err)
		summary = []byte("{}")
	}

	runLog.Succeeded = int64(len(result.Succeeded))
	runLog.Failed = int64(len(result.Failed))
	runLog.Status = consts.StatusFinished
	runLog.Result = string(summary)
	runLog.UpdateTime = time.Now().Unix()
	runLog.UpdateBy = operator

	if err := u.dao.UpdateSyncRunLog(runLog); err != nil {
		log.Warnf("[SyncJob] Could not update sync run log %d: %v", runLog.ID, err)
	}
}
