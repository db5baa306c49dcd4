package payment

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jaguilar/cobranza-sync/entity"
	"github.com/jaguilar/cobranza-sync/infra/db/model"
	"github.com/jaguilar/cobranza-sync/infra/locker"
)

// fakeDao keeps storage entries and run logs in memory. failStorage makes
// every storage-entry operation error, simulating a broken local disk.
type fakeDao struct {
	entries     map[string]model.StorageEntry
	logs        map[int64]model.SyncRunLog
	nextLogID   int64
	failStorage bool
}

func newFakeDao() *fakeDao {
	return &fakeDao{
		entries: make(map[string]model.StorageEntry),
		logs:    make(map[int64]model.SyncRunLog),
	}
}

var errStorageBroken = errors.New("storage unavailable")

func (f *fakeDao) GetStorageEntry(key string) (model.StorageEntry, bool, error) {
	if f.failStorage {
		return model.StorageEntry{}, false, errStorageBroken
	}
	entry, ok := f.entries[key]
	return entry, ok, nil
}

func (f *fakeDao) UpsertStorageEntry(entry model.StorageEntry) error {
	if f.failStorage {
		return errStorageBroken
	}
	f.entries[entry.Key] = entry
	return nil
}

func (f *fakeDao) DeleteStorageEntry(key string) error {
	if f.failStorage {
		return errStorageBroken
	}
	delete(f.entries, key)
	return nil
}

func (f *fakeDao) CreateSyncRunLog(logEntry *model.SyncRunLog) error {
	f.nextLogID++
	logEntry.ID = f.nextLogID
	f.logs[logEntry.ID] = *logEntry
	return nil
}

func (f *fakeDao) UpdateSyncRunLog(logEntry model.SyncRunLog) error {
	f.logs[logEntry.ID] = logEntry
	return nil
}

func (f *fakeDao) GetSyncRunLogByID(logID int64) (model.SyncRunLog, error) {
	logEntry, ok := f.logs[logID]
	if !ok {
		return logEntry, errors.New("sync run log not found")
	}
	return logEntry, nil
}

func (f *fakeDao) GetSyncRunLogs() ([]model.SyncRunLog, error) {
	logs := make([]model.SyncRunLog, 0, len(f.logs))
	for _, logEntry := range f.logs {
		logs = append(logs, logEntry)
	}
	return logs, nil
}

// fakeSubmitter fails every payment in failIDs (or all of them when failAll
// is set) and records the order of attempts.
type fakeSubmitter struct {
	failAll  bool
	failIDs  map[string]string
	attempts []string
}

func (s *fakeSubmitter) Submit(_ context.Context, record entity.PaymentRecord) entity.SubmitResult {
	s.attempts = append(s.attempts, record.ID)

	if s.failAll {
		return entity.SubmitResult{Success: false, PaymentID: record.ID, Error: "connection error"}
	}
	if msg, ok := s.failIDs[record.ID]; ok {
		return entity.SubmitResult{Success: false, PaymentID: record.ID, Error: msg}
	}
	return entity.SubmitResult{Success: true, PaymentID: record.ID, Data: []byte(`{"ok":true}`)}
}

func newTestUsecase(d *fakeDao, s *fakeSubmitter) *paymentUsecase {
	return &paymentUsecase{
		dao:       d,
		submitter: s,
		locker:    locker.New(),
	}
}

func testRecord(id, credit, amount string) entity.PaymentRecord {
	return entity.PaymentRecord{
		ID:               id,
		CreditNumber:     credit,
		Cycle:            "3",
		Amount:           decimal.RequireFromString(amount),
		PaymentTypeCode:  "P",
		Latitude:         19.43,
		Longitude:        -99.13,
		CaptureTimestamp: time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
		UserID:           "EJ042",
	}
}
