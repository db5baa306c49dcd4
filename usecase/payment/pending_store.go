package payment

import (
	"encoding/json"
	"fmt"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"

	"github.com/jaguilar/cobranza-sync/consts"
	"github.com/jaguilar/cobranza-sync/entity"
	"github.com/jaguilar/cobranza-sync/infra/db/model"
)

// The pending queue is one JSON blob under a single storage key. Every
// mutation reads the latest list, rewrites it in memory and persists it
// whole; storeMu keeps those cycles from interleaving in-process.

// readPendingList loads the pending list. A missing entry or a corrupt blob
// reads as empty, never as a failure; only storage I/O errors propagate.
func (u *paymentUsecase) readPendingList() ([]entity.PaymentRecord, error) {
	entry, found, err := u.dao.GetStorageEntry(consts.PendingPaymentsKey)
	if err != nil {
		return nil, err
	}
	if !found || entry.Value == "" {
		return []entity.PaymentRecord{}, nil
	}

	var records []entity.PaymentRecord
	if err := json.Unmarshal([]byte(entry.Value), &records); err != nil {
		log.Warnf("[PendingStore] Corrupt pending blob, treating as empty: %v", err)
		return []entity.PaymentRecord{}, nil
	}
	return records, nil
}

func (u *paymentUsecase) writePendingList(records []entity.PaymentRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to serialize pending payments: %w", err)
	}
	return u.dao.UpsertStorageEntry(model.StorageEntry{
		Key:   consts.PendingPaymentsKey,
		Value: string(raw),
	})
}

func (u *paymentUsecase) ListAllPending() ([]entity.PaymentRecord, error) {
	u.storeMu.Lock()
	defer u.storeMu.Unlock()
	return u.readPendingList()
}

func (u *paymentUsecase) ListPendingByCredit(creditNumber string) ([]entity.PaymentRecord, error) {
	all, err := u.ListAllPending()
	if err != nil {
		return nil, err
	}

	filtered := make([]entity.PaymentRecord, 0, len(all))
	for _, record := range all {
		if record.CreditNumber == creditNumber {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

// appendPending queues a record. Appending an ID that is already queued is a
// successful no-op that returns the stored copy with duplicate=true.
func (u *paymentUsecase) appendPending(record entity.PaymentRecord) (entity.PaymentRecord, bool, error) {
	u.storeMu.Lock()
	defer u.storeMu.Unlock()

	records, err := u.readPendingList()
	if err != nil {
		return entity.PaymentRecord{}, false, err
	}

	for _, existing := range records {
		if existing.ID == record.ID {
			log.Infof("[PendingStore] Payment %s already queued, skipping duplicate", record.ID)
			return existing, true, nil
		}
	}

	records = append(records, record)
	if err := u.writePendingList(records); err != nil {
		return entity.PaymentRecord{}, false, err
	}
	return record, false, nil
}

// removePending drops the record with the given ID. Removing an ID that is
// not queued succeeds.
func (u *paymentUsecase) removePending(paymentID string) error {
	u.storeMu.Lock()
	defer u.storeMu.Unlock()

	records, err := u.readPendingList()
	if err != nil {
		return err
	}

	kept := make([]entity.PaymentRecord, 0, len(records))
	for _, record := range records {
		if record.ID != paymentID {
			kept = append(kept, record)
		}
	}
	if len(kept) == len(records) {
		return nil
	}
	return u.writePendingList(kept)
}

func (u *paymentUsecase) ClearPending() error {
	u.storeMu.Lock()
	defer u.storeMu.Unlock()
	return u.dao.DeleteStorageEntry(consts.PendingPaymentsKey)
}

// SumPendingByCredit totals the queued amounts for one credit. Any read
// error reads as zero; the caller only uses this for display.
func (u *paymentUsecase) SumPendingByCredit(creditNumber string) decimal.Decimal {
	records, err := u.ListPendingByCredit(creditNumber)
	if err != nil {
		log.Errorf("[PendingStore] Failed to total pending payments for credit %s: %v", creditNumber, err)
		return decimal.Zero
	}

	total := decimal.Zero
	for _, record := range records {
		total = total.Add(record.Amount)
	}
	return total
}
