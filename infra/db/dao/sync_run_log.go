package dao

import (
	"fmt"

	"github.com/jaguilar/cobranza-sync/infra/db/model"
)

func (d *dao) CreateSyncRunLog(logEntry *model.SyncRunLog) error {
	if err := d.db.Create(logEntry).Error; err != nil {
		return fmt.Errorf("failed to create sync run log: %w", err)
	}
	return nil
}

func (d *dao) UpdateSyncRunLog(logEntry model.SyncRunLog) error {
	if err := d.db.Save(&logEntry).Error; err != nil {
		return fmt.Errorf("failed to update sync run log: %w", err)
	}
	return nil
}

func (d *dao) GetSyncRunLogByID(logID int64) (model.SyncRunLog, error) {
	var logEntry model.SyncRunLog
	if err := d.db.First(&logEntry, logID).Error; err != nil {
		return logEntry, fmt.Errorf("sync run log not found: %w", err)
	}
	return logEntry, nil
}

func (d *dao) GetSyncRunLogs() ([]model.SyncRunLog, error) {
	var logs []model.SyncRunLog
	if err := d.db.Order("create_time DESC").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to list sync run logs: %w", err)
	}
	return logs, nil
}
