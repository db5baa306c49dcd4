package dao

import (
	"fmt"
	"time"

	"github.com/jaguilar/cobranza-sync/infra/db/model"
)

// GetStorageEntry returns the entry for key and whether it exists. A missing
// entry is not an error; callers treat it as an empty blob.
func (d *dao) GetStorageEntry(key string) (model.StorageEntry, bool, error) {
	var entry model.StorageEntry
	result := d.db.Where("storage_key = ?", key).First(&entry)
	if result.RecordNotFound() {
		return entry, false, nil
	}
	if result.Error != nil {
		return entry, false, fmt.Errorf("failed to read storage entry %s: %w", key, result.Error)
	}
	return entry, true, nil
}

func (d *dao) UpsertStorageEntry(entry model.StorageEntry) error {
	entry.UpdateTime = time.Now().Unix()

	var existing model.StorageEntry
	result := d.db.Where("storage_key = ?", entry.Key).First(&existing)
	if result.RecordNotFound() {
		if err := d.db.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to create storage entry %s: %w", entry.Key, err)
		}
		return nil
	}
	if result.Error != nil {
		return fmt.Errorf("failed to read storage entry %s: %w", entry.Key, result.Error)
	}

	existing.Value = entry.Value
	existing.UpdateTime = entry.UpdateTime
	if err := d.db.Save(&existing).Error; err != nil {
		return fmt.Errorf("failed to update storage entry %s: %w", entry.Key, err)
	}
	return nil
}

func (d *dao) DeleteStorageEntry(key string) error {
	if err := d.db.Where("storage_key = ?", key).Delete(&model.StorageEntry{}).Error; err != nil {
		return fmt.Errorf("failed to delete storage entry %s: %w", key, err)
	}
	return nil
}
