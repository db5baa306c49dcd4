package dao

import (
	"github.com/jaguilar/cobranza-sync/infra/db/model"

	"github.com/jinzhu/gorm"
)

type DaoMethod interface {
	GetStorageEntry(key string) (model.StorageEntry, bool, error)
	UpsertStorageEntry(entry model.StorageEntry) error
	DeleteStorageEntry(key string) error

	CreateSyncRunLog(logEntry *model.SyncRunLog) error
	UpdateSyncRunLog(logEntry model.SyncRunLog) error
	GetSyncRunLogByID(logID int64) (model.SyncRunLog, error)
	GetSyncRunLogs() ([]model.SyncRunLog, error)
}

type dao struct {
	db *gorm.DB
}

func NewDaoMethod(db *gorm.DB) DaoMethod {
	return &dao{db: db}
}
