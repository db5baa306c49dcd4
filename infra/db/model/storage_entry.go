package model

// StorageEntry is a namespaced key holding one serialized blob, the durable
// equivalent of the capture device's local storage. The pending-payment list
// lives in a single entry and is always rewritten whole.
type StorageEntry struct {
	Key        string `gorm:"column:storage_key;primary_key;size:100" json:"key"`
	Value      string `gorm:"type:text;not null" json:"value"`
	UpdateTime int64  `gorm:"not null" json:"update_time"`
}

func (StorageEntry) TableName() string {
	return "storage_entries"
}
