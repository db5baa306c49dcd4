package model

// SyncRunLog is the audit row written for every queue drain: how many
// pending payments the run saw and the per-item outcome summary as JSON.
type SyncRunLog struct {
	ID           int64  `gorm:"primary_key;auto_increment" json:"id"`
	TotalPending int64  `gorm:"not null" json:"total_pending"`
	Succeeded    int64  `gorm:"not null" json:"succeeded"`
	Failed       int64  `gorm:"not null" json:"failed"`
	Status       int    `gorm:"not null" json:"status"`
	Result       string `gorm:"type:text;not null" json:"result"`
	CreateTime   int64  `gorm:"not null" json:"create_time"`
	CreateBy     string `gorm:"size:100;not null" json:"create_by"`
	UpdateTime   int64  `gorm:"not null" json:"update_time"`
	UpdateBy     string `gorm:"size:100;not null" json:"update_by"`
}
