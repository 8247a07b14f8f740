// models/downloadHistory.go
package models

import (
	"time"
)

// DownloadHistory records one report download: what kind of report and the
// date range it covered. Field names in JSON match the original API contract
// (`user` is the raw foreign-key id).
type DownloadHistory struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user"`
	User         User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Type         string    `gorm:"size:100;not null" json:"type"`
	FromDate     time.Time `gorm:"not null" json:"fromDate"`
	ToDate       time.Time `gorm:"not null" json:"toDate"`
	DownloadedAt time.Time `gorm:"autoCreateTime" json:"downloadedAt"`
}
