package storage

import "time"

// captureStateID is the primary key of the only capture_state row
const captureStateID = 1

// CaptureStateModel is the GORM model for the capture_state table.
// The table holds a single row describing the current or last session.
type CaptureStateModel struct {
	Active    bool   `gorm:"not null;default:false"`
	BaseURL   string `gorm:"not null;default:''"`
	CreatedAt time.Time
	FileCount int    `gorm:"not null;default:0;check:file_count >= 0"`
	ID        uint   `gorm:"primaryKey"`
	SessionID string `gorm:"not null;default:''"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (CaptureStateModel) TableName() string { return "capture_state" }
