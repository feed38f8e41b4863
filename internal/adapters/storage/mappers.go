package storage

import (
	"github.com/renato0307/sitegrab/internal/domain"
)

// captureStateModelToDomain converts a CaptureStateModel (GORM) to domain.CaptureStatus
func captureStateModelToDomain(m CaptureStateModel) *domain.CaptureStatus {
	return &domain.CaptureStatus{
		Active:    m.Active,
		BaseURL:   m.BaseURL,
		FileCount: m.FileCount,
		SessionID: m.SessionID,
		UpdatedAt: m.UpdatedAt,
	}
}
