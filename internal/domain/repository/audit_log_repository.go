package repository

import (
	"go-product-catalog/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindAll(db *gorm.DB) ([]entity.AuditLog, error)
	FindByAction(db *gorm.DB, action string) ([]entity.AuditLog, error)
}
