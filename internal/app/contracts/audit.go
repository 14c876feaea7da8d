package contracts

import (
	"caregate-service/internal/app/models"
	"context"
)

// AuditLogRepository is append-only: rows are inserted once per mutating
// outcome and never updated or deleted.
type AuditLogRepository interface {
	Insert(ctx context.Context, auditLog *models.AuditLog) error
}
