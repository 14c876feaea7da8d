package models

import "time"

type AuditOperation string

const (
	AuditOperationCreate AuditOperation = "CREATE"
	AuditOperationUpdate AuditOperation = "UPDATE"
	AuditOperationDelete AuditOperation = "DELETE"
)

type AuditStatus string

const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusFailed  AuditStatus = "failed"
)

// AuditLog is one append-only row per mutating outcome. Timestamp is
// assigned by the repository at insert.
type AuditLog struct {
	ID        string         `bson:"_id,omitempty"`
	Operation AuditOperation `bson:"operation"`
	PatientID string         `bson:"patientId,omitempty"`
	Status    AuditStatus    `bson:"status"`
	Message   string         `bson:"message"`
	Timestamp time.Time      `bson:"timestamp"`
}
