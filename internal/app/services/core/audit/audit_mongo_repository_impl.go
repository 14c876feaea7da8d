package audit

import (
	"caregate-service/internal/app/contracts"
	"caregate-service/internal/app/models"
	"caregate-service/internal/pkg/constvars"
	"caregate-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

type AuditLogMongoRepository struct {
	Collection *mongo.Collection
}

func NewAuditLogMongoRepository(db *mongo.Client, dbName string) contracts.AuditLogRepository {
	return &AuditLogMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatientLogs),
	}
}

func (repo *AuditLogMongoRepository) Insert(ctx context.Context, auditLog *models.AuditLog) error {
	auditLog.Timestamp = time.Now().UTC()
	_, err := repo.Collection.InsertOne(ctx, auditLog)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}
