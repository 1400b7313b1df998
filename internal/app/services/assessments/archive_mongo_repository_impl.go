package assessments

import (
	"context"

	"onboarding-service/internal/app/contracts"
	"onboarding-service/internal/app/models"
	"onboarding-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SessionArchiveMongoRepository struct {
	Collection *mongo.Collection
}

func NewSessionArchiveMongoRepository(client *mongo.Client, dbName, collectionName string) contracts.SessionArchiveRepository {
	return &SessionArchiveMongoRepository{
		Collection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *SessionArchiveMongoRepository) Insert(ctx context.Context, record *models.ArchivedSession) error {
	_, err := r.Collection.InsertOne(ctx, record)
	if err != nil {
		return exceptions.ErrDBInsertDocument(err)
	}
	return nil
}

func (r *SessionArchiveMongoRepository) FindBySessionID(ctx context.Context, sessionID string) (*models.ArchivedSession, error) {
	var record models.ArchivedSession
	err := r.Collection.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrDBFindDocument(err)
	}
	return &record, nil
}
