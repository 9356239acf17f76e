package services

import (
	"context"
	"crypto/tls"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/onboard/app/internal/models"
)

// MongoProfileService is an alternate profile backend for deployments that
// keep documents in MongoDB instead of Firestore. Same contract: one document
// per UID, saved by full replacement.
type MongoProfileService struct {
	client      *mongo.Client
	db          *mongo.Database
	profilesCol *mongo.Collection
}

func NewMongoProfileService(ctx context.Context, mongoURI, dbName, collection string) (*MongoProfileService, error) {
	tlsCfg := &tls.Config{
		MinVersion: tls.VersionTLS12,
		MaxVersion: tls.VersionTLS12,
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI).SetTLSConfig(tlsCfg))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	col := db.Collection(collection)

	// Best-effort index.
	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &MongoProfileService{
		client:      client,
		db:          db,
		profilesCol: col,
	}, nil
}

func (s *MongoProfileService) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoProfileService) Get(ctx context.Context, uid string) (*models.Profile, error) {
	var prof models.Profile
	if err := s.profilesCol.FindOne(ctx, bson.M{"user_id": uid}).Decode(&prof); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &prof, nil
}

// Save replaces the whole document, inserting it when absent.
func (s *MongoProfileService) Save(ctx context.Context, profile *models.Profile) error {
	_, err := s.profilesCol.ReplaceOne(
		ctx,
		bson.M{"user_id": profile.UserID},
		profile,
		options.Replace().SetUpsert(true),
	)
	return err
}
