package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/onboard/app/internal/models"
)

// FirestoreProfileService stores profiles as documents in a single Firestore
// collection, keyed by UID. This is the primary backend; the store enforces
// its own security rules, which surface here as permission-denied faults.
type FirestoreProfileService struct {
	client     *firestore.Client
	collection string
}

func NewFirestoreProfileService(client *firestore.Client, collection string) *FirestoreProfileService {
	return &FirestoreProfileService{client: client, collection: collection}
}

func (s *FirestoreProfileService) Get(ctx context.Context, uid string) (*models.Profile, error) {
	snap, err := s.client.Collection(s.collection).Doc(uid).Get(ctx)
	if err != nil {
		return nil, classifyFirestoreErr(err)
	}

	var prof models.Profile
	if err := snap.DataTo(&prof); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", uid, err)
	}
	return &prof, nil
}

// Save overwrites the document for profile.UserID. Set without merge options
// replaces any prior record in full.
func (s *FirestoreProfileService) Save(ctx context.Context, profile *models.Profile) error {
	_, err := s.client.Collection(s.collection).Doc(profile.UserID).Set(ctx, profile)
	if err != nil {
		return classifyFirestoreErr(err)
	}
	return nil
}

func (s *FirestoreProfileService) Close() error {
	return s.client.Close()
}

func classifyFirestoreErr(err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return ErrProfileNotFound
	case codes.PermissionDenied:
		return ErrPermissionDenied
	case codes.Unauthenticated:
		return ErrUnauthenticated
	default:
		return err
	}
}
