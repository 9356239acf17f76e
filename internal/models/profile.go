package models

import "time"

// Profile is the per-user profile document, keyed by the auth provider UID.
// Field names follow the document layout in the users collection.
type Profile struct {
	UserID      string    `json:"uid" firestore:"uid" bson:"user_id"`
	Name        string    `json:"name" firestore:"name" bson:"name"`
	PhotoURL    string    `json:"photoURL" firestore:"photoURL" bson:"photo_url,omitempty"`
	Designation string    `json:"designation" firestore:"designation" bson:"designation,omitempty"`
	Phone       string    `json:"phone" firestore:"phone" bson:"phone,omitempty"`
	Address     string    `json:"address" firestore:"address" bson:"address,omitempty"`
	Interests   []string  `json:"interests" firestore:"interests" bson:"interests"`
	Email       string    `json:"email" firestore:"email" bson:"email,omitempty"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt" bson:"updated_at"`
}
