package config

import (
	"os"
	"time"
)

type Config struct {
	ServerAddress string
	SessionSecret string
	SessionTTL    time.Duration

	FirebaseProjectID       string
	FirebaseCredentialsJSON string
	FirebaseWebAPIKey       string
	GoogleClientID          string

	// ProfileStore selects the document backend: firestore, mongo, or file.
	ProfileStore      string
	ProfileCollection string
	MongoURI          string
	MongoDatabase     string
	DataDir           string
}

func Load() *Config {
	return &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		SessionSecret: getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
		SessionTTL:    24 * time.Hour,

		FirebaseProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
		FirebaseCredentialsJSON: os.Getenv("FIREBASE_CREDENTIALS_JSON"),
		FirebaseWebAPIKey:       os.Getenv("FIREBASE_WEB_API_KEY"),
		GoogleClientID:          os.Getenv("GOOGLE_OAUTH_CLIENT_ID"),

		ProfileStore:      getEnv("PROFILE_STORE", "firestore"),
		ProfileCollection: getEnv("PROFILE_COLLECTION", "users"),
		MongoURI:          os.Getenv("MONGO_URI"),
		MongoDatabase:     getEnv("MONGO_DATABASE", "onboard"),
		DataDir:           getEnv("DATA_DIR", "./data"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
