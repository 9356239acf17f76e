package main

import (
	"context"
	"log"
	"net/http"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"google.golang.org/api/option"

	"github.com/onboard/app/internal/config"
	"github.com/onboard/app/internal/handlers"
	appMiddleware "github.com/onboard/app/internal/middleware"
	"github.com/onboard/app/internal/services"
	"github.com/onboard/app/internal/web"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	authClient, store := initFirebase(ctx, cfg)

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	// Services
	identity := services.NewFirebaseIdentity(cfg.FirebaseWebAPIKey, authClient)
	drafts := services.NewDraftService()
	guard := services.NewInflightGuard()
	sessions := appMiddleware.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL)

	// Handlers
	authHandler := handlers.NewAuthHandler(identity, sessions, drafts, guard, renderer, cfg.GoogleClientID)
	setupHandler := handlers.NewSetupHandler(identity, store, drafts, guard, renderer)
	dashboardHandler := handlers.NewDashboardHandler(store, renderer)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Root and unknown paths land on sign-in.
	toLogin := func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
	r.Get("/", toLogin)
	r.NotFound(toLogin)

	// Public routes
	r.Get("/login", authHandler.ShowLogin)
	r.Post("/login", authHandler.Login)
	r.Get("/register", authHandler.ShowRegister)
	r.Post("/register", authHandler.Register)
	r.Post("/logout", authHandler.Logout)
	r.Post("/api/auth/google", authHandler.GoogleLogin)

	// Session-gated routes
	r.Group(func(r chi.Router) {
		r.Use(sessions.Resolve("/login"))

		r.Get("/dashboard", dashboardHandler.Show)
		r.Get("/profile-setup", setupHandler.Show)
		r.Post("/profile-setup", setupHandler.Update)
		r.Post("/profile-setup/interests", setupHandler.Interests)
	})

	// Static assets
	r.Handle("/static/*", web.Static())

	log.Printf("Onboard server starting on %s (store=%s)", cfg.ServerAddress, cfg.ProfileStore)
	if err := http.ListenAndServe(cfg.ServerAddress, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

// initFirebase builds the Admin auth client and the configured profile store.
// A missing auth client is a warning, not a startup failure: password sign-in
// still works through the REST API without it.
func initFirebase(ctx context.Context, cfg *config.Config) (*fbauth.Client, services.ProfileStore) {
	var opts []option.ClientOption
	if cfg.FirebaseCredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.FirebaseCredentialsJSON)))
	}

	var authClient *fbauth.Client
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, opts...)
	if err != nil {
		log.Printf("Warning: failed to initialize Firebase app: %v", err)
	} else {
		authClient, err = app.Auth(ctx)
		if err != nil {
			log.Printf("Warning: failed to initialize Firebase Auth client: %v", err)
		}
	}

	switch cfg.ProfileStore {
	case "firestore":
		if app == nil {
			log.Fatalf("Profile store %q requires a Firebase app", cfg.ProfileStore)
		}
		fsClient, err := app.Firestore(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize Firestore client: %v", err)
		}
		return authClient, services.NewFirestoreProfileService(fsClient, cfg.ProfileCollection)
	case "mongo":
		store, err := services.NewMongoProfileService(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.ProfileCollection)
		if err != nil {
			log.Fatalf("Failed to initialize Mongo profile store: %v", err)
		}
		return authClient, store
	case "file":
		store, err := services.NewFileProfileService(cfg.DataDir)
		if err != nil {
			log.Fatalf("Failed to initialize file profile store: %v", err)
		}
		return authClient, store
	default:
		log.Fatalf("Unknown profile store %q", cfg.ProfileStore)
		return nil, nil
	}
}
