package main

import (
	"context"
	"log"
	"os"

	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"ideanest/internal/adapter/api"
	"ideanest/internal/adapter/api/handler"
	apimiddleware "ideanest/internal/adapter/api/middleware"
	"ideanest/internal/adapter/api/router"
	"ideanest/internal/adapter/repository"
	"ideanest/internal/domain/service"
	"ideanest/internal/infrastructure/docstore"
	"ideanest/internal/infrastructure/firebase"
	"ideanest/internal/infrastructure/websocket"
	"ideanest/internal/usecase"
	"ideanest/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	store := docstore.New(cfg.DataDir)
	store.Init()

	userRepo := repository.NewJSONDocUserRepository(store)
	ideaRepo := repository.NewJSONDocIdeaRepository(store)
	chatRepo := repository.NewJSONDocChatRepository(store)

	var verifiers []usecase.TokenVerifier

	devTokens := firebase.NewDevTokenVerifier(cfg.DevTokenSecret)
	if cfg.Environment == "development" {
		verifiers = append(verifiers, devTokens)
	}

	if cfg.FirebaseProject != "" {
		var opts []option.ClientOption
		if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
			opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
		} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
			opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
		}

		firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}

		authClient, err := firebaseApp.Auth(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase Auth: %v", err)
		}

		verifiers = append(verifiers, firebase.NewAuthClient(authClient))
	} else if cfg.Environment != "development" {
		log.Fatalf("FIREBASE_PROJECT_ID is required outside development")
	}

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	assistant := service.NewAssistantService()

	authUseCase := usecase.NewAuthUseCase(userRepo)
	ideaUseCase := usecase.NewIdeaUseCase(ideaRepo)
	chatUseCase := usecase.NewChatUseCase(chatRepo, ideaRepo, assistant, wsManager)

	handler.Setup(authUseCase, ideaUseCase, chatUseCase)
	handler.SetupDevTokenHandler(devTokens)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(verifiers...)
	wsHandler := handler.NewWebSocketHandler(wsManager, authMiddleware)

	router.Setup(e, authMiddleware)
	router.SetupDevRouter(e, cfg.Environment)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
