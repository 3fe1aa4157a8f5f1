package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"magicwheel/internal/adapter/api"
	"magicwheel/internal/adapter/api/handler"
	apimiddleware "magicwheel/internal/adapter/api/middleware"
	"magicwheel/internal/adapter/api/router"
	"magicwheel/internal/adapter/repository"
	"magicwheel/internal/domain/service"
	"magicwheel/internal/infrastructure/firebase"
	"magicwheel/internal/infrastructure/websocket"
	"magicwheel/internal/usecase"
	"magicwheel/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if path := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", path)
		}
		opts = append(opts, option.WithCredentialsFile(path))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	categoryRepo := repository.NewFirestoreCategoryRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	listingOrderRepo := repository.NewFirestoreListingOrderRepository(firestoreClient)
	wishlistRepo := repository.NewFirestoreWishlistRepository(firestoreClient)
	notificationRepo := repository.NewFirestoreNotificationRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)

	firebaseAuthClient := firebase.NewAuthClient(authClient)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	paymentService := service.NewStripePaymentService(
		cfg.PaymentSecretKey,
		cfg.PaymentPublishableKey,
		cfg.PaymentAPIBaseURL,
	)

	userUseCase := usecase.NewUserUseCase(userRepo)
	catalogUseCase := usecase.NewCatalogUseCase(productRepo, categoryRepo, wishlistRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, userRepo, wsManager)
	wishlistUseCase := usecase.NewWishlistUseCase(wishlistRepo, productRepo, userRepo, notificationUseCase)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, userRepo, wsManager, cfg.Currency)
	listingOrderUseCase := usecase.NewListingOrderUseCase(listingOrderRepo, userRepo, wsManager, cfg.Currency)
	paymentUseCase := usecase.NewPaymentUseCase(paymentService, userRepo, cfg.Currency)
	chatUseCase := usecase.NewChatUseCase(chatRepo, userRepo, wsManager, cfg.ChatHistoryLimit)

	handler.Setup(
		userUseCase,
		catalogUseCase,
		orderUseCase,
		listingOrderUseCase,
		wishlistUseCase,
		notificationUseCase,
		paymentUseCase,
	)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)

	chatHandler := handler.NewChatHandler(chatUseCase)
	wsHandler := handler.NewWebSocketHandler(wsManager, firebaseAuthClient)

	router.Setup(e, authMiddleware)
	router.SetupChatRouter(e, chatHandler, authMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
