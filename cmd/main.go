package main

import (
	"context"
	"log"

	"github.com/Richiestixx/Foodies-app/config"
	"github.com/Richiestixx/Foodies-app/controllers"
	"github.com/Richiestixx/Foodies-app/routes"
	"github.com/Richiestixx/Foodies-app/services"
	"github.com/Richiestixx/Foodies-app/utils"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()
	db := config.InitDB()

	store := services.NewStore(db)
	sessions := services.NewSessionStore()
	feed := services.NewFeedHub()

	detector, err := services.NewRekognitionDetector(ctx, cfg.AWSRegion)
	if err != nil {
		log.Fatalf("rekognition init failed: %v", err)
	}

	generator, err := services.NewVertexGenerator(ctx, cfg.GoogleProjectID, cfg.GoogleLocation, cfg.GoogleCredentials)
	if err != nil {
		log.Fatalf("vertex init failed: %v", err)
	}
	defer generator.Close()

	uploader, err := utils.NewPhotoUploader(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.CloudFrontURL)
	if err != nil {
		log.Fatalf("s3 init failed: %v", err)
	}

	mailer, err := utils.NewMailer(ctx, cfg.AWSRegion, cfg.SESEmail)
	if err != nil {
		log.Fatalf("ses init failed: %v", err)
	}

	notifiers := []services.ResultNotifier{feed}
	var deviceController *controllers.DeviceController
	if cfg.SNSFCMArn != "" {
		push, err := services.NewPushService(ctx, db, cfg.AWSRegion, cfg.SNSFCMArn)
		if err != nil {
			log.Fatalf("sns init failed: %v", err)
		}
		notifiers = append(notifiers, push)
		deviceController = controllers.NewDeviceController(push)
	}

	filter := services.NewFoodFilter(cfg.FoodVocabulary)
	comparator := services.NewMealComparator(generator)

	authService := services.NewAuthService(store, mailer, cfg.JWTSecret)
	userService := services.NewUserService(store)
	mealService := services.NewMealService(store, detector, filter, comparator, uploader, sessions, cfg.ReferenceMeal, notifiers...)
	matchService := services.NewMatchService(generator)
	gameService := services.NewGameService(store)

	r := routes.SetupRouter(db, []byte(cfg.JWTSecret), routes.Handlers{
		Auth:     controllers.NewAuthController(authService, sessions),
		User:     controllers.NewUserController(userService),
		Meal:     controllers.NewMealController(mealService, sessions),
		Match:    controllers.NewMatchController(matchService, userService),
		Home:     controllers.NewHomeController(gameService),
		Device:   deviceController,
		Realtime: controllers.NewRealtimeController(feed),
	})

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
