package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Richiestixx/Foodies-app/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// AppConfig carries everything the process needs, resolved once at
// startup and handed to the services explicitly.
type AppConfig struct {
	ListenAddr string
	JWTSecret  string

	AWSRegion     string
	S3Bucket      string
	CloudFrontURL string
	SESEmail      string
	SNSFCMArn     string

	GoogleProjectID   string
	GoogleLocation    string
	GoogleCredentials string

	// FoodVocabulary drives the label filter; FilterFood keeps a label
	// iff it contains one of these terms.
	FoodVocabulary []string

	// ReferenceMeal is the counterpart when no live opponent is chosen.
	ReferenceMeal []string
}

const defaultFoodVocabulary = "food,fruit,vegetable,salad,meat,fish,chicken,rice,bread,soup,dessert,snack,meal,dish,cuisine"

const defaultReferenceMeal = "grilled chicken, brown rice, steamed broccoli"

// Load reads .env (when present) and the process environment.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := &AppConfig{
		ListenAddr:        getenv("LISTEN_ADDR", ":8080"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AWSRegion:         os.Getenv("AWS_REGION"),
		S3Bucket:          os.Getenv("S3_BUCKET"),
		CloudFrontURL:     os.Getenv("CLOUDFRONT_URL"),
		SESEmail:          os.Getenv("SES_EMAIL"),
		SNSFCMArn:         os.Getenv("SNS_FCM_ARN"),
		GoogleProjectID:   os.Getenv("GOOGLE_PROJECT_ID"),
		GoogleLocation:    getenv("GOOGLE_LOCATION", "us-central1"),
		GoogleCredentials: os.Getenv("GOOGLE_CREDENTIALS_FILE"),
		FoodVocabulary:    splitList(getenv("FOOD_VOCABULARY", defaultFoodVocabulary)),
		ReferenceMeal:     splitList(getenv("REFERENCE_MEAL", defaultReferenceMeal)),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET not set")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// InitDB opens postgres and migrates the schema.
func InitDB() *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Friendship{},
		&models.Game{},
		&models.UserDevice{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	return db
}
