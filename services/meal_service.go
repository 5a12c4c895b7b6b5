package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Richiestixx/Foodies-app/models"

	"github.com/google/uuid"
)

// ErrNoImage rejects a submission that carries no image data.
var ErrNoImage = errors.New("no image file found in request")

// MealPhotoStorage stores the uploaded photo and returns a URL for
// rendering it. Optional; submissions work without one.
type MealPhotoStorage interface {
	UploadMealPhoto(ctx context.Context, data []byte, contentType string) (string, error)
}

// ResultNotifier is told when a comparison completes. The push
// service and the websocket feed both implement it.
type ResultNotifier interface {
	NotifyResult(userID uint, result ComparisonResult)
}

// MealService runs the submission workflow: validate the upload,
// extract labels, filter to food items, persist them on the profile,
// compare against a counterpart meal, and publish the result.
type MealService struct {
	store      RecordStore
	detector   LabelDetector
	filter     *FoodFilter
	comparator *MealComparator
	photos     MealPhotoStorage
	sessions   *SessionStore
	notifiers  []ResultNotifier

	referenceMeal []string
}

func NewMealService(
	store RecordStore,
	detector LabelDetector,
	filter *FoodFilter,
	comparator *MealComparator,
	photos MealPhotoStorage,
	sessions *SessionStore,
	referenceMeal []string,
	notifiers ...ResultNotifier,
) *MealService {
	return &MealService{
		store:         store,
		detector:      detector,
		filter:        filter,
		comparator:    comparator,
		photos:        photos,
		sessions:      sessions,
		referenceMeal: referenceMeal,
		notifiers:     notifiers,
	}
}

// SubmissionResult is the upload response body.
type SubmissionResult struct {
	FoodItems  []string          `json:"food_items"`
	Message    string            `json:"message,omitempty"`
	Comparison *ComparisonResult `json:"comparison,omitempty"`
}

// Submit runs one workflow execution. opponentID of 0 plays the
// configured reference meal. A failure before the persist step leaves
// the profile untouched; a comparison failure after it does not roll
// the persist back.
func (m *MealService) Submit(ctx context.Context, userID uint, image []byte, contentType string, opponentID uint) (*SubmissionResult, error) {
	if len(image) == 0 {
		return nil, ErrNoImage
	}

	labels, err := m.detector.DetectLabels(ctx, image)
	if err != nil {
		if !errors.Is(err, ErrRecognition) {
			err = fmt.Errorf("%w: %v", ErrRecognition, err)
		}
		return nil, err
	}

	items := m.filter.FilterFood(labels)
	if len(items) == 0 {
		return &SubmissionResult{
			FoodItems: []string{},
			Message:   "no food items identified",
		}, nil
	}

	var photoURL string
	if m.photos != nil {
		photoURL, err = m.photos.UploadMealPhoto(ctx, image, contentType)
		if err != nil {
			log.Printf("meal photo upload failed: %v", err)
			photoURL = ""
		}
	}

	if err := m.store.SaveSubmission(ctx, userID, items, photoURL); err != nil {
		return nil, err
	}

	// The submission is committed; everything past this point only
	// enriches the response.
	result := m.compare(ctx, userID, items, photoURL, opponentID)
	return &SubmissionResult{FoodItems: items, Comparison: result}, nil
}

func (m *MealService) compare(ctx context.Context, userID uint, items []string, photoURL string, opponentID uint) *ComparisonResult {
	opponentItems := m.referenceMeal
	opponentPhoto := ""

	if opponentID != 0 {
		opponent, err := m.store.FindByID(ctx, opponentID)
		switch {
		case err != nil:
			log.Printf("opponent %d not found, using reference meal: %v", opponentID, err)
		case !opponent.SubmittedMeal:
			log.Printf("opponent %d has not submitted a meal, using reference meal", opponentID)
		default:
			opponentItems = opponent.FoodItemList()
			opponentPhoto = opponent.MealPhotoURL
		}
	}

	outcome := m.comparator.CompareMeals(ctx, items, opponentItems)

	result := ComparisonResult{
		ID:               uuid.New().String(),
		UserItems:        items,
		OpponentItems:    opponentItems,
		Winner:           winnerFor(outcome),
		UserPhotoURL:     photoURL,
		OpponentPhotoURL: opponentPhoto,
	}

	m.sessions.SetResult(userID, result)

	game := &models.Game{
		UserID:           userID,
		OpponentID:       opponentID,
		Winner:           result.Winner,
		UserItems:        models.JoinFoodItems(items),
		OpponentItems:    models.JoinFoodItems(opponentItems),
		UserPhotoURL:     photoURL,
		OpponentPhotoURL: opponentPhoto,
		PlayedAt:         time.Now(),
	}
	if err := m.store.RecordGame(ctx, game); err != nil {
		log.Printf("failed to record game for user %d: %v", userID, err)
	}

	for _, n := range m.notifiers {
		n.NotifyResult(userID, result)
		if opponentID != 0 {
			n.NotifyResult(opponentID, result)
		}
	}

	return &result
}

func winnerFor(outcome Outcome) string {
	switch outcome {
	case OutcomeA:
		return models.WinnerUser
	case OutcomeB:
		return models.WinnerOpponent
	default:
		return models.WinnerTie
	}
}
