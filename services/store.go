package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Richiestixx/Foodies-app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrDuplicateEmail    = errors.New("a user with this email already exists")
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrUserNotFound      = errors.New("user not found")
)

// RecordStore is the slice of persistence the meal workflow needs.
// The gorm-backed Store implements it; tests inject a fake.
type RecordStore interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	// SaveSubmission writes the food items, submitted flag and photo
	// URL in one transaction so no reader observes a submitted user
	// with an empty item list.
	SaveSubmission(ctx context.Context, userID uint, items []string, photoURL string) error
	RecordGame(ctx context.Context, game *models.Game) error
}

// Store is the gorm-backed record store.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) Create(ctx context.Context, user *models.User) error {
	err := s.db.WithContext(ctx).Create(user).Error
	if err != nil && isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (s *Store) Save(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Save(user).Error
}

// SaveSubmission locks the profile row for the duration of the write
// so concurrent submissions for the same user serialize.
func (s *Store) SaveSubmission(ctx context.Context, userID uint, items []string, photoURL string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		user.FoodItems = models.JoinFoodItems(items)
		user.SubmittedMeal = len(items) > 0
		if photoURL != "" {
			user.MealPhotoURL = photoURL
		}
		return tx.Save(&user).Error
	})
}

func (s *Store) RecordGame(ctx context.Context, game *models.Game) error {
	if game.PlayedAt.IsZero() {
		game.PlayedAt = time.Now()
	}
	return s.db.WithContext(ctx).Create(game).Error
}

// FriendIDs returns the ids on either side of the user's friendships.
func (s *Store) FriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	var friendships []models.Friendship
	err := s.db.WithContext(ctx).
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Find(&friendships).Error
	if err != nil {
		return nil, err
	}

	var ids []uint
	for _, f := range friendships {
		if f.User1ID == userID {
			ids = append(ids, f.User2ID)
		} else {
			ids = append(ids, f.User1ID)
		}
	}
	return ids, nil
}

func isUniqueViolation(err error) bool {
	// 23505 is postgres unique_violation; gorm surfaces the driver
	// message verbatim.
	return strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key")
}
