package services

import (
	"context"

	"github.com/Richiestixx/Foodies-app/models"
)

type UserService struct {
	store *Store
}

func NewUserService(store *Store) *UserService {
	return &UserService{store: store}
}

type ProfileInput struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
	Goal   string `json:"goal"`
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (map[string]interface{}, error) {
	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"id":             user.ID,
		"name":           user.Name,
		"email":          user.Email,
		"age":            user.Age,
		"gender":         user.Gender,
		"goal":           user.Goal,
		"submitted_meal": user.SubmittedMeal,
		"food_items":     user.FoodItemList(),
		"meal_photo_url": user.MealPhotoURL,
	}, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input ProfileInput) (*models.User, error) {
	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Age > 0 {
		user.Age = input.Age
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.Goal != "" {
		user.Goal = input.Goal
	}

	if err := s.store.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
