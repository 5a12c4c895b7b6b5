package services

import (
	"context"

	"github.com/Richiestixx/Foodies-app/models"
)

const winningMealsPageSize = 10

// WinningMeal is one entry on the home feed.
type WinningMeal struct {
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

// GameService reads recorded games back for the home feed.
type GameService struct {
	store *Store
}

func NewGameService(store *Store) *GameService {
	return &GameService{store: store}
}

// WinningMeals pages through the winners of the user's friends'
// games, newest first. A page past the end is empty, not an error.
func (s *GameService) WinningMeals(ctx context.Context, userID uint, page int) ([]WinningMeal, error) {
	friendIDs, err := s.store.FriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(friendIDs) == 0 {
		return []WinningMeal{}, nil
	}
	if page < 1 {
		page = 1
	}

	var games []models.Game
	err = s.store.db.WithContext(ctx).
		Where("user_id IN ? AND winner <> ?", friendIDs, models.WinnerTie).
		Order("played_at DESC").
		Offset((page - 1) * winningMealsPageSize).
		Limit(winningMealsPageSize).
		Find(&games).Error
	if err != nil {
		return nil, err
	}

	meals := make([]WinningMeal, 0, len(games))
	for _, g := range games {
		meal := WinningMeal{Title: g.UserItems, ImageURL: g.UserPhotoURL}
		if g.Winner == models.WinnerOpponent {
			meal = WinningMeal{Title: g.OpponentItems, ImageURL: g.OpponentPhotoURL}
		}
		meals = append(meals, meal)
	}
	return meals, nil
}
