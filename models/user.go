package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name          string `gorm:"not null"`
	Email         string `gorm:"uniqueIndex;not null"`
	PasswordHash  string `gorm:"not null"`
	Age           int
	Gender        string
	Goal          string
	SubmittedMeal bool
	FoodItems     string // comma-joined items from the latest submission
	MealPhotoURL  string
	ResetToken    string
	ResetTokenExp time.Time
}

// FoodItemList splits the stored items back into a slice.
// Empty when the user has not submitted a meal.
func (u *User) FoodItemList() []string {
	if u.FoodItems == "" {
		return nil
	}
	parts := strings.Split(u.FoodItems, ", ")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// JoinFoodItems is the inverse of FoodItemList.
func JoinFoodItems(items []string) string {
	return strings.Join(items, ", ")
}

type Friendship struct {
	gorm.Model
	User1ID uint `gorm:"index"`
	User2ID uint `gorm:"index"`

	User1 User `gorm:"foreignKey:User1ID"`
	User2 User `gorm:"foreignKey:User2ID"`
}
