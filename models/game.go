package models

import (
	"time"

	"gorm.io/gorm"
)

// Winner side of a recorded game.
const (
	WinnerUser     = "user"
	WinnerOpponent = "opponent"
	WinnerTie      = "tie"
)

// Game is the durable trace of one meal comparison. The interactive
// result lives in session state; games feed the winning-meals page.
type Game struct {
	gorm.Model
	UserID           uint `gorm:"index"`
	OpponentID       uint `gorm:"index"` // 0 when playing the reference meal
	Winner           string
	UserItems        string // comma-joined snapshot at comparison time
	OpponentItems    string
	UserPhotoURL     string
	OpponentPhotoURL string
	PlayedAt         time.Time
}
