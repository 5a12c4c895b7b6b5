package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/Richiestixx/Foodies-app/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Meals    *services.MealService
	Sessions *services.SessionStore
}

func NewMealController(meals *services.MealService, sessions *services.SessionStore) *MealController {
	return &MealController{Meals: meals, Sessions: sessions}
}

// SubmitPhoto accepts a multipart upload (field "image") and runs the
// submission workflow. An optional opponent_id field picks a live
// opponent; without one the reference meal is compared against.
func (mc *MealController) SubmitPhoto(c *gin.Context) {
	uid := c.GetUint("userID")

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file found in request"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	var opponentID uint
	if raw := c.PostForm("opponent_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid opponent_id"})
			return
		}
		opponentID = uint(id)
	}

	result, err := mc.Meals.Submit(c.Request.Context(), uid, image, contentType, opponentID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoImage):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrRecognition):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not analyze the image. Please try again."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"food_items": result.FoodItems,
		"message":    result.Message,
		"comparison": result.Comparison,
	})
}

// GetComparison returns the session's last comparison result, or
// empty defaults when none exists.
func (mc *MealController) GetComparison(c *gin.Context) {
	uid := c.GetUint("userID")
	result := mc.Sessions.LastResult(uid)
	c.JSON(http.StatusOK, result)
}
