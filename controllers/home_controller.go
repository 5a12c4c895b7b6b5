package controllers

import (
	"net/http"
	"strconv"

	"github.com/Richiestixx/Foodies-app/services"

	"github.com/gin-gonic/gin"
)

type HomeController struct {
	Games *services.GameService
}

func NewHomeController(games *services.GameService) *HomeController {
	return &HomeController{Games: games}
}

// WinningMeals pages through friends' winning meals for the home
// feed. Past-the-end pages return an empty list.
func (hc *HomeController) WinningMeals(c *gin.Context) {
	uid := c.GetUint("userID")

	page := 1
	if raw := c.Query("page"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil && p > 0 {
			page = p
		}
	}

	meals, err := hc.Games.WinningMeals(c.Request.Context(), uid, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"winning_meals": meals, "page": page})
}
