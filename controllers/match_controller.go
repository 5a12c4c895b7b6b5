package controllers

import (
	"net/http"
	"strconv"

	"github.com/Richiestixx/Foodies-app/services"

	"github.com/gin-gonic/gin"
)

type MatchController struct {
	Match *services.MatchService
	Users *services.UserService
}

func NewMatchController(match *services.MatchService, users *services.UserService) *MatchController {
	return &MatchController{Match: match, Users: users}
}

// Recommend returns partner recommendations for the authenticated
// user's profile. A degraded capability yields an empty list, not an
// error.
func (mc *MatchController) Recommend(c *gin.Context) {
	uid := c.GetUint("userID")

	profile, err := mc.Users.GetProfile(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	fields := map[string]string{
		"name":   toString(profile["name"]),
		"age":    toString(profile["age"]),
		"gender": toString(profile["gender"]),
		"goal":   toString(profile["goal"]),
	}

	recs := mc.Match.Recommend(c.Request.Context(), fields)
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

func toString(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	default:
		return ""
	}
}
