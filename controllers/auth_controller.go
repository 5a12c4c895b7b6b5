package controllers

import (
	"errors"
	"net/http"

	"github.com/Richiestixx/Foodies-app/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth     *services.AuthService
	Sessions *services.SessionStore
}

func NewAuthController(auth *services.AuthService, sessions *services.SessionStore) *AuthController {
	return &AuthController{Auth: auth, Sessions: sessions}
}

type SignupInput struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Age             int    `json:"age"`
	Gender          string `json:"gender"`
	Goal            string `json:"goal"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

func (ac *AuthController) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Password != input.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match. Please try again."})
		return
	}

	token, err := ac.Auth.Register(c.Request.Context(), services.SignupInput{
		Name:     input.Name,
		Email:    input.Email,
		Age:      input.Age,
		Gender:   input.Gender,
		Goal:     input.Goal,
		Password: input.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": "A user with this email already exists. Please use a different email."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, _, err := ac.Auth.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout clears the session-scoped comparison state.
func (ac *AuthController) Logout(c *gin.Context) {
	ac.Sessions.Clear(c.GetUint("userID"))
	c.JSON(http.StatusOK, gin.H{"message": "You have been logged out."})
}

func (ac *AuthController) ForgotPassword(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ac.Auth.ForgotPassword(c.Request.Context(), input.Email)

	c.JSON(http.StatusOK, gin.H{"message": "If the email exists, a reset code has been sent"})
}

func (ac *AuthController) ResetPassword(c *gin.Context) {
	var input struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := ac.Auth.ResetPassword(c.Request.Context(), input.Token, input.NewPassword); err != nil {
		if errors.Is(err, services.ErrResetTokenInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset"})
}
