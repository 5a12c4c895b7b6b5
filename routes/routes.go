package routes

import (
	"github.com/Richiestixx/Foodies-app/controllers"
	"github.com/Richiestixx/Foodies-app/middlewares"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handlers groups everything the router wires up.
type Handlers struct {
	Auth     *controllers.AuthController
	User     *controllers.UserController
	Meal     *controllers.MealController
	Match    *controllers.MatchController
	Home     *controllers.HomeController
	Device   *controllers.DeviceController
	Realtime *controllers.RealtimeController
}

func SetupRouter(db *gorm.DB, jwtSecret []byte, h Handlers) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/signup", h.Auth.Signup)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
	}

	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware(db, jwtSecret))
	{
		protected.POST("/auth/logout", h.Auth.Logout)

		protected.GET("/user/profile", h.User.GetProfile)
		protected.PUT("/user/profile", h.User.UpdateProfile)

		protected.POST("/meal/submit", h.Meal.SubmitPhoto)
		protected.GET("/meal/comparison", h.Meal.GetComparison)

		protected.POST("/match", h.Match.Recommend)
		protected.GET("/home/winning-meals", h.Home.WinningMeals)

		if h.Device != nil {
			protected.POST("/devices", h.Device.Register)
		}
		protected.GET("/ws/feed", h.Realtime.FeedWS)
	}

	return r
}
