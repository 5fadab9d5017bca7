package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/HarpaCodes/NutriMind/controllers"
	"github.com/HarpaCodes/NutriMind/middlewares"
	"github.com/HarpaCodes/NutriMind/models"
	"github.com/HarpaCodes/NutriMind/services"
)

// SetupRouter wires all endpoints. Session-scoped routes sit behind the
// bearer-token middleware; starting a session is the only public write.
func SetupRouter(h *controllers.Handler, store *services.SessionStore) *gin.Engine {
	registerValidations()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/session", h.StartSession)

	authed := r.Group("/")
	authed.Use(middlewares.SessionMiddleware(store))
	{
		authed.DELETE("/session", h.EndSession)

		authed.GET("/profile", h.GetProfile)
		authed.PUT("/profile", h.UpdateProfile)

		authed.GET("/goals", h.GetGoals)
		authed.PUT("/goals", h.UpdateGoals)

		authed.POST("/food/analyze", h.AnalyzeFood)
		authed.POST("/food/log", h.LogFood)
		authed.GET("/food/log", h.ListFoodLog)

		authed.POST("/exercise/log", h.LogExercise)
		authed.GET("/exercise/log", h.ListExerciseLog)

		authed.POST("/water", h.AddWater)
		authed.POST("/reset", h.ResetDay)

		authed.GET("/dashboard", h.Dashboard)

		authed.GET("/recommendations/exercises", h.ExerciseRecommendations)
		authed.GET("/recommendations/meals", h.MealRecommendations)
	}

	return r
}

// registerValidations adds the activity_level rule to gin's validator engine.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("activity_level", func(fl validator.FieldLevel) bool {
			return models.ValidActivityLevel(fl.Field().String())
		})
	}
}
