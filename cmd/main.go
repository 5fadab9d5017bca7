package main

import (
	"log"

	"github.com/HarpaCodes/NutriMind/config"
	"github.com/HarpaCodes/NutriMind/controllers"
	"github.com/HarpaCodes/NutriMind/routes"
	"github.com/HarpaCodes/NutriMind/services"
)

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	gemini := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout)
	nutrition := services.NewNutritionService(gemini)
	store := services.NewSessionStore()

	h := controllers.NewHandler(store, nutrition)
	r := routes.SetupRouter(h, store)

	config.Log.Infof("starting NutriMind on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		config.Log.Fatalf("server exited: %v", err)
	}
}
