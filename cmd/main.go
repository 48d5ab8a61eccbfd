package main

import (
	"os"

	"github.com/chicodelphi/nutricaoBRL/config"
	"github.com/chicodelphi/nutricaoBRL/controllers"
	"github.com/chicodelphi/nutricaoBRL/routes"
	"github.com/chicodelphi/nutricaoBRL/services"
	"github.com/chicodelphi/nutricaoBRL/utils"
)

func main() {
	config.LoadEnv()
	config.InitStore()
	utils.InitS3()

	hub := services.NewRealtimeHub()
	profiles := services.NewProfileService(config.Store)
	logs := services.NewLogService(config.Store, profiles, hub)
	gemini := services.NewGeminiService()
	capture := services.NewCaptureService(gemini, logs, profiles)
	plans := services.NewDietPlanService(gemini)
	profiles.OnReset(plans.Reset)

	r := routes.SetupRouter(
		controllers.NewProfileController(profiles),
		controllers.NewLogController(logs, profiles),
		controllers.NewCaptureController(capture),
		controllers.NewDietPlanController(plans, profiles),
		controllers.NewRealtimeController(hub),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
