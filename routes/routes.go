package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/chicodelphi/nutricaoBRL/controllers"
)

func SetupRouter(
	profileCtrl *controllers.ProfileController,
	logCtrl *controllers.LogController,
	captureCtrl *controllers.CaptureController,
	planCtrl *controllers.DietPlanController,
	realtimeCtrl *controllers.RealtimeController,
) *gin.Engine {
	r := gin.Default()

	profile := r.Group("/profile")
	{
		profile.POST("", profileCtrl.SaveProfile)
		profile.GET("", profileCtrl.GetProfile)
	}
	r.DELETE("/data", profileCtrl.ResetData)

	log := r.Group("/log")
	{
		log.GET("/today", logCtrl.GetToday)
		log.POST("/water", logCtrl.AdjustWater)
	}

	capture := r.Group("/capture")
	{
		capture.POST("/image", captureCtrl.SelectImage)
		capture.POST("/analyze", captureCtrl.Analyze)
		capture.POST("/confirm", captureCtrl.Confirm)
		capture.POST("/discard", captureCtrl.Discard)
		capture.GET("/state", captureCtrl.GetState)
	}

	plan := r.Group("/diet-plan")
	{
		plan.POST("", planCtrl.Generate)
		plan.GET("", planCtrl.GetCurrent)
	}

	r.GET("/ws/updates", realtimeCtrl.UpdatesWS)

	return r
}
