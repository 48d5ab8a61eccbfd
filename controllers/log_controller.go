package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chicodelphi/nutricaoBRL/services"
)

type LogController struct {
	Logs     *services.LogService
	Profiles *services.ProfileService
}

func NewLogController(logs *services.LogService, profiles *services.ProfileService) *LogController {
	return &LogController{Logs: logs, Profiles: profiles}
}

func pct(consumed, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := consumed / target
	if p > 1 {
		return 1
	}
	return p
}

// GetToday returns today's log with the derived totals and, when a profile
// exists, consumed/target/percent progress for calories and water.
func (lc *LogController) GetToday(c *gin.Context) {
	today := lc.Logs.LoadForToday()
	totals := today.Totals()

	resp := gin.H{
		"log":    today,
		"totals": totals,
	}

	profile, err := lc.Profiles.Get()
	if err == nil && profile != nil {
		resp["progress"] = gin.H{
			"calories": map[string]float64{
				"consumed": totals.Calories,
				"goal":     float64(profile.DailyCaloriesTarget),
				"percent":  pct(totals.Calories, float64(profile.DailyCaloriesTarget)),
			},
			"water": map[string]float64{
				"consumed": float64(today.WaterConsumed),
				"goal":     float64(profile.WaterTarget),
				"percent":  pct(float64(today.WaterConsumed), float64(profile.WaterTarget)),
			},
		}
	}

	c.JSON(http.StatusOK, resp)
}

// AdjustWater applies a signed delta in ml; the consumed total is clamped
// at zero.
func (lc *LogController) AdjustWater(c *gin.Context) {
	var body struct {
		DeltaMl int `json:"deltaMl"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := lc.Logs.AdjustWater(body.DeltaMl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}
