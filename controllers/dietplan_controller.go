package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chicodelphi/nutricaoBRL/services"
)

type DietPlanController struct {
	Plans    *services.DietPlanService
	Profiles *services.ProfileService
}

func NewDietPlanController(plans *services.DietPlanService, profiles *services.ProfileService) *DietPlanController {
	return &DietPlanController{Plans: plans, Profiles: profiles}
}

// Generate builds a fresh plan from the stored profile. The previous plan
// is only replaced on success.
func (dc *DietPlanController) Generate(c *gin.Context) {
	profile, err := dc.Profiles.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if profile == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "onboarding required"})
		return
	}

	plan, err := dc.Plans.Generate(c.Request.Context(), *profile)
	if err != nil {
		if errors.Is(err, services.ErrGenerationInFlight) {
			c.JSON(http.StatusConflict, gin.H{"error": "generation already in flight"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// GetCurrent returns the last successfully generated plan, if any.
func (dc *DietPlanController) GetCurrent(c *gin.Context) {
	plan := dc.Plans.Current()
	if plan == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no plan generated yet"})
		return
	}
	c.JSON(http.StatusOK, plan)
}
