package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chicodelphi/nutricaoBRL/services"
	"github.com/chicodelphi/nutricaoBRL/utils"
)

type ProfileController struct {
	Profiles *services.ProfileService
}

func NewProfileController(profiles *services.ProfileService) *ProfileController {
	return &ProfileController{Profiles: profiles}
}

// SaveProfile handles onboarding and "edit profile" alike: the whole
// profile is replaced and the metabolic targets recomputed.
func (pc *ProfileController) SaveProfile(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := pc.Profiles.Save(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, profile)
}

func (pc *ProfileController) GetProfile(c *gin.Context) {
	profile, err := pc.Profiles.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "onboarding required"})
		return
	}

	bmi, err := utils.CalculateBMI(profile.Height, profile.Weight)
	if err != nil {
		c.JSON(http.StatusOK, profile)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profile":      profile,
		"bmi":          bmi,
		"bmi_category": utils.BMICategory(bmi),
	})
}

// ResetData clears everything: profile plus every stored daily log.
func (pc *ProfileController) ResetData(c *gin.Context) {
	if err := pc.Profiles.ResetAll(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
