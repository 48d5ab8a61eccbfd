package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chicodelphi/nutricaoBRL/models"
)

func TestCalculateNeedsMaleSedentaryMaintain(t *testing.T) {
	needs := CalculateNeeds(25, 70, 170, models.GenderMale, models.ActivitySedentary, models.GoalMaintain)

	// 88.36 + 13.4*70 + 4.8*170 - 5.7*25 = 1699.86
	assert.Equal(t, 1700, needs.BMR)
	assert.Equal(t, 2040, needs.DailyCalories)
	assert.Equal(t, 2450, needs.WaterTarget)
}

func TestCalculateNeedsFemaleLightLoseWeight(t *testing.T) {
	needs := CalculateNeeds(25, 70, 170, models.GenderFemale, models.ActivityLight, models.GoalLoseWeight)

	// 447.6 + 9.2*70 + 3.1*170 - 4.3*25 = 1511.1
	assert.Equal(t, 1511, needs.BMR)
	// round(1511.1*1.375 - 500) = round(1577.7625)
	assert.Equal(t, 1578, needs.DailyCalories)
	assert.Equal(t, 2450, needs.WaterTarget)
}

func TestCalculateNeedsGainMuscleSurplus(t *testing.T) {
	maintain := CalculateNeeds(30, 80, 180, models.GenderMale, models.ActivityModerate, models.GoalMaintain)
	gain := CalculateNeeds(30, 80, 180, models.GenderMale, models.ActivityModerate, models.GoalGainMuscle)

	assert.Equal(t, maintain.DailyCalories+300, gain.DailyCalories)
	assert.Equal(t, maintain.BMR, gain.BMR)
}

func TestCalculateNeedsDeterministic(t *testing.T) {
	a := CalculateNeeds(42, 68.5, 172.3, models.GenderFemale, models.ActivityVeryActive, models.GoalMaintain)
	b := CalculateNeeds(42, 68.5, 172.3, models.GenderFemale, models.ActivityVeryActive, models.GoalMaintain)
	assert.Equal(t, a, b)
}

func TestSanitizeAnthropometrics(t *testing.T) {
	age, weight, height := SanitizeAnthropometrics(0, -5, 0)
	assert.Equal(t, DefaultAge, age)
	assert.Equal(t, DefaultWeight, weight)
	assert.Equal(t, DefaultHeight, height)

	// plausible inputs pass through untouched
	age, weight, height = SanitizeAnthropometrics(33, 61.2, 158)
	assert.Equal(t, 33, age)
	assert.Equal(t, 61.2, weight)
	assert.Equal(t, 158.0, height)
}
