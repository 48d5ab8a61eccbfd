package utils

import (
	"math"

	"github.com/chicodelphi/nutricaoBRL/models"
)

// Defaults used when anthropometric input is missing or implausible.
// Bad input is silently replaced, never rejected.
const (
	DefaultAge    = 25
	DefaultWeight = 70.0  // kg
	DefaultHeight = 170.0 // cm
)

// Needs is the output of the metabolic calculation, rounded to whole units.
type Needs struct {
	BMR           int // kcal/day
	DailyCalories int // kcal/day
	WaterTarget   int // ml/day
}

// SanitizeAnthropometrics clamps out-of-range inputs to the fixed defaults.
// The plausibility bounds match what a human can actually measure.
func SanitizeAnthropometrics(age int, weight, height float64) (int, float64, float64) {
	if age <= 0 || age > 130 {
		age = DefaultAge
	}
	if weight <= 0 || weight > 400 {
		weight = DefaultWeight
	}
	if height <= 0 || height > 250 {
		height = DefaultHeight
	}
	return age, weight, height
}

// CalculateNeeds derives BMR, daily caloric target and hydration target from
// anthropometric and lifestyle inputs using the Revised Harris-Benedict
// equations. Pure and deterministic; callers sanitize inputs first.
func CalculateNeeds(age int, weight, height float64, gender models.Gender, activity models.ActivityLevel, goal models.Goal) Needs {
	var bmr float64
	if gender == models.GenderMale {
		bmr = 88.36 + 13.4*weight + 4.8*height - 5.7*float64(age)
	} else {
		bmr = 447.6 + 9.2*weight + 3.1*height - 4.3*float64(age)
	}

	multiplier := 1.2
	switch activity {
	case models.ActivitySedentary:
		multiplier = 1.2
	case models.ActivityLight:
		multiplier = 1.375
	case models.ActivityModerate:
		multiplier = 1.55
	case models.ActivityActive:
		multiplier = 1.725
	case models.ActivityVeryActive:
		multiplier = 1.9
	}

	dailyCalories := bmr * multiplier

	switch goal {
	case models.GoalLoseWeight:
		dailyCalories -= 500
	case models.GoalGainMuscle:
		dailyCalories += 300
	}

	// 35ml of water per kg of body weight
	waterTarget := weight * 35

	return Needs{
		BMR:           int(math.Round(bmr)),
		DailyCalories: int(math.Round(dailyCalories)),
		WaterTarget:   int(math.Round(waterTarget)),
	}
}
