package services

import (
	"fmt"

	"github.com/chicodelphi/nutricaoBRL/models"
	"github.com/chicodelphi/nutricaoBRL/storage"
	"github.com/chicodelphi/nutricaoBRL/utils"
)

type ProfileInput struct {
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Gender        string  `json:"gender"`        // "male" | "female"
	ActivityLevel string  `json:"activityLevel"` // sedentary | light | moderate | active | very-active
	Goal          string  `json:"goal"`          // lose-weight | maintain | gain-muscle
	IsVegan       bool    `json:"isVegan"`
}

type ProfileService struct {
	store      storage.Store
	resetHooks []func()
}

func NewProfileService(store storage.Store) *ProfileService {
	return &ProfileService{store: store}
}

// OnReset registers fn to run after a full data reset so session-holding
// services can drop their in-memory state along with the stored keys.
// Registration happens at wiring time, before any requests are served.
func (s *ProfileService) OnReset(fn func()) {
	s.resetHooks = append(s.resetHooks, fn)
}

// Save builds the profile from onboarding input and persists it. The
// metabolic targets are computed here, once; editing the profile goes
// through Save again and replaces everything wholesale.
func (s *ProfileService) Save(input ProfileInput) (*models.UserProfile, error) {
	age, weight, height := utils.SanitizeAnthropometrics(input.Age, input.Weight, input.Height)

	gender := models.Gender(input.Gender)
	if gender != models.GenderMale {
		gender = models.GenderFemale
	}

	profile := &models.UserProfile{
		Name:          input.Name,
		Age:           age,
		Weight:        weight,
		Height:        height,
		Gender:        gender,
		ActivityLevel: models.ActivityLevel(input.ActivityLevel),
		Goal:          models.Goal(input.Goal),
		IsVegan:       input.IsVegan,
	}

	needs := utils.CalculateNeeds(age, weight, height, gender, profile.ActivityLevel, profile.Goal)
	profile.BMR = needs.BMR
	profile.DailyCaloriesTarget = needs.DailyCalories
	profile.WaterTarget = needs.WaterTarget

	if err := s.store.Put(storage.ProfileKey, profile); err != nil {
		return nil, fmt.Errorf("failed to persist profile: %w", err)
	}
	return profile, nil
}

// Get returns the stored profile, or nil when onboarding has not happened.
// Absence is a normal state, not an error.
func (s *ProfileService) Get() (*models.UserProfile, error) {
	var profile models.UserProfile
	found, err := s.store.Get(storage.ProfileKey, &profile)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &profile, nil
}

// ResetAll wipes every stored key: profile and all daily logs. Reset
// hooks then clear the session state derived from them.
func (s *ProfileService) ResetAll() error {
	if err := s.store.Reset(); err != nil {
		return err
	}
	for _, fn := range s.resetHooks {
		fn()
	}
	return nil
}
