package services

import (
	"context"
	"errors"
	"sync"

	"github.com/chicodelphi/nutricaoBRL/models"
)

var ErrGenerationInFlight = errors.New("plan generation already in flight")

// DietPlanService generates a daily meal plan from the profile. The result
// lives only in memory: regenerating replaces it outright and failures
// leave the previously generated plan untouched.
type DietPlanService struct {
	inference Inference

	mu       sync.Mutex
	inFlight bool
	current  *models.DietPlan
	gen      int // bumped by Reset so a stale generation result is not cached
}

func NewDietPlanService(inference Inference) *DietPlanService {
	return &DietPlanService{inference: inference}
}

// Reset discards the current plan. A generation still in flight completes
// but its result is returned without being cached.
func (s *DietPlanService) Reset() {
	s.mu.Lock()
	s.gen++
	s.current = nil
	s.mu.Unlock()
}

// Generate runs one plan generation. A second call while one is in flight
// is rejected rather than queued.
func (s *DietPlanService) Generate(ctx context.Context, profile models.UserProfile) (*models.DietPlan, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrGenerationInFlight
	}
	s.inFlight = true
	gen := s.gen
	s.mu.Unlock()

	plan, err := s.inference.GenerateDietPlan(ctx, profile)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	if err != nil {
		return nil, err
	}
	if s.gen == gen {
		s.current = plan
	}
	return plan, nil
}

// Current returns the last successfully generated plan, nil before any.
func (s *DietPlanService) Current() *models.DietPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}
