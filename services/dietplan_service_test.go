package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chicodelphi/nutricaoBRL/models"
)

var samplePlan = &models.DietPlan{
	Breakfast:      models.DietMeal{Name: "Pão integral com ovos", Description: "2 ovos mexidos", Calories: 350},
	MorningSnack:   models.DietMeal{Name: "Banana com aveia", Description: "1 banana média", Calories: 150},
	Lunch:          models.DietMeal{Name: "Arroz, feijão e frango", Description: "Prato tradicional", Calories: 650},
	AfternoonSnack: models.DietMeal{Name: "Iogurte natural", Description: "1 pote", Calories: 120},
	Dinner:         models.DietMeal{Name: "Sopa de legumes", Description: "Leve e nutritiva", Calories: 300},
	Tips:           []string{"Beba água!", "Durma bem", "Caminhe 30 minutos"},
}

func testProfile() models.UserProfile {
	return models.UserProfile{
		Name: "Carlos", Age: 35, Weight: 82, Height: 178,
		Gender: models.GenderMale, ActivityLevel: models.ActivityModerate,
		Goal: models.GoalLoseWeight, DailyCaloriesTarget: 2200,
	}
}

func TestGenerateReplacesCurrentPlan(t *testing.T) {
	fake := &fakeInference{plan: samplePlan}
	plans := NewDietPlanService(fake)

	assert.Nil(t, plans.Current())

	plan, err := plans.Generate(context.Background(), testProfile())
	require.NoError(t, err)
	assert.Equal(t, samplePlan, plan)
	assert.Equal(t, samplePlan, plans.Current())
}

func TestGenerateFailureLeavesPreviousPlan(t *testing.T) {
	fake := &fakeInference{plan: samplePlan}
	plans := NewDietPlanService(fake)

	_, err := plans.Generate(context.Background(), testProfile())
	require.NoError(t, err)

	fake.err = errors.New("service unavailable")
	_, err = plans.Generate(context.Background(), testProfile())
	require.Error(t, err)

	// the previously displayed plan stays untouched
	assert.Equal(t, samplePlan, plans.Current())
}

func TestGenerateRejectsConcurrentCall(t *testing.T) {
	fake := &fakeInference{plan: samplePlan, block: make(chan struct{}), started: make(chan struct{}, 1)}
	plans := NewDietPlanService(fake)

	done := make(chan error, 1)
	go func() {
		_, err := plans.Generate(context.Background(), testProfile())
		done <- err
	}()

	select {
	case <-fake.started:
	case <-time.After(time.Second):
		t.Fatal("generation never started")
	}

	_, err := plans.Generate(context.Background(), testProfile())
	assert.ErrorIs(t, err, ErrGenerationInFlight)

	close(fake.block)
	require.NoError(t, <-done)
}

func TestResetDiscardsCurrentPlan(t *testing.T) {
	fake := &fakeInference{plan: samplePlan}
	plans := NewDietPlanService(fake)

	_, err := plans.Generate(context.Background(), testProfile())
	require.NoError(t, err)
	require.NotNil(t, plans.Current())

	plans.Reset()
	assert.Nil(t, plans.Current())
}

func TestResetDropsInFlightGenerationResult(t *testing.T) {
	fake := &fakeInference{plan: samplePlan, block: make(chan struct{}), started: make(chan struct{}, 1)}
	plans := NewDietPlanService(fake)

	done := make(chan error, 1)
	go func() {
		_, err := plans.Generate(context.Background(), testProfile())
		done <- err
	}()

	select {
	case <-fake.started:
	case <-time.After(time.Second):
		t.Fatal("generation never started")
	}

	plans.Reset()
	close(fake.block)
	require.NoError(t, <-done)

	// the result that raced the reset must not become the current plan
	assert.Nil(t, plans.Current())
}

func TestIncompletePlanIsRejected(t *testing.T) {
	partial := *samplePlan
	partial.Dinner = models.DietMeal{}
	assert.False(t, partial.Complete())
	assert.True(t, samplePlan.Complete())
}
