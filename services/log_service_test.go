package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chicodelphi/nutricaoBRL/models"
	"github.com/chicodelphi/nutricaoBRL/storage"
	"github.com/chicodelphi/nutricaoBRL/utils"
)

// failingStore passes through to the wrapped store but can be switched to
// reject writes, simulating a storage outage.
type failingStore struct {
	storage.Store
	failPut bool
}

func (f *failingStore) Put(key string, value any) error {
	if f.failPut {
		return errors.New("write rejected")
	}
	return f.Store.Put(key, value)
}

func onboardedProfile(t *testing.T, store storage.Store) *ProfileService {
	t.Helper()
	profiles := NewProfileService(store)
	_, err := profiles.Save(ProfileInput{
		Name: "Ana", Age: 25, Weight: 70, Height: 170,
		Gender: "female", ActivityLevel: "light", Goal: "lose-weight",
	})
	require.NoError(t, err)
	return profiles
}

func TestLoadForTodayEmptyWhenAbsent(t *testing.T) {
	store := storage.NewMemoryStore()
	logs := NewLogService(store, NewProfileService(store), nil)

	today := logs.LoadForToday()
	assert.Equal(t, utils.TodayString(), today.Date)
	assert.Empty(t, today.Meals)
	assert.Equal(t, 0, today.WaterConsumed)
}

func TestAppendMealPrependsMostRecentFirst(t *testing.T) {
	store := storage.NewMemoryStore()
	logs := NewLogService(store, onboardedProfile(t, store), nil)

	_, err := logs.AppendMeal(models.MealEntry{FoodName: "A", Calories: 100})
	require.NoError(t, err)
	updated, err := logs.AppendMeal(models.MealEntry{FoodName: "B", Calories: 200})
	require.NoError(t, err)

	require.Len(t, updated.Meals, 2)
	assert.Equal(t, "B", updated.Meals[0].FoodName)
	assert.Equal(t, "A", updated.Meals[1].FoodName)
}

func TestAdjustWaterClampsAtZero(t *testing.T) {
	store := storage.NewMemoryStore()
	logs := NewLogService(store, onboardedProfile(t, store), nil)

	updated, err := logs.AdjustWater(100)
	require.NoError(t, err)
	assert.Equal(t, 100, updated.WaterConsumed)

	updated, err = logs.AdjustWater(-250)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.WaterConsumed)
}

func TestTotalsAlwaysMatchMealList(t *testing.T) {
	store := storage.NewMemoryStore()
	logs := NewLogService(store, onboardedProfile(t, store), nil)

	assert.Equal(t, models.NutritionTotals{}, logs.Totals())

	_, err := logs.AppendMeal(models.MealEntry{FoodName: "arroz e feijão", Calories: 450, Protein: 20, Carbs: 70, Fats: 8})
	require.NoError(t, err)
	_, err = logs.AppendMeal(models.MealEntry{FoodName: "salada", Calories: 120, Protein: 3, Carbs: 10, Fats: 7})
	require.NoError(t, err)

	totals := logs.Totals()
	assert.Equal(t, 570.0, totals.Calories)
	assert.Equal(t, 23.0, totals.Protein)
	assert.Equal(t, 80.0, totals.Carbs)
	assert.Equal(t, 15.0, totals.Fats)
}

func TestMutationsPersistSynchronously(t *testing.T) {
	store := storage.NewMemoryStore()
	logs := NewLogService(store, onboardedProfile(t, store), nil)

	_, err := logs.AppendMeal(models.MealEntry{FoodName: "tapioca", Calories: 300})
	require.NoError(t, err)
	_, err = logs.AdjustWater(500)
	require.NoError(t, err)

	var persisted models.DailyLog
	found, err := store.Get(storage.LogKey(utils.TodayString()), &persisted)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 500, persisted.WaterConsumed)
	require.Len(t, persisted.Meals, 1)
	assert.Equal(t, "tapioca", persisted.Meals[0].FoodName)

	// a fresh service instance sees the persisted state
	logs2 := NewLogService(store, NewProfileService(store), nil)
	assert.Equal(t, 500, logs2.LoadForToday().WaterConsumed)
}

func TestResetDropsCachedLog(t *testing.T) {
	store := storage.NewMemoryStore()
	profiles := onboardedProfile(t, store)
	logs := NewLogService(store, profiles, nil)

	_, err := logs.AppendMeal(models.MealEntry{FoodName: "coxinha", Calories: 280})
	require.NoError(t, err)

	require.NoError(t, profiles.ResetAll())

	// the wiped meal must not survive in the cache
	today := logs.LoadForToday()
	assert.Empty(t, today.Meals)
	assert.Equal(t, 0, today.WaterConsumed)

	// re-onboarding and mutating must not re-persist the wiped meal
	_, err = profiles.Save(ProfileInput{
		Name: "Ana", Age: 25, Weight: 70, Height: 170,
		Gender: "female", ActivityLevel: "light", Goal: "lose-weight",
	})
	require.NoError(t, err)
	_, err = logs.AdjustWater(100)
	require.NoError(t, err)

	var persisted models.DailyLog
	found, err := store.Get(storage.LogKey(utils.TodayString()), &persisted)
	require.NoError(t, err)
	require.True(t, found)
	assert.Empty(t, persisted.Meals)
	assert.Equal(t, 100, persisted.WaterConsumed)
}

func TestAppendMealRolledBackOnPersistFailure(t *testing.T) {
	store := &failingStore{Store: storage.NewMemoryStore()}
	logs := NewLogService(store, onboardedProfile(t, store), nil)

	store.failPut = true
	_, err := logs.AppendMeal(models.MealEntry{FoodName: "pastel", Calories: 400})
	require.Error(t, err)
	assert.Empty(t, logs.LoadForToday().Meals)

	// retry after the outage appends exactly once
	store.failPut = false
	updated, err := logs.AppendMeal(models.MealEntry{FoodName: "pastel", Calories: 400})
	require.NoError(t, err)
	require.Len(t, updated.Meals, 1)
	assert.Equal(t, "pastel", updated.Meals[0].FoodName)
}

func TestAdjustWaterRolledBackOnPersistFailure(t *testing.T) {
	store := &failingStore{Store: storage.NewMemoryStore()}
	logs := NewLogService(store, onboardedProfile(t, store), nil)

	store.failPut = true
	_, err := logs.AdjustWater(250)
	require.Error(t, err)
	assert.Equal(t, 0, logs.LoadForToday().WaterConsumed)

	store.failPut = false
	updated, err := logs.AdjustWater(250)
	require.NoError(t, err)
	assert.Equal(t, 250, updated.WaterConsumed)
}

func TestPersistSuppressedWithoutProfile(t *testing.T) {
	store := storage.NewMemoryStore()
	logs := NewLogService(store, NewProfileService(store), nil)

	updated, err := logs.AdjustWater(250)
	require.NoError(t, err)
	// in-memory state mutates...
	assert.Equal(t, 250, updated.WaterConsumed)

	// ...but nothing hits storage until onboarding happened
	var persisted models.DailyLog
	found, err := store.Get(storage.LogKey(utils.TodayString()), &persisted)
	require.NoError(t, err)
	assert.False(t, found)
}
