package models

import "time"

// MealEntry is one confirmed meal analysis. Entries are append-only: once a
// candidate is confirmed into a DailyLog it is never edited or removed.
type MealEntry struct {
	FoodName    string    `json:"foodName"`
	Calories    float64   `json:"calories"`
	Protein     float64   `json:"protein"` // grams
	Carbs       float64   `json:"carbs"`   // grams
	Fats        float64   `json:"fats"`    // grams
	HealthScore float64   `json:"healthScore"` // 0 to 10
	Feedback    string    `json:"feedback"`
	Timestamp   time.Time `json:"timestamp"`
	ImageURL    string    `json:"imageUrl,omitempty"` // data-URI or uploaded photo URL
}

// DailyLog aggregates everything logged for one calendar date.
// Meals is kept most-recent-first. WaterConsumed never goes negative.
type DailyLog struct {
	Date          string      `json:"date"` // YYYY-MM-DD, immutable once set
	Meals         []MealEntry `json:"meals"`
	WaterConsumed int         `json:"waterConsumed"` // ml
}

// NutritionTotals are recomputed from Meals on every read so they can never
// drift from the entry list.
type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

func (l *DailyLog) Totals() NutritionTotals {
	var t NutritionTotals
	for _, m := range l.Meals {
		t.Calories += m.Calories
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fats += m.Fats
	}
	return t
}
