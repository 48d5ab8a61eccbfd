package services

import (
	"context"

	"github.com/chicodelphi/nutricaoBRL/models"
)

// MealImageRequest carries one photographed meal to the inference service.
// Vegan is a hint forwarded to the analyzer, not enforced locally.
type MealImageRequest struct {
	ImageBase64 string
	MimeType    string
	Vegan       bool
}

// MealAnalysis is the structured result of analyzing a meal photo.
type MealAnalysis struct {
	FoodName    string  `json:"foodName"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fats        float64 `json:"fats"`
	HealthScore float64 `json:"healthScore"`
	Feedback    string  `json:"feedback"`
}

// Inference is the remote service that turns an image or a profile into
// structured nutrition data. One call in flight per workflow instance; an
// absent or empty result is a failure, never a partial success.
type Inference interface {
	AnalyzeMealImage(ctx context.Context, req MealImageRequest) (*MealAnalysis, error)
	GenerateDietPlan(ctx context.Context, profile models.UserProfile) (*models.DietPlan, error)
}
