package models

type DietMeal struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Calories    float64 `json:"calories"`
}

// DietPlan is transient: regenerating replaces the whole structure and no
// history is kept. It is never written to storage.
type DietPlan struct {
	Breakfast      DietMeal `json:"breakfast"`
	MorningSnack   DietMeal `json:"morningSnack"`
	Lunch          DietMeal `json:"lunch"`
	AfternoonSnack DietMeal `json:"afternoonSnack"`
	Dinner         DietMeal `json:"dinner"`
	Tips           []string `json:"tips"`
}

// Complete reports whether every slot came back filled. An empty slot means
// the generation response was structurally incomplete and must be rejected.
func (p *DietPlan) Complete() bool {
	for _, m := range []DietMeal{p.Breakfast, p.MorningSnack, p.Lunch, p.AfternoonSnack, p.Dinner} {
		if m.Name == "" {
			return false
		}
	}
	return len(p.Tips) > 0
}
