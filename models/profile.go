package models

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel follows the usual Harris-Benedict multiplier ladder.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very-active"
)

type Goal string

const (
	GoalLoseWeight Goal = "lose-weight"
	GoalMaintain   Goal = "maintain"
	GoalGainMuscle Goal = "gain-muscle"
)

// UserProfile holds identity plus the physiological targets for the single
// user. BMR, DailyCaloriesTarget and WaterTarget are derived once at
// creation time and only change when the whole profile is replaced.
type UserProfile struct {
	Name          string        `json:"name"`
	Age           int           `json:"age"`    // years
	Weight        float64       `json:"weight"` // kg
	Height        float64       `json:"height"` // cm
	Gender        Gender        `json:"gender"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	Goal          Goal          `json:"goal"`
	IsVegan       bool          `json:"isVegan"`

	BMR                 int `json:"bmr"`                 // kcal/day
	DailyCaloriesTarget int `json:"dailyCaloriesTarget"` // kcal/day
	WaterTarget         int `json:"waterTarget"`         // ml/day
}
