package utils

// DailyCalories computes the Mifflin-St Jeor daily calorie baseline.
// Expects weight in kilograms, height in centimeters, age in years.
func DailyCalories(weight, height float64, age int, gender string) float64 {
	base := 10*weight + 6.25*height - 5*float64(age)
	switch gender {
	case "Male":
		return base + 5
	case "Female":
		return base - 161
	default:
		return base - 76
	}
}
