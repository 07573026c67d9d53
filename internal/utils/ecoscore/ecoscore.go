package ecoscore

import "math"

const (
	// MinScore и MaxScore ограничивают итоговый эко-рейтинг
	MinScore = 1
	MaxScore = 5

	defaultSubScore = 3
)

// Comprehensive вычисляет комплексный эко-рейтинг продукта (1-5).
// Составляющие (1-5) взвешиваются, затем рейтинг корректируется углеродным
// следом: легкие продукты получают прибавку, тяжелые — штраф.
// Нулевая составляющая трактуется как «не указано» и заменяется средней.
func Comprehensive(carbonFootprintKg float64, durability, packaging, healthImpact int) int {
	base := 0.4*float64(normalize(durability)) +
		0.3*float64(normalize(packaging)) +
		0.3*float64(normalize(healthImpact))

	switch {
	case carbonFootprintKg <= 1.0:
		base += 0.5
	case carbonFootprintKg >= 5.0:
		base -= 1.0
	case carbonFootprintKg >= 3.0:
		base -= 0.5
	}

	score := int(math.Round(base))
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

func normalize(subScore int) int {
	if subScore <= 0 {
		return defaultSubScore
	}
	if subScore > MaxScore {
		return MaxScore
	}
	return subScore
}
