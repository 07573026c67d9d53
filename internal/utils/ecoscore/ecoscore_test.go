package ecoscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComprehensive(t *testing.T) {
	tests := []struct {
		name         string
		carbonKg     float64
		durability   int
		packaging    int
		healthImpact int
		expected     int
	}{
		{
			name:         "Top marks with low carbon",
			carbonKg:     0.5,
			durability:   5,
			packaging:    5,
			healthImpact: 5,
			expected:     5,
		},
		{
			name:         "Average product",
			carbonKg:     2.0,
			durability:   3,
			packaging:    3,
			healthImpact: 3,
			expected:     3,
		},
		{
			name:         "Heavy carbon footprint drags score down",
			carbonKg:     6.0,
			durability:   4,
			packaging:    4,
			healthImpact: 4,
			expected:     3,
		},
		{
			name:         "Worst case still at least minimum",
			carbonKg:     10.0,
			durability:   1,
			packaging:    1,
			healthImpact: 1,
			expected:     MinScore,
		},
		{
			name:         "Unspecified sub-scores default to average",
			carbonKg:     2.0,
			durability:   0,
			packaging:    0,
			healthImpact: 0,
			expected:     3,
		},
		{
			name:         "Sub-scores above range are clamped",
			carbonKg:     0.2,
			durability:   9,
			packaging:    9,
			healthImpact: 9,
			expected:     MaxScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Comprehensive(tt.carbonKg, tt.durability, tt.packaging, tt.healthImpact)
			assert.Equal(t, tt.expected, got)
		})
	}
}
