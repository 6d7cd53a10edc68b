package sensor

import (
	"math"
	"strconv"

	"github.com/samber/lo"
	"room-summary/internal/domain/model"
)

var unspacedUnits = []string{"%", "°C", "°F"}

// FormatValue rounds to at most one decimal and appends the unit.
func FormatValue(value float64, unit string) string {
	rounded := math.Round(value*10) / 10
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}
	text := strconv.FormatFloat(rounded, 'f', -1, 64)
	switch {
	case unit == "":
		return text
	case lo.Contains(unspacedUnits, unit):
		return text + unit
	default:
		return text + " " + unit
	}
}

func FormatAverage(group model.SensorGroup) string {
	return FormatValue(group.Average, group.Unit)
}
