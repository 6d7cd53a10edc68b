// Package compare holds the operator primitives shared by badge, threshold
// and condition checks.
package compare

import (
	"math"

	"github.com/Knetic/govaluate"
	"room-summary/internal/domain/model"
)

var thresholdExpressions = compileThresholdExpressions(map[model.Operator]string{
	model.OperatorGt:  "value > threshold",
	model.OperatorGte: "value >= threshold",
	model.OperatorLt:  "value < threshold",
	model.OperatorLte: "value <= threshold",
	model.OperatorEq:  "value == threshold",
})

func compileThresholdExpressions(formulas map[model.Operator]string) map[model.Operator]*govaluate.EvaluableExpression {
	compiled := make(map[model.Operator]*govaluate.EvaluableExpression, len(formulas))
	for op, formula := range formulas {
		expression, err := govaluate.NewEvaluableExpression(formula)
		if err != nil {
			continue
		}
		compiled[op] = expression
	}
	return compiled
}

// MeetsStateCondition compares two state strings. Only ne negates; any other
// operator, including an unknown one, is treated as eq.
func MeetsStateCondition(value, expected string, op model.Operator) bool {
	if op == model.OperatorNe {
		return value != expected
	}
	return value == expected
}

// MeetsThreshold reports whether value satisfies cfg. Unknown or empty
// operators fall back to gte. NaN never satisfies a threshold.
func MeetsThreshold(value float64, cfg model.ThresholdConfig) bool {
	if math.IsNaN(value) || math.IsNaN(cfg.Threshold) {
		return false
	}
	expression, ok := thresholdExpressions[cfg.Operator]
	if !ok {
		expression, ok = thresholdExpressions[model.OperatorGte]
		if !ok {
			return false
		}
	}

	parameters := make(map[string]interface{}, 2)
	parameters["value"] = value
	parameters["threshold"] = cfg.Threshold

	result, err := expression.Evaluate(parameters)
	if err != nil {
		return false
	}
	met, _ := result.(bool)
	return met
}
