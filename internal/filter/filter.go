package filter

import (
	"cmp"

	"github.com/vegasq/coursecat/course"
)

func compareOrdered[T cmp.Ordered](left T, operator TokenType, right T) bool {
	switch operator {
	case TokenEqual:
		return left == right
	case TokenNotEqual:
		return left != right
	case TokenLess:
		return left < right
	case TokenGreater:
		return left > right
	case TokenLessEqual:
		return left <= right
	case TokenGreaterEqual:
		return left >= right
	default:
		return false
	}
}

// toFloat64 converts a numeric column or literal value to float64
func toFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int64:
		return float64(val), true
	case int:
		return float64(val), true
	default:
		return 0, false
	}
}

// Apply returns the courses matching expr, in their original order. A nil
// expression matches everything.
func Apply(courses []course.Course, expr Expression) []course.Course {
	if expr == nil {
		return courses
	}

	filtered := make([]course.Course, 0)
	for i := range courses {
		if expr.Evaluate(&courses[i]) {
			filtered = append(filtered, courses[i])
		}
	}
	return filtered
}
