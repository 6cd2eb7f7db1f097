// Package levels holds the CEFR proficiency scale and the read-only
// level-context store used to enrich generation prompts.
package levels

import "strings"

// Order is the CEFR scale from lowest to highest.
var Order = []string{"A1", "A2", "B1", "B2", "C1", "C2"}

// DefaultLevel is where every placement session starts.
const DefaultLevel = "B1"

// Index returns the position of a level on the scale, or -1 when the
// level is not one of the six defined CEFR levels.
func Index(level string) int {
	normalized := strings.ToUpper(strings.TrimSpace(level))
	for i, l := range Order {
		if l == normalized {
			return i
		}
	}
	return -1
}

// Valid reports whether level is one of the six CEFR levels.
func Valid(level string) bool {
	return Index(level) >= 0
}

// Up moves one step toward C2, clamped at the top of the scale.
func Up(level string) string {
	i := Index(level)
	if i < 0 {
		return level
	}
	if i < len(Order)-1 {
		return Order[i+1]
	}
	return Order[len(Order)-1]
}

// Down moves one step toward A1, clamped at the bottom of the scale.
func Down(level string) string {
	i := Index(level)
	if i < 0 {
		return level
	}
	if i > 0 {
		return Order[i-1]
	}
	return Order[0]
}
