// ABOUTME: Week-over-week percentage change and its display formatting.
// ABOUTME: A zero baseline maps to 0 (no change) or 100 (new activity), never infinity.
package trend

import "fmt"

// Direction classifies a change as up, down or flat.
type Direction int

const (
	Flat Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "flat"
	}
}

// Indicator returns the arrow shown next to a change.
func (d Direction) Indicator() string {
	switch d {
	case Up:
		return "▲"
	case Down:
		return "▼"
	default:
		return "➡"
	}
}

// WeekOverWeek returns the percentage change from previous to current.
func WeekOverWeek(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return (current - previous) / previous * 100
}

// DirectionOf classifies a percentage change.
func DirectionOf(change float64) Direction {
	switch {
	case change > 0:
		return Up
	case change < 0:
		return Down
	default:
		return Flat
	}
}

// SignedPercent renders a change with an explicit sign and one decimal, e.g. "+50.0%".
func SignedPercent(change float64) string {
	switch DirectionOf(change) {
	case Up:
		return fmt.Sprintf("+%.1f%%", change)
	case Down:
		return fmt.Sprintf("%.1f%%", change)
	default:
		return "0.0%"
	}
}

// FormatChange renders a change with its direction indicator, e.g. "▲ +50.0%".
func FormatChange(change float64) string {
	return DirectionOf(change).Indicator() + " " + SignedPercent(change)
}
