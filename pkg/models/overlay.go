package models

// Position is a timestamp overlay corner.
type Position string

const (
	PositionTopLeft     Position = "tl"
	PositionTopRight    Position = "tr"
	PositionBottomLeft  Position = "bl"
	PositionBottomRight Position = "br"
)

// Rect is the overlay rectangle in the device's opposing-corner convention:
// (X1,Y1) anchors the title, (X2,Y2) is the opposite margin.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// positionRects is fixed by the device protocol, not negotiated per camera.
var positionRects = map[Position]Rect{
	PositionTopLeft:     {87, 233, 2708, 671},
	PositionTopRight:    {2708, 233, 87, 671},
	PositionBottomLeft:  {87, 671, 2708, 233},
	PositionBottomRight: {2708, 671, 87, 233},
}

var positionNames = map[Position]string{
	PositionTopLeft:     "top-left",
	PositionTopRight:    "top-right",
	PositionBottomLeft:  "bottom-left",
	PositionBottomRight: "bottom-right",
}

// PositionRect returns the overlay rectangle for a corner.
func PositionRect(p Position) (Rect, bool) {
	r, ok := positionRects[p]
	return r, ok
}

// PositionName returns the human-readable name of a corner, or "unknown".
func PositionName(p Position) string {
	if n, ok := positionNames[p]; ok {
		return n
	}
	return "unknown"
}

// DetectPosition maps the first rectangle corner reported by the device back
// to a named position.
func DetectPosition(x1, y1 int) (Position, bool) {
	for p, r := range positionRects {
		if r.X1 == x1 && r.Y1 == y1 {
			return p, true
		}
	}
	return "", false
}

// ValidPosition reports whether s names one of the four corners.
func ValidPosition(s string) bool {
	_, ok := positionRects[Position(s)]
	return ok
}
