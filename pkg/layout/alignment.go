package layout

import (
	"fmt"
	"strings"
)

// HorizontalAlignment positions a node horizontally within its slot.
type HorizontalAlignment int

const (
	HorizontalLeft HorizontalAlignment = iota
	HorizontalCenter
	HorizontalRight
	HorizontalStretch
)

func (a HorizontalAlignment) String() string {
	switch a {
	case HorizontalCenter:
		return "Center"
	case HorizontalRight:
		return "Right"
	case HorizontalStretch:
		return "Stretch"
	default:
		return "Left"
	}
}

// ParseHorizontalAlignment parses "Left", "Center", "Right" or "Stretch"
// case-insensitively.
func ParseHorizontalAlignment(s string) (HorizontalAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return HorizontalLeft, nil
	case "center":
		return HorizontalCenter, nil
	case "right":
		return HorizontalRight, nil
	case "stretch":
		return HorizontalStretch, nil
	}
	return HorizontalLeft, fmt.Errorf("layout: unknown horizontal alignment %q", s)
}

// VerticalAlignment positions a node vertically within its slot.
type VerticalAlignment int

const (
	VerticalTop VerticalAlignment = iota
	VerticalCenter
	VerticalBottom
	VerticalStretch
)

func (a VerticalAlignment) String() string {
	switch a {
	case VerticalCenter:
		return "Center"
	case VerticalBottom:
		return "Bottom"
	case VerticalStretch:
		return "Stretch"
	default:
		return "Top"
	}
}

// ParseVerticalAlignment parses "Top", "Center", "Bottom" or "Stretch"
// case-insensitively.
func ParseVerticalAlignment(s string) (VerticalAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return VerticalTop, nil
	case "center":
		return VerticalCenter, nil
	case "bottom":
		return VerticalBottom, nil
	case "stretch":
		return VerticalStretch, nil
	}
	return VerticalTop, fmt.Errorf("layout: unknown vertical alignment %q", s)
}
