package layouttest

import (
	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/input"
)

func pointerAt(p geometry.Point, down bool) input.PointerInput {
	status := input.PointerUp
	if down {
		status = input.PointerDown
	}
	return input.PointerInput{Point: p, PrimaryButtonStatus: status}
}
