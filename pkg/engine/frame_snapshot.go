package engine

import (
	"time"

	"github.com/omnigui/omnigui/pkg/geometry"
)

// FrameSnapshot describes one completed frame.
type FrameSnapshot struct {
	FrameID     uint64        `json:"frameId"`
	Duration    time.Duration `json:"duration"`
	Viewport    geometry.Size `json:"viewport"`
	DesiredSize geometry.Size `json:"desiredSize"`
	Nodes       int           `json:"nodes"`
}
