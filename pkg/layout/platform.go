// Package layout implements the node tree and its two-pass layout
// protocol.
//
// A host calls Measure, then Arrange, then Render on the root node. Measure
// computes each node's DesiredSize from an available size; Arrange places
// each node inside a rectangle allocated by its parent and stores
// parent-relative Bounds; Render draws the tree back-to-front onto a
// graphics.DrawingContext using absolute VisualBounds.
//
// Concrete node kinds embed NodeBase, call Init with themselves, and may
// override MeasureOverride, ArrangeOverride and Render.
package layout

import (
	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/graphics"
	"github.com/omnigui/omnigui/pkg/input"
	"github.com/omnigui/omnigui/pkg/property"
)

// RenderSurface is the host-side collaborator that schedules renders and
// tracks the focused element.
type RenderSurface interface {
	// ForceRender requests a render at some later point.
	ForceRender()
	// FocusedElement returns the process-wide focus reference.
	FocusedElement() *input.Focus
}

// OwnerName is the owner under which base node properties are registered.
const OwnerName = "Layout"

// Properties holds the descriptors every node kind carries.
type Properties struct {
	DataContext         *property.Key[any]
	Style               *property.Key[string]
	Background          *property.Key[graphics.Brush]
	Foreground          *property.Key[graphics.Brush]
	RequestedSize       *property.Key[geometry.Size]
	MinSize             *property.Key[geometry.Size]
	MaxSize             *property.Key[geometry.Size]
	Margin              *property.Key[geometry.Thickness]
	HorizontalAlignment *property.Key[HorizontalAlignment]
	VerticalAlignment   *property.Key[VerticalAlignment]
}

// Layout returns the descriptors whose changes invalidate layout.
func (p *Properties) Layout() []property.Descriptor {
	return []property.Descriptor{
		p.RequestedSize, p.MinSize, p.MaxSize, p.Margin,
		p.HorizontalAlignment, p.VerticalAlignment,
	}
}

func registerProperties(reg *property.Registry) *Properties {
	return &Properties{
		DataContext: property.Register(reg, OwnerName, "DataContext", property.Metadata[any]{}),
		Style:       property.Register(reg, OwnerName, "Style", property.Metadata[string]{}),
		Background: property.Register(reg, OwnerName, "Background", property.Metadata[graphics.Brush]{
			DefaultValue: graphics.SolidBrush(graphics.ColorTransparent),
		}),
		Foreground: property.Register(reg, OwnerName, "Foreground", property.Metadata[graphics.Brush]{
			DefaultValue: graphics.SolidBrush(graphics.ColorBlack),
		}),
		RequestedSize: property.Register(reg, OwnerName, "RequestedSize", property.Metadata[geometry.Size]{
			DefaultValue: geometry.SizeUnspecified,
		}),
		MinSize: property.Register(reg, OwnerName, "MinSize", property.Metadata[geometry.Size]{
			DefaultValue: geometry.SizeZero,
		}),
		MaxSize: property.Register(reg, OwnerName, "MaxSize", property.Metadata[geometry.Size]{
			DefaultValue: geometry.SizeInfinite,
		}),
		Margin:              property.Register(reg, OwnerName, "Margin", property.Metadata[geometry.Thickness]{}),
		HorizontalAlignment: property.Register(reg, OwnerName, "HorizontalAlignment", property.Metadata[HorizontalAlignment]{}),
		VerticalAlignment:   property.Register(reg, OwnerName, "VerticalAlignment", property.Metadata[VerticalAlignment]{}),
	}
}

// Platform bundles what every node needs from its environment: the
// property registry, the base descriptors, the raw event source and the
// render surface. One Platform is shared by every node of a tree.
type Platform struct {
	Registry *property.Registry
	Props    *Properties
	Events   input.EventSource
	Surface  RenderSurface
}

// NewPlatform creates a registry, registers the base node properties and
// binds the platform collaborators. Either collaborator may be nil for
// headless use.
func NewPlatform(events input.EventSource, surface RenderSurface) *Platform {
	reg := property.NewRegistry()
	return &Platform{
		Registry: reg,
		Props:    registerProperties(reg),
		Events:   events,
		Surface:  surface,
	}
}

// focus returns the surface focus reference, or nil.
func (p *Platform) focus() *input.Focus {
	if p.Surface == nil {
		return nil
	}
	return p.Surface.FocusedElement()
}
