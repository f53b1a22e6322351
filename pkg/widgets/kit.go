package widgets

import (
	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/graphics"
	"github.com/omnigui/omnigui/pkg/layout"
	"github.com/omnigui/omnigui/pkg/property"
)

// Property owners registered by NewKit.
const (
	BorderOwner     = "Border"
	StackPanelOwner = "StackPanel"
	TextBlockOwner  = "TextBlock"
)

// DefaultMeasurer matches the 7x13 bitmap face used by the raster
// platform.
var DefaultMeasurer = graphics.FixedMeasurer{Advance: 7, LineHeight: 13}

// Kit holds the widget property descriptors for one platform and the
// text measurer used by text kinds.
type Kit struct {
	Platform *layout.Platform
	Measurer graphics.TextMeasurer

	BorderBrush     *property.Key[graphics.Brush]
	BorderThickness *property.Key[geometry.Thickness]
	Padding         *property.Key[geometry.Thickness]

	Orientation *property.Key[Orientation]
	Spacing     *property.Key[float64]

	Text       *property.Key[string]
	FontSize   *property.Key[float64]
	FontFamily *property.Key[string]
}

// NewKit registers the widget properties into p's registry. A nil
// measurer selects DefaultMeasurer. Creating two kits for one platform
// panics on the duplicate registration.
func NewKit(p *layout.Platform, m graphics.TextMeasurer) *Kit {
	if m == nil {
		m = DefaultMeasurer
	}
	reg := p.Registry
	return &Kit{
		Platform: p,
		Measurer: m,

		BorderBrush: property.Register(reg, BorderOwner, "BorderBrush", property.Metadata[graphics.Brush]{
			DefaultValue: graphics.SolidBrush(graphics.ColorTransparent),
		}),
		BorderThickness: property.Register(reg, BorderOwner, "BorderThickness", property.Metadata[geometry.Thickness]{}),
		Padding:         property.Register(reg, BorderOwner, "Padding", property.Metadata[geometry.Thickness]{}),

		Orientation: property.Register(reg, StackPanelOwner, "Orientation", property.Metadata[Orientation]{}),
		Spacing:     property.Register(reg, StackPanelOwner, "Spacing", property.Metadata[float64]{}),

		Text: property.Register(reg, TextBlockOwner, "Text", property.Metadata[string]{}),
		FontSize: property.Register(reg, TextBlockOwner, "FontSize", property.Metadata[float64]{
			DefaultValue: 13,
		}),
		FontFamily: property.Register(reg, TextBlockOwner, "FontFamily", property.Metadata[string]{}),
	}
}
