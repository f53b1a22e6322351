package widgets

import (
	"github.com/omnigui/omnigui/pkg/graphics"
	"github.com/omnigui/omnigui/pkg/layout"
)

// Panel fills its VisualBounds with Background and draws its children
// on top. Children share the panel's full area.
type Panel struct {
	layout.NodeBase
	kit *Kit
}

// NewPanel creates a Panel holding children.
func NewPanel(k *Kit, children ...layout.Node) *Panel {
	p := &Panel{kit: k}
	p.Init(k.Platform, p)
	for _, c := range children {
		p.Children().Add(c)
	}
	return p
}

// Render implements layout.Node.
func (p *Panel) Render(dc graphics.DrawingContext) {
	fillBackground(&p.NodeBase, dc)
	p.NodeBase.Render(dc)
}

func fillBackground(n *layout.NodeBase, dc graphics.DrawingContext) {
	if bg := n.Background(); bg.IsVisible() {
		dc.DrawRectangle(n.VisualBounds(), bg, graphics.Pen{})
	}
}
