// Package demo builds the sample tree shown by the omnigui commands.
package demo

import (
	"fmt"
	"maps"

	"github.com/omnigui/omnigui/pkg/errors"
	"github.com/omnigui/omnigui/pkg/focus"
	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/graphics"
	"github.com/omnigui/omnigui/pkg/layout"
	"github.com/omnigui/omnigui/pkg/visualstate"
	"github.com/omnigui/omnigui/pkg/widgets"
)

// State names the demo switches between on focus changes.
const (
	StateNormal  = "normal"
	StateFocused = "focused"
)

// DefaultStates are used for any state the project file does not define.
var DefaultStates = map[string]map[string]string{
	StateNormal: {
		"Layout.Background":  "#fff5f5f5",
		"Border.BorderBrush": "gray",
	},
	StateFocused: {
		"Layout.Background":  "#ffe0f0ff",
		"Border.BorderBrush": "blue",
	},
}

// Model is the data context of the demo tree.
type Model struct {
	Title string
	// Greeting is a format string applied to submitted names.
	Greeting string
}

// DefaultModel returns the model used when the caller has none.
func DefaultModel(title string) *Model {
	return &Model{Title: title, Greeting: "Hello, %s!"}
}

// Demo is a titled form: a text box whose submissions update a status
// line, framed by a border that follows the text box focus through
// visual states.
type Demo struct {
	Kit    *widgets.Kit
	Root   *widgets.Border
	Title  *widgets.TextBlock
	Input  *widgets.TextBox
	Status *widgets.TextBlock
	States *visualstate.Group
}

// Build creates the demo on p. states override DefaultStates by name.
func Build(p *layout.Platform, m graphics.TextMeasurer, model *Model, states map[string]map[string]string) (*Demo, error) {
	k := widgets.NewKit(p, m)
	d := &Demo{Kit: k}

	d.Title = widgets.NewTextBlock(k, "")
	d.Input = widgets.NewTextBox(k)
	d.Input.SetBackground(graphics.SolidBrush(graphics.ColorWhite))
	d.Status = widgets.NewTextBlock(k, "Type a name and press Enter")
	d.Status.SetForeground(graphics.SolidBrush(graphics.ColorGray))

	stack := widgets.NewStackPanel(k, d.Title, d.Input, d.Status)
	stack.SetSpacing(1)

	d.Root = widgets.NewBorder(k, stack)
	d.Root.SetBorderThickness(geometry.Uniform(1))
	d.Root.SetPadding(geometry.Uniform(1))
	d.Root.SetHorizontalAlignment(layout.HorizontalLeft)
	d.Root.SetVerticalAlignment(layout.VerticalTop)
	d.Root.SetDataContext(model)

	if m, ok := d.Title.DataContext().(*Model); ok {
		d.Title.SetText(m.Title)
	}

	defs := maps.Clone(DefaultStates)
	maps.Copy(defs, states)
	group, err := visualstate.ParseGroup(d.Root.Properties(), defs)
	if err != nil {
		d.Root.Close()
		return nil, err
	}
	d.States = group

	d.Root.Track(d.Input.Submitted().Listen(d.submit))
	focus.Attach(d.Root)
	if s := p.Surface; s != nil && s.FocusedElement() != nil {
		d.Root.Track(s.FocusedElement().Changed().Listen(func(any) { d.syncState() }))
	}
	d.syncState()
	return d, nil
}

func (d *Demo) submit(text string) {
	m, ok := d.Status.DataContext().(*Model)
	if !ok {
		return
	}
	d.Status.SetText(fmt.Sprintf(m.Greeting, text))
	d.Input.SetText("")
}

func (d *Demo) syncState() {
	name := StateNormal
	if d.Input.IsFocused() {
		name = StateFocused
	}
	if _, ok := d.States.State(name); !ok {
		return
	}
	if err := d.States.GoTo(name); err != nil {
		errors.Logger().Warn("demo state", "state", name, "err", err)
	}
}
