// Package widgets provides the stock node kinds built on package layout:
// Panel, Border, StackPanel, TextBlock and TextBox.
//
// Widget properties are registered by a Kit, one per platform:
//
//	kit := widgets.NewKit(platform, nil)
//	root := widgets.NewStackPanel(kit,
//		widgets.NewTextBlock(kit, "Name"),
//		widgets.NewTextBox(kit),
//	)
//
// Every kind follows the base Measure and Arrange protocol and overrides
// only MeasureOverride, ArrangeOverride and Render.
package widgets
