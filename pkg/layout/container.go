package layout

// Container is a plain node using the default composition: children are
// measured with the same available size and stacked on top of each other.
type Container struct {
	NodeBase
}

// NewContainer creates an initialized Container.
func NewContainer(p *Platform, children ...Node) *Container {
	c := &Container{}
	c.Init(p, c)
	for _, child := range children {
		c.Children().Add(child)
	}
	return c
}
