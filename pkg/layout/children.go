package layout

import (
	"iter"
	"slices"

	"github.com/omnigui/omnigui/pkg/errors"
	"github.com/omnigui/omnigui/pkg/property"
	"github.com/omnigui/omnigui/pkg/stream"
)

// member is one child slot. release tears down the subscriptions whose
// lifetime is bound to the child's membership.
type member struct {
	node    Node
	release func()
}

// Children is the ordered child list owned by a node. Order is render
// order, back to front.
type Children struct {
	owner   *NodeBase
	members []member
	added   stream.Subject[Node]
	removed stream.Subject[Node]
}

func newChildren(owner *NodeBase) *Children {
	return &Children{owner: owner}
}

// Len returns the number of children.
func (c *Children) Len() int { return len(c.members) }

// At returns the child at index i.
func (c *Children) At(i int) Node { return c.members[i].node }

// All iterates children in order.
func (c *Children) All() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, m := range slices.Clone(c.members) {
			if !yield(m.node) {
				return
			}
		}
	}
}

// IndexOf returns the index of child, or -1.
func (c *Children) IndexOf(child Node) int {
	for i, m := range c.members {
		if m.node == child {
			return i
		}
	}
	return -1
}

// Added emits each child after it has been attached.
func (c *Children) Added() stream.Stream[Node] { return &c.added }

// Removed emits each child after it has been detached.
func (c *Children) Removed() stream.Stream[Node] { return &c.removed }

// Add appends child.
func (c *Children) Add(child Node) {
	c.Insert(len(c.members), child)
}

// Insert places child at index i, shifting later children back. Adding a
// node that already has a parent, adding a node to itself or to one of its
// descendants, or mixing platforms panics.
func (c *Children) Insert(i int, child Node) {
	c.checkAttach(child)
	if i < 0 || i > len(c.members) {
		errors.Panicf("layout.Children.Insert", "index %d out of range [0,%d]", i, len(c.members))
	}
	base := child.Base()
	base.parent = c.owner.self
	base.detached = false
	c.members = slices.Insert(c.members, i, member{node: child, release: c.inherit(base)})
	c.added.Emit(child)
	c.owner.InvalidateRender()
}

// inherit copies the owner's DataContext to child and keeps it in sync
// while child stays a member.
func (c *Children) inherit(child *NodeBase) func() {
	key := c.owner.props.DataContext
	child.SetDataContext(c.owner.DataContext())
	return property.Changed(c.owner.store, key).Listen(func(v any) {
		child.SetDataContext(v)
	})
}

func (c *Children) checkAttach(child Node) {
	const op = "layout.Children.Add"
	if child == nil {
		errors.Panicf(op, "nil child")
	}
	base := child.Base()
	base.mustInit(op)
	if base.parent != nil {
		errors.Panicf(op, "%s already has a parent", base.kind)
	}
	if base.platform != c.owner.platform {
		errors.Panicf(op, "%s belongs to a different platform", base.kind)
	}
	for anc := c.owner; anc != nil; {
		if anc == base {
			errors.Panicf(op, "adding %s would create a cycle", base.kind)
		}
		if anc.parent == nil {
			break
		}
		anc = anc.parent.Base()
	}
}

// Remove detaches child. It reports false if child is not a member.
func (c *Children) Remove(child Node) bool {
	i := c.IndexOf(child)
	if i < 0 {
		return false
	}
	c.RemoveAt(i)
	return true
}

// RemoveAt detaches and returns the child at index i. The child's
// DataContext subscription is released; its current value is kept. Focus
// held inside the removed subtree is released, and the subtree ignores
// input until it is added again.
func (c *Children) RemoveAt(i int) Node {
	m := c.members[i]
	c.members = slices.Delete(c.members, i, i+1)
	m.release()
	base := m.node.Base()
	base.parent = nil
	base.detached = true
	if f := c.owner.platform.focus(); f != nil {
		Walk(m.node, func(n Node) bool {
			f.Release(n.Base().self)
			return true
		})
	}
	c.removed.Emit(m.node)
	c.owner.InvalidateRender()
	return m.node
}

// Clear detaches every child, last first.
func (c *Children) Clear() {
	for len(c.members) > 0 {
		c.RemoveAt(len(c.members) - 1)
	}
}
