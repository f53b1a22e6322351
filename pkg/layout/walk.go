package layout

import "github.com/omnigui/omnigui/pkg/geometry"

// Walk visits root and its descendants depth-first, parents before
// children. Returning false from visit skips the node's children.
func Walk(root Node, visit func(Node) bool) {
	if root == nil || !visit(root) {
		return
	}
	for child := range root.Base().Children().All() {
		Walk(child, visit)
	}
}

// Depth returns the number of ancestors of n.
func Depth(n Node) int {
	depth := 0
	for p := n.Base().Parent(); p != nil; p = p.Base().Parent() {
		depth++
	}
	return depth
}

// Root returns the topmost ancestor of n.
func Root(n Node) Node {
	for n.Base().Parent() != nil {
		n = n.Base().Parent()
	}
	return n
}

// HitTest returns the deepest node under the absolute point p. Later
// children render on top of earlier ones, so they are tested first.
func HitTest(root Node, p geometry.Point) Node {
	base := root.Base()
	if !base.VisualBounds().Contains(p) {
		return nil
	}
	children := base.Children()
	for i := children.Len() - 1; i >= 0; i-- {
		if hit := HitTest(children.At(i), p); hit != nil {
			return hit
		}
	}
	return root
}
