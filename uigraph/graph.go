package uigraph

import "github.com/phanxgames/worldui"

// Graph owns a node tree and implements worldui.Graph over it.
type Graph struct {
	root    *Node
	paint   []*Node
	results []worldui.Element
}

// New creates a graph with an empty root container.
func New() *Graph {
	return &Graph{root: NewContainer("root")}
}

// Root returns the graph's root node.
func (g *Graph) Root() *Node {
	return g.root
}

// HitTest implements worldui.Graph. It returns every hit-testable node
// containing pos, topmost first. The returned slice is reused by the next
// call.
func (g *Graph) HitTest(pos worldui.Vec2) []worldui.Element {
	updateWorldTransform(g.root, identityTransform, false)
	g.paint = collectInteractable(g.root, g.paint[:0])

	g.results = g.results[:0]
	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(g.paint) - 1; i >= 0; i-- {
		n := g.paint[i]
		if !n.invertible {
			continue
		}
		lx, ly := n.WorldToLocal(pos.X, pos.Y)
		if nodeContainsLocal(n, lx, ly) {
			g.results = append(g.results, n)
		}
	}
	return g.results
}

// Execute implements worldui.Graph. The event is handled when the node has
// a callback for kind.
func (g *Graph) Execute(el worldui.Element, kind worldui.EventKind, ev *worldui.PointerEvent) bool {
	n, ok := el.(*Node)
	if !ok || n == nil {
		return false
	}
	fn := n.handler(kind)
	if fn == nil {
		return false
	}
	fn(ev)
	return true
}

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; otherwise the node's Width/Height box.
// Zero-size nodes with no HitShape are not hit-testable.
func nodeContainsLocal(n *Node, lx, ly float32) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	if n.Width == 0 && n.Height == 0 {
		return false
	}
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}

// collectInteractable walks the tree in painter order (DFS, ZIndex-sorted),
// appending potentially hit-testable nodes to buf. Skips Visible=false or
// Interactable=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil || n.Width != 0 || n.Height != 0 {
		buf = append(buf, n)
	}
	if len(n.children) == 0 {
		return buf
	}
	if !n.childrenSorted {
		n.rebuildSortedChildren()
	}
	children := n.children
	if n.sortedChildren != nil {
		children = n.sortedChildren
	}
	for _, child := range children {
		buf = collectInteractable(child, buf)
	}
	return buf
}
