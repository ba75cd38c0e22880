package uigraph

import (
	"fmt"

	"github.com/phanxgames/worldui"
)

// Handler is a per-node event callback. Having one for an event kind is
// what makes the node handle that kind.
type Handler func(ev *worldui.PointerEvent)

// nodeIDCounter is a plain counter (no atomic; the graph is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the UI graph element. A single flat struct is used for all nodes;
// behavior comes from callbacks and the optional Range capability.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y           float32
	ScaleX, ScaleY float32
	Rotation       float32
	PivotX, PivotY float32

	// Size in local units. Used for hit testing when HitShape is nil.
	Width, Height float32

	// Computed
	worldTransform affine
	invWorld       affine
	invertible     bool
	transformDirty bool

	// Visibility & interaction
	Visible      bool
	Interactable bool

	// Ordering among siblings; higher draws on top.
	ZIndex int

	// Metadata
	UserData any

	// Hit testing
	HitShape HitShape

	// Range is the node's drag-range capability, if it is a range control.
	Range worldui.DragRange

	// Per-node callbacks (nil by default).
	OnPointerDown  Handler
	OnPointerUp    Handler
	OnPointerClick Handler
	OnScroll       Handler
	OnBeginDrag    Handler
	OnDrag         Handler
	OnEndDrag      Handler

	childrenSorted bool
	sortedChildren []*Node
}

// NewNode creates a visible, interactable node of the given size.
func NewNode(name string, width, height float32) *Node {
	return &Node{
		ID:             nextNodeID(),
		Name:           name,
		ScaleX:         1,
		ScaleY:         1,
		Width:          width,
		Height:         height,
		Visible:        true,
		Interactable:   true,
		transformDirty: true,
		childrenSorted: true,
	}
}

// NewContainer creates a zero-size grouping node. It is not hit-testable
// unless given a HitShape, but its children are.
func NewContainer(name string) *Node {
	return NewNode(name, 0, 0)
}

// String returns the node name and ID.
func (n *Node) String() string {
	return fmt.Sprintf("%s#%d", n.Name, n.ID)
}

// ParentElement implements worldui.Element.
func (n *Node) ParentElement() worldui.Element {
	if n.Parent == nil {
		return nil
	}
	return n.Parent
}

// DragRange implements worldui.DragRangeProvider.
func (n *Node) DragRange() (worldui.DragRange, bool) {
	return n.Range, n.Range != nil
}

// handler returns the callback for kind, or nil.
func (n *Node) handler(kind worldui.EventKind) Handler {
	switch kind {
	case worldui.EventPointerDown:
		return n.OnPointerDown
	case worldui.EventPointerUp:
		return n.OnPointerUp
	case worldui.EventPointerClick:
		return n.OnPointerClick
	case worldui.EventScroll:
		return n.OnScroll
	case worldui.EventBeginDrag:
		return n.OnBeginDrag
	case worldui.EventDrag:
		return n.OnDrag
	case worldui.EventEndDrag:
		return n.OnEndDrag
	}
	return nil
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("uigraph: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("uigraph: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
		child.Parent.childrenSorted = false
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("uigraph: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float32) {
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// SetScale sets the node's ScaleX and ScaleY and marks it dirty.
func (n *Node) SetScale(sx, sy float32) {
	n.ScaleX = sx
	n.ScaleY = sy
	n.transformDirty = true
}

// SetRotation sets the node's rotation (in radians) and marks it dirty.
func (n *Node) SetRotation(r float32) {
	n.Rotation = r
	n.transformDirty = true
}

// MarkDirty forces the transform to be recomputed on the next hit test.
// Useful after setting transform fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// WorldToLocal converts a graph-space point to this node's local space.
// The result is only current after the graph has refreshed transforms.
func (n *Node) WorldToLocal(wx, wy float32) (lx, ly float32) {
	return transformPoint(n.invWorld, wx, wy)
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}

// rebuildSortedChildren refreshes the ZIndex-sorted traversal order.
func (n *Node) rebuildSortedChildren() {
	nc := len(n.children)
	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	}
	n.sortedChildren = n.sortedChildren[:nc]
	copy(n.sortedChildren, n.children)
	// Stable insertion sort by ZIndex.
	for i := 1; i < nc; i++ {
		key := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].ZIndex > key.ZIndex {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = key
	}
	n.childrenSorted = true
}
