// Package uigraph is a retained-mode UI element tree that implements
// [worldui.Graph].
//
// Nodes form a tree rooted at [Graph.Root]. Children inherit their parent's
// transform. A node is hit-testable when it is Visible and Interactable and
// has either a [HitShape] or a non-zero Width/Height. Hit testing walks the
// tree in painter order (depth-first, ZIndex-sorted) and reports hits
// topmost first.
//
// An element handles an event when it has a callback for that event kind:
//
//	btn := uigraph.NewNode("ok", 120, 40)
//	btn.OnPointerClick = func(ev *worldui.PointerEvent) { submit() }
//	graph.Root().AddChild(btn)
//
// Range-style controls expose a [worldui.DragRange] through Node.Range;
// the stage finds it on the hit node or its nearest ancestor.
package uigraph
