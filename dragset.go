package worldui

// dragSet is the stage's insertion-ordered, duplicate-free set of drag
// targets. It is the only state the stage carries from tick to tick.
type dragSet struct {
	order   []Element
	members map[Element]struct{}
}

// add appends el unless it is already present. Reports whether it was added.
func (d *dragSet) add(el Element) bool {
	if d.members == nil {
		d.members = make(map[Element]struct{})
	}
	if _, ok := d.members[el]; ok {
		return false
	}
	d.members[el] = struct{}{}
	d.order = append(d.order, el)
	return true
}

func (d *dragSet) contains(el Element) bool {
	_, ok := d.members[el]
	return ok
}

func (d *dragSet) len() int { return len(d.order) }

// clear empties the set, keeping the backing storage for reuse.
// Slots are nilled to avoid retaining elements.
func (d *dragSet) clear() {
	for i := range d.order {
		d.order[i] = nil
	}
	d.order = d.order[:0]
	for k := range d.members {
		delete(d.members, k)
	}
}
