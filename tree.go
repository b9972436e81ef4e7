package ui

import "fmt"

// tree is a flat arena of elements. Slots of removed elements stay nil so
// ids remain stable and are never handed out again.
type tree struct {
	nodes  []*Element
	roots  []ElementID
	byName map[string]ElementID
}

func newTree() tree {
	return tree{byName: make(map[string]ElementID)}
}

func (t *tree) get(id ElementID) *Element {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

func (t *tree) lookup(name string) *Element {
	id, ok := t.byName[name]
	if !ok {
		return nil
	}
	return t.nodes[id]
}

func (t *tree) len() int {
	return len(t.byName)
}

// insert appends e under parent, or as a root when parent is NoElement.
func (t *tree) insert(e *Element, parent ElementID) (ElementID, error) {
	if _, dup := t.byName[e.name]; dup {
		return NoElement, fmt.Errorf("%w: element %q", ErrDuplicateName, e.name)
	}
	var p *Element
	if parent != NoElement {
		if p = t.get(parent); p == nil {
			return NoElement, fmt.Errorf("%w: parent id %d", ErrNotFound, parent)
		}
	}

	id := ElementID(len(t.nodes))
	t.nodes = append(t.nodes, e)
	t.byName[e.name] = id
	e.id = id
	e.parent = parent
	if p != nil {
		p.children = append(p.children, id)
	} else {
		t.roots = append(t.roots, id)
	}
	return id, nil
}

// remove detaches the subtree rooted at id and returns its elements in
// pre-order.
func (t *tree) remove(id ElementID) ([]*Element, error) {
	e := t.get(id)
	if e == nil {
		return nil, fmt.Errorf("%w: element id %d", ErrNotFound, id)
	}
	if p := t.get(e.parent); p != nil {
		p.children = without(p.children, id)
	} else {
		t.roots = without(t.roots, id)
	}

	var removed []*Element
	t.walkFrom(id, 0, func(n *Element, _ int) bool {
		removed = append(removed, n)
		return true
	})
	for _, n := range removed {
		t.nodes[n.id] = nil
		delete(t.byName, n.name)
		n.id, n.parent, n.children = NoElement, NoElement, nil
	}
	return removed, nil
}

// walk visits every element in pre-order, children in insertion order.
// Returning false from fn stops the walk.
func (t *tree) walk(fn func(e *Element, depth int) bool) {
	for _, id := range t.roots {
		if !t.walkFrom(id, 0, fn) {
			return
		}
	}
}

func (t *tree) walkFrom(id ElementID, depth int, fn func(e *Element, depth int) bool) bool {
	e := t.get(id)
	if e == nil {
		return true
	}
	if !fn(e, depth) {
		return false
	}
	for _, c := range e.children {
		if !t.walkFrom(c, depth+1, fn) {
			return false
		}
	}
	return true
}

func without(ids []ElementID, id ElementID) []ElementID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
