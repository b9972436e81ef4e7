// Package inspect renders engine layers and their element trees as text,
// for debugging from a terminal.
package inspect

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/gogpu/ui"
)

var (
	layerStyle = lipgloss.NewStyle().Bold(true)
	dirtyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	enumStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Walker is implemented by layers that expose an element tree.
type Walker interface {
	Walk(fn func(e *ui.Element, depth int) bool)
}

// Engine renders every layer of eng, bottom to top.
func Engine(eng *ui.Engine) string {
	w, h := eng.Viewport()
	root := tree.Root(layerStyle.Render(fmt.Sprintf("engine %dx%d", w, h))).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumStyle)
	for _, l := range eng.Layers() {
		root.Child(layer(l))
	}
	return root.String()
}

// Layer renders a single layer and its elements.
func Layer(l ui.Layer) string {
	return layer(l).String()
}

func layer(l ui.Layer) *tree.Tree {
	label := l.Name()
	if m, ok := l.(*ui.Modal); ok {
		label += " (modal, " + m.State().String() + ")"
	}
	s := l.Stats()
	label = layerStyle.Render(label) +
		fmt.Sprintf(" frames=%d draws=%d rebuilds=%d failures=%d",
			s.Frames, s.ElementDraws, s.Rebuilds, s.Failures)

	t := tree.Root(label).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumStyle)
	w, ok := l.(Walker)
	if !ok {
		return t
	}

	// stack[d] is the node that depth-d elements attach to.
	stack := []*tree.Tree{t}
	w.Walk(func(e *ui.Element, depth int) bool {
		node := tree.Root(Element(e))
		stack = stack[:depth+1]
		stack[depth].Child(node)
		stack = append(stack, node)
		return true
	})
	return t
}

// Element renders a one-line summary of e.
func Element(e *ui.Element) string {
	var b strings.Builder
	b.WriteString(e.Name())
	fmt.Fprintf(&b, " [%s]", e.Kind())
	if txt := e.Text(); txt != "" {
		fmt.Fprintf(&b, " %q", txt)
	}
	r := e.Bounds()
	fmt.Fprintf(&b, " @(%g,%g %gx%g)", r.Min.X, r.Min.Y, r.Size.X, r.Size.Y)
	fmt.Fprintf(&b, " gen=%d", e.Generation())
	if e.Dirty() {
		b.WriteString(" " + dirtyStyle.Render("dirty"))
	}
	if err := e.ResourceErr(); err != nil {
		b.WriteString(" " + errStyle.Render(err.Error()))
	}
	return b.String()
}
