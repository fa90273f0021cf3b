package corpus

import "strings"

// Tree is a syntax tree node: a label plus ordered children. Leaves carry
// the word itself as the label.
type Tree struct {
	Label    string  `json:"label"`
	Children []*Tree `json:"children,omitempty"`
}

// Leaf reports whether the node has no children.
func (t *Tree) Leaf() bool { return len(t.Children) == 0 }

// String renders the bracketed form, e.g. (S (NP (D the) (N dog)) (VP barks)).
func (t *Tree) String() string {
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t *Tree) write(b *strings.Builder) {
	if t.Leaf() {
		b.WriteString(t.Label)
		return
	}
	b.WriteByte('(')
	b.WriteString(t.Label)
	for _, c := range t.Children {
		b.WriteByte(' ')
		c.write(b)
	}
	b.WriteByte(')')
}
