package markup

import "github.com/alecthomas/participle/v2/lexer"

// Node is an element or a text leaf of a parsed markup document.
// Text leaves have an empty Name; the document root is an element with an
// empty Name and no text.
type Node struct {
	Name     string
	Attrs    []Attribute
	Text     string
	Children []*Node
	Pos      lexer.Position
}

// Attribute is a single element attribute. HasValue is false for
// valueless attributes such as <font size>.
type Attribute struct {
	Key      string
	Value    string
	HasValue bool
}

// IsText reports whether n is a text leaf.
func (n *Node) IsText() bool { return n.Name == "" && len(n.Children) == 0 && n.Text != "" }

// Attr returns the value of the named attribute. Valueless attributes are
// reported as absent. When an attribute repeats, the last one wins.
func (n *Node) Attr(key string) (string, bool) {
	for i := len(n.Attrs) - 1; i >= 0; i-- {
		a := n.Attrs[i]
		if a.Key == key {
			return a.Value, a.HasValue
		}
	}
	return "", false
}
