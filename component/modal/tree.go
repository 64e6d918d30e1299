package modal

import (
	"strings"

	"github.com/aydenstechdungeon/modalkit/component/icon"
)

// Class names of the rendered tree. Together with the nesting order they
// are what stylesheets and tests rely on.
const (
	ClassModal        = "m-modal"
	ClassContent      = "m-modal-content"
	ClassHeader       = "m-modal-header"
	ClassHeaderText   = "m-modal-header__text"
	ClassHeaderButton = "m-modal-header__button"
	ClassMain         = "m-modal-main"
	ClassMainText     = "m-modal-main__text"
	ClassFooter       = "m-modal-footer"
	ClassFooterButton = "m-modal-footer__button"
)

// Attr is a single element attribute.
type Attr struct {
	Key   string
	Value string
}

// Node is one element of a rendered modal.
type Node struct {
	Tag      string
	Classes  []string
	Attrs    []Attr
	Text     string
	Icon     icon.Name
	Children []*Node
	// Action is the name the node's activation is bound to, if any.
	Action string

	onActivate func()
}

// Class returns the node's class attribute value.
func (n *Node) Class() string {
	return strings.Join(n.Classes, " ")
}

// HasClass reports whether the node carries class.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Attr returns the value of the attribute key.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Activatable reports whether the node responds to activation.
func (n *Node) Activatable() bool {
	return n.Action != ""
}

// Activate simulates a user activating the node. It invokes the bound
// callback once and reports whether the node is activatable.
func (n *Node) Activate() bool {
	if n == nil || !n.Activatable() {
		return false
	}
	if n.onActivate != nil {
		n.onActivate()
	}
	return true
}

// Walk visits n and its descendants depth first. Returning false from fn
// stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first node carrying class, or nil.
func (n *Node) Find(class string) *Node {
	var found *Node
	n.Walk(func(node *Node) bool {
		if node.HasClass(class) {
			found = node
			return false
		}
		return true
	})
	return found
}

// Build returns the tree for cfg, or nil when the modal is closed.
func Build(cfg Config) *Node {
	if !cfg.Open {
		return nil
	}
	cfg = Merge(cfg)

	content := &Node{
		Tag:     "div",
		Classes: []string{ClassContent},
	}
	if cfg.ModalSize != "" {
		content.Classes = append(content.Classes, string(cfg.ModalSize))
	}
	content.Children = append(content.Children, buildHeader(cfg), buildMain(cfg))
	if cfg.HasFooter {
		content.Children = append(content.Children, buildFooter(cfg))
	}

	return &Node{
		Tag:      "dialog",
		Classes:  []string{ClassModal},
		Attrs:    []Attr{{Key: "id", Value: cfg.ID}, {Key: "open"}},
		Children: []*Node{content},
	}
}

func buildHeader(cfg Config) *Node {
	header := &Node{
		Tag:     "header",
		Classes: []string{ClassHeader},
		Children: []*Node{{
			Tag:     "p",
			Classes: []string{ClassHeaderText},
			Text:    cfg.HeaderTitle,
		}},
	}
	if cfg.Closable {
		button := closeButton(cfg, ClassHeaderButton)
		button.Icon = icon.XMark
		header.Children = append(header.Children, button)
	}
	return header
}

func buildMain(cfg Config) *Node {
	return &Node{
		Tag:     "section",
		Classes: []string{ClassMain},
		Children: []*Node{{
			Tag:     "p",
			Classes: []string{ClassMainText},
			Text:    cfg.MainContent,
		}},
	}
}

func buildFooter(cfg Config) *Node {
	button := closeButton(cfg, ClassFooterButton)
	button.Text = cfg.ButtonFooter
	return &Node{
		Tag:      "footer",
		Classes:  []string{ClassFooter},
		Children: []*Node{button},
	}
}

func closeButton(cfg Config, class string) *Node {
	return &Node{
		Tag:     "button",
		Classes: []string{class},
		Attrs: []Attr{
			{Key: "type", Value: "button"},
			{Key: "role", Value: "button"},
		},
		Action:     cfg.CloseAction(),
		onActivate: cfg.OnClose,
	}
}
