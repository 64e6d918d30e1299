// Package modal provides a stateless modal dialog component.
//
// A modal is described by a Config and rendered either as a Node tree
// (Build), as HTML (Render) or by any other renderer walking the tree.
// The component owns no state: callers decide whether it is open on every
// render and are notified through OnClose when the user dismisses it.
package modal

import (
	"reflect"

	"github.com/aydenstechdungeon/modalkit/component"
)

// Size is the modifier class applied to the content container.
// Any value is accepted and emitted verbatim.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Known reports whether the size is one the bundled stylesheet styles.
func (s Size) Known() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// Default values for absent configuration fields.
const (
	DefaultButtonFooter      = "Close"
	DefaultSize         Size = SizeMedium
	DefaultID                = "modal"
)

// Config defines the properties of a modal.
type Config struct {
	// ID is the element id. It also namespaces the close action.
	ID string
	// Open gates rendering: a closed modal renders nothing.
	Open bool
	// Closable shows the close button in the header.
	Closable bool
	// HeaderTitle is the header label.
	HeaderTitle string
	// MainContent is the body text.
	MainContent string
	// HasFooter shows the footer with its single button.
	HasFooter bool
	// ButtonFooter is the footer button label.
	ButtonFooter string
	// ModalSize is the size modifier class.
	ModalSize Size
	// OnClose is invoked when the close or footer button is activated.
	OnClose func()

	// Set by FromProps when buttonFooter or modalSize is given as "".
	// Merge then keeps the empty value instead of filling the default.
	emptyFooter bool
	emptySize   bool
}

// DefaultConfig returns a closed modal with default values.
func DefaultConfig() Config {
	return Config{
		ID:           DefaultID,
		ButtonFooter: DefaultButtonFooter,
		ModalSize:    DefaultSize,
	}
}

// Merge fills empty fields of cfg with defaults. Footer label and size given
// explicitly as "" through FromProps stay empty.
func Merge(cfg Config) Config {
	if cfg.ID == "" {
		cfg.ID = DefaultID
	}
	if cfg.ButtonFooter == "" && !cfg.emptyFooter {
		cfg.ButtonFooter = DefaultButtonFooter
	}
	if cfg.ModalSize == "" && !cfg.emptySize {
		cfg.ModalSize = DefaultSize
	}
	return cfg
}

// CloseAction returns the action name the close controls of the modal with
// the given id are bound to.
func CloseAction(id string) string {
	if id == "" {
		id = DefaultID
	}
	return id + ".close"
}

// CloseAction returns the action name bound to this modal's close controls.
func (c Config) CloseAction() string {
	return CloseAction(c.ID)
}

// Close invokes OnClose if set.
func (c Config) Close() {
	if c.OnClose != nil {
		c.OnClose()
	}
}

// Option configures a modal.
type Option func(*Config)

// New builds a Config from the defaults and the given options.
func New(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return Merge(cfg)
}

// WithID sets the element id.
func WithID(id string) Option {
	return func(c *Config) { c.ID = id }
}

// Open marks the modal as open.
func Open() Option {
	return func(c *Config) { c.Open = true }
}

// WithOpen sets the open flag.
func WithOpen(open bool) Option {
	return func(c *Config) { c.Open = open }
}

// Closable shows the header close button.
func Closable() Option {
	return func(c *Config) { c.Closable = true }
}

// WithTitle sets the header title.
func WithTitle(title string) Option {
	return func(c *Config) { c.HeaderTitle = title }
}

// WithContent sets the body text.
func WithContent(content string) Option {
	return func(c *Config) { c.MainContent = content }
}

// WithFooter shows the footer. An empty label keeps the default.
func WithFooter(label string) Option {
	return func(c *Config) {
		c.HasFooter = true
		if label != "" {
			c.ButtonFooter = label
		}
	}
}

// WithSize sets the size modifier.
func WithSize(size Size) Option {
	return func(c *Config) { c.ModalSize = size }
}

// WithOnClose sets the close callback.
func WithOnClose(fn func()) Option {
	return func(c *Config) { c.OnClose = fn }
}

// Prop names accepted by FromProps.
const (
	PropID           = "id"
	PropIsOpen       = "isOpen"
	PropClosable     = "closable"
	PropHeaderTitle  = "headerTitle"
	PropMainContent  = "mainContent"
	PropHasFooter    = "hasFooter"
	PropButtonFooter = "buttonFooter"
	PropModalSize    = "modalSize"
)

// Schema describes the loose props a modal accepts.
var Schema = component.NewPropSchema().
	Define(PropID, reflect.String, DefaultID).
	Define(PropIsOpen, reflect.Bool, false).
	Define(PropClosable, reflect.Bool, false).
	Define(PropHeaderTitle, reflect.String, "").
	Define(PropMainContent, reflect.String, "").
	Define(PropHasFooter, reflect.Bool, false).
	Define(PropButtonFooter, reflect.String, DefaultButtonFooter).
	Define(PropModalSize, reflect.String, string(DefaultSize))

// FromProps decodes loosely typed props into a Config. It never fails:
// flags are coerced by truthiness, texts are formatted and absent or nil
// props take their defaults. A buttonFooter or modalSize present as ""
// is kept empty. OnClose is left for the caller to set.
func FromProps(props component.Props) Config {
	p := Schema.ApplyDefaults(props)
	return Merge(Config{
		ID:           p.GetString(PropID),
		Open:         p.GetTruthy(PropIsOpen),
		Closable:     p.GetTruthy(PropClosable),
		HeaderTitle:  p.GetString(PropHeaderTitle),
		MainContent:  p.GetString(PropMainContent),
		HasFooter:    p.GetTruthy(PropHasFooter),
		ButtonFooter: p.GetString(PropButtonFooter),
		ModalSize:    Size(p.GetString(PropModalSize)),
		emptyFooter:  p.GetString(PropButtonFooter) == "",
		emptySize:    p.GetString(PropModalSize) == "",
	})
}

// Props returns the loose representation of the config with defaults
// applied, without OnClose.
func (c Config) Props() component.Props {
	c = Merge(c)
	return component.Props{
		PropID:           c.ID,
		PropIsOpen:       c.Open,
		PropClosable:     c.Closable,
		PropHeaderTitle:  c.HeaderTitle,
		PropMainContent:  c.MainContent,
		PropHasFooter:    c.HasFooter,
		PropButtonFooter: c.ButtonFooter,
		PropModalSize:    string(c.ModalSize),
	}
}
