// Package templ provides event binding and page layout helpers for modalkit.
package templ

import (
	"strings"

	"github.com/a-h/templ"
)

// EventAttr is the attribute the client runtime scans for event bindings.
const EventAttr = "data-on"

// Binding is a parsed event binding.
type Binding struct {
	// Event is the DOM event name (click, keydown, ...).
	Event string
	// Action is the server action invoked when the event fires.
	Action string
}

// String returns the attribute value for the binding.
func (b Binding) String() string {
	return b.Event + ":" + b.Action
}

// On creates an event binding attribute.
// Usage: <button { templ.On("click", "modal.close") }>Close</button>
func On(event string, action string) templ.Attributes {
	return templ.Attributes{
		EventAttr: Binding{Event: event, Action: action}.String(),
	}
}

// OnClick creates a click binding.
func OnClick(action string) templ.Attributes {
	return On("click", action)
}

// ParseBinding splits an attribute value produced by On. The action may
// itself contain colons; only the first separates the event.
func ParseBinding(value string) (Binding, bool) {
	event, action, ok := strings.Cut(value, ":")
	if !ok || event == "" || action == "" {
		return Binding{}, false
	}
	return Binding{Event: event, Action: action}, true
}
