// Package component provides loosely typed component properties and prop schemas.
package component

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/goccy/go-json"
)

// Props is a map of component properties.
type Props map[string]interface{}

// Get returns a prop value by key.
func (p Props) Get(key string) interface{} {
	if p == nil {
		return nil
	}
	return p[key]
}

// Set sets a prop value.
func (p Props) Set(key string, value interface{}) {
	if p == nil {
		return
	}
	p[key] = value
}

// Has reports whether a prop is present with a non-nil value.
func (p Props) Has(key string) bool {
	if p == nil {
		return false
	}
	val, ok := p[key]
	return ok && val != nil
}

// GetString returns a prop as a string. Non-string values are formatted with %v.
func (p Props) GetString(key string) string {
	if !p.Has(key) {
		return ""
	}
	if str, ok := p[key].(string); ok {
		return str
	}
	return fmt.Sprintf("%v", p[key])
}

// GetBool returns a prop as a bool. Only real booleans count.
func (p Props) GetBool(key string) bool {
	if b, ok := p.Get(key).(bool); ok {
		return b
	}
	return false
}

// GetTruthy coerces a prop to a bool the way loosely typed inputs expect:
// empty strings, zero numbers, nil and empty collections are false.
func (p Props) GetTruthy(key string) bool {
	return Truthy(p.Get(key))
}

// Truthy reports whether v is a truthy value.
func Truthy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case int:
		return val != 0
	case int64:
		return val != 0
	case uint64:
		return val != 0
	case float64:
		return val != 0
	case float32:
		return val != 0
	}
	return true
}

// Keys returns all prop keys in sorted order.
func (p Props) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone creates a shallow copy of the props.
func (p Props) Clone() Props {
	if p == nil {
		return nil
	}
	clone := make(Props, len(p))
	for k, v := range p {
		clone[k] = v
	}
	return clone
}

// Merge merges another Props into this one.
func (p Props) Merge(other Props) {
	if p == nil || other == nil {
		return
	}
	for k, v := range other {
		p[k] = v
	}
}

// ToJSON returns the props as JSON.
func (p Props) ToJSON() (string, error) {
	if p == nil {
		return "{}", nil
	}
	data, err := json.Marshal(p)
	return string(data), err
}

// PropsFromJSON creates Props from JSON.
func PropsFromJSON(data string) (Props, error) {
	var p Props
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, err
	}
	return p, nil
}

// Equals checks if two Props are equal.
func (p Props) Equals(other Props) bool {
	if len(p) != len(other) {
		return false
	}
	for k, v := range p {
		if ov, ok := other[k]; !ok || !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	return true
}

// PropDefinition defines a prop's type and default value.
type PropDefinition struct {
	Name         string
	Type         reflect.Kind
	DefaultValue interface{}
}

// PropSchema defines the schema for component props.
type PropSchema struct {
	definitions map[string]PropDefinition
}

// NewPropSchema creates a new prop schema.
func NewPropSchema() *PropSchema {
	return &PropSchema{
		definitions: make(map[string]PropDefinition),
	}
}

// Define defines a prop.
func (s *PropSchema) Define(name string, kind reflect.Kind, defaultValue interface{}) *PropSchema {
	s.definitions[name] = PropDefinition{
		Name:         name,
		Type:         kind,
		DefaultValue: defaultValue,
	}
	return s
}

// Validate reports props whose type does not match the schema and props the
// schema does not know. Absent props are never an error.
func (s *PropSchema) Validate(props Props) error {
	for _, name := range props.Keys() {
		def, ok := s.definitions[name]
		if !ok {
			return fmt.Errorf("unknown prop: %s", name)
		}
		val := props[name]
		if val == nil || def.Type == reflect.Invalid {
			continue
		}
		if kind := reflect.TypeOf(val).Kind(); kind != def.Type {
			return fmt.Errorf("prop %s has wrong type: expected %s, got %s", name, def.Type, kind)
		}
	}
	return nil
}

// ApplyDefaults returns a copy of props with defaults filled in for absent or nil props.
func (s *PropSchema) ApplyDefaults(props Props) Props {
	out := props.Clone()
	if out == nil {
		out = make(Props, len(s.definitions))
	}
	for name, def := range s.definitions {
		if !out.Has(name) && def.DefaultValue != nil {
			out[name] = def.DefaultValue
		}
	}
	return out
}
