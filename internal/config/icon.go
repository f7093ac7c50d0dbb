package config

import (
	"encoding/json"
)

// IconShape records which accepted form an icon reference used.
type IconShape int

const (
	// IconShapeName is a single "collection:name" string.
	IconShapeName IconShape = iota
	// IconShapePair is a {light, dark} pair.
	IconShapePair
	// IconShapeStates is a {default, hover, active} triple.
	IconShapeStates
)

func (s IconShape) String() string {
	switch s {
	case IconShapePair:
		return "pair"
	case IconShapeStates:
		return "states"
	default:
		return "name"
	}
}

// IconValue is a string-or-pair icon.
type IconValue struct {
	Name  string
	Light string
	Dark  string
	pair  bool
}

// IconName returns a single-name icon value.
func IconName(name string) IconValue {
	return IconValue{Name: name}
}

// IconPair returns a light/dark icon value.
func IconPair(light, dark string) IconValue {
	return IconValue{Light: light, Dark: dark, pair: true}
}

// IsPair reports whether the value is a light/dark pair.
func (v IconValue) IsPair() bool {
	return v.pair
}

func (v IconValue) encode() any {
	if v.pair {
		return map[string]string{"light": v.Light, "dark": v.Dark}
	}
	return v.Name
}

// MarshalJSON encodes the value as a string or a {light, dark} object.
func (v IconValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.encode())
}

// MarshalYAML encodes the value as a string or a {light, dark} mapping.
func (v IconValue) MarshalYAML() (any, error) {
	return v.encode(), nil
}

// Icon is an icon reference in one of the three accepted shapes.
type Icon struct {
	Shape IconShape
	// Value is set for IconShapeName and IconShapePair.
	Value IconValue
	// Default, Hover and Active are set for IconShapeStates.
	Default IconValue
	Hover   IconValue
	Active  IconValue
}

// NewIcon returns an icon referenced by name.
func NewIcon(name string) Icon {
	return Icon{Shape: IconShapeName, Value: IconName(name)}
}

// NewIconPair returns a light/dark icon.
func NewIconPair(light, dark string) Icon {
	return Icon{Shape: IconShapePair, Value: IconPair(light, dark)}
}

// NewIconStates returns a three-state icon.
func NewIconStates(def, hover, active IconValue) Icon {
	return Icon{Shape: IconShapeStates, Default: def, Hover: hover, Active: active}
}

// State returns the icon for an interaction state ("default", "hover" or "active").
// Single-value icons return the same value for every state.
func (i Icon) State(state string) IconValue {
	if i.Shape != IconShapeStates {
		return i.Value
	}
	switch state {
	case "hover":
		return i.Hover
	case "active":
		return i.Active
	default:
		return i.Default
	}
}

func (i Icon) encode() any {
	if i.Shape == IconShapeStates {
		return map[string]any{
			"default": i.Default.encode(),
			"hover":   i.Hover.encode(),
			"active":  i.Active.encode(),
		}
	}
	return i.Value.encode()
}

// MarshalJSON encodes the icon in the shape it was parsed from.
func (i Icon) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.encode())
}

// MarshalYAML encodes the icon in the shape it was parsed from.
func (i Icon) MarshalYAML() (any, error) {
	return i.encode(), nil
}

const iconShapesMessage = `expected an icon name string, a {light, dark} pair, or a {default, hover, active} object whose states are strings or {light, dark} pairs`

func (d *decoder) iconValue(v any) (IconValue, bool) {
	if s, ok := v.(string); ok {
		return IconName(s), true
	}
	m, ok := asObject(v)
	if !ok {
		return IconValue{}, false
	}
	light, lok := m["light"].(string)
	dark, dok := m["dark"].(string)
	if !lok || !dok {
		return IconValue{}, false
	}
	return IconPair(light, dark), true
}

// icon tries the accepted shapes in order: string, pair, states.
func (d *decoder) icon(path string, v any) (Icon, bool) {
	if iv, ok := d.iconValue(v); ok {
		if iv.IsPair() {
			return Icon{Shape: IconShapePair, Value: iv}, true
		}
		return Icon{Shape: IconShapeName, Value: iv}, true
	}
	if m, ok := asObject(v); ok {
		def, dok := d.iconValue(m["default"])
		hover, hok := d.iconValue(m["hover"])
		active, aok := d.iconValue(m["active"])
		if dok && hok && aok {
			return NewIconStates(def, hover, active), true
		}
	}
	d.fail(path, codeShape, iconShapesMessage, v)
	return Icon{}, false
}
