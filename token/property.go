/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"fmt"
	"strconv"
)

// Property declares a custom property that tokens may carry a value for.
type Property struct {
	ID       string           `json:"id,omitempty"`
	Name     string           `json:"name,omitempty"`
	CodeName string           `json:"codeName"`
	Type     string           `json:"type,omitempty"`
	Options  []PropertyOption `json:"options,omitempty"`
}

// PropertyOption is one choice of a select-style property.
type PropertyOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Option returns the option with the given id.
func (p *Property) Option(id string) (PropertyOption, bool) {
	for _, opt := range p.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return PropertyOption{}, false
}

// Property returns the declared property with the given code name.
func (t *Token) Property(codeName string) (*Property, bool) {
	for i := range t.Properties {
		if t.Properties[i].CodeName == codeName {
			return &t.Properties[i], true
		}
	}
	return nil, false
}

// PropertyValue returns the value stored for a property code name and
// whether that value is truthy (present, non-empty, non-zero, not false).
func (t *Token) PropertyValue(codeName string) (any, bool) {
	v, ok := t.PropertyValues[codeName]
	if !ok {
		return nil, false
	}
	return v, truthy(v)
}

// PropertyString renders a property value as a string, the way select
// option ids are compared.
func PropertyString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case float64:
		return val != 0
	case int:
		return val != 0
	default:
		return true
	}
}
