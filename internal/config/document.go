package config

import (
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Document is an evaluated configuration.
type Document struct {
	// Files lists the sources the document was loaded from, in load order.
	Files  []string
	values map[string]cty.Value
}

// NewDocument creates a Document holding a copy of values.
func NewDocument(files []string, values map[string]cty.Value) *Document {
	d := &Document{
		Files:  append([]string(nil), files...),
		values: make(map[string]cty.Value, len(values)),
	}
	for name, v := range values {
		d.values[name] = v
	}
	return d
}

// Get returns the value of the named top-level attribute.
func (d *Document) Get(name string) (cty.Value, bool) {
	v, ok := d.values[name]
	return v, ok
}

// Names returns the attribute names in sorted order.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.values))
	for name := range d.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of attributes.
func (d *Document) Len() int {
	return len(d.values)
}

// Value returns the whole document as a single object value.
func (d *Document) Value() cty.Value {
	if len(d.values) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(d.values)
}

// Decode stores the document in target, which must be a pointer to a struct
// with `cty:"name"` field tags. Values are converted to the field types the
// way HCL converts function arguments, and attributes without a matching
// field are ignored.
func (d *Document) Decode(target any) error {
	if err := decode(d.Value(), target); err != nil {
		return fmt.Errorf("failed to decode configuration into %T: %w", target, err)
	}
	return nil
}

// DecodeAttr stores a single attribute in target.
func (d *Document) DecodeAttr(name string, target any) error {
	v, ok := d.values[name]
	if !ok {
		return fmt.Errorf("configuration has no attribute %q", name)
	}
	if err := decode(v, target); err != nil {
		return fmt.Errorf("failed to decode attribute %q into %T: %w", name, target, err)
	}
	return nil
}

func decode(v cty.Value, target any) error {
	// Targets without an implied type, such as interface fields, are left
	// to gocty to reject or accept.
	if ty, err := gocty.ImpliedType(target); err == nil {
		if v, err = convert.Convert(v, ty); err != nil {
			return err
		}
	}
	return gocty.FromCtyValue(v, target)
}

// MarshalJSON renders the document as a JSON object.
func (d *Document) MarshalJSON() ([]byte, error) {
	v := d.Value()
	return ctyjson.Marshal(v, v.Type())
}
