package visualstate

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/graphics"
	"github.com/omnigui/omnigui/pkg/layout"
	"github.com/omnigui/omnigui/pkg/property"
)

var (
	brushType  = reflect.TypeFor[graphics.Brush]()
	colorType  = reflect.TypeFor[graphics.Color]()
	sizeType   = reflect.TypeFor[geometry.Size]()
	thickType  = reflect.TypeFor[geometry.Thickness]()
	halignType = reflect.TypeFor[layout.HorizontalAlignment]()
	valignType = reflect.TypeFor[layout.VerticalAlignment]()
)

// ParseValue converts text into a value of desc's type. Supported types
// are brushes and colors (names or hex), sizes ("w,h", "auto" for an
// unspecified axis), thickness ("u", "h,v" or "l,t,r,b"), alignments,
// strings, booleans, integers and floats.
func ParseValue(desc property.Descriptor, text string) (any, error) {
	text = strings.TrimSpace(text)
	t := desc.ValueType()
	switch t {
	case brushType:
		c, err := graphics.ParseColor(text)
		if err != nil {
			return nil, err
		}
		return graphics.SolidBrush(c), nil
	case colorType:
		return graphics.ParseColor(text)
	case sizeType:
		return parseSize(text)
	case thickType:
		return parseThickness(text)
	case halignType:
		return layout.ParseHorizontalAlignment(text)
	case valignType:
		return layout.ParseVerticalAlignment(text)
	}

	switch t.Kind() {
	case reflect.String:
		return reflect.ValueOf(text).Convert(t).Interface(), nil
	case reflect.Bool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(b).Convert(t).Interface(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(text, 10, t.Bits())
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(n).Convert(t).Interface(), nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(text, t.Bits())
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(f).Convert(t).Interface(), nil
	case reflect.Interface:
		return text, nil
	}
	return nil, fmt.Errorf("visualstate: cannot parse %s values for %s.%s", t, desc.Owner(), desc.Name())
}

func parseFloats(text string) ([]float64, error) {
	parts := strings.Split(text, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if strings.EqualFold(p, "auto") {
			out[i] = math.NaN()
			continue
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("visualstate: bad number %q: %w", p, err)
		}
		out[i] = f
	}
	return out, nil
}

func parseSize(text string) (geometry.Size, error) {
	v, err := parseFloats(text)
	if err != nil {
		return geometry.Size{}, err
	}
	switch len(v) {
	case 1:
		return geometry.Sz(v[0], v[0]), nil
	case 2:
		return geometry.Sz(v[0], v[1]), nil
	}
	return geometry.Size{}, fmt.Errorf("visualstate: size %q needs one or two components", text)
}

func parseThickness(text string) (geometry.Thickness, error) {
	v, err := parseFloats(text)
	if err != nil {
		return geometry.Thickness{}, err
	}
	switch len(v) {
	case 1:
		return geometry.Uniform(v[0]), nil
	case 2:
		return geometry.Symmetric(v[0], v[1]), nil
	case 4:
		return geometry.Thickness{Left: v[0], Top: v[1], Right: v[2], Bottom: v[3]}, nil
	}
	return geometry.Thickness{}, fmt.Errorf("visualstate: thickness %q needs one, two or four components", text)
}

// Resolve finds a descriptor by "Owner.Name" or by bare name. A bare
// name must match exactly one registered property.
func Resolve(reg *property.Registry, name string) (property.Descriptor, error) {
	if owner, prop, ok := strings.Cut(name, "."); ok {
		if d, found := reg.Lookup(owner, prop); found {
			return d, nil
		}
		return nil, fmt.Errorf("visualstate: unknown property %q", name)
	}
	var match property.Descriptor
	for _, d := range reg.Descriptors() {
		if d.Name() != name {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("visualstate: property %q is ambiguous (%s, %s)", name, match.Owner(), d.Owner())
		}
		match = d
	}
	if match == nil {
		return nil, fmt.Errorf("visualstate: unknown property %q", name)
	}
	return match, nil
}

// Parse builds a VisualState targeting store from textual property
// values keyed by property name. Setters are ordered by property name.
func Parse(store *property.Store, name string, values map[string]string) (VisualState, error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	state := VisualState{Name: name}
	for _, k := range keys {
		desc, err := Resolve(store.Registry(), k)
		if err != nil {
			return VisualState{}, fmt.Errorf("state %s: %w", name, err)
		}
		v, err := ParseValue(desc, values[k])
		if err != nil {
			return VisualState{}, fmt.Errorf("state %s: %s: %w", name, k, err)
		}
		state.Setters = append(state.Setters, Setter{Target: PropertyTarget(store, desc), Value: v})
	}
	return state, nil
}

// ParseGroup builds a Group from state definitions, ordered by state name.
func ParseGroup(store *property.Store, defs map[string]map[string]string) (*Group, error) {
	names := make([]string, 0, len(defs))
	for n := range defs {
		names = append(names, n)
	}
	sort.Strings(names)

	g := NewGroup()
	for _, n := range names {
		s, err := Parse(store, n, defs[n])
		if err != nil {
			return nil, err
		}
		g.Add(s)
	}
	return g, nil
}
