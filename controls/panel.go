// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package controls

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/core/colors"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/jinzhu/copier"
)

// Kinds are the kinds of panel fields.
type Kinds int32

const (
	// Bool is a checkbox toggle.
	Bool Kinds = iota

	// Number is a slider, optionally bounded.
	Number

	// Color is a hex color picker.
	Color
)

func (k Kinds) String() string {
	switch k {
	case Bool:
		return "bool"
	case Number:
		return "number"
	}
	return "color"
}

// Field is one named control bound to a value in [State].
type Field struct {
	Name string
	Kind Kinds

	// Min and Max bound a Number field when HasRange is set.
	Min, Max float64
	HasRange bool

	get      func() string
	set      func(string) error
	onChange []func()
}

// OnChange adds a function called synchronously after every edit.
func (f *Field) OnChange(fn func()) *Field {
	f.onChange = append(f.onChange, fn)
	return f
}

// Value returns the current value formatted as text.
func (f *Field) Value() string {
	return f.get()
}

func (f *Field) String() string {
	s := fmt.Sprintf("%s = %s (%s", f.Name, f.get(), f.Kind)
	if f.HasRange {
		s += fmt.Sprintf(" [%g, %g]", f.Min, f.Max)
	}
	return s + ")"
}

// Panel binds named fields to a [State]. Edits parse, clamp and assign
// the value and then run the field callbacks before returning.
type Panel struct {
	State *State

	fields   *ordmap.Map[string, *Field]
	defaults State
}

// NewPanel returns a panel with one field for each control in st.
// The current values of st are taken as the values restored by [Panel.Reset].
func NewPanel(st *State) *Panel {
	p := &Panel{State: st, fields: ordmap.New[string, *Field]()}
	copier.Copy(&p.defaults, st)
	p.AddColor("lightsource", &st.LightSource)
	p.AddBool("wireframe", &st.Wireframe)
	p.AddBool("axis", &st.Axis)
	p.AddBool("ring", &st.Ring)
	p.AddBool("freeze", &st.Freeze)
	p.AddBool("freeze_planets", &st.FreezePlanets)
	p.AddBool("freeze_moons", &st.FreezeMoons)
	p.AddNumber("speed", &st.Speed, 0, 0.01)
	p.AddNumber("penumbra", &st.Penumbra, 0, 1)
	p.AddNumber("intensity", &st.Intensity, 0, 5)
	return p
}

func (p *Panel) add(f *Field) *Field {
	if i, ok := p.fields.IndexByKeyTry(f.Name); ok {
		p.fields.ReplaceIndex(i, f.Name, f)
		return f
	}
	p.fields.Add(f.Name, f)
	return f
}

// AddBool adds a toggle bound to v.
func (p *Panel) AddBool(name string, v *bool) *Field {
	return p.add(&Field{Name: name, Kind: Bool,
		get: func() string { return strconv.FormatBool(*v) },
		set: func(s string) error {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return err
			}
			*v = b
			return nil
		},
	})
}

// AddNumber adds a slider bound to v. When lo < hi, values are
// clamped to [lo, hi].
func (p *Panel) AddNumber(name string, v *float64, lo, hi float64) *Field {
	f := &Field{Name: name, Kind: Number, Min: lo, Max: hi, HasRange: lo < hi}
	f.get = func() string { return strconv.FormatFloat(*v, 'g', -1, 64) }
	f.set = func(s string) error {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		if f.HasRange {
			x = clamp(x, f.Min, f.Max)
		}
		*v = x
		return nil
	}
	return p.add(f)
}

// AddColor adds a hex color picker bound to v.
func (p *Panel) AddColor(name string, v *string) *Field {
	return p.add(&Field{Name: name, Kind: Color,
		get: func() string { return *v },
		set: func(s string) error {
			if _, err := ParseHex(s); err != nil {
				return err
			}
			if !strings.HasPrefix(s, "#") {
				s = "#" + s
			}
			*v = strings.ToLower(s)
			return nil
		},
	})
}

// ParseHex parses a #rgb, #rrggbb or #rrggbbaa color, with or without
// the leading #. Unlike [colors.FromHex] it rejects non-hex digits.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3, 6, 8:
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	if _, err := strconv.ParseUint(h, 16, 32); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	return colors.FromHex(h)
}

// Field returns the named field, with a suggestion in the error when
// the name is unknown.
func (p *Panel) Field(name string) (*Field, error) {
	f, ok := p.fields.ValueByKeyTry(name)
	if ok {
		return f, nil
	}
	if sg := p.Suggest(name); sg != "" {
		return nil, fmt.Errorf("unknown control %q (did you mean %q?)", name, sg)
	}
	return nil, fmt.Errorf("unknown control %q", name)
}

// Fields returns all fields in the order they were added.
func (p *Panel) Fields() []*Field {
	return p.fields.Values()
}

// Get returns the current value of the named field as text.
func (p *Panel) Get(name string) (string, error) {
	f, err := p.Field(name)
	if err != nil {
		return "", err
	}
	return f.Value(), nil
}

// Set parses value into the named field and runs its callbacks.
// The callbacks have run by the time Set returns.
func (p *Panel) Set(name, value string) error {
	f, err := p.Field(name)
	if err != nil {
		return err
	}
	if err := f.set(strings.TrimSpace(value)); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	for _, fn := range f.onChange {
		fn()
	}
	return nil
}

// Apply sets every field whose value in next differs from the current
// state, returning the names of the changed fields.
func (p *Panel) Apply(next *State) []string {
	np := NewPanel(next)
	var changed []string
	for _, f := range p.Fields() {
		nf, ok := np.fields.ValueByKeyTry(f.Name)
		if !ok {
			continue
		}
		nv := nf.Value()
		if nv == f.Value() {
			continue
		}
		if err := p.Set(f.Name, nv); err == nil {
			changed = append(changed, f.Name)
		}
	}
	return changed
}

// Reset restores the values the panel was created with, running the
// callbacks of every field that changed.
func (p *Panel) Reset() []string {
	def := &State{}
	copier.Copy(def, &p.defaults)
	return p.Apply(def)
}

// Suggest returns the field name closest to name, or "" when nothing
// is reasonably close.
func (p *Panel) Suggest(name string) string {
	lev := metrics.NewLevenshtein()
	best, bestSim := "", 0.5
	for _, k := range p.fields.Keys() {
		sim := strutil.Similarity(strings.ToLower(name), k, lev)
		if sim > bestSim {
			best, bestSim = k, sim
		}
	}
	return best
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
