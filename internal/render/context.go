package render

import (
	"maps"
	"text/template"
)

// Context is the mapping a template is rendered against: plain values in
// Data and callables in Funcs.
type Context struct {
	Data  map[string]any
	Funcs template.FuncMap
}

// NewContext returns an empty context carrying the base functions.
func NewContext() Context {
	return Context{
		Data:  make(map[string]any),
		Funcs: BaseFuncs(),
	}
}

// Clone returns a shallow copy whose top-level maps can be modified without
// affecting c.
func (c Context) Clone() Context {
	out := Context{
		Data:  make(map[string]any, len(c.Data)),
		Funcs: make(template.FuncMap, len(c.Funcs)),
	}
	maps.Copy(out.Data, c.Data)
	maps.Copy(out.Funcs, c.Funcs)
	return out
}

// Lookup walks nested map[string]any values in Data, e.g.
// Lookup("env", "schema").
func (c Context) Lookup(path ...string) (any, bool) {
	var cur any = c.Data
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[key]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// LookupString is Lookup for string leaves.
func (c Context) LookupString(path ...string) (string, bool) {
	v, ok := c.Lookup(path...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
