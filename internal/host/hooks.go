package host

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"reflect"
	"sort"

	"git.home.luguber.info/inful/fishtheme/internal/foundation/errors"
)

// HookName identifies a lifecycle phase.
type HookName string

const (
	HookConfigSetup HookName = "config:setup"
	HookConfigDone  HookName = "config:done"
	HookBuildStart  HookName = "build:start"
	HookBuildDone   HookName = "build:done"
)

// LifecycleOrder is the order in which the runner invokes hooks.
var LifecycleOrder = []HookName{HookConfigSetup, HookConfigDone, HookBuildStart, HookBuildDone}

// HookParams is passed to every callback of a chain.
type HookParams struct {
	Context context.Context
	// Config is the shared host configuration. Callbacks should change it
	// through UpdateConfig.
	Config *Config
	Logger *slog.Logger
	// UpdateConfig merges a patch into Config.
	UpdateConfig func(patch Config) error
}

// HookFunc is a lifecycle callback.
type HookFunc func(p *HookParams) (any, error)

type chain struct {
	wrappers []HookFunc // newest first
	base     HookFunc
}

func (c chain) len() int {
	n := len(c.wrappers)
	if c.base != nil {
		n++
	}
	return n
}

// Hooks is an integration's table of callback chains keyed by lifecycle name.
//
// A chain is a base callback installed with Set plus any number of wrappers
// added with Wrap. Wrappers run newest first, then the base.
type Hooks struct {
	chains map[HookName]chain
}

// NewHooks returns an empty hook table.
func NewHooks() *Hooks {
	return &Hooks{chains: make(map[HookName]chain)}
}

// Set installs fn as the base callback for name, dropping any existing chain.
func (h *Hooks) Set(name HookName, fn HookFunc) {
	if h.chains == nil {
		h.chains = make(map[HookName]chain)
	}
	h.chains[name] = chain{base: fn}
}

// Wrap places fn ahead of the existing chain for name. The existing
// callbacks still run after fn.
func (h *Hooks) Wrap(name HookName, fn HookFunc) {
	if h.chains == nil {
		h.chains = make(map[HookName]chain)
	}
	c := h.chains[name]
	wrappers := make([]HookFunc, 0, len(c.wrappers)+1)
	wrappers = append(wrappers, fn)
	wrappers = append(wrappers, c.wrappers...)
	c.wrappers = wrappers
	h.chains[name] = c
}

// Len returns the number of callbacks registered for name.
func (h *Hooks) Len(name HookName) int {
	return h.chains[name].len()
}

// Names returns the lifecycle names that have callbacks, sorted.
func (h *Hooks) Names() []HookName {
	names := make([]HookName, 0, len(h.chains))
	for name, c := range h.chains {
		if c.len() > 0 {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Run invokes the chain for name front to back. Any error aborts the chain.
// The returned value is the base callback's value when it is truthy; false,
// zero numbers and empty strings yield nil. Wrapper values are discarded
// since wrappers act through p.
func (h *Hooks) Run(name HookName, p *HookParams) (any, error) {
	c, ok := h.chains[name]
	if !ok {
		return nil, nil
	}
	for _, fn := range c.wrappers {
		if _, err := fn(p); err != nil {
			return nil, hookError(name, err)
		}
	}
	if c.base == nil {
		return nil, nil
	}
	v, err := c.base(p)
	if err != nil {
		return nil, hookError(name, err)
	}
	if !truthy(v) {
		return nil, nil
	}
	return v, nil
}

// truthy treats false, zero numbers, NaN, empty strings and nil references as false.
func truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return !rv.IsZero()
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

func hookError(name HookName, err error) error {
	if errors.IsClassified(err) {
		return err
	}
	return errors.WrapError(err, errors.CategoryHost, "lifecycle hook failed").
		WithContext("hook", string(name)).
		Build()
}

// MarshalJSON encodes the number of callbacks per lifecycle name.
func (h *Hooks) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.summary())
}

// MarshalYAML encodes the number of callbacks per lifecycle name.
func (h *Hooks) MarshalYAML() (any, error) {
	return h.summary(), nil
}

func (h *Hooks) summary() map[string]int {
	out := make(map[string]int, len(h.chains))
	for _, name := range h.Names() {
		out[string(name)] = h.Len(name)
	}
	return out
}
