/*
* Copyright (c) 2025-present ifacelink authors
* @author Ilya Bocharov
 */

// Package linkrt is the small support runtime behind the weak/default
// overlay. The Go linker has no weak symbols, so link-time-resolved
// defaults are substituted by a two-phase registry: the definition side
// registers the default body of every defaulted method together with a
// per-module requirement manifest, each implementation registers its
// overrides, and the generated dispatch shim — itself pushed under the
// synthesized symbol name — consults overrides before defaults.
//
// Registration happens from generated init functions only; lookups
// happen on every dispatched call. Methods without a default never pass
// through here: they are bound by the linker directly and a missing
// implementation is an unresolved relocation, not a registry miss.
package linkrt

import (
	"errors"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Requirement is one entry of a module manifest: a symbol the interface
// definition declared, and whether a default body backs it.
type Requirement struct {
	Symbol     string
	HasDefault bool
}

// Registry holds the default and override tables. The zero value is not
// usable; use NewRegistry. Generated code talks to the package-level
// instance through the functions below; tests create their own.
type Registry struct {
	mu        sync.RWMutex
	defaults  map[string]any
	overrides map[string]any
	modules   map[string][]Requirement
}

func NewRegistry() *Registry {
	return &Registry{
		defaults:  make(map[string]any),
		overrides: make(map[string]any),
		modules:   make(map[string][]Requirement),
	}
}

// RegisterDefault records the weak definition of symbol. Two defaults
// for one symbol mean two expanded definitions of the same interface
// are linked into the program, which a real weak symbol would also
// reject; panic, since this runs from init and there is no caller to
// return an error to.
func (r *Registry) RegisterDefault(symbol string, fn any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.defaults[symbol]; ok {
		panic("ifacelink: duplicate weak symbol " + symbol)
	}
	r.defaults[symbol] = fn
}

// RegisterOverride records a strong definition of symbol. A duplicate
// is the registry analog of a duplicate-symbol link error.
func (r *Registry) RegisterOverride(symbol string, fn any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.overrides[symbol]; ok {
		panic("ifacelink: duplicate symbol " + symbol)
	}
	r.overrides[symbol] = fn
}

// RegisterModule records the requirement manifest of one expanded
// interface definition, keyed by its module name.
func (r *Registry) RegisterModule(module string, reqs []Requirement) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.modules[module]; ok {
		panic("ifacelink: duplicate module " + module)
	}
	r.modules[module] = reqs
}

// Override returns the strong definition of symbol, if any. The weak
// definitions have no lookup: a generated dispatch shim falls back to
// its weak body directly, the registration only detects duplicates.
func (r *Registry) Override(symbol string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.overrides[symbol]
	return fn, ok
}

// Verify reports every symbol some linked module requires that has
// neither an override nor a default. It is the registry counterpart of
// the linker's unresolved-symbol diagnostic, meant to be called from a
// test or early in main.
func (r *Registry) Verify() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	errs := make([]error, 0)
	mods := maps.Keys(r.modules)
	slices.Sort(mods)
	for _, mod := range mods {
		for _, req := range r.modules[mod] {
			if _, ok := r.overrides[req.Symbol]; ok {
				continue
			}
			if req.HasDefault {
				continue
			}
			errs = append(errs, ErrUnresolved(mod, req.Symbol))
		}
	}
	return errors.Join(errs...)
}

var registry = NewRegistry()

// Package-level accessors used by generated code.

func RegisterDefault(symbol string, fn any) { registry.RegisterDefault(symbol, fn) }

func RegisterOverride(symbol string, fn any) { registry.RegisterOverride(symbol, fn) }

func RegisterModule(module string, reqs []Requirement) { registry.RegisterModule(module, reqs) }

func Override(symbol string) (any, bool) { return registry.Override(symbol) }

func Verify() error { return registry.Verify() }
