// Package connectors provides the per-destination-kind configuration
// builders producing the parameter set sent to the remote service when a
// push subscription is created or updated. Every parameter key is
// namespaced under the fixed "output_params." prefix before transmission.
package connectors

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/coregx/pushsub/api"
)

// Connector is a destination configuration builder. Concrete connectors
// declare the parameter keys their destination requires and offer chainable
// typed setters; Parameters exposes the accumulated set for submission.
type Connector interface {
	// Type returns the output type identifier the connector configures.
	Type() string

	// Parameters returns the accumulated, prefixed parameter set.
	Parameters() *Params
}

// Params accumulates prefixed destination parameters together with the set
// of keys the destination declares required. Safe for concurrent use, so a
// single connector may be configured from multiple goroutines.
type Params struct {
	mu       sync.RWMutex
	required map[string]struct{}
	values   map[string]string
}

func newParams(required ...string) *Params {
	p := &Params{
		required: make(map[string]struct{}, len(required)),
		values:   make(map[string]string),
	}
	for _, name := range required {
		p.required[api.ParamPrefix+name] = struct{}{}
	}
	return p
}

// Set stores a parameter under its prefixed key. The name must not be
// empty.
func (p *Params) Set(name, value string) error {
	if name == "" {
		return api.NewError(api.ErrCodeInvalidData, "parameter name cannot be empty")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[api.ParamPrefix+name] = value
	return nil
}

// PutAll imports every usable entry from an external map, silently
// skipping nil values and empty keys. A nil map is a no-op.
func (p *Params) PutAll(m map[string]interface{}) {
	for k, v := range m {
		if k == "" || v == nil {
			continue
		}
		_ = p.Set(k, fmt.Sprintf("%v", v))
	}
}

// Map returns a copy of the accumulated, prefixed key/value set.
func (p *Params) Map() map[string]string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[string]string, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// Required returns the prefixed keys the destination declares required,
// sorted for stable output.
func (p *Params) Required() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]string, 0, len(p.required))
	for k := range p.required {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Validate checks that every required key has been set.
func (p *Params) Validate() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var missing []string
	for k := range p.required {
		if _, ok := p.values[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return api.NewError(api.ErrCodeInvalidData,
			fmt.Sprintf("missing required parameters: %s", strings.Join(missing, ", ")))
	}
	return nil
}

// base carries the shared builder state. Concrete connectors embed it and
// return their own pointer type from setters so configuration calls chain
// without late-bound self typing.
type base struct {
	typ    string
	params *Params
}

func newBase(typ string, required ...string) base {
	return base{typ: typ, params: newParams(required...)}
}

// Type implements Connector.
func (b *base) Type() string {
	return b.typ
}

// Parameters implements Connector.
func (b *base) Parameters() *Params {
	return b.params
}

func (b *base) set(name, value string) {
	_ = b.params.Set(name, value)
}
