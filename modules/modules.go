package modules

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

/*
 * Module is a text recovered from an image, together with where it came
 * from. Nothing here ever executes it: running a module is the business
 * of a Runner supplied by the caller.
 */
type Module struct {
	Name     string
	Text     string
	Decoded  time.Time
	metadata map[string]string
}

func NewModule(name, text string, metadata map[string]string) *Module {
	m := &Module{
		Name:     name,
		Text:     text,
		Decoded:  time.Now(),
		metadata: make(map[string]string, len(metadata)),
	}
	for k, v := range metadata {
		m.metadata[k] = v
	}
	return m
}

func (m *Module) Meta(key string) (string, bool) {
	v, ok := m.metadata[key]
	return v, ok
}

// Metadata returns a copy; the module itself never changes.
func (m *Module) Metadata() map[string]string {
	result := make(map[string]string, len(m.metadata))
	for k, v := range m.metadata {
		result[k] = v
	}
	return result
}

type Runner interface {
	Run(ctx context.Context, m *Module) error
}

type RunnerFunc func(ctx context.Context, m *Module) error

func (f RunnerFunc) Run(ctx context.Context, m *Module) error {
	return f(ctx, m)
}

type namedRunner struct {
	name   string
	runner Runner
}

// Registry holds the runners modules are handed to, in registration order.
type Registry struct {
	runners []namedRunner
	mtx     sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Register(name string, runner Runner) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	for _, nr := range r.runners {
		if nr.name == name {
			return fmt.Errorf("runner %q is already registered", name)
		}
	}
	r.runners = append(r.runners, namedRunner{name, runner})
	return nil
}

func (r *Registry) Unregister(name string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	for i, nr := range r.runners {
		if nr.name == name {
			r.runners = append(r.runners[:i], r.runners[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("runner %q not found", name)
}

func (r *Registry) Names() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	names := make([]string, 0, len(r.runners))
	for _, nr := range r.runners {
		names = append(names, nr.name)
	}
	return names
}

/*
 * Run hands m to every runner. A failing runner does not stop the
 * others; all the failures are returned together.
 */
func (r *Registry) Run(ctx context.Context, m *Module) error {
	r.mtx.RLock()
	runners := append([]namedRunner{}, r.runners...)
	r.mtx.RUnlock()

	var errs []error
	for _, nr := range runners {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := nr.runner.Run(ctx, m); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", nr.name, err))
		}
	}
	return errors.Join(errs...)
}

// Collector keeps every module decoded so far.
type Collector struct {
	modules []*Module
	mtx     sync.Mutex
}

func NewCollector() *Collector {
	return &Collector{}
}

// Add is a valid OnModule hook.
func (c *Collector) Add(m *Module) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.modules = append(c.modules, m)
}

func (c *Collector) Modules() []*Module {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return append([]*Module{}, c.modules...)
}

func (c *Collector) Len() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return len(c.modules)
}

// Names of the collected modules, sorted.
func (c *Collector) Names() []string {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	names := make([]string, 0, len(c.modules))
	for _, m := range c.modules {
		names = append(names, m.Name)
	}
	sort.Strings(names)
	return names
}
