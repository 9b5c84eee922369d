package registry

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/randalmurphal/prototype/pkg/prototype"
	"github.com/randalmurphal/prototype/pkg/prototype/observability"
	"go.opentelemetry.io/otel/attribute"
)

// Mode selects shallow or deep duplication.
type Mode string

const (
	// ModeShallow shares everything below the top-level instance.
	ModeShallow Mode = "shallow"
	// ModeDeep duplicates everything reachable from the template.
	ModeDeep Mode = "deep"
)

// Registrar stores named template objects and hands out clones of them.
// Templates themselves are never returned.
//
// The map is guarded by a sync.RWMutex; duplication runs outside the lock.
// Callers must not mutate a template while it may be cloned.
type Registrar[K comparable] struct {
	mu        sync.RWMutex
	templates map[K]any
	settings
}

// New creates an empty registrar.
func New[K comparable](opts ...Option) *Registrar[K] {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return &Registrar[K]{
		templates: make(map[K]any),
		settings:  s,
	}
}

// Name returns the registrar name.
func (r *Registrar[K]) Name() string {
	return r.name
}

// Register stores template under id, replacing any earlier template.
func (r *Registrar[K]) Register(id K, template any) {
	r.mu.Lock()
	_, replaced := r.templates[id]
	r.templates[id] = template
	r.mu.Unlock()

	r.registered(id, replaced)
}

// RegisterMany stores every entry, replacing earlier templates.
func (r *Registrar[K]) RegisterMany(entries map[K]any) {
	replaced := make(map[K]bool, len(entries))
	r.mu.Lock()
	for id, template := range entries {
		_, exists := r.templates[id]
		replaced[id] = exists
		r.templates[id] = template
	}
	r.mu.Unlock()

	for id := range entries {
		r.registered(id, replaced[id])
	}
}

// RegisterIfAbsent stores the result of factory under id unless a template
// is already registered there. The factory is called at most once per id,
// even under concurrent access. Reports whether factory ran.
func (r *Registrar[K]) RegisterIfAbsent(id K, factory func() any) bool {
	r.mu.RLock()
	_, ok := r.templates[id]
	r.mu.RUnlock()
	if ok {
		return false
	}

	if !r.insertIfAbsent(id, factory) {
		return false
	}
	r.registered(id, false)
	return true
}

// insertIfAbsent runs factory under the write lock. A panicking factory
// leaves id unregistered and the lock released.
func (r *Registrar[K]) insertIfAbsent(id K, factory func() any) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.templates[id]; ok {
		return false
	}
	r.templates[id] = factory()
	return true
}

func (r *Registrar[K]) registered(id K, replaced bool) {
	observability.LogRegister(r.logger, fmt.Sprint(id), replaced)
	r.metrics.RecordRegister(context.Background(), r.name, replaced)
}

// Has returns true if a template is registered under id.
func (r *Registrar[K]) Has(id K) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.templates[id]
	return ok
}

// Keys returns all registered ids in no particular order.
func (r *Registrar[K]) Keys() []K {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]K, 0, len(r.templates))
	for k := range r.templates {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of registered templates.
func (r *Registrar[K]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}

// Copy returns a shallow clone of the template registered under id.
// Returns a *prototype.NotFoundError if id was never registered.
func (r *Registrar[K]) Copy(ctx context.Context, id K) (any, error) {
	return r.Clone(ctx, id, ModeShallow)
}

// DeepCopy returns a deep clone of the template registered under id,
// using a fresh clone context. Returns a *prototype.NotFoundError if id
// was never registered.
func (r *Registrar[K]) DeepCopy(ctx context.Context, id K) (any, error) {
	return r.Clone(ctx, id, ModeDeep)
}

// Clone returns a clone of the template under id in the given mode.
// ctx only carries trace spans; cloning never blocks.
func (r *Registrar[K]) Clone(ctx context.Context, id K, mode Mode) (any, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	key := fmt.Sprint(id)
	cc := prototype.NewCloneContext()

	ctx, span := r.spans.StartCloneSpan(ctx, r.name, key, string(mode), cc.ID())
	logger := observability.EnrichLogger(r.logger, r.name, cc.ID())
	observability.LogCloneStart(logger, key, string(mode))
	done := observability.TimedOperation()

	out, err := r.duplicate(ctx, cc, id, mode)

	durationMs := done()
	r.metrics.RecordClone(ctx, r.name, string(mode), time.Duration(durationMs*float64(time.Millisecond)), err)
	r.spans.EndSpanWithError(span, err)
	if err != nil {
		observability.LogCloneError(logger, key, string(mode), err)
		return nil, err
	}
	observability.LogCloneComplete(logger, key, string(mode), durationMs)
	return out, nil
}

func (r *Registrar[K]) duplicate(ctx context.Context, cc *prototype.CloneContext, id K, mode Mode) (any, error) {
	r.mu.RLock()
	template, ok := r.templates[id]
	r.mu.RUnlock()
	if !ok {
		return nil, &prototype.NotFoundError{Registry: r.name, ID: fmt.Sprint(id)}
	}

	r.spans.AddSpanEvent(ctx, "template.found",
		attribute.String("template.type", fmt.Sprintf("%T", template)),
	)

	switch mode {
	case ModeDeep:
		return prototype.DeepCopyWith(cc, template)
	case ModeShallow:
		return prototype.Copy(template)
	default:
		return nil, fmt.Errorf("unknown clone mode %q", mode)
	}
}

// Range calls fn with a clone of every template, iterating over a
// snapshot so fn may register new templates. If fn returns false,
// iteration stops. The first clone error stops iteration and is returned.
func (r *Registrar[K]) Range(ctx context.Context, mode Mode, fn func(id K, clone any) bool) error {
	for _, id := range r.Keys() {
		out, err := r.Clone(ctx, id, mode)
		if err != nil {
			return err
		}
		if !fn(id, out) {
			return nil
		}
	}
	return nil
}

// CopyAs returns a shallow clone of the template under id as a T.
// Returns a *prototype.TypeMismatchError if the template is not a T.
func CopyAs[T any, K comparable](ctx context.Context, r *Registrar[K], id K) (T, error) {
	return cloneAs[T](ctx, r, id, ModeShallow)
}

// DeepCopyAs returns a deep clone of the template under id as a T.
// Returns a *prototype.TypeMismatchError if the template is not a T.
func DeepCopyAs[T any, K comparable](ctx context.Context, r *Registrar[K], id K) (T, error) {
	return cloneAs[T](ctx, r, id, ModeDeep)
}

func cloneAs[T any, K comparable](ctx context.Context, r *Registrar[K], id K, mode Mode) (T, error) {
	var zero T
	out, err := r.Clone(ctx, id, mode)
	if err != nil {
		return zero, err
	}
	typed, ok := out.(T)
	if !ok {
		return zero, &prototype.TypeMismatchError{
			Want: reflect.TypeFor[T]().String(),
			Got:  fmt.Sprintf("%T", out),
		}
	}
	return typed, nil
}
