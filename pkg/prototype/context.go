package prototype

import (
	"reflect"

	"github.com/google/uuid"
)

// CloneContext tracks the identities already duplicated during one deep
// clone operation. It maps each source pointer, map or slice to its clone,
// so shared references stay shared inside the copy and cycles terminate.
//
// A CloneContext belongs to a single top-level operation. DeepCopy creates
// a fresh one on every call; hook implementations receive the one in use
// and must pass it on. It is not safe for concurrent use.
type CloneContext struct {
	id   string
	seen map[visitKey]reflect.Value
}

// visitKey identifies a reference-shaped value. Type is part of the key
// because a struct and its first field share an address.
type visitKey struct {
	typ reflect.Type
	ptr uintptr
	len int
}

// NewCloneContext creates an empty context with a unique operation ID.
func NewCloneContext() *CloneContext {
	return &CloneContext{
		id:   uuid.New().String(),
		seen: make(map[visitKey]reflect.Value),
	}
}

// ID returns the operation ID, used to correlate logs and spans.
func (cc *CloneContext) ID() string {
	return cc.id
}

// Len returns the number of identities tracked so far.
func (cc *CloneContext) Len() int {
	return len(cc.seen)
}

// Remember records dst as the clone of src. Hook implementations call it
// after allocating their new instance and before cloning any field that
// may lead back to src.
//
// Values without identity (structs held by value, scalars, nil) are ignored.
func (cc *CloneContext) Remember(src, dst any) {
	key, ok := identity(reflect.ValueOf(src))
	if !ok {
		return
	}
	cc.seen[key] = reflect.ValueOf(dst)
}

// Lookup returns the clone already recorded for src, if any.
func (cc *CloneContext) Lookup(src any) (any, bool) {
	key, ok := identity(reflect.ValueOf(src))
	if !ok {
		return nil, false
	}
	dst, ok := cc.seen[key]
	if !ok || !dst.IsValid() {
		return nil, false
	}
	return dst.Interface(), true
}

// identity returns the tracking key of v. Only non-nil pointers, maps and
// slices with a backing array have one.
func identity(v reflect.Value) (visitKey, bool) {
	if !v.IsValid() {
		return visitKey{}, false
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map:
		if v.IsNil() {
			return visitKey{}, false
		}
		return visitKey{typ: v.Type(), ptr: v.Pointer()}, true
	case reflect.Slice:
		// zero-capacity slices may all point at the same sentinel address
		if v.IsNil() || v.Cap() == 0 {
			return visitKey{}, false
		}
		return visitKey{typ: v.Type(), ptr: v.Pointer(), len: v.Len()}, true
	default:
		return visitKey{}, false
	}
}
