package prototype

import "reflect"

// ShallowCloner is implemented by types that control their own shallow
// duplication. ShallowClone must return a new instance of the receiver's
// type (or a type assignable to it).
type ShallowCloner interface {
	ShallowClone() (any, error)
}

// DeepCloner is implemented by types that control their own deep
// duplication, for example to keep a cache shared or to recompute a field.
//
// Implementations allocate the new instance, call cc.Remember(receiver, clone)
// and then clone fields with DeepCopyWith(cc, field). Passing cc on is what
// lets a back-reference to the receiver resolve to the new instance.
type DeepCloner interface {
	DeepClone(cc *CloneContext) (any, error)
}

// Prototype is the method form of the clone capability. Types adopt it
// with two one-line methods delegating to Copy and DeepCopy:
//
//	func (s *Shape) Copy() (*Shape, error)     { return prototype.Copy(s) }
//	func (s *Shape) DeepCopy() (*Shape, error) { return prototype.DeepCopy(s) }
type Prototype[T any] interface {
	Copy() (T, error)
	DeepCopy() (T, error)
}

// Copy returns a shallow duplicate of v: a new top-level instance whose
// nested pointers, maps and slices are shared with v.
//
// For a pointer, the pointed-to value is copied into a new allocation.
// For a map or slice, a new container holds the same elements.
// Types implementing ShallowCloner decide for themselves.
func Copy[T any](v T) (T, error) {
	dst, err := shallowValue(reflect.ValueOf(&v).Elem())
	if err != nil {
		var zero T
		return zero, err
	}
	return as[T](dst), nil
}

// DeepCopy returns a deep duplicate of v. Every pointer, map and slice
// reachable from v is duplicated once, so pointers, maps and slices reached
// through the same identity stay shared or cyclic in the copy. A pointer
// into a slice element or struct field is not such an identity: it gets
// its own target, no longer aliasing the copied container.
//
// Each call uses a fresh CloneContext.
func DeepCopy[T any](v T) (T, error) {
	return DeepCopyWith(NewCloneContext(), v)
}

// DeepCopyWith deep-copies v within an existing clone operation. It is
// meant for DeepCloner implementations.
func DeepCopyWith[T any](cc *CloneContext, v T) (T, error) {
	if cc == nil {
		cc = NewCloneContext()
	}
	dst, err := cc.clone(reflect.ValueOf(&v).Elem())
	if err != nil {
		var zero T
		return zero, err
	}
	return as[T](dst), nil
}

// MustCopy is like Copy but panics on error.
func MustCopy[T any](v T) T {
	out, err := Copy(v)
	if err != nil {
		panic(err)
	}
	return out
}

// MustDeepCopy is like DeepCopy but panics on error.
func MustDeepCopy[T any](v T) T {
	out, err := DeepCopy(v)
	if err != nil {
		panic(err)
	}
	return out
}

// as stores dst in a T. A nil interface result yields the zero T.
func as[T any](dst reflect.Value) T {
	var out T
	if dst.IsValid() {
		reflect.ValueOf(&out).Elem().Set(dst)
	}
	return out
}
