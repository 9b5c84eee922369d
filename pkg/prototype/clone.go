package prototype

import (
	"fmt"
	"reflect"
	"time"
	"unsafe"
)

var (
	shallowClonerType = reflect.TypeFor[ShallowCloner]()
	deepClonerType    = reflect.TypeFor[DeepCloner]()
)

// immutable lists pointer types whose targets are never modified after
// construction. They are shared instead of duplicated.
var immutable = map[reflect.Type]bool{
	reflect.TypeFor[*time.Location](): true,
}

// shallowValue returns a new top-level instance of src whose nested
// references are shared with src.
func shallowValue(src reflect.Value) (reflect.Value, error) {
	if !src.IsValid() {
		return src, nil
	}
	if h, ok := hook(src, shallowClonerType); ok {
		out, err := h.(ShallowCloner).ShallowClone()
		return fromHook(src.Type(), out, err)
	}

	t := src.Type()
	switch src.Kind() {
	case reflect.Pointer:
		if src.IsNil() {
			return reflect.Zero(t), nil
		}
		dst := reflect.New(t.Elem())
		elem := src.Elem()
		if h, ok := hook(elem, shallowClonerType); ok {
			out, err := h.(ShallowCloner).ShallowClone()
			v, err := fromHook(elem.Type(), out, err)
			if err != nil {
				return reflect.Value{}, err
			}
			elem = v
		}
		dst.Elem().Set(elem)
		return dst, nil

	case reflect.Map:
		if src.IsNil() {
			return reflect.Zero(t), nil
		}
		dst := reflect.MakeMapWithSize(t, src.Len())
		iter := src.MapRange()
		for iter.Next() {
			dst.SetMapIndex(iter.Key(), iter.Value())
		}
		return dst, nil

	case reflect.Slice:
		if src.IsNil() {
			return reflect.Zero(t), nil
		}
		dst := reflect.MakeSlice(t, src.Len(), src.Len())
		reflect.Copy(dst, src)
		return dst, nil

	case reflect.Interface:
		if src.IsNil() {
			return reflect.Zero(t), nil
		}
		inner, err := shallowValue(src.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		dst := reflect.New(t).Elem()
		dst.Set(inner)
		return dst, nil

	default:
		dst := reflect.New(t).Elem()
		dst.Set(src)
		return dst, nil
	}
}

// clone returns a deep duplicate of src. Every value handed to clone must
// be usable with Interface and Set; struct fields are exposed before
// recursing so unexported state is duplicated too.
func (cc *CloneContext) clone(src reflect.Value) (reflect.Value, error) {
	if !src.IsValid() {
		return src, nil
	}

	if immutable[src.Type()] {
		return src, nil
	}

	key, tracked := identity(src)
	if tracked {
		if dst, ok := cc.seen[key]; ok {
			return resolved(src.Type(), dst)
		}
	}

	if h, ok := hook(src, deepClonerType); ok {
		out, err := h.(DeepCloner).DeepClone(cc)
		dst, err := fromHook(src.Type(), out, err)
		if err != nil {
			return reflect.Value{}, err
		}
		if tracked {
			cc.seen[key] = dst
		}
		return dst, nil
	}

	t := src.Type()
	switch src.Kind() {
	case reflect.Pointer:
		if src.IsNil() {
			return reflect.Zero(t), nil
		}
		dst := reflect.New(t.Elem())
		cc.seen[key] = dst
		elem, err := cc.clone(src.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		dst.Elem().Set(elem)
		return dst, nil

	case reflect.Struct:
		// Fields of a copied struct are addressable, which exposed needs.
		tmp := reflect.New(t).Elem()
		tmp.Set(src)
		dst := reflect.New(t).Elem()
		for i := range t.NumField() {
			f, err := cc.clone(exposed(tmp.Field(i)))
			if err != nil {
				return reflect.Value{}, atPath("."+t.Field(i).Name, err)
			}
			exposed(dst.Field(i)).Set(f)
		}
		return dst, nil

	case reflect.Slice:
		if src.IsNil() {
			return reflect.Zero(t), nil
		}
		dst := reflect.MakeSlice(t, src.Len(), src.Len())
		if tracked {
			cc.seen[key] = dst
		}
		for i := range src.Len() {
			e, err := cc.clone(src.Index(i))
			if err != nil {
				return reflect.Value{}, atPath(fmt.Sprintf("[%d]", i), err)
			}
			dst.Index(i).Set(e)
		}
		return dst, nil

	case reflect.Array:
		dst := reflect.New(t).Elem()
		for i := range src.Len() {
			e, err := cc.clone(src.Index(i))
			if err != nil {
				return reflect.Value{}, atPath(fmt.Sprintf("[%d]", i), err)
			}
			dst.Index(i).Set(e)
		}
		return dst, nil

	case reflect.Map:
		if src.IsNil() {
			return reflect.Zero(t), nil
		}
		dst := reflect.MakeMapWithSize(t, src.Len())
		cc.seen[key] = dst
		iter := src.MapRange()
		for iter.Next() {
			k, err := cc.clone(iter.Key())
			if err != nil {
				return reflect.Value{}, atPath(fmt.Sprintf("[%v]", iter.Key()), err)
			}
			v, err := cc.clone(iter.Value())
			if err != nil {
				return reflect.Value{}, atPath(fmt.Sprintf("[%v]", iter.Key()), err)
			}
			dst.SetMapIndex(k, v)
		}
		return dst, nil

	case reflect.Interface:
		if src.IsNil() {
			return reflect.Zero(t), nil
		}
		inner, err := cc.clone(src.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		dst := reflect.New(t).Elem()
		dst.Set(inner)
		return dst, nil

	default:
		// Scalars are immutable; channels, funcs and unsafe pointers are
		// shared because they have no duplication semantics.
		return src, nil
	}
}

// hook returns src as an implementation of iface when its type carries
// a clone hook. Interfaces are unwrapped by the caller and nil pointers
// never dispatch. A pointer whose element type has the hook is left to
// the pointer case so the hook result lands in a fresh pointer.
func hook(src reflect.Value, iface reflect.Type) (any, bool) {
	switch src.Kind() {
	case reflect.Interface:
		return nil, false
	case reflect.Pointer:
		if src.IsNil() || src.Type().Elem().Implements(iface) {
			return nil, false
		}
	case reflect.Map, reflect.Slice:
		if src.IsNil() {
			return nil, false
		}
	}
	if !src.Type().Implements(iface) || !src.CanInterface() {
		return nil, false
	}
	return src.Interface(), true
}

// fromHook converts the result of a clone hook to a value of type t.
func fromHook(t reflect.Type, out any, err error) (reflect.Value, error) {
	if err != nil {
		return reflect.Value{}, err
	}
	rv := reflect.ValueOf(out)
	if !rv.IsValid() {
		return reflect.Zero(t), nil
	}
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, &TypeMismatchError{Want: t.String(), Got: rv.Type().String()}
	}
	dst := reflect.New(t).Elem()
	dst.Set(rv)
	return dst, nil
}

// resolved converts a tracked clone back to the type expected at the
// current position.
func resolved(t reflect.Type, dst reflect.Value) (reflect.Value, error) {
	if !dst.IsValid() {
		return reflect.Zero(t), nil
	}
	if !dst.Type().AssignableTo(t) {
		return reflect.Value{}, &TypeMismatchError{Want: t.String(), Got: dst.Type().String()}
	}
	return dst, nil
}

// exposed returns a view of an addressable field that can be read and
// written even when the field is unexported.
func exposed(f reflect.Value) reflect.Value {
	if f.CanInterface() && f.CanSet() {
		return f
	}
	return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
}
