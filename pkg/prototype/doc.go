/*
Package prototype clones values through a uniform copy interface instead of
type-specific construction.

# Overview

Any Go value can be duplicated without the caller knowing its concrete
type. Two semantics are offered:

  - Copy: a new top-level instance; nested pointers, maps and slices are
    shared with the source.
  - DeepCopy: a new top-level instance whose reachable structure is
    duplicated. Shared and circular references are reproduced in the copy
    rather than followed forever.

Sources are never modified.

# Basic Usage

	type Doc struct {
	    Title string
	    Tags  []string
	}

	src := &Doc{Title: "a", Tags: []string{"x"}}

	shallow, _ := prototype.Copy(src)
	shallow.Tags[0] = "y" // visible through src.Tags

	deep, _ := prototype.DeepCopy(src)
	deep.Tags[0] = "z" // src.Tags is untouched

# Custom Clone Hooks

Types that need their own sharing rules implement ShallowCloner and/or
DeepCloner. The generic walker calls the hook wherever it meets the type,
including deep inside other values:

	func (n *Node) DeepClone(cc *prototype.CloneContext) (any, error) {
	    clone := &Node{Name: n.Name, cache: n.cache} // cache stays shared
	    cc.Remember(n, clone)
	    var err error
	    clone.Parent, err = prototype.DeepCopyWith(cc, n.Parent)
	    return clone, err
	}

The CloneContext maps every source identity already visited to its
clone. It is created fresh for each top-level DeepCopy and must be passed
through every nested call.

# Errors

Hooks report values that must be neither shared nor duplicated with
NewUnclonableError. Failures inside a value come back as *CloneError
carrying the field path; errors.Is(err, ErrUnclonable) still matches.

# Registry

Package registry builds on this package to store named templates and hand
out clones of them on request.
*/
package prototype
