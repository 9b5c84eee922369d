// Package component holds example types that show how a type takes
// control of its own duplication.
package component

import (
	"fmt"

	"github.com/randalmurphal/prototype/pkg/prototype"
)

// Component holds a scalar, a list of shared objects and a child that
// points back at the component.
type Component struct {
	Int      int
	Objects  []any
	Circular *Circular
}

// Circular is a child object holding a back-reference to its parent.
type Circular struct {
	Parent *Component
}

// New creates a component and links its Circular child back to it.
func New(n int, objects []any) *Component {
	c := &Component{Int: n, Objects: objects}
	c.Circular = &Circular{Parent: c}
	return c
}

// ShallowClone copies scalar fields and gives the clone its own Objects
// slice and Circular instance. The elements of Objects and the parent
// pointer inside Circular are still shared with c.
func (c *Component) ShallowClone() (any, error) {
	clone := &Component{Int: c.Int}

	var err error
	if clone.Objects, err = prototype.Copy(c.Objects); err != nil {
		return nil, err
	}
	if clone.Circular, err = prototype.Copy(c.Circular); err != nil {
		return nil, err
	}
	return clone, nil
}

// DeepClone duplicates Objects and Circular through cc. c is recorded
// first, so Circular.Parent resolves to the clone instead of recursing.
func (c *Component) DeepClone(cc *prototype.CloneContext) (any, error) {
	clone := &Component{Int: c.Int}
	cc.Remember(c, clone)

	var err error
	if clone.Objects, err = prototype.DeepCopyWith(cc, c.Objects); err != nil {
		return nil, err
	}
	if clone.Circular, err = prototype.DeepCopyWith(cc, c.Circular); err != nil {
		return nil, err
	}
	return clone, nil
}

// Copy returns a shallow clone using ShallowClone.
func (c *Component) Copy() (*Component, error) {
	return prototype.Copy(c)
}

// DeepCopy returns a deep clone using DeepClone.
func (c *Component) DeepCopy() (*Component, error) {
	return prototype.DeepCopy(c)
}

func (c *Component) String() string {
	return fmt.Sprintf("Component{Int: %d, Objects: %v, Circular: %p}", c.Int, c.Objects, c.Circular)
}

var (
	_ prototype.Prototype[*Component] = (*Component)(nil)
	_ prototype.ShallowCloner         = (*Component)(nil)
	_ prototype.DeepCloner            = (*Component)(nil)
)
