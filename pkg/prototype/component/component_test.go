package component

import (
	"testing"

	"github.com/randalmurphal/prototype/pkg/prototype"
	"github.com/randalmurphal/prototype/pkg/prototype/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name string
}

func newComponent() *Component {
	return New(23, []any{&item{Name: "a"}, []int{1, 2}, 3})
}

func TestNew(t *testing.T) {
	c := newComponent()
	require.NotNil(t, c.Circular)
	assert.Same(t, c, c.Circular.Parent)
}

func TestComponent_ShallowClone(t *testing.T) {
	c := newComponent()

	clone, err := c.Copy()
	require.NoError(t, err)

	assert.NotSame(t, c, clone)
	assert.Equal(t, 23, clone.Int)

	// Containers are new
	clone.Objects = append(clone.Objects, "extra")
	assert.Len(t, c.Objects, 3)
	assert.NotSame(t, c.Circular, clone.Circular)

	// Elements are shared
	assert.Same(t, c.Objects[0], clone.Objects[0])
	clone.Objects[0].(*item).Name = "b"
	assert.Equal(t, "b", c.Objects[0].(*item).Name)

	// The back-reference still points at the original
	assert.Same(t, c, clone.Circular.Parent)
}

func TestComponent_DeepClone(t *testing.T) {
	c := newComponent()

	clone, err := c.DeepCopy()
	require.NoError(t, err)

	assert.NotSame(t, c, clone)
	assert.Equal(t, 23, clone.Int)
	assert.NotSame(t, c.Objects[0], clone.Objects[0])
	assert.Equal(t, c.Objects[0], clone.Objects[0])

	clone.Objects[1].([]int)[0] = 9
	assert.Equal(t, []int{1, 2}, c.Objects[1])

	// The back-reference resolves to the clone
	assert.NotSame(t, c.Circular, clone.Circular)
	assert.Same(t, clone, clone.Circular.Parent)
}

func TestComponent_HookUsedWhenNested(t *testing.T) {
	type holder struct {
		Parts []*Component
	}
	c := newComponent()
	h := &holder{Parts: []*Component{c, c}}

	clone, err := prototype.DeepCopy(h)
	require.NoError(t, err)

	require.Len(t, clone.Parts, 2)
	assert.Same(t, clone.Parts[0], clone.Parts[1], "shared component stays shared")
	assert.Same(t, clone.Parts[0], clone.Parts[0].Circular.Parent)
	assert.NotSame(t, c, clone.Parts[0])
}

func TestComponent_ThroughRegistry(t *testing.T) {
	r := registry.New[string]()
	r.Register("component", newComponent())

	shallow, err := registry.CopyAs[*Component](t.Context(), r, "component")
	require.NoError(t, err)
	deep, err := registry.DeepCopyAs[*Component](t.Context(), r, "component")
	require.NoError(t, err)

	assert.NotSame(t, shallow, shallow.Circular.Parent)
	assert.Same(t, deep, deep.Circular.Parent)
}

func TestComponent_String(t *testing.T) {
	c := New(1, []any{1})
	assert.Contains(t, c.String(), "Component{Int: 1, Objects: [1]")
}

func TestSample(t *testing.T) {
	s := NewSample()

	shallow, err := s.Copy()
	require.NoError(t, err)
	deep, err := s.DeepCopy()
	require.NoError(t, err)

	shallow.D["2"].([]int)[0] = 100
	assert.Equal(t, 100, s.D["2"].([]int)[0], "shallow clone shares nested lists")

	s.D["2"].([]int)[0] = 1
	deep.D["2"].([]int)[0] = 100
	assert.Equal(t, []int{1, 2, 3, 4}, s.D["2"], "deep clone is independent")

	assert.Equal(t, "L = [1 2 3 4], D = map[1:1 2:[1 2 3 4] 3:1 4:1]", NewSample().String())
}
