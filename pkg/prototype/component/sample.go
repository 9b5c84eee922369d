package component

import (
	"fmt"

	"github.com/randalmurphal/prototype/pkg/prototype"
)

// Sample relies entirely on structural duplication; it has no hooks.
type Sample struct {
	L []int
	D map[string]any
}

// NewSample returns {L: [1 2 3 4], D: {"1": 1, "2": [1 2 3 4], "3": 1, "4": 1}}.
func NewSample() *Sample {
	return &Sample{
		L: []int{1, 2, 3, 4},
		D: map[string]any{
			"1": 1,
			"2": []int{1, 2, 3, 4},
			"3": 1,
			"4": 1,
		},
	}
}

// Copy returns a shallow clone; L and D are shared with s.
func (s *Sample) Copy() (*Sample, error) {
	return prototype.Copy(s)
}

// DeepCopy returns a clone sharing nothing with s.
func (s *Sample) DeepCopy() (*Sample, error) {
	return prototype.DeepCopy(s)
}

// String renders s as "L = [...], D = map[...]".
func (s *Sample) String() string {
	return fmt.Sprintf("L = %v, D = %v", s.L, s.D)
}
