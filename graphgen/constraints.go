package graphgen

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultNodeSpan is how far MaxNodes reaches above MinNodes when unset.
const DefaultNodeSpan = 10

// Constraints bounds the graphs a Generator draws. Nil pointers mean
// "unset" and are resolved per draw:
//
//	MaxNodes          MinNodes + DefaultNodeSpan
//	MinComponents     1, or ceil(n / MaxComponentSize) when that is set
//	MaxComponents     n / MinComponentSize
//	MinComponentSize  1 when zero
//	MaxComponentSize  no cap beyond what n and the count allow
type Constraints struct {
	MinNodes         int  `yaml:"min_nodes" json:"min_nodes"`
	MaxNodes         *int `yaml:"max_nodes,omitempty" json:"max_nodes,omitempty"`
	MinComponents    *int `yaml:"min_components,omitempty" json:"min_components,omitempty"`
	MaxComponents    *int `yaml:"max_components,omitempty" json:"max_components,omitempty"`
	MinComponentSize int  `yaml:"min_component_size,omitempty" json:"min_component_size,omitempty"`
	MaxComponentSize *int `yaml:"max_component_size,omitempty" json:"max_component_size,omitempty"`
}

// Int returns a pointer to v, for the optional Constraints fields.
func Int(v int) *int { return &v }

// Validate checks the constraints that hold independently of any draw.
// Every failure wraps ErrInvalidArgument.
func (c Constraints) Validate() error {
	minSize := c.componentSizeFloor()
	switch {
	case c.MinNodes < 0:
		return fmt.Errorf("%w: min_nodes must be ≥ 0, got %d", ErrInvalidArgument, c.MinNodes)
	case minSize < 1:
		return fmt.Errorf("%w: min_component_size must be ≥ 1, got %d", ErrInvalidArgument, minSize)
	case c.MaxNodes != nil && *c.MaxNodes < c.MinNodes:
		return fmt.Errorf("%w: max_nodes=%d is below min_nodes=%d", ErrInvalidArgument, *c.MaxNodes, c.MinNodes)
	case c.MinComponents != nil && *c.MinComponents < 1:
		return fmt.Errorf("%w: min_components must be ≥ 1, got %d", ErrInvalidArgument, *c.MinComponents)
	case c.MaxComponents != nil && *c.MaxComponents < 1:
		return fmt.Errorf("%w: max_components must be ≥ 1, got %d", ErrInvalidArgument, *c.MaxComponents)
	case c.MinComponents != nil && c.MaxComponents != nil && *c.MaxComponents < *c.MinComponents:
		return fmt.Errorf("%w: max_components=%d is below min_components=%d",
			ErrInvalidArgument, *c.MaxComponents, *c.MinComponents)
	case c.MaxComponentSize != nil && *c.MaxComponentSize < minSize:
		return fmt.Errorf("%w: max_component_size=%d is below min_component_size=%d",
			ErrInvalidArgument, *c.MaxComponentSize, minSize)
	case c.MinComponents != nil && *c.MinComponents > c.MinNodes/minSize:
		return fmt.Errorf("%w: the relationship min_components * min_component_size <= min_nodes must hold, got %d * %d > %d",
			ErrInvalidArgument, *c.MinComponents, minSize, c.MinNodes)
	}

	return nil
}

// componentSizeFloor resolves the zero value of MinComponentSize to 1.
func (c Constraints) componentSizeFloor() int {
	if c.MinComponentSize == 0 {
		return 1
	}

	return c.MinComponentSize
}

// nodeCeiling resolves MaxNodes.
func (c Constraints) nodeCeiling() int {
	if c.MaxNodes == nil {
		if c.MinNodes > math.MaxInt-DefaultNodeSpan {
			return math.MaxInt
		}
		return c.MinNodes + DefaultNodeSpan
	}

	return *c.MaxNodes
}

// componentBounds resolves the component-count range for n nodes.
func (c Constraints) componentBounds(n int) (lo, hi int) {
	switch {
	case c.MinComponents != nil:
		lo = *c.MinComponents
	case c.MaxComponentSize != nil:
		lo = max(n / *c.MaxComponentSize, 1)
		if n%*c.MaxComponentSize != 0 && n > *c.MaxComponentSize {
			lo++
		}
	default:
		lo = 1
	}
	if c.MaxComponents != nil {
		hi = *c.MaxComponents
	} else {
		hi = n / c.componentSizeFloor()
	}

	return lo, hi
}

// String renders the constraints with unset fields shown as "-".
func (c Constraints) String() string {
	opt := func(p *int) string {
		if p == nil {
			return "-"
		}
		return fmt.Sprint(*p)
	}

	return fmt.Sprintf("nodes=[%d,%s] components=[%s,%s] size=[%d,%s]",
		c.MinNodes, opt(c.MaxNodes), opt(c.MinComponents), opt(c.MaxComponents),
		c.componentSizeFloor(), opt(c.MaxComponentSize))
}

// DecodeConstraints reads one YAML document. Unknown keys are rejected.
func DecodeConstraints(r io.Reader) (Constraints, error) {
	var c Constraints
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return Constraints{}, fmt.Errorf("graphgen: decode constraints: %w", err)
	}

	return c, nil
}

// LoadConstraints reads a YAML constraints profile from path.
func LoadConstraints(path string) (Constraints, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Constraints{}, fmt.Errorf("graphgen: load constraints: %w", err)
	}

	return DecodeConstraints(bytes.NewReader(data))
}

// YAML renders c as a profile that LoadConstraints reads back.
func (c Constraints) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
