package harness

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/feather-lang/sortbench"
)

// ErrInvalidPlan is wrapped by every plan validation error.
var ErrInvalidPlan = errors.New("invalid plan")

// planFile is the YAML form of a Plan. Omitted keys keep their defaults.
type planFile struct {
	Sizes      []int    `yaml:"sizes"`
	Orderings  []string `yaml:"orderings"`
	Algorithms []string `yaml:"algorithms"`
}

// LoadPlan reads a plan from a YAML file.
func LoadPlan(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("reading plan: %w", err)
	}
	plan, err := ParsePlan(data)
	if err != nil {
		return Plan{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return plan, nil
}

// ParsePlan decodes a YAML plan on top of DefaultPlan and validates it.
func ParsePlan(data []byte) (Plan, error) {
	var pf planFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return Plan{}, err
	}

	plan := DefaultPlan()
	if pf.Sizes != nil {
		plan.Sizes = pf.Sizes
	}
	if pf.Orderings != nil {
		plan.Orderings = make([]sortbench.Ordering, 0, len(pf.Orderings))
		for _, name := range pf.Orderings {
			o, err := sortbench.ParseOrdering(name)
			if err != nil {
				return Plan{}, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
			}
			plan.Orderings = append(plan.Orderings, o)
		}
	}
	if pf.Algorithms != nil {
		plan.Algorithms = pf.Algorithms
	}

	if err := plan.Validate(); err != nil {
		return Plan{}, err
	}
	return plan, nil
}

// Validate reports whether the plan can be run.
func (p Plan) Validate() error {
	if len(p.Sizes) == 0 {
		return fmt.Errorf("%w: no sizes", ErrInvalidPlan)
	}
	for _, n := range p.Sizes {
		if n < 0 {
			return fmt.Errorf("%w: negative size %d", ErrInvalidPlan, n)
		}
	}
	if len(p.Orderings) == 0 {
		return fmt.Errorf("%w: no orderings", ErrInvalidPlan)
	}
	for _, o := range p.Orderings {
		if _, err := sortbench.ParseOrdering(o.String()); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPlan, err)
		}
	}
	if len(p.Algorithms) == 0 {
		return fmt.Errorf("%w: no algorithms", ErrInvalidPlan)
	}
	for _, name := range p.Algorithms {
		if _, err := sortbench.NewAlgorithm(name, nil); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPlan, err)
		}
	}
	return nil
}
