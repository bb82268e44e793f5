package scenario

import (
	"errors"
	"fmt"
)

// Op names a list operation.
type Op string

const (
	PushFront   Op = "push_front"
	PopFront    Op = "pop_front"
	InsertAfter Op = "insert_after"
	EraseAfter  Op = "erase_after"
	Clear       Op = "clear"
	Assign      Op = "assign"
)

// Valid reports whether op is a known operation.
func (op Op) Valid() bool {
	switch op {
	case PushFront, PopFront, InsertAfter, EraseAfter, Clear, Assign:
		return true
	}
	return false
}

var ErrInvalidScenario = errors.New("invalid scenario")

// Step is one operation of a scenario.
type Step struct {
	Op     Op    `json:"op" yaml:"op"`
	After  int   `json:"after,omitempty" yaml:"after,omitempty"`
	Value  int   `json:"value,omitempty" yaml:"value,omitempty"`
	Values []int `json:"values,omitempty" yaml:"values,omitempty"`
}

func (s Step) String() string {
	switch s.Op {
	case PushFront:
		return fmt.Sprintf("%s(%d)", s.Op, s.Value)
	case InsertAfter:
		return fmt.Sprintf("%s(%d, %d)", s.Op, s.After, s.Value)
	case EraseAfter:
		return fmt.Sprintf("%s(%d)", s.Op, s.After)
	case Assign:
		return fmt.Sprintf("%s(%v)", s.Op, s.Values)
	}
	return string(s.Op)
}

// Config is a complete scenario: the initial contents and the steps applied
// to them in order.
type Config struct {
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	ID      string `json:"id" yaml:"id"`
	Initial []int  `json:"initial,omitempty" yaml:"initial,omitempty"`
	Steps   []Step `json:"steps" yaml:"steps"`
}

// Validate checks the static shape of the scenario. Preconditions that depend
// on the list's contents are checked by the Runner.
func (c *Config) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: scenario ID is required", ErrInvalidScenario)
	}
	for i, s := range c.Steps {
		if !s.Op.Valid() {
			return fmt.Errorf("%w: step %d: unknown op %q", ErrInvalidScenario, i, s.Op)
		}
		if s.After < 0 {
			return fmt.Errorf("%w: step %d: negative position %d", ErrInvalidScenario, i, s.After)
		}
		if len(s.Values) > 0 && s.Op != Assign {
			return fmt.Errorf("%w: step %d: values only apply to %s", ErrInvalidScenario, i, Assign)
		}
	}
	return nil
}
