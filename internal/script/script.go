// Package script replays YAML action scripts against a bridged store pair.
//
// A script is a YAML sequence of steps:
//
//   - set: preview        # dispatch LAYOUT_FOCUS_SET
//   - next: sidebar       # dispatch LAYOUT_NEXT_FOCUS_SET
//   - activate            # dispatch LAYOUT_NEXT_FOCUS_ACTIVATE
//   - legacy-set: sites   # call Set on the legacy store directly
package script

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/comalice/layoutfocus/internal/core"
	"github.com/comalice/layoutfocus/internal/legacy"
	"github.com/comalice/layoutfocus/internal/primitives"
)

// Op names a step kind.
type Op string

const (
	OpSet       Op = "set"
	OpNext      Op = "next"
	OpActivate  Op = "activate"
	OpLegacySet Op = "legacy-set"
)

// Step is one scripted operation.
type Step struct {
	Op   Op
	Area primitives.Area
}

func (s Step) String() string {
	if s.Op == OpActivate {
		return string(s.Op)
	}
	return fmt.Sprintf("%s: %s", s.Op, s.Area)
}

// UnmarshalYAML accepts either the bare scalar "activate" or a single-key
// mapping from op to area.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if Op(node.Value) != OpActivate {
			return fmt.Errorf("line %d: step %q needs an area", node.Line, node.Value)
		}
		*s = Step{Op: OpActivate}
		return nil

	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: step must have exactly one key", node.Line)
		}
		op := Op(node.Content[0].Value)
		var area string
		if err := node.Content[1].Decode(&area); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		switch op {
		case OpActivate:
			*s = Step{Op: OpActivate}
		case OpSet, OpNext, OpLegacySet:
			if area == "" {
				return fmt.Errorf("line %d: step %q needs an area", node.Line, op)
			}
			*s = Step{Op: op, Area: primitives.Area(area)}
		default:
			return fmt.Errorf("line %d: unknown step %q", node.Line, op)
		}
		return nil
	}
	return fmt.Errorf("line %d: step must be a scalar or mapping", node.Line)
}

// MarshalYAML writes the step in the form UnmarshalYAML reads.
func (s Step) MarshalYAML() (any, error) {
	if s.Op == OpActivate {
		return string(OpActivate), nil
	}
	return map[string]string{string(s.Op): string(s.Area)}, nil
}

// Script is an ordered list of steps.
type Script []Step

// Parse decodes a script. Areas are not validated here; the stores do that
// according to their mode.
func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return s, nil
}

// Load reads and parses the script at path.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

// Apply performs the step. Dispatch steps go to store, legacy-set to l.
func (s Step) Apply(store *core.Store, l *legacy.FocusStore) error {
	switch s.Op {
	case OpSet:
		return store.Dispatch(primitives.SetLayoutFocus(s.Area))
	case OpNext:
		return store.Dispatch(primitives.SetNextLayoutFocus(s.Area))
	case OpActivate:
		return store.Dispatch(primitives.ActivateNextLayoutFocus())
	case OpLegacySet:
		return l.Set(s.Area)
	}
	return fmt.Errorf("unknown step %q", s.Op)
}

// Replay applies every step in order and returns the canonical focus state at
// the end. It stops at the first failing step.
func (s Script) Replay(ctx context.Context, store *core.Store, l *legacy.FocusStore) (primitives.FocusState, error) {
	for i, step := range s {
		if err := ctx.Err(); err != nil {
			return focusOf(store), err
		}
		if err := step.Apply(store, l); err != nil {
			return focusOf(store), fmt.Errorf("step %d (%s): %w", i+1, step, err)
		}
	}
	return focusOf(store), nil
}

func focusOf(store *core.Store) primitives.FocusState {
	return core.LayoutFocus(store.State())
}
