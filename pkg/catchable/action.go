package catchable

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Action tells a catchable sequence what to do with a failing element.
type Action int

const (
	// Propagate hands the element and its error to the next handler, or to the consumer.
	Propagate Action = iota
	// Skip drops the element and continues with the next one.
	Skip
	// Stop ends iteration without reporting the error.
	Stop
)

var actionNames = map[Action]string{
	Propagate: "propagate",
	Skip:      "skip",
	Stop:      "stop",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction parses a case-insensitive action name.
func ParseAction(s string) (Action, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return Propagate, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Action) MarshalText() ([]byte, error) {
	if _, ok := actionNames[a]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAction, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// UnmarshalYAML accepts an action name as a scalar.
func (a *Action) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a name", ErrUnknownAction, value.Line)
	}
	return a.UnmarshalText([]byte(value.Value))
}
