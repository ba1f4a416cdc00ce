package catchable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Policy is a declarative handler, typically read from a YAML file:
//
//	on_error: skip
//	on_panic: stop
//
// Omitted keys default to propagate.
type Policy struct {
	OnError Action `yaml:"on_error"`
	OnPanic Action `yaml:"on_panic"`
}

// ParsePolicy decodes a policy document. Unknown keys and action names are rejected.
// An empty document yields the zero Policy.
func ParsePolicy(data []byte) (Policy, error) {
	var p Policy
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Policy{}, nil
		}
		return Policy{}, fmt.Errorf("parse policy: %w", err)
	}
	return p, nil
}

// LoadPolicy reads and decodes the policy file at path.
func LoadPolicy(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("read policy %s: %w", path, err)
	}
	p, err := ParsePolicy(data)
	if err != nil {
		return Policy{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Handler returns a handler applying OnPanic to recovered panics and OnError to everything else.
func (p Policy) Handler() Handler {
	return func(err error) Action {
		var pe *PanicError
		if errors.As(err, &pe) {
			return p.OnPanic
		}
		return p.OnError
	}
}
