package config

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// StringSlice accepts either a single string or a list of strings.
type StringSlice []string

func (s *StringSlice) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var as string
		if err := node.Decode(&as); err != nil {
			return err
		}
		*s = append(*s, as)
		return nil

	case yaml.SequenceNode:
		var ss []string
		if err := node.Decode(&ss); err != nil {
			return err
		}
		*s = ss
		return nil
	}

	return errors.Errorf("unexpected yaml node for StringSlice at line %d", node.Line)
}
