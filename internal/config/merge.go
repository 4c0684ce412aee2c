package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keyOutput  = "output"
	keyView    = "view"
	keyData    = "data"
	keyLogging = "logging"
)

// ShallowMergeYAML loads a YAML file and merges its top-level sections onto
// target. Within a present section only the keys written in the overlay change;
// sections absent from the overlay are left unchanged. Unknown top-level keys
// are ignored.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	// Empty or comment-only file: nothing to merge.
	for key, node := range overlay {
		if err = decodeSection(target, key, &node); err != nil {
			return fmt.Errorf("applying overlay section %q from %s: %w", key, overlayPath, err)
		}
	}

	return nil
}

// decodeSection decodes node onto the matching section of target. The section
// is decoded into a copy so a failed decode leaves target untouched.
func decodeSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyOutput:
		v := target.Output
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Output = v
	case keyView:
		v := target.View
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.View = v
	case keyData:
		v := target.Data
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Data = v
	case keyLogging:
		v := target.Logging
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
	}
	return nil
}
