package manifest

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotAMapping indicates a values file whose top level is not a YAML mapping.
var ErrNotAMapping = errors.New("content is not a mapping")

// ParseSetArgs parses --set arguments into a flat key/value mapping.
//
// Each argument may hold several comma-separated clauses
// (key1=val1,key2=val2); each clause splits on the first "=". Later
// occurrences of a key overwrite earlier ones.
func ParseSetArgs(args []string) (map[string]string, error) {
	if len(args) == 0 {
		return nil, nil
	}

	set := make(map[string]string)
	for _, arg := range args {
		for _, clause := range strings.Split(arg, ",") {
			key, value, ok := strings.Cut(clause, "=")
			if !ok {
				return nil, fmt.Errorf("invalid --set clause %q: expected key=value", clause)
			}
			set[key] = value
		}
	}

	return set, nil
}

// ParseSetFileArgs parses --set-file arguments (key=path) into a flat
// key/value mapping where each value is the referenced file's content.
func ParseSetFileArgs(args []string) (map[string]string, error) {
	if len(args) == 0 {
		return nil, nil
	}

	set := make(map[string]string)
	for _, arg := range args {
		key, path, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set-file clause %q: expected key=path", arg)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read set file: %w", err)
		}
		set[key] = string(content)
	}

	return set, nil
}

// ReadValuesFiles reads and merges values files left to right. Each file must
// decode to a YAML mapping; on key collision the later file's top-level value
// wins. There is no deep merge: the controller receives the merged content
// verbatim, so only whole top-level keys are replaced.
func ReadValuesFiles(paths []string) (map[string]any, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	values := make(map[string]any)
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read values file: %w", err)
		}

		var doc map[string]any
		if err := yaml.Unmarshal(content, &doc); err != nil {
			return nil, fmt.Errorf("parse values file %s: %w", path, err)
		}
		if doc == nil {
			return nil, fmt.Errorf("values file %s: %w", path, ErrNotAMapping)
		}

		for k, v := range doc {
			values[k] = v
		}
	}

	return values, nil
}
