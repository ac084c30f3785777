package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Options holds the fully-parsed inputs for one manifest.
type Options struct {
	// Chart is the chart reference or URL (required).
	Chart string

	// Name is the HelmChart resource name (required).
	Name string

	// ControllerNamespace is the Helm controller namespace; defaults to
	// DefaultControllerNamespace when empty.
	ControllerNamespace string

	// TargetNamespace is the release namespace; omitted when empty.
	TargetNamespace string

	// Repo is the chart repository URL; omitted when empty.
	Repo string

	// Version is the chart version; omitted when empty.
	Version string

	// Set holds raw --set arguments (key=value, comma-separable).
	Set []string

	// SetFiles holds raw --set-file arguments (key=path).
	SetFiles []string

	// ValuesFiles holds paths to values files, merged left to right.
	ValuesFiles []string
}

// Build assembles a HelmChart from options. Optional spec fields are left at
// their zero value so rendering omits them entirely rather than emitting
// null or empty entries.
func Build(opts Options) (*HelmChart, error) {
	if opts.Chart == "" {
		return nil, fmt.Errorf("chart reference is required")
	}
	if opts.Name == "" {
		return nil, fmt.Errorf("chart name is required")
	}

	namespace := opts.ControllerNamespace
	if namespace == "" {
		namespace = DefaultControllerNamespace
	}

	spec := Spec{
		Chart:           opts.Chart,
		TargetNamespace: opts.TargetNamespace,
		Repo:            opts.Repo,
		Version:         opts.Version,
	}

	set, err := ParseSetArgs(opts.Set)
	if err != nil {
		return nil, fmt.Errorf("parse set values: %w", err)
	}

	// File-backed values apply after --set, so they win on collision.
	fileSet, err := ParseSetFileArgs(opts.SetFiles)
	if err != nil {
		return nil, fmt.Errorf("parse set files: %w", err)
	}
	if len(fileSet) > 0 {
		if set == nil {
			set = make(map[string]string, len(fileSet))
		}
		for k, v := range fileSet {
			set[k] = v
		}
	}
	spec.Set = set

	if len(opts.ValuesFiles) > 0 {
		values, err := ReadValuesFiles(opts.ValuesFiles)
		if err != nil {
			return nil, fmt.Errorf("read values: %w", err)
		}

		content, err := yaml.Marshal(values)
		if err != nil {
			return nil, fmt.Errorf("marshal values: %w", err)
		}
		spec.ValuesContent = LiteralString(content)
	}

	return &HelmChart{
		APIVersion: APIVersion,
		Kind:       Kind,
		Metadata: Metadata{
			Name:      opts.Name,
			Namespace: namespace,
		},
		Spec: spec,
	}, nil
}
