package manifest

import "gopkg.in/yaml.v3"

// API version and kind constants for the generated resource.
const (
	// APIVersion is the API group and version of the HelmChart CRD.
	APIVersion = "helm.cattle.io/v1"

	// Kind identifies the HelmChart resource type.
	Kind = "HelmChart"

	// DefaultControllerNamespace is where the k3s Helm controller runs
	// unless told otherwise.
	DefaultControllerNamespace = "kube-system"
)

// HelmChart is a HelmChart resource ready for rendering. Field order is the
// authored order of the output document, so the struct is the schema.
type HelmChart struct {
	// APIVersion is always APIVersion.
	APIVersion string `yaml:"apiVersion"`

	// Kind is always Kind.
	Kind string `yaml:"kind"`

	// Metadata names the resource and places it in the controller namespace.
	Metadata Metadata `yaml:"metadata"`

	// Spec describes the chart to install.
	Spec Spec `yaml:"spec"`
}

// Metadata holds the resource name and namespace.
type Metadata struct {
	// Name is the name of the HelmChart resource.
	Name string `yaml:"name"`

	// Namespace is the namespace of the Helm controller, not of the release.
	Namespace string `yaml:"namespace"`
}

// Spec is the HelmChart specification. Every field except Chart is omitted
// from the output when unset.
type Spec struct {
	// Chart is a chart reference or URL.
	Chart string `yaml:"chart"`

	// TargetNamespace is the namespace the release installs into.
	TargetNamespace string `yaml:"targetNamespace,omitempty"`

	// Repo is the chart repository URL.
	Repo string `yaml:"repo,omitempty"`

	// Version pins the chart version; latest when empty.
	Version string `yaml:"version,omitempty"`

	// Set holds flat key/value overrides from --set and --set-file.
	Set map[string]string `yaml:"set,omitempty"`

	// ValuesContent is the merged values-file content, embedded verbatim.
	ValuesContent LiteralString `yaml:"valuesContent,omitempty"`
}

// LiteralString is a string that renders as a YAML literal block scalar (|).
// The encoder would otherwise quote multi-line strings into a single escaped
// scalar, which the Helm controller cannot re-parse as structured values.
type LiteralString string

// MarshalYAML emits the string as a literal-style scalar node.
func (s LiteralString) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Style: yaml.LiteralStyle,
		Tag:   "!!str",
		Value: string(s),
	}, nil
}
