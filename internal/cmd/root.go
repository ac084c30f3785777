// Package cmd provides the CLI commands for chartgen.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kubeworks/chartgen/internal/manifest"
	"github.com/kubeworks/chartgen/internal/ui"
)

const version = "0.3.0"

// flagAliases maps alternate flag spellings to their canonical names.
// --tiller-namespace and --set-string are helm-era spellings; --set_file is
// the historical spelling of --set-file.
var flagAliases = map[string]string{
	"tiller-namespace": "helmcontroller-namespace",
	"target-namespace": "namespace",
	"set-string":       "set",
	"set_file":         "set-file",
}

// generateOptions holds the root command's flag values.
type generateOptions struct {
	name                string
	repo                string
	version             string
	controllerNamespace string
	targetNamespace     string
	set                 []string
	setFiles            []string
	values              []string
}

// newRootCmd builds the root command, which generates a HelmChart manifest
// from its arguments.
func newRootCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "chartgen CHART",
		Short: "Generate k3s HelmChart resource manifests",
		Long: `Generate a HelmChart custom-resource manifest for the k3s Helm controller.

CHART is a chart reference or a URL. The manifest is printed to stdout as a
single YAML document; diagnostics go to stderr.

Examples:
  chartgen nginx --name my-nginx --repo https://example/charts --version 1.2.3
  chartgen nginx --name my-nginx --set replicas=3,service.type=ClusterIP
  chartgen nginx --name my-nginx -f base.yaml -f prod.yaml
  chartgen nginx --name my-nginx --set-file tls.cert=server.crt`,
		Args: cobra.ExactArgs(1),
		// Runtime failures get an error description, not a usage dump;
		// usage still prints for flag and argument mistakes.
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.SetNormalizeFunc(normalizeFlags)

	flags.StringVar(&opts.name, "name", "", "Name of the chart")
	flags.StringVar(&opts.repo, "repo", "", "Chart repository URL where to locate the requested chart")
	flags.StringVar(&opts.version, "version", "", "Exact chart version to install; latest if not specified")
	flags.StringVar(&opts.controllerNamespace, "helmcontroller-namespace", manifest.DefaultControllerNamespace, "Namespace of the Helm controller")
	flags.StringVar(&opts.targetNamespace, "namespace", "", "Namespace to install the release into; defaults to the Helm controller namespace")
	flags.StringArrayVar(&opts.set, "set", nil, "Set values on the command line (repeatable, or comma-separated: key1=val1,key2=val2)")
	flags.StringArrayVar(&opts.setFiles, "set-file", nil, "Set a value from a file on the command line (repeatable: key=path)")
	flags.StringArrayVarP(&opts.values, "values", "f", nil, "Specify values in a YAML file (repeatable)")

	if err := cmd.MarkFlagRequired("name"); err != nil {
		panic(err)
	}

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newUpdateCmd())

	return cmd
}

// Execute runs the root command and exits non-zero on any error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// normalizeFlags rewrites alias spellings to their canonical flag names.
func normalizeFlags(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if canonical, ok := flagAliases[name]; ok {
		name = canonical
	}
	return pflag.NormalizedName(name)
}

func runGenerate(cmd *cobra.Command, chartRef string, opts *generateOptions) error {
	chart, err := manifest.Build(manifest.Options{
		Chart:               chartRef,
		Name:                opts.name,
		ControllerNamespace: opts.controllerNamespace,
		TargetNamespace:     opts.targetNamespace,
		Repo:                opts.repo,
		Version:             opts.version,
		Set:                 opts.set,
		SetFiles:            opts.setFiles,
		ValuesFiles:         opts.values,
	})
	if err != nil {
		return fmt.Errorf("build manifest: %w", err)
	}

	if err := manifest.Validate(chart); err != nil {
		return fmt.Errorf("validate manifest: %w", err)
	}

	for _, warning := range manifest.Lint(chart) {
		ui.Warning("%s", warning)
	}

	data, err := manifest.Render(chart)
	if err != nil {
		return fmt.Errorf("render manifest: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
