package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildChart(t *testing.T, opts Options) *HelmChart {
	t.Helper()
	chart, err := Build(opts)
	require.NoError(t, err)
	return chart
}

func TestValidate(t *testing.T) {
	t.Run("valid chart", func(t *testing.T) {
		chart := buildChart(t, Options{Chart: "nginx", Name: "my-nginx", TargetNamespace: "web"})
		assert.NoError(t, Validate(chart))
	})

	t.Run("invalid name", func(t *testing.T) {
		chart := buildChart(t, Options{Chart: "nginx", Name: "My_Nginx"})
		assert.Error(t, Validate(chart))
	})

	t.Run("invalid controller namespace", func(t *testing.T) {
		chart := buildChart(t, Options{Chart: "nginx", Name: "my-nginx", ControllerNamespace: "Kube.System"})
		assert.Error(t, Validate(chart))
	})

	t.Run("invalid target namespace", func(t *testing.T) {
		chart := buildChart(t, Options{Chart: "nginx", Name: "my-nginx", TargetNamespace: "-bad-"})
		assert.Error(t, Validate(chart))
	})

	t.Run("empty target namespace is fine", func(t *testing.T) {
		chart := buildChart(t, Options{Chart: "nginx", Name: "my-nginx"})
		assert.NoError(t, Validate(chart))
	})
}

func TestLint(t *testing.T) {
	t.Run("clean chart has no warnings", func(t *testing.T) {
		chart := buildChart(t, Options{
			Chart:   "nginx",
			Name:    "my-nginx",
			Repo:    "https://example/charts",
			Version: "1.2.3",
		})
		assert.Empty(t, Lint(chart))
	})

	t.Run("non-semver version warns", func(t *testing.T) {
		chart := buildChart(t, Options{Chart: "nginx", Name: "my-nginx", Version: "latest-ish"})
		warnings := Lint(chart)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "not semver")
	})

	t.Run("non-http repo warns", func(t *testing.T) {
		chart := buildChart(t, Options{Chart: "nginx", Name: "my-nginx", Repo: "ftp://example/charts"})
		warnings := Lint(chart)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "http(s)")
	})

	t.Run("unset optionals do not warn", func(t *testing.T) {
		chart := buildChart(t, Options{Chart: "nginx", Name: "my-nginx"})
		assert.Empty(t, Lint(chart))
	})
}
