package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRender_EndToEnd(t *testing.T) {
	chart, err := Build(Options{
		Chart:   "nginx",
		Name:    "my-nginx",
		Repo:    "https://example/charts",
		Version: "1.2.3",
	})
	require.NoError(t, err)

	data, err := Render(chart)
	require.NoError(t, err)

	want := `---
apiVersion: helm.cattle.io/v1
kind: HelmChart
metadata:
  name: my-nginx
  namespace: kube-system
spec:
  chart: nginx
  repo: https://example/charts
  version: 1.2.3
`
	assert.Equal(t, want, string(data))
}

func TestRender_OmitsUnsetOptionals(t *testing.T) {
	chart, err := Build(Options{Chart: "nginx", Name: "my-nginx"})
	require.NoError(t, err)

	data, err := Render(chart)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))

	spec, ok := doc["spec"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"chart": "nginx"}, spec)

	metadata, ok := doc["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"name": "my-nginx", "namespace": "kube-system"}, metadata)

	assert.Equal(t, "helm.cattle.io/v1", doc["apiVersion"])
	assert.Equal(t, "HelmChart", doc["kind"])
}

func TestRender_SetValues(t *testing.T) {
	chart, err := Build(Options{
		Chart: "nginx",
		Name:  "my-nginx",
		Set:   []string{"a=1,b=2", "c=3"},
	})
	require.NoError(t, err)

	data, err := Render(chart)
	require.NoError(t, err)

	var doc struct {
		Spec struct {
			Set map[string]string `yaml:"set"`
		} `yaml:"spec"`
	}
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, map[string]string{"a": "1", "b": "2", "c": "3"}, doc.Spec.Set)
}

func TestRender_ValuesContentLiteralBlock(t *testing.T) {
	dir := t.TempDir()
	valuesPath := filepath.Join(dir, "values.yaml")
	content := `replicas: 3
image:
  repository: nginx
  tag: "1.25"
banner: |
  line one
  line two
`
	require.NoError(t, os.WriteFile(valuesPath, []byte(content), 0644))

	chart, err := Build(Options{
		Chart:       "nginx",
		Name:        "my-nginx",
		ValuesFiles: []string{valuesPath},
	})
	require.NoError(t, err)

	data, err := Render(chart)
	require.NoError(t, err)

	// Block style, not a quoted single-line scalar.
	assert.Contains(t, string(data), "valuesContent: |")
	assert.NotContains(t, string(data), `\n`)
}

func TestRender_ValuesContentRoundTrip(t *testing.T) {
	dir := t.TempDir()

	writeFile := func(name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	base := writeFile("base.yaml", "replicas: 2\nmotd: |\n  hello\n  world\n")
	prod := writeFile("prod.yaml", "replicas: 5\nextra:\n  nested:\n    deep: true\n")

	original, err := ReadValuesFiles([]string{base, prod})
	require.NoError(t, err)

	chart, err := Build(Options{
		Chart:       "nginx",
		Name:        "my-nginx",
		ValuesFiles: []string{base, prod},
	})
	require.NoError(t, err)

	data, err := Render(chart)
	require.NoError(t, err)

	var doc struct {
		Spec struct {
			ValuesContent string `yaml:"valuesContent"`
		} `yaml:"spec"`
	}
	require.NoError(t, yaml.Unmarshal(data, &doc))

	var roundTripped map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(doc.Spec.ValuesContent), &roundTripped))
	assert.Equal(t, original, roundTripped)

	// The embedded multi-line string survives with real newlines.
	assert.Equal(t, "hello\nworld\n", roundTripped["motd"])
}

func TestRender_SingleDocument(t *testing.T) {
	chart, err := Build(Options{Chart: "nginx", Name: "my-nginx"})
	require.NoError(t, err)

	data, err := Render(chart)
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasPrefix(out, "---\n"))
	assert.Equal(t, 1, strings.Count(out, "---\n"))
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.False(t, strings.HasSuffix(out, "\n\n"))
}
