// Package manifest builds HelmChart custom-resource manifests for the k3s
// Helm controller.
//
// It collects chart coordinates and value overrides, assembles them into a
// HelmChart record, and renders the record as a single YAML document:
//
//	---
//	apiVersion: helm.cattle.io/v1
//	kind: HelmChart
//	metadata:
//	  name: my-nginx
//	  namespace: kube-system
//	spec:
//	  chart: nginx
//	  repo: https://example/charts
//	  version: 1.2.3
//
// # Values
//
// Command-line overrides (--set) become the flat spec.set mapping. Values
// files (--values/-f) are merged at the top level, re-serialized, and
// embedded verbatim as spec.valuesContent using literal block style so the
// controller receives the original multi-line YAML with newlines intact.
//
// See https://docs.k3s.io/helm#helmchart-field-definitions for the field
// definitions of the target resource.
package manifest
