package manifest

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Masterminds/semver/v3"
	"k8s.io/apimachinery/pkg/util/validation"
)

// Validate performs the syntactic checks the API server would reject the
// resource for: metadata.name must be a DNS-1123 subdomain and both
// namespaces must be DNS-1123 labels. It never talks to a cluster.
func Validate(chart *HelmChart) error {
	if errs := validation.IsDNS1123Subdomain(chart.Metadata.Name); len(errs) > 0 {
		return fmt.Errorf("invalid name %q: %s", chart.Metadata.Name, strings.Join(errs, "; "))
	}

	if errs := validation.IsDNS1123Label(chart.Metadata.Namespace); len(errs) > 0 {
		return fmt.Errorf("invalid controller namespace %q: %s", chart.Metadata.Namespace, strings.Join(errs, "; "))
	}

	if ns := chart.Spec.TargetNamespace; ns != "" {
		if errs := validation.IsDNS1123Label(ns); len(errs) > 0 {
			return fmt.Errorf("invalid target namespace %q: %s", ns, strings.Join(errs, "; "))
		}
	}

	return nil
}

// Lint returns advisory warnings for inputs the controller will accept but
// probably cannot act on. Warnings never fail the run.
func Lint(chart *HelmChart) []string {
	var warnings []string

	if v := chart.Spec.Version; v != "" {
		if _, err := semver.NewVersion(v); err != nil {
			warnings = append(warnings, fmt.Sprintf("version %q is not semver; the controller may not resolve it", v))
		}
	}

	if repo := chart.Spec.Repo; repo != "" {
		u, err := url.Parse(repo)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			warnings = append(warnings, fmt.Sprintf("repo %q does not look like an http(s) URL", repo))
		}
	}

	return warnings
}
