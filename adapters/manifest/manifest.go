// Package manifest loads deployment manifests written in HCL.
// A manifest is the file-based way to describe what to estimate:
//
//	deployment {
//	  cloud       = "aws"
//	  environment = "prod"
//	  enable_db   = true
//	}
package manifest

import (
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"cloudspend/core/estimator"
	"cloudspend/core/types"
	"cloudspend/internal/errors"
)

// Manifest is the root of a deployment manifest file
type Manifest struct {
	Deployment Deployment `hcl:"deployment,block"`
}

// Deployment describes one deployment to estimate
type Deployment struct {
	// Cloud is the provider name (aws, gcp)
	Cloud string `hcl:"cloud"`

	// Environment is the tier name (dev, staging, prod)
	Environment string `hcl:"environment"`

	// EnableDB adds a managed database
	EnableDB bool `hcl:"enable_db,optional"`
}

// Load parses a manifest file
func Load(path string) (*Manifest, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeInput, "parsing deployment manifest", diags)
	}

	var m Manifest
	if diags := gohcl.DecodeBody(file.Body, nil, &m); diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeInput, "decoding deployment manifest", diags)
	}
	return &m, nil
}

// Request converts the deployment into an estimation request. Provider
// validity is the estimator's concern; tier strings are normalized here
// and unknown tiers become the sizing policy's degraded default.
func (d Deployment) Request() estimator.Request {
	return estimator.Request{
		Provider: types.Provider(strings.ToLower(strings.TrimSpace(d.Cloud))),
		Tier:     types.Tier(strings.ToLower(strings.TrimSpace(d.Environment))),
		EnableDB: d.EnableDB,
	}
}
