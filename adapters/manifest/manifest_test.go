package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudspend/core/types"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deploy.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, `
deployment {
  cloud       = "gcp"
  environment = "prod"
  enable_db   = true
}
`)

	m, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gcp", m.Deployment.Cloud)
	assert.Equal(t, "prod", m.Deployment.Environment)
	assert.True(t, m.Deployment.EnableDB)
}

func TestLoadManifestEnableDBDefaultsFalse(t *testing.T) {
	path := writeManifest(t, `
deployment {
  cloud       = "aws"
  environment = "dev"
}
`)

	m, err := Load(path)
	require.NoError(t, err)
	assert.False(t, m.Deployment.EnableDB)
}

func TestLoadManifestInvalidSyntax(t *testing.T) {
	path := writeManifest(t, `deployment {`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadManifestMissingRequiredAttribute(t *testing.T) {
	path := writeManifest(t, `
deployment {
  cloud = "aws"
}
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestRequestNormalizesInput(t *testing.T) {
	d := Deployment{Cloud: " AWS ", Environment: "Prod", EnableDB: true}

	req := d.Request()

	assert.Equal(t, types.ProviderAWS, req.Provider)
	assert.Equal(t, types.TierProd, req.Tier)
	assert.True(t, req.EnableDB)
}
