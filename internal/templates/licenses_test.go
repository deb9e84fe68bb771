package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLicenseName(t *testing.T) {
	name := DefaultLicenseName()
	assert.Equal(t, "AGPL 3.0", name)

	license, err := GetLicense(name)
	require.NoError(t, err)
	assert.True(t, license.Default)

	// Empty license parameter resolves to the registry default.
	params := Params{AppName: "cookie_lover", RepoName: "cookie_repo"}.WithDefaults()
	assert.Equal(t, name, params.OpenSourceLicense)
}
