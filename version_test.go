package tinygroth16

import (
	"testing"

	"github.com/blang/semver/v4"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	assert := require.New(t)

	// the version string is embedded in circuit artifacts; it must parse
	// back to the same value
	parsed, err := semver.Parse(Version.String())
	assert.NoError(err)
	assert.Zero(parsed.Compare(Version))
	assert.Empty(Version.Pre, "tagged releases carry no pre-release suffix")
}
