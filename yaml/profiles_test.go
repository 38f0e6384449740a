package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"newsharvest"
	"newsharvest/goquery"
	"newsharvest/yaml"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfileFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadProfiles(t *testing.T) {
	t.Parallel()

	t.Run("loads profiles in file order", func(t *testing.T) {
		t.Parallel()

		path := writeProfileFile(t, `
- source: LiveMint
  selectors:
    - div.mainArea
    - div.contentSec
- source: The Hindu
  selectors:
    - div.articlebodycontent
`)

		profiles, err := yaml.LoadProfiles(path)

		require.NoError(t, err)
		require.Len(t, profiles, 2)
		assert.Equal(t, "LiveMint", profiles[0].Source)
		assert.Equal(t, []string{"div.mainArea", "div.contentSec"}, profiles[0].Selectors)
		assert.Equal(t, "The Hindu", profiles[1].Source)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadProfiles(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Equal(t, newsharvest.ENOTFOUND, newsharvest.ErrorCode(err))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := writeProfileFile(t, "{not yaml")
		_, err := yaml.LoadProfiles(path)
		assert.Equal(t, newsharvest.EINVALID, newsharvest.ErrorCode(err))
	})

	t.Run("duplicate source is a conflict", func(t *testing.T) {
		t.Parallel()

		path := writeProfileFile(t, `
- source: LiveMint
  selectors:
    - div.mainArea
- source: LiveMint
  selectors:
    - div.contentSec
`)
		_, err := yaml.LoadProfiles(path)
		assert.Equal(t, newsharvest.ECONFLICT, newsharvest.ErrorCode(err))
	})

	t.Run("profile without selectors is invalid", func(t *testing.T) {
		t.Parallel()

		path := writeProfileFile(t, `
- source: LiveMint
  selectors: []
`)
		_, err := yaml.LoadProfiles(path)
		assert.Equal(t, newsharvest.EINVALID, newsharvest.ErrorCode(err))
	})
}

func TestRegisterProfiles(t *testing.T) {
	t.Parallel()

	t.Run("overrides builtin profile", func(t *testing.T) {
		t.Parallel()

		path := writeProfileFile(t, `
- source: LiveMint
  selectors:
    - div.custom-body
`)

		registry := goquery.DefaultRegistry()
		require.NoError(t, yaml.RegisterProfiles(registry, path))

		profile := registry.ProfileFor("LiveMint")
		assert.Equal(t, []string{"div.custom-body"}, profile.Selectors)
	})
}
