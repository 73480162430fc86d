package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialHintBounded(t *testing.T) {
	cases := []struct {
		key  string
		want string
	}{
		{"", ""},
		{"abc", "a..."},
		{"sk_live_very_long_secret", "sk_liv..."},
	}
	for _, c := range cases {
		cfg := Config{PrintifyAPIKey: c.key}
		assert.Equal(t, c.want, cfg.CredentialHint())
		assert.NotContains(t, cfg.CredentialHint(), "secret")
	}
}

func TestCredentialConfigured(t *testing.T) {
	assert.False(t, Config{}.CredentialConfigured())
	assert.True(t, Config{PrintifyAPIKey: "x"}.CredentialConfigured())
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("MERCHSTORE_TEST_STR", "set")
	assert.Equal(t, "set", env("MERCHSTORE_TEST_STR", "def"))
	assert.Equal(t, "def", env("MERCHSTORE_TEST_MISSING", "def"))

	t.Setenv("MERCHSTORE_TEST_DUR", "30")
	assert.EqualValues(t, 30, envDur("MERCHSTORE_TEST_DUR", 15))
	assert.EqualValues(t, 15, envDur("MERCHSTORE_TEST_DUR_MISSING", 15))

	t.Setenv("MERCHSTORE_TEST_DUR_BAD", "nope")
	assert.EqualValues(t, 15, envDur("MERCHSTORE_TEST_DUR_BAD", 15))
}
