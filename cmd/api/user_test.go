package main

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envWith(vals map[string]string) func(string) string {
	return func(k string) string { return vals[k] }
}

func TestBootstrapPassword(t *testing.T) {
	t.Run("environment wins over stdin", func(t *testing.T) {
		p, err := bootstrapPassword(envWith(map[string]string{bootstrapPasswordEnv: "from-env"}), strings.NewReader("from-stdin\n"))
		require.NoError(t, err)
		assert.Equal(t, "from-env", p)
	})

	t.Run("first stdin line", func(t *testing.T) {
		p, err := bootstrapPassword(envWith(nil), strings.NewReader("s3cret pass\r\nignored\n"))
		require.NoError(t, err)
		assert.Equal(t, "s3cret pass", p)
	})

	t.Run("stdin without newline", func(t *testing.T) {
		p, err := bootstrapPassword(envWith(nil), strings.NewReader("s3cret"))
		require.NoError(t, err)
		assert.Equal(t, "s3cret", p)
	})

	t.Run("nothing given", func(t *testing.T) {
		_, err := bootstrapPassword(envWith(nil), strings.NewReader(""))
		assert.ErrorContains(t, err, bootstrapPasswordEnv)
	})
}

func TestUserCreateFlags(t *testing.T) {
	assert.Nil(t, userCreateCmd.Flags().Lookup("password"), "password is never taken from argv")

	for _, name := range []string{"name", "email"} {
		f := userCreateCmd.Flags().Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, []string{"true"}, f.Annotations[cobra.BashCompOneRequiredFlag], name)
	}
}
