// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	// t.Setenv restores the previous value after the test
	for _, key := range []string{"MATCALC_PRECISION", "MATCALC_MAX_DET_ORDER", "MATCALC_VERBOSE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MATCALC_PRECISION", "3")
	t.Setenv("MATCALC_MAX_DET_ORDER", "9")
	t.Setenv("MATCALC_VERBOSE", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Config{Precision: 3, MaxDetOrder: 9, Verbose: true}, cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name, key, val string
		invalid        bool
	}{
		{"precision not an int", "MATCALC_PRECISION", "six", false},
		{"precision too large", "MATCALC_PRECISION", "18", true},
		{"precision negative", "MATCALC_PRECISION", "-1", true},
		{"negative order guard", "MATCALC_MAX_DET_ORDER", "-2", true},
		{"verbose not a bool", "MATCALC_VERBOSE", "loud", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			_, err := config.Load()
			require.Error(t, err)
			if tc.invalid {
				require.ErrorIs(t, err, config.ErrInvalidConfig)
			} else {
				require.ErrorContains(t, err, "parse env:")
			}
		})
	}
}

// os.Exit cannot be intercepted in-process, so Exitf runs in a child test binary.
func TestExitf_ExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		config.Exitf("fatal: %s", "something broke")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitf_ExitsWithCode1$")
	cmd.Env = append(os.Environ(), "TEST_EXITF_SUBPROCESS=1")

	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, string(out), "fatal: something broke")
}
