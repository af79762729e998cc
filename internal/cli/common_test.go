package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	require.Equal(t, Version, info.Version)
	require.NotEmpty(t, info.GoVersion)
	require.NotEmpty(t, info.Platform)
	require.NotEmpty(t, info.Arch)
}

func TestCheckRequiredVersion(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		expectErr  bool
	}{
		{
			name:       "Exact version satisfied",
			constraint: "= " + Version,
			expectErr:  false,
		},
		{
			name:       "Range satisfied",
			constraint: ">= 1.0.0, < 2.0.0",
			expectErr:  false,
		},
		{
			name:       "Range not satisfied",
			constraint: ">= 99.0.0",
			expectErr:  true,
		},
		{
			name:       "Malformed constraint",
			constraint: "not-a-constraint",
			expectErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRequiredVersion(tt.constraint)
			if tt.expectErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
