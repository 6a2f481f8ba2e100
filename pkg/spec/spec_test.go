package spec_test

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cppkg/pkg/spec"
	"cppkg/pkg/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		token        string
		wantName     string
		wantInterval string
		wantErr      error
	}{
		{name: "bare name", token: "foo", wantName: "foo", wantInterval: "latest"},
		{name: "owner/repo", token: "boostorg/asio", wantName: "boostorg/asio", wantInterval: "latest"},
		{name: "interval", token: "foo=>=1.2.0", wantName: "foo", wantInterval: ">=1.2.0"},
		{name: "compound interval", token: "foo=>=1.0.0 and <2.0.0", wantName: "foo", wantInterval: ">=1.0.0 and <2.0.0"},
		{name: "exact version", token: "fmt=10.1.1", wantName: "fmt", wantInterval: "10.1.1"},
		{name: "uppercase", token: "Foo", wantErr: types.ErrParse},
		{name: "uppercase with interval", token: "Foo=1.0.0", wantErr: types.ErrParse},
		{name: "empty token", token: "", wantErr: types.ErrInvalidPackageName},
		{name: "empty interval", token: "foo=", wantErr: types.ErrParse},
		{name: "empty name", token: "=1.0.0", wantErr: types.ErrInvalidPackageName},
		{name: "leading separator", token: "-foo", wantErr: types.ErrInvalidPackageName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := spec.Parse(tt.token)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantInterval, got.Interval)
			assert.Equal(t, types.HeaderOnlyLib, got.Kind)
			assert.Nil(t, got.SubDependencies)
		})
	}
}

func TestToInterval(t *testing.T) {
	got, err := spec.ToInterval("1.4.2")
	require.NoError(t, err)
	assert.Equal(t, ">=1.4.2 and <2.0.0", got)

	got, err = spec.ToInterval("0.9.0")
	require.NoError(t, err)
	assert.Equal(t, ">=0.9.0 and <1.0.0", got)

	_, err = spec.ToInterval("not-a-version")
	require.Error(t, err)
}

func TestToInterval_RoundTripsThroughConstraint(t *testing.T) {
	interval, err := spec.ToInterval("1.4.2")
	require.NoError(t, err)

	c, err := spec.Constraint(interval)
	require.NoError(t, err)

	assert.True(t, c.Check(semver.MustParse("1.4.2")))
	assert.True(t, c.Check(semver.MustParse("1.9.0")))
	assert.False(t, c.Check(semver.MustParse("1.4.1")))
	assert.False(t, c.Check(semver.MustParse("2.0.0")))
}

func TestConstraint_Latest(t *testing.T) {
	c, err := spec.Constraint("latest")
	require.NoError(t, err)
	assert.True(t, c.Check(semver.MustParse("3.1.0")))
	assert.False(t, c.Check(semver.MustParse("3.2.0-beta.1")))

	_, err = spec.Constraint(">=banana")
	require.Error(t, err)
}
