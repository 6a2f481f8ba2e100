package cli_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cppkg/pkg/cli"
	"cppkg/pkg/resolver"
)

type mockApp struct {
	installFunc func(ctx context.Context, opts resolver.Options) error
	initName    string
}

func (m *mockApp) Install(ctx context.Context, opts resolver.Options) error {
	if m.installFunc != nil {
		return m.installFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Init(_ context.Context, name string) error {
	m.initName = name
	return nil
}

func TestCommands_Install(t *testing.T) {
	t.Run("wires flags and packages", func(t *testing.T) {
		var captured resolver.Options
		mock := &mockApp{installFunc: func(_ context.Context, opts resolver.Options) error {
			captured = opts
			return nil
		}}

		c := cli.New(mock)
		c.SetArgs([]string{"install", "-v", "--strict", "fmt", "boostorg/asio=>=1.28.0"})
		require.NoError(t, c.Execute(context.Background()))

		assert.True(t, captured.Verbose)
		assert.False(t, captured.Quiet)
		assert.True(t, captured.Strict)
		assert.Equal(t, []string{"fmt", "boostorg/asio=>=1.28.0"}, captured.Packages)
	})

	t.Run("quiet wins over verbose", func(t *testing.T) {
		var captured resolver.Options
		mock := &mockApp{installFunc: func(_ context.Context, opts resolver.Options) error {
			captured = opts
			return nil
		}}

		c := cli.New(mock)
		c.SetArgs([]string{"install", "--verbose", "-q"})
		require.NoError(t, c.Execute(context.Background()))

		assert.True(t, captured.Quiet)
		assert.False(t, captured.Verbose)
		assert.Empty(t, captured.Packages)
	})

	t.Run("returns install errors", func(t *testing.T) {
		mock := &mockApp{installFunc: func(context.Context, resolver.Options) error {
			return errors.New("simulated error")
		}}

		c := cli.New(mock)
		c.SetArgs([]string{"install"})
		c.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := c.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Init(t *testing.T) {
	mock := &mockApp{}
	c := cli.New(mock)
	c.SetArgs([]string{"init"})
	require.NoError(t, c.Execute(context.Background()))
	assert.Equal(t, "my-cpp-project", mock.initName)

	c = cli.New(mock)
	c.SetArgs([]string{"init", "demo"})
	require.NoError(t, c.Execute(context.Background()))
	assert.Equal(t, "demo", mock.initName)
}
