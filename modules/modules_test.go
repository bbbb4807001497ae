package modules

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleMetadataIsCopied(t *testing.T) {
	meta := map[string]string{"layout": "spiral"}
	m := NewModule("a.bmp", "hello", meta)
	meta["layout"] = "rowmajor"

	v, ok := m.Meta("layout")
	require.True(t, ok)
	assert.Equal(t, "spiral", v)

	copied := m.Metadata()
	copied["layout"] = "changed"
	v, _ = m.Meta("layout")
	assert.Equal(t, "spiral", v)

	_, ok = m.Meta("missing")
	assert.False(t, ok)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	seen := []string{}
	record := func(name string) Runner {
		return RunnerFunc(func(ctx context.Context, m *Module) error {
			seen = append(seen, name+":"+m.Text)
			return nil
		})
	}

	require.NoError(t, r.Register("first", record("first")))
	require.NoError(t, r.Register("second", record("second")))
	assert.Error(t, r.Register("first", record("again")))
	assert.Equal(t, []string{"first", "second"}, r.Names())

	require.NoError(t, r.Run(context.Background(), NewModule("x", "hi", nil)))
	assert.Equal(t, []string{"first:hi", "second:hi"}, seen)

	require.NoError(t, r.Unregister("first"))
	assert.Error(t, r.Unregister("first"))
	assert.Equal(t, []string{"second"}, r.Names())
}

func TestRegistryCollectsErrors(t *testing.T) {
	errBoom := errors.New("boom")
	r := NewRegistry()
	calls := 0
	require.NoError(t, r.Register("failing", RunnerFunc(func(context.Context, *Module) error {
		calls++
		return errBoom
	})))
	require.NoError(t, r.Register("working", RunnerFunc(func(context.Context, *Module) error {
		calls++
		return nil
	})))

	err := r.Run(context.Background(), NewModule("x", "", nil))
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 2, calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = r.Run(ctx, NewModule("x", "", nil))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, calls)
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Add(NewModule("b.bmp", "two", nil))
	c.Add(NewModule("a.bmp", "one", nil))

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"a.bmp", "b.bmp"}, c.Names())
	assert.Equal(t, "two", c.Modules()[0].Text)
}
