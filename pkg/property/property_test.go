package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnigui/omnigui/pkg/errors"
)

func requireProgrammingError(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		_, ok := r.(*errors.ProgrammingError)
		require.True(t, ok, "expected *errors.ProgrammingError, got %T", r)
	}()
	fn()
}

func TestRegisterAndDefaults(t *testing.T) {
	reg := NewRegistry()
	title := Register(reg, "Window", "Title", Metadata[string]{DefaultValue: "untitled"})
	ctx := Register(reg, "Window", "DataContext", Metadata[any]{})

	s := NewStore(reg)
	assert.Equal(t, "untitled", Get(s, title))
	assert.Nil(t, Get(s, ctx))
	assert.False(t, s.IsSet(title))
	assert.Equal(t, "Window.Title", title.String())
	assert.Equal(t, 2, reg.Len())

	d, ok := reg.Lookup("Window", "Title")
	require.True(t, ok)
	assert.Equal(t, "Title", d.Name())
	assert.Equal(t, "string", d.ValueType().String())

	_, ok = reg.Lookup("Window", "Missing")
	assert.False(t, ok)
	assert.Equal(t, []Descriptor{title, ctx}, reg.Descriptors())
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	reg := NewRegistry()
	Register(reg, "Layout", "Style", Metadata[string]{})
	requireProgrammingError(t, func() {
		Register(reg, "Layout", "Style", Metadata[string]{})
	})
	// Same name under a different owner is a different property.
	Register(reg, "Button", "Style", Metadata[string]{})
}

func TestForeignDescriptorPanics(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()
	key := Register(a, "Layout", "Width", Metadata[float64]{})
	s := NewStore(b)

	requireProgrammingError(t, func() { Get(s, key) })
	requireProgrammingError(t, func() { Set(s, key, 1) })
	requireProgrammingError(t, func() { s.ChangedAny(key) })
	requireProgrammingError(t, func() {
		var nilKey *Key[int]
		Get(s, nilKey)
	})
}

func TestSetNotifiesOncePerCallInOrder(t *testing.T) {
	reg := NewRegistry()
	width := Register(reg, "Layout", "Width", Metadata[float64]{DefaultValue: 1})
	s := NewStore(reg)

	var got []string
	Changed(s, width).Listen(func(v float64) {
		got = append(got, "first")
		// Value is stored before listeners run.
		assert.Equal(t, v, Get(s, width))
	})
	Changed(s, width).Listen(func(v float64) { got = append(got, "second") })

	Set(s, width, 42)
	assert.Equal(t, []string{"first", "second"}, got)
	assert.Equal(t, 42.0, Get(s, width))

	got = nil
	Set(s, width, 42)
	assert.Equal(t, []string{"first", "second"}, got, "unchanged values still notify")
}

func TestChangedStreamCancel(t *testing.T) {
	reg := NewRegistry()
	name := Register(reg, "Node", "Name", Metadata[string]{})
	s := NewStore(reg)

	var got []string
	cancel := Changed(s, name).Listen(func(v string) { got = append(got, v) })
	Set(s, name, "a")
	cancel()
	Set(s, name, "b")
	assert.Equal(t, []string{"a"}, got)
}

func TestStoresAreIndependent(t *testing.T) {
	reg := NewRegistry()
	n := Register(reg, "Node", "N", Metadata[int]{DefaultValue: 7})
	a, b := NewStore(reg), NewStore(reg)
	Set(a, n, 1)
	assert.Equal(t, 1, Get(a, n))
	assert.Equal(t, 7, Get(b, n))
}

func TestUntypedAccess(t *testing.T) {
	reg := NewRegistry()
	size := Register(reg, "Node", "Size", Metadata[float64]{DefaultValue: 3})
	ctx := Register(reg, "Node", "Ctx", Metadata[any]{})
	s := NewStore(reg)

	var seen []any
	s.ChangedAny(size).Listen(func(v any) { seen = append(seen, v) })

	s.SetValue(size, 9.0)
	assert.Equal(t, 9.0, Get(s, size))
	assert.Equal(t, 9.0, s.GetValue(size))

	requireProgrammingError(t, func() { s.SetValue(size, "nine") })
	requireProgrammingError(t, func() { s.SetValue(size, nil) })

	s.SetValue(ctx, nil)
	assert.True(t, s.IsSet(ctx))
	s.SetValue(ctx, struct{ Name string }{"x"})

	s.Clear(size)
	assert.False(t, s.IsSet(size))
	assert.Equal(t, 3.0, Get(s, size))
	assert.Equal(t, []any{9.0, 3.0}, seen)
}
