package bind_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autofaker/bind"
	"autofaker/store"
)

type inventoryFixture struct {
	Exported   int
	unexported string //nolint:unused
	Skipped    string `fake:"-"`
	Tagged     string `json:"tagged" fake:"keep"`
}

func TestMembers(t *testing.T) {
	t.Parallel()

	t.Run("exported settable fields only", func(t *testing.T) {
		t.Parallel()

		members, err := bind.Members(reflect.TypeOf(inventoryFixture{}))
		require.NoError(t, err)

		assert.Contains(t, members, "Exported")
		assert.Contains(t, members, "Tagged")
		assert.NotContains(t, members, "unexported")
		assert.NotContains(t, members, "Skipped")
	})

	t.Run("member descriptors are complete", func(t *testing.T) {
		t.Parallel()

		members, err := bind.Members(reflect.TypeOf(inventoryFixture{}))
		require.NoError(t, err)

		m := members["Tagged"]
		assert.Equal(t, "Tagged", m.Name)
		assert.Equal(t, reflect.TypeOf(""), m.Type)
		assert.Equal(t, []int{3}, m.Index)
		assert.Equal(t, "tagged", m.Tag.Get("json"))
	})

	t.Run("pointer types are unwrapped", func(t *testing.T) {
		t.Parallel()

		direct, err := bind.Members(reflect.TypeOf(store.Product{}))
		require.NoError(t, err)

		ptr, err := bind.Members(reflect.TypeOf(&store.Product{}))
		require.NoError(t, err)

		assert.Equal(t, direct, ptr)
	})

	t.Run("non-struct types have no members", func(t *testing.T) {
		t.Parallel()

		members, err := bind.Members(reflect.TypeOf(0))
		require.NoError(t, err)
		assert.Empty(t, members)

		members, err = bind.Members(nil)
		require.NoError(t, err)
		assert.Empty(t, members)
	})

	t.Run("skip tag on fixture", func(t *testing.T) {
		t.Parallel()

		members, err := bind.Members(reflect.TypeOf(store.Customer{}))
		require.NoError(t, err)
		assert.NotContains(t, members, "PasswordHash")
	})
}
