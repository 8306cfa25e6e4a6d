package bind_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autofaker/bind"
	"autofaker/fake"
	"autofaker/synth"
)

type record struct {
	ID    int
	Name  string
	Notes string
}

func binderCtx(factory fake.Factory) *fake.Context {
	if factory == nil {
		factory = synth.New()
	}

	return fake.NewContext(fake.Config{
		Locale:  "en",
		Binder:  bind.New(),
		Factory: factory,
		Seed:    5,
	}, []string{"default"})
}

func membersOf(t *testing.T, v any, names ...string) []fake.Member {
	t.Helper()

	inventory, err := bind.Members(reflect.TypeOf(v))
	require.NoError(t, err)

	out := make([]fake.Member, 0, len(names))
	for _, name := range names {
		m, ok := inventory[name]
		require.True(t, ok, "member %s", name)
		out = append(out, m)
	}

	return out
}

func TestPopulateInstance_ExactlyGivenMembers(t *testing.T) {
	t.Parallel()

	b := bind.New()
	ctx := binderCtx(nil)

	v := record{ID: 7}
	err := b.PopulateInstance(&v, ctx, membersOf(t, v, "Name", "Notes"))
	require.NoError(t, err)

	assert.Equal(t, 7, v.ID, "members outside the list stay untouched")
	assert.NotEmpty(t, v.Name)
	assert.NotEmpty(t, v.Notes)
}

func TestPopulateInstance_TargetValidation(t *testing.T) {
	t.Parallel()

	b := bind.New()
	ctx := binderCtx(nil)

	assert.ErrorIs(t, b.PopulateInstance(record{}, ctx, nil), bind.ErrNotPointer)
	assert.ErrorIs(t, b.PopulateInstance((*record)(nil), ctx, nil), bind.ErrNotPointer)
	assert.ErrorIs(t, b.PopulateInstance(new(int), ctx, nil), bind.ErrNotPointer)
}

func TestPopulateInstance_NoFactory(t *testing.T) {
	t.Parallel()

	b := bind.New()
	ctx := fake.NewContext(fake.Config{}, []string{"default"})

	err := b.PopulateInstance(&record{}, ctx, nil)
	assert.ErrorIs(t, err, bind.ErrNoFactory)
}

// failingFactory fails for string members and returns a fixed value for the
// rest.
type failingFactory struct{}

func (f *failingFactory) Generator(ctx *fake.Context) (fake.Generator, error) {
	if ctx.TargetType.Kind() == reflect.String {
		return nil, fmt.Errorf("no strings for %s", ctx.TargetMember)
	}

	return fake.GeneratorFunc(func(*fake.Context) (any, error) { return 42, nil }), nil
}

func TestPopulateInstance_AggregatesFailures(t *testing.T) {
	t.Parallel()

	b := bind.New()
	ctx := binderCtx(&failingFactory{})

	v := record{}
	err := b.PopulateInstance(&v, ctx, membersOf(t, v, "ID", "Name", "Notes"))
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 2, "one failure per failing member")
	assert.ErrorContains(t, err, "member Name")
	assert.ErrorContains(t, err, "member Notes")

	assert.Equal(t, 42, v.ID, "members populated before a failure stay assigned")
}
