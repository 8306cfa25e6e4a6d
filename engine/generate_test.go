package engine_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autofaker/engine"
	"autofaker/fake"
)

func defaultCtx(ruleSets ...string) *fake.Context {
	if len(ruleSets) == 0 {
		ruleSets = []string{engine.DefaultRuleSet}
	}

	return fake.NewContext(fake.Config{}, ruleSets)
}

func TestGenerate_AppliesRules(t *testing.T) {
	t.Parallel()

	f := engine.New[gadget]()
	f.RuleFor("ID", constRule(42))
	f.RuleFor("Name", constRule("widget"))

	v, err := f.Generate(defaultCtx())
	require.NoError(t, err)

	assert.Equal(t, 42, v.ID)
	assert.Equal(t, "widget", v.Name)
	assert.Nil(t, v.Tags)
}

func TestGenerate_RulesRunInRegistrationOrder(t *testing.T) {
	t.Parallel()

	var order []string
	log := func(member string, v any) engine.RuleFunc {
		return func(*fake.Context) (any, error) {
			order = append(order, member)
			return v, nil
		}
	}

	f := engine.New[gadget]()
	f.RuleFor("Name", log("Name", "x"))
	f.RuleFor("ID", log("ID", 1))

	_, err := f.Generate(defaultCtx())
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "ID"}, order)
}

func TestGenerate_InactiveRuleSetIgnored(t *testing.T) {
	t.Parallel()

	f := engine.New[gadget]()
	f.RuleFor("ID", constRule(1))
	f.RuleSet("extra").RuleFor("Name", constRule("extra-name"))

	v, err := f.Generate(defaultCtx())
	require.NoError(t, err)

	assert.Equal(t, 1, v.ID)
	assert.Empty(t, v.Name)

	v, err = f.Generate(defaultCtx(engine.DefaultRuleSet, "extra"))
	require.NoError(t, err)

	assert.Equal(t, 1, v.ID)
	assert.Equal(t, "extra-name", v.Name)
}

func TestGenerate_UnknownMember(t *testing.T) {
	t.Parallel()

	f := engine.New[gadget]()
	f.RuleFor("Nope", constRule(1))

	_, err := f.Generate(defaultCtx())
	assert.ErrorIs(t, err, engine.ErrUnknownMember)
}

func TestGenerate_RuleErrorPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	f := engine.New[gadget]()
	f.RuleFor("ID", func(*fake.Context) (any, error) { return nil, boom })

	_, err := f.Generate(defaultCtx())
	assert.ErrorIs(t, err, boom)
}

func TestGenerate_CreateWith(t *testing.T) {
	t.Parallel()

	f := engine.New[gadget]()
	f.CreateWith(func(*fake.Context) (gadget, error) {
		return gadget{ID: 7, Name: "prebuilt"}, nil
	})
	f.RuleFor("Name", constRule("ruled"))

	v, err := f.Generate(defaultCtx())
	require.NoError(t, err)

	assert.Equal(t, 7, v.ID)
	assert.Equal(t, "ruled", v.Name, "rules run after construction")
}

func TestGenerate_SetsTargetBeforeEachRule(t *testing.T) {
	t.Parallel()

	f := engine.New[gadget]()
	f.RuleFor("Name", func(ctx *fake.Context) (any, error) {
		assert.Equal(t, "Name", ctx.TargetMember)
		assert.Equal(t, "string", ctx.TargetType.String())
		return "x", nil
	})

	_, err := f.Generate(defaultCtx())
	require.NoError(t, err)
}

func TestFinishAction_RunsOncePerInstance(t *testing.T) {
	t.Parallel()

	var calls int

	f := engine.New[gadget]()
	f.FinishWith(func(_ *fake.Context, v *gadget) error {
		calls++
		v.Name = "finished"
		return nil
	})

	out, err := f.GenerateN(defaultCtx(), 3)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, 3, calls)
	for _, v := range out {
		assert.Equal(t, "finished", v.Name)
	}
}

func TestGenerateN_Counts(t *testing.T) {
	t.Parallel()

	f := engine.New[gadget]()

	out, err := f.GenerateN(defaultCtx(), 0)
	require.NoError(t, err)
	assert.Len(t, out, 0)

	_, err = f.GenerateN(defaultCtx(), -1)
	assert.ErrorIs(t, err, engine.ErrNegativeCount)
}

func TestPopulate_ExistingInstance(t *testing.T) {
	t.Parallel()

	f := engine.New[gadget]()
	f.RuleFor("Name", constRule("ruled"))

	v := gadget{ID: 7}
	require.NoError(t, f.Populate(defaultCtx(), &v))

	assert.Equal(t, 7, v.ID, "members without rules stay untouched")
	assert.Equal(t, "ruled", v.Name)
}

func TestPopulate_NilArguments(t *testing.T) {
	t.Parallel()

	f := engine.New[gadget]()

	assert.ErrorIs(t, f.Populate(nil, &gadget{}), engine.ErrNilContext)
	assert.Error(t, f.Populate(defaultCtx(), nil))

	_, err := f.Generate(nil)
	assert.ErrorIs(t, err, engine.ErrNilContext)
}
