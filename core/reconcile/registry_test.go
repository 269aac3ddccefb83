package reconcile_test

import (
	"reflect"
	"testing"

	"param-host/core/parameter"
	"param-host/core/plug"
	"param-host/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_NewRegistryKnowsCompounds(t *testing.T) {
	r := reconcile.NewRegistry()

	assert.Equal(t, []string{"*parameter.CompoundParameter"}, r.Types())
	_, ok := r.Lookup(reflect.TypeFor[*parameter.CompoundParameter]())
	assert.True(t, ok)
	_, ok = r.Lookup(reflect.TypeFor[*parameter.IntParameter]())
	assert.False(t, ok)
}

func TestRegistry_RegisterNilPanics(t *testing.T) {
	r := reconcile.NewRegistry()
	assert.Panics(t, func() {
		r.Register(reflect.TypeFor[*parameter.IntParameter](), nil)
	})
}

func TestRegistry_RegisterInReplaces(t *testing.T) {
	r := reconcile.NewRegistry()
	calls := 0
	reconcile.RegisterIn(r, func(f *reconcile.Factory, p *parameter.BoolParameter, plugParent *plug.CompoundPlug) reconcile.Adapter {
		calls = 1
		return nil
	})
	reconcile.RegisterIn(r, func(f *reconcile.Factory, p *parameter.BoolParameter, plugParent *plug.CompoundPlug) reconcile.Adapter {
		calls = 2
		return nil
	})

	f := reconcile.NewFactory(reconcile.Config{}, nil, r)
	assert.Nil(t, f.Create(parameter.NewBool("b", "", true), plug.NewCompound("owner")))
	assert.Equal(t, 2, calls)
	assert.Len(t, r.Types(), 2)
}

func TestDefaultRegistry(t *testing.T) {
	assert.Same(t, reconcile.DefaultRegistry(), reconcile.DefaultRegistry())
}

func TestNewFactory(t *testing.T) {
	f := reconcile.NewFactory(reconcile.Config{}, nil, nil)

	assert.Same(t, reconcile.DefaultRegistry(), f.Registry())
	require.NotNil(t, f.Logger())
	assert.Equal(t, reconcile.DefaultPlugName, f.Config().DefaultPlugName)
	assert.Equal(t, reconcile.DefaultExcludeKey, f.Config().ExcludeKey)
}

func TestFactory_Create(t *testing.T) {
	fx := newFixture(t, reconcile.Config{})
	owner := plug.NewCompound("owner")

	t.Run("unregistered type", func(t *testing.T) {
		assert.Nil(t, fx.factory.Create(parameter.NewOpaque("c", "", "Color3fParameter", nil), owner))
		assert.Zero(t, owner.Len())
	})

	t.Run("compound", func(t *testing.T) {
		tree := compound(t, "group", parameter.NewInt("a", "", 1))
		a := fx.factory.Create(tree, owner)
		require.IsType(t, &reconcile.CompoundAdapter{}, a)
		assert.Equal(t, []string{"group"}, childNames(owner))
	})
}
