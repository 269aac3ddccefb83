package checks

import (
	"testing"

	"param-host/core/parameter"
	"param-host/core/plug"
	"param-host/core/reconcile"
	"param-host/feature/parameters/adapters"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupShape(t *testing.T) (*parameter.CompoundParameter, *reconcile.CompoundAdapter) {
	registry := reconcile.NewRegistry()
	adapters.RegisterIn(registry)
	factory := reconcile.NewFactory(reconcile.Config{}, zap.NewNop(), registry)

	hidden := parameter.NewBool("hidden", "", false)
	hidden.UserData()[reconcile.DefaultExcludeKey] = true

	filter, err := parameter.NewCompound("filter", "",
		parameter.NewFloat("cutoff", "", 0.5),
	)
	require.NoError(t, err)

	root, err := parameter.NewCompound("", "",
		parameter.NewFloat("gain", "", 1),
		parameter.NewInt("steps", "", 4),
		hidden,
		parameter.NewOpaque("blob", "", "curve", nil),
		filter,
	)
	require.NoError(t, err)

	return root, reconcile.NewCompound(factory, root, plug.NewCompound("host"))
}

func TestCheckShape_InSync(t *testing.T) {
	_, adapter := setupShape(t)

	report := CheckShape(adapter.View(), reconcile.DefaultExcludeKey)

	assert.Equal(t, "ok", report.Status)
	assert.Empty(t, report.Missing)
	assert.Empty(t, report.Stale)
	assert.Equal(t, []string{"hidden"}, report.Excluded)
	assert.Equal(t, []string{"blob"}, report.Unadapted)
}

func TestCheckShape_Drift(t *testing.T) {
	root, adapter := setupShape(t)
	node := adapter.CompoundPlug()

	require.NoError(t, node.RemoveChild(node.Child("gain")))
	node.SetChild("orphan", plug.NewValue(1))
	filter := node.Child("filter").(*plug.CompoundPlug)
	require.NoError(t, filter.RemoveChild(filter.Child("cutoff")))
	require.NoError(t, root.Add(parameter.NewInt("late", "", 0)))

	report := CheckShape(adapter.View(), reconcile.DefaultExcludeKey)

	assert.Equal(t, "drift", report.Status)
	assert.Equal(t, []string{"gain", "filter.cutoff"}, report.Missing)
	assert.Equal(t, []string{"orphan"}, report.Stale)
	assert.Equal(t, []string{"blob", "late"}, report.Unadapted)
}

func TestCheckShape_DoesNotCreate(t *testing.T) {
	root, adapter := setupShape(t)
	require.NoError(t, root.Add(parameter.NewInt("late", "", 0)))

	CheckShape(adapter.View(), reconcile.DefaultExcludeKey)

	assert.Nil(t, adapter.CompoundPlug().Child("late"))
	assert.Nil(t, adapter.View().ChildAdapter(root.Child("late")))
}
