package snapshot

import (
	"math"
	"testing"

	"param-host/core/plug"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTree builds root{gain: 0.5, label: "main", nested{steps: 4, enabled: true}}.
func newTree() *plug.CompoundPlug {
	root := plug.NewCompound("parameters")
	root.SetChild("gain", plug.NewValue(0.5))
	root.SetChild("label", plug.NewValue("main"))
	nested := plug.NewCompound("nested")
	root.SetChild("nested", nested)
	nested.SetChild("steps", plug.NewValue(4))
	nested.SetChild("enabled", plug.NewValue(true))
	return root
}

func TestCapture(t *testing.T) {
	rows, err := Capture("s1", newTree())
	require.NoError(t, err)

	got := map[string]PlugValue{}
	for _, r := range rows {
		assert.Equal(t, "s1", r.Session)
		got[r.Path] = r
	}
	require.Len(t, got, 4)
	assert.Equal(t, "0.5", got["gain"].Value)
	assert.Equal(t, "FloatPlug", got["gain"].Kind)
	assert.Equal(t, `"main"`, got["label"].Value)
	assert.Equal(t, "4", got["nested.steps"].Value)
	assert.Equal(t, "true", got["nested.enabled"].Value)
}

func TestCapture_EncodeError(t *testing.T) {
	root := plug.NewCompound("parameters")
	root.SetChild("gain", plug.NewValue(math.Inf(1)))

	_, err := Capture("s1", root)
	assert.ErrorContains(t, err, "encode gain")
}

func TestApply(t *testing.T) {
	source := newTree()
	source.Descendant("gain").(*plug.ValuePlug[float64]).Set(0.9)
	source.Descendant("nested.steps").(*plug.ValuePlug[int]).Set(12)
	rows, err := Capture("s1", source)
	require.NoError(t, err)

	rows = append(rows,
		PlugValue{Path: "removed", Value: "1"},
		PlugValue{Path: "nested", Value: "{}"},
		PlugValue{Path: "label", Value: "{"},
	)

	target := newTree()
	res := Apply(rows, target)

	assert.Equal(t, 4, res.Applied)
	assert.Equal(t, []string{"removed", "nested"}, res.Missing)
	assert.Contains(t, res.Failed, "label")
	assert.Equal(t, 0.9, target.Descendant("gain").(*plug.ValuePlug[float64]).Get())
	assert.Equal(t, 12, target.Descendant("nested.steps").(*plug.ValuePlug[int]).Get())
}

func TestApply_TypeMismatch(t *testing.T) {
	root := newTree()
	res := Apply([]PlugValue{{Path: "nested.steps", Value: `"many"`}}, root)

	assert.Zero(t, res.Applied)
	assert.Contains(t, res.Failed["nested.steps"], "not convertible")
	assert.Equal(t, 4, root.Descendant("nested.steps").(*plug.ValuePlug[int]).Get())
}
