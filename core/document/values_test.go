package document_test

import (
	"testing"

	"param-host/core/document"
	"param-host/core/parameter"
	"param-host/core/utils"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildRig(t *testing.T) *parameter.CompoundParameter {
	t.Helper()
	doc, err := document.Parse([]byte(yamlDoc), document.FormatYAML)
	require.NoError(t, err)
	root, err := doc.Build()
	require.NoError(t, err)
	return root
}

func TestValues(t *testing.T) {
	root := buildRig(t)

	values := document.Values(root)

	assert.Equal(t, 0.5, values["gain"])
	assert.Equal(t, 4, values["steps"])
	assert.Equal(t, "main", values["label"])
	assert.Equal(t, map[string]any{"verbose": false}, values["debug"])
	assert.Len(t, values["color"], 3)
}

func TestApplyValues(t *testing.T) {
	root := buildRig(t)

	err := document.ApplyValues(root, map[string]any{
		"gain":    "0.25",
		"steps":   int64(8),
		"label":   "alt",
		"unknown": 1,
		"debug":   map[string]any{"verbose": "yes"},
	})
	require.NoError(t, err)

	values := document.Values(root)
	assert.Equal(t, 0.25, values["gain"])
	assert.Equal(t, 8, values["steps"])
	assert.Equal(t, "alt", values["label"])
	assert.Equal(t, map[string]any{"verbose": true}, values["debug"])
}

func TestApplyValues_ReportsEveryFailure(t *testing.T) {
	root := buildRig(t)

	err := document.ApplyValues(root, map[string]any{
		"gain":  5.0,
		"steps": "many",
		"label": "applied",
		"debug": true,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, parameter.ErrOutOfRange)
	assert.ErrorIs(t, err, utils.ErrNotConvertible)
	assert.ErrorContains(t, err, "rig.gain")
	assert.ErrorContains(t, err, "rig.steps")
	assert.ErrorContains(t, err, "rig.debug")
	assert.Equal(t, "applied", root.Child("label").(*parameter.StringParameter).Value())
}

func TestValues_EncodeDecode(t *testing.T) {
	source := buildRig(t)
	require.NoError(t, document.SetValue(source.Child("gain"), 0.75))

	for _, format := range []document.Format{document.FormatYAML, document.FormatJSON, document.FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := document.Marshal(document.Values(source), format)
			require.NoError(t, err)

			var decoded map[string]any
			require.NoError(t, document.Unmarshal(data, format, &decoded))

			target := buildRig(t)
			require.NoError(t, document.ApplyValues(target, decoded))
			assert.Equal(t, 0.75, target.Child("gain").(*parameter.FloatParameter).Value())
			assert.Equal(t, 4, target.Child("steps").(*parameter.IntParameter).Value())
		})
	}
}

func TestValues_SameAcrossFormats(t *testing.T) {
	valuesOf := func(data string, format document.Format) map[string]any {
		doc, err := document.Parse([]byte(data), format)
		require.NoError(t, err)
		root, err := doc.Build()
		require.NoError(t, err)
		values := document.Values(root)
		// opaque defaults keep each decoder's number types
		delete(values, "color")
		return values
	}

	want := valuesOf(yamlDoc, document.FormatYAML)
	for format, data := range map[document.Format]string{
		document.FormatJSON: jsonDoc,
		document.FormatTOML: tomlDoc,
	} {
		if diff := cmp.Diff(want, valuesOf(data, format)); diff != "" {
			t.Errorf("%s values mismatch (-yaml +%s):\n%s", format, format, diff)
		}
	}
}
