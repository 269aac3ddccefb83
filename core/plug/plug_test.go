package plug_test

import (
	"testing"

	"param-host/core/plug"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompound_SetChildAndLookup(t *testing.T) {
	node := plug.NewCompound("node")
	width := plug.NewValue(1.5)
	node.SetChild("width", width)

	assert.Equal(t, "width", width.Name())
	assert.Same(t, node, width.Parent())
	assert.Same(t, width, node.Child("width"))

	got, ok := plug.GetChild[*plug.ValuePlug[float64]](node, "width")
	require.True(t, ok)
	assert.Same(t, width, got)

	_, ok = plug.GetChild[*plug.ValuePlug[int]](node, "width")
	assert.False(t, ok, "type-checked lookup rejects other variants")

	_, ok = plug.GetChild[*plug.CompoundPlug](nil, "width")
	assert.False(t, ok)
}

func TestCompound_SetChildReplacesSameName(t *testing.T) {
	node := plug.NewCompound("node")
	first := plug.NewValue(1)
	second := plug.NewValue("x")
	node.SetChild("a", first)
	node.SetChild("a", second)

	assert.Equal(t, 1, node.Len())
	assert.Same(t, second, node.Child("a"))
	assert.Nil(t, first.Parent())
}

func TestCompound_SetChildReparents(t *testing.T) {
	a := plug.NewCompound("a")
	b := plug.NewCompound("b")
	p := plug.NewValue(true)
	a.SetChild("p", p)
	b.SetChild("q", p)

	assert.Equal(t, 0, a.Len())
	assert.Same(t, b, p.Parent())
	assert.Equal(t, "q", p.Name())
}

func TestCompound_RemoveChild(t *testing.T) {
	node := plug.NewCompound("node")
	p := plug.NewValue(0)
	node.SetChild("p", p)

	require.NoError(t, node.RemoveChild(p))
	assert.Nil(t, p.Parent())
	assert.ErrorIs(t, node.RemoveChild(p), plug.ErrNotChild)
}

func TestCompound_ChildrenIsSnapshot(t *testing.T) {
	node := plug.NewCompound("node")
	node.SetChild("a", plug.NewValue(0))
	node.SetChild("b", plug.NewValue(0))

	children := node.Children()
	for _, child := range children {
		require.NoError(t, node.RemoveChild(child))
	}
	assert.Len(t, children, 2)
	assert.Equal(t, 0, node.Len())
}

func TestDescendantAndNames(t *testing.T) {
	root := plug.NewCompound("node")
	params := plug.NewCompound("")
	root.SetChild("parameters", params)
	group := plug.NewCompound("")
	params.SetChild("group", group)
	leaf := plug.NewValue("v")
	group.SetChild("leaf", leaf)

	assert.Same(t, leaf, root.Descendant("parameters.group.leaf"))
	assert.Nil(t, root.Descendant("parameters.leaf"))
	assert.Nil(t, root.Descendant("parameters.group.leaf.deeper"))
	assert.Nil(t, root.Descendant(""))

	assert.Equal(t, "node.parameters.group.leaf", plug.FullName(leaf))

	rel, ok := plug.RelativeName(params, leaf)
	require.True(t, ok)
	assert.Equal(t, "group.leaf", rel)

	_, ok = plug.RelativeName(plug.NewCompound("other"), leaf)
	assert.False(t, ok)
}

func TestWalk(t *testing.T) {
	root := plug.NewCompound("root")
	g := plug.NewCompound("")
	root.SetChild("g", g)
	g.SetChild("x", plug.NewValue(1))
	root.SetChild("y", plug.NewValue(2))

	var seen []string
	plug.Walk(root, func(p plug.Plug) bool {
		seen = append(seen, p.Name())
		return true
	})
	assert.Equal(t, []string{"g", "x", "y"}, seen)

	seen = nil
	plug.Walk(root, func(p plug.Plug) bool {
		seen = append(seen, p.Name())
		return false
	})
	assert.Equal(t, []string{"g", "y"}, seen)
}

func TestEventsBubbleToAncestors(t *testing.T) {
	root := plug.NewCompound("root")
	g := plug.NewCompound("")
	root.SetChild("g", g)

	var events []plug.Event
	root.Subscribe(func(e plug.Event) { events = append(events, e) })

	v := plug.NewValue(1)
	g.SetChild("v", v)
	v.Set(1)
	v.Set(2)
	require.NoError(t, g.RemoveChild(v))

	require.Len(t, events, 3)
	assert.Equal(t, plug.ChildAdded, events[0].Kind)
	assert.Same(t, g, events[0].Parent)
	assert.Equal(t, plug.ValueChanged, events[1].Kind)
	assert.Equal(t, plug.ChildRemoved, events[2].Kind)
	assert.Equal(t, "child_removed", events[2].Kind.String())
}

func TestValuePlug(t *testing.T) {
	p := plug.NewValue(2.5)
	assert.Equal(t, "FloatPlug", p.TypeName())
	assert.Equal(t, 2.5, p.Default())

	require.NoError(t, p.SetAny("3.5"))
	assert.Equal(t, 3.5, p.Get())
	assert.Equal(t, 3.5, p.Any())

	assert.Error(t, p.SetAny("abc"))
	assert.Equal(t, 3.5, p.Get())

	p.SetToDefault()
	assert.Equal(t, 2.5, p.Get())

	i := plug.NewValue(0)
	require.NoError(t, i.SetAny(4.0))
	assert.Equal(t, 4, i.Get())
	assert.Equal(t, "IntPlug", i.TypeName())

	b := plug.NewValue(false)
	require.NoError(t, b.SetAny("true"))
	assert.True(t, b.Get())

	s := plug.NewValue("")
	require.NoError(t, s.SetAny(12))
	assert.Equal(t, "12", s.Get())

	var holder plug.ValueHolder = s
	assert.Equal(t, "", holder.DefaultAny())
}
