package reconcile_test

import (
	"fmt"
	"testing"

	"param-host/core/parameter"
	"param-host/core/plug"
	"param-host/core/reconcile"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// recorder collects transfer calls across all recording adapters of a test.
type recorder struct {
	calls   []string
	creates map[string]int
	fail    map[string]error
}

// recordingAdapter adapts an IntParameter to an IntPlug and records every transfer.
type recordingAdapter struct {
	parameter *parameter.IntParameter
	plug      *plug.ValuePlug[int]
	rec       *recorder
}

func (r *recordingAdapter) Parameter() parameter.Parameter { return r.parameter }
func (r *recordingAdapter) Plug() plug.Plug                { return r.plug }

func (r *recordingAdapter) SetPlugValue() error {
	r.rec.calls = append(r.rec.calls, "plug:"+r.parameter.Name())
	if err := r.rec.fail[r.parameter.Name()]; err != nil {
		return err
	}
	r.plug.Set(r.parameter.Value())
	return nil
}

func (r *recordingAdapter) SetParameterValue() error {
	r.rec.calls = append(r.rec.calls, "param:"+r.parameter.Name())
	if err := r.rec.fail[r.parameter.Name()]; err != nil {
		return err
	}
	return r.parameter.SetValue(r.plug.Get())
}

type fixture struct {
	factory *reconcile.Factory
	rec     *recorder
	logs    *observer.ObservedLogs
}

// newFixture builds a factory over a private registry that adapts IntParameters
// with recordingAdapters. Other leaf types have no creator.
func newFixture(t *testing.T, cfg reconcile.Config) *fixture {
	t.Helper()
	rec := &recorder{creates: map[string]int{}, fail: map[string]error{}}
	core, logs := observer.New(zapcore.WarnLevel)

	registry := reconcile.NewRegistry()
	reconcile.RegisterIn(registry, func(f *reconcile.Factory, p *parameter.IntParameter, plugParent *plug.CompoundPlug) reconcile.Adapter {
		rec.creates[p.Name()]++
		v, ok := plug.GetChild[*plug.ValuePlug[int]](plugParent, p.Name())
		if !ok {
			v = plug.NewValue(p.Default())
			plugParent.SetChild(p.Name(), v)
		}
		return &recordingAdapter{parameter: p, plug: v, rec: rec}
	})

	return &fixture{
		factory: reconcile.NewFactory(cfg, zap.New(core), registry),
		rec:     rec,
		logs:    logs,
	}
}

func compound(t *testing.T, name string, children ...parameter.Parameter) *parameter.CompoundParameter {
	t.Helper()
	c, err := parameter.NewCompound(name, "", children...)
	require.NoError(t, err)
	return c
}

func excluded(p parameter.Parameter) parameter.Parameter {
	p.UserData()[reconcile.DefaultExcludeKey] = true
	return p
}

func childNames(c *plug.CompoundPlug) []string {
	var names []string
	for _, child := range c.Children() {
		names = append(names, child.Name())
	}
	return names
}

// events records structural events below a plug.
type events struct {
	kinds map[plug.EventKind]int
	names map[string]int
}

func record(root *plug.CompoundPlug) *events {
	e := &events{kinds: map[plug.EventKind]int{}, names: map[string]int{}}
	root.Subscribe(func(ev plug.Event) {
		e.kinds[ev.Kind]++
		e.names[fmt.Sprintf("%s:%s", ev.Kind, ev.Plug.Name())]++
	})
	return e
}
