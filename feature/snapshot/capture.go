package snapshot

import (
	"encoding/json"
	"fmt"

	"param-host/core/plug"
)

// Capture returns one row per value plug below root, in tree order.
func Capture(session string, root *plug.CompoundPlug) ([]PlugValue, error) {
	var (
		rows []PlugValue
		err  error
	)
	plug.Walk(root, func(p plug.Plug) bool {
		if err != nil {
			return false
		}
		holder, ok := p.(plug.ValueHolder)
		if !ok {
			return true
		}
		path, _ := plug.RelativeName(root, p)
		data, encErr := json.Marshal(holder.Any())
		if encErr != nil {
			err = fmt.Errorf("encode %s: %w", path, encErr)
			return false
		}
		rows = append(rows, PlugValue{
			Session: session,
			Path:    path,
			Kind:    p.TypeName(),
			Value:   string(data),
		})
		return true
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Result reports what Apply did.
type Result struct {
	// Applied counts plugs whose value was set.
	Applied int `json:"applied"`
	// Missing lists saved paths with no value plug in the tree.
	Missing []string `json:"missing"`
	// Failed maps paths to the reason their value was rejected.
	Failed map[string]string `json:"failed"`
}

// Apply sets the saved values on the plugs below root. Rows that do not fit the
// current tree are reported rather than treated as errors, since the tree may
// have been reconciled against a newer document.
func Apply(rows []PlugValue, root *plug.CompoundPlug) Result {
	res := Result{Missing: []string{}, Failed: map[string]string{}}
	for _, row := range rows {
		holder, ok := root.Descendant(row.Path).(plug.ValueHolder)
		if !ok {
			res.Missing = append(res.Missing, row.Path)
			continue
		}
		var v any
		if err := json.Unmarshal([]byte(row.Value), &v); err != nil {
			res.Failed[row.Path] = err.Error()
			continue
		}
		if err := holder.SetAny(v); err != nil {
			res.Failed[row.Path] = err.Error()
			continue
		}
		res.Applied++
	}
	return res
}
