package checks

import (
	"param-host/core/parameter"
	"param-host/core/plug"
	"param-host/core/reconcile"
)

// ShapeReport compares a parameter tree with its reconciled plug tree.
// Paths are dotted and relative to the root plug.
type ShapeReport struct {
	// Missing lists adapted parameters whose plug is no longer attached.
	Missing []string `json:"missing"`
	// Stale lists plugs with no adapted parameter.
	Stale []string `json:"stale"`
	// Excluded lists parameters opted out of plugs by user data.
	Excluded []string `json:"excluded"`
	// Unadapted lists parameters without an adapter: no creator handles them,
	// or they were added after reconciliation.
	Unadapted []string `json:"unadapted"`
	Status    string   `json:"status"` // "ok", "drift"
}

// CheckShape reports differences between view's parameters and plugs. It only
// reads memoized adapters and never creates any.
func CheckShape(view reconcile.View, excludeKey string) *ShapeReport {
	report := &ShapeReport{
		Missing:   []string{},
		Stale:     []string{},
		Excluded:  []string{},
		Unadapted: []string{},
		Status:    "ok",
	}
	walkShape(view, excludeKey, "", report)
	if len(report.Missing) > 0 || len(report.Stale) > 0 {
		report.Status = "drift"
	}
	return report
}

func walkShape(view reconcile.View, excludeKey, prefix string, report *ShapeReport) {
	compound, ok := view.Parameter().(*parameter.CompoundParameter)
	if !ok {
		return
	}
	node, ok := view.Plug().(*plug.CompoundPlug)
	if !ok {
		return
	}

	adapted := make(map[string]bool)
	for _, child := range compound.Ordered() {
		path := prefix + child.Name()
		a := view.ChildAdapter(child)
		if a == nil {
			if excluded, _ := child.UserData().Bool(excludeKey); excluded {
				report.Excluded = append(report.Excluded, path)
			} else {
				report.Unadapted = append(report.Unadapted, path)
			}
			continue
		}

		adapted[child.Name()] = true
		if node.Child(child.Name()) != a.Plug() {
			report.Missing = append(report.Missing, path)
			continue
		}
		if nested, ok := a.(*reconcile.CompoundAdapter); ok {
			walkShape(nested.View(), excludeKey, path+".", report)
		}
	}

	for _, p := range node.Children() {
		if !adapted[p.Name()] {
			report.Stale = append(report.Stale, prefix+p.Name())
		}
	}
}
