package reconcile

import (
	"cfgcheck/internal/value"
)

// ModifiedVars returns the names that were added, changed or removed between
// before and after, mapped to their after value. Changes are detected on raw
// text; removed names map to an empty scalar placeholder.
func ModifiedVars(before map[string]value.Str, after map[string]value.Value) map[string]value.Value {
	result := make(map[string]value.Value)

	// добавленные и изменённые
	for name, av := range after {
		if av == nil {
			continue
		}
		bv, ok := before[name]
		if !ok || bv.Text() != av.Raw() {
			result[name] = av
		}
	}

	// удалённые считаем переходом в пустую строку
	for name := range before {
		if av, ok := after[name]; !ok || av == nil {
			result[name] = value.NewScalar(value.NewStr(""))
		}
	}

	return result
}
