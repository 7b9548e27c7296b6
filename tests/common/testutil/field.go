//go:build unit || e2e

package testutil

// Field returns a mutator that sets (or removes, when value is nil) one field
// of a map-shaped request body. Used by table-driven handler validation tests.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
