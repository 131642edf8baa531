package orchestration

import "github.com/agbru/polymul/internal/transform"

// GetTransformersToRun determines which backends should be executed for the
// given selection. Returns backends in alphabetically sorted order for
// consistent, reproducible behavior.
//
// Parameters:
//   - algo: A backend name, or "all" for every registered backend.
//   - factory: The transform factory to retrieve implementations from.
//
// Returns:
//   - []transform.Transformer: The backends to execute; nil if algo is unknown.
func GetTransformersToRun(algo string, factory transform.Factory) []transform.Transformer {
	if algo == "all" {
		keys := factory.List() // List() returns sorted keys
		backends := make([]transform.Transformer, 0, len(keys))
		for _, k := range keys {
			if b, err := factory.Get(k); err == nil {
				backends = append(backends, b)
			}
		}
		return backends
	}
	if b, err := factory.Get(algo); err == nil {
		return []transform.Transformer{b}
	}
	return nil
}
