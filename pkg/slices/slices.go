package slices

import (
	"slices"
)

// Exist reports whether key is present in values.
func Exist[V comparable](key V, values []V) bool {
	index := slices.Index(values, key)
	return index != -1
}
