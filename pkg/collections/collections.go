// Package collections provides small generic helpers for working with
// slices. They back the narrowing filter chains used by the report
// queries.
package collections

// Filter returns a new slice containing only elements that satisfy the
// predicate. The input slice is never modified.
func Filter[T any](slice []T, predicate func(T) bool) []T {
	result := make([]T, 0)
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms a slice using the given function.
func Map[T any, U any](slice []T, transform func(T) U) []U {
	result := make([]U, len(slice))
	for i, item := range slice {
		result[i] = transform(item)
	}
	return result
}
