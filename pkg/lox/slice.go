// Package lox дополняет samber/lo функциями, которых там нет в нужном виде.
package lox

// Map в отличие от lo.Map передаёт в iteratee только элемент.
func Map[T, R any](collection []T, iteratee func(item T) R) []R {
	result := make([]R, len(collection))

	for i, item := range collection {
		result[i] = iteratee(item)
	}

	return result
}

// FilterMap оставляет элементы, для которых callback вернул true.
func FilterMap[T, R any](collection []T, callback func(item T) (R, bool)) []R {
	result := make([]R, 0, len(collection))

	for _, item := range collection {
		if r, ok := callback(item); ok {
			result = append(result, r)
		}
	}

	return result
}
