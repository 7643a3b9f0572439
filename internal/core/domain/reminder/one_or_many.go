package reminder

import "encoding/json"

// OneOrMany holds a single value until records are merged, then the list of merged values.
type OneOrMany[T any] struct {
	values []T
	merged bool
}

func Single[T any](v T) OneOrMany[T] {
	return OneOrMany[T]{values: []T{v}}
}

// Merge returns a merged value holding o's values followed by other's.
func (o OneOrMany[T]) Merge(other OneOrMany[T]) OneOrMany[T] {
	values := make([]T, 0, len(o.values)+len(other.values))
	values = append(values, o.values...)
	values = append(values, other.values...)
	return OneOrMany[T]{values: values, merged: true}
}

func (o OneOrMany[T]) IsMerged() bool {
	return o.merged
}

func (o OneOrMany[T]) IsEmpty() bool {
	return len(o.values) == 0
}

func (o OneOrMany[T]) Len() int {
	return len(o.values)
}

func (o OneOrMany[T]) Values() []T {
	return append([]T(nil), o.values...)
}

func (o OneOrMany[T]) MarshalJSON() ([]byte, error) {
	switch {
	case o.merged:
		return json.Marshal(o.values)
	case len(o.values) == 0:
		return []byte("null"), nil
	default:
		return json.Marshal(o.values[0])
	}
}
