// Package series provides the named-column-of-values abstraction the batch
// translators and thin callers exchange. A cell is either a value or
// missing; columns preserve row order and length through every translation.
package series

// Cell is a value that may be missing.
type Cell[T any] struct {
	Value T
	Valid bool
}

// Some wraps a present value.
func Some[T any](v T) Cell[T] {
	return Cell[T]{Value: v, Valid: true}
}

// None is a missing cell.
func None[T any]() Cell[T] {
	return Cell[T]{}
}

// Column is an ordered, named sequence of cells.
type Column[T any] struct {
	Name  string
	Cells []Cell[T]
}

// New builds a column from cells.
func New[T any](name string, cells ...Cell[T]) Column[T] {
	return Column[T]{Name: name, Cells: cells}
}

// Of builds a column of all-present values.
func Of[T any](name string, values ...T) Column[T] {
	cells := make([]Cell[T], len(values))
	for i, v := range values {
		cells[i] = Some(v)
	}
	return Column[T]{Name: name, Cells: cells}
}

// Len returns the row count.
func (c Column[T]) Len() int {
	return len(c.Cells)
}

// Values returns the present values in row order.
func (c Column[T]) Values() []T {
	out := make([]T, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if cell.Valid {
			out = append(out, cell.Value)
		}
	}
	return out
}
