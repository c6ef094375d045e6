package observable

import "sort"

// State wraps a single mutable value. Set replaces the value and notifies
// unconditionally: every Set is an event, even when the value is unchanged.
type State[T any] struct {
	Base
	value T
}

// NewState returns a State holding value.
func NewState[T any](value T) *State[T] {
	s := &State[T]{value: value}
	s.InitObservable(s)
	return s
}

// Value returns the current value.
func (s *State[T]) Value() T {
	return s.value
}

// Set replaces the value and notifies all observers. There is no equality
// short-circuit.
func (s *State[T]) Set(value T) {
	s.value = value
	s.Notify()
}

// Number constrains NumericState to the built-in numeric kinds.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// NumericState is a State with arithmetic mutators that notify in place.
type NumericState[T Number] struct {
	State[T]
}

// NewNumericState returns a NumericState holding value.
func NewNumericState[T Number](value T) *NumericState[T] {
	s := &NumericState[T]{State[T]{value: value}}
	s.InitObservable(s)
	return s
}

// Add increments the value by delta and notifies.
func (s *NumericState[T]) Add(delta T) {
	s.value += delta
	s.Notify()
}

// Sub decrements the value by delta and notifies.
func (s *NumericState[T]) Sub(delta T) {
	s.value -= delta
	s.Notify()
}

// Mul multiplies the value by factor and notifies.
func (s *NumericState[T]) Mul(factor T) {
	s.value *= factor
	s.Notify()
}

// Div divides the value by divisor and notifies.
func (s *NumericState[T]) Div(divisor T) {
	s.value /= divisor
	s.Notify()
}

// ListState is an observable slice. Every structural mutation (append,
// insert, remove, set, sort, clear) notifies observers once. Reads never
// notify.
type ListState[T comparable] struct {
	Base
	items []T
}

// NewListState returns a ListState holding the given items.
func NewListState[T comparable](items ...T) *ListState[T] {
	s := &ListState[T]{items: append([]T(nil), items...)}
	s.InitObservable(s)
	return s
}

// Len returns the number of items.
func (s *ListState[T]) Len() int {
	return len(s.items)
}

// At returns the item at index i.
func (s *ListState[T]) At(i int) T {
	return s.items[i]
}

// Items returns a copy of the backing slice. Mutating the copy does not
// affect the list and triggers no notification.
func (s *ListState[T]) Items() []T {
	return append([]T(nil), s.items...)
}

// Set replaces the item at index i and notifies.
func (s *ListState[T]) Set(i int, value T) {
	s.items[i] = value
	s.Notify()
}

// Append adds values to the end of the list and notifies once.
func (s *ListState[T]) Append(values ...T) {
	s.items = append(s.items, values...)
	s.Notify()
}

// Insert inserts value at index i and notifies.
func (s *ListState[T]) Insert(i int, value T) {
	s.items = append(s.items, value)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = value
	s.Notify()
}

// RemoveAt deletes the item at index i and notifies.
func (s *ListState[T]) RemoveAt(i int) {
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.Notify()
}

// Remove deletes the first occurrence of value. It notifies and reports true
// if the value was present.
func (s *ListState[T]) Remove(value T) bool {
	for i, v := range s.items {
		if v == value {
			s.RemoveAt(i)
			return true
		}
	}
	return false
}

// Pop removes and returns the last item. It reports false on an empty list,
// in which case nothing is notified.
func (s *ListState[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	s.Notify()
	return v, true
}

// Clear removes all items and notifies.
func (s *ListState[T]) Clear() {
	s.items = s.items[:0]
	s.Notify()
}

// Sort orders the items by less and notifies.
func (s *ListState[T]) Sort(less func(a, b T) bool) {
	sort.SliceStable(s.items, func(i, j int) bool {
		return less(s.items[i], s.items[j])
	})
	s.Notify()
}
