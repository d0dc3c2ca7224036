package mocks

type CallLog[T any] []T

func (l CallLog[T]) Times() uint {
	return uint(len(l))
}

// Last returns the most recent call, or the zero value when nothing was called.
func (l CallLog[T]) Last() T {
	if len(l) == 0 {
		return *new(T)
	}
	return l[len(l)-1]
}
