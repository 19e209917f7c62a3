package ant

// expirable is the liveness probe a signal keeps on a slot's owning object.
type expirable interface {
	Expired() bool
}

// Handle owns a value on behalf of slots bound with ConnectOwned. Releasing
// the handle marks the owner destroyed: bound slots stop firing immediately
// and are pruned from their signals on the next connect, emit or slot count.
type Handle[T any] struct {
	value    *T
	released bool
}

func NewHandle[T any](value *T) *Handle[T] {
	return &Handle[T]{value: value}
}

// Value returns the owned object, or nil once released.
func (h *Handle[T]) Value() *T {
	if h == nil || h.released {
		return nil
	}
	return h.value
}

// Release marks the owner destroyed. Idempotent.
func (h *Handle[T]) Release() {
	h.released = true
	h.value = nil
}

func (h *Handle[T]) Expired() bool {
	return h == nil || h.released
}
