package ant

import "reflect"

type Signal0 struct {
	slots  []*slotEntry0
	nextID uint64
	disp   *dispatcher
}

type slotEntry0 struct {
	slot  func()
	owner expirable
	id    uint64
}

func NewSignal0() *Signal0 {
	return &Signal0{
		disp: dispatcherFor(reflect.TypeOf((*func())(nil))),
	}
}

// Connect registers slot to run on every Emit and returns the connection
// controlling its removal.
func (s *Signal0) Connect(slot func()) *Connection {
	s.cleanupExpired()
	id := s.nextID
	s.nextID++
	s.slots = append(s.slots, &slotEntry0{slot: slot, id: id})
	return newConnection(func() {
		s.disconnectByID(id)
	})
}

// ConnectOwned0 registers a method bound to owner. The slot is skipped
// silently once the handle is released and pruned lazily afterwards.
func ConnectOwned0[O any](s *Signal0, owner *Handle[O], method func(*O)) *Connection {
	s.cleanupExpired()
	id := s.nextID
	s.nextID++
	slot := func() {
		if owner.Expired() {
			return
		}
		method(owner.Value())
	}
	s.slots = append(s.slots, &slotEntry0{slot: slot, owner: owner, id: id})
	return newConnection(func() {
		s.disconnectByID(id)
	})
}

// Emit invokes every live slot. Slots registered on any Signal0 share one
// pending queue, so an emission triggered from inside a running slot is
// queued behind the outer emission's remaining slots rather than recursing.
// A panicking slot is swallowed and the queue keeps draining.
func (s *Signal0) Emit() {
	s.cleanupExpired()
	snapshot := make([]*slotEntry0, len(s.slots))
	copy(snapshot, s.slots)
	calls := make([]func(), len(snapshot))
	for i, entry := range snapshot {
		slot := entry.slot
		calls[i] = func() {
			slot()
		}
	}
	s.disp.dispatch(calls)
}

// DisconnectAll drops every subscriber. Invocations already queued by an
// in-flight Emit still run.
func (s *Signal0) DisconnectAll() {
	s.slots = nil
}

// SlotCount prunes expired owners and reports the live subscriber count.
func (s *Signal0) SlotCount() int {
	s.cleanupExpired()
	return len(s.slots)
}

func (s *Signal0) cleanupExpired() {
	kept := s.slots[:0]
	for _, entry := range s.slots {
		if entry.owner != nil && entry.owner.Expired() {
			continue
		}
		kept = append(kept, entry)
	}
	s.slots = kept
}

func (s *Signal0) disconnectByID(id uint64) {
	for i, entry := range s.slots {
		if entry.id == id {
			s.slots = append(s.slots[:i], s.slots[i+1:]...)
			return
		}
	}
}

type Signal1[T0 any] struct {
	slots  []*slotEntry1[T0]
	nextID uint64
	disp   *dispatcher
}

type slotEntry1[T0 any] struct {
	slot  func(T0)
	owner expirable
	id    uint64
}

func NewSignal1[T0 any]() *Signal1[T0] {
	return &Signal1[T0]{
		disp: dispatcherFor(reflect.TypeOf((*func(T0))(nil))),
	}
}

// Connect registers slot to run on every Emit and returns the connection
// controlling its removal.
func (s *Signal1[T0]) Connect(slot func(T0)) *Connection {
	s.cleanupExpired()
	id := s.nextID
	s.nextID++
	s.slots = append(s.slots, &slotEntry1[T0]{slot: slot, id: id})
	return newConnection(func() {
		s.disconnectByID(id)
	})
}

// ConnectOwned1 registers a method bound to owner. The slot is skipped
// silently once the handle is released and pruned lazily afterwards.
func ConnectOwned1[O any, T0 any](s *Signal1[T0], owner *Handle[O], method func(*O, T0)) *Connection {
	s.cleanupExpired()
	id := s.nextID
	s.nextID++
	slot := func(a0 T0) {
		if owner.Expired() {
			return
		}
		method(owner.Value(), a0)
	}
	s.slots = append(s.slots, &slotEntry1[T0]{slot: slot, owner: owner, id: id})
	return newConnection(func() {
		s.disconnectByID(id)
	})
}

// Emit invokes every live slot with a0. Slots registered on any Signal1 of
// the same argument type share one pending queue, so an emission triggered
// from inside a running slot is queued behind the outer emission's remaining
// slots rather than recursing. A panicking slot is swallowed and the queue
// keeps draining.
func (s *Signal1[T0]) Emit(a0 T0) {
	s.cleanupExpired()
	snapshot := make([]*slotEntry1[T0], len(s.slots))
	copy(snapshot, s.slots)
	calls := make([]func(), len(snapshot))
	for i, entry := range snapshot {
		slot := entry.slot
		calls[i] = func() {
			slot(a0)
		}
	}
	s.disp.dispatch(calls)
}

// DisconnectAll drops every subscriber. Invocations already queued by an
// in-flight Emit still run.
func (s *Signal1[T0]) DisconnectAll() {
	s.slots = nil
}

// SlotCount prunes expired owners and reports the live subscriber count.
func (s *Signal1[T0]) SlotCount() int {
	s.cleanupExpired()
	return len(s.slots)
}

func (s *Signal1[T0]) cleanupExpired() {
	kept := s.slots[:0]
	for _, entry := range s.slots {
		if entry.owner != nil && entry.owner.Expired() {
			continue
		}
		kept = append(kept, entry)
	}
	s.slots = kept
}

func (s *Signal1[T0]) disconnectByID(id uint64) {
	for i, entry := range s.slots {
		if entry.id == id {
			s.slots = append(s.slots[:i], s.slots[i+1:]...)
			return
		}
	}
}

type Signal2[T0, T1 any] struct {
	slots  []*slotEntry2[T0, T1]
	nextID uint64
	disp   *dispatcher
}

type slotEntry2[T0, T1 any] struct {
	slot  func(T0, T1)
	owner expirable
	id    uint64
}

func NewSignal2[T0, T1 any]() *Signal2[T0, T1] {
	return &Signal2[T0, T1]{
		disp: dispatcherFor(reflect.TypeOf((*func(T0, T1))(nil))),
	}
}

// Connect registers slot to run on every Emit and returns the connection
// controlling its removal.
func (s *Signal2[T0, T1]) Connect(slot func(T0, T1)) *Connection {
	s.cleanupExpired()
	id := s.nextID
	s.nextID++
	s.slots = append(s.slots, &slotEntry2[T0, T1]{slot: slot, id: id})
	return newConnection(func() {
		s.disconnectByID(id)
	})
}

// ConnectOwned2 registers a method bound to owner. The slot is skipped
// silently once the handle is released and pruned lazily afterwards.
func ConnectOwned2[O any, T0, T1 any](s *Signal2[T0, T1], owner *Handle[O], method func(*O, T0, T1)) *Connection {
	s.cleanupExpired()
	id := s.nextID
	s.nextID++
	slot := func(a0 T0, a1 T1) {
		if owner.Expired() {
			return
		}
		method(owner.Value(), a0, a1)
	}
	s.slots = append(s.slots, &slotEntry2[T0, T1]{slot: slot, owner: owner, id: id})
	return newConnection(func() {
		s.disconnectByID(id)
	})
}

// Emit invokes every live slot with a0, a1. Slots registered on any Signal2
// of the same argument types share one pending queue, so an emission
// triggered from inside a running slot is queued behind the outer emission's
// remaining slots rather than recursing. A panicking slot is swallowed and
// the queue keeps draining.
func (s *Signal2[T0, T1]) Emit(a0 T0, a1 T1) {
	s.cleanupExpired()
	snapshot := make([]*slotEntry2[T0, T1], len(s.slots))
	copy(snapshot, s.slots)
	calls := make([]func(), len(snapshot))
	for i, entry := range snapshot {
		slot := entry.slot
		calls[i] = func() {
			slot(a0, a1)
		}
	}
	s.disp.dispatch(calls)
}

// DisconnectAll drops every subscriber. Invocations already queued by an
// in-flight Emit still run.
func (s *Signal2[T0, T1]) DisconnectAll() {
	s.slots = nil
}

// SlotCount prunes expired owners and reports the live subscriber count.
func (s *Signal2[T0, T1]) SlotCount() int {
	s.cleanupExpired()
	return len(s.slots)
}

func (s *Signal2[T0, T1]) cleanupExpired() {
	kept := s.slots[:0]
	for _, entry := range s.slots {
		if entry.owner != nil && entry.owner.Expired() {
			continue
		}
		kept = append(kept, entry)
	}
	s.slots = kept
}

func (s *Signal2[T0, T1]) disconnectByID(id uint64) {
	for i, entry := range s.slots {
		if entry.id == id {
			s.slots = append(s.slots[:i], s.slots[i+1:]...)
			return
		}
	}
}

type Signal3[T0, T1, T2 any] struct {
	slots  []*slotEntry3[T0, T1, T2]
	nextID uint64
	disp   *dispatcher
}

type slotEntry3[T0, T1, T2 any] struct {
	slot  func(T0, T1, T2)
	owner expirable
	id    uint64
}

func NewSignal3[T0, T1, T2 any]() *Signal3[T0, T1, T2] {
	return &Signal3[T0, T1, T2]{
		disp: dispatcherFor(reflect.TypeOf((*func(T0, T1, T2))(nil))),
	}
}

// Connect registers slot to run on every Emit and returns the connection
// controlling its removal.
func (s *Signal3[T0, T1, T2]) Connect(slot func(T0, T1, T2)) *Connection {
	s.cleanupExpired()
	id := s.nextID
	s.nextID++
	s.slots = append(s.slots, &slotEntry3[T0, T1, T2]{slot: slot, id: id})
	return newConnection(func() {
		s.disconnectByID(id)
	})
}

// ConnectOwned3 registers a method bound to owner. The slot is skipped
// silently once the handle is released and pruned lazily afterwards.
func ConnectOwned3[O any, T0, T1, T2 any](s *Signal3[T0, T1, T2], owner *Handle[O], method func(*O, T0, T1, T2)) *Connection {
	s.cleanupExpired()
	id := s.nextID
	s.nextID++
	slot := func(a0 T0, a1 T1, a2 T2) {
		if owner.Expired() {
			return
		}
		method(owner.Value(), a0, a1, a2)
	}
	s.slots = append(s.slots, &slotEntry3[T0, T1, T2]{slot: slot, owner: owner, id: id})
	return newConnection(func() {
		s.disconnectByID(id)
	})
}

// Emit invokes every live slot with a0, a1, a2. Slots registered on any
// Signal3 of the same argument types share one pending queue, so an emission
// triggered from inside a running slot is queued behind the outer emission's
// remaining slots rather than recursing. A panicking slot is swallowed and
// the queue keeps draining.
func (s *Signal3[T0, T1, T2]) Emit(a0 T0, a1 T1, a2 T2) {
	s.cleanupExpired()
	snapshot := make([]*slotEntry3[T0, T1, T2], len(s.slots))
	copy(snapshot, s.slots)
	calls := make([]func(), len(snapshot))
	for i, entry := range snapshot {
		slot := entry.slot
		calls[i] = func() {
			slot(a0, a1, a2)
		}
	}
	s.disp.dispatch(calls)
}

// DisconnectAll drops every subscriber. Invocations already queued by an
// in-flight Emit still run.
func (s *Signal3[T0, T1, T2]) DisconnectAll() {
	s.slots = nil
}

// SlotCount prunes expired owners and reports the live subscriber count.
func (s *Signal3[T0, T1, T2]) SlotCount() int {
	s.cleanupExpired()
	return len(s.slots)
}

func (s *Signal3[T0, T1, T2]) cleanupExpired() {
	kept := s.slots[:0]
	for _, entry := range s.slots {
		if entry.owner != nil && entry.owner.Expired() {
			continue
		}
		kept = append(kept, entry)
	}
	s.slots = kept
}

func (s *Signal3[T0, T1, T2]) disconnectByID(id uint64) {
	for i, entry := range s.slots {
		if entry.id == id {
			s.slots = append(s.slots[:i], s.slots[i+1:]...)
			return
		}
	}
}

type Signal4[T0, T1, T2, T3 any] struct {
	slots  []*slotEntry4[T0, T1, T2, T3]
	nextID uint64
	disp   *dispatcher
}

type slotEntry4[T0, T1, T2, T3 any] struct {
	slot  func(T0, T1, T2, T3)
	owner expirable
	id    uint64
}

func NewSignal4[T0, T1, T2, T3 any]() *Signal4[T0, T1, T2, T3] {
	return &Signal4[T0, T1, T2, T3]{
		disp: dispatcherFor(reflect.TypeOf((*func(T0, T1, T2, T3))(nil))),
	}
}

// Connect registers slot to run on every Emit and returns the connection
// controlling its removal.
func (s *Signal4[T0, T1, T2, T3]) Connect(slot func(T0, T1, T2, T3)) *Connection {
	s.cleanupExpired()
	id := s.nextID
	s.nextID++
	s.slots = append(s.slots, &slotEntry4[T0, T1, T2, T3]{slot: slot, id: id})
	return newConnection(func() {
		s.disconnectByID(id)
	})
}

// ConnectOwned4 registers a method bound to owner. The slot is skipped
// silently once the handle is released and pruned lazily afterwards.
func ConnectOwned4[O any, T0, T1, T2, T3 any](s *Signal4[T0, T1, T2, T3], owner *Handle[O], method func(*O, T0, T1, T2, T3)) *Connection {
	s.cleanupExpired()
	id := s.nextID
	s.nextID++
	slot := func(a0 T0, a1 T1, a2 T2, a3 T3) {
		if owner.Expired() {
			return
		}
		method(owner.Value(), a0, a1, a2, a3)
	}
	s.slots = append(s.slots, &slotEntry4[T0, T1, T2, T3]{slot: slot, owner: owner, id: id})
	return newConnection(func() {
		s.disconnectByID(id)
	})
}

// Emit invokes every live slot with a0, a1, a2, a3. Slots registered on any
// Signal4 of the same argument types share one pending queue, so an emission
// triggered from inside a running slot is queued behind the outer emission's
// remaining slots rather than recursing. A panicking slot is swallowed and
// the queue keeps draining.
func (s *Signal4[T0, T1, T2, T3]) Emit(a0 T0, a1 T1, a2 T2, a3 T3) {
	s.cleanupExpired()
	snapshot := make([]*slotEntry4[T0, T1, T2, T3], len(s.slots))
	copy(snapshot, s.slots)
	calls := make([]func(), len(snapshot))
	for i, entry := range snapshot {
		slot := entry.slot
		calls[i] = func() {
			slot(a0, a1, a2, a3)
		}
	}
	s.disp.dispatch(calls)
}

// DisconnectAll drops every subscriber. Invocations already queued by an
// in-flight Emit still run.
func (s *Signal4[T0, T1, T2, T3]) DisconnectAll() {
	s.slots = nil
}

// SlotCount prunes expired owners and reports the live subscriber count.
func (s *Signal4[T0, T1, T2, T3]) SlotCount() int {
	s.cleanupExpired()
	return len(s.slots)
}

func (s *Signal4[T0, T1, T2, T3]) cleanupExpired() {
	kept := s.slots[:0]
	for _, entry := range s.slots {
		if entry.owner != nil && entry.owner.Expired() {
			continue
		}
		kept = append(kept, entry)
	}
	s.slots = kept
}

func (s *Signal4[T0, T1, T2, T3]) disconnectByID(id uint64) {
	for i, entry := range s.slots {
		if entry.id == id {
			s.slots = append(s.slots[:i], s.slots[i+1:]...)
			return
		}
	}
}
