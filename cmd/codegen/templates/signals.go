package templates

import (
	"fmt"
	"strings"
)

// SignalsGen renders the per-arity signal types for arities 0..maxArity.
func SignalsGen(maxArity int) string {
	sb := &strings.Builder{}
	sb.WriteString("package ant\n\n")
	sb.WriteString("import \"reflect\"\n")
	for n := 0; n <= maxArity; n++ {
		arityGen(sb, n)
	}
	return sb.String()
}

func arityGen(sb *strings.Builder, n int) {
	// typeParams is "T0, T1", args is "a0 T0, a1 T1", argNames is "a0, a1",
	// brackets is "[T0, T1]" and declParams is "[T0, T1 any]".
	var (
		name       = fmt.Sprintf("Signal%d", n)
		entry      = fmt.Sprintf("slotEntry%d", n)
		typeParams = prefixedStrings("T", n)
		args       = typedStrings("a", "T", n)
		argNames   = prefixedStrings("a", n)
		funcType   = "func(" + typeParams + ")"
		brackets   = ""
		declParams = ""
	)
	if n > 0 {
		brackets = "[" + typeParams + "]"
		declParams = "[" + typeParams + " any]"
	}

	fmt.Fprintf(sb, `
type %[1]s%[3]s struct {
	slots  []*%[2]s%[4]s
	nextID uint64
	disp   *dispatcher
}

type %[2]s%[3]s struct {
	slot  %[5]s
	owner expirable
	id    uint64
}

func New%[1]s%[3]s() *%[1]s%[4]s {
	return &%[1]s%[4]s{
		disp: dispatcherFor(reflect.TypeOf((*%[5]s)(nil))),
	}
}
`, name, entry, declParams, brackets, funcType)

	fmt.Fprint(sb, "\n")
	fmt.Fprint(sb, wrapComment("Connect registers slot to run on every Emit and returns the connection controlling its removal."))
	fmt.Fprintf(sb, `func (s *%[1]s%[2]s) Connect(slot %[3]s) *Connection {
	s.cleanupExpired()
	id := s.nextID
	s.nextID++
	s.slots = append(s.slots, &%[4]s%[2]s{slot: slot, id: id})
	return newConnection(func() {
		s.disconnectByID(id)
	})
}
`, name, brackets, funcType, entry)

	ownedParams := "[O any]"
	if n > 0 {
		ownedParams = fmt.Sprintf("[O any, %s any]", typeParams)
	}
	methodType := "func(*O)"
	methodCall := "method(owner.Value())"
	slotSig := "func()"
	if n > 0 {
		methodType = fmt.Sprintf("func(*O, %s)", typeParams)
		methodCall = fmt.Sprintf("method(owner.Value(), %s)", argNames)
		slotSig = fmt.Sprintf("func(%s)", args)
	}
	fmt.Fprint(sb, "\n")
	fmt.Fprint(sb, wrapComment(fmt.Sprintf("ConnectOwned%d registers a method bound to owner. The slot is skipped silently once the handle is released and pruned lazily afterwards.", n)))
	fmt.Fprintf(sb, `func ConnectOwned%[1]d%[2]s(s *%[3]s%[4]s, owner *Handle[O], method %[5]s) *Connection {
	s.cleanupExpired()
	id := s.nextID
	s.nextID++
	slot := %[6]s {
		if owner.Expired() {
			return
		}
		%[7]s
	}
	s.slots = append(s.slots, &%[8]s%[4]s{slot: slot, owner: owner, id: id})
	return newConnection(func() {
		s.disconnectByID(id)
	})
}
`, n, ownedParams, name, brackets, methodType, slotSig, methodCall, entry)

	emitDoc := "Emit invokes every live slot. Slots registered on any Signal0 share one pending queue, so an emission triggered from inside a running slot is queued behind the outer emission's remaining slots rather than recursing. A panicking slot is swallowed and the queue keeps draining."
	if n == 1 {
		emitDoc = fmt.Sprintf("Emit invokes every live slot with %s. Slots registered on any %s of the same argument type share one pending queue, so an emission triggered from inside a running slot is queued behind the outer emission's remaining slots rather than recursing. A panicking slot is swallowed and the queue keeps draining.", argNames, name)
	} else if n > 1 {
		emitDoc = fmt.Sprintf("Emit invokes every live slot with %s. Slots registered on any %s of the same argument types share one pending queue, so an emission triggered from inside a running slot is queued behind the outer emission's remaining slots rather than recursing. A panicking slot is swallowed and the queue keeps draining.", argNames, name)
	}
	emitArgs := ""
	emitCall := "slot()"
	if n > 0 {
		emitArgs = args
		emitCall = fmt.Sprintf("slot(%s)", argNames)
	}
	fmt.Fprint(sb, "\n")
	fmt.Fprint(sb, wrapComment(emitDoc))
	fmt.Fprintf(sb, `func (s *%[1]s%[2]s) Emit(%[3]s) {
	s.cleanupExpired()
	snapshot := make([]*%[4]s%[2]s, len(s.slots))
	copy(snapshot, s.slots)
	calls := make([]func(), len(snapshot))
	for i, entry := range snapshot {
		slot := entry.slot
		calls[i] = func() {
			%[5]s
		}
	}
	s.disp.dispatch(calls)
}
`, name, brackets, emitArgs, entry, emitCall)

	fmt.Fprint(sb, "\n")
	fmt.Fprint(sb, wrapComment("DisconnectAll drops every subscriber. Invocations already queued by an in-flight Emit still run."))
	fmt.Fprintf(sb, `func (s *%[1]s%[2]s) DisconnectAll() {
	s.slots = nil
}
`, name, brackets)

	fmt.Fprint(sb, "\n")
	fmt.Fprint(sb, wrapComment("SlotCount prunes expired owners and reports the live subscriber count."))
	fmt.Fprintf(sb, `func (s *%[1]s%[2]s) SlotCount() int {
	s.cleanupExpired()
	return len(s.slots)
}

func (s *%[1]s%[2]s) cleanupExpired() {
	kept := s.slots[:0]
	for _, entry := range s.slots {
		if entry.owner != nil && entry.owner.Expired() {
			continue
		}
		kept = append(kept, entry)
	}
	s.slots = kept
}

func (s *%[1]s%[2]s) disconnectByID(id uint64) {
	for i, entry := range s.slots {
		if entry.id == id {
			s.slots = append(s.slots[:i], s.slots[i+1:]...)
			return
		}
	}
}
`, name, brackets)
}
