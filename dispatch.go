// Package ant is a typed in-process signal/slot library. Signals own an
// ordered list of subscribers and invoke them synchronously on Emit;
// connections returned by Connect remove a single subscriber, handles give
// owner-bound slots automatic lifetime pruning, and AutoDisconnect severs a
// whole group of connections at once.
//
// The package assumes a single logical thread of control per argument-type
// signature. There is no locking anywhere.
package ant

import "reflect"

// dispatchers holds one pending queue and one draining latch per slot
// signature, process wide. Every signal instance whose slots share an
// argument-type signature funnels its emissions through the same dispatcher,
// so reentrant emissions interleave across instances of the same signature.
var dispatchers = map[reflect.Type]*dispatcher{}

type dispatcher struct {
	pending  []func()
	draining bool
}

func dispatcherFor(sig reflect.Type) *dispatcher {
	d, ok := dispatchers[sig]
	if !ok {
		d = &dispatcher{}
		dispatchers[sig] = d
	}
	return d
}

// dispatch appends the queued invocations and, unless an outer dispatch is
// already draining this signature's queue, runs the queue FIFO to empty.
// When called reentrantly from inside a running slot it only enqueues; the
// outer loop picks the new entries up after its own remaining ones.
func (d *dispatcher) dispatch(calls []func()) {
	d.pending = append(d.pending, calls...)
	if d.draining {
		return
	}
	d.draining = true
	for len(d.pending) > 0 {
		next := d.pending[0]
		d.pending = d.pending[1:]
		invoke(next)
	}
	d.pending = nil
	d.draining = false
}

// invoke isolates a single slot call so a panicking subscriber cannot stop
// delivery to the rest of the queue or reach the emitter.
func invoke(call func()) {
	defer func() {
		_ = recover()
	}()
	call()
}
