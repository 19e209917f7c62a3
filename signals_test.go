package ant_test

import (
	"fmt"
	"testing"

	"github.com/rubenromani/ant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitInvokesSlotsInRegistrationOrder(t *testing.T) {
	sig := ant.NewSignal1[int]()

	var got []string
	for i := 0; i < 5; i++ {
		sig.Connect(func(v int) {
			got = append(got, fmt.Sprintf("%d:%d", i, v))
		})
	}
	require.Equal(t, 5, sig.SlotCount())

	sig.Emit(7)
	assert.Equal(t, []string{"0:7", "1:7", "2:7", "3:7", "4:7"}, got)
}

func TestEmitWithNoSlots(t *testing.T) {
	sig := ant.NewSignal1[string]()
	assert.Equal(t, 0, sig.SlotCount())
	sig.Emit("nobody home")
}

func TestEmitPassesAllArguments(t *testing.T) {
	sig2 := ant.NewSignal2[int, string]()
	sig3 := ant.NewSignal3[string, string, uint64]()

	var a int
	var b, from, to string
	var size uint64
	sig2.Connect(func(i int, s string) {
		a, b = i, s
	})
	sig3.Connect(func(f, t string, n uint64) {
		from, to, size = f, t, n
	})

	sig2.Emit(42, "answer")
	sig3.Emit("alice", "bob", 1024)

	assert.Equal(t, 42, a)
	assert.Equal(t, "answer", b)
	assert.Equal(t, "alice", from)
	assert.Equal(t, "bob", to)
	assert.Equal(t, uint64(1024), size)
}

func TestDisconnectExcludesSlotFromLaterEmits(t *testing.T) {
	sig := ant.NewSignal1[int]()

	var first, second int
	conn := sig.Connect(func(v int) { first += v })
	sig.Connect(func(v int) { second += v })

	sig.Emit(1)
	require.Equal(t, 2, sig.SlotCount())

	conn.Disconnect()
	assert.Equal(t, 1, sig.SlotCount())

	sig.Emit(10)
	assert.Equal(t, 1, first)
	assert.Equal(t, 11, second)
}

func TestDisconnectDuringDrainDoesNotRetractQueuedInvocation(t *testing.T) {
	sig := ant.NewSignal1[int]()

	var ran []string
	var connB *ant.Connection
	sig.Connect(func(v int) {
		ran = append(ran, "a")
		connB.Disconnect()
	})
	connB = sig.Connect(func(v int) {
		ran = append(ran, "b")
	})

	// b was already snapshotted when a disconnects it, so it still runs
	// this emission and is gone from the next.
	sig.Emit(0)
	assert.Equal(t, []string{"a", "b"}, ran)

	sig.Emit(0)
	assert.Equal(t, []string{"a", "b", "a"}, ran)
}

func TestConnectDuringEmitFiresFromNextEmission(t *testing.T) {
	sig := ant.NewSignal0()

	var ran []string
	sig.Connect(func() {
		ran = append(ran, "outer")
		if len(ran) == 1 {
			sig.Connect(func() {
				ran = append(ran, "late")
			})
		}
	})

	sig.Emit()
	assert.Equal(t, []string{"outer"}, ran)

	sig.Emit()
	assert.Equal(t, []string{"outer", "outer", "late"}, ran)
}

func TestDisconnectAllThenEmitInvokesNothing(t *testing.T) {
	sig := ant.NewSignal1[int]()

	calls := 0
	sig.Connect(func(int) { calls++ })
	sig.Connect(func(int) { calls++ })
	require.Equal(t, 2, sig.SlotCount())

	sig.DisconnectAll()
	assert.Equal(t, 0, sig.SlotCount())

	sig.Emit(1)
	assert.Equal(t, 0, calls)
}

func TestPanickingSlotDoesNotStopDelivery(t *testing.T) {
	sig := ant.NewSignal1[int]()

	var got []int
	sig.Connect(func(v int) {
		panic("subscriber blew up")
	})
	sig.Connect(func(v int) {
		got = append(got, v)
	})

	sig.Emit(1)
	sig.Emit(2)
	assert.Equal(t, []int{1, 2}, got)
}

func TestReentrantEmitRunsBreadthFirst(t *testing.T) {
	sig := ant.NewSignal1[int]()

	var order []string
	sig.Connect(func(v int) {
		order = append(order, fmt.Sprintf("A%d", v))
		if v == 1 {
			sig.Emit(2)
		}
	})
	sig.Connect(func(v int) {
		order = append(order, fmt.Sprintf("B%d", v))
	})

	sig.Emit(1)
	assert.Equal(t, []string{"A1", "B1", "A2", "B2"}, order)
}

func TestCrossInstanceEmissionsShareQueue(t *testing.T) {
	// Two signals of the same argument signature funnel through one shared
	// queue, so an emission on y triggered from inside x's dispatch is
	// appended behind x's remaining slots rather than run immediately.
	x := ant.NewSignal1[int]()
	y := ant.NewSignal1[int]()

	var order []string
	x.Connect(func(v int) {
		order = append(order, "xa")
		y.Emit(v)
	})
	x.Connect(func(v int) {
		order = append(order, "xb")
	})
	y.Connect(func(v int) {
		order = append(order, "y")
	})

	x.Emit(1)
	assert.Equal(t, []string{"xa", "xb", "y"}, order)
}

func TestDeepReentrantChainDoesNotRecurse(t *testing.T) {
	sig := ant.NewSignal1[int]()

	const depth = 100_000
	seen := 0
	sig.Connect(func(v int) {
		seen++
		if v < depth {
			sig.Emit(v + 1)
		}
	})

	// Queued dispatch keeps the call stack flat; native recursion this deep
	// with a growing frame would be a stack problem.
	sig.Emit(1)
	assert.Equal(t, depth, seen)
}

func TestOwnedSlotSkippedAfterOwnerRelease(t *testing.T) {
	type counter struct{ total int }

	sig := ant.NewSignal1[int]()
	owner := ant.NewHandle(&counter{})
	ant.ConnectOwned1(sig, owner, func(c *counter, v int) {
		c.total += v
	})

	sig.Emit(3)
	require.Equal(t, 3, owner.Value().total)

	c := owner.Value()
	owner.Release()
	sig.Emit(4)
	assert.Equal(t, 3, c.total)
}

func TestExpiredOwnerPrunedLazily(t *testing.T) {
	type observer struct{}

	sig := ant.NewSignal0()
	owner := ant.NewHandle(&observer{})
	ant.ConnectOwned0(sig, owner, func(*observer) {})
	sig.Connect(func() {})
	require.Equal(t, 2, sig.SlotCount())

	// SlotCount itself prunes, so the drop shows up without any emit or
	// connect in between.
	owner.Release()
	assert.Equal(t, 1, sig.SlotCount())
}

func TestConnectPrunesExpiredOwners(t *testing.T) {
	type observer struct{}

	sig := ant.NewSignal1[int]()
	owner := ant.NewHandle(&observer{})
	ant.ConnectOwned1(sig, owner, func(*observer, int) {})
	owner.Release()

	invoked := 0
	sig.Connect(func(int) { invoked++ })
	assert.Equal(t, 1, sig.SlotCount())

	sig.Emit(1)
	assert.Equal(t, 1, invoked)
}

func TestIdentifiersScopedPerInstance(t *testing.T) {
	// Two instances of the same signature hand out overlapping ids; the
	// removal closure is bound to one instance, so disconnecting on one
	// never touches the other.
	a := ant.NewSignal1[int]()
	b := ant.NewSignal1[int]()

	aCalls, bCalls := 0, 0
	connA := a.Connect(func(int) { aCalls++ })
	b.Connect(func(int) { bCalls++ })

	connA.Disconnect()
	assert.Equal(t, 0, a.SlotCount())
	assert.Equal(t, 1, b.SlotCount())

	b.Emit(1)
	assert.Equal(t, 0, aCalls)
	assert.Equal(t, 1, bCalls)
}

func TestSignal0RoundTrip(t *testing.T) {
	sig := ant.NewSignal0()

	fired := 0
	conn := sig.Connect(func() { fired++ })
	sig.Emit()
	sig.Emit()
	conn.Disconnect()
	sig.Emit()

	assert.Equal(t, 2, fired)
}

func TestSignal4PassesThrough(t *testing.T) {
	sig := ant.NewSignal4[int, int, int, int]()

	sum := 0
	sig.Connect(func(a, b, c, d int) {
		sum = a + b + c + d
	})
	sig.Emit(1, 2, 3, 4)
	assert.Equal(t, 10, sum)
}
