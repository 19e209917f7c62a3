package ant_test

import (
	"testing"

	"github.com/rubenromani/ant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisconnectIsIdempotent(t *testing.T) {
	sig := ant.NewSignal1[int]()

	calls := 0
	conn := sig.Connect(func(int) { calls++ })
	other := sig.Connect(func(int) { calls++ })
	require.True(t, conn.Connected())

	conn.Disconnect()
	conn.Disconnect()
	conn.Disconnect()

	assert.False(t, conn.Connected())
	assert.Equal(t, 1, sig.SlotCount())
	assert.True(t, other.Connected())

	sig.Emit(1)
	assert.Equal(t, 1, calls)
}

func TestZeroValueConnectionDisconnectIsNoOp(t *testing.T) {
	var conn ant.Connection
	assert.False(t, conn.Connected())
	conn.Disconnect()
	conn.Disconnect()
}

func TestNilConnectionDisconnectIsNoOp(t *testing.T) {
	var conn *ant.Connection
	assert.False(t, conn.Connected())
	conn.Disconnect()
}

func TestDisconnectAfterDisconnectAll(t *testing.T) {
	sig := ant.NewSignal0()
	conn := sig.Connect(func() {})

	// The removal closure tolerates the slot already being gone.
	sig.DisconnectAll()
	conn.Disconnect()
	assert.Equal(t, 0, sig.SlotCount())
}

func TestDisconnectOutlivesSignalScope(t *testing.T) {
	conn := func() *ant.Connection {
		sig := ant.NewSignal1[string]()
		return sig.Connect(func(string) {})
	}()

	// The closure is self-contained; nothing dangles once the signal is
	// out of reach.
	conn.Disconnect()
	assert.False(t, conn.Connected())
}

func TestDisconnectRemovesOnlyItsOwnSlot(t *testing.T) {
	sig := ant.NewSignal1[int]()

	var got []int
	sig.Connect(func(v int) { got = append(got, v*1) })
	mid := sig.Connect(func(v int) { got = append(got, v*2) })
	sig.Connect(func(v int) { got = append(got, v*3) })

	mid.Disconnect()
	sig.Emit(10)
	assert.Equal(t, []int{10, 30}, got)
}
