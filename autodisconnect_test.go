package ant_test

import (
	"testing"

	"github.com/rubenromani/ant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	ant.AutoDisconnect
	events []int
}

func (o *recordingObserver) watch(sigs ...*ant.Signal1[int]) {
	for _, sig := range sigs {
		o.AddConnection(sig.Connect(func(v int) {
			o.events = append(o.events, v)
		}))
	}
}

func TestAutoDisconnectSeversAllOnClose(t *testing.T) {
	a := ant.NewSignal1[int]()
	b := ant.NewSignal1[int]()

	obs := &recordingObserver{}
	obs.watch(a, b)

	a.Emit(1)
	b.Emit(2)
	require.Equal(t, []int{1, 2}, obs.events)

	obs.Close()
	assert.Equal(t, 0, a.SlotCount())
	assert.Equal(t, 0, b.SlotCount())

	a.Emit(3)
	b.Emit(4)
	assert.Equal(t, []int{1, 2}, obs.events)
}

func TestAutoDisconnectCloseIsIdempotent(t *testing.T) {
	sig := ant.NewSignal0()

	var ad ant.AutoDisconnect
	ad.AddConnection(sig.Connect(func() {}))
	ad.Close()
	ad.Close()
	assert.Equal(t, 0, sig.SlotCount())
}

func TestAutoDisconnectLeavesOtherSubscribersAlone(t *testing.T) {
	sig := ant.NewSignal1[int]()

	stay := 0
	sig.Connect(func(int) { stay++ })

	obs := &recordingObserver{}
	obs.watch(sig)
	require.Equal(t, 2, sig.SlotCount())

	obs.Close()
	sig.Emit(1)
	assert.Equal(t, 1, stay)
	assert.Empty(t, obs.events)
}

func TestAutoDisconnectAdoptsManuallyDisconnected(t *testing.T) {
	sig := ant.NewSignal0()

	var ad ant.AutoDisconnect
	conn := sig.Connect(func() {})
	ad.AddConnection(conn)

	conn.Disconnect()
	ad.Close()
	assert.Equal(t, 0, sig.SlotCount())
}
