package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(WaveEnded, a)
	d.Subscribe(WaveEnded, b)
	d.Subscribe(GameOver, a)

	d.Dispatch(Event{Type: WaveEnded, Data: WavePayload{Number: 2, Bonus: 5}})

	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 1)
	assert.Equal(t, WavePayload{Number: 2, Bonus: 5}, a.got[0].Data)
}

func TestDispatchWithoutSubscribers(t *testing.T) {
	d := NewDispatcher()
	assert.NotPanics(t, func() {
		d.Dispatch(Event{Type: StateChanged})
	})
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(StateChanged, r)
	d.Unsubscribe(StateChanged, r)
	d.Unsubscribe(StateChanged, r) // double unsubscribe is safe

	d.Dispatch(Event{Type: StateChanged})
	assert.Empty(t, r.got)
}
