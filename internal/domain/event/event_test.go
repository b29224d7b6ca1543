package event

import (
	"testing"
)

func TestEmitterDeliversInOrder(t *testing.T) {
	var e Emitter[int]
	var got []string

	e.Subscribe(func(v int) { got = append(got, "a") })
	e.Subscribe(func(v int) { got = append(got, "b") })
	e.Emit(1)

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("delivery order = %v, want [a b]", got)
	}
}

func TestUnsubscribeDetaches(t *testing.T) {
	var e Emitter[string]
	calls := 0
	sub := e.Subscribe(func(string) { calls++ })

	e.Emit("x")
	sub.Unsubscribe()
	sub.Unsubscribe()
	e.Emit("y")

	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	if e.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", e.Len())
	}
}

func TestUnsubscribeDuringEmit(t *testing.T) {
	var e Emitter[int]
	calls := 0
	var sub *Subscription
	sub = e.Subscribe(func(int) {
		calls++
		sub.Unsubscribe()
	})

	e.Emit(1)
	e.Emit(2)

	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestGroupDisposesAll(t *testing.T) {
	var e Emitter[int]
	var g Group
	calls := 0
	g.Add(e.Subscribe(func(int) { calls++ }), e.Subscribe(func(int) { calls++ }))

	g.Unsubscribe()
	g.Unsubscribe()
	e.Emit(1)

	if calls != 0 {
		t.Fatalf("calls = %d, want 0", calls)
	}
}

func TestNilSubscription(t *testing.T) {
	var sub *Subscription
	sub.Unsubscribe()
	NewSubscription(nil).Unsubscribe()
}
