package auth

import "testing"

func TestHub_PublishReachesAllSubscribersForUser(t *testing.T) {
	t.Parallel()

	h := NewHub()
	a := h.Subscribe("u1")
	b := h.Subscribe("u1")
	other := h.Subscribe("u2")
	defer a.Release()
	defer b.Release()
	defer other.Release()

	h.Publish(Event{Type: SignedOut, UserID: "u1"})

	for _, sub := range []*Subscription{a, b} {
		select {
		case ev := <-sub.C:
			if ev.Type != SignedOut || ev.UserID != "u1" {
				t.Fatalf("unexpected event %+v", ev)
			}
		default:
			t.Fatalf("subscriber missed the event")
		}
	}
	select {
	case ev := <-other.C:
		t.Fatalf("u2 subscriber got u1's event: %+v", ev)
	default:
	}
}

func TestHub_ReleaseIsRefCountedAndIdempotent(t *testing.T) {
	t.Parallel()

	h := NewHub()
	a := h.Subscribe("u1")
	b := h.Subscribe("u1")

	if n := h.Subscribers("u1"); n != 2 {
		t.Fatalf("subscribers=%d, want 2", n)
	}
	a.Release()
	a.Release() // double release must be safe
	if n := h.Subscribers("u1"); n != 1 {
		t.Fatalf("subscribers=%d after one release, want 1", n)
	}
	b.Release()
	if n := h.Subscribers("u1"); n != 0 {
		t.Fatalf("subscribers=%d after full release, want 0", n)
	}

	// publishing to a fully released user is a no-op
	h.Publish(Event{Type: SignedIn, UserID: "u1"})

	// the released channel is closed
	if _, open := <-a.C; open {
		t.Fatalf("released subscription channel still open")
	}
}

func TestHub_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	t.Parallel()

	h := NewHub()
	s := h.Subscribe("u1")
	defer s.Release()

	// overfill the buffer; Publish must return without blocking
	for i := 0; i < 2*cap(s.C); i++ {
		h.Publish(Event{Type: SignedIn, UserID: "u1"})
	}
	if len(s.C) != cap(s.C) {
		t.Fatalf("buffered=%d, want full buffer %d", len(s.C), cap(s.C))
	}
}
