package store

import (
	"sync"
	"testing"
	"time"

	"github.com/amonks/devflow/task"
)

func TestStore_DispatchUsesClock(t *testing.T) {
	s := New(Seed(), WithClock(func() time.Time { return testNow }))
	st := s.Dispatch(UnlockAchievement{ID: "3"})

	a, _ := st.Achievement("3")
	if a.UnlockedAt == nil || !a.UnlockedAt.Equal(testNow) {
		t.Fatalf("expected unlock at %v, got %v", testNow, a.UnlockedAt)
	}
	if snap, _ := s.Snapshot().Achievement("3"); !snap.IsUnlocked {
		t.Fatal("snapshot does not reflect dispatch")
	}
}

func TestStore_DispatchFuncSkipsNil(t *testing.T) {
	s := New(Seed())
	calls := 0
	unsubscribe := s.Subscribe(func(State) { calls++ })
	defer unsubscribe()

	_, applied := s.DispatchFunc(func(st State) Action {
		if st.Pomodoro.Active {
			return TickPomodoro{}
		}
		return nil
	})
	if applied {
		t.Fatal("expected nothing to be applied")
	}
	if calls != 0 {
		t.Fatalf("expected no notifications, got %d", calls)
	}

	st, applied := s.DispatchFunc(func(State) Action { return StartPomodoro{} })
	if !applied || !st.Pomodoro.Active {
		t.Fatalf("expected start to apply, got %+v", st.Pomodoro)
	}
	if calls != 1 {
		t.Fatalf("expected one notification, got %d", calls)
	}
}

func TestStore_SubscribeAndUnsubscribe(t *testing.T) {
	s := New(Empty())
	var seen []string
	unsubscribe := s.Subscribe(func(st State) {
		seen = append(seen, st.SearchQuery)
	})

	s.Dispatch(SetSearchQuery{Query: "a"})
	s.Dispatch(SetSearchQuery{Query: "b"})
	unsubscribe()
	unsubscribe()
	s.Dispatch(SetSearchQuery{Query: "c"})

	if len(seen) != 2 || seen[0] != "a" || seen[1] != "b" {
		t.Fatalf("unexpected notifications: %v", seen)
	}
}

func TestStore_SubscribeLatestKeepsNewestState(t *testing.T) {
	s := New(Empty())
	updates, unsubscribe := s.SubscribeLatest()
	defer unsubscribe()

	s.Dispatch(SetSearchQuery{Query: "a"})
	s.Dispatch(SetSearchQuery{Query: "b"})

	select {
	case st := <-updates:
		if st.SearchQuery != "b" {
			t.Fatalf("expected latest state, got %q", st.SearchQuery)
		}
	default:
		t.Fatal("expected a pending state")
	}
	select {
	case st := <-updates:
		t.Fatalf("expected older states to be dropped, got %q", st.SearchQuery)
	default:
	}
}

func TestStore_ConcurrentDispatchesAreSerialized(t *testing.T) {
	s := New(Empty())
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Dispatch(AddTask{Task: task.Task{ID: string(rune('a' + i%26)), Title: "t"}})
			s.Dispatch(TickPomodoro{})
		}(i)
	}
	wg.Wait()

	st := s.Snapshot()
	if len(st.Tasks) != 50 {
		t.Fatalf("expected 50 tasks, got %d", len(st.Tasks))
	}
	if st.Pomodoro.TimeRemaining != PomodoroDuration-50 {
		t.Fatalf("expected %d remaining, got %d", PomodoroDuration-50, st.Pomodoro.TimeRemaining)
	}
}
