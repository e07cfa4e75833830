package report

import (
	"fmt"
	"sync"
	"testing"

	"github.com/siddharth-labs/astro-report-api/internal/models"
)

func TestStore_EmptyGet(t *testing.T) {
	s := NewStore()

	if r, ok := s.Get("any-session"); ok || r != nil {
		t.Errorf("Get on empty store = (%v, %v), want (nil, false)", r, ok)
	}
	if r, ok := s.Get(""); ok || r != nil {
		t.Errorf("Get with blank session on empty store = (%v, %v), want (nil, false)", r, ok)
	}
}

func TestStore_PutGet(t *testing.T) {
	s := NewStore()
	r := &models.Report{Name: "Asha", Prediction: "text"}

	s.Put("sess-1", r)

	got, ok := s.Get("sess-1")
	if !ok || got != r {
		t.Fatalf("Get = (%v, %v), want the stored report", got, ok)
	}
}

func TestStore_LastWriteWins(t *testing.T) {
	s := NewStore()
	first := &models.Report{Name: "First"}
	second := &models.Report{Name: "Second"}

	s.Put("sess-1", first)
	s.Put("sess-1", second)

	got, _ := s.Get("sess-1")
	if got != second {
		t.Errorf("Get = %v, want the second (latest) report", got.Name)
	}
}

// TestStore_SessionIsolation: two sessions see their own reports, not each
// other's — the design improvement over the original global slot.
func TestStore_SessionIsolation(t *testing.T) {
	s := NewStore()
	asha := &models.Report{Name: "Asha"}
	ravi := &models.Report{Name: "Ravi"}

	s.Put("sess-asha", asha)
	s.Put("sess-ravi", ravi)

	if got, _ := s.Get("sess-asha"); got != asha {
		t.Errorf("session asha got %v", got.Name)
	}
	if got, _ := s.Get("sess-ravi"); got != ravi {
		t.Errorf("session ravi got %v", got.Name)
	}
}

// TestStore_GetSessionNoFallback: the session-only lookup never leaks the
// globally last report to a session that has not submitted anything.
func TestStore_GetSessionNoFallback(t *testing.T) {
	s := NewStore()
	asha := &models.Report{Name: "Asha"}
	s.Put("sess-asha", asha)

	if r, ok := s.GetSession("sess-other"); ok || r != nil {
		t.Errorf("GetSession(other) = (%v, %v), want (nil, false)", r, ok)
	}
	if r, ok := s.GetSession(""); ok || r != nil {
		t.Errorf("GetSession(blank) = (%v, %v), want (nil, false)", r, ok)
	}
	if got, ok := s.GetSession("sess-asha"); !ok || got != asha {
		t.Errorf("GetSession(own) = (%v, %v), want the stored report", got, ok)
	}
}

// TestStore_GlobalFallback: an unknown session still gets the most recent
// report, preserving the original last-report behavior.
func TestStore_GlobalFallback(t *testing.T) {
	s := NewStore()
	latest := &models.Report{Name: "Latest"}

	s.Put("sess-1", &models.Report{Name: "Older"})
	s.Put("sess-2", latest)

	if got, ok := s.Get("unknown-session"); !ok || got != latest {
		t.Errorf("Get(unknown) = (%v, %v), want the globally last report", got, ok)
	}
	if got, ok := s.Get(""); !ok || got != latest {
		t.Errorf("Get(blank) = (%v, %v), want the globally last report", got, ok)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			sess := fmt.Sprintf("sess-%d", n%5)
			s.Put(sess, &models.Report{Name: sess})
		}(i)
		go func(n int) {
			defer wg.Done()
			s.Get(fmt.Sprintf("sess-%d", n%5))
		}(i)
	}
	wg.Wait()

	if _, ok := s.Get(""); !ok {
		t.Error("store should hold a report after concurrent writes")
	}
}
