package recency

import "testing"

func TestVictimInsertionOrder(t *testing.T) {
	t.Parallel()

	idx := New()
	idx.Register("a")
	idx.Register("b")
	idx.Register("c")

	// Never-touched keys are evicted oldest-registered first.
	for _, want := range []string{"a", "b", "c"} {
		key, ok := idx.Victim()
		if !ok {
			t.Fatal("Victim() ok = false, want true")
		}
		if key != want {
			t.Fatalf("Victim() = %q, want %q", key, want)
		}
		idx.Forget(key)
	}

	if _, ok := idx.Victim(); ok {
		t.Fatal("Victim() on empty index ok = true, want false")
	}
}

func TestTouchReorders(t *testing.T) {
	t.Parallel()

	idx := New()
	idx.Register("a")
	idx.Register("b")
	idx.Register("c")

	if !idx.Touch("a") {
		t.Fatal("Touch(a) = false, want true")
	}

	key, _ := idx.Victim()
	if key != "b" {
		t.Fatalf("Victim() after touching a = %q, want %q", key, "b")
	}
}

func TestTouchUntracked(t *testing.T) {
	t.Parallel()

	idx := New()
	if idx.Touch("ghost") {
		t.Fatal("Touch() on untracked key = true, want false")
	}
	if idx.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", idx.Len())
	}
}

func TestRegisterTrackedRefreshes(t *testing.T) {
	t.Parallel()

	idx := New()
	idx.Register("a")
	idx.Register("b")
	idx.Register("a")

	if idx.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", idx.Len())
	}
	key, _ := idx.Victim()
	if key != "b" {
		t.Fatalf("Victim() = %q, want %q", key, "b")
	}
}

func TestForget(t *testing.T) {
	t.Parallel()

	idx := New()
	idx.Register("a")
	idx.Register("b")

	if !idx.Forget("a") {
		t.Fatal("Forget(a) = false, want true")
	}
	if idx.Forget("a") {
		t.Fatal("Forget(a) twice = true, want false")
	}

	key, _ := idx.Victim()
	if key != "b" {
		t.Fatalf("Victim() = %q, want %q", key, "b")
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	idx := New()
	idx.Register("a")
	idx.Register("b")
	idx.Clear()

	if idx.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", idx.Len())
	}
	if _, ok := idx.Victim(); ok {
		t.Fatal("Victim() after Clear ok = true, want false")
	}

	idx.Register("c")
	key, _ := idx.Victim()
	if key != "c" {
		t.Fatalf("Victim() = %q, want %q", key, "c")
	}
}
