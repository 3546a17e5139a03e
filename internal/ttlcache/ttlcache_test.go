package ttlcache

import (
	"testing"
	"time"
)

func TestGetSet(t *testing.T) {
	c := New[int](time.Minute)

	if _, ok := c.Get("a"); ok {
		t.Fatal("expected miss on empty cache")
	}

	c.Set("a", 7)
	got, ok := c.Get("a")
	if !ok {
		t.Fatal("expected hit after set")
	}
	if got != 7 {
		t.Errorf("Get(a) = %d, want 7", got)
	}
}

func TestExpiry(t *testing.T) {
	c := New[string](10 * time.Millisecond)
	c.Set("a", "x")

	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("a"); ok {
		t.Error("expected expired entry to miss")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after expired read", c.Len())
	}
}

func TestClear(t *testing.T) {
	c := New[int](time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after clear", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Error("expected miss after clear")
	}
}
