package cache

import (
	"sync"
	"testing"
	"time"
)

func TestGetSet(t *testing.T) {
	c := New(time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Fatal("missing key should not be found")
	}

	c.Set("news_articles.category", []string{"markets", "crypto"})
	v, ok := c.Get("news_articles.category")
	if !ok {
		t.Fatal("key should be found after Set")
	}
	if values := v.([]string); len(values) != 2 {
		t.Fatalf("unexpected cached value %v", values)
	}
}

func TestExpiry(t *testing.T) {
	c := New(10 * time.Millisecond)
	c.Set("k", "v")

	time.Sleep(25 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatal("entry should have expired")
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New(time.Minute)
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Set("shared", "value")
		}()
		go func() {
			defer wg.Done()
			c.Get("shared")
		}()
	}
	wg.Wait()

	if v, ok := c.Get("shared"); !ok || v != "value" {
		t.Fatalf("expected value after concurrent writes, got %v (%v)", v, ok)
	}
}
