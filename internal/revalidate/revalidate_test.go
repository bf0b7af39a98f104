package revalidate

import "testing"

func TestNotifier_FanOut(t *testing.T) {
	n := NewNotifier()

	var first, second []string
	n.Subscribe(func(route string) { first = append(first, route) })
	n.Subscribe(func(route string) { second = append(second, route) })

	n.Invalidate("/admin/news")
	n.Invalidate("/admin/announcements")

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("both subscribers should see both routes: %v / %v", first, second)
	}
	if first[0] != "/admin/news" || second[1] != "/admin/announcements" {
		t.Fatalf("unexpected routes: %v / %v", first, second)
	}
}

func TestNotifier_NoSubscribers(t *testing.T) {
	n := NewNotifier()
	// Must not panic.
	n.Invalidate("/admin/symbols")
}
