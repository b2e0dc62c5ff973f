package textq

import (
	"strings"
	"testing"
)

func TestPushPopFIFO(t *testing.T) {
	var q Queue
	q.Push("one", 1, 10)
	q.Push("two", 1, 20)

	u, ok := q.Pop()
	if !ok || u.Text != "one" || u.ColorIndex != 10 {
		t.Fatalf("first pop = %+v, %v", u, ok)
	}
	u, ok = q.Pop()
	if !ok || u.Text != "two" || u.ColorIndex != 20 {
		t.Fatalf("second pop = %+v, %v", u, ok)
	}
	if _, ok := q.Pop(); ok {
		t.Error("pop of empty queue should fail")
	}
}

func TestPushFull(t *testing.T) {
	var q Queue
	for i := 0; i < Capacity-1; i++ {
		if !q.Push("x", 1, 0) {
			t.Fatalf("push %d failed before capacity", i)
		}
	}
	if q.Push("overflow", 1, 0) {
		t.Error("push into full queue should fail")
	}
	if got := q.Len(); got != Capacity-1 {
		t.Errorf("failed push changed length: %d", got)
	}
	u, _ := q.Pop()
	if u.Text != "x" {
		t.Error("failed push corrupted contents")
	}
}

func TestPushRejectsBadText(t *testing.T) {
	var q Queue
	if q.Push("", 1, 0) {
		t.Error("empty text accepted")
	}
	if q.Push(strings.Repeat("a", MaxTextLen+1), 1, 0) {
		t.Error("oversized text accepted")
	}
	if !q.Empty() {
		t.Error("rejected pushes left residue")
	}
}

func TestRepeatDrain(t *testing.T) {
	var q Queue
	q.Push("hello", 3, 64)

	for i := 0; i < 3; i++ {
		u, ok := q.Pop()
		if !ok {
			t.Fatalf("pop %d failed", i)
		}
		if u.Text != "hello" || u.ColorIndex != 64 {
			t.Errorf("pop %d = %+v, text/color not preserved", i, u)
		}
		if want := uint8(3 - i); u.Repeat != want {
			t.Errorf("pop %d repeat = %d, want %d", i, u.Repeat, want)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Error("unit with repeat=3 produced a fourth pop")
	}
}

func TestRepeatKeepsQueueOrder(t *testing.T) {
	var q Queue
	q.Push("a", 2, 0)
	q.Push("b", 1, 0)

	got := []string{}
	for {
		u, ok := q.Pop()
		if !ok {
			break
		}
		got = append(got, u.Text)
	}
	want := []string{"a", "b", "a"}
	if len(got) != len(want) {
		t.Fatalf("drained %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("drained %v, want %v", got, want)
		}
	}
}

func TestSkipSpent(t *testing.T) {
	var q Queue
	q.Push("spent", 0, 0)
	q.Push("live", 1, 0)

	if got := q.Len(); got != 1 {
		t.Errorf("Len = %d, spent head should be skipped", got)
	}
	u, ok := q.Pop()
	if !ok || u.Text != "live" {
		t.Errorf("pop = %+v, %v; spent unit surfaced", u, ok)
	}

	q.Push("only-spent", 0, 0)
	if !q.Empty() {
		t.Error("queue holding only a spent unit should read empty")
	}
}
