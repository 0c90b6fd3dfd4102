package folderdrop

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected and returns what was written.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestDebugMode_LogsDrops(t *testing.T) {
	w := newTestBoard(t)
	w.SetDebugMode(true)

	output := captureStderr(t, func() {
		dropOn(w, Vec2{0, -200}, Vec2{0, 300})    // out of order
		dropOn(w, Vec2{250, 0}, Vec2{0, 300})     // wrong container
		dropOn(w, Vec2{-250, -200}, Vec2{0, 300}) // accepted
	})

	for _, want := range []string{
		"item 1 rejected: container 0 expects item 0 next",
		"item 3 rejected: wrong container 0",
		"item 0 inserted into container 0",
		"drag-start",
		"interaction:",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in stderr, got: %q", want, output)
		}
	}
}

func TestDebugMode_OffIsSilent(t *testing.T) {
	w := newTestBoard(t)
	output := captureStderr(t, func() {
		dropOn(w, Vec2{0, -200}, Vec2{0, 300})
	})
	if output != "" {
		t.Errorf("expected no stderr output, got: %q", output)
	}
}

func TestDebugMode_MustItemPanicsOnInserted(t *testing.T) {
	w := newTestBoard(t)
	w.SetDebugMode(true)
	h, _ := w.ItemByID(0)
	captureStderr(t, func() {
		dropOn(w, Vec2{-250, -200}, Vec2{0, 300})
	})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on MustItem with inserted item, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "inserted") {
			t.Errorf("panic message should mention 'inserted', got: %s", msg)
		}
	}()
	w.MustItem(h)
}

func TestDebugMode_MustItemPanicsOnUnknown(t *testing.T) {
	w := NewWorld()
	w.SetDebugMode(true)

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on unknown handle")
		}
	}()
	w.MustItem(42)
}

func TestMustItem_ReleaseModeReturnsZero(t *testing.T) {
	w := NewWorld()
	if it := w.MustItem(3); it != (Item{}) {
		t.Errorf("MustItem in release mode = %+v, want zero Item", it)
	}
}
