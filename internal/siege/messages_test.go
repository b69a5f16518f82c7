package siege

import (
	"strings"
	"testing"
)

// rowText reads a trimmed row of the grid.
func rowText(st *State, y int) string {
	return strings.TrimRight(st.Snapshot().Row(y), " ")
}

func TestAnnounceWritesAtCursor(t *testing.T) {
	st := newTestState(40, 24, nil, 5)

	if !st.Announce("first message") {
		t.Fatal("Announce() returned false on an empty field")
	}
	if got := rowText(st, FieldTop); got != "first message" {
		t.Errorf("row %d = %q, expected %q", FieldTop, got, "first message")
	}
}

func TestAnnounceLeavesBlankLine(t *testing.T) {
	st := newTestState(40, 24, nil, 5)

	st.Announce("first")
	st.Announce("second")

	if got := rowText(st, 2); got != "first" {
		t.Errorf("row 2 = %q, expected %q", got, "first")
	}
	if got := rowText(st, 3); got != "" {
		t.Errorf("row 3 = %q, expected blank separator", got)
	}
	if got := rowText(st, 4); got != "second" {
		t.Errorf("row 4 = %q, expected %q", got, "second")
	}
}

func TestAnnounceWraps(t *testing.T) {
	st := newTestState(10, 24, nil, 5)

	text := "abcdefghijklmnopqrstuvwxy" // 25 runes across a 10-wide field
	if !st.Announce(text) {
		t.Fatal("Announce() returned false")
	}

	if got := rowText(st, 2); got != "abcdefghij" {
		t.Errorf("row 2 = %q", got)
	}
	if got := rowText(st, 3); got != "klmnopqrst" {
		t.Errorf("row 3 = %q", got)
	}
	if got := rowText(st, 4); got != "uvwxy" {
		t.Errorf("row 4 = %q", got)
	}
}

func TestAnnounceAtFixedRow(t *testing.T) {
	st := newTestState(60, 24, nil, 5)

	if !st.AnnounceAt("banner text", 0) {
		t.Fatal("AnnounceAt() returned false")
	}
	if got := rowText(st, 0); got != "banner text" {
		t.Errorf("row 0 = %q, expected %q", got, "banner text")
	}

	// The running cursor did not move: the next announcement still lands
	// in the status area.
	st.Announce("status")
	if got := rowText(st, FieldTop); got != "status" {
		t.Errorf("row %d = %q, expected %q", FieldTop, got, "status")
	}
}

func TestAnnounceRetriesFromTop(t *testing.T) {
	st := newTestState(20, 6, nil, 5)

	// Walk the cursor to the bottom of the tiny field.
	st.Announce("one")
	st.Announce("two")
	st.Announce("three")

	// The cursor zone is exhausted; the next message must restart near
	// the top instead of vanishing.
	if !st.Announce("again") {
		t.Fatal("Announce() returned false, expected retry from the top")
	}

	found := false
	for y := 0; y < 6; y++ {
		if strings.Contains(rowText(st, y), "again") {
			found = true
			break
		}
	}
	if !found {
		t.Error("retried message not found anywhere on the field")
	}
}

func TestAnnounceTooTall(t *testing.T) {
	st := newTestState(4, 3, nil, 5)

	// 40 runes need 10 rows of a 3-row field, from any start.
	if st.Announce(strings.Repeat("x", 40)) {
		t.Error("Announce() = true for a message that cannot fit")
	}
}

func TestAnnounceSkipsOccupiedRows(t *testing.T) {
	st := newTestState(40, 24, nil, 5)

	// Occupy the cursor row directly.
	st.mu.Lock()
	st.screen.Set(0, FieldTop, 'X')
	st.mu.Unlock()

	st.Announce("shifted")

	if got := rowText(st, FieldTop); strings.Contains(got, "shifted") {
		t.Error("message overwrote an occupied row")
	}
	found := false
	for y := FieldTop + 1; y < 24; y++ {
		if rowText(st, y) == "shifted" {
			found = true
			break
		}
	}
	if !found {
		t.Error("message not written below the occupied row")
	}
}
