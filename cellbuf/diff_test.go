package cellbuf

import "testing"

func TestDiffEmptyOnIdenticalFrames(t *testing.T) {
	b := New(10, 4)
	b.SetString(0, 0, "hello", Style{})
	b.Swap()
	b.SetString(0, 0, "hello", Style{})

	updates := b.Diff()
	if len(updates) != 0 {
		t.Fatalf("expected zero updates for identical frames, got %d", len(updates))
	}
}

func TestDiffReportsChangedCellsOnly(t *testing.T) {
	b := New(10, 1)
	b.SetString(0, 0, "aaaa", Style{})
	b.Swap()
	b.SetString(0, 0, "aaba", Style{})

	updates := b.Diff()
	if len(updates) != 1 {
		t.Fatalf("expected exactly 1 changed cell, got %d", len(updates))
	}
	if updates[0].X != 2 || updates[0].Cell.Rune != 'b' {
		t.Fatalf("unexpected update: %+v", updates[0])
	}
}

func TestDiffSkipsWideCharContinuationCells(t *testing.T) {
	b := New(10, 1)
	b.Set(0, 0, '世', Style{}) // wide rune, occupies columns 0 and 1
	updates := b.Diff()

	for _, u := range updates {
		if u.Cell.Width == 0 {
			t.Fatalf("continuation cell should never appear in a diff: %+v", u)
		}
	}
}

func TestResizeForcesFullRepaint(t *testing.T) {
	b := New(4, 4)
	b.SetString(0, 0, "ab", Style{})
	b.Swap()
	b.Resize(5, 5)

	updates := b.Diff()
	if len(updates) == 0 {
		t.Fatal("resize should force every surviving cell to be reported as changed")
	}
}
