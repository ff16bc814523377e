package pane

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestRefreshListsAndSorts(t *testing.T) {
	dir := t.TempDir()

	os.WriteFile(filepath.Join(dir, "zebra.txt"), nil, 0o644)
	os.WriteFile(filepath.Join(dir, "apple"), nil, 0o644)
	os.Mkdir(filepath.Join(dir, "sub"), 0o755)
	os.Mkdir(filepath.Join(dir, "Alpha"), 0o755)

	p := New(dir)
	if err := p.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	want := []string{"..", "Alpha", "sub", "apple", "zebra.txt"}
	if len(p.Entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(p.Entries), len(want))
	}
	for i, name := range want {
		if p.Entries[i].Name != name {
			t.Errorf("entry %d = %q, want %q", i, p.Entries[i].Name, name)
		}
	}

	// Folders before non-folders, names case-sensitive within each class
	for i := 0; i+1 < len(p.Entries); i++ {
		a, b := p.Entries[i], p.Entries[i+1]
		aDir := a.Kind == KindFolder
		bDir := b.Kind == KindFolder
		if !aDir && bDir {
			t.Errorf("folder %q sorted after non-folder %q", b.Name, a.Name)
		}
		if aDir == bDir && a.Name >= b.Name {
			t.Errorf("entries %q and %q out of order", a.Name, b.Name)
		}
	}
}

func TestRefreshSkipsDot(t *testing.T) {
	dir := t.TempDir()
	p := New(dir)
	if err := p.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	for _, e := range p.Entries {
		if e.Name == "." {
			t.Error("listing contains \".\"")
		}
	}
}

func TestRefreshEmptyDirHasOnlyParent(t *testing.T) {
	dir := t.TempDir()
	p := New(dir)
	if err := p.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if len(p.Entries) != 1 || p.Entries[0].Name != ".." {
		t.Fatalf("got %v, want just [..]", p.Entries)
	}
	if p.Entries[0].Kind != KindFolder {
		t.Errorf("\"..\" classified as %v, want KindFolder", p.Entries[0].Kind)
	}
}

func TestRefreshRootHasNoParent(t *testing.T) {
	p := New("/")
	if err := p.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	for _, e := range p.Entries {
		if e.Name == ".." {
			t.Error("root listing contains \"..\"")
		}
	}
}

func TestRefreshUnreadableKeepsListing(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "keep"), nil, 0o644)

	p := New(dir)
	if err := p.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	before := len(p.Entries)

	p.Dir = filepath.Join(dir, "does-not-exist")
	if err := p.Refresh(); err == nil {
		t.Fatal("expected error for missing directory")
	}
	if len(p.Entries) != before {
		t.Errorf("listing changed on failed refresh: %d -> %d", before, len(p.Entries))
	}
}

func TestRefreshClampsCursor(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		os.WriteFile(filepath.Join(dir, fmt.Sprintf("f%d", i)), nil, 0o644)
	}

	p := New(dir)
	p.Refresh()
	p.Selected = len(p.Entries) - 1

	// Shrink the directory; the cursor must clamp, not reset
	for i := 0; i < 5; i++ {
		os.Remove(filepath.Join(dir, fmt.Sprintf("f%d", i)))
	}
	p.Refresh()

	if p.Selected != len(p.Entries)-1 {
		t.Errorf("Selected = %d after shrink, want %d", p.Selected, len(p.Entries)-1)
	}
	if p.ScrollOffset > p.Selected {
		t.Errorf("ScrollOffset %d > Selected %d", p.ScrollOffset, p.Selected)
	}
}

func TestRefreshCapsEntries(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < MaxEntries+10; i++ {
		if err := os.WriteFile(filepath.Join(dir, fmt.Sprintf("f%05d", i)), nil, 0o644); err != nil {
			t.Fatalf("fixture: %v", err)
		}
	}

	p := New(dir)
	if err := p.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if len(p.Entries) != MaxEntries {
		t.Errorf("got %d entries, want cap of %d", len(p.Entries), MaxEntries)
	}
	if !p.Truncated {
		t.Error("Truncated not set after hitting the cap")
	}
}

func TestMoveCursorClamps(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "a"), nil, 0o644)
	os.WriteFile(filepath.Join(dir, "b"), nil, 0o644)

	p := New(dir)
	p.Refresh()

	p.MoveCursor(-10)
	if p.Selected != 0 {
		t.Errorf("Selected = %d after big move up, want 0", p.Selected)
	}
	p.MoveCursor(100)
	if p.Selected != len(p.Entries)-1 {
		t.Errorf("Selected = %d after big move down, want %d", p.Selected, len(p.Entries)-1)
	}
}

func TestMoveCursorEmptyPane(t *testing.T) {
	p := New("/nowhere")
	p.MoveCursor(1)
	p.MoveCursor(-1)
	if p.Selected != 0 || p.ScrollOffset != 0 {
		t.Errorf("empty pane moved: selected=%d scroll=%d", p.Selected, p.ScrollOffset)
	}
}

func TestReconcileScroll(t *testing.T) {
	p := &Pane{Entries: make([]Entry, 50)}

	p.Selected = 30
	p.ReconcileScroll(10)
	if p.ScrollOffset != 21 {
		t.Errorf("ScrollOffset = %d, want 21", p.ScrollOffset)
	}

	// Idempotent
	p.ReconcileScroll(10)
	if p.ScrollOffset != 21 {
		t.Errorf("second reconcile moved offset to %d", p.ScrollOffset)
	}

	// Cursor above the window pulls the window up
	p.Selected = 5
	p.ReconcileScroll(10)
	if p.ScrollOffset != 5 {
		t.Errorf("ScrollOffset = %d, want 5", p.ScrollOffset)
	}

	// Invariant: offset <= selected < offset+rows
	if p.Selected < p.ScrollOffset || p.Selected >= p.ScrollOffset+10 {
		t.Errorf("selection %d outside window [%d,%d)", p.Selected, p.ScrollOffset, p.ScrollOffset+10)
	}
}

func TestCurrentAndSelectedPath(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "file.txt"), nil, 0o644)

	p := New(dir)
	p.Refresh()

	p.Selected = 1 // past ".."
	e, ok := p.Current()
	if !ok || e.Name != "file.txt" {
		t.Fatalf("Current() = %v, %v", e, ok)
	}
	path, ok := p.SelectedPath()
	if !ok || path != filepath.Join(dir, "file.txt") {
		t.Fatalf("SelectedPath() = %q, %v", path, ok)
	}

	empty := New(dir)
	if _, ok := empty.Current(); ok {
		t.Error("Current() on empty listing reported ok")
	}
}
