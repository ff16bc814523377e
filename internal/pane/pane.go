package pane

import (
	"os"
	"path/filepath"
	"sort"
)

// MaxEntries caps how many entries a single refresh will keep. Overflow is
// dropped without error; Truncated records that it happened.
const MaxEntries = 4096

// Pane is one directory view: a working directory, its sorted listing, a
// cursor and a scroll offset. It is owned by the controller and never
// shared across goroutines.
type Pane struct {
	Dir          string
	Entries      []Entry
	Selected     int
	ScrollOffset int
	Truncated    bool
}

// New returns a pane rooted at dir with an empty listing.
func New(dir string) *Pane {
	return &Pane{Dir: dir}
}

// Refresh re-enumerates Dir and replaces the listing: "." is skipped, a
// ".." pseudo-entry is added unless Dir is the filesystem root, each entry
// is classified via stat (stat failures classify as KindOther but keep the
// entry), and the result is sorted folders-first, then case-sensitive
// lexicographic by name. If the directory cannot be read the previous
// listing is kept and the error is returned for logging; the caller shows
// nothing.
func (p *Pane) Refresh() error {
	dirents, err := os.ReadDir(p.Dir)
	if err != nil {
		return err
	}

	entries := make([]Entry, 0, len(dirents)+1)
	if filepath.Dir(p.Dir) != p.Dir {
		entries = append(entries, Entry{Name: "..", Kind: KindFolder})
	}

	p.Truncated = false
	for _, d := range dirents {
		if d.Name() == "." {
			continue
		}
		if len(entries) >= MaxEntries {
			p.Truncated = true
			break
		}
		kind := KindOther
		if info, err := os.Stat(filepath.Join(p.Dir, d.Name())); err == nil {
			kind = Classify(d.Name(), info.Mode())
		}
		entries = append(entries, Entry{Name: d.Name(), Kind: kind})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if (a.Kind == KindFolder) != (b.Kind == KindFolder) {
			return a.Kind == KindFolder
		}
		return a.Name < b.Name
	})

	p.Entries = entries
	p.clamp()
	return nil
}

// MoveCursor moves the selection by delta, clamped to the listing.
func (p *Pane) MoveCursor(delta int) {
	if len(p.Entries) == 0 {
		return
	}
	p.Selected += delta
	p.clamp()
}

// ResetView puts the cursor and scroll back to the top.
func (p *Pane) ResetView() {
	p.Selected = 0
	p.ScrollOffset = 0
}

// ReconcileScroll adjusts ScrollOffset so the selection falls inside a
// window of visibleRows rows. Idempotent.
func (p *Pane) ReconcileScroll(visibleRows int) {
	if visibleRows < 1 {
		visibleRows = 1
	}
	if p.Selected < p.ScrollOffset {
		p.ScrollOffset = p.Selected
	}
	if p.Selected >= p.ScrollOffset+visibleRows {
		p.ScrollOffset = p.Selected - visibleRows + 1
	}
}

// Current returns the entry under the cursor, if any.
func (p *Pane) Current() (Entry, bool) {
	if p.Selected < 0 || p.Selected >= len(p.Entries) {
		return Entry{}, false
	}
	return p.Entries[p.Selected], true
}

// SelectedPath returns the absolute path of the entry under the cursor.
func (p *Pane) SelectedPath() (string, bool) {
	e, ok := p.Current()
	if !ok {
		return "", false
	}
	return filepath.Join(p.Dir, e.Name), true
}

func (p *Pane) clamp() {
	if p.Selected >= len(p.Entries) {
		p.Selected = len(p.Entries) - 1
	}
	if p.Selected < 0 {
		p.Selected = 0
	}
	if p.ScrollOffset > p.Selected {
		p.ScrollOffset = p.Selected
	}
	if p.ScrollOffset < 0 {
		p.ScrollOffset = 0
	}
}
