package pane

import (
	"os"
	"path/filepath"
)

// Kind classifies a directory entry for display and dispatch.
type Kind int

const (
	KindFolder Kind = iota
	KindText
	KindExec
	KindImage
	KindVideo
	KindOther
)

// Tag returns the fixed-width marker shown before the entry name.
func (k Kind) Tag() string {
	switch k {
	case KindFolder:
		return "[DIR]"
	case KindText:
		return "[TXT]"
	case KindExec:
		return "[EXE]"
	case KindImage:
		return "[IMG]"
	case KindVideo:
		return "[VID]"
	default:
		return "[OTH]"
	}
}

// Entry is one row of a pane listing.
type Entry struct {
	Name string
	Kind Kind
}

// Classify maps a name and its stat mode to a Kind. Directories win over
// everything; the owner-executable bit wins over extensions. Extension
// matching is exact and case-sensitive on the last dot segment, so
// "foo.MD" is KindOther.
func Classify(name string, mode os.FileMode) Kind {
	if mode.IsDir() {
		return KindFolder
	}
	if mode&0o100 != 0 {
		return KindExec
	}
	switch filepath.Ext(name) {
	case ".txt", ".md":
		return KindText
	case ".png", ".jpg":
		return KindImage
	case ".mp4", ".mkv":
		return KindVideo
	}
	return KindOther
}
