package pipeline

import "fmt"

// How a denoised temp file replaces the original.
type ReplaceMode uint8

const (
	// Rename the result directly over the original.
	ReplaceAtomic ReplaceMode = iota

	// Remove the original and then rename the result into place. Between
	// the two steps the original path does not exist.
	ReplaceRemoveFirst
)

func (m ReplaceMode) String() string {
	switch m {
	case ReplaceAtomic:
		return "atomic"
	case ReplaceRemoveFirst:
		return "remove-first"
	}
	return fmt.Sprintf("ReplaceMode(%d)", m)
}

// Parse a replace mode name as returned by String.
func ParseReplaceMode(name string) (ReplaceMode, error) {
	switch name {
	case "atomic", "":
		return ReplaceAtomic, nil
	case "remove-first":
		return ReplaceRemoveFirst, nil
	}
	return ReplaceAtomic, fmt.Errorf("pipeline: unknown replace mode %q", name)
}

type Options struct {
	// Parent directory for the per-run temp dir; empty selects os.TempDir().
	TempDir string

	// Keep the per-run temp dir when the pipeline is closed.
	KeepTemp bool

	// Strategy for replacing original files.
	Replace ReplaceMode
}
