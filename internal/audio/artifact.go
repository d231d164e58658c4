package audio

import (
	"os"
	"sync"
)

// Origin records where an artifact came from.
type Origin int

const (
	OriginUpload Origin = iota
	OriginRecording
	OriginURL
	OriginBatchItem
)

func (o Origin) String() string {
	switch o {
	case OriginUpload:
		return "upload"
	case OriginRecording:
		return "recording"
	case OriginURL:
		return "url"
	case OriginBatchItem:
		return "batch_item"
	default:
		return "unknown"
	}
}

// Artifact is one local audio file flowing through the pipeline.
// It is owned by the invocation that resolved it.
type Artifact struct {
	Path   string
	Format Format
	Origin Origin

	tempDir string
	once    sync.Once
}

// NewArtifact wraps a caller-owned local file. Release is a no-op for it.
func NewArtifact(path string, origin Origin) *Artifact {
	return &Artifact{Path: path, Format: FormatFromPath(path), Origin: origin}
}

// NewTransientArtifact wraps a file living inside tempDir. Release removes
// tempDir.
func NewTransientArtifact(path, tempDir string, origin Origin) *Artifact {
	a := NewArtifact(path, origin)
	a.tempDir = tempDir
	return a
}

// Transient reports whether the artifact owns a temporary directory.
func (a *Artifact) Transient() bool {
	return a.tempDir != ""
}

// Release removes the artifact's temporary directory, if any. It is safe to
// call more than once.
func (a *Artifact) Release() error {
	if a == nil || a.tempDir == "" {
		return nil
	}
	var err error
	a.once.Do(func() {
		err = os.RemoveAll(a.tempDir)
	})
	return err
}

// Result is the outcome for one input item. Source is the path that was
// actually used, or the original identifier when the item failed.
type Result struct {
	Source  string `json:"source"`
	Summary string `json:"summary"`
	Error   string `json:"error,omitempty"`
}

// Failed reports whether the item carries an error instead of a summary.
func (r Result) Failed() bool {
	return r.Error != ""
}
