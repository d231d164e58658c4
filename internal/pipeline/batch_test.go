package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
)

func TestBatch(t *testing.T) {
	p, sum := newTestPipeline(t, audio.FormatWAV)
	dir := t.TempDir()

	paths := []string{
		writeFile(t, dir, "one.wav", []byte("1")),
		writeFile(t, dir, "two.mp3", []byte("2")),
		writeFile(t, dir, "three.WAV", []byte("3")),
		filepath.Join(dir, "missing.wav"),
	}

	results, err := p.Batch(context.Background(), paths, Options{})
	if err != nil {
		t.Fatalf("Batch() error = %v", err)
	}
	if len(results) != len(paths) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(paths))
	}

	wantFailed := []bool{false, true, false, true}
	for i, res := range results {
		if res.Source != paths[i] {
			t.Errorf("results[%d].Source = %s, want %s", i, res.Source, paths[i])
		}
		if res.Failed() != wantFailed[i] {
			t.Errorf("results[%d].Failed() = %v, want %v (%+v)", i, res.Failed(), wantFailed[i], res)
		}
		if !res.Failed() && !strings.Contains(res.Summary, filepath.Base(paths[i])) {
			t.Errorf("results[%d].Summary = %q, want it to name the file", i, res.Summary)
		}
	}

	if !strings.Contains(results[1].Error, ".wav") {
		t.Errorf("unsupported item error = %q, want expected extension named", results[1].Error)
	}
	if got := sum.calls(); got != 2 {
		t.Errorf("summarizer calls = %d, want 2", got)
	}
}

func TestBatchEmpty(t *testing.T) {
	p, sum := newTestPipeline(t, audio.FormatMP3)

	for _, paths := range [][]string{nil, {}} {
		results, err := p.Batch(context.Background(), paths, Options{})
		if !errors.Is(err, audio.ErrNoInput) {
			t.Errorf("Batch(%v) error = %v, want ErrNoInput", paths, err)
		}
		if results != nil {
			t.Errorf("Batch(%v) results = %v, want nil", paths, results)
		}
	}
	if got := sum.calls(); got != 0 {
		t.Errorf("summarizer calls = %d, want 0", got)
	}
}

func TestBatchPersistsEachItem(t *testing.T) {
	p, _ := newTestPipeline(t, audio.FormatMP3)
	src := t.TempDir()
	saveDir := t.TempDir()

	paths := []string{
		writeFile(t, src, "a.mp3", []byte("a")),
		writeFile(t, src, "b.mp3", []byte("b")),
	}

	results, err := p.Batch(context.Background(), paths, Options{SaveDir: saveDir})
	if err != nil {
		t.Fatal(err)
	}
	for i, res := range results {
		if res.Failed() {
			t.Fatalf("results[%d] failed: %s", i, res.Error)
		}
		if filepath.Dir(res.Source) != saveDir {
			t.Errorf("results[%d].Source = %s, want a copy in %s", i, res.Source, saveDir)
		}
	}
}

func TestBatchCancelled(t *testing.T) {
	p, sum := newTestPipeline(t, audio.FormatWAV)
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "a.wav", []byte("a")),
		writeFile(t, dir, "b.wav", []byte("b")),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := p.Batch(ctx, paths, Options{})
	if err != nil {
		t.Fatalf("Batch() error = %v", err)
	}
	for i, res := range results {
		if !res.Failed() {
			t.Errorf("results[%d] succeeded after cancel", i)
		}
	}
	if got := sum.calls(); got != 0 {
		t.Errorf("summarizer calls = %d, want 0", got)
	}
}
