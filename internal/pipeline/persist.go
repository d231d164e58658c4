package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
)

const maxCopyAttempts = 1000

// persistCopy copies src into dir and returns the copy's path. With an empty
// dir it returns src unchanged. An existing file is never overwritten: the
// copy is named <stem>-<unix><ext>, then <stem>-<unix>-<n><ext>.
func (p *implPipeline) persistCopy(ctx context.Context, src, dir string) (string, error) {
	if dir == "" {
		return src, nil
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", audio.IO(err, "resolve save dir %s", dir)
	}
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return "", audio.IO(err, "create save dir %s", absDir)
	}

	base := filepath.Base(src)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	stamp := p.now().Unix()

	for attempt := 0; attempt < maxCopyAttempts; attempt++ {
		var name string
		switch attempt {
		case 0:
			name = base
		case 1:
			name = fmt.Sprintf("%s-%d%s", stem, stamp, ext)
		default:
			name = fmt.Sprintf("%s-%d-%d%s", stem, stamp, attempt-1, ext)
		}

		dest := filepath.Join(absDir, name)
		err := copyFile(src, dest)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", audio.IO(err, "copy %s to %s", src, dest)
		}

		p.logger.Info(ctx, "Saved input audio: %s", dest)
		return dest, nil
	}

	return "", audio.IO(fs.ErrExist, "no free name for %s in %s", base, absDir)
}

// copyFile copies contents, permission bits and modification time from src
// to a new file dst. It fails with fs.ErrExist if dst already exists.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("source %s is a directory", src)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("write destination: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return fmt.Errorf("close destination: %w", err)
	}

	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("copy timestamps: %w", err)
	}
	return nil
}
