package web

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
)

const (
	stagePrefix   = "upload_"
	recordingName = "recording"
)

// stage is a per-request temp directory holding uploaded files.
type stage struct {
	dir   string
	n     int
	files map[string]stagedFile
}

// stagedFile is what a client knows a staged upload as.
type stagedFile struct {
	client string // name the client sent
	saved  string // base name on disk, with any recovered extension
}

func (s *implServer) newStage() (*stage, error) {
	dir, err := os.MkdirTemp(s.cfg.Download.TempDir, stagePrefix)
	if err != nil {
		return nil, audio.IO(err, "create upload dir")
	}
	return &stage{dir: dir, files: make(map[string]stagedFile)}, nil
}

// save writes one uploaded file into its own subdirectory so that the
// client's file name survives, even when two uploads share it.
func (st *stage) save(c *fiber.Ctx, fh *multipart.FileHeader, recording bool) (string, error) {
	sub := filepath.Join(st.dir, strconv.Itoa(st.n))
	st.n++
	if err := os.Mkdir(sub, 0755); err != nil {
		return "", audio.IO(err, "create upload dir")
	}

	name := uploadName(fh.Filename)
	if name == "" && recording {
		name = recordingName
	}
	if name == "" {
		name = fmt.Sprintf("upload-%d", st.n)
	}
	if filepath.Ext(name) == "" {
		name += sniffExt(fh)
	}

	dst := filepath.Join(sub, name)
	if err := c.SaveFile(fh, dst); err != nil {
		return "", audio.IO(err, "save upload %s", name)
	}

	client := uploadName(fh.Filename)
	if client == "" {
		client = name
	}
	st.files[dst] = stagedFile{client: client, saved: name}
	return dst, nil
}

// display rewrites a result so it names the client's file instead of its
// staging path. A persisted copy keeps its real path.
func (st *stage) display(res audio.Result) audio.Result {
	if st == nil {
		return res
	}
	if f, ok := st.files[res.Source]; ok {
		res.Source = f.client
	}
	res.Error = st.scrub(res.Error)
	return res
}

// scrub replaces staging paths in msg with the uploaded file names.
func (st *stage) scrub(msg string) string {
	if st == nil || msg == "" {
		return msg
	}
	for path, f := range st.files {
		msg = strings.ReplaceAll(msg, path, f.saved)
	}
	return strings.ReplaceAll(msg, st.dir+string(filepath.Separator), "")
}

func (st *stage) release(ctx context.Context, log logger.Logger) {
	if err := os.RemoveAll(st.dir); err != nil {
		log.Warn(ctx, "Failed to cleanup upload dir %s: %v", st.dir, err)
	}
}

// uploadName keeps only the base name a client sent.
func uploadName(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, "\\", "/"))
	if name == "" {
		return ""
	}
	name = path.Base(name)
	switch name {
	case ".", "..", "/":
		return ""
	}
	return name
}

// sniffExt recovers an extension from content for browser blobs that
// arrive without one.
func sniffExt(fh *multipart.FileHeader) string {
	f, err := fh.Open()
	if err != nil {
		return ""
	}
	defer f.Close()

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return ""
	}
	return mt.Extension()
}
