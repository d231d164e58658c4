package pipeline

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
)

const defaultDownloadName = "download"

// download fetches rawURL with a single GET and writes the body into a fresh
// temporary directory. The directory is removed again if anything fails.
func (p *implPipeline) download(ctx context.Context, rawURL string) (*audio.Artifact, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, audio.Download(err, "invalid URL %q", rawURL)
	}

	p.logger.Info(ctx, "Downloading audio: %s", rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, audio.Download(err, "create request")
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, audio.Download(err, "GET %s", rawURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, audio.Download(nil, "GET %s: HTTP %d", rawURL, resp.StatusCode)
	}

	name := downloadFilename(resp.Header.Get("Content-Disposition"), u, p.policy)

	tempDir, err := os.MkdirTemp(p.cfg.Download.TempDir, p.cfg.Download.TempPrefix)
	if err != nil {
		return nil, audio.Download(err, "create temp dir")
	}

	local := filepath.Join(tempDir, name)
	if err := writeBody(local, resp.Body); err != nil {
		os.RemoveAll(tempDir)
		return nil, audio.Download(err, "save %s", name)
	}

	p.logger.Info(ctx, "Audio downloaded: %s", local)
	return audio.NewTransientArtifact(local, tempDir, audio.OriginURL), nil
}

func writeBody(dst string, body io.Reader) error {
	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		return fmt.Errorf("read body: %w", err)
	}
	return f.Close()
}

// downloadFilename picks the local name for a download: the
// Content-Disposition filename, else the last URL path segment, else a
// generic default. The policy extension is appended when missing.
func downloadFilename(disposition string, u *url.URL, policy audio.Format) string {
	name := baseName(dispositionFilename(disposition))
	if name == "" && u != nil {
		name = baseName(path.Base(u.Path))
	}
	if name == "" {
		name = defaultDownloadName
	}
	if !policy.Matches(name) {
		name += policy.Ext()
	}
	return name
}

func dispositionFilename(disposition string) string {
	if disposition == "" {
		return ""
	}
	if _, params, err := mime.ParseMediaType(disposition); err == nil {
		return params["filename"]
	}
	// Malformed headers still often carry a usable filename=.
	i := strings.Index(strings.ToLower(disposition), "filename=")
	if i < 0 {
		return ""
	}
	v := disposition[i+len("filename="):]
	if j := strings.IndexByte(v, ';'); j >= 0 {
		v = v[:j]
	}
	return strings.Trim(strings.TrimSpace(v), `"'`)
}

// baseName strips any directory part so a remote name cannot escape the
// temp dir.
func baseName(name string) string {
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
