package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
	"github.com/nguyentantai21042004/audio-summarizer/internal/pipeline"
)

const (
	fieldAudio = "audio"
	fieldFiles = "files"
)

// requestForm holds the fields every summarize endpoint accepts.
type requestForm struct {
	URL          string `json:"url" form:"url"`
	Save         bool   `json:"save" form:"save"`
	SaveDir      string `json:"save_dir" form:"save_dir"`
	SystemPrompt string `json:"system_prompt" form:"system_prompt"`
	UserPrompt   string `json:"user_prompt" form:"user_prompt"`
}

type batchResponse struct {
	Results []audio.Result `json:"results"`
}

func (s *implServer) handleIndex(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.Send(indexHTML)
}

func (s *implServer) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":     "ok",
		"summarizer": s.summarizer.Name(),
		"format":     s.cfg.Format.Accepted.String(),
		"recording":  s.recordingEnabled(),
	})
}

// recordingEnabled reports whether browser recordings, which the UI encodes
// as WAV, can pass the format policy.
func (s *implServer) recordingEnabled() bool {
	return s.cfg.Format.Accepted == audio.FormatWAV
}

// handleFile serves the single-file endpoints. Upload and recording differ
// only in how the pipeline labels the input.
func (s *implServer) handleFile(field string, recording bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		form, err := s.parseForm(c)
		if err != nil {
			return s.writeError(c, err, nil)
		}

		var in pipeline.Input
		var st *stage

		if fh, err := c.FormFile(field); err == nil {
			st, err = s.newStage()
			if err != nil {
				return s.writeError(c, err, nil)
			}
			defer st.release(ctx, s.logger)

			path, err := st.save(c, fh, recording)
			if err != nil {
				return s.writeError(c, err, st)
			}
			if recording {
				in.RecordingPath = path
			} else {
				in.UploadPath = path
			}
		}

		res, err := s.pipeline.Process(ctx, in, s.options(form))
		if err != nil {
			return s.writeError(c, err, st)
		}
		return c.JSON(st.display(res))
	}
}

func (s *implServer) handleURL(c *fiber.Ctx) error {
	form, err := s.parseForm(c)
	if err != nil {
		return s.writeError(c, err, nil)
	}

	res, err := s.pipeline.Process(c.UserContext(), pipeline.Input{URL: form.URL}, s.options(form))
	if err != nil {
		return s.writeError(c, err, nil)
	}
	return c.JSON(res)
}

func (s *implServer) handleBatch(c *fiber.Ctx) error {
	ctx := c.UserContext()

	form, err := s.parseForm(c)
	if err != nil {
		return s.writeError(c, err, nil)
	}

	var paths []string
	var st *stage

	if mf, err := c.MultipartForm(); err == nil && len(mf.File[fieldFiles]) > 0 {
		st, err = s.newStage()
		if err != nil {
			return s.writeError(c, err, nil)
		}
		defer st.release(ctx, s.logger)

		for _, fh := range mf.File[fieldFiles] {
			path, err := st.save(c, fh, false)
			if err != nil {
				return s.writeError(c, err, st)
			}
			paths = append(paths, path)
		}
	}

	results, err := s.pipeline.Batch(ctx, paths, s.options(form))
	if err != nil {
		return s.writeError(c, err, st)
	}
	for i := range results {
		results[i] = st.display(results[i])
	}
	return c.JSON(batchResponse{Results: results})
}

// parseForm reads the shared fields. A request without a body is fine; the
// pipeline reports the missing input.
func (s *implServer) parseForm(c *fiber.Ctx) (requestForm, error) {
	var form requestForm
	if len(c.Body()) == 0 {
		return form, nil
	}
	if err := c.BodyParser(&form); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return form, fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	return form, nil
}

func (s *implServer) options(form requestForm) pipeline.Options {
	return pipeline.Options{
		SaveDir:      s.cfg.SaveDir(form.Save, form.SaveDir),
		SystemPrompt: form.SystemPrompt,
		UserPrompt:   form.UserPrompt,
	}
}

// writeError maps pipeline failures to HTTP statuses. Staging paths in the
// message are replaced with the uploaded file names.
func (s *implServer) writeError(c *fiber.Ctx, err error, st *stage) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		s.logger.Error(c.UserContext(), "Request failed: %v", err)
	} else {
		s.logger.Warn(c.UserContext(), "Request rejected: %v", err)
	}
	return c.Status(status).JSON(fiber.Map{"error": st.scrub(err.Error())})
}

func statusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, audio.ErrNoInput), errors.Is(err, audio.ErrUnsupportedFormat):
		return fiber.StatusBadRequest
	case errors.Is(err, audio.ErrDownload):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
