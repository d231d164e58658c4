package summarizer

import (
	"context"
	"fmt"
)

type implDemo struct{}

// NewDemo returns a Summarizer that never leaves the process. It is handy
// for trying the UI before credentials are in place.
func NewDemo() Summarizer {
	return implDemo{}
}

func (implDemo) Name() string { return "demo" }

func (implDemo) Summarize(_ context.Context, req Request) string {
	return fmt.Sprintf("[DEMO] Summarized contents of %s. (Plug in your LLM here.)", req.Name)
}
