package pipeline

import "github.com/nguyentantai21042004/audio-summarizer/internal/audio"

// checkFormat accepts path only if its extension matches the deployment's
// format policy, ignoring case. File contents are not inspected.
func (p *implPipeline) checkFormat(path string) error {
	if !p.policy.Matches(path) {
		return audio.Unsupported(p.policy, path)
	}
	return nil
}
