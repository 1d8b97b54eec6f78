// Package speech plays a word aloud through whatever local text to
// speech binary is available. Everything here is best effort: a missing
// binary or a failed invocation is ignored.
package speech

import (
	"context"
	"os/exec"
	"runtime"
)

// Speaker pronounces text out loud.
type Speaker struct {
	binary string
}

// New probes for a usable TTS binary. Available reports whether one was
// found.
func New() *Speaker {
	s := &Speaker{}
	if runtime.GOOS == "darwin" {
		if _, err := exec.LookPath("say"); err == nil {
			s.binary = "say"
			return s
		}
	}
	for _, bin := range []string{"espeak-ng", "espeak"} {
		if _, err := exec.LookPath(bin); err == nil {
			s.binary = bin
			return s
		}
	}
	return s
}

// NewWithBinary uses the given command without probing, for callers that
// already know what is installed.
func NewWithBinary(binary string) *Speaker {
	return &Speaker{binary: binary}
}

// Available reports whether a TTS binary was found.
func (s *Speaker) Available() bool { return s.binary != "" }

// Speak pronounces text. Blocks until playback completes; run it from a
// goroutine or a tea.Cmd. Errors are swallowed.
func (s *Speaker) Speak(ctx context.Context, text string) {
	if s.binary == "" || text == "" {
		return
	}
	_ = exec.CommandContext(ctx, s.binary, text).Run()
}
