// Package speech synthesizes pronunciation audio for quiz words by driving
// a gTTS helper script.
package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	retry "github.com/avast/retry-go"
)

// ErrMissingParameters is returned when the text or language is empty.
var ErrMissingParameters = errors.New("text and language are required")

// Config holds the helper script invocation settings.
type Config struct {
	PythonBinary string
	Script       string
	TempDir      string
}

// Synthesizer runs the gTTS helper script, which writes an mp3 to a
// temporary file and prints that file's path on stdout.
type Synthesizer struct {
	config Config
}

// NewSynthesizer creates a Synthesizer.
func NewSynthesizer(config Config) *Synthesizer {
	return &Synthesizer{config: config}
}

// Synthesize returns mp3 audio for the given text and language code.
// The helper reaches Google's TTS endpoint, so a failed run is retried a
// few times before giving up. The temporary audio file is removed once read.
func (s *Synthesizer) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	if strings.TrimSpace(text) == "" || strings.TrimSpace(lang) == "" {
		return nil, ErrMissingParameters
	}

	var audio []byte
	if err := retry.Do(
		func() error {
			contents, err := s.run(ctx, text, lang)
			if err != nil {
				return err
			}
			audio = contents
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.LastErrorOnly(true),
	); err != nil {
		return nil, err
	}
	return audio, nil
}

func (s *Synthesizer) run(ctx context.Context, text, lang string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, s.config.PythonBinary, s.config.Script, text, lang)
	if s.config.TempDir != "" {
		cmd.Env = append(os.Environ(), "TMPDIR="+s.config.TempDir)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("run %s: %w: %s", s.config.Script, err, strings.TrimSpace(stderr.String()))
	}

	audioPath := strings.TrimSpace(stdout.String())
	if audioPath == "" {
		return nil, fmt.Errorf("run %s: no audio file path on stdout", s.config.Script)
	}
	defer os.Remove(audioPath)

	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return nil, fmt.Errorf("read audio file: %w", err)
	}
	return audio, nil
}
