// Package production provides integrations around the canonical store:
// transition publishing, session transcripts and visualization.
package production

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/comalice/layoutfocus/internal/core"
)

// Format selects the transcript encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts "yaml", "yml" and "json", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown transcript format %q", s)
	}
}

// Transcript is the record of one session's transitions. It is a debugging
// aid and is never used to restore focus.
type Transcript struct {
	Session     string            `json:"session" yaml:"session"`
	Started     time.Time         `json:"started" yaml:"started"`
	Transitions []core.Transition `json:"transitions" yaml:"transitions"`
}

// Recorder collects transitions published by a store into a Transcript.
type Recorder struct {
	mu         sync.Mutex
	transcript Transcript
	dir        string
	format     Format
}

// NewRecorder creates a Recorder writing to dir in the given format, ensuring
// the directory exists.
func NewRecorder(dir string, format Format) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &Recorder{
		dir:    dir,
		format: format,
		transcript: Transcript{
			Session: uuid.NewString(),
			Started: time.Now().UTC(),
		},
	}, nil
}

// Session returns the transcript's session ID.
func (r *Recorder) Session() string {
	return r.transcript.Session
}

func (r *Recorder) Publish(ctx context.Context, t core.Transition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transcript.Transitions = append(r.transcript.Transitions, t)
	return nil
}

// Close is a no-op; call Save to write the transcript.
func (r *Recorder) Close() error {
	return nil
}

// Transcript returns a copy of what has been recorded so far.
func (r *Recorder) Transcript() Transcript {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.transcript
	out.Transitions = append([]core.Transition(nil), r.transcript.Transitions...)
	return out
}

// Save writes the transcript to <dir>/<session>.<format> and returns the path.
func (r *Recorder) Save(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	transcript := r.Transcript()

	var (
		data []byte
		err  error
	)
	switch r.format {
	case FormatJSON:
		data, err = json.MarshalIndent(transcript, "", "  ")
		if err != nil {
			return "", fmt.Errorf("json marshal: %w", err)
		}
	default:
		data, err = yaml.Marshal(transcript)
		if err != nil {
			return "", fmt.Errorf("yaml marshal: %w", err)
		}
	}

	ext := string(r.format)
	if ext == "" {
		ext = string(FormatYAML)
	}
	fn := filepath.Join(r.dir, transcript.Session+"."+ext)
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", fn, err)
	}
	return fn, nil
}

// LoadTranscript reads a transcript written by Save. The encoding follows the
// file extension.
func LoadTranscript(fn string) (Transcript, error) {
	data, err := os.ReadFile(fn)
	if err != nil {
		return Transcript{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var t Transcript
	if strings.EqualFold(filepath.Ext(fn), ".json") {
		if err := json.Unmarshal(data, &t); err != nil {
			return Transcript{}, fmt.Errorf("json unmarshal: %w", err)
		}
		return t, nil
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Transcript{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return t, nil
}
