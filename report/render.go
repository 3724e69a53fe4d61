package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/BryanSetuke/BRASET497-BCL2401-A-Bryan-Setuke-DJS06/hashing"
)

// ErrUnsupportedFormat is returned by [Render] for an unknown output format.
var ErrUnsupportedFormat = errors.New("report: unsupported format")

// Output formats accepted by [Render].
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Render writes entries to w in format.
//
// Text writes one line per entry. JSON and YAML write a list of
// {step, value} objects.
func Render(w io.Writer, entries []Entry, format string) error {
	switch strings.ToLower(format) {
	case FormatText:
		return renderText(w, entries)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("report: encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func renderText(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := io.WriteString(w, e.Text+"\n"); err != nil {
			return fmt.Errorf("report: write: %w", err)
		}
	}
	return nil
}

// Fingerprint returns the digest of the text rendering of entries.
func Fingerprint(entries []Entry) string {
	var buf bytes.Buffer
	_ = renderText(&buf, entries) // bytes.Buffer writes do not fail
	return hashing.Sum(buf.Bytes())
}
