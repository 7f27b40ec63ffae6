package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"

	"tableflip.dev/cyberride/pkg/state"
)

// Format is a backup file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor guesses the format from a file name. Unknown extensions are JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Export writes the aggregate to path. The file is replaced atomically.
func (s *Service) Export(path string, format Format) error {
	blob, err := state.Encode(s.Store.Data())
	if err != nil {
		return fmt.Errorf("app: encode data: %w", err)
	}
	var out []byte
	switch format {
	case FormatJSON, "":
		var buf bytes.Buffer
		if err := json.Indent(&buf, blob, "", "  "); err != nil {
			return fmt.Errorf("app: indent data: %w", err)
		}
		buf.WriteByte('\n')
		out = buf.Bytes()
	case FormatYAML:
		// Round trip through a generic tree so YAML keys match the JSON ones.
		var tree any
		if err := json.Unmarshal(blob, &tree); err != nil {
			return fmt.Errorf("app: convert data: %w", err)
		}
		if out, err = yaml.Marshal(tree); err != nil {
			return fmt.Errorf("app: encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("app: unknown export format %q", format)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(out)); err != nil {
		return fmt.Errorf("app: write %s: %w", path, err)
	}
	return nil
}

// Import replaces the aggregate with the backup at path. The file must parse;
// missing fields are filled the same way a stored blob's are.
func (s *Service) Import(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("app: read %s: %w", path, err)
	}
	blob := raw
	if FormatFor(path) == FormatYAML {
		var tree any
		if err := yaml.Unmarshal(raw, &tree); err != nil {
			return fmt.Errorf("app: parse %s: %w", path, err)
		}
		if blob, err = json.Marshal(tree); err != nil {
			return fmt.Errorf("app: convert %s: %w", path, err)
		}
	}
	if len(bytes.TrimSpace(blob)) == 0 {
		return fmt.Errorf("app: %s is empty", path)
	}
	if err := state.Validate(blob); err != nil {
		return fmt.Errorf("app: invalid backup %s: %w", path, err)
	}
	s.Store.Replace(state.Decode(blob, s.Store.Now(), s.log))
	return nil
}
