// Package store persists per-user conversation transcripts as a single
// pretty-printed JSON document.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one conversation turn. Immutable once appended to a transcript.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Transcript is the ordered message history for one user. Index 0 is always
// the persona system message.
type Transcript []Message

// UserStore maps a user name to that user's transcript.
type UserStore map[string]Transcript

// Load reads the store document at path. A missing file is not an error and
// yields an empty store; a file that exists but does not parse is.
func Load(path string) (UserStore, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return UserStore{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store %s: %w", path, err)
	}
	var s UserStore
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse store %s: %w", path, err)
	}
	if s == nil {
		s = UserStore{}
	}
	return s, nil
}

// Save rewrites the store document wholesale. The output is indented so the
// file stays readable for manual inspection.
func Save(path string, s UserStore) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure store dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open store %s: %w", path, err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		_ = f.Close()
		return fmt.Errorf("write store %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close store %s: %w", path, err)
	}
	return nil
}
