package art

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Workspace setup helpers. Generated files (data, readme, briefing) are
// rewritten on every setup; user-owned files (train.py, results.json) are
// left alone when they already exist so re-playing a mission cannot destroy
// work in progress.

func ensureWorkspace(workspace string) error {
	if err := os.MkdirAll(filepath.Join(workspace, "data"), 0o755); err != nil {
		return fmt.Errorf("create workspace: %w", err)
	}
	return nil
}

func writeGenerated(workspace, rel string, content []byte) error {
	path := filepath.Join(workspace, rel)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	return nil
}

func writeStarterIfAbsent(workspace, rel, content string) error {
	path := filepath.Join(workspace, rel)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	return nil
}

func marshalData(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode data: %w", err)
	}
	return append(data, '\n'), nil
}
