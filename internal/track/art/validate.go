package art

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Validation helpers shared by the ART missions. All of them only read the
// workspace; they never create or modify files.

func fileExists(workspace string, parts ...string) bool {
	_, err := os.Stat(filepath.Join(append([]string{workspace}, parts...)...))
	return err == nil
}

func readWorkspaceFile(workspace string, parts ...string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(append([]string{workspace}, parts...)...))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func containsAll(content string, subs ...string) bool {
	for _, s := range subs {
		if !strings.Contains(content, s) {
			return false
		}
	}
	return true
}

func containsAny(content string, subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(content, s) {
			return true
		}
	}
	return false
}

type resultsProbe int

const (
	resultsMissing resultsProbe = iota
	resultsInvalid
	resultsOK
)

// readResults loads the workspace results.json. Malformed JSON is a
// validation failure, never a crash.
func readResults(workspace string) (map[string]any, resultsProbe) {
	data, err := os.ReadFile(filepath.Join(workspace, "results.json"))
	if err != nil {
		return nil, resultsMissing
	}
	var results map[string]any
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, resultsInvalid
	}
	return results, resultsOK
}

// metric returns a numeric result value, 0 when absent or non-numeric.
func metric(results map[string]any, key string) float64 {
	v, _ := results[key].(float64)
	return v
}
