// Package prompts holds the externalized model prompt templates, embedded at
// compile time. Templates use {{.Key}} placeholders filled by Format.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

var (
	once    sync.Once
	catalog map[string]string
	loadErr error
)

// load parses every embedded prompt file into the catalog. Keys are
// namespaced by filename: "interview.first_question".
func load() {
	catalog = make(map[string]string)

	entries, err := promptFiles.ReadDir(".")
	if err != nil {
		loadErr = fmt.Errorf("failed to list prompt files: %w", err)
		return
	}

	for _, entry := range entries {
		data, err := promptFiles.ReadFile(entry.Name())
		if err != nil {
			loadErr = fmt.Errorf("failed to read prompt file %s: %w", entry.Name(), err)
			return
		}

		var prompts map[string]string
		if err := json.Unmarshal(data, &prompts); err != nil {
			loadErr = fmt.Errorf("failed to parse prompt file %s: %w", entry.Name(), err)
			return
		}

		namespace := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		for key, prompt := range prompts {
			catalog[namespace+"."+key] = prompt
		}
	}
}

// Get retrieves a prompt by namespaced key, e.g. "interview.first_question".
func Get(key string) (string, error) {
	once.Do(load)
	if loadErr != nil {
		return "", loadErr
	}

	prompt, exists := catalog[key]
	if !exists {
		return "", fmt.Errorf("prompt %q not found", key)
	}
	return prompt, nil
}

// MustGet retrieves a prompt, panicking if it is missing. Prompt files are
// embedded, so a miss is a programming error caught by the package tests.
func MustGet(key string) string {
	prompt, err := Get(key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format replaces {{.Key}} placeholders with values from data. Prompt bodies
// contain literal JSON braces, so this stays a plain string substitution
// rather than text/template.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, fmt.Sprintf("{{.%s}}", key), value)
	}
	return result
}
