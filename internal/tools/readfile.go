package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadFileTool reads files from the data directory the document endpoints
// write to. Paths are confined to that directory.
type ReadFileTool struct {
	DataDir string
}

func NewReadFileTool(dataDir string) *ReadFileTool {
	return &ReadFileTool{DataDir: dataDir}
}

func (t *ReadFileTool) Name() string {
	return "read_file"
}

func (t *ReadFileTool) Description() string {
	return "Read the contents of a file from the data directory"
}

func (t *ReadFileTool) InputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"filepath": map[string]any{
				"type":        "string",
				"description": "Path to the file relative to the data directory",
			},
		},
		"required": []string{"filepath"},
	}
}

func (t *ReadFileTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	relPath, err := stringArg(args, "filepath")
	if err != nil {
		return "", err
	}

	if strings.Contains(relPath, "..") || filepath.IsAbs(relPath) {
		return "", fmt.Errorf("filepath must be relative to the data directory")
	}

	fullPath := filepath.Join(t.DataDir, relPath)
	content, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file %s not found in data directory", relPath)
		}
		return "", fmt.Errorf("failed to read file %s: %w", relPath, err)
	}

	return fmt.Sprintf("File contents of %s:\n%s", relPath, content), nil
}
