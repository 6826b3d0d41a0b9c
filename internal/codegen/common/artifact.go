package common

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Artifact is one rendered output file that has not been written yet.
type Artifact struct {
	Path    string
	Content string
}

// WriteArtifacts writes every artifact, creating parent directories as
// needed. Callers render all artifacts first so a failed run leaves no
// output behind.
func WriteArtifacts(logger *slog.Logger, artifacts []Artifact) error {
	for _, a := range artifacts {
		if err := os.MkdirAll(filepath.Dir(a.Path), 0o755); err != nil {
			return fmt.Errorf("create directory for %s: %w", a.Path, err)
		}
		if err := os.WriteFile(a.Path, []byte(a.Content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", a.Path, err)
		}
		logger.Debug("Wrote generated file", "path", a.Path, "bytes", len(a.Content))
	}
	return nil
}

// ComponentsBaseName is the file name stem used for generated component
// definitions. The core namespace gets a distinct stem so it does not collide
// with the core.hpp header.
func ComponentsBaseName(namespace string) string {
	if namespace == "core" {
		return "core_components"
	}
	return namespace
}
