package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader reads pattern definition files from a directory. JSON files
// hold a single pattern object; YAML files may wrap the pattern under
// a top-level threat_pattern key or hold it directly.
type Loader struct {
	basePath string
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(basePath string) *Loader {
	return &Loader{basePath: basePath}
}

// yamlWrapper accepts the optional top-level threat_pattern key.
type yamlWrapper struct {
	ThreatPattern *ThreatPattern `yaml:"threat_pattern"`
}

// LoadInto merges every pattern file under the loader's directory into
// the set. Files that fail to parse are logged and skipped so the
// defaults already in the set are never lost. A missing directory is
// not an error; the defaults simply stand.
func (l *Loader) LoadInto(set *Set) int {
	loaded := 0

	err := filepath.Walk(l.basePath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			return nil
		}

		pattern, err := l.LoadFile(path)
		if err != nil {
			log.Printf("warning: skipping pattern file %s: %v", path, err)
			return nil
		}

		set.Put(pattern)
		loaded++
		return nil
	})
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: failed to walk pattern directory %s: %v", l.basePath, err)
		}
	}

	return loaded
}

// LoadFile loads a single pattern definition file.
func (l *Loader) LoadFile(path string) (ThreatPattern, error) {
	if err := l.validatePath(path); err != nil {
		return ThreatPattern{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ThreatPattern{}, fmt.Errorf("failed to read file: %w", err)
	}

	var pattern ThreatPattern
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &pattern); err != nil {
			return ThreatPattern{}, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		var wrapper yamlWrapper
		if err := yaml.Unmarshal(data, &wrapper); err != nil {
			return ThreatPattern{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
		if wrapper.ThreatPattern != nil {
			pattern = *wrapper.ThreatPattern
		} else if err := yaml.Unmarshal(data, &pattern); err != nil {
			return ThreatPattern{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if pattern.ID == "" {
		return ThreatPattern{}, fmt.Errorf("pattern has no id")
	}

	return pattern, nil
}

// validatePath ensures the given path is within the loader's basePath
// and prevents directory traversal.
func (l *Loader) validatePath(path string) error {
	cleanPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	cleanBase, err := filepath.Abs(filepath.Clean(l.basePath))
	if err != nil {
		return fmt.Errorf("failed to resolve base path: %w", err)
	}

	relPath, err := filepath.Rel(cleanBase, cleanPath)
	if err != nil {
		return fmt.Errorf("failed to compute relative path: %w", err)
	}

	if strings.HasPrefix(relPath, "..") || filepath.IsAbs(relPath) {
		return fmt.Errorf("path traversal detected: %s is outside base path %s", path, l.basePath)
	}

	return nil
}
