package i18next

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// WithJSONDir returns a StoreOption that loads resources from JSON files in
// an fs.FS. The fs.FS root must contain locale directories directly.
// File convention: {locale}/{namespace}.json
//
// Example structure:
//
//	en/common.json
//	en/errors.json
//	de/common.json
func WithJSONDir(fsys fs.FS) StoreOption {
	return func(s *Store) error {
		return loadDir(s, fsys, ".json", func(data []byte, v any) error {
			return json.Unmarshal(data, v)
		})
	}
}

// WithYAMLDir returns a StoreOption that loads resources from YAML files in
// an fs.FS. File convention: {locale}/{namespace}.yaml or {locale}/{namespace}.yml
func WithYAMLDir(fsys fs.FS) StoreOption {
	return func(s *Store) error {
		return loadDir(s, fsys, ".yaml", func(data []byte, v any) error {
			return yaml.Unmarshal(data, v)
		})
	}
}

// WithTOMLDir returns a StoreOption that loads resources from TOML files in
// an fs.FS. File convention: {locale}/{namespace}.toml
func WithTOMLDir(fsys fs.FS) StoreOption {
	return func(s *Store) error {
		return loadDir(s, fsys, ".toml", func(data []byte, v any) error {
			return toml.Unmarshal(data, v)
		})
	}
}

func loadDir(s *Store, fsys fs.FS, ext string, unmarshal func([]byte, any) error) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		fileExt := strings.ToLower(path.Ext(filePath))

		var matches bool
		if ext == ".yaml" {
			matches = fileExt == ".yaml" || fileExt == ".yml"
		} else {
			matches = fileExt == ext
		}
		if !matches {
			return nil
		}

		// Extract locale from directory name and namespace from filename
		dir := path.Dir(filePath)
		if dir == "." || dir == "" {
			return fmt.Errorf("%w: file %q must be inside a locale directory", ErrInvalidFile, filePath)
		}

		locale := path.Base(dir)
		namespace := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var resources map[string]any
		if err := unmarshal(data, &resources); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		s.add(locale, namespace, resources)

		return nil
	})
}
