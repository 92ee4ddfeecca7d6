package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/httplang/pkg/locale"
)

// WithYAMLDir returns an Option that loads messages from YAML files in an
// fs.FS. The fs.FS root must contain locale directories directly; every
// .yaml/.yml file inside a locale directory is merged into that locale's
// bundle. Files load in lexical order, so later files override earlier ones
// with the same keys.
//
// Example structure:
//
//	en/main.yaml
//	en/sub.yaml
//	ja/main.yml
func WithYAMLDir(fsys fs.FS) Option {
	return func(c *Catalog) error {
		return loadDir(c, fsys, ".yaml", func(data []byte, v any) error {
			return yaml.Unmarshal(data, v)
		})
	}
}

// WithJSONDir returns an Option that loads messages from JSON files in an
// fs.FS, with the same layout and merge rules as WithYAMLDir.
func WithJSONDir(fsys fs.FS) Option {
	return func(c *Catalog) error {
		return loadDir(c, fsys, ".json", func(data []byte, v any) error {
			return json.Unmarshal(data, v)
		})
	}
}

func loadDir(c *Catalog, fsys fs.FS, ext string, unmarshal func([]byte, any) error) error {
	var files []string
	err := fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		fileExt := strings.ToLower(path.Ext(filePath))

		// Case-insensitive comparison handles .YAML and .yaml across systems
		var matches bool
		if ext == ".yaml" {
			matches = fileExt == ".yaml" || fileExt == ".yml"
		} else {
			matches = fileExt == ext
		}
		if matches {
			files = append(files, filePath)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Lexical order makes the later-overrides-earlier rule deterministic.
	sort.Strings(files)

	for _, filePath := range files {
		dir := path.Dir(filePath)
		if dir == "." || dir == "" {
			return fmt.Errorf("%w: file %q must be inside a locale directory", ErrInvalidFile, filePath)
		}

		tag, err := locale.Parse(path.Base(dir))
		if err != nil {
			return fmt.Errorf("%w: directory %q is not a locale: %s", ErrInvalidFile, path.Base(dir), err)
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var messages map[string]any
		if err := unmarshal(data, &messages); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		c.merge(tag, flattenMessages(messages, ""))
	}

	return nil
}
