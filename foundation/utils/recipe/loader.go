// File: loader.go
// Title: Recipe Loading
// Description: Reads recipes from TOML or YAML files and strings and
//              validates them before use.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package recipe

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/msto63/textbox/foundation/core/config"
	mdwerror "github.com/msto63/textbox/foundation/core/error"
)

// Load reads and validates a recipe file. The format follows the file
// extension (.yaml and .yml for YAML, TOML otherwise). A recipe without a
// name is named after the file.
func Load(path string) (*Recipe, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.Wrap(err, "recipe file not found").
				WithCode(mdwerror.CodeNotFound).
				WithOperation("recipe.Load").
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, "read recipe %s", path)
	}

	r, err := Parse(string(content), config.DetectFormat(path))
	if err != nil {
		return nil, errors.Wrapf(err, "recipe %s", path)
	}
	if r.Name == "" {
		r.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return r, nil
}

// Parse decodes and validates a recipe in the given format
func Parse(content string, format config.Format) (*Recipe, error) {
	var r Recipe

	switch format {
	case config.FormatYAML:
		dec := yaml.NewDecoder(strings.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(&r); err != nil && !errors.Is(err, io.EOF) {
			return nil, mdwerror.Wrap(err, "invalid YAML recipe").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("recipe.Parse")
		}
	default:
		meta, err := toml.Decode(content, &r)
		if err != nil {
			return nil, mdwerror.Wrap(err, "invalid TOML recipe").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("recipe.Parse")
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, mdwerror.New("unknown recipe keys: "+joinKeys(undecoded)).
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("recipe.Parse")
		}
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func joinKeys(keys []toml.Key) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.String()
	}
	return strings.Join(parts, ", ")
}
