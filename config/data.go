package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/gjson"
)

var ErrPathNotFound = errors.New("path not found")

// Decode reads a TOML or JSON data file into generic maps and slices. For
// JSON files, a non-empty path selects a sub-value using gjson path syntax
// ("servers.0.name", "items.#.id").
func Decode(file, path string) (interface{}, error) {
	body, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasSuffix(file, ".toml"):
		if path != "" {
			return nil, fmt.Errorf("path selection is only supported for JSON files, not %s", file)
		}
		var v map[string]interface{}
		if err := toml.Unmarshal(body, &v); err != nil {
			return nil, fmt.Errorf("toml parsing error: %w", err)
		}
		return v, nil
	case strings.HasSuffix(file, ".json"):
		if !gjson.ValidBytes(body) {
			return nil, fmt.Errorf("json parsing error: invalid JSON in %s", file)
		}
		if path != "" {
			r := gjson.GetBytes(body, path)
			if !r.Exists() {
				return nil, fmt.Errorf("%w: %s in %s", ErrPathNotFound, path, file)
			}
			return r.Value(), nil
		}
		var v interface{}
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, fmt.Errorf("json parsing error: %w", err)
		}
		return v, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, file)
}
