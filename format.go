package configfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// Format identifies a supported configuration file format.
type Format string

const (
	FormatINI  Format = "ini"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// adapter converts between raw file bytes and the generic document tree.
// Implementations must round-trip: serialize(parse(x)) is structurally
// equivalent to x for any well-formed input of the format.
type adapter interface {
	parse(data []byte) (map[string]any, error)
	serialize(doc map[string]any) ([]byte, error)
}

// detectFormat determines the format from the file extension.
func detectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".ini":
		return FormatINI, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml", ".tml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: extension %q of '%s'", ErrUnsupportedFormat, ext, path)
	}
}

// adapterFor returns the adapter implementation for a detected format.
func adapterFor(format Format) adapter {
	switch format {
	case FormatINI:
		return iniAdapter{}
	case FormatJSON:
		return jsonAdapter{}
	case FormatYAML:
		return yamlAdapter{}
	case FormatTOML:
		return tomlAdapter{}
	}
	return nil
}

type tomlAdapter struct{}

func (tomlAdapter) parse(data []byte) (map[string]any, error) {
	doc := make(map[string]any)
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (tomlAdapter) serialize(doc map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type jsonAdapter struct{}

func (jsonAdapter) parse(data []byte) (map[string]any, error) {
	doc := make(map[string]any)
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber() // Preserve number precision
	if err := decoder.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (jsonAdapter) serialize(doc map[string]any) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

type yamlAdapter struct{}

func (yamlAdapter) parse(data []byte) (map[string]any, error) {
	doc := make(map[string]any)
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (yamlAdapter) serialize(doc map[string]any) ([]byte, error) {
	return yaml.Marshal(doc)
}

type iniAdapter struct{}

func (iniAdapter) parse(data []byte) (map[string]any, error) {
	file, err := ini.Load(data)
	if err != nil {
		return nil, err
	}

	doc := make(map[string]any)
	for _, section := range file.Sections() {
		if section.Name() == ini.DefaultSection {
			// Keys outside any section live at the top level.
			for _, key := range section.Keys() {
				doc[key.Name()] = key.Value()
			}
			continue
		}

		values := make(map[string]any, len(section.Keys()))
		for _, key := range section.Keys() {
			values[key.Name()] = key.Value()
		}
		doc[section.Name()] = values
	}

	return doc, nil
}

func (iniAdapter) serialize(doc map[string]any) ([]byte, error) {
	file := ini.Empty()

	for _, name := range sortedKeys(doc) {
		value := doc[name]
		if sub, isMap := value.(map[string]any); isMap {
			section, err := file.NewSection(name)
			if err != nil {
				return nil, err
			}
			for _, key := range sortedKeys(sub) {
				if _, err := section.NewKey(key, formatScalar(sub[key])); err != nil {
					return nil, err
				}
			}
			continue
		}

		if _, err := file.Section(ini.DefaultSection).NewKey(name, formatScalar(value)); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatScalar renders a value as an INI key value. INI has no native
// types, so anything non-string is stringified.
func formatScalar(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

// sortedKeys returns the keys of m in sorted order for deterministic output.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
