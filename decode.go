package configfile

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the section at path into the target struct or map
// pointer. An empty path decodes the whole document. Struct fields are
// matched by tags named after the file format ("ini", "json", "yaml",
// "toml"), with weakly typed input so INI's all-string values decode
// into numeric and boolean fields.
func (c *ConfigFile) Scan(path string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be a non-nil pointer, got %T", target)
	}

	var section any = c.doc
	if path != "" {
		segments, err := splitPath(path)
		if err != nil {
			return err
		}
		node, err := locate(c.doc, segments)
		if err != nil {
			return err
		}
		section = node
	}

	sectionMap, isMap := section.(map[string]any)
	if !isMap {
		return fmt.Errorf("path %q refers to a non-map value (type %T)", path, section)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          string(c.format),
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(sectionMap); err != nil {
		return fmt.Errorf("failed to decode section %q: %w", path, err)
	}

	return nil
}
