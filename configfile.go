package configfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ConfigFile provides dot-path access to a single configuration file.
// The file is parsed once at construction; the in-memory document is the
// single source of truth until Save writes it back out.
type ConfigFile struct {
	path    string
	format  Format
	adapter adapter
	doc     map[string]any
}

// New loads the configuration file at path. A leading ~ is expanded to
// the user's home directory. The format adapter is selected by file
// extension (.ini, .json, .yaml/.yml, .toml).
func New(path string) (*ConfigFile, error) {
	expanded, err := expandUser(path)
	if err != nil {
		return nil, err
	}

	format, err := detectFormat(expanded)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file '%s': %w", expanded, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config path '%s' is a directory, not a file", expanded)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", expanded, err)
	}

	ad := adapterFor(format)
	doc, err := ad.parse(data)
	if err != nil {
		return nil, &ParseError{Format: format, Path: expanded, Err: err}
	}

	return &ConfigFile{
		path:    expanded,
		format:  format,
		adapter: ad,
		doc:     doc,
	}, nil
}

// GetOption adjusts how Get resolves and converts a value.
type GetOption func(*getOptions)

type getOptions struct {
	req        coerceRequest
	defaultVal any
	hasDefault bool
}

// WithDefault makes Get return value instead of failing when the path
// does not resolve to an existing node.
func WithDefault(value any) GetOption {
	return func(o *getOptions) {
		o.defaultVal = value
		o.hasDefault = true
	}
}

// WithType requests explicit conversion of the retrieved scalar to kind.
// It applies to single scalar values only, and takes precedence over
// WithParseTypes when both are given.
func WithType(kind Kind) GetOption {
	return func(o *getOptions) {
		o.req.mode = coerceExplicit
		o.req.kind = kind
	}
}

// WithParseTypes requests recursive type inference on the retrieved
// value: string booleans, integers, floats, and list/mapping literals
// are parsed into native types. Retrieving a section infers every value
// in it.
func WithParseTypes() GetOption {
	return func(o *getOptions) {
		if o.req.mode != coerceExplicit {
			o.req.mode = coerceInfer
		}
	}
}

// Get retrieves the value at a dot-delimited path. Addressing a section
// returns the whole submapping. A missing path fails with ErrMissingKey
// unless WithDefault was given.
func (c *ConfigFile) Get(path string, opts ...GetOption) (any, error) {
	var o getOptions
	for _, opt := range opts {
		opt(&o)
	}

	segments, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	value, err := locate(c.doc, segments)
	if err != nil {
		if o.hasDefault && errors.Is(err, ErrMissingKey) {
			return o.defaultVal, nil
		}
		return nil, err
	}

	return applyCoercion(value, o.req)
}

// Set stores value at a dot-delimited path, creating any sections along
// the way that do not yet exist. The value is serialized by the format
// adapter on Save.
func (c *ConfigFile) Set(path string, value any) error {
	segments, err := splitPath(path)
	if err != nil {
		return err
	}
	upsert(c.doc, segments, value)
	return nil
}

// Delete removes the section or key at a dot-delimited path. It fails
// with ErrMissingKey if the path did not exist.
func (c *ConfigFile) Delete(path string) error {
	segments, err := splitPath(path)
	if err != nil {
		return err
	}
	if !remove(c.doc, segments) {
		return fmt.Errorf("%w: %q", ErrMissingKey, path)
	}
	return nil
}

// Has reports whether a dot-delimited path resolves to an existing
// section or key.
func (c *ConfigFile) Has(path string) bool {
	segments, err := splitPath(path)
	if err != nil {
		return false
	}
	_, err = locate(c.doc, segments)
	return err == nil
}

// HasWild reports whether a bare key or section name exists anywhere in
// the document, at any depth.
func (c *ConfigFile) HasWild(key string) bool {
	if key == "" {
		return false
	}
	_, found := searchWild(c.doc, key)
	return found
}

// Stringify serializes the current in-memory document to a string
// without touching the filesystem. Pending unsaved edits are reflected.
func (c *ConfigFile) Stringify() (string, error) {
	data, err := c.adapter.serialize(c.doc)
	if err != nil {
		return "", fmt.Errorf("failed to serialize %s document: %w", c.format, err)
	}
	return string(data), nil
}

// Save serializes the in-memory document and writes it over the
// underlying file. The write is atomic: the target is only replaced
// once the new content is fully written and synced.
func (c *ConfigFile) Save() error {
	data, err := c.adapter.serialize(c.doc)
	if err != nil {
		return fmt.Errorf("failed to serialize %s document: %w", c.format, err)
	}
	return atomicWriteFile(c.path, data)
}

// RestoreOriginal replaces the in-memory document with the contents of
// the original config file, discarding any unsaved edits. If
// originalPath is empty, the default sibling path is used
// (config.ini -> config.original.ini). Nothing is saved to disk.
func (c *ConfigFile) RestoreOriginal(originalPath string) error {
	if originalPath == "" {
		originalPath = c.OriginalFilePath()
	} else {
		expanded, err := expandUser(originalPath)
		if err != nil {
			return err
		}
		originalPath = expanded
	}

	data, err := os.ReadFile(originalPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: '%s'", ErrOriginalNotFound, originalPath)
		}
		return fmt.Errorf("failed to read original config file '%s': %w", originalPath, err)
	}

	doc, err := c.adapter.parse(data)
	if err != nil {
		return &ParseError{Format: c.format, Path: originalPath, Err: err}
	}

	c.doc = doc
	return nil
}

// FilePath returns the resolved path of the underlying config file.
func (c *ConfigFile) FilePath() string {
	return c.path
}

// OriginalFilePath returns the default path of the original config file,
// derived by inserting "original" before the extension.
func (c *ConfigFile) OriginalFilePath() string {
	ext := filepath.Ext(c.path)
	return strings.TrimSuffix(c.path, ext) + ".original" + ext
}

// Format returns the detected format of the underlying config file.
func (c *ConfigFile) Format() Format {
	return c.format
}
