// Package configfile provides unified read/modify/write access to
// configuration files stored in INI, JSON, YAML, or TOML format.
//
// A ConfigFile addresses sections and keys with dot-delimited paths
// instead of format-specific syntax. The file is parsed once into an
// in-memory document; Get, Set, Delete, and Has operate on that document,
// and nothing is written back until an explicit Save.
//
// Quick Start:
//
//	cf, err := configfile.New("config.ini")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	raw, _ := cf.Get("section.num_key")  // "5"
//	num, _ := cf.Get("section.num_key", configfile.WithType(configfile.KindInt))
//	section, _ := cf.Get("section", configfile.WithParseTypes())
//
//	cf.Set("section.new_key", "value")
//	if err := cf.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// Values are returned as whatever native type the format's parser yields:
// INI yields strings for everything, while JSON, YAML, and TOML yield
// native types. The coercion options reconcile this inconsistency:
// WithType converts a single scalar to a requested kind, and
// WithParseTypes recursively infers types for everything retrieved.
//
// A sibling "original" file (config.ini -> config.original.ini) can be
// loaded with RestoreOriginal to discard unsaved edits and reset the
// in-memory document to a known-good state.
//
// ConfigFile is not safe for concurrent use. Each instance exclusively
// owns its in-memory document; pointing multiple instances at the same
// file is undefined (last Save wins).
package configfile
