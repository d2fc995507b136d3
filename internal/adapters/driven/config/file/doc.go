// Package file provides file-based implementations of driven port interfaces.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage with live reload
//
// Events themselves are never written to disk.
package file
