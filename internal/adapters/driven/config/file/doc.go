// Package file provides a file-based implementation of the ConfigStore
// driven port. Configuration persists as TOML on the local filesystem.
package file
