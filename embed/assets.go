// Package embed provides the embedded stylesheet and client runtime for modalkit.
package embed

import (
	"crypto/sha256"
	"embed"
	"fmt"
)

//go:embed modal.css runtime.js
var assetsFS embed.FS

const (
	// StylesheetName is the file name of the modal stylesheet.
	StylesheetName = "modal.css"
	// RuntimeName is the file name of the client runtime.
	RuntimeName = "runtime.js"
)

// Stylesheet returns the modal stylesheet.
func Stylesheet() []byte {
	data, _ := assetsFS.ReadFile(StylesheetName)
	return data
}

// RuntimeJS returns the client runtime that binds close controls to server actions.
func RuntimeJS() []byte {
	data, _ := assetsFS.ReadFile(RuntimeName)
	return data
}

// Hash returns a truncated SHA256 hash of an embedded asset.
func Hash(name string) (string, error) {
	content, err := assetsFS.ReadFile(name)
	if err != nil {
		return "", err
	}
	h := sha256.Sum256(content)
	return fmt.Sprintf("%x", h[:8]), nil
}
