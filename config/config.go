// Package config loads modalkit host configuration from YAML.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/aydenstechdungeon/modalkit/component"
	"github.com/aydenstechdungeon/modalkit/component/modal"
)

// Config holds the host configuration.
type Config struct {
	// Addr is the listen address of the demo server.
	Addr string `yaml:"addr"`
	// AppName is used as the page title.
	AppName string `yaml:"appName"`
	// DevMode enables config hot reload.
	DevMode bool `yaml:"dev"`
	// Compress enables Brotli/Gzip response compression.
	Compress bool `yaml:"compress"`
	// MaxRequestBodySize caps action request bodies.
	MaxRequestBodySize int `yaml:"maxRequestBodySize"`
	// Defaults are props every modal starts from. A modal's own props win.
	Defaults component.Props `yaml:"defaults"`
	// Modals are the loose modal definitions, keyed like the modal props
	// (isOpen, closable, headerTitle, ...).
	Modals []component.Props `yaml:"modals"`
}

// idNamespace derives ids for modals configured without one.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("modalkit/modal"))

// GeneratedID returns the id given to the modal at index when the config
// does not name it. The same index always yields the same id, so pages
// rendered before a reload keep working.
func GeneratedID(index int) string {
	return uuid.NewSHA1(idNamespace, []byte(strconv.Itoa(index))).String()
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Addr:               ":3000",
		AppName:            "modalkit",
		Compress:           true,
		MaxRequestBodySize: 4 * 1024,
	}
}

// Load reads and parses a YAML config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses YAML config data on top of the defaults. Each modal is merged
// over the defaults section, and modals without an id get one derived from
// their position. Modal props with an unexpected shape are logged and still
// accepted.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	seen := make(map[string]int, len(cfg.Modals))
	for i, own := range cfg.Modals {
		props := cfg.Defaults.Clone()
		if props == nil {
			props = make(component.Props, len(own))
		}
		props.Merge(own)
		if !props.Has(modal.PropID) {
			props.Set(modal.PropID, GeneratedID(i))
		}
		cfg.Modals[i] = props

		// Compare the ids modals actually render with, so "" and the
		// default id collide.
		id := modal.FromProps(props).ID
		if prev, ok := seen[id]; ok {
			return Config{}, fmt.Errorf("duplicate modal id %q (modals %d and %d)", id, prev+1, i+1)
		}
		seen[id] = i

		if err := modal.Schema.Validate(props); err != nil {
			log.Printf("Modal %q: %v", id, err)
		}
	}
	return cfg, nil
}

// ModalConfigs decodes every configured modal. OnClose is left unset.
func (c Config) ModalConfigs() []modal.Config {
	out := make([]modal.Config, 0, len(c.Modals))
	for _, props := range c.Modals {
		out = append(out, modal.FromProps(props))
	}
	return out
}
