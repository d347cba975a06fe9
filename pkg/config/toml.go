package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// configHeader is written above the encoded values so a generated file
// explains itself.
const configHeader = `# wordcost configuration
#
# [dict]    path: word list, single dict_NNNN.bin chunk or chunk directory.
#           Relative paths are tried against the working directory, the
#           executable directory and this file's directory.
# [search]  min_length: visited words must be strictly longer than this.
#           max_expansions: stop a query after this many expansions, 0 for no limit.
# [costs]   insert, delete, substitute, anagram: used when a server request
#           carries no cost vector. Instruction files always bring their own.
# [server]  max_word_length: requests naming longer words are refused. The
#           longest dictionary word is always accepted.

`

// decodeConfigFile decodes path over cfg. Keys wordcost does not know are
// reported but do not fail the load.
func decodeConfigFile(path string, cfg *Config) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		log.Warnf("TOML parsing error in config file %s: %v. Attempting partial recovery...", path, err)
		return err
	}
	for _, key := range meta.Undecoded() {
		log.Warnf("Unknown config key %q in %s", key.String(), path)
	}
	return nil
}

// writeConfigFile encodes cfg to path below configHeader.
func writeConfigFile(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString(configHeader)
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		log.Errorf("Failed to write config file: %v", err)
		return err
	}
	return nil
}

// recoverConfig decodes path into a generic document and copies every value
// that still has the right type over the defaults. It fails only when the
// file is not TOML at all.
func recoverConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	var doc map[string]any
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return cfg, err
	}

	dict := table(doc, "dict")
	setString(dict, "path", &cfg.Dict.Path)

	search := table(doc, "search")
	setInt(search, "min_length", &cfg.Search.MinLength)
	setInt(search, "max_expansions", &cfg.Search.MaxExpansions)

	costs := table(doc, "costs")
	setInt(costs, "insert", &cfg.Costs.Insert)
	setInt(costs, "delete", &cfg.Costs.Delete)
	setInt(costs, "substitute", &cfg.Costs.Substitute)
	setInt(costs, "anagram", &cfg.Costs.Anagram)

	server := table(doc, "server")
	setInt(server, "max_word_length", &cfg.Server.MaxWordLength)
	return cfg, nil
}

// table returns the named section, or nil when it is missing or not a table.
func table(doc map[string]any, name string) map[string]any {
	section, _ := doc[name].(map[string]any)
	return section
}

func setInt(section map[string]any, key string, dst *int) {
	switch v := section[key].(type) {
	case int64:
		*dst = int(v)
	case nil:
	default:
		log.Warnf("Config key %s has type %T, want integer. Keeping %d", key, v, *dst)
	}
}

func setString(section map[string]any, key string, dst *string) {
	switch v := section[key].(type) {
	case string:
		*dst = v
	case nil:
	default:
		log.Warnf("Config key %s has type %T, want string. Keeping %q", key, v, *dst)
	}
}
