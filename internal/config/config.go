// Package config loads the optional .scount.toml project file that
// supplies default CLI flag values for cmd/scount.
//
// The library packages under internal/* never read this file, or any
// other file, on their own: it exists purely to seed StatOptions/CLI
// defaults before the user's explicit flags are applied on top.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/raven-computing/reckon/internal/types"
)

// Config holds the project-wide defaults cmd/scount reads from
// .scount.toml: the operation and format selections (which have no CLI
// flag of their own) and defaults for the --stop-on-error, --exclude and
// --format flags.
type Config struct {
	Operations   []string `toml:"operations"`
	Formats      []string `toml:"formats"`
	StopOnError  bool     `toml:"stop_on_error"`
	Exclude      []string `toml:"exclude"`
	ReportFormat string   `toml:"format"`
}

// Load reads and parses the TOML file at path. A missing file is not an
// error: it returns a zero-valued Config, matching the "no project file"
// case the CLI falls back to its own flag defaults for.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// OperationMask converts the operations list ("llc", "phl", "wrd",
// "chr") to the CountOption bitset StatOptions carries. An empty list
// yields zero, the all-operations sentinel.
func (c *Config) OperationMask() (types.CountOption, error) {
	var mask types.CountOption
	for _, name := range c.Operations {
		switch name {
		case "llc":
			mask |= types.OptCountLogicalLines
		case "phl":
			mask |= types.OptCountPhysicalLines
		case "wrd":
			mask |= types.OptCountWords
		case "chr":
			mask |= types.OptCountCharacters
		default:
			return 0, fmt.Errorf("unknown operation %q in config (expected llc, phl, wrd or chr)", name)
		}
	}
	return mask, nil
}

// FormatMask converts the formats list ("c", "java", "md", "txt") to the
// FormatOption bitset StatOptions carries. An empty list yields zero,
// the all-formats sentinel.
func (c *Config) FormatMask() (types.FormatOption, error) {
	var mask types.FormatOption
	for _, name := range c.Formats {
		switch name {
		case "c":
			mask |= types.MakeFormatOption(types.LangC)
		case "java":
			mask |= types.MakeFormatOption(types.LangJava)
		case "md":
			mask |= types.MakeFormatOption(types.Markdown)
		case "txt":
			mask |= types.MakeFormatOption(types.UnformattedText)
		default:
			return 0, fmt.Errorf("unknown format %q in config (expected c, java, md or txt)", name)
		}
	}
	return mask, nil
}
