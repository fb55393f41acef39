package compilation

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"svlang/internal/token"
)

// PredefinedMacro is one (name, body) pair prepended to every compilation
// unit.
type PredefinedMacro struct {
	Name string `toml:"name"`
	Body string `toml:"body"`
}

// Options is the recognized option set. The zero value is
// usable; withDefaults fills the documented defaults.
type Options struct {
	LanguageVersion token.LanguageVersion `toml:"-"`
	// LanguageVersionName is the textual form ("1800-2017") accepted
	// from configuration files and flags.
	LanguageVersionName string `toml:"language_version"`

	MaxIncludeDepth   int `toml:"max_include_depth"`
	MaxMacroDepth     int `toml:"max_macro_depth"`
	MaxConstexprDepth int `toml:"max_constexpr_depth"`

	DefaultTimescale string `toml:"default_timescale"`
	DefaultNetType   string `toml:"default_nettype"`

	IncludeDirsUser   []string `toml:"include_dirs_user"`
	IncludeDirsSystem []string `toml:"include_dirs_system"`

	PredefinedMacros []PredefinedMacro `toml:"predefined_macros"`

	AllowHierarchicalInConst bool `toml:"allow_hierarchical_in_const"`
}

func (o Options) withDefaults() Options {
	if o.LanguageVersion == 0 {
		if v, err := ParseLanguageVersion(o.LanguageVersionName); err == nil && o.LanguageVersionName != "" {
			o.LanguageVersion = v
		} else {
			o.LanguageVersion = token.Latest
		}
	}
	if o.MaxIncludeDepth <= 0 {
		o.MaxIncludeDepth = 1024
	}
	if o.MaxMacroDepth <= 0 {
		o.MaxMacroDepth = 32
	}
	if o.MaxConstexprDepth <= 0 {
		o.MaxConstexprDepth = 128
	}
	if o.DefaultNetType == "" {
		o.DefaultNetType = "wire"
	}
	if o.DefaultTimescale == "" {
		o.DefaultTimescale = "1ns/1ns"
	}
	return o
}

// ParseLanguageVersion maps the textual revision names to the keyword-set
// toggle.
func ParseLanguageVersion(s string) (token.LanguageVersion, error) {
	switch s {
	case "1364-1995", "1995":
		return token.V1995, nil
	case "1364-2001", "2001":
		return token.V2001, nil
	case "1800-2005", "2005":
		return token.V2005, nil
	case "1800-2009", "2009":
		return token.V2009, nil
	case "1800-2012", "2012":
		return token.V2012, nil
	case "1800-2017", "2017":
		return token.V2017, nil
	case "1800-2023", "2023":
		return token.V2023, nil
	case "":
		return token.Latest, nil
	}
	return 0, fmt.Errorf("unknown language version %q", s)
}

// LoadOptions reads an svlang.toml project file. Missing files are not an
// error: the zero Options is a valid configuration.
func LoadOptions(path string) (Options, error) {
	var opts Options
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, err
	}
	if err := toml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("%s: %w", path, err)
	}
	if opts.LanguageVersionName != "" {
		v, err := ParseLanguageVersion(opts.LanguageVersionName)
		if err != nil {
			return opts, fmt.Errorf("%s: %w", path, err)
		}
		opts.LanguageVersion = v
	}
	return opts, nil
}
