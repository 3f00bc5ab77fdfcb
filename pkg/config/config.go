// Package config loads default flag values from a YAML (or JSON/TOML) file
// through viper and hands them to kong as a resolver.
//
// Keys are the long flag names, for example:
//
//	log-level: debug
//	format: csv
//	key: term
//	output: trie.txt
//
// Flags given on the command line always win over the file.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/spf13/viper"
)

// DefaultPaths are the files tried when --config is not given, missing files are ignored.
var DefaultPaths = []string{
	"./wordtrie.yaml",
	"~/.config/wordtrie/config.yaml",
}

// Loader reads a YAML document into viper and returns a kong resolver for it.
// It is meant to be passed to kong.Configuration.
func Loader(r io.Reader) (kong.Resolver, error) {
	return LoaderWithType("yaml")(r)
}

// LoaderWithType is Loader for another viper config type such as "json" or "toml".
func LoaderWithType(configType string) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		v := viper.New()
		v.SetConfigType(configType)
		if err := v.ReadConfig(r); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return Resolver(v), nil
	}
}

// Resolver resolves kong flags from the values held by v.
// A flag named "log-level" is looked up as "log-level" and then "log_level".
// Values of commands are looked up under the command name too, "export.format".
func Resolver(v *viper.Viper) kong.Resolver {
	return kong.ResolverFunc(func(kctx *kong.Context, parent *kong.Path, flag *kong.Flag) (interface{}, error) {
		for _, key := range lookupKeys(parent, flag) {
			if v.IsSet(key) {
				return v.Get(key), nil
			}
		}
		return nil, nil
	})
}

func lookupKeys(parent *kong.Path, flag *kong.Flag) []string {
	names := []string{flag.Name}
	if underscored := strings.ReplaceAll(flag.Name, "-", "_"); underscored != flag.Name {
		names = append(names, underscored)
	}

	keys := []string{}
	if parent != nil && parent.Command != nil {
		for _, name := range names {
			keys = append(keys, parent.Command.Name+"."+name)
		}
	}
	return append(keys, names...)
}
