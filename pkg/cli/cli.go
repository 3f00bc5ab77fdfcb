package cli

import (
	"context"
	"io"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/khalid-nowaf/wordtrie/pkg/config"
)

// Globals are the flags shared by every command.
type Globals struct {
	Config   kong.ConfigFlag `help:"YAML file to read flag defaults from" type:"path"`
	LogLevel string          `help:"Log level: debug, info, warn, error or disabled" default:"info" env:"WORDTRIE_LOG_LEVEL"`
	Format   string          `help:"Input format: txt, csv, tsv or json, guessed from the file extension when empty" env:"WORDTRIE_FORMAT"`
	Key      string          `help:"Column (csv, tsv) or field (json) holding the word" default:"word" env:"WORDTRIE_KEY"`
}

// CLI is the command tree of the wordtrie tool.
type CLI struct {
	Globals

	Build    BuildCmd    `cmd:"" help:"Insert the words of FILES and write the tree rendering"`
	Contains ContainsCmd `cmd:"" help:"Check whether words were inserted from FILES"`
	Export   ExportCmd   `cmd:"" help:"Write the distinct words of FILES in rune order"`
	Stats    StatsCmd    `cmd:"" help:"Print statistics about the trie built from FILES"`
}

// Context is passed to the Run method of every command.
type Context struct {
	*Globals
	Ctx    context.Context // canceled on interrupt, nil means never
	Logger zerolog.Logger
	Stdout io.Writer // results that are not written to a file
}

func (c *Context) runContext() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}
	return c.Ctx
}

// Options returns the kong options of the tool, flag defaults are also read
// from config.DefaultPaths or the file given with --config.
func Options() []kong.Option {
	return []kong.Option{
		kong.Name("wordtrie"),
		kong.Description("Build a prefix tree from word lists, query it and render it."),
		kong.UsageOnError(),
		kong.Configuration(config.Loader, config.DefaultPaths...),
	}
}
