package cmd

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Kind selects which of the read operations an invocation performs.
type Kind int

const (
	// KindNone is an invocation without a command flag.
	KindNone Kind = iota
	// KindShowAll lists every source.
	KindShowAll
	// KindCategories lists the static categories.
	KindCategories
	// KindShowByCategory lists the sources of one category.
	KindShowByCategory
	// KindNews shows the articles of one source.
	KindNews
)

func (k Kind) String() string {
	switch k {
	case KindShowAll:
		return "show_all"
	case KindCategories:
		return "categories"
	case KindShowByCategory:
		return "show"
	case KindNews:
		return "news"
	default:
		return "none"
	}
}

// Command is the parsed invocation. Arg carries the category for
// KindShowByCategory and the news code for KindNews.
type Command struct {
	Kind Kind
	Arg  string
}

const (
	flagShowAll    = "show_all"
	flagCategories = "categories"
	flagShow       = "show"
	flagNews       = "news"
)

// commandFlags lists the mutually exclusive command flags.
var commandFlags = []string{flagShowAll, flagCategories, flagShow, flagNews}

// registerCommandFlags adds the command flags to fs.
func registerCommandFlags(fs *pflag.FlagSet) {
	fs.Bool(flagShowAll, false, "Shows all available news channel codes. (short form: -sa)")
	fs.BoolP(flagCategories, "c", false, "Shows all available news categories.")
	fs.StringP(flagShow, "s", "", "Shows all news channel codes for a specified category.")
	fs.StringP(flagNews, "n", "", "Shows news articles for a specified news channel code.")
}

// parseCommand turns the command flags of fs into a Command. Boolean flags
// explicitly set to false count as absent. On rootCmd, cobra's mutually
// exclusive flag group rejects combinations before RunE, so the combination
// error only reaches callers parsing a bare FlagSet.
func parseCommand(fs *pflag.FlagSet) (Command, error) {
	var found []Command
	if on, _ := fs.GetBool(flagShowAll); on {
		found = append(found, Command{Kind: KindShowAll})
	}
	if on, _ := fs.GetBool(flagCategories); on {
		found = append(found, Command{Kind: KindCategories})
	}
	if fs.Changed(flagShow) {
		v, _ := fs.GetString(flagShow)
		found = append(found, Command{Kind: KindShowByCategory, Arg: v})
	}
	if fs.Changed(flagNews) {
		v, _ := fs.GetString(flagNews)
		found = append(found, Command{Kind: KindNews, Arg: v})
	}
	switch len(found) {
	case 0:
		return Command{Kind: KindNone}, nil
	case 1:
		return found[0], nil
	default:
		return Command{}, fmt.Errorf("flags --%s and --%s cannot be used together", found[0].Kind, found[1].Kind)
	}
}

// normalizeArgs rewrites the two-letter "-sa" short form, which pflag cannot
// register, to "--show_all". Arguments after "--" are left alone.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, a := range args {
		if a == "--" {
			return append(out, args[i:]...)
		}
		if a == "-sa" {
			a = "--" + flagShowAll
		}
		out = append(out, a)
	}
	return out
}
