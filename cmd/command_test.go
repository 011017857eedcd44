package cmd

import (
	"reflect"
	"testing"

	"github.com/spf13/pflag"
)

func parseArgs(t *testing.T, args ...string) (Command, error) {
	t.Helper()
	fs := pflag.NewFlagSet("instantnews", pflag.ContinueOnError)
	registerCommandFlags(fs)
	if err := fs.Parse(normalizeArgs(args)); err != nil {
		t.Fatalf("Parse(%v): %v", args, err)
	}
	return parseCommand(fs)
}

// TestParseCommand checks that every accepted spelling of the four flags
// produces exactly one command variant.
func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Command
	}{
		{"no flags", nil, Command{Kind: KindNone}},
		{"show_all long", []string{"--show_all"}, Command{Kind: KindShowAll}},
		{"show_all short", []string{"-sa"}, Command{Kind: KindShowAll}},
		{"show_all false", []string{"--show_all=false"}, Command{Kind: KindNone}},
		{"categories long", []string{"--categories"}, Command{Kind: KindCategories}},
		{"categories short", []string{"-c"}, Command{Kind: KindCategories}},
		{"show long", []string{"--show", "sport"}, Command{Kind: KindShowByCategory, Arg: "sport"}},
		{"show short", []string{"-s", "technology"}, Command{Kind: KindShowByCategory, Arg: "technology"}},
		{"show empty", []string{"--show="}, Command{Kind: KindShowByCategory, Arg: ""}},
		{"news long", []string{"--news", "bbc-news"}, Command{Kind: KindNews, Arg: "bbc-news"}},
		{"news short", []string{"-n", "abc-news"}, Command{Kind: KindNews, Arg: "abc-news"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseCommand(%v) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseCommandRejectsCombinations(t *testing.T) {
	if _, err := parseArgs(t, "-sa", "-c"); err == nil {
		t.Fatal("expected an error for --show_all with --categories")
	}
	if _, err := parseArgs(t, "-s", "sport", "-n", "bbc-news"); err == nil {
		t.Fatal("expected an error for --show with --news")
	}
}

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{[]string{"-sa"}, []string{"--show_all"}},
		{[]string{"--debug", "-sa"}, []string{"--debug", "--show_all"}},
		{[]string{"-s", "a"}, []string{"-s", "a"}},
		{[]string{"-s", "sport"}, []string{"-s", "sport"}},
		{[]string{"--", "-sa"}, []string{"--", "-sa"}},
		{[]string{}, []string{}},
	}
	for _, tt := range tests {
		if got := normalizeArgs(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("normalizeArgs(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestRootFlagsRegistered verifies the root command exposes the documented
// flag names and short forms.
func TestRootFlagsRegistered(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
	}{
		{flagShowAll, ""},
		{flagCategories, "c"},
		{flagShow, "s"},
		{flagNews, "n"},
	}
	for _, tt := range tests {
		f := rootCmd.Flags().Lookup(tt.name)
		if f == nil {
			t.Errorf("flag --%s is not registered", tt.name)
			continue
		}
		if f.Shorthand != tt.shorthand {
			t.Errorf("flag --%s shorthand = %q, want %q", tt.name, f.Shorthand, tt.shorthand)
		}
	}
	for _, name := range []string{"debug", "timeout", "envfile", "baseurl"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag --%s is not registered", name)
		}
	}
}
