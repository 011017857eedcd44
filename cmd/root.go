package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/instantnews/instantnews/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// defaultTimeout bounds each API request.
const defaultTimeout = 30 * time.Second

var c *config.Conf = &config.Conf{}

// runError marks a failure raised after flag parsing. Cobra has already been
// told not to print it, so Execute prints the user-facing message instead.
type runError struct {
	err error
}

func (e *runError) Error() string { return e.err.Error() }
func (e *runError) Unwrap() error { return e.err }

// rootCmd represents the base command; instantnews has no subcommands.
var rootCmd = &cobra.Command{
	Use:   "instantnews",
	Short: "Browse NewsAPI sources and headlines from the terminal",
	Long: `instantnews lists the news sources known to newsapi.org, filters them by
category and prints the current headlines of a source.

An API key is read from the IN_API_KEY environment variable.

Examples:
  instantnews --show_all
  instantnews --categories
  instantnews --show technology
  instantnews --news bbc-news`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true

		command, err := parseCommand(cmd.Flags())
		if err != nil {
			return &runError{err}
		}
		if err := loadConf(c); err != nil {
			return &runError{err}
		}

		log := newLogger(c.Debug)
		defer log.Sync()

		if err := runCommand(cmd.Context(), c, command, cmd.OutOrStdout(), log, dialNewsAPI); err != nil {
			return &runError{err}
		}
		return nil
	},
}

// Execute runs the root command and exits non-zero on any failure.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:])
	stop()
	if code != 0 {
		os.Exit(code)
	}
}

// execute runs rootCmd with args and returns the process status. Failures
// raised after flag parsing are reported on the command's output; cobra
// reports its own parse errors.
func execute(ctx context.Context, args []string) int {
	rootCmd.SetArgs(normalizeArgs(args))
	err := rootCmd.ExecuteContext(ctx)
	var re *runError
	if errors.As(err, &re) {
		fmt.Fprintln(rootCmd.OutOrStdout(), userMessage(re.err))
	}
	return exitCode(err)
}

func init() {
	registerCommandFlags(rootCmd.Flags())
	rootCmd.MarkFlagsMutuallyExclusive(commandFlags...)

	rootCmd.PersistentFlags().Bool("debug", false, "log API requests to stderr")
	rootCmd.PersistentFlags().Duration("timeout", defaultTimeout, "per-request timeout (0 disables)")
	rootCmd.PersistentFlags().String("envfile", "", "dotenv file to read "+config.KeyEnv+" from")
	rootCmd.PersistentFlags().String("baseurl", config.DefaultBaseURL, "NewsAPI base URL")
	rootCmd.PersistentFlags().MarkHidden("baseurl")

	viper.BindPFlags(rootCmd.PersistentFlags())
	viper.BindEnv("apikey", config.KeyEnv)
}

// loadConf decodes flags and the environment into conf. When an env file is
// named it is loaded first; variables already set in the process win.
func loadConf(conf *config.Conf) error {
	*conf = config.Conf{}
	if err := viper.Unmarshal(conf); err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}
	if conf.EnvFile == "" {
		return nil
	}
	if err := godotenv.Load(conf.EnvFile); err != nil {
		return fmt.Errorf("loading %s: %w", conf.EnvFile, err)
	}
	if err := viper.Unmarshal(conf); err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}
	return nil
}

func newLogger(debug bool) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
