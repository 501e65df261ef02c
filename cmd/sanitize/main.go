// Command sanitize applies the sanitizers transforms from the command line.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/njchilds90/sanitizers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app holds the state shared by the subcommands of one invocation.
type app struct {
	v        *viper.Viper
	logger   *zap.Logger
	registry *prometheus.Registry
	san      *sanitizers.Sanitizer
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "sanitize",
		Short:         "Escape and filter untrusted text for HTML, JavaScript, CSS and URIs",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			a.finish(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default ./sanitize.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log rejected values to stderr")
	rootCmd.PersistentFlags().Bool("stats", false, "print rejection counters to stderr when done")
	_ = a.v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = a.v.BindPFlag("stats", rootCmd.PersistentFlags().Lookup("stats"))

	rootCmd.AddCommand(a.applyCmd(), a.stripCmd(), a.directivesCmd())
	return rootCmd
}

// setup loads configuration and builds the logger and sanitizer.
func (a *app) setup(cmd *cobra.Command) error {
	configFile, _ := cmd.Flags().GetString("config")
	if err := loadConfig(a.v, configFile); err != nil {
		return err
	}

	a.logger = newLogger(cmd.ErrOrStderr(), a.v.GetBool("verbose"))
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("using configuration file", zap.String("path", used))
	}

	metrics := sanitizers.NewMetrics("sanitize")
	a.registry = prometheus.NewRegistry()
	metrics.MustRegister(a.registry)
	metrics.Init()

	a.san = sanitizers.New(sanitizers.WithLogger(a.logger), sanitizers.WithMetrics(metrics))
	return nil
}

func (a *app) finish(w io.Writer) {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.registry != nil && a.v.GetBool("stats") {
		if err := writeStats(w, a.registry); err != nil {
			a.logger.Warn("could not gather stats", zap.Error(err))
		}
	}
}

func (a *app) applyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply DIRECTIVE [TEXT...]",
		Short: "Apply a print directive to TEXT, or to stdin when no TEXT is given",
		Args:  cobra.MinimumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveDefault
			}
			return sanitizers.Directives(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			opts := applyOptions{Directive: args[0], Kind: kind}
			if err := opts.Validate(); err != nil {
				return err
			}
			input, err := readInput(cmd.InOrStdin(), args[1:])
			if err != nil {
				return err
			}
			value, err := opts.value(input)
			if err != nil {
				return err
			}
			transform, _ := a.san.Lookup(opts.Directive)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), transform(value))
			return err
		},
	}
	cmd.Flags().StringP("kind", "k", "", "treat the input as content already safe for this kind")
	return cmd
}

func (a *app) stripCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strip [TEXT...]",
		Short: "Strip HTML tags from TEXT, or from stdin, keeping only allowed tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			nospace, _ := cmd.Flags().GetBool("nospace")
			opts := stripOptions{Allow: splitTags(a.v.GetStringSlice("allow")), Nospace: nospace}
			if err := opts.Validate(); err != nil {
				return err
			}
			input, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			var safe *sanitizers.TagWhitelist
			if len(opts.Allow) > 0 {
				safe = sanitizers.NewTagWhitelist(opts.Allow...)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.san.StripHTMLTags(input, safe, !opts.Nospace))
			return err
		},
	}
	cmd.Flags().StringSlice("allow", nil, "comma separated tags to keep")
	cmd.Flags().Bool("nospace", false, "encode whitespace for unquoted attribute values")
	_ = a.v.BindPFlag("allow", cmd.Flags().Lookup("allow"))
	return cmd
}

func (a *app) directivesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "directives",
		Short: "List the print directives understood by apply",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range a.san.Directives() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// readInput joins args with spaces, or reads all of r when there are none.
func readInput(r io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("could not read input: %w", err)
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}

// splitTags flattens comma separated entries, which is how lists arrive
// from the environment.
func splitTags(entries []string) []string {
	var tags []string
	for _, e := range entries {
		for _, t := range strings.Split(e, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}
	return tags
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
