package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conn-castle/appliance-catalog/internal/catalog"
	"github.com/conn-castle/appliance-catalog/internal/config"
	"github.com/conn-castle/appliance-catalog/internal/logging"
	"github.com/conn-castle/appliance-catalog/internal/menu"
	"github.com/conn-castle/appliance-catalog/internal/messages"
	"github.com/conn-castle/appliance-catalog/internal/terminal"
)

var (
	isTerminal = terminal.IsInteractiveStreams
	newHuhUI   = func(out io.Writer) menu.UI { return menu.NewHuhUI(out) }
	runMenu    = menu.Run
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	verbose    bool
	plain      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, logger, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return runMenu(cmd.Context(), opts.ui(cmd), session, cmd.OutOrStdout(), logger)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", messages.RootFlagConfig)
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, messages.RootFlagVerbose)
	flags.BoolVar(&opts.plain, "plain", false, messages.RootFlagPlain)

	cmd.AddCommand(newSampleCmd(opts), newDescribeCmd(opts))
	return cmd
}

// newSession loads the config, builds the logger and returns a configured session.
func (o *rootOptions) newSession(cmd *cobra.Command) (*catalog.Session, *zap.Logger, error) {
	path := o.configPath
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return nil, nil, fmt.Errorf(messages.ResolveConfigPathFmt, err)
		}
		path = defaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	level := cfg.Log.Level
	if o.verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Options{
		Level:   level,
		File:    cfg.Log.File,
		Console: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf(messages.LoggerInitFailedFmt, err)
	}
	logger.Debug("config loaded",
		zap.String("path", path),
		zap.String("locale", cfg.Display.Locale),
		zap.String("washer_medium", string(cfg.WasherMediumRule())),
	)

	session := catalog.NewSession(
		catalog.WithLabels(cfg.Labels()),
		catalog.WithWasherMediumRule(cfg.WasherMediumRule()),
		catalog.WithLogger(logger),
	)
	return session, logger, nil
}

// ui picks huh forms on a terminal and line prompts otherwise.
// Forms draw on stderr so the catalog output on stdout stays clean.
func (o *rootOptions) ui(cmd *cobra.Command) menu.UI {
	if !o.plain && isTerminal(cmd.InOrStdin(), cmd.OutOrStdout()) {
		return newHuhUI(cmd.ErrOrStderr())
	}
	return menu.NewLineUI(cmd.InOrStdin(), cmd.OutOrStdout())
}
