package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cliglue/cliglue/env"
	"github.com/cliglue/cliglue/json"
	"github.com/cliglue/cliglue/log"
	"github.com/cliglue/cliglue/options"
)

const description = `
Demo of the cliglue helpers:
flags with ENV-backed defaults, JSON from ENV
and console + file logging that plays nice with a progress bar.
`

// loadEnvs combines OS ENVs with ".env" files from dirs,
// OS values take precedence. Flag defaults are resolved at registration,
// so this runs before the command is built and logs nowhere.
func loadEnvs(fs afero.Fs, dirs ...string) *env.Map {
	return env.LoadDotEnv(zap.NewNop().Sugar(), env.FromOs(), fs, dirs)
}

type rootCommand struct {
	cmd      *cobra.Command
	envs     *env.Map
	logFlags *options.LogFlags
	stderr   io.Writer
	logFile  *log.File
}

// NewRootCommand creates the demo command.
func NewRootCommand(stderr io.Writer, envs *env.Map) *rootCommand {
	root := &rootCommand{envs: envs, stderr: stderr}

	root.cmd = &cobra.Command{
		Use:          filepath.Base(os.Args[0]), // name of the binary
		Short:        description,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.run(cmd)
		},
	}

	// Flags
	flags := root.cmd.Flags()
	flags.SortFlags = true
	root.logFlags = options.RegisterLogFlags(flags, envs, os.Args[0])
	flags.String("json-env", "", "log JSON data parsed from the named ENV variable")
	if err := root.logFlags.MarkRequired(root.cmd); err != nil {
		panic(err)
	}

	return root
}

func (root *rootCommand) Execute() int {
	defer func() {
		if err := root.logFile.Close(); err != nil {
			panic(err)
		}
	}()

	if err := root.cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func (root *rootCommand) run(cmd *cobra.Command) error {
	cfg, err := root.logFlags.Config(cmd.Flags())
	if err != nil {
		return err
	}

	if len(cfg.File) > 0 {
		if root.logFile, err = log.NewFile(cfg.File); err != nil {
			return err
		}
	}

	writer := log.NewSafeWriter(root.stderr)
	logger, settings := log.NewCliLogger(writer, root.logFile, cfg)
	defer func() {
		_ = logger.Sync()
	}()

	logger.Debug(options.Dump(cfg))
	logger.Debugf("verbosity %d, quiet %t", settings.Verbosity, settings.Quiet)
	logger.Info("demo started")
	logger.Warn("a warning goes to the console and the log file")
	logger.Error("an error does too")

	if name, err := cmd.Flags().GetString("json-env"); err != nil {
		return err
	} else if len(name) > 0 {
		data := json.MustDecodeEnv(root.envs, name)
		logger.Infof("%s = %s", name, json.MustEncodeString(data, false))
	}

	// Progress bar and log lines share the error stream without clashes.
	bar := progressbar.NewOptions(50,
		progressbar.OptionSetWriter(root.stderr),
		progressbar.OptionSetDescription("working"),
		progressbar.OptionClearOnFinish(),
	)
	writer.Attach(bar)
	for i := 0; i < 50; i++ {
		if i == 25 {
			logger.Info("halfway there")
		}
		if err := bar.Add(1); err != nil {
			return err
		}
		time.Sleep(20 * time.Millisecond)
	}
	writer.Detach()
	if err := bar.Finish(); err != nil {
		return err
	}

	logger.Info("demo finished")
	return nil
}
