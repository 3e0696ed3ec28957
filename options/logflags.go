package options

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cliglue/cliglue/env"
	"github.com/cliglue/cliglue/log"
)

// LogFlags is the standard logging flag set of a command.
type LogFlags struct {
	required []string
}

// RegisterLogFlags declares the logging flags, each with an ENV-backed default.
func RegisterLogFlags(flags *pflag.FlagSet, envs env.Provider, progName string) *LogFlags {
	f := &LogFlags{}
	defaults := log.DefaultConfig()
	levels := strings.Join(log.LevelNames(), ", ")
	formats := fmt.Sprintf(`"%s" or "%s"`, log.FormatConsole, log.FormatJSON)

	flags.CountP("verbose", "v", "increase log verbosity")
	flags.BoolP("quiet", "q", false, "suppress console log messages")

	f.apply(flags, envs, "log-level", EnvDefault{
		Name:    "LOG_LEVEL",
		Help:    fmt.Sprintf("base console log level, one of: %s", levels),
		Default: defaults.ConsoleLevel.String(),
	})
	f.apply(flags, envs, "log-format", EnvDefault{
		Name:    "LOG_FORMAT",
		Help:    fmt.Sprintf("console log format, %s", formats),
		Default: string(defaults.ConsoleFormat),
	})
	f.apply(flags, envs, "log-file", EnvDefault{
		Name:    "LOG_FILE",
		Help:    "log filename, empty value disables the log file",
		Default: DefaultLogFile(progName),
	})
	f.apply(flags, envs, "log-file-level", EnvDefault{
		Name:    "LOG_FILE_LEVEL",
		Help:    fmt.Sprintf("log file level, one of: %s", levels),
		Default: defaults.FileLevel.String(),
	})
	f.apply(flags, envs, "log-file-format", EnvDefault{
		Name:    "LOG_FILE_FORMAT",
		Help:    fmt.Sprintf("log file format, %s", formats),
		Default: string(defaults.FileFormat),
	})

	return f
}

func (f *LogFlags) apply(flags *pflag.FlagSet, envs env.Provider, name string, d EnvDefault) {
	if required := d.Apply(flags, envs, name, ""); required {
		f.required = append(f.required, name)
	}
}

// Required returns names of flags without any default, CLI must supply them.
func (f *LogFlags) Required() []string {
	return f.required
}

// MarkRequired registers the required flags, a missing one fails with
// the parser's standard "required flag(s) not set" error.
func (f *LogFlags) MarkRequired(cmd *cobra.Command) error {
	for _, name := range f.required {
		if err := cmd.MarkFlagRequired(name); err != nil {
			return err
		}
	}
	return nil
}

// Config reads the parsed flag values into a log.Config.
// An invalid level or format name is propagated as an error.
func (f *LogFlags) Config(flags *pflag.FlagSet) (log.Config, error) {
	cfg := log.Config{}
	var err error

	if cfg.Verbosity, err = flags.GetCount("verbose"); err != nil {
		return cfg, err
	}
	if cfg.Quiet, err = flags.GetBool("quiet"); err != nil {
		return cfg, err
	}
	if cfg.File, err = flags.GetString("log-file"); err != nil {
		return cfg, err
	}

	if value, err := flags.GetString("log-level"); err != nil {
		return cfg, err
	} else if cfg.ConsoleLevel, err = log.ParseLevel(value); err != nil {
		return cfg, err
	}

	if value, err := flags.GetString("log-format"); err != nil {
		return cfg, err
	} else if cfg.ConsoleFormat, err = log.ParseFormat(value); err != nil {
		return cfg, err
	}

	if value, err := flags.GetString("log-file-level"); err != nil {
		return cfg, err
	} else if cfg.FileLevel, err = log.ParseLevel(value); err != nil {
		return cfg, err
	}

	if value, err := flags.GetString("log-file-format"); err != nil {
		return cfg, err
	} else if cfg.FileFormat, err = log.ParseFormat(value); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Dump renders the parsed configuration for verbose diagnostics.
func Dump(cfg log.Config) string {
	return fmt.Sprintf("Parsed options: %#v", cfg)
}

// DefaultLogFile derives the default log filename from the program name,
// eg. "my tool.exe" -> "log_my_tool.log".
func DefaultLogFile(progName string) string {
	base := filepath.Base(progName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("log_%s.log", log.SanitizeFilename(base))
}
