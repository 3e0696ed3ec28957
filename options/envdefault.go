package options

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/cliglue/cliglue/env"
)

// EnvDefault describes how a flag declaration gets its default value from
// an environment variable.
//
// Example:
//
//	d := EnvDefault{Name: "OUT_FILE", Help: "output filename"}
//	if d.Apply(flags, envs, "output", "o") {
//	    // flag must be marked as required
//	}
type EnvDefault struct {
	Name string // ENV variable name
	Help string
	// Default is the explicit default, used when the ENV variable is not
	// set. An empty string means "no explicit default": the flag becomes
	// required unless it is Optional. A flag whose default should be the
	// empty string does not need this helper.
	Default  string
	Optional bool // allow the flag to stay unset everywhere
	// NoDefault disables the default-setting logic, the ENV variable name
	// is still documented in the help text.
	NoDefault bool
}

// HelpText appends the ENV variable name to the help string, always.
func (d EnvDefault) HelpText() string {
	return fmt.Sprintf("%s [env:%s]", d.Help, d.Name)
}

// Resolve returns the flag default and whether the flag must be marked
// as required. Precedence: ENV value > explicit default > required,
// unless the flag is optional. A present but empty ENV variable counts
// as an ENV value.
func (d EnvDefault) Resolve(envs env.Provider) (def string, required bool) {
	if d.NoDefault {
		return "", false
	}
	if value, found := envs.Lookup(d.Name); found {
		return value, false
	}
	if d.Default != "" {
		return d.Default, false
	}
	return "", !d.Optional
}

// Apply declares a string flag with the resolved default and annotated help.
func (d EnvDefault) Apply(flags *pflag.FlagSet, envs env.Provider, name, shorthand string) (required bool) {
	def, required := d.Resolve(envs)
	flags.StringP(name, shorthand, def, d.HelpText())
	return required
}
