package main

import (
	"os"

	"github.com/spf13/afero"
)

func main() {
	// Run command
	cmd := NewRootCommand(os.Stderr, loadEnvs(afero.NewOsFs(), "."))
	os.Exit(cmd.Execute())
}
