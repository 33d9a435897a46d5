// Package cli implements the stepviz command-line shell: it builds a scene,
// binds an animated algorithm to a terminal screen and plays it.
//
// All commands accept --config (YAML scene file), --delay (tick interval)
// and --verbose (debug logging, including every handler transition). The
// logger travels through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/config"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// globals are the persistent flags shared by every command.
type globals struct {
	verbose    bool
	configPath string
	delay      time.Duration
	static     bool
}

// scene resolves the configuration: file values over defaults, then flags.
func (g *globals) scene() (config.Config, error) {
	c := config.Default()
	if g.configPath != "" {
		var err error
		if c, err = config.LoadFile(g.configPath); err != nil {
			return c, err
		}
	}
	if g.delay != 0 {
		c.Delay = g.delay
	}

	return c, config.Validate(c)
}

// Execute runs the stepviz CLI.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:          "stepviz",
		Short:        "stepviz animates classic algorithms step by step in the terminal",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := g.scene()
			if err != nil {
				return err
			}
			level := c.Level()
			if g.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("stepviz %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "scene configuration file (YAML)")
	root.PersistentFlags().DurationVarP(&g.delay, "delay", "d", 0, "delay between steps (overrides config)")
	root.PersistentFlags().BoolVar(&g.static, "static", false, "print frames one after another instead of redrawing in place")

	root.AddCommand(newSortCmd(g))
	root.AddCommand(newPathCmd(g))
	root.AddCommand(newMSTCmd(g))
	root.AddCommand(newMazeCmd(g))
	root.AddCommand(newListCmd(g))

	return root
}
