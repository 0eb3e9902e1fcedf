// /cmd/mindustry-launcher/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BalaM314/MindustryLauncher/internal/config"
	"github.com/BalaM314/MindustryLauncher/internal/format"
	"github.com/BalaM314/MindustryLauncher/internal/launcher"
	"github.com/BalaM314/MindustryLauncher/internal/log"
	"github.com/BalaM314/MindustryLauncher/internal/version"
)

var (
	versionString string
	compileFirst  bool
	cfgFile       string

	rootCmd = &cobra.Command{
		Use:   "mindustry-launcher [flags] [-- jvmArgs... [-- gameArgs...]]",
		Short: "Launch, download and supervise Mindustry",
		Long: `mindustry-launcher resolves a Mindustry version (downloading it if needed),
stages external mods, then launches and supervises the game. While the game
runs, type "help" for the interactive commands (restart, rebuild, recompile,
pass-through input, exit).

Arguments after the first "--" are passed to the JVM; after a second "--"
they are passed to the game instead.`,
		Args: cobra.ArbitraryArgs,
		RunE: run,
	}
)

func main() {
	rootCmd.Flags().StringVarP(&versionString, "version", "v", "latest", "Version to launch: a number, be-<n>, foo-<n>, \"latest\", or a custom name")
	rootCmd.Flags().BoolVarP(&compileFirst, "compile", "c", false, "Compile the source directory before launching (source-tree versions only)")
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "Settings file to use instead of the default")
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		log.Fatal("%v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	log.Init(settings.LogLevel)

	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		settings.CLIJvmArgs, settings.CLIGameArgs = config.SplitPassthrough(args[dash:])
	}

	v, err := version.Resolve(versionString, settings)
	if err != nil {
		return err
	}
	log.Info("Resolved %q to %s", versionString, v.DisplayName())

	if err := ensureArtifact(v); err != nil {
		return err
	}

	state := &launcher.State{
		Settings: settings,
		Version:  v,
		Pipeline: format.NewPipeline(settings.Logging),
	}
	sup := launcher.NewSupervisor(state)

	if err := sup.StartWatchers(); err != nil {
		log.Warn("Mod watching is unavailable: %v", err)
	}
	if err := sup.Launch(); err != nil {
		return err
	}

	// Blocks on stdin; the child's exit handler terminates the process.
	sup.RunCommandLoop(os.Stdin)
	select {}
}

// ensureArtifact makes sure the jar to launch exists, compiling or
// downloading it when that is possible for the version's kind.
func ensureArtifact(v *version.Version) error {
	if compileFirst {
		if v.IsSourceTree {
			if err := v.Compile(); err != nil {
				return err
			}
		} else {
			log.Error("%s was not built from a source directory, ignoring --compile.", v.DisplayName())
		}
	}
	if v.Exists() {
		return nil
	}
	switch {
	case v.IsSourceTree:
		return fmt.Errorf("%s has not been compiled yet, run with --compile", v.DisplayName())
	case v.IsCustomNamed:
		return fmt.Errorf("custom version jar %s does not exist", v.JarPath())
	default:
		log.Info("%s is not downloaded yet, fetching it...", v.DisplayName())
		return v.Download()
	}
}
