package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"rush/core/config"
	"rush/core/shell"
)

var (
	cfgPath string
	command string
)

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		// No config on disk is fine, fall back to the compiled-in default.
		return config.Default(), nil
	}
	return configuration, err
}

// rootCmd represents the base command when called without any subcommands:
// it runs the shell itself.
var rootCmd = &cobra.Command{
	Use:   "rush",
	Short: "A small interactive command shell.",
	Long: `rush reads commands one line at a time, runs builtins in-process
and everything else from $PATH, and reports the last exit status.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		interactive := command == "" && term.IsTerminal(int(os.Stdin.Fd()))

		sh := shell.New(configuration, shell.Options{
			Stdin:       os.Stdin,
			Stdout:      cmd.OutOrStdout(),
			Stderr:      cmd.ErrOrStderr(),
			Interactive: interactive,
		})
		defer sh.Close()

		var status int
		switch {
		case command != "":
			status = sh.RunCommand(command)
		case interactive:
			status, err = sh.Run()
			if err != nil {
				return err
			}
		default:
			status = sh.RunScript(os.Stdin)
		}

		if status != 0 {
			sh.Close()
			os.Exit(status)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
	rootCmd.Flags().StringVarP(&command, "command", "c", "", "run a single command line and exit")
}
