// Package main provides the CLI entrypoint for pythoner.
//
// pythoner bundles two small tools:
//   - gen: writes a Python package described by a yaml, json or toml file
//   - table: prints records from a yaml or json file as an aligned table
package main

import (
	"os"

	"github.com/spf13/cobra"

	"pythoner/cmd/pythoner/commands"
	"pythoner/cmd/pythoner/setup"
)

func CmdPythoner() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "pythoner",
		Short:        "Generate Python packages and print record tables",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			args, err := setup.ArgsFromCmd(cmd)
			if err != nil {
				return err
			}
			setup.ConfigureLogger(args, cmd.ErrOrStderr())

			cmd.SetContext(setup.WrapArgs(cmd.Context(), args))
			return nil
		},
	}
	setup.AddArgs(cmd)

	cmd.AddCommand(commands.CmdGen())
	cmd.AddCommand(commands.CmdTable())
	cmd.AddCommand(commands.CmdVersion())

	return cmd
}

func main() {
	rootCmd := CmdPythoner()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
