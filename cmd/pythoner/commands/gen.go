package commands

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"pythoner/cmd/pythoner/setup"
	"pythoner/codegen"
	"pythoner/internal/definition"
)

func CmdGen() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a Python package from a definition file.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := setup.UnwrapConfig(cmd.Context())

			path := conf.GetString("file")
			if path == "" {
				return fmt.Errorf("--file required")
			}

			def, err := definition.LoadFile(path)
			if err != nil {
				return err
			}
			logrus.WithField("file", path).Debug("loaded definition")

			if conf.GetBool("dump") {
				spew.Fdump(cmd.OutOrStdout(), def)
			}

			pkg, err := definition.Build(def)
			if err != nil {
				return err
			}

			if conf.GetBool("stdout") {
				return printModules(cmd, pkg)
			}

			diags, err := pkg.Generate(conf.GetString("out"))
			if err != nil {
				return fmt.Errorf("could not generate package %s: %w", pkg.Name(), err)
			}

			logrus.WithFields(logrus.Fields{
				"package":  pkg.Name(),
				"modules":  len(pkg.Modules()),
				"warnings": len(diags.Warnings),
			}).Info("generated package")

			return nil
		},
	}
	cmd.Flags().StringP("file", "f", "", "Definition file (.yaml, .yml, .json or .toml). Required.")
	cmd.Flags().StringP("out", "o", "", "Base directory of the package. Defaults to the working directory.")
	cmd.Flags().Bool("dump", false, "Print the parsed definition before generating.")
	cmd.Flags().Bool("stdout", false, "Print every module instead of writing files.")
	return cmd
}

func printModules(cmd *cobra.Command, pkg *codegen.Package) error {
	for _, m := range pkg.Modules() {
		text, err := m.Generate()
		if err != nil {
			return fmt.Errorf("could not generate module %s: %w", m.Name(), err)
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "# %s/%s%s\n%s", pkg.Name(), m.Name(), codegen.Ext, text)
		if err != nil {
			return err
		}
	}

	return nil
}
