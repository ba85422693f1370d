package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"pythoner/cmd/pythoner/setup"
	"pythoner/internal/records"
	"pythoner/table"
)

func CmdTable() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the records of a yaml or json file as a table.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := setup.UnwrapConfig(cmd.Context())

			path := conf.GetString("file")
			if path == "" {
				return fmt.Errorf("--file required")
			}

			rows, err := records.LoadFile(path)
			if err != nil {
				return err
			}
			logrus.WithField("rows", len(rows)).Debug("loaded records")

			if fields := conf.GetStringSlice("fields"); len(fields) > 0 {
				maps := make([]map[string]any, len(rows))
				for i, r := range rows {
					maps[i] = r.Map()
				}

				rows, err = table.BuildRows(fields, maps, table.Project(fields...))
				if err != nil {
					return err
				}
			}

			return table.Fprint(cmd.OutOrStdout(), rows)
		},
	}
	cmd.Flags().StringP("file", "f", "", "Records file (.yaml, .yml or .json). Required.")
	cmd.Flags().StringSlice("fields", nil, "Columns to print, in order. Defaults to every field.")
	return cmd
}
