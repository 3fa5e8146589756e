// Command confctl reads and edits configuration files (INI, JSON, YAML,
// TOML) by dot-delimited path.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"configfile"
)

var filePath string

func main() {
	root := &cobra.Command{
		Use:           "confctl",
		Short:         "Read and edit configuration files by dot-delimited path",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&filePath, "file", "f", "", "path to the configuration file")
	root.MarkPersistentFlagRequired("file")

	root.AddCommand(
		newGetCmd(),
		newSetCmd(),
		newDeleteCmd(),
		newHasCmd(),
		newCatCmd(),
		newRestoreCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newGetCmd() *cobra.Command {
	var (
		typeName   string
		parseTypes bool
		defaultVal string
	)

	cmd := &cobra.Command{
		Use:   "get <path>",
		Short: "Print the value at a dot-delimited path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, err := configfile.New(filePath)
			if err != nil {
				return err
			}

			var opts []configfile.GetOption
			if cmd.Flags().Changed("default") {
				opts = append(opts, configfile.WithDefault(defaultVal))
			}
			if parseTypes {
				opts = append(opts, configfile.WithParseTypes())
			}
			if typeName != "" {
				kind, err := kindFromName(typeName)
				if err != nil {
					return err
				}
				opts = append(opts, configfile.WithType(kind))
			}

			value, err := cf.Get(args[0], opts...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v\n", value)
			return nil
		},
	}

	cmd.Flags().StringVar(&typeName, "type", "", "coerce the value to a type (string, int, float, bool)")
	cmd.Flags().BoolVar(&parseTypes, "parse-types", false, "recursively infer native types")
	cmd.Flags().StringVar(&defaultVal, "default", "", "value to print when the path is missing")
	return cmd
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <path> <value>",
		Short: "Set the value at a dot-delimited path and save the file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, err := configfile.New(filePath)
			if err != nil {
				return err
			}
			if err := cf.Set(args[0], args[1]); err != nil {
				return err
			}
			return cf.Save()
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <path>",
		Short: "Delete the section or key at a dot-delimited path and save the file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, err := configfile.New(filePath)
			if err != nil {
				return err
			}
			if err := cf.Delete(args[0]); err != nil {
				return err
			}
			return cf.Save()
		},
	}
}

func newHasCmd() *cobra.Command {
	var wild bool

	cmd := &cobra.Command{
		Use:   "has <path>",
		Short: "Print whether a section or key exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, err := configfile.New(filePath)
			if err != nil {
				return err
			}

			found := cf.Has(args[0])
			if wild {
				found = cf.HasWild(args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%t\n", found)
			return nil
		},
	}

	cmd.Flags().BoolVar(&wild, "wild", false, "search for a bare key at any depth")
	return cmd
}

func newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat",
		Short: "Print the serialized document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, err := configfile.New(filePath)
			if err != nil {
				return err
			}
			content, err := cf.Stringify()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}
}

func newRestoreCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore the file from its original copy and save it",
		Long: `Restore the file from its original copy and save it.

By default the original is looked up next to the file with an "original"
marker before the extension (config.ini -> config.original.ini).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, err := configfile.New(filePath)
			if err != nil {
				return err
			}
			if err := cf.RestoreOriginal(from); err != nil {
				return err
			}
			return cf.Save()
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "explicit path to the original file")
	return cmd
}

func kindFromName(name string) (configfile.Kind, error) {
	switch name {
	case "string":
		return configfile.KindString, nil
	case "int":
		return configfile.KindInt, nil
	case "float":
		return configfile.KindFloat, nil
	case "bool":
		return configfile.KindBool, nil
	default:
		return 0, fmt.Errorf("unknown type %q (expected string, int, float, or bool)", name)
	}
}
