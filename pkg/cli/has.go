package cli

import (
	"fmt"
	"github.com/bigrep/jsnot/pkg/utils"
	"github.com/spf13/cobra"
)

type HasArgs struct {
	File string
	Path string
	Yaml bool
}

func SetupHasCommand() *cobra.Command {
	args := &HasArgs{}

	command := &cobra.Command{
		Use:   "has",
		Short: "check whether a value exists at a path",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, as []string) {
			RunHasCommand(args)
		},
	}

	command.Flags().StringVar(&args.File, "file", "", "path to input file")
	utils.DoOrDie(command.MarkFlagRequired("file"))

	command.Flags().StringVar(&args.Path, "path", "", `backslash-separated path, for example 'module\version'`)
	command.Flags().BoolVar(&args.Yaml, "yaml", false, "if true, decode the file as yaml")

	return command
}

func RunHasCommand(args *HasArgs) {
	wrapper := readWrapper(args.File, args.Yaml)
	fmt.Printf("%t\n", wrapper.Has(args.Path))
}
