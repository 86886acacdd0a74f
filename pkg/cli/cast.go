package cli

import (
	"fmt"
	"github.com/bigrep/jsnot/pkg/jsnot"
	"github.com/bigrep/jsnot/pkg/utils"
	"github.com/spf13/cobra"
)

type CastArgs struct {
	File string
	Path string
	Kind string
	Yaml bool
}

func SetupCastCommand() *cobra.Command {
	args := &CastArgs{}

	command := &cobra.Command{
		Use:   "cast",
		Short: "cast the value at a path to another kind",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, as []string) {
			RunCastCommand(args)
		},
	}

	command.Flags().StringVar(&args.File, "file", "", "path to input file")
	utils.DoOrDie(command.MarkFlagRequired("file"))

	command.Flags().StringVar(&args.Path, "path", "", `backslash-separated path, for example 'module\version'`)

	command.Flags().StringVar(&args.Kind, "kind", "", "target kind; one of [null, bool, int, float, string, array, object]")
	utils.DoOrDie(command.MarkFlagRequired("kind"))

	command.Flags().BoolVar(&args.Yaml, "yaml", false, "if true, decode the file as yaml")

	return command
}

func RunCastCommand(args *CastArgs) {
	kind, err := jsnot.ParseKind(args.Kind)
	utils.DoOrDie(err)

	wrapper := readWrapper(args.File, args.Yaml)

	found, err := wrapper.AtPath(args.Path)
	utils.DoOrDie(err)

	out, err := found.Cast(kind)
	utils.DoOrDie(err)

	fmt.Printf("%s\n", utils.JsonString(out))
}
