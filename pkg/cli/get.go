package cli

import (
	"fmt"
	"github.com/bigrep/jsnot/pkg/jsnot"
	"github.com/bigrep/jsnot/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type GetArgs struct {
	File       string
	Path       string
	Default    string
	HasDefault bool
	Yaml       bool
}

func SetupGetCommand() *cobra.Command {
	args := &GetArgs{}

	command := &cobra.Command{
		Use:   "get",
		Short: "print the value at a path",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, as []string) {
			args.HasDefault = cmd.Flags().Changed("default")
			RunGetCommand(args)
		},
	}

	command.Flags().StringVar(&args.File, "file", "", "path to input file")
	utils.DoOrDie(command.MarkFlagRequired("file"))

	command.Flags().StringVar(&args.Path, "path", "", `backslash-separated path, for example 'module\version'`)
	command.Flags().StringVar(&args.Default, "default", "", "value to print when the path is missing")
	command.Flags().BoolVar(&args.Yaml, "yaml", false, "if true, decode the file as yaml")

	return command
}

func RunGetCommand(args *GetArgs) {
	wrapper := readWrapper(args.File, args.Yaml)

	found, err := wrapper.AtPath(args.Path)
	if err != nil {
		if args.HasDefault && jsnot.IsPathNotFound(err) {
			logrus.Debugf("falling back to default for path %q", args.Path)
			fmt.Printf("%s\n", args.Default)
			return
		}
		utils.DoOrDie(err)
	}

	fmt.Printf("%s\n", utils.JsonString(found.Value()))
}
