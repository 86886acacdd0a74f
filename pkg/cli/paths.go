package cli

import (
	"fmt"
	"github.com/bigrep/jsnot/pkg/jsnot"
	"github.com/bigrep/jsnot/pkg/utils"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"strings"
)

type PathsArgs struct {
	File string
	Yaml bool
}

func SetupPathsCommand() *cobra.Command {
	args := &PathsArgs{}

	command := &cobra.Command{
		Use:   "paths",
		Short: "list every leaf path in a document",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, as []string) {
			RunPathsCommand(args)
		},
	}

	command.Flags().StringVar(&args.File, "file", "", "path to input file")
	utils.DoOrDie(command.MarkFlagRequired("file"))

	command.Flags().BoolVar(&args.Yaml, "yaml", false, "if true, decode the file as yaml")

	return command
}

func RunPathsCommand(args *PathsArgs) {
	wrapper := readWrapper(args.File, args.Yaml)
	results := wrapper.Enumerate()

	tableString := &strings.Builder{}
	table := tablewriter.NewWriter(tableString)
	table.SetAutoWrapText(false)
	table.SetRowLine(true)
	table.SetHeader([]string{"path", "kind", "value"})
	for _, result := range results {
		table.Append([]string{result.Path(), jsnot.KindOf(result.Value).String(), fmt.Sprintf("%+v", result.Value)})
	}
	table.Render()
	fmt.Printf("%s\n", tableString)
}
