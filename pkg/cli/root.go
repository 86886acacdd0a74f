package cli

import (
	"github.com/bigrep/jsnot/pkg/jsnot"
	"github.com/bigrep/jsnot/pkg/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func RunRootCommand() {
	command := SetupRootCommand()
	utils.DoOrDie(errors.Wrapf(command.Execute(), "run root command"))
}

type RootFlags struct {
	Verbosity string
}

func SetupRootCommand() *cobra.Command {
	flags := &RootFlags{}
	command := &cobra.Command{
		Use:   "jsnot",
		Short: "navigate, check and convert decoded json/yaml documents",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return utils.SetUpLogger(flags.Verbosity)
		},
	}

	command.PersistentFlags().StringVarP(&flags.Verbosity, "verbosity", "v", "info", "log level; one of [info, debug, trace, warn, error, fatal, panic]")

	command.AddCommand(SetupGetCommand())
	command.AddCommand(SetupHasCommand())
	command.AddCommand(SetupCastCommand())
	command.AddCommand(SetupPathsCommand())
	command.AddCommand(SetupVersionCommand())

	return command
}

func readWrapper(path string, isYaml bool) *jsnot.Wrapper {
	if isYaml {
		wrapper, err := jsnot.FromYamlFile(path)
		utils.DoOrDie(err)
		return wrapper
	}
	wrapper, err := jsnot.FromJsonFile(path)
	utils.DoOrDie(err)
	return wrapper
}
