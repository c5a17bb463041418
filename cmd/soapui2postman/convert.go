package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"soapui2postman/internal/compose"
	"soapui2postman/internal/config"
	"soapui2postman/internal/issue"
	"soapui2postman/internal/parse"
	"soapui2postman/internal/postman"
	"soapui2postman/internal/report"
	"soapui2postman/internal/script"
)

// NewRootCmd creates the root command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "soapui2postman",
		Short:         "soapui2postman - convert SoapUI projects to Postman collections",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.AddCommand(NewConvertCmd())

	return root
}

// convertFlags holds the convert command's flag values.
type convertFlags struct {
	output      string
	environment string
	configPath  string
	reportPath  string
	name        string
}

// NewConvertCmd creates the convert command.
func NewConvertCmd() *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert <project.xml>",
		Short: "Convert a SoapUI project file into a Postman collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "collection output path (default <project>.postman_collection.json)")
	cmd.Flags().StringVar(&flags.environment, "environment", "", "also write a Postman environment to this path")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "YAML options file")
	cmd.Flags().StringVar(&flags.reportPath, "report", "", "write the issue report to this path")
	cmd.Flags().StringVar(&flags.name, "name", "", "collection name override")

	return cmd
}

func runConvert(cmd *cobra.Command, projectPath string, flags *convertFlags) error {
	opts, err := loadOptions(flags)
	if err != nil {
		return err
	}

	project, err := parse.LoadFile(projectPath)
	if err != nil {
		return err
	}

	log := &issue.Log{}

	comp := compose.Composer{ScriptFallback: script.FallbackComment}
	if opts.Fallback == "literal" {
		comp.ScriptFallback = script.FallbackLiteral
	}

	col := postman.BuildCollection(project, opts.CollectionName, comp, log)

	outPath := flags.output
	if outPath == "" {
		outPath = defaultOutputPath(project.Name)
	}

	if err := postman.WriteCollection(col, outPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote collection %s\n", outPath)

	if flags.environment != "" {
		env := postman.BuildEnvironment(project, opts.EnvironmentName)
		if err := postman.WriteEnvironment(env, flags.environment); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote environment %s\n", flags.environment)
	}

	if opts.ReportPath != "" {
		if err := report.WriteFile(opts.ReportPath, log); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote report %s\n", opts.ReportPath)
	}

	printIssues(cmd, log)

	return nil
}

// loadOptions merges the YAML options file with command-line overrides.
func loadOptions(flags *convertFlags) (config.Options, error) {
	opts := config.Default()

	if flags.configPath != "" {
		loaded, err := config.LoadFile(flags.configPath)
		if err != nil {
			return config.Options{}, err
		}
		opts = loaded
	}

	if flags.name != "" {
		opts.CollectionName = flags.name
	}
	if flags.reportPath != "" {
		opts.ReportPath = flags.reportPath
	}

	if err := opts.Validate(); err != nil {
		return config.Options{}, err
	}

	return opts, nil
}

// printIssues writes warnings and errors to stderr. Errors flag manual
// follow-up but never block the generated output.
func printIssues(cmd *cobra.Command, log *issue.Log) {
	for _, sev := range []issue.Severity{issue.SeverityError, issue.SeverityWarning} {
		for _, e := range log.BySeverity(sev) {
			fmt.Fprintln(cmd.ErrOrStderr(), e)
		}
	}

	if n := log.Len(); n > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d conversion issue(s) recorded\n", n)
	}
}

func defaultOutputPath(projectName string) string {
	name := strings.TrimSpace(projectName)
	if name == "" {
		name = "converted"
	}

	return strings.ReplaceAll(name, " ", "_") + ".postman_collection.json"
}
