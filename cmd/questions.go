package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/report"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the question catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		sectionName, _ := cmd.Flags().GetString("section")
		format, _ := cmd.Flags().GetString("format")

		list := report.QuestionList(d.catalog.All())
		if sectionName != "" {
			sec, ok := catalog.ParseSection(sectionName)
			if !ok {
				return fmt.Errorf("unknown section %q (want psychometric, technical or wiscar)", sectionName)
			}
			list = report.QuestionList(d.catalog.QuestionsIn(sec))
		}

		formatter, err := stdoutFormatter(cmd, format)
		if err != nil {
			return err
		}
		return formatter.Format(list)
	},
}

func init() {
	questionsCmd.Flags().String("section", "", "Only list one section: psychometric, technical, wiscar")
	questionsCmd.Flags().String("format", "text", "Output format: text, json, yaml")
}
