package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/careerfit/internal/answerfile"
	"github.com/abhisek/careerfit/internal/logging"
	"github.com/abhisek/careerfit/internal/report"
	"github.com/abhisek/careerfit/internal/scoring"
	"github.com/abhisek/careerfit/internal/session"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score an answer sheet without the interactive UI",
	Long: `Score a JSON answer sheet of the form
  {"answers":[{"questionId":"psych1","value":5},{"questionId":"tech1","value":"..."}]}

Likert answers are integers 1-5 (or the same number as a string); other answers
must match an option exactly.
Every question must be answered unless --allow-partial is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		path, _ := cmd.Flags().GetString("answers")
		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")
		partial, _ := cmd.Flags().GetBool("allow-partial")
		if !cmd.Flags().Changed("format") {
			format = d.cfg.ReportFormat
		}

		sheet, err := answerfile.Load(path)
		if err != nil {
			return err
		}

		rep, err := scoreSheet(sheet, d, partial)
		if err != nil {
			return err
		}

		ctx := logging.WithAttempt(context.Background(), rep.AttemptID)
		d.logger.InfoContext(ctx, "answer sheet scored",
			"path", path,
			"answered", len(rep.Answers),
			"overall", rep.Results.OverallConfidence,
			"recommendation", string(rep.Results.Recommendation),
		)

		if out != "" {
			if err := report.WriteFile(out, rep); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "Report written to", out)
			return nil
		}

		formatter, err := stdoutFormatter(cmd, format)
		if err != nil {
			return err
		}
		return formatter.Format(rep)
	},
}

// scoreSheet replays a complete sheet through a session, or scores whatever
// it answers when partial is set.
func scoreSheet(sheet *answerfile.Sheet, d *deps, partial bool) (report.Report, error) {
	attemptID := sheet.AttemptID
	if attemptID == "" {
		attemptID = uuid.NewString()
	}

	if partial {
		now := time.Now()
		answers, err := sheet.PartialAnswers(d.catalog, now)
		if err != nil {
			return report.Report{}, err
		}
		results := scoring.Score(answers, d.catalog)
		return report.FromAnswers(attemptID, now, d.catalog, answers, results), nil
	}

	sess := session.New(d.catalog, session.WithAttemptID(attemptID))
	if err := sheet.Replay(sess); err != nil {
		return report.Report{}, err
	}
	return report.New(sess, scoring.Score(sess.Answers(), d.catalog)), nil
}

func init() {
	scoreCmd.Flags().String("answers", "", "Path to the JSON answer sheet")
	scoreCmd.Flags().String("format", "text", "Output format: text, json, yaml (default from CAREERFIT_REPORT_FORMAT)")
	scoreCmd.Flags().String("out", "", "Write the report to a file; format follows the extension (.txt, .json, .yaml, .xlsx)")
	scoreCmd.Flags().Bool("allow-partial", false, "Score a sheet that leaves questions unanswered")
	_ = scoreCmd.MarkFlagRequired("answers")
}
