package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/shortlister/internal/candidate"
	"github.com/spigell/shortlister/internal/logger"
	"github.com/spigell/shortlister/internal/report"
	"github.com/spigell/shortlister/internal/session"
)

const (
	PromptAddCandidate   = "Add candidate"
	PromptEditCriteria   = "Edit criteria"
	PromptShortlist      = "Shortlist"
	PromptShowCandidates = "Show candidates"
	PromptShowCriteria   = "Show criteria"
	PromptDumpShortlist  = "Dump shortlist to file"
	PromptClear          = "Clear"
	PromptExit           = "Exit"
	PromptBack           = "back"
)

var errExit = errors.New("exit requested")

var actionPrompt = promptui.Select{
	Label: "Choose an action",
	Items: []string{
		PromptAddCandidate,
		PromptEditCriteria,
		PromptShortlist,
		PromptShowCandidates,
		PromptShowCriteria,
		PromptDumpShortlist,
		PromptClear,
		PromptExit,
	},
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Register candidates and criteria by hand and shortlist them",
	Run: func(_ *cobra.Command, _ []string) {
		interactive()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func interactive() {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	logger.Info("starting an interactive session", zap.String("version", version))

	sess := session.New(nil, nil, logger)

	for {
		_, action, err := actionPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, sess, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, sess *session.Session, logger *zap.Logger) error {
	switch action {
	case PromptAddCandidate:
		return addCandidate(sess)
	case PromptEditCriteria:
		return editCriteria(sess)
	case PromptShortlist:
		results := sess.Shortlist()
		logger.Info("current shortlist", zap.Int("count", len(results)), zap.String("state", sess.State().String()))
		return report.Encode(os.Stdout, report.FormatReport, results)
	case PromptShowCandidates:
		logger.Info("registered candidates", zap.Int("count", sess.Store().Len()))
		return report.Encode(os.Stdout, report.FormatYAML, sess.Store().Candidates())
	case PromptShowCriteria:
		return showCriteria(sess)
	case PromptDumpShortlist:
		if sess.State() != session.Shortlisted {
			logger.Info("nothing to dump", zap.String("reason", "shortlist has not been computed"))
			return nil
		}
		filename, err := report.DumpToTmpFile(sess.Results())
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptClear:
		sess.Clear()
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// addCandidate asks for every candidate form field in turn.
func addCandidate(sess *session.Session) error {
	labels := []struct {
		key   string
		label string
	}{
		{candidate.FieldName, "Name"},
		{candidate.FieldSkills, "Skills (comma separated)"},
		{candidate.FieldExperience, "Experience (years)"},
		{candidate.FieldEducation, "Education"},
	}

	raw := make(map[string]any, len(labels))
	for _, l := range labels {
		value, err := (&promptui.Prompt{Label: l.label}).Run()
		if err != nil {
			return err
		}
		raw[l.key] = value
	}

	in, err := candidate.DecodeInput(raw)
	if err != nil {
		return err
	}

	// A normalized field is already reported by the session; the candidate is kept.
	sess.AddCandidate(in)
	return nil
}

// editCriteria edits one criteria field at a time until the user goes back.
func editCriteria(sess *session.Session) error {
	for {
		current := sess.Store().Criteria()

		items := make([]string, 0, len(candidate.CriteriaFields())+1)
		for _, field := range candidate.CriteriaFields() {
			items = append(items, string(field))
		}

		fieldPrompt := promptui.Select{
			Label: "Choose a criteria field and press ENTER",
			Items: append(items, PromptBack),
		}

		_, selected, err := fieldPrompt.Run()
		if err != nil {
			return err
		}

		if selected == PromptBack {
			return nil
		}

		field := candidate.CriteriaField(selected)
		value, err := (&promptui.Prompt{
			Label:     selected,
			Default:   current.Value(field),
			AllowEdit: true,
		}).Run()
		if err != nil {
			return err
		}

		// Unknown fields can not be selected; normalized values are logged by the session.
		sess.UpdateCriteria(field, value)
	}
}

func showCriteria(sess *session.Session) error {
	criteria := sess.Store().Criteria()

	for _, status := range sess.Matcher().Describe(criteria) {
		state := "enabled"
		if !status.Enabled {
			state = "disabled: " + status.Reason
		}
		fmt.Printf("%-12s %-20s %v\n", status.Name, state, status.Details)
	}

	fmt.Printf("%-12s %-20s %s\n", string(candidate.FieldKeywords), "stored only", candidate.JoinList(criteria.Keywords))
	return nil
}
