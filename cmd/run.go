package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/shortlister/internal/candidate"
	"github.com/spigell/shortlister/internal/logger"
	"github.com/spigell/shortlister/internal/report"
	"github.com/spigell/shortlister/internal/session"
	"github.com/spigell/shortlister/internal/shortlist"
	"github.com/spigell/shortlister/internal/store"
)

const (
	defaultOutput       = report.FormatYAML
	disabledByConfigMsg = "disabled by config"
	maxLoggedNameLength = 40
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Shortlist the candidates from the config file",
	Run: func(_ *cobra.Command, _ []string) {
		run()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("output", "o", "", "output format: json, yaml or report (default is yaml)")
	runCmd.Flags().Bool("dump", false, "also dump the shortlist to a temporary json file")

	viper.BindPFlag("output", runCmd.Flags().Lookup("output"))
	viper.BindPFlag("dump", runCmd.Flags().Lookup("dump"))
}

// run shortlists the configured candidates once and prints the result.
func run() {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config == nil {
		logger.Fatal("config is required")
	}

	logger.Info("starting the shortlister", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	format := report.Format(strings.ToLower(strings.TrimSpace(config.Output)))
	if format == "" {
		format = defaultOutput
	}

	sess := newSession(config, logger)

	if err := loadCandidates(sess, config.Candidates); err != nil {
		logger.Fatal("loading candidates", zap.Error(err))
	}

	if err := loadCriteria(sess, config.Criteria, logger); err != nil {
		logger.Fatal("loading criteria", zap.Error(err))
	}

	if sess.Store().Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no candidates configured"))
		return
	}

	results := sess.Shortlist()
	logger.Info("shortlisted candidates",
		zap.Int("count", len(results)),
		zap.Strings("names", namesForLog(results)),
	)

	if err := report.Encode(os.Stdout, format, results); err != nil {
		logger.Fatal("printing the shortlist", zap.Error(err))
	}

	if config.Dump {
		filename, err := report.DumpToTmpFile(results)
		if err != nil {
			logger.Fatal("dump results to file", zap.Error(err))
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
	}
}

func newSession(config *Config, logger *zap.Logger) *session.Session {
	matcher := shortlist.New(logger)
	for _, name := range config.Disable {
		matcher.DisableByName(strings.TrimSpace(name), disabledByConfigMsg)
	}

	for _, status := range matcher.Describe(candidate.DefaultCriteria()) {
		if !status.Enabled {
			logger.Warn("filter will be skipped",
				zap.String("name", status.Name),
				zap.String("reason", status.Reason),
			)
		}
	}

	return session.New(store.New(), matcher, logger)
}

// loadCandidates adds every configured candidate. Normalized fields are only logged.
func loadCandidates(sess *session.Session, raw []map[string]any) error {
	for idx, entry := range raw {
		in, err := candidate.DecodeInput(entry)
		if err != nil {
			return fmt.Errorf("candidate #%d: %w", idx, err)
		}

		// Errors here only report normalized values and are logged by the session.
		sess.AddCandidate(in)
	}

	return nil
}

// loadCriteria replaces the session criteria wholesale with the configured ones.
func loadCriteria(sess *session.Session, raw map[string]any, logger *zap.Logger) error {
	in, err := candidate.DecodeCriteriaInput(raw)
	if err != nil {
		return err
	}

	criteria, err := candidate.NewCriteria(in)
	if err != nil {
		logger.Warn("criteria field normalized", zap.Error(err))
	}

	sess.ReplaceCriteria(criteria)
	return nil
}

func namesForLog(candidates []candidate.Candidate) []string {
	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, logger.TruncateForLog(c.Name, maxLoggedNameLength))
	}
	return names
}
