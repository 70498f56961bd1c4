package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/spigell/shortlister/internal/candidate"
)

type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatReport Format = "report"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Encode writes candidates to w. FormatReport groups them by education level.
func Encode(w io.Writer, format Format, candidates []candidate.Candidate) error {
	if candidates == nil {
		candidates = []candidate.Candidate{}
	}

	switch format {
	case FormatJSON:
		return encodeJSON(w, candidates)
	case FormatReport:
		return encodeJSON(w, ByEducation(candidates))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(candidates); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// ByEducation groups candidates by education level keeping their order inside every group.
func ByEducation(candidates []candidate.Candidate) map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, c := range candidates {
		key := c.EducationLevel
		if key == "" {
			key = "(none)"
		}
		report[key] = append(report[key], map[string]string{
			"id":         c.ID,
			"name":       c.Name,
			"skills":     candidate.JoinList(c.Skills),
			"experience": strconv.Itoa(c.ExperienceYears) + " years",
		})
	}
	return report
}

// DumpToTmpFile stores candidates as indented JSON in a new temporary file and returns its name.
func DumpToTmpFile(candidates []candidate.Candidate) (string, error) {
	file, err := os.CreateTemp("", "shortlist_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := Encode(file, FormatJSON, candidates); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
