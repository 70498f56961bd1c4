package logger

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/shortlister/internal/candidate"
)

const (
	FieldCandidateID   = "candidate_id"
	FieldCandidateName = "candidate_name"
	FieldSkills        = "skills"
	FieldExperience    = "experience_years"
	FieldEducation     = "education"

	FieldRequiredSkills    = "required_skills"
	FieldMinExperience     = "min_experience_years"
	FieldRequiredEducation = "required_education"
	FieldKeywords          = "keywords"

	maxNameLength = 64
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// A nil logger becomes a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// CandidateFields describes a candidate. Skills and education are logged verbatim
// because exact values decide matching.
func CandidateFields(c candidate.Candidate) []zap.Field {
	fields := StringFields(
		StringField{Key: FieldCandidateID, Value: c.ID},
		StringField{Key: FieldCandidateName, Value: TruncateForLog(c.Name, maxNameLength)},
	)

	return append(fields,
		zap.Strings(FieldSkills, c.Skills),
		zap.Int(FieldExperience, c.ExperienceYears),
		zap.String(FieldEducation, c.EducationLevel),
	)
}

func CriteriaFields(k candidate.Criteria) []zap.Field {
	return []zap.Field{
		zap.Strings(FieldRequiredSkills, k.RequiredSkills),
		zap.Int(FieldMinExperience, k.MinExperienceYears),
		zap.String(FieldRequiredEducation, k.RequiredEducation),
		zap.Strings(FieldKeywords, k.Keywords),
	}
}
