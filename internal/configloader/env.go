package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/occur/pkg/config"
)

// envVarPrefix is the prefix for all occur environment variables.
const envVarPrefix = "OCCUR_"

// LoadFromEnv applies environment variable overrides to the configuration.
// Variables are prefixed with OCCUR_ (e.g. OCCUR_FORMAT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v := os.Getenv(envVarPrefix + "FORMAT"); v != "" {
		cfg.Format = config.OutputFormat(v)
	}
	if v := os.Getenv(envVarPrefix + "JOBS"); v != "" {
		jobs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer for %sJOBS: %q", envVarPrefix, v)
		}
		cfg.Jobs = jobs
	}
	if v := os.Getenv(envVarPrefix + "IGNORE"); v != "" {
		cfg.Ignore = splitList(v)
	}
	if v := os.Getenv(envVarPrefix + "SKIP_BINARY"); v != "" {
		skip, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean for %sSKIP_BINARY: %q (expected true/false/1/0)", envVarPrefix, v)
		}
		cfg.SkipBinary = skip
	}
	if v := os.Getenv(envVarPrefix + "MATCH_CASE"); v != "" {
		cfg.Rewrite.MatchCase = config.CaseTransform(v)
	}
	if v := os.Getenv(envVarPrefix + "GAP_CASE"); v != "" {
		cfg.Rewrite.GapCase = config.CaseTransform(v)
	}

	return nil
}

// splitList parses a comma-separated string, trimming whitespace and
// dropping empty elements.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ListEnvVars returns the supported environment variables with descriptions,
// for help output.
func ListEnvVars() map[string]string {
	return map[string]string{
		envVarPrefix + "FORMAT":      "Output format: text, json, or count",
		envVarPrefix + "JOBS":        "Number of parallel workers (0 = auto)",
		envVarPrefix + "IGNORE":      "Comma-separated list of ignore patterns",
		envVarPrefix + "SKIP_BINARY": "Skip binary files: true or false",
		envVarPrefix + "MATCH_CASE":  "Default rewrite case for matches: upper, lower, or title",
		envVarPrefix + "GAP_CASE":    "Default rewrite case for gaps: upper, lower, or title",
	}
}
