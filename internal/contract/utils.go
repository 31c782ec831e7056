package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/paystackoss/orgpulse/schema"
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold) // excellentColor represents a healthy organization.
	GoodColor      = color.New(color.FgCyan)              // goodColor represents acceptable health.
	FairColor      = color.New(color.FgYellow)            // fairColor represents caution, not bold.
	AttentionColor = color.New(color.FgRed, color.Bold)   // attentionColor represents standard danger.
)

// GetPlainStatusLabel returns the plain text form of a health status.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainStatusLabel(status schema.HealthStatus) string {
	return string(status)
}

// GetColorStatusLabel returns a colored status label for console output (table).
func GetColorStatusLabel(status schema.HealthStatus) string {
	text := GetPlainStatusLabel(status)

	switch status {
	case schema.HealthExcellent:
		return ExcellentColor.Sprint(text)
	case schema.HealthGood:
		return GoodColor.Sprint(text)
	case schema.HealthFair:
		return FairColor.Sprint(text)
	default: // NEEDS_ATTENTION
		return AttentionColor.Sprint(text)
	}
}

// GetColorLevelLabel returns a colored threshold level for console output.
func GetColorLevelLabel(level schema.ThresholdLevel) string {
	switch level {
	case schema.LevelExcellent:
		return ExcellentColor.Sprint(string(level))
	case schema.LevelGood:
		return GoodColor.Sprint(string(level))
	case schema.LevelWarning:
		return FairColor.Sprint(string(level))
	default: // critical
		return AttentionColor.Sprint(string(level))
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for run history.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".orgpulse_history.db"
	}
	return filepath.Join(homeDir, ".orgpulse_history.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// TruncateName truncates a repository name to a maximum width with ellipsis
// suffix. Requires maxWidth > 3 so there is room for the ellipsis.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}
