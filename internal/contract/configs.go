package contract

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
	"time"

	"github.com/paystackoss/orgpulse/schema"
)

// Default values for configuration.
const (
	DefaultPlanFile    = "orgpulse_actions.json"
	DefaultResultsFile = "orgpulse_results.json"
	DefaultReportFile  = "orgpulse_report.json"
	DefaultAPIBaseURL  = "https://api.github.com"
	DefaultTarget      = schema.ScopeAll
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// TuningRawInput holds tuning overrides from the YAML config file.
// Pointer fields distinguish "not provided" from an explicit zero.
type TuningRawInput struct {
	ActiveWindowDays       *int     `mapstructure:"active_window_days"`
	OutdatedWindowDays     *int     `mapstructure:"outdated_window_days"`
	DocGapLength           *int     `mapstructure:"doc_gap_length"`
	DocQualityLength       *int     `mapstructure:"doc_quality_length"`
	SecurityBoost          *float64 `mapstructure:"security_boost"`
	MaintenanceBoost       *float64 `mapstructure:"maintenance_boost"`
	UnderstandingBoost     *float64 `mapstructure:"understanding_boost"`
	MaintenanceOutdatedMin *int     `mapstructure:"maintenance_outdated_min"`
	IdealActionSeconds     *float64 `mapstructure:"ideal_action_seconds"`
}

// ThresholdsRawInput holds check threshold overrides from the YAML config file.
type ThresholdsRawInput struct {
	Excellent *float64 `mapstructure:"excellent"`
	Good      *float64 `mapstructure:"good"`
	Warning   *float64 `mapstructure:"warning"`
}

// Config holds the runtime configuration for the pipeline.
// This struct remains the "final, validated" config.
type Config struct {
	Organization string
	Token        string // Please use env var as this is a credential
	Category     schema.ActionCategory
	Target       string

	Output     schema.OutputMode
	OutputFile string

	PlanFile    string
	ResultsFile string
	ReportFile  string

	APIBaseURL string

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	BadgeFile    string
	DashboardDir string
	ProfileFile  string
	GitHubOutput string

	Tuning schema.Tuning

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
	Width     int  // Terminal width override (0 = auto-detect)
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Org              string `mapstructure:"org"`
	Token            string `mapstructure:"token"`
	ActionType       string `mapstructure:"action-type"`
	TargetRepos      string `mapstructure:"target-repos"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	PlanFile         string `mapstructure:"plan-file"`
	ResultsFile      string `mapstructure:"results-file"`
	ReportFile       string `mapstructure:"report-file"`
	APIURL           string `mapstructure:"api-url"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
	Emoji            string `mapstructure:"emoji"`
	Color            string `mapstructure:"color"`
	Width            int    `mapstructure:"width"`

	// --- Fields from per-command flags ---
	BadgeFile     string `mapstructure:"badge-file"`
	DashboardDir  string `mapstructure:"dashboard-dir"`
	ProfileFile   string `mapstructure:"profile-file"`
	GitHubOutput  string `mapstructure:"github-output"`
	ThresholdsStr string `mapstructure:"thresholds-override"`

	// --- Tuning overrides from config file ---
	Tuning TuningRawInput `mapstructure:"tuning"`

	// --- Check thresholds from config file ---
	Thresholds ThresholdsRawInput `mapstructure:"thresholds"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Tuning.BasePriorities != nil {
		clone.Tuning.BasePriorities = make(map[schema.ActionType]float64)
		maps.Copy(clone.Tuning.BasePriorities, c.Tuning.BasePriorities)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processTuning(cfg, input); err != nil {
		return err
	}
	if err := processCheckThresholds(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all scalar fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.Token = input.Token
	cfg.OutputFile = input.OutputFile
	cfg.BadgeFile = input.BadgeFile
	cfg.DashboardDir = input.DashboardDir
	cfg.ProfileFile = input.ProfileFile
	cfg.GitHubOutput = input.GitHubOutput
	cfg.Width = input.Width

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Organization Validation ---
	cfg.Organization = strings.TrimSpace(input.Org)
	if cfg.Organization == "" {
		return fmt.Errorf("org is required (set --org or ORGPULSE_ORG)")
	}

	// --- 2. Category Normalization ---
	// Unknown categories deliberately stay as-is: the selector treats any
	// unrecognized value as a comprehensive run.
	cfg.Category = schema.ActionCategory(strings.ToLower(strings.TrimSpace(input.ActionType)))
	if cfg.Category == "" {
		cfg.Category = schema.CategoryComprehensive
	}

	// --- 3. Target Validation ---
	cfg.Target = strings.TrimSpace(input.TargetRepos)
	if cfg.Target == "" {
		cfg.Target = DefaultTarget
	}

	// --- 4. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", cfg.Output)
	}

	// --- 5. Stage File Defaults ---
	cfg.PlanFile = input.PlanFile
	if cfg.PlanFile == "" {
		cfg.PlanFile = DefaultPlanFile
	}
	cfg.ResultsFile = input.ResultsFile
	if cfg.ResultsFile == "" {
		cfg.ResultsFile = DefaultResultsFile
	}
	cfg.ReportFile = input.ReportFile
	if cfg.ReportFile == "" {
		cfg.ReportFile = DefaultReportFile
	}

	// --- 6. API URL ---
	cfg.APIBaseURL = strings.TrimRight(input.APIURL, "/")
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}

	return nil
}

// processTuning merges config file overrides onto the default tuning table.
func processTuning(cfg *Config, input *ConfigRawInput) error {
	tuning := schema.DefaultTuning()

	if v := input.Tuning.ActiveWindowDays; v != nil {
		tuning.ActiveWindowDays = *v
	}
	if v := input.Tuning.OutdatedWindowDays; v != nil {
		tuning.OutdatedWindowDays = *v
	}
	if v := input.Tuning.DocGapLength; v != nil {
		tuning.DocGapLength = *v
	}
	if v := input.Tuning.DocQualityLength; v != nil {
		tuning.DocQualityLength = *v
	}
	if v := input.Tuning.SecurityBoost; v != nil {
		tuning.SecurityBoost = *v
	}
	if v := input.Tuning.MaintenanceBoost; v != nil {
		tuning.MaintenanceBoost = *v
	}
	if v := input.Tuning.UnderstandingBoost; v != nil {
		tuning.UnderstandingBoost = *v
	}
	if v := input.Tuning.MaintenanceOutdatedMin; v != nil {
		tuning.MaintenanceOutdatedMin = *v
	}
	if v := input.Tuning.IdealActionSeconds; v != nil {
		tuning.IdealActionSeconds = *v
	}

	if tuning.ActiveWindowDays <= 0 {
		return fmt.Errorf("tuning active_window_days must be greater than 0 (received %d)", tuning.ActiveWindowDays)
	}
	if tuning.OutdatedWindowDays <= tuning.ActiveWindowDays {
		return fmt.Errorf("tuning outdated_window_days (%d) must be greater than active_window_days (%d)",
			tuning.OutdatedWindowDays, tuning.ActiveWindowDays)
	}
	for _, boost := range []float64{tuning.SecurityBoost, tuning.MaintenanceBoost, tuning.UnderstandingBoost} {
		if boost < 1.0 {
			return fmt.Errorf("tuning boost multipliers must be at least 1.0 (received %.2f)", boost)
		}
	}

	cfg.Tuning = tuning
	return nil
}

// processCheckThresholds merges check threshold overrides from the config
// file and the --thresholds-override flag, which takes precedence.
func processCheckThresholds(cfg *Config, input *ConfigRawInput) error {
	if input.Thresholds.Excellent != nil {
		cfg.Tuning.CheckExcellent = *input.Thresholds.Excellent
	}
	if input.Thresholds.Good != nil {
		cfg.Tuning.CheckGood = *input.Thresholds.Good
	}
	if input.Thresholds.Warning != nil {
		cfg.Tuning.CheckWarning = *input.Thresholds.Warning
	}

	if input.ThresholdsStr != "" {
		overrides, err := parseCheckThresholdsString(input.ThresholdsStr)
		if err != nil {
			return fmt.Errorf("invalid --thresholds-override format: %w", err)
		}
		if v, ok := overrides["excellent"]; ok {
			cfg.Tuning.CheckExcellent = v
		}
		if v, ok := overrides["good"]; ok {
			cfg.Tuning.CheckGood = v
		}
		if v, ok := overrides["warning"]; ok {
			cfg.Tuning.CheckWarning = v
		}
	}

	for name, v := range map[string]float64{
		"excellent": cfg.Tuning.CheckExcellent,
		"good":      cfg.Tuning.CheckGood,
		"warning":   cfg.Tuning.CheckWarning,
	} {
		if v < 0.0 || v > 100.0 {
			return fmt.Errorf("check threshold %s must be between 0.0 and 100.0 (received %.2f)", name, v)
		}
	}
	if !(cfg.Tuning.CheckExcellent >= cfg.Tuning.CheckGood && cfg.Tuning.CheckGood >= cfg.Tuning.CheckWarning) {
		return fmt.Errorf("check thresholds must satisfy excellent >= good >= warning (received %.1f/%.1f/%.1f)",
			cfg.Tuning.CheckExcellent, cfg.Tuning.CheckGood, cfg.Tuning.CheckWarning)
	}

	return nil
}

// validateBackendConfig validates the run history backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	return ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect)
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// parseCheckThresholdsString parses a string like "excellent:95,good:80,warning:60"
// into a map of level name to cutoff.
func parseCheckThresholdsString(s string) (map[string]float64, error) {
	thresholds := make(map[string]float64)

	parts := strings.SplitSeq(s, ",")
	for part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		keyValue := strings.Split(part, ":")
		if len(keyValue) != 2 {
			return nil, fmt.Errorf("invalid threshold format '%s', expected 'level:value'", part)
		}

		level := strings.ToLower(strings.TrimSpace(keyValue[0]))
		switch level {
		case "excellent", "good", "warning":
		default:
			return nil, fmt.Errorf("invalid level '%s', must be excellent, good, or warning", level)
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(keyValue[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid threshold value '%s' for level %s: %w", keyValue[1], level, err)
		}

		thresholds[level] = value
	}

	return thresholds, nil
}
