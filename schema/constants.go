package schema

// Custom string types for type safety.
type (
	// ActionType identifies a single orchestration action.
	ActionType string

	// Goal is the organizational goal an action serves.
	Goal string

	// ActionCategory selects which family of actions to generate.
	ActionCategory string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string

	// ActionStatus is the terminal state of an executed action.
	ActionStatus string

	// HealthStatus is the executive summary status of a report.
	HealthStatus string

	// ThresholdLevel classifies a score against the threshold table.
	ThresholdLevel string
)

// All action types supported.
const (
	ActionAnalyzeOrganization ActionType = "analyze_organization"
	ActionAnalyzeRepository   ActionType = "analyze_repository"
	ActionSyncProfile         ActionType = "sync_organization_profile"
	ActionCheckDocumentation  ActionType = "check_documentation_health"
	ActionCheckActivity       ActionType = "check_activity_health"
	ActionSecurityScan        ActionType = "security_scan_organization"
)

// All goals supported.
const (
	GoalUnderstanding Goal = "understanding"
	GoalMaintenance   Goal = "maintenance"
	GoalConsistency   Goal = "consistency"
	GoalQuality       Goal = "quality"
	GoalSecurity      Goal = "security"
)

// All action categories supported.
const (
	CategoryAnalyze       ActionCategory = "analyze"
	CategorySync          ActionCategory = "sync"
	CategoryHealthCheck   ActionCategory = "health_check"
	CategorySecurityScan  ActionCategory = "security_scan"
	CategoryComprehensive ActionCategory = "comprehensive" // default
)

// All output modes supported.
const (
	CSVOut  OutputMode = "csv"
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All action statuses supported.
const (
	StatusCompleted ActionStatus = "completed"
	StatusFailed    ActionStatus = "failed"
	StatusSkipped   ActionStatus = "skipped"
)

// All report statuses supported.
const (
	HealthExcellent      HealthStatus = "EXCELLENT"
	HealthGood           HealthStatus = "GOOD"
	HealthFair           HealthStatus = "FAIR"
	HealthNeedsAttention HealthStatus = "NEEDS_ATTENTION"
)

// All threshold levels supported.
const (
	LevelExcellent ThresholdLevel = "excellent"
	LevelGood      ThresholdLevel = "good"
	LevelWarning   ThresholdLevel = "warning"
	LevelCritical  ThresholdLevel = "critical"
)

// ScopeAll marks an action that targets the whole organization rather than
// a single repository. The target filter always keeps such actions.
const ScopeAll = "all"

// ValidActionTypes lists all valid action types.
var ValidActionTypes = map[ActionType]struct{}{
	ActionAnalyzeOrganization: {},
	ActionAnalyzeRepository:   {},
	ActionSyncProfile:         {},
	ActionCheckDocumentation:  {},
	ActionCheckActivity:       {},
	ActionSecurityScan:        {},
}

// ValidGoals lists all valid goals.
var ValidGoals = map[Goal]struct{}{
	GoalUnderstanding: {},
	GoalMaintenance:   {},
	GoalConsistency:   {},
	GoalQuality:       {},
	GoalSecurity:      {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:  {},
	TextOut: {},
	JSONOut: {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// Tuning holds every threshold, base priority and multiplier used by the
// selection and reporting pipeline. Values can be overridden from the
// config file; code never hardcodes these numbers elsewhere.
type Tuning struct {
	// Activity windows in days. Repositories updated within ActiveWindowDays
	// count as active; repositories idle for more than OutdatedWindowDays
	// count as outdated. The band between them counts as neither.
	ActiveWindowDays   int
	OutdatedWindowDays int

	// DocGapLength is the description length at or below which a repository
	// counts as a documentation gap. DocQualityLength is the stricter bar
	// used by the documentation health check for "well documented".
	DocGapLength     int
	DocQualityLength int

	// BasePriorities maps each action type to its catalog priority.
	BasePriorities map[ActionType]float64

	// Utility boost multipliers, applied as independent sequential rules.
	SecurityBoost      float64
	MaintenanceBoost   float64
	UnderstandingBoost float64

	// MaintenanceOutdatedMin is the outdated-repo count that must be
	// exceeded before the maintenance boost applies.
	MaintenanceOutdatedMin int

	// Report status cutoffs (score >= cutoff).
	StatusExcellent float64
	StatusGood      float64
	StatusFair      float64

	// Threshold check cutoffs (score >= cutoff); below warning is critical.
	CheckExcellent float64
	CheckGood      float64
	CheckWarning   float64

	// IdealActionSeconds is the per-action duration used as the baseline
	// for the efficiency score.
	IdealActionSeconds float64
}

// DefaultTuning returns the default tuning table for the pipeline.
func DefaultTuning() Tuning {
	return Tuning{
		ActiveWindowDays:   30,
		OutdatedWindowDays: 90,
		DocGapLength:       10,
		DocQualityLength:   20,
		BasePriorities: map[ActionType]float64{
			ActionAnalyzeOrganization: 1.0,
			ActionAnalyzeRepository:   0.8,
			ActionSyncProfile:         1.0,
			ActionCheckDocumentation:  0.9,
			ActionCheckActivity:       0.7,
			ActionSecurityScan:        1.0,
		},
		SecurityBoost:          1.3,
		MaintenanceBoost:       1.2,
		UnderstandingBoost:     1.1,
		MaintenanceOutdatedMin: 3,
		StatusExcellent:        90,
		StatusGood:             70,
		StatusFair:             50,
		CheckExcellent:         95,
		CheckGood:              80,
		CheckWarning:           60,
		IdealActionSeconds:     10,
	}
}
