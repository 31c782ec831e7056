package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/paystackoss/orgpulse/internal/contract"
	"github.com/paystackoss/orgpulse/internal/githubapi"
	"github.com/paystackoss/orgpulse/internal/outwriter"
	"github.com/paystackoss/orgpulse/schema"
)

// SelectActions runs the selection stage over a snapshot: generate
// candidates for the category, narrow them to the target and rank them.
func SelectActions(snap *schema.ContextSnapshot, cfg *contract.Config) (*schema.ActionPlan, error) {
	actions, err := GenerateActions(snap, cfg.Category, cfg.Tuning)
	if err != nil {
		return nil, err
	}
	actions = FilterByTarget(actions, cfg.Target)
	actions = Prioritize(actions, snap.Metrics, cfg.Tuning)

	return &schema.ActionPlan{
		Organization: cfg.Organization,
		Category:     cfg.Category,
		Target:       cfg.Target,
		GeneratedAt:  snap.Timestamp,
		Metrics:      snap.Metrics,
		Actions:      actions,
	}, nil
}

// ExecuteSelect gathers organization context, builds the ranked action
// plan, persists it to the plan file and prints it.
func ExecuteSelect(ctx context.Context, cfg *contract.Config) error {
	client := githubapi.NewClient(cfg.APIBaseURL, cfg.Token)

	snap, err := GatherContext(ctx, cfg, client, time.Now())
	if err != nil {
		return err
	}

	plan, err := SelectActions(snap, cfg)
	if err != nil {
		return err
	}

	if err := writeJSONFile(cfg.PlanFile, plan); err != nil {
		return err
	}
	return outwriter.PrintActionPlan(plan, cfg)
}

// ExecuteActions loads the persisted plan, re-gathers context and runs
// every action, persisting the execution summary. The store may be nil
// when run history is disabled.
func ExecuteActions(ctx context.Context, cfg *contract.Config, store contract.RunStore) error {
	var plan schema.ActionPlan
	if err := readJSONFile(cfg.PlanFile, &plan); err != nil {
		return fmt.Errorf("cannot load action plan (run select first): %w", err)
	}

	client := githubapi.NewClient(cfg.APIBaseURL, cfg.Token)
	snap, err := GatherContext(ctx, cfg, client, time.Now())
	if err != nil {
		return err
	}

	summary, err := ExecutePlan(ctx, cfg, client, snap, &plan, store)
	if err != nil {
		return err
	}

	if err := writeJSONFile(cfg.ResultsFile, summary); err != nil {
		return err
	}
	return outwriter.PrintSummary(summary, cfg)
}

// ExecuteReport loads the persisted execution summary, distills it into
// the health report and persists that alongside.
func ExecuteReport(cfg *contract.Config) error {
	var summary schema.ExecutionSummary
	if err := readJSONFile(cfg.ResultsFile, &summary); err != nil {
		return fmt.Errorf("cannot load execution results (run execute first): %w", err)
	}

	report := BuildReport(&summary, cfg.Tuning, time.Now())
	if err := writeJSONFile(cfg.ReportFile, report); err != nil {
		return err
	}
	return outwriter.PrintReport(report, cfg)
}

// ExecuteCheck grades the persisted report against the configured
// thresholds. A critical overall level surfaces as ErrCriticalHealth so
// the CLI can exit with a dedicated code for CI gates.
func ExecuteCheck(cfg *contract.Config) error {
	var report schema.Report
	if err := readJSONFile(cfg.ReportFile, &report); err != nil {
		return fmt.Errorf("cannot load report (run report first): %w", err)
	}

	result := EvaluateThresholds(&report, cfg.Tuning)
	if err := outwriter.PrintCheckResult(result, cfg); err != nil {
		return err
	}

	if cfg.GitHubOutput != "" {
		if err := WriteGitHubOutputs(result, &report, cfg.GitHubOutput); err != nil {
			return err
		}
	}

	if result.Overall == schema.LevelCritical {
		return ErrCriticalHealth
	}
	return nil
}

// ExecuteBadge writes the shields.io badge payload for the persisted
// report. A missing report degrades to the unknown badge rather than
// failing, so the badge endpoint never breaks.
func ExecuteBadge(cfg *contract.Config) error {
	badge := UnknownBadge()

	var report schema.Report
	if err := readJSONFile(cfg.ReportFile, &report); err == nil {
		badge = BuildBadge(&report)
	} else if !errors.Is(err, os.ErrNotExist) {
		contract.LogWarn("falling back to unknown badge", err)
	}

	return writeJSONFile(cfg.BadgeFile, badge)
}

// ExecuteDashboard renders the static HTML dashboard and its JSON summary
// from the persisted report and execution results.
func ExecuteDashboard(cfg *contract.Config) error {
	var report schema.Report
	if err := readJSONFile(cfg.ReportFile, &report); err != nil {
		return fmt.Errorf("cannot load report (run report first): %w", err)
	}

	var summary schema.ExecutionSummary
	if err := readJSONFile(cfg.ResultsFile, &summary); err != nil {
		return fmt.Errorf("cannot load execution results (run execute first): %w", err)
	}

	return outwriter.WriteDashboard(&report, &summary, cfg.DashboardDir)
}

// ExecuteProfile refreshes the managed metrics section of the organization
// profile README in place. A missing README is created from scratch.
func ExecuteProfile(ctx context.Context, cfg *contract.Config) error {
	client := githubapi.NewClient(cfg.APIBaseURL, cfg.Token)
	snap, err := GatherContext(ctx, cfg, client, time.Now())
	if err != nil {
		return err
	}

	content := ""
	raw, err := os.ReadFile(cfg.ProfileFile)
	if err == nil {
		content = string(raw)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("cannot read profile readme: %w", err)
	}

	updated := UpdateProfileReadme(content, snap)
	if err := os.WriteFile(cfg.ProfileFile, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("cannot write profile readme: %w", err)
	}
	fmt.Printf("Updated %s\n", cfg.ProfileFile)
	return nil
}

// ExecutePipeline runs select, execute and report back to back, writing
// each stage artifact so the downstream commands keep working.
func ExecutePipeline(ctx context.Context, cfg *contract.Config, store contract.RunStore) error {
	client := githubapi.NewClient(cfg.APIBaseURL, cfg.Token)

	snap, err := GatherContext(ctx, cfg, client, time.Now())
	if err != nil {
		return err
	}

	plan, err := SelectActions(snap, cfg)
	if err != nil {
		return err
	}
	if err := writeJSONFile(cfg.PlanFile, plan); err != nil {
		return err
	}

	summary, err := ExecutePlan(ctx, cfg, client, snap, plan, store)
	if err != nil {
		return err
	}
	if err := writeJSONFile(cfg.ResultsFile, summary); err != nil {
		return err
	}

	report := BuildReport(summary, cfg.Tuning, time.Now())
	if err := writeJSONFile(cfg.ReportFile, report); err != nil {
		return err
	}
	return outwriter.PrintReport(report, cfg)
}

// writeJSONFile persists v as indented JSON, creating parent directories
// as needed.
func writeJSONFile(path string, v any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create directory for %s: %w", path, err)
		}
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	return nil
}

// readJSONFile loads JSON from path into v.
func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("cannot decode %s: %w", path, err)
	}
	return nil
}
