package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/opencoord/hive/ent"
	"github.com/opencoord/hive/ent/agent"
	"github.com/opencoord/hive/ent/bead"
	"github.com/opencoord/hive/ent/evalrun"
	"github.com/opencoord/hive/pkg/logstore"
	"github.com/opencoord/hive/pkg/models"
)

// AnalyticsService answers read-only questions over the event log and its
// projections. It never writes to the log; eval runs go to their own table.
type AnalyticsService struct {
	client *ent.Client
	store  *logstore.Store
	logger *slog.Logger
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(client *ent.Client, store *logstore.Store, logger *slog.Logger) *AnalyticsService {
	return &AnalyticsService{
		client: client,
		store:  store,
		logger: logger.With("service", "analytics"),
	}
}

// LatencyStats summarizes subtask durations in milliseconds.
type LatencyStats struct {
	Count int     `json:"count"`
	AvgMs float64 `json:"avg_ms"`
	P50Ms int64   `json:"p50_ms"`
	P90Ms int64   `json:"p90_ms"`
	P99Ms int64   `json:"p99_ms"`
}

// Latency computes percentiles over subtask_outcome durations.
func (s *AnalyticsService) Latency(ctx context.Context, projectKey string) (*LatencyStats, error) {
	events, err := s.store.ReadByType(ctx, projectKey, 0, []string{models.EventSubtaskOutcome})
	if err != nil {
		return nil, fmt.Errorf("failed to read outcomes: %w", err)
	}

	var durations []int64
	for _, e := range events {
		switch v := e.Data["duration_ms"].(type) {
		case float64:
			durations = append(durations, int64(v))
		case int64:
			durations = append(durations, v)
		case int:
			durations = append(durations, int64(v))
		}
	}
	stats := &LatencyStats{Count: len(durations)}
	if len(durations) == 0 {
		return stats, nil
	}
	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })
	var sum int64
	for _, d := range durations {
		sum += d
	}
	stats.AvgMs = float64(sum) / float64(len(durations))
	stats.P50Ms = percentile(durations, 0.50)
	stats.P90Ms = percentile(durations, 0.90)
	stats.P99Ms = percentile(durations, 0.99)
	return stats, nil
}

func percentile(sorted []int64, p float64) int64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(p * float64(len(sorted)-1))
	return sorted[idx]
}

// ThroughputPoint is events-per-minute for one minute bucket.
type ThroughputPoint struct {
	Minute time.Time `json:"minute"`
	Count  int       `json:"count"`
}

// Throughput buckets all events of the trailing window into per-minute
// counts, oldest first.
func (s *AnalyticsService) Throughput(ctx context.Context, projectKey string, window time.Duration) ([]ThroughputPoint, error) {
	events, err := s.store.Read(ctx, projectKey, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}
	cutoff := time.Now().Add(-window).UnixMilli()
	buckets := make(map[int64]int)
	for _, e := range events {
		if e.TsMs < cutoff {
			continue
		}
		buckets[e.TsMs/60_000]++
	}
	keys := make([]int64, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	points := make([]ThroughputPoint, 0, len(keys))
	for _, k := range keys {
		points = append(points, ThroughputPoint{
			Minute: time.UnixMilli(k * 60_000).UTC(),
			Count:  buckets[k],
		})
	}
	return points, nil
}

// ErrorStats summarizes failure signals in the log.
type ErrorStats struct {
	SubtaskTotal  int     `json:"subtask_total"`
	SubtaskFailed int     `json:"subtask_failed"`
	FailureRate   float64 `json:"failure_rate"`
	Violations    int     `json:"violations"`
	FileConflicts int     `json:"file_conflicts"`
}

// Errors computes failure rates and guard violations.
func (s *AnalyticsService) Errors(ctx context.Context, projectKey string) (*ErrorStats, error) {
	events, err := s.store.ReadByType(ctx, projectKey, 0, []string{
		models.EventSubtaskOutcome,
		models.EventCoordinatorViolation,
		models.EventFileConflict,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}
	stats := &ErrorStats{}
	for _, e := range events {
		switch e.Type {
		case models.EventSubtaskOutcome:
			stats.SubtaskTotal++
			if ok, _ := e.Data["success"].(bool); !ok {
				stats.SubtaskFailed++
			}
		case models.EventCoordinatorViolation:
			stats.Violations++
		case models.EventFileConflict:
			stats.FileConflicts++
		}
	}
	if stats.SubtaskTotal > 0 {
		stats.FailureRate = float64(stats.SubtaskFailed) / float64(stats.SubtaskTotal)
	}
	return stats, nil
}

// SaturationStats relates in-flight work to available agents.
type SaturationStats struct {
	Agents     int     `json:"agents"`
	InProgress int     `json:"in_progress"`
	Open       int     `json:"open"`
	Blocked    int     `json:"blocked"`
	Saturation float64 `json:"saturation"`
}

// Saturation reports in-progress cells per registered agent.
func (s *AnalyticsService) Saturation(ctx context.Context, projectKey string) (*SaturationStats, error) {
	agents, err := s.client.Agent.Query().
		Where(agent.ProjectKeyEQ(projectKey)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count agents: %w", err)
	}
	stats := &SaturationStats{Agents: agents}
	for _, st := range []struct {
		status bead.Status
		dst    *int
	}{
		{bead.StatusInProgress, &stats.InProgress},
		{bead.StatusOpen, &stats.Open},
		{bead.StatusBlocked, &stats.Blocked},
	} {
		n, err := s.client.Bead.Query().
			Where(bead.ProjectKeyEQ(projectKey), bead.StatusEQ(st.status), bead.DeletedAtIsNil()).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count cells: %w", err)
		}
		*st.dst = n
	}
	if agents > 0 {
		stats.Saturation = float64(stats.InProgress) / float64(agents)
	}
	return stats, nil
}

// ContentionEntry counts conflicts observed on one path.
type ContentionEntry struct {
	Path      string `json:"path"`
	Conflicts int    `json:"conflicts"`
}

// Contention ranks paths by observed conflict count, busiest first.
func (s *AnalyticsService) Contention(ctx context.Context, projectKey string) ([]ContentionEntry, error) {
	events, err := s.store.ReadByType(ctx, projectKey, 0, []string{models.EventFileConflict})
	if err != nil {
		return nil, fmt.Errorf("failed to read conflicts: %w", err)
	}
	counts := make(map[string]int)
	for _, e := range events {
		if p, _ := e.Data["path"].(string); p != "" {
			counts[p]++
		}
	}
	entries := make([]ContentionEntry, 0, len(counts))
	for p, n := range counts {
		entries = append(entries, ContentionEntry{Path: p, Conflicts: n})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Conflicts != entries[j].Conflicts {
			return entries[i].Conflicts > entries[j].Conflicts
		}
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}

// RecordEvalRun stores one scored eval run.
func (s *AnalyticsService) RecordEvalRun(ctx context.Context, evalName string, score float64) error {
	if evalName == "" {
		return NewValidationError("eval_name", "eval_name is required")
	}
	err := s.client.EvalRun.Create().
		SetEvalName(evalName).
		SetScore(score).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record eval run: %w", err)
	}
	return nil
}

// Regression reports a run that scored below its predecessor.
type Regression struct {
	EvalName     string  `json:"eval_name"`
	Previous     float64 `json:"previous"`
	Current      float64 `json:"current"`
	Delta        float64 `json:"delta"`
	DeltaPercent float64 `json:"delta_percent"`
}

// Regressions lists every run that scored below the run before it. Delta
// is the magnitude of the drop; DeltaPercent is negative.
func (s *AnalyticsService) Regressions(ctx context.Context, evalName string) ([]Regression, error) {
	q := s.client.EvalRun.Query().Order(ent.Asc(evalrun.FieldRunAt), ent.Asc(evalrun.FieldID))
	if evalName != "" {
		q = q.Where(evalrun.EvalNameEQ(evalName))
	}
	runs, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list eval runs: %w", err)
	}

	prev := make(map[string]float64)
	seen := make(map[string]bool)
	var out []Regression
	for _, r := range runs {
		if seen[r.EvalName] && r.Score < prev[r.EvalName] {
			p := prev[r.EvalName]
			out = append(out, Regression{
				EvalName:     r.EvalName,
				Previous:     p,
				Current:      r.Score,
				Delta:        p - r.Score,
				DeltaPercent: (r.Score - p) / p * 100,
			})
		}
		prev[r.EvalName] = r.Score
		seen[r.EvalName] = true
	}
	return out, nil
}
