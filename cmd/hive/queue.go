package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/opencoord/hive/pkg/config"
	"github.com/opencoord/hive/pkg/consolidate"
	"github.com/opencoord/hive/pkg/database"
	"github.com/opencoord/hive/pkg/logstore"
	"github.com/opencoord/hive/pkg/queue"
	"github.com/opencoord/hive/pkg/swarm"
)

func newQueueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Job queue operations",
	}
	cmd.AddCommand(newQueueSubmitCmd())
	cmd.AddCommand(newQueueStatusCmd())
	cmd.AddCommand(newQueueListCmd())
	cmd.AddCommand(newQueueWorkerCmd())
	return cmd
}

func newQueueSubmitCmd() *cobra.Command {
	var (
		payload  string
		priority int
		delayMs  int64
	)
	cmd := &cobra.Command{
		Use:   "submit <type>",
		Short: "Submit a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			var raw json.RawMessage
			if payload != "" {
				if !json.Valid([]byte(payload)) {
					return fmt.Errorf("payload is not valid JSON")
				}
				raw = json.RawMessage(payload)
			}

			client := queue.NewClient(cfg.RedisAddr())
			defer client.Close()

			job, err := client.Submit(cmd.Context(), args[0], raw, priority,
				time.Duration(delayMs)*time.Millisecond)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(job)
			}
			fmt.Printf("Submitted job %s (type=%s priority=%d state=%s)\n",
				job.ID, job.Type, job.Priority, job.State)
			return nil
		},
	}
	cmd.Flags().StringVar(&payload, "payload", "", "job payload as JSON")
	cmd.Flags().IntVar(&priority, "priority", 2, "priority 0 (highest) to 4")
	cmd.Flags().Int64Var(&delayMs, "delay", 0, "delay before the job is ready, in milliseconds")
	return cmd
}

func newQueueStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <jobId>",
		Short: "Show one job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client := queue.NewClient(cfg.RedisAddr())
			defer client.Close()

			job, err := client.Status(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(job)
			}
			fmt.Printf("%s  %s  %s  attempts=%d\n", job.ID, job.Type, job.State, job.Attempts)
			if job.Error != "" {
				fmt.Printf("  error: %s\n", job.Error)
			}
			return nil
		},
	}
}

func newQueueListCmd() *cobra.Command {
	var (
		state string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client := queue.NewClient(cfg.RedisAddr())
			defer client.Close()

			jobs, err := client.List(cmd.Context(), state, limit)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(jobs)
			}
			if len(jobs) == 0 {
				fmt.Println("No jobs found")
				return nil
			}
			for _, j := range jobs {
				fmt.Printf("%s  %-12s  %-8s  p%d  %s\n",
					j.ID, j.Type, j.State, j.Priority, j.CreatedAt.Format(time.RFC3339))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&state, "state", "", "filter by state (queued|delayed|running|done|failed)")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum jobs to show")
	return cmd
}

func newQueueWorkerCmd() *cobra.Command {
	var concurrency int
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Run queue workers until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			dbConfig, err := database.LoadConfigFromEnv()
			if err != nil {
				return err
			}
			dbClient, err := database.NewClient(ctx, dbConfig)
			if err != nil {
				return err
			}
			defer dbClient.Close()

			client := queue.NewClient(cfg.RedisAddr())
			defer client.Close()
			if err := client.Ping(ctx); err != nil {
				return fmt.Errorf("redis unreachable: %w", err)
			}

			store := logstore.New(dbClient.DB())
			registry := newJobRegistry(cfg, store, dbClient)

			podID, _ := os.Hostname()
			if podID == "" {
				podID = "local"
			}
			pool := queue.NewWorkerPool(podID, client, registry, concurrency)
			if err := pool.Start(ctx); err != nil {
				return err
			}

			fmt.Printf("Workers running (concurrency=%d). Ctrl-C to stop.\n", concurrency)
			<-ctx.Done()
			pool.Stop()
			return nil
		},
	}
	cmd.Flags().IntVar(&concurrency, "concurrency", 2, "number of concurrent workers")
	return cmd
}

// newJobRegistry wires the built-in job types: projection rebuilds,
// stray-log consolidation, and review feedback run as background jobs.
func newJobRegistry(cfg config.Config, store *logstore.Store, dbClient *database.Client) *queue.Registry {
	registry := queue.NewRegistry()

	// Review state persists under the swarm state dir so a worker restart
	// cannot reset a task's attempt budget.
	tracker := swarm.NewPersistentReviewTracker(store, cfg.StateDir, newLogger())
	registry.Register("review", func(ctx context.Context, job *queue.Job) (json.RawMessage, error) {
		var req struct {
			Project string   `json:"project"`
			TaskID  string   `json:"task_id"`
			Status  string   `json:"status"`
			Issues  []string `json:"issues"`
		}
		if err := json.Unmarshal(job.Payload, &req); err != nil {
			return nil, fmt.Errorf("malformed payload: %w", err)
		}
		if req.Project == "" {
			req.Project = cfg.DefaultProject
		}
		outcome, err := tracker.SubmitReview(ctx, req.Project, req.TaskID, req.Status, req.Issues)
		if err != nil {
			return nil, err
		}
		return json.Marshal(outcome)
	})

	registry.Register("rebuild", func(ctx context.Context, job *queue.Job) (json.RawMessage, error) {
		var req struct {
			Project string `json:"project"`
		}
		if len(job.Payload) > 0 {
			if err := json.Unmarshal(job.Payload, &req); err != nil {
				return nil, fmt.Errorf("malformed payload: %w", err)
			}
		}
		if req.Project == "" {
			req.Project = cfg.DefaultProject
		}
		if err := store.Rebuild(ctx, req.Project); err != nil {
			return nil, err
		}
		return json.RawMessage(fmt.Sprintf(`{"project":%q,"rebuilt":true}`, req.Project)), nil
	})

	registry.Register("consolidate", func(ctx context.Context, job *queue.Job) (json.RawMessage, error) {
		var req struct {
			Root string `json:"root"`
		}
		if len(job.Payload) > 0 {
			if err := json.Unmarshal(job.Payload, &req); err != nil {
				return nil, fmt.Errorf("malformed payload: %w", err)
			}
		}
		if req.Root == "" {
			req.Root = "."
		}
		c := consolidate.New(store, dbClient.DB(), cfg.DefaultProject, newLogger())
		plans, reports, err := c.Run(ctx, req.Root)
		if err != nil {
			return nil, err
		}
		return json.Marshal(map[string]interface{}{
			"plans":   plans,
			"reports": reports,
		})
	})

	return registry
}
