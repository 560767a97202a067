package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Redis key layout. Jobs live as JSON blobs; ready work sits in one list
// per priority so claims scan p0 → p4; delayed work waits in a sorted set
// scored by its ready time.
const (
	jobKeyPrefix   = "hive:job:"
	readyKeyPrefix = "hive:queue:p"
	delayedKey     = "hive:delayed"
	stateKeyPrefix = "hive:state:"
)

// jobTTL keeps finished job records around long enough to inspect.
const jobTTL = 7 * 24 * time.Hour

// Client wraps the Redis connection with job queue operations.
type Client struct {
	rdb *redis.Client
}

// NewClient connects to the Redis queue backend.
func NewClient(addr string) *Client {
	return &Client{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// Ping verifies the backend is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close releases the connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Submit enqueues a job. A positive delay parks it in the delayed set until
// due; otherwise it is immediately ready at its priority.
func (c *Client) Submit(ctx context.Context, jobType string, payload json.RawMessage, priority int, delay time.Duration) (*Job, error) {
	if jobType == "" {
		return nil, fmt.Errorf("job type is required")
	}
	if priority < MinPriority || priority > MaxPriority {
		return nil, fmt.Errorf("priority must be between %d and %d", MinPriority, MaxPriority)
	}

	now := time.Now()
	job := &Job{
		ID:        uuid.New().String(),
		Type:      jobType,
		Payload:   payload,
		Priority:  priority,
		State:     StateQueued,
		CreatedAt: now,
		ReadyAt:   now,
	}
	if delay > 0 {
		job.State = StateDelayed
		job.ReadyAt = now.Add(delay)
	}

	if err := c.saveJob(ctx, job); err != nil {
		return nil, err
	}
	if err := c.rdb.SAdd(ctx, stateKeyPrefix+job.State, job.ID).Err(); err != nil {
		return nil, fmt.Errorf("failed to index job state: %w", err)
	}

	if job.State == StateDelayed {
		err := c.rdb.ZAdd(ctx, delayedKey, redis.Z{
			Score:  float64(job.ReadyAt.UnixMilli()),
			Member: job.ID,
		}).Err()
		if err != nil {
			return nil, fmt.Errorf("failed to park delayed job: %w", err)
		}
	} else {
		if err := c.rdb.LPush(ctx, readyKey(priority), job.ID).Err(); err != nil {
			return nil, fmt.Errorf("failed to enqueue job: %w", err)
		}
	}
	return job, nil
}

// Status returns one job by id.
func (c *Client) Status(ctx context.Context, jobID string) (*Job, error) {
	raw, err := c.rdb.Get(ctx, jobKeyPrefix+jobID).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("job %s: %w", jobID, ErrJobNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		return nil, fmt.Errorf("failed to decode job: %w", err)
	}
	return &job, nil
}

// List returns jobs in a state (or all states with state == ""), newest
// first, up to limit.
func (c *Client) List(ctx context.Context, state string, limit int) ([]*Job, error) {
	if limit <= 0 {
		limit = 20
	}
	states := []string{StateQueued, StateDelayed, StateRunning, StateDone, StateFailed}
	if state != "" {
		states = []string{state}
	}

	var jobs []*Job
	for _, st := range states {
		ids, err := c.rdb.SMembers(ctx, stateKeyPrefix+st).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to list %s jobs: %w", st, err)
		}
		for _, id := range ids {
			job, err := c.Status(ctx, id)
			if err != nil {
				// Expired record still indexed; drop the stale entry.
				_ = c.rdb.SRem(ctx, stateKeyPrefix+st, id).Err()
				continue
			}
			jobs = append(jobs, job)
		}
	}

	sortJobsNewestFirst(jobs)
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs, nil
}

// Claim pops the highest-priority ready job and marks it running. Returns
// ErrNoJobsAvailable when every ready list is empty.
func (c *Client) Claim(ctx context.Context, workerID string) (*Job, error) {
	for p := MinPriority; p <= MaxPriority; p++ {
		id, err := c.rdb.RPop(ctx, readyKey(p)).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to pop queue: %w", err)
		}

		job, err := c.Status(ctx, id)
		if err != nil {
			continue
		}
		now := time.Now()
		if err := c.transition(ctx, job, StateRunning, func(j *Job) {
			j.StartedAt = &now
			j.Attempts++
		}); err != nil {
			return nil, err
		}
		return job, nil
	}
	return nil, ErrNoJobsAvailable
}

// Finish records a job's terminal state.
func (c *Client) Finish(ctx context.Context, job *Job, result json.RawMessage, jobErr error) error {
	now := time.Now()
	state := StateDone
	if jobErr != nil {
		state = StateFailed
	}
	return c.transition(ctx, job, state, func(j *Job) {
		j.FinishedAt = &now
		j.Result = result
		if jobErr != nil {
			j.Error = jobErr.Error()
		}
	})
}

// PromoteDelayed moves due delayed jobs onto their ready lists. Returns how
// many were promoted.
func (c *Client) PromoteDelayed(ctx context.Context) (int, error) {
	now := float64(time.Now().UnixMilli())
	ids, err := c.rdb.ZRangeByScore(ctx, delayedKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: fmt.Sprintf("%f", now),
	}).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to scan delayed jobs: %w", err)
	}

	promoted := 0
	for _, id := range ids {
		// Only the remover promotes; a concurrent pool instance loses the
		// ZRem race and skips.
		removed, err := c.rdb.ZRem(ctx, delayedKey, id).Result()
		if err != nil || removed == 0 {
			continue
		}
		job, err := c.Status(ctx, id)
		if err != nil {
			continue
		}
		if err := c.transition(ctx, job, StateQueued, nil); err != nil {
			continue
		}
		if err := c.rdb.LPush(ctx, readyKey(job.Priority), id).Err(); err != nil {
			continue
		}
		promoted++
	}
	return promoted, nil
}

// Depth returns the total number of ready jobs across priorities.
func (c *Client) Depth(ctx context.Context) (int64, error) {
	var total int64
	for p := MinPriority; p <= MaxPriority; p++ {
		n, err := c.rdb.LLen(ctx, readyKey(p)).Result()
		if err != nil {
			return 0, fmt.Errorf("failed to read queue depth: %w", err)
		}
		total += n
	}
	return total, nil
}

// DelayedCount returns the number of parked delayed jobs.
func (c *Client) DelayedCount(ctx context.Context) (int64, error) {
	n, err := c.rdb.ZCard(ctx, delayedKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read delayed count: %w", err)
	}
	return n, nil
}

func (c *Client) transition(ctx context.Context, job *Job, state string, mutate func(*Job)) error {
	prev := job.State
	job.State = state
	if mutate != nil {
		mutate(job)
	}
	if err := c.saveJob(ctx, job); err != nil {
		return err
	}
	pipe := c.rdb.TxPipeline()
	pipe.SRem(ctx, stateKeyPrefix+prev, job.ID)
	pipe.SAdd(ctx, stateKeyPrefix+state, job.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to move job state: %w", err)
	}
	return nil
}

func (c *Client) saveJob(ctx context.Context, job *Job) error {
	buf, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to encode job: %w", err)
	}
	if err := c.rdb.Set(ctx, jobKeyPrefix+job.ID, buf, jobTTL).Err(); err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}
	return nil
}

func readyKey(priority int) string {
	return fmt.Sprintf("%s%d", readyKeyPrefix, priority)
}

func sortJobsNewestFirst(jobs []*Job) {
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
}
