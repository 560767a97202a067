package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/opencoord/hive/ent"
	"github.com/opencoord/hive/ent/agent"
	"github.com/opencoord/hive/pkg/logstore"
	"github.com/opencoord/hive/pkg/models"
)

// AgentService handles agent registration and lookup.
type AgentService struct {
	client *ent.Client
	store  *logstore.Store
	logger *slog.Logger
}

// NewAgentService creates a new agent service.
func NewAgentService(client *ent.Client, store *logstore.Store, logger *slog.Logger) *AgentService {
	return &AgentService{
		client: client,
		store:  store,
		logger: logger.With("service", "agent"),
	}
}

// Register records an agent under (project, name). Registration is
// idempotent: re-registering an existing name bumps its activity timestamp
// but never overwrites identity fields (first writer wins).
func (s *AgentService) Register(ctx context.Context, req models.RegisterAgentRequest) (*ent.Agent, error) {
	if req.ProjectKey == "" {
		return nil, NewValidationError("project_key", "project_key is required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "name is required")
	}

	_, err := s.store.Append(ctx, req.ProjectKey, models.EventAgentRegistered, map[string]interface{}{
		"name":             req.Name,
		"program":          req.Program,
		"model":            req.Model,
		"task_description": req.TaskDescription,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register agent: %w", err)
	}

	s.logger.Info("agent registered", "project", req.ProjectKey, "agent", req.Name)

	return s.Get(ctx, req.ProjectKey, req.Name)
}

// Get returns one agent by project and name.
func (s *AgentService) Get(ctx context.Context, projectKey, name string) (*ent.Agent, error) {
	a, err := s.client.Agent.Query().
		Where(agent.ProjectKeyEQ(projectKey), agent.NameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("agent %s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return a, nil
}

// List returns all agents registered in a project, most recently active first.
func (s *AgentService) List(ctx context.Context, projectKey string) ([]*ent.Agent, error) {
	agents, err := s.client.Agent.Query().
		Where(agent.ProjectKeyEQ(projectKey)).
		Order(ent.Desc(agent.FieldLastActiveAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return agents, nil
}
