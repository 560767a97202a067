// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/opencoord/hive/ent/agent"
	"github.com/opencoord/hive/ent/bead"
	"github.com/opencoord/hive/ent/beadcomment"
	"github.com/opencoord/hive/ent/beaddependency"
	"github.com/opencoord/hive/ent/beadlabel"
	"github.com/opencoord/hive/ent/cursor"
	"github.com/opencoord/hive/ent/deferred"
	"github.com/opencoord/hive/ent/evalrun"
	"github.com/opencoord/hive/ent/event"
	"github.com/opencoord/hive/ent/message"
	"github.com/opencoord/hive/ent/messagerecipient"
	"github.com/opencoord/hive/ent/predicate"
	"github.com/opencoord/hive/ent/reservation"
	"github.com/opencoord/hive/ent/swarmcontext"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent            = "Agent"
	TypeBead             = "Bead"
	TypeBeadComment      = "BeadComment"
	TypeBeadDependency   = "BeadDependency"
	TypeBeadLabel        = "BeadLabel"
	TypeCursor           = "Cursor"
	TypeDeferred         = "Deferred"
	TypeEvalRun          = "EvalRun"
	TypeEvent            = "Event"
	TypeMessage          = "Message"
	TypeMessageRecipient = "MessageRecipient"
	TypeReservation      = "Reservation"
	TypeSwarmContext     = "SwarmContext"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op               Op
	typ              string
	id               *int
	project_key      *string
	name             *string
	program          *string
	model            *string
	task_description *string
	registered_at    *time.Time
	last_active_at   *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Agent, error)
	predicates       []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id int) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectKey sets the "project_key" field.
func (m *AgentMutation) SetProjectKey(s string) {
	m.project_key = &s
}

// ProjectKey returns the value of the "project_key" field in the mutation.
func (m *AgentMutation) ProjectKey() (r string, exists bool) {
	v := m.project_key
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectKey returns the old "project_key" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldProjectKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectKey: %w", err)
	}
	return oldValue.ProjectKey, nil
}

// ResetProjectKey resets all changes to the "project_key" field.
func (m *AgentMutation) ResetProjectKey() {
	m.project_key = nil
}

// SetName sets the "name" field.
func (m *AgentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentMutation) ResetName() {
	m.name = nil
}

// SetProgram sets the "program" field.
func (m *AgentMutation) SetProgram(s string) {
	m.program = &s
}

// Program returns the value of the "program" field in the mutation.
func (m *AgentMutation) Program() (r string, exists bool) {
	v := m.program
	if v == nil {
		return
	}
	return *v, true
}

// OldProgram returns the old "program" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldProgram(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgram is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgram requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgram: %w", err)
	}
	return oldValue.Program, nil
}

// ClearProgram clears the value of the "program" field.
func (m *AgentMutation) ClearProgram() {
	m.program = nil
	m.clearedFields[agent.FieldProgram] = struct{}{}
}

// ProgramCleared returns if the "program" field was cleared in this mutation.
func (m *AgentMutation) ProgramCleared() bool {
	_, ok := m.clearedFields[agent.FieldProgram]
	return ok
}

// ResetProgram resets all changes to the "program" field.
func (m *AgentMutation) ResetProgram() {
	m.program = nil
	delete(m.clearedFields, agent.FieldProgram)
}

// SetModel sets the "model" field.
func (m *AgentMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AgentMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *AgentMutation) ClearModel() {
	m.model = nil
	m.clearedFields[agent.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *AgentMutation) ModelCleared() bool {
	_, ok := m.clearedFields[agent.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *AgentMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, agent.FieldModel)
}

// SetTaskDescription sets the "task_description" field.
func (m *AgentMutation) SetTaskDescription(s string) {
	m.task_description = &s
}

// TaskDescription returns the value of the "task_description" field in the mutation.
func (m *AgentMutation) TaskDescription() (r string, exists bool) {
	v := m.task_description
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskDescription returns the old "task_description" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTaskDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskDescription: %w", err)
	}
	return oldValue.TaskDescription, nil
}

// ClearTaskDescription clears the value of the "task_description" field.
func (m *AgentMutation) ClearTaskDescription() {
	m.task_description = nil
	m.clearedFields[agent.FieldTaskDescription] = struct{}{}
}

// TaskDescriptionCleared returns if the "task_description" field was cleared in this mutation.
func (m *AgentMutation) TaskDescriptionCleared() bool {
	_, ok := m.clearedFields[agent.FieldTaskDescription]
	return ok
}

// ResetTaskDescription resets all changes to the "task_description" field.
func (m *AgentMutation) ResetTaskDescription() {
	m.task_description = nil
	delete(m.clearedFields, agent.FieldTaskDescription)
}

// SetRegisteredAt sets the "registered_at" field.
func (m *AgentMutation) SetRegisteredAt(t time.Time) {
	m.registered_at = &t
}

// RegisteredAt returns the value of the "registered_at" field in the mutation.
func (m *AgentMutation) RegisteredAt() (r time.Time, exists bool) {
	v := m.registered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRegisteredAt returns the old "registered_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldRegisteredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegisteredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegisteredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegisteredAt: %w", err)
	}
	return oldValue.RegisteredAt, nil
}

// ResetRegisteredAt resets all changes to the "registered_at" field.
func (m *AgentMutation) ResetRegisteredAt() {
	m.registered_at = nil
}

// SetLastActiveAt sets the "last_active_at" field.
func (m *AgentMutation) SetLastActiveAt(t time.Time) {
	m.last_active_at = &t
}

// LastActiveAt returns the value of the "last_active_at" field in the mutation.
func (m *AgentMutation) LastActiveAt() (r time.Time, exists bool) {
	v := m.last_active_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActiveAt returns the old "last_active_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldLastActiveAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActiveAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActiveAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActiveAt: %w", err)
	}
	return oldValue.LastActiveAt, nil
}

// ResetLastActiveAt resets all changes to the "last_active_at" field.
func (m *AgentMutation) ResetLastActiveAt() {
	m.last_active_at = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.project_key != nil {
		fields = append(fields, agent.FieldProjectKey)
	}
	if m.name != nil {
		fields = append(fields, agent.FieldName)
	}
	if m.program != nil {
		fields = append(fields, agent.FieldProgram)
	}
	if m.model != nil {
		fields = append(fields, agent.FieldModel)
	}
	if m.task_description != nil {
		fields = append(fields, agent.FieldTaskDescription)
	}
	if m.registered_at != nil {
		fields = append(fields, agent.FieldRegisteredAt)
	}
	if m.last_active_at != nil {
		fields = append(fields, agent.FieldLastActiveAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldProjectKey:
		return m.ProjectKey()
	case agent.FieldName:
		return m.Name()
	case agent.FieldProgram:
		return m.Program()
	case agent.FieldModel:
		return m.Model()
	case agent.FieldTaskDescription:
		return m.TaskDescription()
	case agent.FieldRegisteredAt:
		return m.RegisteredAt()
	case agent.FieldLastActiveAt:
		return m.LastActiveAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldProjectKey:
		return m.OldProjectKey(ctx)
	case agent.FieldName:
		return m.OldName(ctx)
	case agent.FieldProgram:
		return m.OldProgram(ctx)
	case agent.FieldModel:
		return m.OldModel(ctx)
	case agent.FieldTaskDescription:
		return m.OldTaskDescription(ctx)
	case agent.FieldRegisteredAt:
		return m.OldRegisteredAt(ctx)
	case agent.FieldLastActiveAt:
		return m.OldLastActiveAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldProjectKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectKey(v)
		return nil
	case agent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agent.FieldProgram:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgram(v)
		return nil
	case agent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case agent.FieldTaskDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskDescription(v)
		return nil
	case agent.FieldRegisteredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegisteredAt(v)
		return nil
	case agent.FieldLastActiveAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActiveAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldProgram) {
		fields = append(fields, agent.FieldProgram)
	}
	if m.FieldCleared(agent.FieldModel) {
		fields = append(fields, agent.FieldModel)
	}
	if m.FieldCleared(agent.FieldTaskDescription) {
		fields = append(fields, agent.FieldTaskDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldProgram:
		m.ClearProgram()
		return nil
	case agent.FieldModel:
		m.ClearModel()
		return nil
	case agent.FieldTaskDescription:
		m.ClearTaskDescription()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldProjectKey:
		m.ResetProjectKey()
		return nil
	case agent.FieldName:
		m.ResetName()
		return nil
	case agent.FieldProgram:
		m.ResetProgram()
		return nil
	case agent.FieldModel:
		m.ResetModel()
		return nil
	case agent.FieldTaskDescription:
		m.ResetTaskDescription()
		return nil
	case agent.FieldRegisteredAt:
		m.ResetRegisteredAt()
		return nil
	case agent.FieldLastActiveAt:
		m.ResetLastActiveAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Agent edge %s", name)
}

// BeadMutation represents an operation that mutates the Bead nodes in the graph.
type BeadMutation struct {
	config
	op            Op
	typ           string
	id            *string
	project_key   *string
	bead_type     *bead.BeadType
	status        *bead.Status
	title         *string
	description   *string
	priority      *int
	addpriority   *int
	parent_id     *string
	assignee      *string
	created_at    *time.Time
	updated_at    *time.Time
	closed_at     *time.Time
	closed_reason *string
	deleted_at    *time.Time
	delete_reason *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Bead, error)
	predicates    []predicate.Bead
}

var _ ent.Mutation = (*BeadMutation)(nil)

// beadOption allows management of the mutation configuration using functional options.
type beadOption func(*BeadMutation)

// newBeadMutation creates new mutation for the Bead entity.
func newBeadMutation(c config, op Op, opts ...beadOption) *BeadMutation {
	m := &BeadMutation{
		config:        c,
		op:            op,
		typ:           TypeBead,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBeadID sets the ID field of the mutation.
func withBeadID(id string) beadOption {
	return func(m *BeadMutation) {
		var (
			err   error
			once  sync.Once
			value *Bead
		)
		m.oldValue = func(ctx context.Context) (*Bead, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Bead.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBead sets the old Bead of the mutation.
func withBead(node *Bead) beadOption {
	return func(m *BeadMutation) {
		m.oldValue = func(context.Context) (*Bead, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BeadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BeadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Bead entities.
func (m *BeadMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BeadMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BeadMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Bead.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectKey sets the "project_key" field.
func (m *BeadMutation) SetProjectKey(s string) {
	m.project_key = &s
}

// ProjectKey returns the value of the "project_key" field in the mutation.
func (m *BeadMutation) ProjectKey() (r string, exists bool) {
	v := m.project_key
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectKey returns the old "project_key" field's value of the Bead entity.
// If the Bead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeadMutation) OldProjectKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectKey: %w", err)
	}
	return oldValue.ProjectKey, nil
}

// ResetProjectKey resets all changes to the "project_key" field.
func (m *BeadMutation) ResetProjectKey() {
	m.project_key = nil
}

// SetBeadType sets the "bead_type" field.
func (m *BeadMutation) SetBeadType(bt bead.BeadType) {
	m.bead_type = &bt
}

// BeadType returns the value of the "bead_type" field in the mutation.
func (m *BeadMutation) BeadType() (r bead.BeadType, exists bool) {
	v := m.bead_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBeadType returns the old "bead_type" field's value of the Bead entity.
// If the Bead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeadMutation) OldBeadType(ctx context.Context) (v bead.BeadType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBeadType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBeadType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBeadType: %w", err)
	}
	return oldValue.BeadType, nil
}

// ResetBeadType resets all changes to the "bead_type" field.
func (m *BeadMutation) ResetBeadType() {
	m.bead_type = nil
}

// SetStatus sets the "status" field.
func (m *BeadMutation) SetStatus(b bead.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BeadMutation) Status() (r bead.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Bead entity.
// If the Bead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeadMutation) OldStatus(ctx context.Context) (v bead.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BeadMutation) ResetStatus() {
	m.status = nil
}

// SetTitle sets the "title" field.
func (m *BeadMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *BeadMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Bead entity.
// If the Bead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeadMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *BeadMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *BeadMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *BeadMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Bead entity.
// If the Bead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeadMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *BeadMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[bead.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *BeadMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[bead.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *BeadMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, bead.FieldDescription)
}

// SetPriority sets the "priority" field.
func (m *BeadMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *BeadMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Bead entity.
// If the Bead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeadMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *BeadMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *BeadMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *BeadMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetParentID sets the "parent_id" field.
func (m *BeadMutation) SetParentID(s string) {
	m.parent_id = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *BeadMutation) ParentID() (r string, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Bead entity.
// If the Bead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeadMutation) OldParentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *BeadMutation) ClearParentID() {
	m.parent_id = nil
	m.clearedFields[bead.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *BeadMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[bead.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *BeadMutation) ResetParentID() {
	m.parent_id = nil
	delete(m.clearedFields, bead.FieldParentID)
}

// SetAssignee sets the "assignee" field.
func (m *BeadMutation) SetAssignee(s string) {
	m.assignee = &s
}

// Assignee returns the value of the "assignee" field in the mutation.
func (m *BeadMutation) Assignee() (r string, exists bool) {
	v := m.assignee
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignee returns the old "assignee" field's value of the Bead entity.
// If the Bead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeadMutation) OldAssignee(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignee is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignee requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignee: %w", err)
	}
	return oldValue.Assignee, nil
}

// ClearAssignee clears the value of the "assignee" field.
func (m *BeadMutation) ClearAssignee() {
	m.assignee = nil
	m.clearedFields[bead.FieldAssignee] = struct{}{}
}

// AssigneeCleared returns if the "assignee" field was cleared in this mutation.
func (m *BeadMutation) AssigneeCleared() bool {
	_, ok := m.clearedFields[bead.FieldAssignee]
	return ok
}

// ResetAssignee resets all changes to the "assignee" field.
func (m *BeadMutation) ResetAssignee() {
	m.assignee = nil
	delete(m.clearedFields, bead.FieldAssignee)
}

// SetCreatedAt sets the "created_at" field.
func (m *BeadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BeadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Bead entity.
// If the Bead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BeadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BeadMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BeadMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Bead entity.
// If the Bead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeadMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BeadMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetClosedAt sets the "closed_at" field.
func (m *BeadMutation) SetClosedAt(t time.Time) {
	m.closed_at = &t
}

// ClosedAt returns the value of the "closed_at" field in the mutation.
func (m *BeadMutation) ClosedAt() (r time.Time, exists bool) {
	v := m.closed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClosedAt returns the old "closed_at" field's value of the Bead entity.
// If the Bead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeadMutation) OldClosedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosedAt: %w", err)
	}
	return oldValue.ClosedAt, nil
}

// ClearClosedAt clears the value of the "closed_at" field.
func (m *BeadMutation) ClearClosedAt() {
	m.closed_at = nil
	m.clearedFields[bead.FieldClosedAt] = struct{}{}
}

// ClosedAtCleared returns if the "closed_at" field was cleared in this mutation.
func (m *BeadMutation) ClosedAtCleared() bool {
	_, ok := m.clearedFields[bead.FieldClosedAt]
	return ok
}

// ResetClosedAt resets all changes to the "closed_at" field.
func (m *BeadMutation) ResetClosedAt() {
	m.closed_at = nil
	delete(m.clearedFields, bead.FieldClosedAt)
}

// SetClosedReason sets the "closed_reason" field.
func (m *BeadMutation) SetClosedReason(s string) {
	m.closed_reason = &s
}

// ClosedReason returns the value of the "closed_reason" field in the mutation.
func (m *BeadMutation) ClosedReason() (r string, exists bool) {
	v := m.closed_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldClosedReason returns the old "closed_reason" field's value of the Bead entity.
// If the Bead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeadMutation) OldClosedReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosedReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosedReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosedReason: %w", err)
	}
	return oldValue.ClosedReason, nil
}

// ClearClosedReason clears the value of the "closed_reason" field.
func (m *BeadMutation) ClearClosedReason() {
	m.closed_reason = nil
	m.clearedFields[bead.FieldClosedReason] = struct{}{}
}

// ClosedReasonCleared returns if the "closed_reason" field was cleared in this mutation.
func (m *BeadMutation) ClosedReasonCleared() bool {
	_, ok := m.clearedFields[bead.FieldClosedReason]
	return ok
}

// ResetClosedReason resets all changes to the "closed_reason" field.
func (m *BeadMutation) ResetClosedReason() {
	m.closed_reason = nil
	delete(m.clearedFields, bead.FieldClosedReason)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *BeadMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *BeadMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Bead entity.
// If the Bead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeadMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *BeadMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[bead.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *BeadMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[bead.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *BeadMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, bead.FieldDeletedAt)
}

// SetDeleteReason sets the "delete_reason" field.
func (m *BeadMutation) SetDeleteReason(s string) {
	m.delete_reason = &s
}

// DeleteReason returns the value of the "delete_reason" field in the mutation.
func (m *BeadMutation) DeleteReason() (r string, exists bool) {
	v := m.delete_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldDeleteReason returns the old "delete_reason" field's value of the Bead entity.
// If the Bead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeadMutation) OldDeleteReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeleteReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeleteReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeleteReason: %w", err)
	}
	return oldValue.DeleteReason, nil
}

// ClearDeleteReason clears the value of the "delete_reason" field.
func (m *BeadMutation) ClearDeleteReason() {
	m.delete_reason = nil
	m.clearedFields[bead.FieldDeleteReason] = struct{}{}
}

// DeleteReasonCleared returns if the "delete_reason" field was cleared in this mutation.
func (m *BeadMutation) DeleteReasonCleared() bool {
	_, ok := m.clearedFields[bead.FieldDeleteReason]
	return ok
}

// ResetDeleteReason resets all changes to the "delete_reason" field.
func (m *BeadMutation) ResetDeleteReason() {
	m.delete_reason = nil
	delete(m.clearedFields, bead.FieldDeleteReason)
}

// Where appends a list predicates to the BeadMutation builder.
func (m *BeadMutation) Where(ps ...predicate.Bead) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BeadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BeadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Bead, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BeadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BeadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Bead).
func (m *BeadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BeadMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.project_key != nil {
		fields = append(fields, bead.FieldProjectKey)
	}
	if m.bead_type != nil {
		fields = append(fields, bead.FieldBeadType)
	}
	if m.status != nil {
		fields = append(fields, bead.FieldStatus)
	}
	if m.title != nil {
		fields = append(fields, bead.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, bead.FieldDescription)
	}
	if m.priority != nil {
		fields = append(fields, bead.FieldPriority)
	}
	if m.parent_id != nil {
		fields = append(fields, bead.FieldParentID)
	}
	if m.assignee != nil {
		fields = append(fields, bead.FieldAssignee)
	}
	if m.created_at != nil {
		fields = append(fields, bead.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, bead.FieldUpdatedAt)
	}
	if m.closed_at != nil {
		fields = append(fields, bead.FieldClosedAt)
	}
	if m.closed_reason != nil {
		fields = append(fields, bead.FieldClosedReason)
	}
	if m.deleted_at != nil {
		fields = append(fields, bead.FieldDeletedAt)
	}
	if m.delete_reason != nil {
		fields = append(fields, bead.FieldDeleteReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BeadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bead.FieldProjectKey:
		return m.ProjectKey()
	case bead.FieldBeadType:
		return m.BeadType()
	case bead.FieldStatus:
		return m.Status()
	case bead.FieldTitle:
		return m.Title()
	case bead.FieldDescription:
		return m.Description()
	case bead.FieldPriority:
		return m.Priority()
	case bead.FieldParentID:
		return m.ParentID()
	case bead.FieldAssignee:
		return m.Assignee()
	case bead.FieldCreatedAt:
		return m.CreatedAt()
	case bead.FieldUpdatedAt:
		return m.UpdatedAt()
	case bead.FieldClosedAt:
		return m.ClosedAt()
	case bead.FieldClosedReason:
		return m.ClosedReason()
	case bead.FieldDeletedAt:
		return m.DeletedAt()
	case bead.FieldDeleteReason:
		return m.DeleteReason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BeadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bead.FieldProjectKey:
		return m.OldProjectKey(ctx)
	case bead.FieldBeadType:
		return m.OldBeadType(ctx)
	case bead.FieldStatus:
		return m.OldStatus(ctx)
	case bead.FieldTitle:
		return m.OldTitle(ctx)
	case bead.FieldDescription:
		return m.OldDescription(ctx)
	case bead.FieldPriority:
		return m.OldPriority(ctx)
	case bead.FieldParentID:
		return m.OldParentID(ctx)
	case bead.FieldAssignee:
		return m.OldAssignee(ctx)
	case bead.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case bead.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case bead.FieldClosedAt:
		return m.OldClosedAt(ctx)
	case bead.FieldClosedReason:
		return m.OldClosedReason(ctx)
	case bead.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case bead.FieldDeleteReason:
		return m.OldDeleteReason(ctx)
	}
	return nil, fmt.Errorf("unknown Bead field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BeadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bead.FieldProjectKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectKey(v)
		return nil
	case bead.FieldBeadType:
		v, ok := value.(bead.BeadType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBeadType(v)
		return nil
	case bead.FieldStatus:
		v, ok := value.(bead.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case bead.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case bead.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case bead.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case bead.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case bead.FieldAssignee:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignee(v)
		return nil
	case bead.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case bead.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case bead.FieldClosedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosedAt(v)
		return nil
	case bead.FieldClosedReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosedReason(v)
		return nil
	case bead.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case bead.FieldDeleteReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeleteReason(v)
		return nil
	}
	return fmt.Errorf("unknown Bead field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BeadMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, bead.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BeadMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case bead.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BeadMutation) AddField(name string, value ent.Value) error {
	switch name {
	case bead.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown Bead numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BeadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(bead.FieldDescription) {
		fields = append(fields, bead.FieldDescription)
	}
	if m.FieldCleared(bead.FieldParentID) {
		fields = append(fields, bead.FieldParentID)
	}
	if m.FieldCleared(bead.FieldAssignee) {
		fields = append(fields, bead.FieldAssignee)
	}
	if m.FieldCleared(bead.FieldClosedAt) {
		fields = append(fields, bead.FieldClosedAt)
	}
	if m.FieldCleared(bead.FieldClosedReason) {
		fields = append(fields, bead.FieldClosedReason)
	}
	if m.FieldCleared(bead.FieldDeletedAt) {
		fields = append(fields, bead.FieldDeletedAt)
	}
	if m.FieldCleared(bead.FieldDeleteReason) {
		fields = append(fields, bead.FieldDeleteReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BeadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BeadMutation) ClearField(name string) error {
	switch name {
	case bead.FieldDescription:
		m.ClearDescription()
		return nil
	case bead.FieldParentID:
		m.ClearParentID()
		return nil
	case bead.FieldAssignee:
		m.ClearAssignee()
		return nil
	case bead.FieldClosedAt:
		m.ClearClosedAt()
		return nil
	case bead.FieldClosedReason:
		m.ClearClosedReason()
		return nil
	case bead.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case bead.FieldDeleteReason:
		m.ClearDeleteReason()
		return nil
	}
	return fmt.Errorf("unknown Bead nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BeadMutation) ResetField(name string) error {
	switch name {
	case bead.FieldProjectKey:
		m.ResetProjectKey()
		return nil
	case bead.FieldBeadType:
		m.ResetBeadType()
		return nil
	case bead.FieldStatus:
		m.ResetStatus()
		return nil
	case bead.FieldTitle:
		m.ResetTitle()
		return nil
	case bead.FieldDescription:
		m.ResetDescription()
		return nil
	case bead.FieldPriority:
		m.ResetPriority()
		return nil
	case bead.FieldParentID:
		m.ResetParentID()
		return nil
	case bead.FieldAssignee:
		m.ResetAssignee()
		return nil
	case bead.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case bead.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case bead.FieldClosedAt:
		m.ResetClosedAt()
		return nil
	case bead.FieldClosedReason:
		m.ResetClosedReason()
		return nil
	case bead.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case bead.FieldDeleteReason:
		m.ResetDeleteReason()
		return nil
	}
	return fmt.Errorf("unknown Bead field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BeadMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BeadMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BeadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BeadMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BeadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BeadMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BeadMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Bead unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BeadMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Bead edge %s", name)
}

// BeadCommentMutation represents an operation that mutates the BeadComment nodes in the graph.
type BeadCommentMutation struct {
	config
	op            Op
	typ           string
	id            *int
	bead_id       *string
	author        *string
	body          *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*BeadComment, error)
	predicates    []predicate.BeadComment
}

var _ ent.Mutation = (*BeadCommentMutation)(nil)

// beadcommentOption allows management of the mutation configuration using functional options.
type beadcommentOption func(*BeadCommentMutation)

// newBeadCommentMutation creates new mutation for the BeadComment entity.
func newBeadCommentMutation(c config, op Op, opts ...beadcommentOption) *BeadCommentMutation {
	m := &BeadCommentMutation{
		config:        c,
		op:            op,
		typ:           TypeBeadComment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBeadCommentID sets the ID field of the mutation.
func withBeadCommentID(id int) beadcommentOption {
	return func(m *BeadCommentMutation) {
		var (
			err   error
			once  sync.Once
			value *BeadComment
		)
		m.oldValue = func(ctx context.Context) (*BeadComment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BeadComment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBeadComment sets the old BeadComment of the mutation.
func withBeadComment(node *BeadComment) beadcommentOption {
	return func(m *BeadCommentMutation) {
		m.oldValue = func(context.Context) (*BeadComment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BeadCommentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BeadCommentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BeadCommentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BeadCommentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BeadComment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBeadID sets the "bead_id" field.
func (m *BeadCommentMutation) SetBeadID(s string) {
	m.bead_id = &s
}

// BeadID returns the value of the "bead_id" field in the mutation.
func (m *BeadCommentMutation) BeadID() (r string, exists bool) {
	v := m.bead_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBeadID returns the old "bead_id" field's value of the BeadComment entity.
// If the BeadComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeadCommentMutation) OldBeadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBeadID: %w", err)
	}
	return oldValue.BeadID, nil
}

// ResetBeadID resets all changes to the "bead_id" field.
func (m *BeadCommentMutation) ResetBeadID() {
	m.bead_id = nil
}

// SetAuthor sets the "author" field.
func (m *BeadCommentMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *BeadCommentMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the BeadComment entity.
// If the BeadComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeadCommentMutation) OldAuthor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ResetAuthor resets all changes to the "author" field.
func (m *BeadCommentMutation) ResetAuthor() {
	m.author = nil
}

// SetBody sets the "body" field.
func (m *BeadCommentMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *BeadCommentMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the BeadComment entity.
// If the BeadComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeadCommentMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *BeadCommentMutation) ResetBody() {
	m.body = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BeadCommentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BeadCommentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BeadComment entity.
// If the BeadComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeadCommentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BeadCommentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the BeadCommentMutation builder.
func (m *BeadCommentMutation) Where(ps ...predicate.BeadComment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BeadCommentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BeadCommentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BeadComment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BeadCommentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BeadCommentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BeadComment).
func (m *BeadCommentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BeadCommentMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.bead_id != nil {
		fields = append(fields, beadcomment.FieldBeadID)
	}
	if m.author != nil {
		fields = append(fields, beadcomment.FieldAuthor)
	}
	if m.body != nil {
		fields = append(fields, beadcomment.FieldBody)
	}
	if m.created_at != nil {
		fields = append(fields, beadcomment.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BeadCommentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case beadcomment.FieldBeadID:
		return m.BeadID()
	case beadcomment.FieldAuthor:
		return m.Author()
	case beadcomment.FieldBody:
		return m.Body()
	case beadcomment.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BeadCommentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case beadcomment.FieldBeadID:
		return m.OldBeadID(ctx)
	case beadcomment.FieldAuthor:
		return m.OldAuthor(ctx)
	case beadcomment.FieldBody:
		return m.OldBody(ctx)
	case beadcomment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BeadComment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BeadCommentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case beadcomment.FieldBeadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBeadID(v)
		return nil
	case beadcomment.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case beadcomment.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case beadcomment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BeadComment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BeadCommentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BeadCommentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BeadCommentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BeadComment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BeadCommentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BeadCommentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BeadCommentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BeadComment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BeadCommentMutation) ResetField(name string) error {
	switch name {
	case beadcomment.FieldBeadID:
		m.ResetBeadID()
		return nil
	case beadcomment.FieldAuthor:
		m.ResetAuthor()
		return nil
	case beadcomment.FieldBody:
		m.ResetBody()
		return nil
	case beadcomment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BeadComment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BeadCommentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BeadCommentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BeadCommentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BeadCommentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BeadCommentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BeadCommentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BeadCommentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BeadComment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BeadCommentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BeadComment edge %s", name)
}

// BeadDependencyMutation represents an operation that mutates the BeadDependency nodes in the graph.
type BeadDependencyMutation struct {
	config
	op            Op
	typ           string
	id            *int
	bead_id       *string
	depends_on_id *string
	relationship  *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*BeadDependency, error)
	predicates    []predicate.BeadDependency
}

var _ ent.Mutation = (*BeadDependencyMutation)(nil)

// beaddependencyOption allows management of the mutation configuration using functional options.
type beaddependencyOption func(*BeadDependencyMutation)

// newBeadDependencyMutation creates new mutation for the BeadDependency entity.
func newBeadDependencyMutation(c config, op Op, opts ...beaddependencyOption) *BeadDependencyMutation {
	m := &BeadDependencyMutation{
		config:        c,
		op:            op,
		typ:           TypeBeadDependency,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBeadDependencyID sets the ID field of the mutation.
func withBeadDependencyID(id int) beaddependencyOption {
	return func(m *BeadDependencyMutation) {
		var (
			err   error
			once  sync.Once
			value *BeadDependency
		)
		m.oldValue = func(ctx context.Context) (*BeadDependency, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BeadDependency.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBeadDependency sets the old BeadDependency of the mutation.
func withBeadDependency(node *BeadDependency) beaddependencyOption {
	return func(m *BeadDependencyMutation) {
		m.oldValue = func(context.Context) (*BeadDependency, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BeadDependencyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BeadDependencyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BeadDependencyMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BeadDependencyMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BeadDependency.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBeadID sets the "bead_id" field.
func (m *BeadDependencyMutation) SetBeadID(s string) {
	m.bead_id = &s
}

// BeadID returns the value of the "bead_id" field in the mutation.
func (m *BeadDependencyMutation) BeadID() (r string, exists bool) {
	v := m.bead_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBeadID returns the old "bead_id" field's value of the BeadDependency entity.
// If the BeadDependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeadDependencyMutation) OldBeadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBeadID: %w", err)
	}
	return oldValue.BeadID, nil
}

// ResetBeadID resets all changes to the "bead_id" field.
func (m *BeadDependencyMutation) ResetBeadID() {
	m.bead_id = nil
}

// SetDependsOnID sets the "depends_on_id" field.
func (m *BeadDependencyMutation) SetDependsOnID(s string) {
	m.depends_on_id = &s
}

// DependsOnID returns the value of the "depends_on_id" field in the mutation.
func (m *BeadDependencyMutation) DependsOnID() (r string, exists bool) {
	v := m.depends_on_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDependsOnID returns the old "depends_on_id" field's value of the BeadDependency entity.
// If the BeadDependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeadDependencyMutation) OldDependsOnID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependsOnID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependsOnID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependsOnID: %w", err)
	}
	return oldValue.DependsOnID, nil
}

// ResetDependsOnID resets all changes to the "depends_on_id" field.
func (m *BeadDependencyMutation) ResetDependsOnID() {
	m.depends_on_id = nil
}

// SetRelationship sets the "relationship" field.
func (m *BeadDependencyMutation) SetRelationship(s string) {
	m.relationship = &s
}

// Relationship returns the value of the "relationship" field in the mutation.
func (m *BeadDependencyMutation) Relationship() (r string, exists bool) {
	v := m.relationship
	if v == nil {
		return
	}
	return *v, true
}

// OldRelationship returns the old "relationship" field's value of the BeadDependency entity.
// If the BeadDependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeadDependencyMutation) OldRelationship(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelationship is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelationship requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelationship: %w", err)
	}
	return oldValue.Relationship, nil
}

// ResetRelationship resets all changes to the "relationship" field.
func (m *BeadDependencyMutation) ResetRelationship() {
	m.relationship = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BeadDependencyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BeadDependencyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BeadDependency entity.
// If the BeadDependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeadDependencyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BeadDependencyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the BeadDependencyMutation builder.
func (m *BeadDependencyMutation) Where(ps ...predicate.BeadDependency) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BeadDependencyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BeadDependencyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BeadDependency, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BeadDependencyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BeadDependencyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BeadDependency).
func (m *BeadDependencyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BeadDependencyMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.bead_id != nil {
		fields = append(fields, beaddependency.FieldBeadID)
	}
	if m.depends_on_id != nil {
		fields = append(fields, beaddependency.FieldDependsOnID)
	}
	if m.relationship != nil {
		fields = append(fields, beaddependency.FieldRelationship)
	}
	if m.created_at != nil {
		fields = append(fields, beaddependency.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BeadDependencyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case beaddependency.FieldBeadID:
		return m.BeadID()
	case beaddependency.FieldDependsOnID:
		return m.DependsOnID()
	case beaddependency.FieldRelationship:
		return m.Relationship()
	case beaddependency.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BeadDependencyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case beaddependency.FieldBeadID:
		return m.OldBeadID(ctx)
	case beaddependency.FieldDependsOnID:
		return m.OldDependsOnID(ctx)
	case beaddependency.FieldRelationship:
		return m.OldRelationship(ctx)
	case beaddependency.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BeadDependency field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BeadDependencyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case beaddependency.FieldBeadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBeadID(v)
		return nil
	case beaddependency.FieldDependsOnID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependsOnID(v)
		return nil
	case beaddependency.FieldRelationship:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelationship(v)
		return nil
	case beaddependency.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BeadDependency field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BeadDependencyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BeadDependencyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BeadDependencyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BeadDependency numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BeadDependencyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BeadDependencyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BeadDependencyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BeadDependency nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BeadDependencyMutation) ResetField(name string) error {
	switch name {
	case beaddependency.FieldBeadID:
		m.ResetBeadID()
		return nil
	case beaddependency.FieldDependsOnID:
		m.ResetDependsOnID()
		return nil
	case beaddependency.FieldRelationship:
		m.ResetRelationship()
		return nil
	case beaddependency.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BeadDependency field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BeadDependencyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BeadDependencyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BeadDependencyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BeadDependencyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BeadDependencyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BeadDependencyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BeadDependencyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BeadDependency unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BeadDependencyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BeadDependency edge %s", name)
}

// BeadLabelMutation represents an operation that mutates the BeadLabel nodes in the graph.
type BeadLabelMutation struct {
	config
	op            Op
	typ           string
	id            *int
	bead_id       *string
	label         *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*BeadLabel, error)
	predicates    []predicate.BeadLabel
}

var _ ent.Mutation = (*BeadLabelMutation)(nil)

// beadlabelOption allows management of the mutation configuration using functional options.
type beadlabelOption func(*BeadLabelMutation)

// newBeadLabelMutation creates new mutation for the BeadLabel entity.
func newBeadLabelMutation(c config, op Op, opts ...beadlabelOption) *BeadLabelMutation {
	m := &BeadLabelMutation{
		config:        c,
		op:            op,
		typ:           TypeBeadLabel,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBeadLabelID sets the ID field of the mutation.
func withBeadLabelID(id int) beadlabelOption {
	return func(m *BeadLabelMutation) {
		var (
			err   error
			once  sync.Once
			value *BeadLabel
		)
		m.oldValue = func(ctx context.Context) (*BeadLabel, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BeadLabel.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBeadLabel sets the old BeadLabel of the mutation.
func withBeadLabel(node *BeadLabel) beadlabelOption {
	return func(m *BeadLabelMutation) {
		m.oldValue = func(context.Context) (*BeadLabel, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BeadLabelMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BeadLabelMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BeadLabelMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BeadLabelMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BeadLabel.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBeadID sets the "bead_id" field.
func (m *BeadLabelMutation) SetBeadID(s string) {
	m.bead_id = &s
}

// BeadID returns the value of the "bead_id" field in the mutation.
func (m *BeadLabelMutation) BeadID() (r string, exists bool) {
	v := m.bead_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBeadID returns the old "bead_id" field's value of the BeadLabel entity.
// If the BeadLabel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeadLabelMutation) OldBeadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBeadID: %w", err)
	}
	return oldValue.BeadID, nil
}

// ResetBeadID resets all changes to the "bead_id" field.
func (m *BeadLabelMutation) ResetBeadID() {
	m.bead_id = nil
}

// SetLabel sets the "label" field.
func (m *BeadLabelMutation) SetLabel(s string) {
	m.label = &s
}

// Label returns the value of the "label" field in the mutation.
func (m *BeadLabelMutation) Label() (r string, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the BeadLabel entity.
// If the BeadLabel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeadLabelMutation) OldLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ResetLabel resets all changes to the "label" field.
func (m *BeadLabelMutation) ResetLabel() {
	m.label = nil
}

// Where appends a list predicates to the BeadLabelMutation builder.
func (m *BeadLabelMutation) Where(ps ...predicate.BeadLabel) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BeadLabelMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BeadLabelMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BeadLabel, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BeadLabelMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BeadLabelMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BeadLabel).
func (m *BeadLabelMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BeadLabelMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.bead_id != nil {
		fields = append(fields, beadlabel.FieldBeadID)
	}
	if m.label != nil {
		fields = append(fields, beadlabel.FieldLabel)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BeadLabelMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case beadlabel.FieldBeadID:
		return m.BeadID()
	case beadlabel.FieldLabel:
		return m.Label()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BeadLabelMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case beadlabel.FieldBeadID:
		return m.OldBeadID(ctx)
	case beadlabel.FieldLabel:
		return m.OldLabel(ctx)
	}
	return nil, fmt.Errorf("unknown BeadLabel field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BeadLabelMutation) SetField(name string, value ent.Value) error {
	switch name {
	case beadlabel.FieldBeadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBeadID(v)
		return nil
	case beadlabel.FieldLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	}
	return fmt.Errorf("unknown BeadLabel field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BeadLabelMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BeadLabelMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BeadLabelMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BeadLabel numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BeadLabelMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BeadLabelMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BeadLabelMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BeadLabel nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BeadLabelMutation) ResetField(name string) error {
	switch name {
	case beadlabel.FieldBeadID:
		m.ResetBeadID()
		return nil
	case beadlabel.FieldLabel:
		m.ResetLabel()
		return nil
	}
	return fmt.Errorf("unknown BeadLabel field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BeadLabelMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BeadLabelMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BeadLabelMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BeadLabelMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BeadLabelMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BeadLabelMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BeadLabelMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BeadLabel unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BeadLabelMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BeadLabel edge %s", name)
}

// CursorMutation represents an operation that mutates the Cursor nodes in the graph.
type CursorMutation struct {
	config
	op            Op
	typ           string
	id            *int
	stream_name   *string
	checkpoint    *string
	position      *int64
	addposition   *int64
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Cursor, error)
	predicates    []predicate.Cursor
}

var _ ent.Mutation = (*CursorMutation)(nil)

// cursorOption allows management of the mutation configuration using functional options.
type cursorOption func(*CursorMutation)

// newCursorMutation creates new mutation for the Cursor entity.
func newCursorMutation(c config, op Op, opts ...cursorOption) *CursorMutation {
	m := &CursorMutation{
		config:        c,
		op:            op,
		typ:           TypeCursor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCursorID sets the ID field of the mutation.
func withCursorID(id int) cursorOption {
	return func(m *CursorMutation) {
		var (
			err   error
			once  sync.Once
			value *Cursor
		)
		m.oldValue = func(ctx context.Context) (*Cursor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Cursor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCursor sets the old Cursor of the mutation.
func withCursor(node *Cursor) cursorOption {
	return func(m *CursorMutation) {
		m.oldValue = func(context.Context) (*Cursor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CursorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CursorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CursorMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CursorMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Cursor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStreamName sets the "stream_name" field.
func (m *CursorMutation) SetStreamName(s string) {
	m.stream_name = &s
}

// StreamName returns the value of the "stream_name" field in the mutation.
func (m *CursorMutation) StreamName() (r string, exists bool) {
	v := m.stream_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamName returns the old "stream_name" field's value of the Cursor entity.
// If the Cursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CursorMutation) OldStreamName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamName: %w", err)
	}
	return oldValue.StreamName, nil
}

// ResetStreamName resets all changes to the "stream_name" field.
func (m *CursorMutation) ResetStreamName() {
	m.stream_name = nil
}

// SetCheckpoint sets the "checkpoint" field.
func (m *CursorMutation) SetCheckpoint(s string) {
	m.checkpoint = &s
}

// Checkpoint returns the value of the "checkpoint" field in the mutation.
func (m *CursorMutation) Checkpoint() (r string, exists bool) {
	v := m.checkpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpoint returns the old "checkpoint" field's value of the Cursor entity.
// If the Cursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CursorMutation) OldCheckpoint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpoint: %w", err)
	}
	return oldValue.Checkpoint, nil
}

// ClearCheckpoint clears the value of the "checkpoint" field.
func (m *CursorMutation) ClearCheckpoint() {
	m.checkpoint = nil
	m.clearedFields[cursor.FieldCheckpoint] = struct{}{}
}

// CheckpointCleared returns if the "checkpoint" field was cleared in this mutation.
func (m *CursorMutation) CheckpointCleared() bool {
	_, ok := m.clearedFields[cursor.FieldCheckpoint]
	return ok
}

// ResetCheckpoint resets all changes to the "checkpoint" field.
func (m *CursorMutation) ResetCheckpoint() {
	m.checkpoint = nil
	delete(m.clearedFields, cursor.FieldCheckpoint)
}

// SetPosition sets the "position" field.
func (m *CursorMutation) SetPosition(i int64) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *CursorMutation) Position() (r int64, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Cursor entity.
// If the Cursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CursorMutation) OldPosition(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *CursorMutation) AddPosition(i int64) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *CursorMutation) AddedPosition() (r int64, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *CursorMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CursorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CursorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Cursor entity.
// If the Cursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CursorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CursorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CursorMutation builder.
func (m *CursorMutation) Where(ps ...predicate.Cursor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CursorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CursorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Cursor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CursorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CursorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Cursor).
func (m *CursorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CursorMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.stream_name != nil {
		fields = append(fields, cursor.FieldStreamName)
	}
	if m.checkpoint != nil {
		fields = append(fields, cursor.FieldCheckpoint)
	}
	if m.position != nil {
		fields = append(fields, cursor.FieldPosition)
	}
	if m.updated_at != nil {
		fields = append(fields, cursor.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CursorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cursor.FieldStreamName:
		return m.StreamName()
	case cursor.FieldCheckpoint:
		return m.Checkpoint()
	case cursor.FieldPosition:
		return m.Position()
	case cursor.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CursorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cursor.FieldStreamName:
		return m.OldStreamName(ctx)
	case cursor.FieldCheckpoint:
		return m.OldCheckpoint(ctx)
	case cursor.FieldPosition:
		return m.OldPosition(ctx)
	case cursor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Cursor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CursorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cursor.FieldStreamName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamName(v)
		return nil
	case cursor.FieldCheckpoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpoint(v)
		return nil
	case cursor.FieldPosition:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case cursor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Cursor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CursorMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, cursor.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CursorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cursor.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CursorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cursor.FieldPosition:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Cursor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CursorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(cursor.FieldCheckpoint) {
		fields = append(fields, cursor.FieldCheckpoint)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CursorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CursorMutation) ClearField(name string) error {
	switch name {
	case cursor.FieldCheckpoint:
		m.ClearCheckpoint()
		return nil
	}
	return fmt.Errorf("unknown Cursor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CursorMutation) ResetField(name string) error {
	switch name {
	case cursor.FieldStreamName:
		m.ResetStreamName()
		return nil
	case cursor.FieldCheckpoint:
		m.ResetCheckpoint()
		return nil
	case cursor.FieldPosition:
		m.ResetPosition()
		return nil
	case cursor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Cursor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CursorMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CursorMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CursorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CursorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CursorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CursorMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CursorMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Cursor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CursorMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Cursor edge %s", name)
}

// DeferredMutation represents an operation that mutates the Deferred nodes in the graph.
type DeferredMutation struct {
	config
	op            Op
	typ           string
	id            *string
	resolved      *bool
	value         *map[string]interface{}
	error         *string
	expires_at    *time.Time
	created_at    *time.Time
	resolved_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Deferred, error)
	predicates    []predicate.Deferred
}

var _ ent.Mutation = (*DeferredMutation)(nil)

// deferredOption allows management of the mutation configuration using functional options.
type deferredOption func(*DeferredMutation)

// newDeferredMutation creates new mutation for the Deferred entity.
func newDeferredMutation(c config, op Op, opts ...deferredOption) *DeferredMutation {
	m := &DeferredMutation{
		config:        c,
		op:            op,
		typ:           TypeDeferred,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeferredID sets the ID field of the mutation.
func withDeferredID(id string) deferredOption {
	return func(m *DeferredMutation) {
		var (
			err   error
			once  sync.Once
			value *Deferred
		)
		m.oldValue = func(ctx context.Context) (*Deferred, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Deferred.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeferred sets the old Deferred of the mutation.
func withDeferred(node *Deferred) deferredOption {
	return func(m *DeferredMutation) {
		m.oldValue = func(context.Context) (*Deferred, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeferredMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeferredMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Deferred entities.
func (m *DeferredMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeferredMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeferredMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Deferred.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetResolved sets the "resolved" field.
func (m *DeferredMutation) SetResolved(b bool) {
	m.resolved = &b
}

// Resolved returns the value of the "resolved" field in the mutation.
func (m *DeferredMutation) Resolved() (r bool, exists bool) {
	v := m.resolved
	if v == nil {
		return
	}
	return *v, true
}

// OldResolved returns the old "resolved" field's value of the Deferred entity.
// If the Deferred object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeferredMutation) OldResolved(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolved: %w", err)
	}
	return oldValue.Resolved, nil
}

// ResetResolved resets all changes to the "resolved" field.
func (m *DeferredMutation) ResetResolved() {
	m.resolved = nil
}

// SetValue sets the "value" field.
func (m *DeferredMutation) SetValue(value map[string]interface{}) {
	m.value = &value
}

// Value returns the value of the "value" field in the mutation.
func (m *DeferredMutation) Value() (r map[string]interface{}, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the Deferred entity.
// If the Deferred object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeferredMutation) OldValue(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ClearValue clears the value of the "value" field.
func (m *DeferredMutation) ClearValue() {
	m.value = nil
	m.clearedFields[deferred.FieldValue] = struct{}{}
}

// ValueCleared returns if the "value" field was cleared in this mutation.
func (m *DeferredMutation) ValueCleared() bool {
	_, ok := m.clearedFields[deferred.FieldValue]
	return ok
}

// ResetValue resets all changes to the "value" field.
func (m *DeferredMutation) ResetValue() {
	m.value = nil
	delete(m.clearedFields, deferred.FieldValue)
}

// SetError sets the "error" field.
func (m *DeferredMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *DeferredMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Deferred entity.
// If the Deferred object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeferredMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *DeferredMutation) ClearError() {
	m.error = nil
	m.clearedFields[deferred.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *DeferredMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[deferred.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *DeferredMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, deferred.FieldError)
}

// SetExpiresAt sets the "expires_at" field.
func (m *DeferredMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *DeferredMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Deferred entity.
// If the Deferred object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeferredMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *DeferredMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DeferredMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DeferredMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Deferred entity.
// If the Deferred object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeferredMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DeferredMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *DeferredMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *DeferredMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the Deferred entity.
// If the Deferred object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeferredMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *DeferredMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[deferred.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *DeferredMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[deferred.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *DeferredMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, deferred.FieldResolvedAt)
}

// Where appends a list predicates to the DeferredMutation builder.
func (m *DeferredMutation) Where(ps ...predicate.Deferred) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeferredMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeferredMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Deferred, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeferredMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeferredMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Deferred).
func (m *DeferredMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeferredMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.resolved != nil {
		fields = append(fields, deferred.FieldResolved)
	}
	if m.value != nil {
		fields = append(fields, deferred.FieldValue)
	}
	if m.error != nil {
		fields = append(fields, deferred.FieldError)
	}
	if m.expires_at != nil {
		fields = append(fields, deferred.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, deferred.FieldCreatedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, deferred.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeferredMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deferred.FieldResolved:
		return m.Resolved()
	case deferred.FieldValue:
		return m.Value()
	case deferred.FieldError:
		return m.Error()
	case deferred.FieldExpiresAt:
		return m.ExpiresAt()
	case deferred.FieldCreatedAt:
		return m.CreatedAt()
	case deferred.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeferredMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deferred.FieldResolved:
		return m.OldResolved(ctx)
	case deferred.FieldValue:
		return m.OldValue(ctx)
	case deferred.FieldError:
		return m.OldError(ctx)
	case deferred.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case deferred.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case deferred.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Deferred field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeferredMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deferred.FieldResolved:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolved(v)
		return nil
	case deferred.FieldValue:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case deferred.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case deferred.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case deferred.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case deferred.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Deferred field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeferredMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeferredMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeferredMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Deferred numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeferredMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(deferred.FieldValue) {
		fields = append(fields, deferred.FieldValue)
	}
	if m.FieldCleared(deferred.FieldError) {
		fields = append(fields, deferred.FieldError)
	}
	if m.FieldCleared(deferred.FieldResolvedAt) {
		fields = append(fields, deferred.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeferredMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeferredMutation) ClearField(name string) error {
	switch name {
	case deferred.FieldValue:
		m.ClearValue()
		return nil
	case deferred.FieldError:
		m.ClearError()
		return nil
	case deferred.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown Deferred nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeferredMutation) ResetField(name string) error {
	switch name {
	case deferred.FieldResolved:
		m.ResetResolved()
		return nil
	case deferred.FieldValue:
		m.ResetValue()
		return nil
	case deferred.FieldError:
		m.ResetError()
		return nil
	case deferred.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case deferred.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case deferred.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown Deferred field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeferredMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeferredMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeferredMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeferredMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeferredMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeferredMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeferredMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Deferred unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeferredMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Deferred edge %s", name)
}

// EvalRunMutation represents an operation that mutates the EvalRun nodes in the graph.
type EvalRunMutation struct {
	config
	op            Op
	typ           string
	id            *int
	eval_name     *string
	score         *float64
	addscore      *float64
	run_at        *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*EvalRun, error)
	predicates    []predicate.EvalRun
}

var _ ent.Mutation = (*EvalRunMutation)(nil)

// evalrunOption allows management of the mutation configuration using functional options.
type evalrunOption func(*EvalRunMutation)

// newEvalRunMutation creates new mutation for the EvalRun entity.
func newEvalRunMutation(c config, op Op, opts ...evalrunOption) *EvalRunMutation {
	m := &EvalRunMutation{
		config:        c,
		op:            op,
		typ:           TypeEvalRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvalRunID sets the ID field of the mutation.
func withEvalRunID(id int) evalrunOption {
	return func(m *EvalRunMutation) {
		var (
			err   error
			once  sync.Once
			value *EvalRun
		)
		m.oldValue = func(ctx context.Context) (*EvalRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EvalRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvalRun sets the old EvalRun of the mutation.
func withEvalRun(node *EvalRun) evalrunOption {
	return func(m *EvalRunMutation) {
		m.oldValue = func(context.Context) (*EvalRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvalRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvalRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvalRunMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvalRunMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EvalRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEvalName sets the "eval_name" field.
func (m *EvalRunMutation) SetEvalName(s string) {
	m.eval_name = &s
}

// EvalName returns the value of the "eval_name" field in the mutation.
func (m *EvalRunMutation) EvalName() (r string, exists bool) {
	v := m.eval_name
	if v == nil {
		return
	}
	return *v, true
}

// OldEvalName returns the old "eval_name" field's value of the EvalRun entity.
// If the EvalRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvalRunMutation) OldEvalName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvalName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvalName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvalName: %w", err)
	}
	return oldValue.EvalName, nil
}

// ResetEvalName resets all changes to the "eval_name" field.
func (m *EvalRunMutation) ResetEvalName() {
	m.eval_name = nil
}

// SetScore sets the "score" field.
func (m *EvalRunMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *EvalRunMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the EvalRun entity.
// If the EvalRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvalRunMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *EvalRunMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *EvalRunMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *EvalRunMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetRunAt sets the "run_at" field.
func (m *EvalRunMutation) SetRunAt(t time.Time) {
	m.run_at = &t
}

// RunAt returns the value of the "run_at" field in the mutation.
func (m *EvalRunMutation) RunAt() (r time.Time, exists bool) {
	v := m.run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRunAt returns the old "run_at" field's value of the EvalRun entity.
// If the EvalRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvalRunMutation) OldRunAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunAt: %w", err)
	}
	return oldValue.RunAt, nil
}

// ResetRunAt resets all changes to the "run_at" field.
func (m *EvalRunMutation) ResetRunAt() {
	m.run_at = nil
}

// Where appends a list predicates to the EvalRunMutation builder.
func (m *EvalRunMutation) Where(ps ...predicate.EvalRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvalRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvalRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EvalRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvalRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvalRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EvalRun).
func (m *EvalRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvalRunMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.eval_name != nil {
		fields = append(fields, evalrun.FieldEvalName)
	}
	if m.score != nil {
		fields = append(fields, evalrun.FieldScore)
	}
	if m.run_at != nil {
		fields = append(fields, evalrun.FieldRunAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvalRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evalrun.FieldEvalName:
		return m.EvalName()
	case evalrun.FieldScore:
		return m.Score()
	case evalrun.FieldRunAt:
		return m.RunAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvalRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evalrun.FieldEvalName:
		return m.OldEvalName(ctx)
	case evalrun.FieldScore:
		return m.OldScore(ctx)
	case evalrun.FieldRunAt:
		return m.OldRunAt(ctx)
	}
	return nil, fmt.Errorf("unknown EvalRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvalRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evalrun.FieldEvalName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvalName(v)
		return nil
	case evalrun.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case evalrun.FieldRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunAt(v)
		return nil
	}
	return fmt.Errorf("unknown EvalRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvalRunMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, evalrun.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvalRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evalrun.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvalRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evalrun.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown EvalRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvalRunMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvalRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvalRunMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EvalRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvalRunMutation) ResetField(name string) error {
	switch name {
	case evalrun.FieldEvalName:
		m.ResetEvalName()
		return nil
	case evalrun.FieldScore:
		m.ResetScore()
		return nil
	case evalrun.FieldRunAt:
		m.ResetRunAt()
		return nil
	}
	return fmt.Errorf("unknown EvalRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvalRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvalRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvalRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvalRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvalRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvalRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvalRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EvalRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvalRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EvalRun edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	project_key   *string
	sequence      *int64
	addsequence   *int64
	event_type    *string
	ts_ms         *int64
	addts_ms      *int64
	data          *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectKey sets the "project_key" field.
func (m *EventMutation) SetProjectKey(s string) {
	m.project_key = &s
}

// ProjectKey returns the value of the "project_key" field in the mutation.
func (m *EventMutation) ProjectKey() (r string, exists bool) {
	v := m.project_key
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectKey returns the old "project_key" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldProjectKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectKey: %w", err)
	}
	return oldValue.ProjectKey, nil
}

// ResetProjectKey resets all changes to the "project_key" field.
func (m *EventMutation) ResetProjectKey() {
	m.project_key = nil
}

// SetSequence sets the "sequence" field.
func (m *EventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *EventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *EventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *EventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *EventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetEventType sets the "event_type" field.
func (m *EventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventMutation) ResetEventType() {
	m.event_type = nil
}

// SetTsMs sets the "ts_ms" field.
func (m *EventMutation) SetTsMs(i int64) {
	m.ts_ms = &i
	m.addts_ms = nil
}

// TsMs returns the value of the "ts_ms" field in the mutation.
func (m *EventMutation) TsMs() (r int64, exists bool) {
	v := m.ts_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTsMs returns the old "ts_ms" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTsMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTsMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTsMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTsMs: %w", err)
	}
	return oldValue.TsMs, nil
}

// AddTsMs adds i to the "ts_ms" field.
func (m *EventMutation) AddTsMs(i int64) {
	if m.addts_ms != nil {
		*m.addts_ms += i
	} else {
		m.addts_ms = &i
	}
}

// AddedTsMs returns the value that was added to the "ts_ms" field in this mutation.
func (m *EventMutation) AddedTsMs() (r int64, exists bool) {
	v := m.addts_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTsMs resets all changes to the "ts_ms" field.
func (m *EventMutation) ResetTsMs() {
	m.ts_ms = nil
	m.addts_ms = nil
}

// SetData sets the "data" field.
func (m *EventMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *EventMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *EventMutation) ClearData() {
	m.data = nil
	m.clearedFields[event.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *EventMutation) DataCleared() bool {
	_, ok := m.clearedFields[event.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *EventMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, event.FieldData)
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.project_key != nil {
		fields = append(fields, event.FieldProjectKey)
	}
	if m.sequence != nil {
		fields = append(fields, event.FieldSequence)
	}
	if m.event_type != nil {
		fields = append(fields, event.FieldEventType)
	}
	if m.ts_ms != nil {
		fields = append(fields, event.FieldTsMs)
	}
	if m.data != nil {
		fields = append(fields, event.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldProjectKey:
		return m.ProjectKey()
	case event.FieldSequence:
		return m.Sequence()
	case event.FieldEventType:
		return m.EventType()
	case event.FieldTsMs:
		return m.TsMs()
	case event.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldProjectKey:
		return m.OldProjectKey(ctx)
	case event.FieldSequence:
		return m.OldSequence(ctx)
	case event.FieldEventType:
		return m.OldEventType(ctx)
	case event.FieldTsMs:
		return m.OldTsMs(ctx)
	case event.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldProjectKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectKey(v)
		return nil
	case event.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case event.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case event.FieldTsMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTsMs(v)
		return nil
	case event.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, event.FieldSequence)
	}
	if m.addts_ms != nil {
		fields = append(fields, event.FieldTsMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case event.FieldSequence:
		return m.AddedSequence()
	case event.FieldTsMs:
		return m.AddedTsMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case event.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case event.FieldTsMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTsMs(v)
		return nil
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldData) {
		fields = append(fields, event.FieldData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldData:
		m.ClearData()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldProjectKey:
		m.ResetProjectKey()
		return nil
	case event.FieldSequence:
		m.ResetSequence()
		return nil
	case event.FieldEventType:
		m.ResetEventType()
		return nil
	case event.FieldTsMs:
		m.ResetTsMs()
		return nil
	case event.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op                Op
	typ               string
	id                *string
	project_key       *string
	from_agent        *string
	subject           *string
	body              *string
	thread_id         *string
	importance        *message.Importance
	ack_required      *bool
	created_at        *time.Time
	clearedFields     map[string]struct{}
	recipients        map[int]struct{}
	removedrecipients map[int]struct{}
	clearedrecipients bool
	done              bool
	oldValue          func(context.Context) (*Message, error)
	predicates        []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectKey sets the "project_key" field.
func (m *MessageMutation) SetProjectKey(s string) {
	m.project_key = &s
}

// ProjectKey returns the value of the "project_key" field in the mutation.
func (m *MessageMutation) ProjectKey() (r string, exists bool) {
	v := m.project_key
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectKey returns the old "project_key" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldProjectKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectKey: %w", err)
	}
	return oldValue.ProjectKey, nil
}

// ResetProjectKey resets all changes to the "project_key" field.
func (m *MessageMutation) ResetProjectKey() {
	m.project_key = nil
}

// SetFromAgent sets the "from_agent" field.
func (m *MessageMutation) SetFromAgent(s string) {
	m.from_agent = &s
}

// FromAgent returns the value of the "from_agent" field in the mutation.
func (m *MessageMutation) FromAgent() (r string, exists bool) {
	v := m.from_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldFromAgent returns the old "from_agent" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldFromAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromAgent: %w", err)
	}
	return oldValue.FromAgent, nil
}

// ResetFromAgent resets all changes to the "from_agent" field.
func (m *MessageMutation) ResetFromAgent() {
	m.from_agent = nil
}

// SetSubject sets the "subject" field.
func (m *MessageMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *MessageMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *MessageMutation) ResetSubject() {
	m.subject = nil
}

// SetBody sets the "body" field.
func (m *MessageMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *MessageMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *MessageMutation) ResetBody() {
	m.body = nil
}

// SetThreadID sets the "thread_id" field.
func (m *MessageMutation) SetThreadID(s string) {
	m.thread_id = &s
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *MessageMutation) ThreadID() (r string, exists bool) {
	v := m.thread_id
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldThreadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ClearThreadID clears the value of the "thread_id" field.
func (m *MessageMutation) ClearThreadID() {
	m.thread_id = nil
	m.clearedFields[message.FieldThreadID] = struct{}{}
}

// ThreadIDCleared returns if the "thread_id" field was cleared in this mutation.
func (m *MessageMutation) ThreadIDCleared() bool {
	_, ok := m.clearedFields[message.FieldThreadID]
	return ok
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *MessageMutation) ResetThreadID() {
	m.thread_id = nil
	delete(m.clearedFields, message.FieldThreadID)
}

// SetImportance sets the "importance" field.
func (m *MessageMutation) SetImportance(value message.Importance) {
	m.importance = &value
}

// Importance returns the value of the "importance" field in the mutation.
func (m *MessageMutation) Importance() (r message.Importance, exists bool) {
	v := m.importance
	if v == nil {
		return
	}
	return *v, true
}

// OldImportance returns the old "importance" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldImportance(ctx context.Context) (v message.Importance, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportance: %w", err)
	}
	return oldValue.Importance, nil
}

// ResetImportance resets all changes to the "importance" field.
func (m *MessageMutation) ResetImportance() {
	m.importance = nil
}

// SetAckRequired sets the "ack_required" field.
func (m *MessageMutation) SetAckRequired(b bool) {
	m.ack_required = &b
}

// AckRequired returns the value of the "ack_required" field in the mutation.
func (m *MessageMutation) AckRequired() (r bool, exists bool) {
	v := m.ack_required
	if v == nil {
		return
	}
	return *v, true
}

// OldAckRequired returns the old "ack_required" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldAckRequired(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAckRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAckRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAckRequired: %w", err)
	}
	return oldValue.AckRequired, nil
}

// ResetAckRequired resets all changes to the "ack_required" field.
func (m *MessageMutation) ResetAckRequired() {
	m.ack_required = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddRecipientIDs adds the "recipients" edge to the MessageRecipient entity by ids.
func (m *MessageMutation) AddRecipientIDs(ids ...int) {
	if m.recipients == nil {
		m.recipients = make(map[int]struct{})
	}
	for i := range ids {
		m.recipients[ids[i]] = struct{}{}
	}
}

// ClearRecipients clears the "recipients" edge to the MessageRecipient entity.
func (m *MessageMutation) ClearRecipients() {
	m.clearedrecipients = true
}

// RecipientsCleared reports if the "recipients" edge to the MessageRecipient entity was cleared.
func (m *MessageMutation) RecipientsCleared() bool {
	return m.clearedrecipients
}

// RemoveRecipientIDs removes the "recipients" edge to the MessageRecipient entity by IDs.
func (m *MessageMutation) RemoveRecipientIDs(ids ...int) {
	if m.removedrecipients == nil {
		m.removedrecipients = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.recipients, ids[i])
		m.removedrecipients[ids[i]] = struct{}{}
	}
}

// RemovedRecipients returns the removed IDs of the "recipients" edge to the MessageRecipient entity.
func (m *MessageMutation) RemovedRecipientsIDs() (ids []int) {
	for id := range m.removedrecipients {
		ids = append(ids, id)
	}
	return
}

// RecipientsIDs returns the "recipients" edge IDs in the mutation.
func (m *MessageMutation) RecipientsIDs() (ids []int) {
	for id := range m.recipients {
		ids = append(ids, id)
	}
	return
}

// ResetRecipients resets all changes to the "recipients" edge.
func (m *MessageMutation) ResetRecipients() {
	m.recipients = nil
	m.clearedrecipients = false
	m.removedrecipients = nil
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.project_key != nil {
		fields = append(fields, message.FieldProjectKey)
	}
	if m.from_agent != nil {
		fields = append(fields, message.FieldFromAgent)
	}
	if m.subject != nil {
		fields = append(fields, message.FieldSubject)
	}
	if m.body != nil {
		fields = append(fields, message.FieldBody)
	}
	if m.thread_id != nil {
		fields = append(fields, message.FieldThreadID)
	}
	if m.importance != nil {
		fields = append(fields, message.FieldImportance)
	}
	if m.ack_required != nil {
		fields = append(fields, message.FieldAckRequired)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldProjectKey:
		return m.ProjectKey()
	case message.FieldFromAgent:
		return m.FromAgent()
	case message.FieldSubject:
		return m.Subject()
	case message.FieldBody:
		return m.Body()
	case message.FieldThreadID:
		return m.ThreadID()
	case message.FieldImportance:
		return m.Importance()
	case message.FieldAckRequired:
		return m.AckRequired()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldProjectKey:
		return m.OldProjectKey(ctx)
	case message.FieldFromAgent:
		return m.OldFromAgent(ctx)
	case message.FieldSubject:
		return m.OldSubject(ctx)
	case message.FieldBody:
		return m.OldBody(ctx)
	case message.FieldThreadID:
		return m.OldThreadID(ctx)
	case message.FieldImportance:
		return m.OldImportance(ctx)
	case message.FieldAckRequired:
		return m.OldAckRequired(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldProjectKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectKey(v)
		return nil
	case message.FieldFromAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromAgent(v)
		return nil
	case message.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case message.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case message.FieldThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case message.FieldImportance:
		v, ok := value.(message.Importance)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportance(v)
		return nil
	case message.FieldAckRequired:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAckRequired(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldThreadID) {
		fields = append(fields, message.FieldThreadID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldThreadID:
		m.ClearThreadID()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldProjectKey:
		m.ResetProjectKey()
		return nil
	case message.FieldFromAgent:
		m.ResetFromAgent()
		return nil
	case message.FieldSubject:
		m.ResetSubject()
		return nil
	case message.FieldBody:
		m.ResetBody()
		return nil
	case message.FieldThreadID:
		m.ResetThreadID()
		return nil
	case message.FieldImportance:
		m.ResetImportance()
		return nil
	case message.FieldAckRequired:
		m.ResetAckRequired()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.recipients != nil {
		edges = append(edges, message.EdgeRecipients)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeRecipients:
		ids := make([]ent.Value, 0, len(m.recipients))
		for id := range m.recipients {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedrecipients != nil {
		edges = append(edges, message.EdgeRecipients)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeRecipients:
		ids := make([]ent.Value, 0, len(m.removedrecipients))
		for id := range m.removedrecipients {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrecipients {
		edges = append(edges, message.EdgeRecipients)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeRecipients:
		return m.clearedrecipients
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeRecipients:
		m.ResetRecipients()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// MessageRecipientMutation represents an operation that mutates the MessageRecipient nodes in the graph.
type MessageRecipientMutation struct {
	config
	op             Op
	typ            string
	id             *int
	agent_name     *string
	read_at        *time.Time
	acked_at       *time.Time
	clearedFields  map[string]struct{}
	message        *string
	clearedmessage bool
	done           bool
	oldValue       func(context.Context) (*MessageRecipient, error)
	predicates     []predicate.MessageRecipient
}

var _ ent.Mutation = (*MessageRecipientMutation)(nil)

// messagerecipientOption allows management of the mutation configuration using functional options.
type messagerecipientOption func(*MessageRecipientMutation)

// newMessageRecipientMutation creates new mutation for the MessageRecipient entity.
func newMessageRecipientMutation(c config, op Op, opts ...messagerecipientOption) *MessageRecipientMutation {
	m := &MessageRecipientMutation{
		config:        c,
		op:            op,
		typ:           TypeMessageRecipient,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageRecipientID sets the ID field of the mutation.
func withMessageRecipientID(id int) messagerecipientOption {
	return func(m *MessageRecipientMutation) {
		var (
			err   error
			once  sync.Once
			value *MessageRecipient
		)
		m.oldValue = func(ctx context.Context) (*MessageRecipient, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MessageRecipient.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessageRecipient sets the old MessageRecipient of the mutation.
func withMessageRecipient(node *MessageRecipient) messagerecipientOption {
	return func(m *MessageRecipientMutation) {
		m.oldValue = func(context.Context) (*MessageRecipient, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageRecipientMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageRecipientMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageRecipientMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageRecipientMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MessageRecipient.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMessageID sets the "message_id" field.
func (m *MessageRecipientMutation) SetMessageID(s string) {
	m.message = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *MessageRecipientMutation) MessageID() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the MessageRecipient entity.
// If the MessageRecipient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageRecipientMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *MessageRecipientMutation) ResetMessageID() {
	m.message = nil
}

// SetAgentName sets the "agent_name" field.
func (m *MessageRecipientMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *MessageRecipientMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the MessageRecipient entity.
// If the MessageRecipient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageRecipientMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *MessageRecipientMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetReadAt sets the "read_at" field.
func (m *MessageRecipientMutation) SetReadAt(t time.Time) {
	m.read_at = &t
}

// ReadAt returns the value of the "read_at" field in the mutation.
func (m *MessageRecipientMutation) ReadAt() (r time.Time, exists bool) {
	v := m.read_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReadAt returns the old "read_at" field's value of the MessageRecipient entity.
// If the MessageRecipient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageRecipientMutation) OldReadAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadAt: %w", err)
	}
	return oldValue.ReadAt, nil
}

// ClearReadAt clears the value of the "read_at" field.
func (m *MessageRecipientMutation) ClearReadAt() {
	m.read_at = nil
	m.clearedFields[messagerecipient.FieldReadAt] = struct{}{}
}

// ReadAtCleared returns if the "read_at" field was cleared in this mutation.
func (m *MessageRecipientMutation) ReadAtCleared() bool {
	_, ok := m.clearedFields[messagerecipient.FieldReadAt]
	return ok
}

// ResetReadAt resets all changes to the "read_at" field.
func (m *MessageRecipientMutation) ResetReadAt() {
	m.read_at = nil
	delete(m.clearedFields, messagerecipient.FieldReadAt)
}

// SetAckedAt sets the "acked_at" field.
func (m *MessageRecipientMutation) SetAckedAt(t time.Time) {
	m.acked_at = &t
}

// AckedAt returns the value of the "acked_at" field in the mutation.
func (m *MessageRecipientMutation) AckedAt() (r time.Time, exists bool) {
	v := m.acked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAckedAt returns the old "acked_at" field's value of the MessageRecipient entity.
// If the MessageRecipient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageRecipientMutation) OldAckedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAckedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAckedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAckedAt: %w", err)
	}
	return oldValue.AckedAt, nil
}

// ClearAckedAt clears the value of the "acked_at" field.
func (m *MessageRecipientMutation) ClearAckedAt() {
	m.acked_at = nil
	m.clearedFields[messagerecipient.FieldAckedAt] = struct{}{}
}

// AckedAtCleared returns if the "acked_at" field was cleared in this mutation.
func (m *MessageRecipientMutation) AckedAtCleared() bool {
	_, ok := m.clearedFields[messagerecipient.FieldAckedAt]
	return ok
}

// ResetAckedAt resets all changes to the "acked_at" field.
func (m *MessageRecipientMutation) ResetAckedAt() {
	m.acked_at = nil
	delete(m.clearedFields, messagerecipient.FieldAckedAt)
}

// ClearMessage clears the "message" edge to the Message entity.
func (m *MessageRecipientMutation) ClearMessage() {
	m.clearedmessage = true
	m.clearedFields[messagerecipient.FieldMessageID] = struct{}{}
}

// MessageCleared reports if the "message" edge to the Message entity was cleared.
func (m *MessageRecipientMutation) MessageCleared() bool {
	return m.clearedmessage
}

// MessageIDs returns the "message" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MessageID instead. It exists only for internal usage by the builders.
func (m *MessageRecipientMutation) MessageIDs() (ids []string) {
	if id := m.message; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMessage resets all changes to the "message" edge.
func (m *MessageRecipientMutation) ResetMessage() {
	m.message = nil
	m.clearedmessage = false
}

// Where appends a list predicates to the MessageRecipientMutation builder.
func (m *MessageRecipientMutation) Where(ps ...predicate.MessageRecipient) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageRecipientMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageRecipientMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MessageRecipient, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageRecipientMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageRecipientMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MessageRecipient).
func (m *MessageRecipientMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageRecipientMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.message != nil {
		fields = append(fields, messagerecipient.FieldMessageID)
	}
	if m.agent_name != nil {
		fields = append(fields, messagerecipient.FieldAgentName)
	}
	if m.read_at != nil {
		fields = append(fields, messagerecipient.FieldReadAt)
	}
	if m.acked_at != nil {
		fields = append(fields, messagerecipient.FieldAckedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageRecipientMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case messagerecipient.FieldMessageID:
		return m.MessageID()
	case messagerecipient.FieldAgentName:
		return m.AgentName()
	case messagerecipient.FieldReadAt:
		return m.ReadAt()
	case messagerecipient.FieldAckedAt:
		return m.AckedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageRecipientMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case messagerecipient.FieldMessageID:
		return m.OldMessageID(ctx)
	case messagerecipient.FieldAgentName:
		return m.OldAgentName(ctx)
	case messagerecipient.FieldReadAt:
		return m.OldReadAt(ctx)
	case messagerecipient.FieldAckedAt:
		return m.OldAckedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MessageRecipient field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageRecipientMutation) SetField(name string, value ent.Value) error {
	switch name {
	case messagerecipient.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case messagerecipient.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case messagerecipient.FieldReadAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadAt(v)
		return nil
	case messagerecipient.FieldAckedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAckedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MessageRecipient field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageRecipientMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageRecipientMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageRecipientMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MessageRecipient numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageRecipientMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(messagerecipient.FieldReadAt) {
		fields = append(fields, messagerecipient.FieldReadAt)
	}
	if m.FieldCleared(messagerecipient.FieldAckedAt) {
		fields = append(fields, messagerecipient.FieldAckedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageRecipientMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageRecipientMutation) ClearField(name string) error {
	switch name {
	case messagerecipient.FieldReadAt:
		m.ClearReadAt()
		return nil
	case messagerecipient.FieldAckedAt:
		m.ClearAckedAt()
		return nil
	}
	return fmt.Errorf("unknown MessageRecipient nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageRecipientMutation) ResetField(name string) error {
	switch name {
	case messagerecipient.FieldMessageID:
		m.ResetMessageID()
		return nil
	case messagerecipient.FieldAgentName:
		m.ResetAgentName()
		return nil
	case messagerecipient.FieldReadAt:
		m.ResetReadAt()
		return nil
	case messagerecipient.FieldAckedAt:
		m.ResetAckedAt()
		return nil
	}
	return fmt.Errorf("unknown MessageRecipient field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageRecipientMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.message != nil {
		edges = append(edges, messagerecipient.EdgeMessage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageRecipientMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case messagerecipient.EdgeMessage:
		if id := m.message; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageRecipientMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageRecipientMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageRecipientMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmessage {
		edges = append(edges, messagerecipient.EdgeMessage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageRecipientMutation) EdgeCleared(name string) bool {
	switch name {
	case messagerecipient.EdgeMessage:
		return m.clearedmessage
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageRecipientMutation) ClearEdge(name string) error {
	switch name {
	case messagerecipient.EdgeMessage:
		m.ClearMessage()
		return nil
	}
	return fmt.Errorf("unknown MessageRecipient unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageRecipientMutation) ResetEdge(name string) error {
	switch name {
	case messagerecipient.EdgeMessage:
		m.ResetMessage()
		return nil
	}
	return fmt.Errorf("unknown MessageRecipient edge %s", name)
}

// ReservationMutation represents an operation that mutates the Reservation nodes in the graph.
type ReservationMutation struct {
	config
	op             Op
	typ            string
	id             *int
	project_key    *string
	agent_name     *string
	path_pattern   *string
	exclusive      *bool
	reason         *string
	lock_holder_id *string
	created_at     *time.Time
	expires_at     *time.Time
	released_at    *time.Time
	release_reason *string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Reservation, error)
	predicates     []predicate.Reservation
}

var _ ent.Mutation = (*ReservationMutation)(nil)

// reservationOption allows management of the mutation configuration using functional options.
type reservationOption func(*ReservationMutation)

// newReservationMutation creates new mutation for the Reservation entity.
func newReservationMutation(c config, op Op, opts ...reservationOption) *ReservationMutation {
	m := &ReservationMutation{
		config:        c,
		op:            op,
		typ:           TypeReservation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReservationID sets the ID field of the mutation.
func withReservationID(id int) reservationOption {
	return func(m *ReservationMutation) {
		var (
			err   error
			once  sync.Once
			value *Reservation
		)
		m.oldValue = func(ctx context.Context) (*Reservation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Reservation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReservation sets the old Reservation of the mutation.
func withReservation(node *Reservation) reservationOption {
	return func(m *ReservationMutation) {
		m.oldValue = func(context.Context) (*Reservation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReservationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReservationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReservationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReservationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Reservation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectKey sets the "project_key" field.
func (m *ReservationMutation) SetProjectKey(s string) {
	m.project_key = &s
}

// ProjectKey returns the value of the "project_key" field in the mutation.
func (m *ReservationMutation) ProjectKey() (r string, exists bool) {
	v := m.project_key
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectKey returns the old "project_key" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldProjectKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectKey: %w", err)
	}
	return oldValue.ProjectKey, nil
}

// ResetProjectKey resets all changes to the "project_key" field.
func (m *ReservationMutation) ResetProjectKey() {
	m.project_key = nil
}

// SetAgentName sets the "agent_name" field.
func (m *ReservationMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *ReservationMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *ReservationMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetPathPattern sets the "path_pattern" field.
func (m *ReservationMutation) SetPathPattern(s string) {
	m.path_pattern = &s
}

// PathPattern returns the value of the "path_pattern" field in the mutation.
func (m *ReservationMutation) PathPattern() (r string, exists bool) {
	v := m.path_pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldPathPattern returns the old "path_pattern" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldPathPattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPathPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPathPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPathPattern: %w", err)
	}
	return oldValue.PathPattern, nil
}

// ResetPathPattern resets all changes to the "path_pattern" field.
func (m *ReservationMutation) ResetPathPattern() {
	m.path_pattern = nil
}

// SetExclusive sets the "exclusive" field.
func (m *ReservationMutation) SetExclusive(b bool) {
	m.exclusive = &b
}

// Exclusive returns the value of the "exclusive" field in the mutation.
func (m *ReservationMutation) Exclusive() (r bool, exists bool) {
	v := m.exclusive
	if v == nil {
		return
	}
	return *v, true
}

// OldExclusive returns the old "exclusive" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldExclusive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExclusive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExclusive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExclusive: %w", err)
	}
	return oldValue.Exclusive, nil
}

// ResetExclusive resets all changes to the "exclusive" field.
func (m *ReservationMutation) ResetExclusive() {
	m.exclusive = nil
}

// SetReason sets the "reason" field.
func (m *ReservationMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *ReservationMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *ReservationMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[reservation.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *ReservationMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[reservation.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *ReservationMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, reservation.FieldReason)
}

// SetLockHolderID sets the "lock_holder_id" field.
func (m *ReservationMutation) SetLockHolderID(s string) {
	m.lock_holder_id = &s
}

// LockHolderID returns the value of the "lock_holder_id" field in the mutation.
func (m *ReservationMutation) LockHolderID() (r string, exists bool) {
	v := m.lock_holder_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLockHolderID returns the old "lock_holder_id" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldLockHolderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockHolderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockHolderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockHolderID: %w", err)
	}
	return oldValue.LockHolderID, nil
}

// ClearLockHolderID clears the value of the "lock_holder_id" field.
func (m *ReservationMutation) ClearLockHolderID() {
	m.lock_holder_id = nil
	m.clearedFields[reservation.FieldLockHolderID] = struct{}{}
}

// LockHolderIDCleared returns if the "lock_holder_id" field was cleared in this mutation.
func (m *ReservationMutation) LockHolderIDCleared() bool {
	_, ok := m.clearedFields[reservation.FieldLockHolderID]
	return ok
}

// ResetLockHolderID resets all changes to the "lock_holder_id" field.
func (m *ReservationMutation) ResetLockHolderID() {
	m.lock_holder_id = nil
	delete(m.clearedFields, reservation.FieldLockHolderID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReservationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReservationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReservationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *ReservationMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ReservationMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *ReservationMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[reservation.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *ReservationMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[reservation.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ReservationMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, reservation.FieldExpiresAt)
}

// SetReleasedAt sets the "released_at" field.
func (m *ReservationMutation) SetReleasedAt(t time.Time) {
	m.released_at = &t
}

// ReleasedAt returns the value of the "released_at" field in the mutation.
func (m *ReservationMutation) ReleasedAt() (r time.Time, exists bool) {
	v := m.released_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReleasedAt returns the old "released_at" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldReleasedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReleasedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReleasedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReleasedAt: %w", err)
	}
	return oldValue.ReleasedAt, nil
}

// ClearReleasedAt clears the value of the "released_at" field.
func (m *ReservationMutation) ClearReleasedAt() {
	m.released_at = nil
	m.clearedFields[reservation.FieldReleasedAt] = struct{}{}
}

// ReleasedAtCleared returns if the "released_at" field was cleared in this mutation.
func (m *ReservationMutation) ReleasedAtCleared() bool {
	_, ok := m.clearedFields[reservation.FieldReleasedAt]
	return ok
}

// ResetReleasedAt resets all changes to the "released_at" field.
func (m *ReservationMutation) ResetReleasedAt() {
	m.released_at = nil
	delete(m.clearedFields, reservation.FieldReleasedAt)
}

// SetReleaseReason sets the "release_reason" field.
func (m *ReservationMutation) SetReleaseReason(s string) {
	m.release_reason = &s
}

// ReleaseReason returns the value of the "release_reason" field in the mutation.
func (m *ReservationMutation) ReleaseReason() (r string, exists bool) {
	v := m.release_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReleaseReason returns the old "release_reason" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldReleaseReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReleaseReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReleaseReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReleaseReason: %w", err)
	}
	return oldValue.ReleaseReason, nil
}

// ClearReleaseReason clears the value of the "release_reason" field.
func (m *ReservationMutation) ClearReleaseReason() {
	m.release_reason = nil
	m.clearedFields[reservation.FieldReleaseReason] = struct{}{}
}

// ReleaseReasonCleared returns if the "release_reason" field was cleared in this mutation.
func (m *ReservationMutation) ReleaseReasonCleared() bool {
	_, ok := m.clearedFields[reservation.FieldReleaseReason]
	return ok
}

// ResetReleaseReason resets all changes to the "release_reason" field.
func (m *ReservationMutation) ResetReleaseReason() {
	m.release_reason = nil
	delete(m.clearedFields, reservation.FieldReleaseReason)
}

// Where appends a list predicates to the ReservationMutation builder.
func (m *ReservationMutation) Where(ps ...predicate.Reservation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReservationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReservationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Reservation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReservationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReservationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Reservation).
func (m *ReservationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReservationMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.project_key != nil {
		fields = append(fields, reservation.FieldProjectKey)
	}
	if m.agent_name != nil {
		fields = append(fields, reservation.FieldAgentName)
	}
	if m.path_pattern != nil {
		fields = append(fields, reservation.FieldPathPattern)
	}
	if m.exclusive != nil {
		fields = append(fields, reservation.FieldExclusive)
	}
	if m.reason != nil {
		fields = append(fields, reservation.FieldReason)
	}
	if m.lock_holder_id != nil {
		fields = append(fields, reservation.FieldLockHolderID)
	}
	if m.created_at != nil {
		fields = append(fields, reservation.FieldCreatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, reservation.FieldExpiresAt)
	}
	if m.released_at != nil {
		fields = append(fields, reservation.FieldReleasedAt)
	}
	if m.release_reason != nil {
		fields = append(fields, reservation.FieldReleaseReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReservationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reservation.FieldProjectKey:
		return m.ProjectKey()
	case reservation.FieldAgentName:
		return m.AgentName()
	case reservation.FieldPathPattern:
		return m.PathPattern()
	case reservation.FieldExclusive:
		return m.Exclusive()
	case reservation.FieldReason:
		return m.Reason()
	case reservation.FieldLockHolderID:
		return m.LockHolderID()
	case reservation.FieldCreatedAt:
		return m.CreatedAt()
	case reservation.FieldExpiresAt:
		return m.ExpiresAt()
	case reservation.FieldReleasedAt:
		return m.ReleasedAt()
	case reservation.FieldReleaseReason:
		return m.ReleaseReason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReservationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reservation.FieldProjectKey:
		return m.OldProjectKey(ctx)
	case reservation.FieldAgentName:
		return m.OldAgentName(ctx)
	case reservation.FieldPathPattern:
		return m.OldPathPattern(ctx)
	case reservation.FieldExclusive:
		return m.OldExclusive(ctx)
	case reservation.FieldReason:
		return m.OldReason(ctx)
	case reservation.FieldLockHolderID:
		return m.OldLockHolderID(ctx)
	case reservation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case reservation.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case reservation.FieldReleasedAt:
		return m.OldReleasedAt(ctx)
	case reservation.FieldReleaseReason:
		return m.OldReleaseReason(ctx)
	}
	return nil, fmt.Errorf("unknown Reservation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReservationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reservation.FieldProjectKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectKey(v)
		return nil
	case reservation.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case reservation.FieldPathPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPathPattern(v)
		return nil
	case reservation.FieldExclusive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExclusive(v)
		return nil
	case reservation.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case reservation.FieldLockHolderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockHolderID(v)
		return nil
	case reservation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case reservation.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case reservation.FieldReleasedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReleasedAt(v)
		return nil
	case reservation.FieldReleaseReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReleaseReason(v)
		return nil
	}
	return fmt.Errorf("unknown Reservation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReservationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReservationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReservationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Reservation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReservationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reservation.FieldReason) {
		fields = append(fields, reservation.FieldReason)
	}
	if m.FieldCleared(reservation.FieldLockHolderID) {
		fields = append(fields, reservation.FieldLockHolderID)
	}
	if m.FieldCleared(reservation.FieldExpiresAt) {
		fields = append(fields, reservation.FieldExpiresAt)
	}
	if m.FieldCleared(reservation.FieldReleasedAt) {
		fields = append(fields, reservation.FieldReleasedAt)
	}
	if m.FieldCleared(reservation.FieldReleaseReason) {
		fields = append(fields, reservation.FieldReleaseReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReservationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReservationMutation) ClearField(name string) error {
	switch name {
	case reservation.FieldReason:
		m.ClearReason()
		return nil
	case reservation.FieldLockHolderID:
		m.ClearLockHolderID()
		return nil
	case reservation.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	case reservation.FieldReleasedAt:
		m.ClearReleasedAt()
		return nil
	case reservation.FieldReleaseReason:
		m.ClearReleaseReason()
		return nil
	}
	return fmt.Errorf("unknown Reservation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReservationMutation) ResetField(name string) error {
	switch name {
	case reservation.FieldProjectKey:
		m.ResetProjectKey()
		return nil
	case reservation.FieldAgentName:
		m.ResetAgentName()
		return nil
	case reservation.FieldPathPattern:
		m.ResetPathPattern()
		return nil
	case reservation.FieldExclusive:
		m.ResetExclusive()
		return nil
	case reservation.FieldReason:
		m.ResetReason()
		return nil
	case reservation.FieldLockHolderID:
		m.ResetLockHolderID()
		return nil
	case reservation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case reservation.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case reservation.FieldReleasedAt:
		m.ResetReleasedAt()
		return nil
	case reservation.FieldReleaseReason:
		m.ResetReleaseReason()
		return nil
	}
	return fmt.Errorf("unknown Reservation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReservationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReservationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReservationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReservationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReservationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReservationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReservationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Reservation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReservationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Reservation edge %s", name)
}

// SwarmContextMutation represents an operation that mutates the SwarmContext nodes in the graph.
type SwarmContextMutation struct {
	config
	op             Op
	typ            string
	id             *int
	session_id     *string
	project_key    *string
	is_coordinator *bool
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*SwarmContext, error)
	predicates     []predicate.SwarmContext
}

var _ ent.Mutation = (*SwarmContextMutation)(nil)

// swarmcontextOption allows management of the mutation configuration using functional options.
type swarmcontextOption func(*SwarmContextMutation)

// newSwarmContextMutation creates new mutation for the SwarmContext entity.
func newSwarmContextMutation(c config, op Op, opts ...swarmcontextOption) *SwarmContextMutation {
	m := &SwarmContextMutation{
		config:        c,
		op:            op,
		typ:           TypeSwarmContext,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSwarmContextID sets the ID field of the mutation.
func withSwarmContextID(id int) swarmcontextOption {
	return func(m *SwarmContextMutation) {
		var (
			err   error
			once  sync.Once
			value *SwarmContext
		)
		m.oldValue = func(ctx context.Context) (*SwarmContext, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SwarmContext.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSwarmContext sets the old SwarmContext of the mutation.
func withSwarmContext(node *SwarmContext) swarmcontextOption {
	return func(m *SwarmContextMutation) {
		m.oldValue = func(context.Context) (*SwarmContext, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SwarmContextMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SwarmContextMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SwarmContextMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SwarmContextMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SwarmContext.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *SwarmContextMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SwarmContextMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SwarmContext entity.
// If the SwarmContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SwarmContextMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SwarmContextMutation) ResetSessionID() {
	m.session_id = nil
}

// SetProjectKey sets the "project_key" field.
func (m *SwarmContextMutation) SetProjectKey(s string) {
	m.project_key = &s
}

// ProjectKey returns the value of the "project_key" field in the mutation.
func (m *SwarmContextMutation) ProjectKey() (r string, exists bool) {
	v := m.project_key
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectKey returns the old "project_key" field's value of the SwarmContext entity.
// If the SwarmContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SwarmContextMutation) OldProjectKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectKey: %w", err)
	}
	return oldValue.ProjectKey, nil
}

// ResetProjectKey resets all changes to the "project_key" field.
func (m *SwarmContextMutation) ResetProjectKey() {
	m.project_key = nil
}

// SetIsCoordinator sets the "is_coordinator" field.
func (m *SwarmContextMutation) SetIsCoordinator(b bool) {
	m.is_coordinator = &b
}

// IsCoordinator returns the value of the "is_coordinator" field in the mutation.
func (m *SwarmContextMutation) IsCoordinator() (r bool, exists bool) {
	v := m.is_coordinator
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCoordinator returns the old "is_coordinator" field's value of the SwarmContext entity.
// If the SwarmContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SwarmContextMutation) OldIsCoordinator(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCoordinator is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCoordinator requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCoordinator: %w", err)
	}
	return oldValue.IsCoordinator, nil
}

// ResetIsCoordinator resets all changes to the "is_coordinator" field.
func (m *SwarmContextMutation) ResetIsCoordinator() {
	m.is_coordinator = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SwarmContextMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SwarmContextMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SwarmContext entity.
// If the SwarmContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SwarmContextMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SwarmContextMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SwarmContextMutation builder.
func (m *SwarmContextMutation) Where(ps ...predicate.SwarmContext) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SwarmContextMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SwarmContextMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SwarmContext, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SwarmContextMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SwarmContextMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SwarmContext).
func (m *SwarmContextMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SwarmContextMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session_id != nil {
		fields = append(fields, swarmcontext.FieldSessionID)
	}
	if m.project_key != nil {
		fields = append(fields, swarmcontext.FieldProjectKey)
	}
	if m.is_coordinator != nil {
		fields = append(fields, swarmcontext.FieldIsCoordinator)
	}
	if m.created_at != nil {
		fields = append(fields, swarmcontext.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SwarmContextMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case swarmcontext.FieldSessionID:
		return m.SessionID()
	case swarmcontext.FieldProjectKey:
		return m.ProjectKey()
	case swarmcontext.FieldIsCoordinator:
		return m.IsCoordinator()
	case swarmcontext.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SwarmContextMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case swarmcontext.FieldSessionID:
		return m.OldSessionID(ctx)
	case swarmcontext.FieldProjectKey:
		return m.OldProjectKey(ctx)
	case swarmcontext.FieldIsCoordinator:
		return m.OldIsCoordinator(ctx)
	case swarmcontext.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SwarmContext field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SwarmContextMutation) SetField(name string, value ent.Value) error {
	switch name {
	case swarmcontext.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case swarmcontext.FieldProjectKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectKey(v)
		return nil
	case swarmcontext.FieldIsCoordinator:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCoordinator(v)
		return nil
	case swarmcontext.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SwarmContext field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SwarmContextMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SwarmContextMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SwarmContextMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SwarmContext numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SwarmContextMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SwarmContextMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SwarmContextMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SwarmContext nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SwarmContextMutation) ResetField(name string) error {
	switch name {
	case swarmcontext.FieldSessionID:
		m.ResetSessionID()
		return nil
	case swarmcontext.FieldProjectKey:
		m.ResetProjectKey()
		return nil
	case swarmcontext.FieldIsCoordinator:
		m.ResetIsCoordinator()
		return nil
	case swarmcontext.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SwarmContext field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SwarmContextMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SwarmContextMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SwarmContextMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SwarmContextMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SwarmContextMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SwarmContextMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SwarmContextMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SwarmContext unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SwarmContextMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SwarmContext edge %s", name)
}
