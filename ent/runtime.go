// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/opencoord/hive/ent/agent"
	"github.com/opencoord/hive/ent/bead"
	"github.com/opencoord/hive/ent/beadcomment"
	"github.com/opencoord/hive/ent/beaddependency"
	"github.com/opencoord/hive/ent/cursor"
	"github.com/opencoord/hive/ent/deferred"
	"github.com/opencoord/hive/ent/evalrun"
	"github.com/opencoord/hive/ent/message"
	"github.com/opencoord/hive/ent/reservation"
	"github.com/opencoord/hive/ent/schema"
	"github.com/opencoord/hive/ent/swarmcontext"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescRegisteredAt is the schema descriptor for registered_at field.
	agentDescRegisteredAt := agentFields[5].Descriptor()
	// agent.DefaultRegisteredAt holds the default value on creation for the registered_at field.
	agent.DefaultRegisteredAt = agentDescRegisteredAt.Default.(func() time.Time)
	// agentDescLastActiveAt is the schema descriptor for last_active_at field.
	agentDescLastActiveAt := agentFields[6].Descriptor()
	// agent.DefaultLastActiveAt holds the default value on creation for the last_active_at field.
	agent.DefaultLastActiveAt = agentDescLastActiveAt.Default.(func() time.Time)
	beadFields := schema.Bead{}.Fields()
	_ = beadFields
	// beadDescTitle is the schema descriptor for title field.
	beadDescTitle := beadFields[4].Descriptor()
	// bead.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	bead.TitleValidator = beadDescTitle.Validators[0].(func(string) error)
	// beadDescPriority is the schema descriptor for priority field.
	beadDescPriority := beadFields[6].Descriptor()
	// bead.DefaultPriority holds the default value on creation for the priority field.
	bead.DefaultPriority = beadDescPriority.Default.(int)
	// bead.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	bead.PriorityValidator = func() func(int) error {
		validators := beadDescPriority.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(priority int) error {
			for _, fn := range fns {
				if err := fn(priority); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// beadDescCreatedAt is the schema descriptor for created_at field.
	beadDescCreatedAt := beadFields[9].Descriptor()
	// bead.DefaultCreatedAt holds the default value on creation for the created_at field.
	bead.DefaultCreatedAt = beadDescCreatedAt.Default.(func() time.Time)
	// beadDescUpdatedAt is the schema descriptor for updated_at field.
	beadDescUpdatedAt := beadFields[10].Descriptor()
	// bead.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	bead.DefaultUpdatedAt = beadDescUpdatedAt.Default.(func() time.Time)
	// bead.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	bead.UpdateDefaultUpdatedAt = beadDescUpdatedAt.UpdateDefault.(func() time.Time)
	beadcommentFields := schema.BeadComment{}.Fields()
	_ = beadcommentFields
	// beadcommentDescCreatedAt is the schema descriptor for created_at field.
	beadcommentDescCreatedAt := beadcommentFields[3].Descriptor()
	// beadcomment.DefaultCreatedAt holds the default value on creation for the created_at field.
	beadcomment.DefaultCreatedAt = beadcommentDescCreatedAt.Default.(func() time.Time)
	beaddependencyFields := schema.BeadDependency{}.Fields()
	_ = beaddependencyFields
	// beaddependencyDescRelationship is the schema descriptor for relationship field.
	beaddependencyDescRelationship := beaddependencyFields[2].Descriptor()
	// beaddependency.DefaultRelationship holds the default value on creation for the relationship field.
	beaddependency.DefaultRelationship = beaddependencyDescRelationship.Default.(string)
	// beaddependencyDescCreatedAt is the schema descriptor for created_at field.
	beaddependencyDescCreatedAt := beaddependencyFields[3].Descriptor()
	// beaddependency.DefaultCreatedAt holds the default value on creation for the created_at field.
	beaddependency.DefaultCreatedAt = beaddependencyDescCreatedAt.Default.(func() time.Time)
	cursorFields := schema.Cursor{}.Fields()
	_ = cursorFields
	// cursorDescPosition is the schema descriptor for position field.
	cursorDescPosition := cursorFields[2].Descriptor()
	// cursor.DefaultPosition holds the default value on creation for the position field.
	cursor.DefaultPosition = cursorDescPosition.Default.(int64)
	// cursorDescUpdatedAt is the schema descriptor for updated_at field.
	cursorDescUpdatedAt := cursorFields[3].Descriptor()
	// cursor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	cursor.DefaultUpdatedAt = cursorDescUpdatedAt.Default.(func() time.Time)
	// cursor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	cursor.UpdateDefaultUpdatedAt = cursorDescUpdatedAt.UpdateDefault.(func() time.Time)
	deferredFields := schema.Deferred{}.Fields()
	_ = deferredFields
	// deferredDescResolved is the schema descriptor for resolved field.
	deferredDescResolved := deferredFields[1].Descriptor()
	// deferred.DefaultResolved holds the default value on creation for the resolved field.
	deferred.DefaultResolved = deferredDescResolved.Default.(bool)
	// deferredDescCreatedAt is the schema descriptor for created_at field.
	deferredDescCreatedAt := deferredFields[5].Descriptor()
	// deferred.DefaultCreatedAt holds the default value on creation for the created_at field.
	deferred.DefaultCreatedAt = deferredDescCreatedAt.Default.(func() time.Time)
	evalrunFields := schema.EvalRun{}.Fields()
	_ = evalrunFields
	// evalrunDescRunAt is the schema descriptor for run_at field.
	evalrunDescRunAt := evalrunFields[2].Descriptor()
	// evalrun.DefaultRunAt holds the default value on creation for the run_at field.
	evalrun.DefaultRunAt = evalrunDescRunAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescAckRequired is the schema descriptor for ack_required field.
	messageDescAckRequired := messageFields[7].Descriptor()
	// message.DefaultAckRequired holds the default value on creation for the ack_required field.
	message.DefaultAckRequired = messageDescAckRequired.Default.(bool)
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[8].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	reservationFields := schema.Reservation{}.Fields()
	_ = reservationFields
	// reservationDescExclusive is the schema descriptor for exclusive field.
	reservationDescExclusive := reservationFields[3].Descriptor()
	// reservation.DefaultExclusive holds the default value on creation for the exclusive field.
	reservation.DefaultExclusive = reservationDescExclusive.Default.(bool)
	// reservationDescCreatedAt is the schema descriptor for created_at field.
	reservationDescCreatedAt := reservationFields[6].Descriptor()
	// reservation.DefaultCreatedAt holds the default value on creation for the created_at field.
	reservation.DefaultCreatedAt = reservationDescCreatedAt.Default.(func() time.Time)
	swarmcontextFields := schema.SwarmContext{}.Fields()
	_ = swarmcontextFields
	// swarmcontextDescIsCoordinator is the schema descriptor for is_coordinator field.
	swarmcontextDescIsCoordinator := swarmcontextFields[2].Descriptor()
	// swarmcontext.DefaultIsCoordinator holds the default value on creation for the is_coordinator field.
	swarmcontext.DefaultIsCoordinator = swarmcontextDescIsCoordinator.Default.(bool)
	// swarmcontextDescCreatedAt is the schema descriptor for created_at field.
	swarmcontextDescCreatedAt := swarmcontextFields[3].Descriptor()
	// swarmcontext.DefaultCreatedAt holds the default value on creation for the created_at field.
	swarmcontext.DefaultCreatedAt = swarmcontextDescCreatedAt.Default.(func() time.Time)
}
