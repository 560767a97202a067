// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// Bead is the predicate function for bead builders.
type Bead func(*sql.Selector)

// BeadComment is the predicate function for beadcomment builders.
type BeadComment func(*sql.Selector)

// BeadDependency is the predicate function for beaddependency builders.
type BeadDependency func(*sql.Selector)

// BeadLabel is the predicate function for beadlabel builders.
type BeadLabel func(*sql.Selector)

// Cursor is the predicate function for cursor builders.
type Cursor func(*sql.Selector)

// Deferred is the predicate function for deferred builders.
type Deferred func(*sql.Selector)

// EvalRun is the predicate function for evalrun builders.
type EvalRun func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// MessageRecipient is the predicate function for messagerecipient builders.
type MessageRecipient func(*sql.Selector)

// Reservation is the predicate function for reservation builders.
type Reservation func(*sql.Selector)

// SwarmContext is the predicate function for swarmcontext builders.
type SwarmContext func(*sql.Selector)
