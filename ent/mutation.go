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
	"github.com/fleetworks/conductor/ent/approvedpermission"
	"github.com/fleetworks/conductor/ent/daemonstatus"
	"github.com/fleetworks/conductor/ent/executionsession"
	"github.com/fleetworks/conductor/ent/extraction"
	"github.com/fleetworks/conductor/ent/message"
	"github.com/fleetworks/conductor/ent/predicate"
	"github.com/fleetworks/conductor/ent/project"
	"github.com/fleetworks/conductor/ent/ticket"
	"github.com/fleetworks/conductor/ent/ticketdependency"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeApprovedPermission = "ApprovedPermission"
	TypeDaemonStatus       = "DaemonStatus"
	TypeExecutionSession   = "ExecutionSession"
	TypeExtraction         = "Extraction"
	TypeMessage            = "Message"
	TypeProject            = "Project"
	TypeTicket             = "Ticket"
	TypeTicketDependency   = "TicketDependency"
)

// ApprovedPermissionMutation represents an operation that mutates the ApprovedPermission nodes in the graph.
type ApprovedPermissionMutation struct {
	config
	op            Op
	typ           string
	id            *int
	tool          *string
	pattern       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	ticket        *int
	clearedticket bool
	done          bool
	oldValue      func(context.Context) (*ApprovedPermission, error)
	predicates    []predicate.ApprovedPermission
}

var _ ent.Mutation = (*ApprovedPermissionMutation)(nil)

// approvedpermissionOption allows management of the mutation configuration using functional options.
type approvedpermissionOption func(*ApprovedPermissionMutation)

// newApprovedPermissionMutation creates new mutation for the ApprovedPermission entity.
func newApprovedPermissionMutation(c config, op Op, opts ...approvedpermissionOption) *ApprovedPermissionMutation {
	m := &ApprovedPermissionMutation{
		config:        c,
		op:            op,
		typ:           TypeApprovedPermission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApprovedPermissionID sets the ID field of the mutation.
func withApprovedPermissionID(id int) approvedpermissionOption {
	return func(m *ApprovedPermissionMutation) {
		var (
			err   error
			once  sync.Once
			value *ApprovedPermission
		)
		m.oldValue = func(ctx context.Context) (*ApprovedPermission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ApprovedPermission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApprovedPermission sets the old ApprovedPermission of the mutation.
func withApprovedPermission(node *ApprovedPermission) approvedpermissionOption {
	return func(m *ApprovedPermissionMutation) {
		m.oldValue = func(context.Context) (*ApprovedPermission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApprovedPermissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApprovedPermissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApprovedPermissionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApprovedPermissionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ApprovedPermission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTicketID sets the "ticket_id" field.
func (m *ApprovedPermissionMutation) SetTicketID(i int) {
	m.ticket = &i
}

// TicketID returns the value of the "ticket_id" field in the mutation.
func (m *ApprovedPermissionMutation) TicketID() (r int, exists bool) {
	v := m.ticket
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketID returns the old "ticket_id" field's value of the ApprovedPermission entity.
// If the ApprovedPermission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovedPermissionMutation) OldTicketID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketID: %w", err)
	}
	return oldValue.TicketID, nil
}

// ResetTicketID resets all changes to the "ticket_id" field.
func (m *ApprovedPermissionMutation) ResetTicketID() {
	m.ticket = nil
}

// SetTool sets the "tool" field.
func (m *ApprovedPermissionMutation) SetTool(s string) {
	m.tool = &s
}

// Tool returns the value of the "tool" field in the mutation.
func (m *ApprovedPermissionMutation) Tool() (r string, exists bool) {
	v := m.tool
	if v == nil {
		return
	}
	return *v, true
}

// OldTool returns the old "tool" field's value of the ApprovedPermission entity.
// If the ApprovedPermission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovedPermissionMutation) OldTool(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTool is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTool requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTool: %w", err)
	}
	return oldValue.Tool, nil
}

// ResetTool resets all changes to the "tool" field.
func (m *ApprovedPermissionMutation) ResetTool() {
	m.tool = nil
}

// SetPattern sets the "pattern" field.
func (m *ApprovedPermissionMutation) SetPattern(s string) {
	m.pattern = &s
}

// Pattern returns the value of the "pattern" field in the mutation.
func (m *ApprovedPermissionMutation) Pattern() (r string, exists bool) {
	v := m.pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldPattern returns the old "pattern" field's value of the ApprovedPermission entity.
// If the ApprovedPermission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovedPermissionMutation) OldPattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPattern: %w", err)
	}
	return oldValue.Pattern, nil
}

// ResetPattern resets all changes to the "pattern" field.
func (m *ApprovedPermissionMutation) ResetPattern() {
	m.pattern = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ApprovedPermissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApprovedPermissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ApprovedPermission entity.
// If the ApprovedPermission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovedPermissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ApprovedPermissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTicket clears the "ticket" edge to the Ticket entity.
func (m *ApprovedPermissionMutation) ClearTicket() {
	m.clearedticket = true
	m.clearedFields[approvedpermission.FieldTicketID] = struct{}{}
}

// TicketCleared reports if the "ticket" edge to the Ticket entity was cleared.
func (m *ApprovedPermissionMutation) TicketCleared() bool {
	return m.clearedticket
}

// TicketIDs returns the "ticket" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TicketID instead. It exists only for internal usage by the builders.
func (m *ApprovedPermissionMutation) TicketIDs() (ids []int) {
	if id := m.ticket; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTicket resets all changes to the "ticket" edge.
func (m *ApprovedPermissionMutation) ResetTicket() {
	m.ticket = nil
	m.clearedticket = false
}

// Where appends a list predicates to the ApprovedPermissionMutation builder.
func (m *ApprovedPermissionMutation) Where(ps ...predicate.ApprovedPermission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApprovedPermissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApprovedPermissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ApprovedPermission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApprovedPermissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApprovedPermissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ApprovedPermission).
func (m *ApprovedPermissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApprovedPermissionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.ticket != nil {
		fields = append(fields, approvedpermission.FieldTicketID)
	}
	if m.tool != nil {
		fields = append(fields, approvedpermission.FieldTool)
	}
	if m.pattern != nil {
		fields = append(fields, approvedpermission.FieldPattern)
	}
	if m.created_at != nil {
		fields = append(fields, approvedpermission.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApprovedPermissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case approvedpermission.FieldTicketID:
		return m.TicketID()
	case approvedpermission.FieldTool:
		return m.Tool()
	case approvedpermission.FieldPattern:
		return m.Pattern()
	case approvedpermission.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApprovedPermissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case approvedpermission.FieldTicketID:
		return m.OldTicketID(ctx)
	case approvedpermission.FieldTool:
		return m.OldTool(ctx)
	case approvedpermission.FieldPattern:
		return m.OldPattern(ctx)
	case approvedpermission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ApprovedPermission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovedPermissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case approvedpermission.FieldTicketID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketID(v)
		return nil
	case approvedpermission.FieldTool:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTool(v)
		return nil
	case approvedpermission.FieldPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPattern(v)
		return nil
	case approvedpermission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ApprovedPermission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApprovedPermissionMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApprovedPermissionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovedPermissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ApprovedPermission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApprovedPermissionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApprovedPermissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApprovedPermissionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ApprovedPermission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApprovedPermissionMutation) ResetField(name string) error {
	switch name {
	case approvedpermission.FieldTicketID:
		m.ResetTicketID()
		return nil
	case approvedpermission.FieldTool:
		m.ResetTool()
		return nil
	case approvedpermission.FieldPattern:
		m.ResetPattern()
		return nil
	case approvedpermission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ApprovedPermission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApprovedPermissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.ticket != nil {
		edges = append(edges, approvedpermission.EdgeTicket)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApprovedPermissionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case approvedpermission.EdgeTicket:
		if id := m.ticket; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApprovedPermissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApprovedPermissionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApprovedPermissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedticket {
		edges = append(edges, approvedpermission.EdgeTicket)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApprovedPermissionMutation) EdgeCleared(name string) bool {
	switch name {
	case approvedpermission.EdgeTicket:
		return m.clearedticket
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApprovedPermissionMutation) ClearEdge(name string) error {
	switch name {
	case approvedpermission.EdgeTicket:
		m.ClearTicket()
		return nil
	}
	return fmt.Errorf("unknown ApprovedPermission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApprovedPermissionMutation) ResetEdge(name string) error {
	switch name {
	case approvedpermission.EdgeTicket:
		m.ResetTicket()
		return nil
	}
	return fmt.Errorf("unknown ApprovedPermission edge %s", name)
}

// DaemonStatusMutation represents an operation that mutates the DaemonStatus nodes in the graph.
type DaemonStatusMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	status                *daemonstatus.Status
	active_tickets        *int
	addactive_tickets     *int
	current_tickets       *[]string
	appendcurrent_tickets []string
	last_heartbeat_at     *time.Time
	started_at            *time.Time
	pid                   *int
	addpid                *int
	version               *string
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*DaemonStatus, error)
	predicates            []predicate.DaemonStatus
}

var _ ent.Mutation = (*DaemonStatusMutation)(nil)

// daemonstatusOption allows management of the mutation configuration using functional options.
type daemonstatusOption func(*DaemonStatusMutation)

// newDaemonStatusMutation creates new mutation for the DaemonStatus entity.
func newDaemonStatusMutation(c config, op Op, opts ...daemonstatusOption) *DaemonStatusMutation {
	m := &DaemonStatusMutation{
		config:        c,
		op:            op,
		typ:           TypeDaemonStatus,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDaemonStatusID sets the ID field of the mutation.
func withDaemonStatusID(id int) daemonstatusOption {
	return func(m *DaemonStatusMutation) {
		var (
			err   error
			once  sync.Once
			value *DaemonStatus
		)
		m.oldValue = func(ctx context.Context) (*DaemonStatus, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DaemonStatus.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDaemonStatus sets the old DaemonStatus of the mutation.
func withDaemonStatus(node *DaemonStatus) daemonstatusOption {
	return func(m *DaemonStatusMutation) {
		m.oldValue = func(context.Context) (*DaemonStatus, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DaemonStatusMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DaemonStatusMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DaemonStatus entities.
func (m *DaemonStatusMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DaemonStatusMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DaemonStatusMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DaemonStatus.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStatus sets the "status" field.
func (m *DaemonStatusMutation) SetStatus(d daemonstatus.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DaemonStatusMutation) Status() (r daemonstatus.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DaemonStatus entity.
// If the DaemonStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DaemonStatusMutation) OldStatus(ctx context.Context) (v daemonstatus.Status, err error) {
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
func (m *DaemonStatusMutation) ResetStatus() {
	m.status = nil
}

// SetActiveTickets sets the "active_tickets" field.
func (m *DaemonStatusMutation) SetActiveTickets(i int) {
	m.active_tickets = &i
	m.addactive_tickets = nil
}

// ActiveTickets returns the value of the "active_tickets" field in the mutation.
func (m *DaemonStatusMutation) ActiveTickets() (r int, exists bool) {
	v := m.active_tickets
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveTickets returns the old "active_tickets" field's value of the DaemonStatus entity.
// If the DaemonStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DaemonStatusMutation) OldActiveTickets(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveTickets is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveTickets requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveTickets: %w", err)
	}
	return oldValue.ActiveTickets, nil
}

// AddActiveTickets adds i to the "active_tickets" field.
func (m *DaemonStatusMutation) AddActiveTickets(i int) {
	if m.addactive_tickets != nil {
		*m.addactive_tickets += i
	} else {
		m.addactive_tickets = &i
	}
}

// AddedActiveTickets returns the value that was added to the "active_tickets" field in this mutation.
func (m *DaemonStatusMutation) AddedActiveTickets() (r int, exists bool) {
	v := m.addactive_tickets
	if v == nil {
		return
	}
	return *v, true
}

// ResetActiveTickets resets all changes to the "active_tickets" field.
func (m *DaemonStatusMutation) ResetActiveTickets() {
	m.active_tickets = nil
	m.addactive_tickets = nil
}

// SetCurrentTickets sets the "current_tickets" field.
func (m *DaemonStatusMutation) SetCurrentTickets(s []string) {
	m.current_tickets = &s
	m.appendcurrent_tickets = nil
}

// CurrentTickets returns the value of the "current_tickets" field in the mutation.
func (m *DaemonStatusMutation) CurrentTickets() (r []string, exists bool) {
	v := m.current_tickets
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentTickets returns the old "current_tickets" field's value of the DaemonStatus entity.
// If the DaemonStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DaemonStatusMutation) OldCurrentTickets(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentTickets is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentTickets requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentTickets: %w", err)
	}
	return oldValue.CurrentTickets, nil
}

// AppendCurrentTickets adds s to the "current_tickets" field.
func (m *DaemonStatusMutation) AppendCurrentTickets(s []string) {
	m.appendcurrent_tickets = append(m.appendcurrent_tickets, s...)
}

// AppendedCurrentTickets returns the list of values that were appended to the "current_tickets" field in this mutation.
func (m *DaemonStatusMutation) AppendedCurrentTickets() ([]string, bool) {
	if len(m.appendcurrent_tickets) == 0 {
		return nil, false
	}
	return m.appendcurrent_tickets, true
}

// ClearCurrentTickets clears the value of the "current_tickets" field.
func (m *DaemonStatusMutation) ClearCurrentTickets() {
	m.current_tickets = nil
	m.appendcurrent_tickets = nil
	m.clearedFields[daemonstatus.FieldCurrentTickets] = struct{}{}
}

// CurrentTicketsCleared returns if the "current_tickets" field was cleared in this mutation.
func (m *DaemonStatusMutation) CurrentTicketsCleared() bool {
	_, ok := m.clearedFields[daemonstatus.FieldCurrentTickets]
	return ok
}

// ResetCurrentTickets resets all changes to the "current_tickets" field.
func (m *DaemonStatusMutation) ResetCurrentTickets() {
	m.current_tickets = nil
	m.appendcurrent_tickets = nil
	delete(m.clearedFields, daemonstatus.FieldCurrentTickets)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *DaemonStatusMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *DaemonStatusMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the DaemonStatus entity.
// If the DaemonStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DaemonStatusMutation) OldLastHeartbeatAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *DaemonStatusMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *DaemonStatusMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *DaemonStatusMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the DaemonStatus entity.
// If the DaemonStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DaemonStatusMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *DaemonStatusMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetPid sets the "pid" field.
func (m *DaemonStatusMutation) SetPid(i int) {
	m.pid = &i
	m.addpid = nil
}

// Pid returns the value of the "pid" field in the mutation.
func (m *DaemonStatusMutation) Pid() (r int, exists bool) {
	v := m.pid
	if v == nil {
		return
	}
	return *v, true
}

// OldPid returns the old "pid" field's value of the DaemonStatus entity.
// If the DaemonStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DaemonStatusMutation) OldPid(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPid: %w", err)
	}
	return oldValue.Pid, nil
}

// AddPid adds i to the "pid" field.
func (m *DaemonStatusMutation) AddPid(i int) {
	if m.addpid != nil {
		*m.addpid += i
	} else {
		m.addpid = &i
	}
}

// AddedPid returns the value that was added to the "pid" field in this mutation.
func (m *DaemonStatusMutation) AddedPid() (r int, exists bool) {
	v := m.addpid
	if v == nil {
		return
	}
	return *v, true
}

// ResetPid resets all changes to the "pid" field.
func (m *DaemonStatusMutation) ResetPid() {
	m.pid = nil
	m.addpid = nil
}

// SetVersion sets the "version" field.
func (m *DaemonStatusMutation) SetVersion(s string) {
	m.version = &s
}

// Version returns the value of the "version" field in the mutation.
func (m *DaemonStatusMutation) Version() (r string, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the DaemonStatus entity.
// If the DaemonStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DaemonStatusMutation) OldVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// ClearVersion clears the value of the "version" field.
func (m *DaemonStatusMutation) ClearVersion() {
	m.version = nil
	m.clearedFields[daemonstatus.FieldVersion] = struct{}{}
}

// VersionCleared returns if the "version" field was cleared in this mutation.
func (m *DaemonStatusMutation) VersionCleared() bool {
	_, ok := m.clearedFields[daemonstatus.FieldVersion]
	return ok
}

// ResetVersion resets all changes to the "version" field.
func (m *DaemonStatusMutation) ResetVersion() {
	m.version = nil
	delete(m.clearedFields, daemonstatus.FieldVersion)
}

// Where appends a list predicates to the DaemonStatusMutation builder.
func (m *DaemonStatusMutation) Where(ps ...predicate.DaemonStatus) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DaemonStatusMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DaemonStatusMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DaemonStatus, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DaemonStatusMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DaemonStatusMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DaemonStatus).
func (m *DaemonStatusMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DaemonStatusMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.status != nil {
		fields = append(fields, daemonstatus.FieldStatus)
	}
	if m.active_tickets != nil {
		fields = append(fields, daemonstatus.FieldActiveTickets)
	}
	if m.current_tickets != nil {
		fields = append(fields, daemonstatus.FieldCurrentTickets)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, daemonstatus.FieldLastHeartbeatAt)
	}
	if m.started_at != nil {
		fields = append(fields, daemonstatus.FieldStartedAt)
	}
	if m.pid != nil {
		fields = append(fields, daemonstatus.FieldPid)
	}
	if m.version != nil {
		fields = append(fields, daemonstatus.FieldVersion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DaemonStatusMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case daemonstatus.FieldStatus:
		return m.Status()
	case daemonstatus.FieldActiveTickets:
		return m.ActiveTickets()
	case daemonstatus.FieldCurrentTickets:
		return m.CurrentTickets()
	case daemonstatus.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case daemonstatus.FieldStartedAt:
		return m.StartedAt()
	case daemonstatus.FieldPid:
		return m.Pid()
	case daemonstatus.FieldVersion:
		return m.Version()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DaemonStatusMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case daemonstatus.FieldStatus:
		return m.OldStatus(ctx)
	case daemonstatus.FieldActiveTickets:
		return m.OldActiveTickets(ctx)
	case daemonstatus.FieldCurrentTickets:
		return m.OldCurrentTickets(ctx)
	case daemonstatus.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case daemonstatus.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case daemonstatus.FieldPid:
		return m.OldPid(ctx)
	case daemonstatus.FieldVersion:
		return m.OldVersion(ctx)
	}
	return nil, fmt.Errorf("unknown DaemonStatus field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DaemonStatusMutation) SetField(name string, value ent.Value) error {
	switch name {
	case daemonstatus.FieldStatus:
		v, ok := value.(daemonstatus.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case daemonstatus.FieldActiveTickets:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveTickets(v)
		return nil
	case daemonstatus.FieldCurrentTickets:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentTickets(v)
		return nil
	case daemonstatus.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case daemonstatus.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case daemonstatus.FieldPid:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPid(v)
		return nil
	case daemonstatus.FieldVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	}
	return fmt.Errorf("unknown DaemonStatus field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DaemonStatusMutation) AddedFields() []string {
	var fields []string
	if m.addactive_tickets != nil {
		fields = append(fields, daemonstatus.FieldActiveTickets)
	}
	if m.addpid != nil {
		fields = append(fields, daemonstatus.FieldPid)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DaemonStatusMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case daemonstatus.FieldActiveTickets:
		return m.AddedActiveTickets()
	case daemonstatus.FieldPid:
		return m.AddedPid()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DaemonStatusMutation) AddField(name string, value ent.Value) error {
	switch name {
	case daemonstatus.FieldActiveTickets:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActiveTickets(v)
		return nil
	case daemonstatus.FieldPid:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPid(v)
		return nil
	}
	return fmt.Errorf("unknown DaemonStatus numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DaemonStatusMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(daemonstatus.FieldCurrentTickets) {
		fields = append(fields, daemonstatus.FieldCurrentTickets)
	}
	if m.FieldCleared(daemonstatus.FieldVersion) {
		fields = append(fields, daemonstatus.FieldVersion)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DaemonStatusMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DaemonStatusMutation) ClearField(name string) error {
	switch name {
	case daemonstatus.FieldCurrentTickets:
		m.ClearCurrentTickets()
		return nil
	case daemonstatus.FieldVersion:
		m.ClearVersion()
		return nil
	}
	return fmt.Errorf("unknown DaemonStatus nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DaemonStatusMutation) ResetField(name string) error {
	switch name {
	case daemonstatus.FieldStatus:
		m.ResetStatus()
		return nil
	case daemonstatus.FieldActiveTickets:
		m.ResetActiveTickets()
		return nil
	case daemonstatus.FieldCurrentTickets:
		m.ResetCurrentTickets()
		return nil
	case daemonstatus.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case daemonstatus.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case daemonstatus.FieldPid:
		m.ResetPid()
		return nil
	case daemonstatus.FieldVersion:
		m.ResetVersion()
		return nil
	}
	return fmt.Errorf("unknown DaemonStatus field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DaemonStatusMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DaemonStatusMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DaemonStatusMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DaemonStatusMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DaemonStatusMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DaemonStatusMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DaemonStatusMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DaemonStatus unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DaemonStatusMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DaemonStatus edge %s", name)
}

// ExecutionSessionMutation represents an operation that mutates the ExecutionSession nodes in the graph.
type ExecutionSessionMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	status                   *executionsession.Status
	input_tokens             *int64
	addinput_tokens          *int64
	output_tokens            *int64
	addoutput_tokens         *int64
	cache_read_tokens        *int64
	addcache_read_tokens     *int64
	cache_creation_tokens    *int64
	addcache_creation_tokens *int64
	api_calls                *int
	addapi_calls             *int
	error_message            *string
	started_at               *time.Time
	ended_at                 *time.Time
	last_output_at           *time.Time
	clearedFields            map[string]struct{}
	ticket                   *int
	clearedticket            bool
	done                     bool
	oldValue                 func(context.Context) (*ExecutionSession, error)
	predicates               []predicate.ExecutionSession
}

var _ ent.Mutation = (*ExecutionSessionMutation)(nil)

// executionsessionOption allows management of the mutation configuration using functional options.
type executionsessionOption func(*ExecutionSessionMutation)

// newExecutionSessionMutation creates new mutation for the ExecutionSession entity.
func newExecutionSessionMutation(c config, op Op, opts ...executionsessionOption) *ExecutionSessionMutation {
	m := &ExecutionSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeExecutionSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionSessionID sets the ID field of the mutation.
func withExecutionSessionID(id string) executionsessionOption {
	return func(m *ExecutionSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ExecutionSession
		)
		m.oldValue = func(ctx context.Context) (*ExecutionSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExecutionSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecutionSession sets the old ExecutionSession of the mutation.
func withExecutionSession(node *ExecutionSession) executionsessionOption {
	return func(m *ExecutionSessionMutation) {
		m.oldValue = func(context.Context) (*ExecutionSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExecutionSession entities.
func (m *ExecutionSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExecutionSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTicketID sets the "ticket_id" field.
func (m *ExecutionSessionMutation) SetTicketID(i int) {
	m.ticket = &i
}

// TicketID returns the value of the "ticket_id" field in the mutation.
func (m *ExecutionSessionMutation) TicketID() (r int, exists bool) {
	v := m.ticket
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketID returns the old "ticket_id" field's value of the ExecutionSession entity.
// If the ExecutionSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionSessionMutation) OldTicketID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketID: %w", err)
	}
	return oldValue.TicketID, nil
}

// ResetTicketID resets all changes to the "ticket_id" field.
func (m *ExecutionSessionMutation) ResetTicketID() {
	m.ticket = nil
}

// SetStatus sets the "status" field.
func (m *ExecutionSessionMutation) SetStatus(e executionsession.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *ExecutionSessionMutation) Status() (r executionsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExecutionSession entity.
// If the ExecutionSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionSessionMutation) OldStatus(ctx context.Context) (v executionsession.Status, err error) {
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
func (m *ExecutionSessionMutation) ResetStatus() {
	m.status = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *ExecutionSessionMutation) SetInputTokens(i int64) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *ExecutionSessionMutation) InputTokens() (r int64, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the ExecutionSession entity.
// If the ExecutionSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionSessionMutation) OldInputTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *ExecutionSessionMutation) AddInputTokens(i int64) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *ExecutionSessionMutation) AddedInputTokens() (r int64, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *ExecutionSessionMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *ExecutionSessionMutation) SetOutputTokens(i int64) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *ExecutionSessionMutation) OutputTokens() (r int64, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the ExecutionSession entity.
// If the ExecutionSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionSessionMutation) OldOutputTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *ExecutionSessionMutation) AddOutputTokens(i int64) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *ExecutionSessionMutation) AddedOutputTokens() (r int64, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *ExecutionSessionMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetCacheReadTokens sets the "cache_read_tokens" field.
func (m *ExecutionSessionMutation) SetCacheReadTokens(i int64) {
	m.cache_read_tokens = &i
	m.addcache_read_tokens = nil
}

// CacheReadTokens returns the value of the "cache_read_tokens" field in the mutation.
func (m *ExecutionSessionMutation) CacheReadTokens() (r int64, exists bool) {
	v := m.cache_read_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCacheReadTokens returns the old "cache_read_tokens" field's value of the ExecutionSession entity.
// If the ExecutionSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionSessionMutation) OldCacheReadTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCacheReadTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCacheReadTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCacheReadTokens: %w", err)
	}
	return oldValue.CacheReadTokens, nil
}

// AddCacheReadTokens adds i to the "cache_read_tokens" field.
func (m *ExecutionSessionMutation) AddCacheReadTokens(i int64) {
	if m.addcache_read_tokens != nil {
		*m.addcache_read_tokens += i
	} else {
		m.addcache_read_tokens = &i
	}
}

// AddedCacheReadTokens returns the value that was added to the "cache_read_tokens" field in this mutation.
func (m *ExecutionSessionMutation) AddedCacheReadTokens() (r int64, exists bool) {
	v := m.addcache_read_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCacheReadTokens resets all changes to the "cache_read_tokens" field.
func (m *ExecutionSessionMutation) ResetCacheReadTokens() {
	m.cache_read_tokens = nil
	m.addcache_read_tokens = nil
}

// SetCacheCreationTokens sets the "cache_creation_tokens" field.
func (m *ExecutionSessionMutation) SetCacheCreationTokens(i int64) {
	m.cache_creation_tokens = &i
	m.addcache_creation_tokens = nil
}

// CacheCreationTokens returns the value of the "cache_creation_tokens" field in the mutation.
func (m *ExecutionSessionMutation) CacheCreationTokens() (r int64, exists bool) {
	v := m.cache_creation_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCacheCreationTokens returns the old "cache_creation_tokens" field's value of the ExecutionSession entity.
// If the ExecutionSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionSessionMutation) OldCacheCreationTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCacheCreationTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCacheCreationTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCacheCreationTokens: %w", err)
	}
	return oldValue.CacheCreationTokens, nil
}

// AddCacheCreationTokens adds i to the "cache_creation_tokens" field.
func (m *ExecutionSessionMutation) AddCacheCreationTokens(i int64) {
	if m.addcache_creation_tokens != nil {
		*m.addcache_creation_tokens += i
	} else {
		m.addcache_creation_tokens = &i
	}
}

// AddedCacheCreationTokens returns the value that was added to the "cache_creation_tokens" field in this mutation.
func (m *ExecutionSessionMutation) AddedCacheCreationTokens() (r int64, exists bool) {
	v := m.addcache_creation_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCacheCreationTokens resets all changes to the "cache_creation_tokens" field.
func (m *ExecutionSessionMutation) ResetCacheCreationTokens() {
	m.cache_creation_tokens = nil
	m.addcache_creation_tokens = nil
}

// SetAPICalls sets the "api_calls" field.
func (m *ExecutionSessionMutation) SetAPICalls(i int) {
	m.api_calls = &i
	m.addapi_calls = nil
}

// APICalls returns the value of the "api_calls" field in the mutation.
func (m *ExecutionSessionMutation) APICalls() (r int, exists bool) {
	v := m.api_calls
	if v == nil {
		return
	}
	return *v, true
}

// OldAPICalls returns the old "api_calls" field's value of the ExecutionSession entity.
// If the ExecutionSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionSessionMutation) OldAPICalls(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPICalls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPICalls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPICalls: %w", err)
	}
	return oldValue.APICalls, nil
}

// AddAPICalls adds i to the "api_calls" field.
func (m *ExecutionSessionMutation) AddAPICalls(i int) {
	if m.addapi_calls != nil {
		*m.addapi_calls += i
	} else {
		m.addapi_calls = &i
	}
}

// AddedAPICalls returns the value that was added to the "api_calls" field in this mutation.
func (m *ExecutionSessionMutation) AddedAPICalls() (r int, exists bool) {
	v := m.addapi_calls
	if v == nil {
		return
	}
	return *v, true
}

// ResetAPICalls resets all changes to the "api_calls" field.
func (m *ExecutionSessionMutation) ResetAPICalls() {
	m.api_calls = nil
	m.addapi_calls = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ExecutionSessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExecutionSessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExecutionSession entity.
// If the ExecutionSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionSessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExecutionSessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[executionsession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExecutionSessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[executionsession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExecutionSessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, executionsession.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *ExecutionSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExecutionSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExecutionSession entity.
// If the ExecutionSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionSessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExecutionSessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *ExecutionSessionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *ExecutionSessionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the ExecutionSession entity.
// If the ExecutionSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionSessionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *ExecutionSessionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[executionsession.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *ExecutionSessionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[executionsession.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *ExecutionSessionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, executionsession.FieldEndedAt)
}

// SetLastOutputAt sets the "last_output_at" field.
func (m *ExecutionSessionMutation) SetLastOutputAt(t time.Time) {
	m.last_output_at = &t
}

// LastOutputAt returns the value of the "last_output_at" field in the mutation.
func (m *ExecutionSessionMutation) LastOutputAt() (r time.Time, exists bool) {
	v := m.last_output_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastOutputAt returns the old "last_output_at" field's value of the ExecutionSession entity.
// If the ExecutionSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionSessionMutation) OldLastOutputAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastOutputAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastOutputAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastOutputAt: %w", err)
	}
	return oldValue.LastOutputAt, nil
}

// ClearLastOutputAt clears the value of the "last_output_at" field.
func (m *ExecutionSessionMutation) ClearLastOutputAt() {
	m.last_output_at = nil
	m.clearedFields[executionsession.FieldLastOutputAt] = struct{}{}
}

// LastOutputAtCleared returns if the "last_output_at" field was cleared in this mutation.
func (m *ExecutionSessionMutation) LastOutputAtCleared() bool {
	_, ok := m.clearedFields[executionsession.FieldLastOutputAt]
	return ok
}

// ResetLastOutputAt resets all changes to the "last_output_at" field.
func (m *ExecutionSessionMutation) ResetLastOutputAt() {
	m.last_output_at = nil
	delete(m.clearedFields, executionsession.FieldLastOutputAt)
}

// ClearTicket clears the "ticket" edge to the Ticket entity.
func (m *ExecutionSessionMutation) ClearTicket() {
	m.clearedticket = true
	m.clearedFields[executionsession.FieldTicketID] = struct{}{}
}

// TicketCleared reports if the "ticket" edge to the Ticket entity was cleared.
func (m *ExecutionSessionMutation) TicketCleared() bool {
	return m.clearedticket
}

// TicketIDs returns the "ticket" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TicketID instead. It exists only for internal usage by the builders.
func (m *ExecutionSessionMutation) TicketIDs() (ids []int) {
	if id := m.ticket; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTicket resets all changes to the "ticket" edge.
func (m *ExecutionSessionMutation) ResetTicket() {
	m.ticket = nil
	m.clearedticket = false
}

// Where appends a list predicates to the ExecutionSessionMutation builder.
func (m *ExecutionSessionMutation) Where(ps ...predicate.ExecutionSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExecutionSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExecutionSession).
func (m *ExecutionSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionSessionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.ticket != nil {
		fields = append(fields, executionsession.FieldTicketID)
	}
	if m.status != nil {
		fields = append(fields, executionsession.FieldStatus)
	}
	if m.input_tokens != nil {
		fields = append(fields, executionsession.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, executionsession.FieldOutputTokens)
	}
	if m.cache_read_tokens != nil {
		fields = append(fields, executionsession.FieldCacheReadTokens)
	}
	if m.cache_creation_tokens != nil {
		fields = append(fields, executionsession.FieldCacheCreationTokens)
	}
	if m.api_calls != nil {
		fields = append(fields, executionsession.FieldAPICalls)
	}
	if m.error_message != nil {
		fields = append(fields, executionsession.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, executionsession.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, executionsession.FieldEndedAt)
	}
	if m.last_output_at != nil {
		fields = append(fields, executionsession.FieldLastOutputAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case executionsession.FieldTicketID:
		return m.TicketID()
	case executionsession.FieldStatus:
		return m.Status()
	case executionsession.FieldInputTokens:
		return m.InputTokens()
	case executionsession.FieldOutputTokens:
		return m.OutputTokens()
	case executionsession.FieldCacheReadTokens:
		return m.CacheReadTokens()
	case executionsession.FieldCacheCreationTokens:
		return m.CacheCreationTokens()
	case executionsession.FieldAPICalls:
		return m.APICalls()
	case executionsession.FieldErrorMessage:
		return m.ErrorMessage()
	case executionsession.FieldStartedAt:
		return m.StartedAt()
	case executionsession.FieldEndedAt:
		return m.EndedAt()
	case executionsession.FieldLastOutputAt:
		return m.LastOutputAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case executionsession.FieldTicketID:
		return m.OldTicketID(ctx)
	case executionsession.FieldStatus:
		return m.OldStatus(ctx)
	case executionsession.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case executionsession.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case executionsession.FieldCacheReadTokens:
		return m.OldCacheReadTokens(ctx)
	case executionsession.FieldCacheCreationTokens:
		return m.OldCacheCreationTokens(ctx)
	case executionsession.FieldAPICalls:
		return m.OldAPICalls(ctx)
	case executionsession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case executionsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case executionsession.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case executionsession.FieldLastOutputAt:
		return m.OldLastOutputAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExecutionSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case executionsession.FieldTicketID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketID(v)
		return nil
	case executionsession.FieldStatus:
		v, ok := value.(executionsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case executionsession.FieldInputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case executionsession.FieldOutputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case executionsession.FieldCacheReadTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCacheReadTokens(v)
		return nil
	case executionsession.FieldCacheCreationTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCacheCreationTokens(v)
		return nil
	case executionsession.FieldAPICalls:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPICalls(v)
		return nil
	case executionsession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case executionsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case executionsession.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case executionsession.FieldLastOutputAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastOutputAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionSessionMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, executionsession.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, executionsession.FieldOutputTokens)
	}
	if m.addcache_read_tokens != nil {
		fields = append(fields, executionsession.FieldCacheReadTokens)
	}
	if m.addcache_creation_tokens != nil {
		fields = append(fields, executionsession.FieldCacheCreationTokens)
	}
	if m.addapi_calls != nil {
		fields = append(fields, executionsession.FieldAPICalls)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case executionsession.FieldInputTokens:
		return m.AddedInputTokens()
	case executionsession.FieldOutputTokens:
		return m.AddedOutputTokens()
	case executionsession.FieldCacheReadTokens:
		return m.AddedCacheReadTokens()
	case executionsession.FieldCacheCreationTokens:
		return m.AddedCacheCreationTokens()
	case executionsession.FieldAPICalls:
		return m.AddedAPICalls()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case executionsession.FieldInputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case executionsession.FieldOutputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case executionsession.FieldCacheReadTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCacheReadTokens(v)
		return nil
	case executionsession.FieldCacheCreationTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCacheCreationTokens(v)
		return nil
	case executionsession.FieldAPICalls:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAPICalls(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(executionsession.FieldErrorMessage) {
		fields = append(fields, executionsession.FieldErrorMessage)
	}
	if m.FieldCleared(executionsession.FieldEndedAt) {
		fields = append(fields, executionsession.FieldEndedAt)
	}
	if m.FieldCleared(executionsession.FieldLastOutputAt) {
		fields = append(fields, executionsession.FieldLastOutputAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionSessionMutation) ClearField(name string) error {
	switch name {
	case executionsession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case executionsession.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case executionsession.FieldLastOutputAt:
		m.ClearLastOutputAt()
		return nil
	}
	return fmt.Errorf("unknown ExecutionSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionSessionMutation) ResetField(name string) error {
	switch name {
	case executionsession.FieldTicketID:
		m.ResetTicketID()
		return nil
	case executionsession.FieldStatus:
		m.ResetStatus()
		return nil
	case executionsession.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case executionsession.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case executionsession.FieldCacheReadTokens:
		m.ResetCacheReadTokens()
		return nil
	case executionsession.FieldCacheCreationTokens:
		m.ResetCacheCreationTokens()
		return nil
	case executionsession.FieldAPICalls:
		m.ResetAPICalls()
		return nil
	case executionsession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case executionsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case executionsession.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case executionsession.FieldLastOutputAt:
		m.ResetLastOutputAt()
		return nil
	}
	return fmt.Errorf("unknown ExecutionSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.ticket != nil {
		edges = append(edges, executionsession.EdgeTicket)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case executionsession.EdgeTicket:
		if id := m.ticket; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedticket {
		edges = append(edges, executionsession.EdgeTicket)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case executionsession.EdgeTicket:
		return m.clearedticket
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionSessionMutation) ClearEdge(name string) error {
	switch name {
	case executionsession.EdgeTicket:
		m.ClearTicket()
		return nil
	}
	return fmt.Errorf("unknown ExecutionSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionSessionMutation) ResetEdge(name string) error {
	switch name {
	case executionsession.EdgeTicket:
		m.ResetTicket()
		return nil
	}
	return fmt.Errorf("unknown ExecutionSession edge %s", name)
}

// ExtractionMutation represents an operation that mutates the Extraction nodes in the graph.
type ExtractionMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	from_message_id    *int
	addfrom_message_id *int
	to_message_id      *int
	addto_message_id   *int
	decisions          *string
	problems_solved    *string
	files_modified     *string
	tests_status       *string
	error_patterns     *string
	important_notes    *string
	tokens_before      *int
	addtokens_before   *int
	tokens_after       *int
	addtokens_after    *int
	created_at         *time.Time
	clearedFields      map[string]struct{}
	ticket             *int
	clearedticket      bool
	done               bool
	oldValue           func(context.Context) (*Extraction, error)
	predicates         []predicate.Extraction
}

var _ ent.Mutation = (*ExtractionMutation)(nil)

// extractionOption allows management of the mutation configuration using functional options.
type extractionOption func(*ExtractionMutation)

// newExtractionMutation creates new mutation for the Extraction entity.
func newExtractionMutation(c config, op Op, opts ...extractionOption) *ExtractionMutation {
	m := &ExtractionMutation{
		config:        c,
		op:            op,
		typ:           TypeExtraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionID sets the ID field of the mutation.
func withExtractionID(id int) extractionOption {
	return func(m *ExtractionMutation) {
		var (
			err   error
			once  sync.Once
			value *Extraction
		)
		m.oldValue = func(ctx context.Context) (*Extraction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Extraction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtraction sets the old Extraction of the mutation.
func withExtraction(node *Extraction) extractionOption {
	return func(m *ExtractionMutation) {
		m.oldValue = func(context.Context) (*Extraction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Extraction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTicketID sets the "ticket_id" field.
func (m *ExtractionMutation) SetTicketID(i int) {
	m.ticket = &i
}

// TicketID returns the value of the "ticket_id" field in the mutation.
func (m *ExtractionMutation) TicketID() (r int, exists bool) {
	v := m.ticket
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketID returns the old "ticket_id" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldTicketID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketID: %w", err)
	}
	return oldValue.TicketID, nil
}

// ResetTicketID resets all changes to the "ticket_id" field.
func (m *ExtractionMutation) ResetTicketID() {
	m.ticket = nil
}

// SetFromMessageID sets the "from_message_id" field.
func (m *ExtractionMutation) SetFromMessageID(i int) {
	m.from_message_id = &i
	m.addfrom_message_id = nil
}

// FromMessageID returns the value of the "from_message_id" field in the mutation.
func (m *ExtractionMutation) FromMessageID() (r int, exists bool) {
	v := m.from_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFromMessageID returns the old "from_message_id" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldFromMessageID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromMessageID: %w", err)
	}
	return oldValue.FromMessageID, nil
}

// AddFromMessageID adds i to the "from_message_id" field.
func (m *ExtractionMutation) AddFromMessageID(i int) {
	if m.addfrom_message_id != nil {
		*m.addfrom_message_id += i
	} else {
		m.addfrom_message_id = &i
	}
}

// AddedFromMessageID returns the value that was added to the "from_message_id" field in this mutation.
func (m *ExtractionMutation) AddedFromMessageID() (r int, exists bool) {
	v := m.addfrom_message_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetFromMessageID resets all changes to the "from_message_id" field.
func (m *ExtractionMutation) ResetFromMessageID() {
	m.from_message_id = nil
	m.addfrom_message_id = nil
}

// SetToMessageID sets the "to_message_id" field.
func (m *ExtractionMutation) SetToMessageID(i int) {
	m.to_message_id = &i
	m.addto_message_id = nil
}

// ToMessageID returns the value of the "to_message_id" field in the mutation.
func (m *ExtractionMutation) ToMessageID() (r int, exists bool) {
	v := m.to_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldToMessageID returns the old "to_message_id" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldToMessageID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToMessageID: %w", err)
	}
	return oldValue.ToMessageID, nil
}

// AddToMessageID adds i to the "to_message_id" field.
func (m *ExtractionMutation) AddToMessageID(i int) {
	if m.addto_message_id != nil {
		*m.addto_message_id += i
	} else {
		m.addto_message_id = &i
	}
}

// AddedToMessageID returns the value that was added to the "to_message_id" field in this mutation.
func (m *ExtractionMutation) AddedToMessageID() (r int, exists bool) {
	v := m.addto_message_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetToMessageID resets all changes to the "to_message_id" field.
func (m *ExtractionMutation) ResetToMessageID() {
	m.to_message_id = nil
	m.addto_message_id = nil
}

// SetDecisions sets the "decisions" field.
func (m *ExtractionMutation) SetDecisions(s string) {
	m.decisions = &s
}

// Decisions returns the value of the "decisions" field in the mutation.
func (m *ExtractionMutation) Decisions() (r string, exists bool) {
	v := m.decisions
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisions returns the old "decisions" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldDecisions(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisions: %w", err)
	}
	return oldValue.Decisions, nil
}

// ClearDecisions clears the value of the "decisions" field.
func (m *ExtractionMutation) ClearDecisions() {
	m.decisions = nil
	m.clearedFields[extraction.FieldDecisions] = struct{}{}
}

// DecisionsCleared returns if the "decisions" field was cleared in this mutation.
func (m *ExtractionMutation) DecisionsCleared() bool {
	_, ok := m.clearedFields[extraction.FieldDecisions]
	return ok
}

// ResetDecisions resets all changes to the "decisions" field.
func (m *ExtractionMutation) ResetDecisions() {
	m.decisions = nil
	delete(m.clearedFields, extraction.FieldDecisions)
}

// SetProblemsSolved sets the "problems_solved" field.
func (m *ExtractionMutation) SetProblemsSolved(s string) {
	m.problems_solved = &s
}

// ProblemsSolved returns the value of the "problems_solved" field in the mutation.
func (m *ExtractionMutation) ProblemsSolved() (r string, exists bool) {
	v := m.problems_solved
	if v == nil {
		return
	}
	return *v, true
}

// OldProblemsSolved returns the old "problems_solved" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldProblemsSolved(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProblemsSolved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProblemsSolved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProblemsSolved: %w", err)
	}
	return oldValue.ProblemsSolved, nil
}

// ClearProblemsSolved clears the value of the "problems_solved" field.
func (m *ExtractionMutation) ClearProblemsSolved() {
	m.problems_solved = nil
	m.clearedFields[extraction.FieldProblemsSolved] = struct{}{}
}

// ProblemsSolvedCleared returns if the "problems_solved" field was cleared in this mutation.
func (m *ExtractionMutation) ProblemsSolvedCleared() bool {
	_, ok := m.clearedFields[extraction.FieldProblemsSolved]
	return ok
}

// ResetProblemsSolved resets all changes to the "problems_solved" field.
func (m *ExtractionMutation) ResetProblemsSolved() {
	m.problems_solved = nil
	delete(m.clearedFields, extraction.FieldProblemsSolved)
}

// SetFilesModified sets the "files_modified" field.
func (m *ExtractionMutation) SetFilesModified(s string) {
	m.files_modified = &s
}

// FilesModified returns the value of the "files_modified" field in the mutation.
func (m *ExtractionMutation) FilesModified() (r string, exists bool) {
	v := m.files_modified
	if v == nil {
		return
	}
	return *v, true
}

// OldFilesModified returns the old "files_modified" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldFilesModified(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilesModified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilesModified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilesModified: %w", err)
	}
	return oldValue.FilesModified, nil
}

// ClearFilesModified clears the value of the "files_modified" field.
func (m *ExtractionMutation) ClearFilesModified() {
	m.files_modified = nil
	m.clearedFields[extraction.FieldFilesModified] = struct{}{}
}

// FilesModifiedCleared returns if the "files_modified" field was cleared in this mutation.
func (m *ExtractionMutation) FilesModifiedCleared() bool {
	_, ok := m.clearedFields[extraction.FieldFilesModified]
	return ok
}

// ResetFilesModified resets all changes to the "files_modified" field.
func (m *ExtractionMutation) ResetFilesModified() {
	m.files_modified = nil
	delete(m.clearedFields, extraction.FieldFilesModified)
}

// SetTestsStatus sets the "tests_status" field.
func (m *ExtractionMutation) SetTestsStatus(s string) {
	m.tests_status = &s
}

// TestsStatus returns the value of the "tests_status" field in the mutation.
func (m *ExtractionMutation) TestsStatus() (r string, exists bool) {
	v := m.tests_status
	if v == nil {
		return
	}
	return *v, true
}

// OldTestsStatus returns the old "tests_status" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldTestsStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestsStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestsStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestsStatus: %w", err)
	}
	return oldValue.TestsStatus, nil
}

// ClearTestsStatus clears the value of the "tests_status" field.
func (m *ExtractionMutation) ClearTestsStatus() {
	m.tests_status = nil
	m.clearedFields[extraction.FieldTestsStatus] = struct{}{}
}

// TestsStatusCleared returns if the "tests_status" field was cleared in this mutation.
func (m *ExtractionMutation) TestsStatusCleared() bool {
	_, ok := m.clearedFields[extraction.FieldTestsStatus]
	return ok
}

// ResetTestsStatus resets all changes to the "tests_status" field.
func (m *ExtractionMutation) ResetTestsStatus() {
	m.tests_status = nil
	delete(m.clearedFields, extraction.FieldTestsStatus)
}

// SetErrorPatterns sets the "error_patterns" field.
func (m *ExtractionMutation) SetErrorPatterns(s string) {
	m.error_patterns = &s
}

// ErrorPatterns returns the value of the "error_patterns" field in the mutation.
func (m *ExtractionMutation) ErrorPatterns() (r string, exists bool) {
	v := m.error_patterns
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorPatterns returns the old "error_patterns" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldErrorPatterns(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorPatterns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorPatterns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorPatterns: %w", err)
	}
	return oldValue.ErrorPatterns, nil
}

// ClearErrorPatterns clears the value of the "error_patterns" field.
func (m *ExtractionMutation) ClearErrorPatterns() {
	m.error_patterns = nil
	m.clearedFields[extraction.FieldErrorPatterns] = struct{}{}
}

// ErrorPatternsCleared returns if the "error_patterns" field was cleared in this mutation.
func (m *ExtractionMutation) ErrorPatternsCleared() bool {
	_, ok := m.clearedFields[extraction.FieldErrorPatterns]
	return ok
}

// ResetErrorPatterns resets all changes to the "error_patterns" field.
func (m *ExtractionMutation) ResetErrorPatterns() {
	m.error_patterns = nil
	delete(m.clearedFields, extraction.FieldErrorPatterns)
}

// SetImportantNotes sets the "important_notes" field.
func (m *ExtractionMutation) SetImportantNotes(s string) {
	m.important_notes = &s
}

// ImportantNotes returns the value of the "important_notes" field in the mutation.
func (m *ExtractionMutation) ImportantNotes() (r string, exists bool) {
	v := m.important_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldImportantNotes returns the old "important_notes" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldImportantNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportantNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportantNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportantNotes: %w", err)
	}
	return oldValue.ImportantNotes, nil
}

// ClearImportantNotes clears the value of the "important_notes" field.
func (m *ExtractionMutation) ClearImportantNotes() {
	m.important_notes = nil
	m.clearedFields[extraction.FieldImportantNotes] = struct{}{}
}

// ImportantNotesCleared returns if the "important_notes" field was cleared in this mutation.
func (m *ExtractionMutation) ImportantNotesCleared() bool {
	_, ok := m.clearedFields[extraction.FieldImportantNotes]
	return ok
}

// ResetImportantNotes resets all changes to the "important_notes" field.
func (m *ExtractionMutation) ResetImportantNotes() {
	m.important_notes = nil
	delete(m.clearedFields, extraction.FieldImportantNotes)
}

// SetTokensBefore sets the "tokens_before" field.
func (m *ExtractionMutation) SetTokensBefore(i int) {
	m.tokens_before = &i
	m.addtokens_before = nil
}

// TokensBefore returns the value of the "tokens_before" field in the mutation.
func (m *ExtractionMutation) TokensBefore() (r int, exists bool) {
	v := m.tokens_before
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensBefore returns the old "tokens_before" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldTokensBefore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensBefore: %w", err)
	}
	return oldValue.TokensBefore, nil
}

// AddTokensBefore adds i to the "tokens_before" field.
func (m *ExtractionMutation) AddTokensBefore(i int) {
	if m.addtokens_before != nil {
		*m.addtokens_before += i
	} else {
		m.addtokens_before = &i
	}
}

// AddedTokensBefore returns the value that was added to the "tokens_before" field in this mutation.
func (m *ExtractionMutation) AddedTokensBefore() (r int, exists bool) {
	v := m.addtokens_before
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensBefore resets all changes to the "tokens_before" field.
func (m *ExtractionMutation) ResetTokensBefore() {
	m.tokens_before = nil
	m.addtokens_before = nil
}

// SetTokensAfter sets the "tokens_after" field.
func (m *ExtractionMutation) SetTokensAfter(i int) {
	m.tokens_after = &i
	m.addtokens_after = nil
}

// TokensAfter returns the value of the "tokens_after" field in the mutation.
func (m *ExtractionMutation) TokensAfter() (r int, exists bool) {
	v := m.tokens_after
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensAfter returns the old "tokens_after" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldTokensAfter(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensAfter: %w", err)
	}
	return oldValue.TokensAfter, nil
}

// AddTokensAfter adds i to the "tokens_after" field.
func (m *ExtractionMutation) AddTokensAfter(i int) {
	if m.addtokens_after != nil {
		*m.addtokens_after += i
	} else {
		m.addtokens_after = &i
	}
}

// AddedTokensAfter returns the value that was added to the "tokens_after" field in this mutation.
func (m *ExtractionMutation) AddedTokensAfter() (r int, exists bool) {
	v := m.addtokens_after
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensAfter resets all changes to the "tokens_after" field.
func (m *ExtractionMutation) ResetTokensAfter() {
	m.tokens_after = nil
	m.addtokens_after = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ExtractionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTicket clears the "ticket" edge to the Ticket entity.
func (m *ExtractionMutation) ClearTicket() {
	m.clearedticket = true
	m.clearedFields[extraction.FieldTicketID] = struct{}{}
}

// TicketCleared reports if the "ticket" edge to the Ticket entity was cleared.
func (m *ExtractionMutation) TicketCleared() bool {
	return m.clearedticket
}

// TicketIDs returns the "ticket" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TicketID instead. It exists only for internal usage by the builders.
func (m *ExtractionMutation) TicketIDs() (ids []int) {
	if id := m.ticket; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTicket resets all changes to the "ticket" edge.
func (m *ExtractionMutation) ResetTicket() {
	m.ticket = nil
	m.clearedticket = false
}

// Where appends a list predicates to the ExtractionMutation builder.
func (m *ExtractionMutation) Where(ps ...predicate.Extraction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Extraction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Extraction).
func (m *ExtractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.ticket != nil {
		fields = append(fields, extraction.FieldTicketID)
	}
	if m.from_message_id != nil {
		fields = append(fields, extraction.FieldFromMessageID)
	}
	if m.to_message_id != nil {
		fields = append(fields, extraction.FieldToMessageID)
	}
	if m.decisions != nil {
		fields = append(fields, extraction.FieldDecisions)
	}
	if m.problems_solved != nil {
		fields = append(fields, extraction.FieldProblemsSolved)
	}
	if m.files_modified != nil {
		fields = append(fields, extraction.FieldFilesModified)
	}
	if m.tests_status != nil {
		fields = append(fields, extraction.FieldTestsStatus)
	}
	if m.error_patterns != nil {
		fields = append(fields, extraction.FieldErrorPatterns)
	}
	if m.important_notes != nil {
		fields = append(fields, extraction.FieldImportantNotes)
	}
	if m.tokens_before != nil {
		fields = append(fields, extraction.FieldTokensBefore)
	}
	if m.tokens_after != nil {
		fields = append(fields, extraction.FieldTokensAfter)
	}
	if m.created_at != nil {
		fields = append(fields, extraction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extraction.FieldTicketID:
		return m.TicketID()
	case extraction.FieldFromMessageID:
		return m.FromMessageID()
	case extraction.FieldToMessageID:
		return m.ToMessageID()
	case extraction.FieldDecisions:
		return m.Decisions()
	case extraction.FieldProblemsSolved:
		return m.ProblemsSolved()
	case extraction.FieldFilesModified:
		return m.FilesModified()
	case extraction.FieldTestsStatus:
		return m.TestsStatus()
	case extraction.FieldErrorPatterns:
		return m.ErrorPatterns()
	case extraction.FieldImportantNotes:
		return m.ImportantNotes()
	case extraction.FieldTokensBefore:
		return m.TokensBefore()
	case extraction.FieldTokensAfter:
		return m.TokensAfter()
	case extraction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extraction.FieldTicketID:
		return m.OldTicketID(ctx)
	case extraction.FieldFromMessageID:
		return m.OldFromMessageID(ctx)
	case extraction.FieldToMessageID:
		return m.OldToMessageID(ctx)
	case extraction.FieldDecisions:
		return m.OldDecisions(ctx)
	case extraction.FieldProblemsSolved:
		return m.OldProblemsSolved(ctx)
	case extraction.FieldFilesModified:
		return m.OldFilesModified(ctx)
	case extraction.FieldTestsStatus:
		return m.OldTestsStatus(ctx)
	case extraction.FieldErrorPatterns:
		return m.OldErrorPatterns(ctx)
	case extraction.FieldImportantNotes:
		return m.OldImportantNotes(ctx)
	case extraction.FieldTokensBefore:
		return m.OldTokensBefore(ctx)
	case extraction.FieldTokensAfter:
		return m.OldTokensAfter(ctx)
	case extraction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Extraction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extraction.FieldTicketID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketID(v)
		return nil
	case extraction.FieldFromMessageID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromMessageID(v)
		return nil
	case extraction.FieldToMessageID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToMessageID(v)
		return nil
	case extraction.FieldDecisions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisions(v)
		return nil
	case extraction.FieldProblemsSolved:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProblemsSolved(v)
		return nil
	case extraction.FieldFilesModified:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilesModified(v)
		return nil
	case extraction.FieldTestsStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestsStatus(v)
		return nil
	case extraction.FieldErrorPatterns:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorPatterns(v)
		return nil
	case extraction.FieldImportantNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportantNotes(v)
		return nil
	case extraction.FieldTokensBefore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensBefore(v)
		return nil
	case extraction.FieldTokensAfter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensAfter(v)
		return nil
	case extraction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Extraction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionMutation) AddedFields() []string {
	var fields []string
	if m.addfrom_message_id != nil {
		fields = append(fields, extraction.FieldFromMessageID)
	}
	if m.addto_message_id != nil {
		fields = append(fields, extraction.FieldToMessageID)
	}
	if m.addtokens_before != nil {
		fields = append(fields, extraction.FieldTokensBefore)
	}
	if m.addtokens_after != nil {
		fields = append(fields, extraction.FieldTokensAfter)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extraction.FieldFromMessageID:
		return m.AddedFromMessageID()
	case extraction.FieldToMessageID:
		return m.AddedToMessageID()
	case extraction.FieldTokensBefore:
		return m.AddedTokensBefore()
	case extraction.FieldTokensAfter:
		return m.AddedTokensAfter()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extraction.FieldFromMessageID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFromMessageID(v)
		return nil
	case extraction.FieldToMessageID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddToMessageID(v)
		return nil
	case extraction.FieldTokensBefore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensBefore(v)
		return nil
	case extraction.FieldTokensAfter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensAfter(v)
		return nil
	}
	return fmt.Errorf("unknown Extraction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extraction.FieldDecisions) {
		fields = append(fields, extraction.FieldDecisions)
	}
	if m.FieldCleared(extraction.FieldProblemsSolved) {
		fields = append(fields, extraction.FieldProblemsSolved)
	}
	if m.FieldCleared(extraction.FieldFilesModified) {
		fields = append(fields, extraction.FieldFilesModified)
	}
	if m.FieldCleared(extraction.FieldTestsStatus) {
		fields = append(fields, extraction.FieldTestsStatus)
	}
	if m.FieldCleared(extraction.FieldErrorPatterns) {
		fields = append(fields, extraction.FieldErrorPatterns)
	}
	if m.FieldCleared(extraction.FieldImportantNotes) {
		fields = append(fields, extraction.FieldImportantNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionMutation) ClearField(name string) error {
	switch name {
	case extraction.FieldDecisions:
		m.ClearDecisions()
		return nil
	case extraction.FieldProblemsSolved:
		m.ClearProblemsSolved()
		return nil
	case extraction.FieldFilesModified:
		m.ClearFilesModified()
		return nil
	case extraction.FieldTestsStatus:
		m.ClearTestsStatus()
		return nil
	case extraction.FieldErrorPatterns:
		m.ClearErrorPatterns()
		return nil
	case extraction.FieldImportantNotes:
		m.ClearImportantNotes()
		return nil
	}
	return fmt.Errorf("unknown Extraction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionMutation) ResetField(name string) error {
	switch name {
	case extraction.FieldTicketID:
		m.ResetTicketID()
		return nil
	case extraction.FieldFromMessageID:
		m.ResetFromMessageID()
		return nil
	case extraction.FieldToMessageID:
		m.ResetToMessageID()
		return nil
	case extraction.FieldDecisions:
		m.ResetDecisions()
		return nil
	case extraction.FieldProblemsSolved:
		m.ResetProblemsSolved()
		return nil
	case extraction.FieldFilesModified:
		m.ResetFilesModified()
		return nil
	case extraction.FieldTestsStatus:
		m.ResetTestsStatus()
		return nil
	case extraction.FieldErrorPatterns:
		m.ResetErrorPatterns()
		return nil
	case extraction.FieldImportantNotes:
		m.ResetImportantNotes()
		return nil
	case extraction.FieldTokensBefore:
		m.ResetTokensBefore()
		return nil
	case extraction.FieldTokensAfter:
		m.ResetTokensAfter()
		return nil
	case extraction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Extraction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.ticket != nil {
		edges = append(edges, extraction.EdgeTicket)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extraction.EdgeTicket:
		if id := m.ticket; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedticket {
		edges = append(edges, extraction.EdgeTicket)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionMutation) EdgeCleared(name string) bool {
	switch name {
	case extraction.EdgeTicket:
		return m.clearedticket
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionMutation) ClearEdge(name string) error {
	switch name {
	case extraction.EdgeTicket:
		m.ClearTicket()
		return nil
	}
	return fmt.Errorf("unknown Extraction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionMutation) ResetEdge(name string) error {
	switch name {
	case extraction.EdgeTicket:
		m.ResetTicket()
		return nil
	}
	return fmt.Errorf("unknown Extraction edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op             Op
	typ            string
	id             *int
	role           *message.Role
	content        *string
	tool_name      *string
	tool_input     *string
	token_count    *int
	addtoken_count *int
	is_summarized  *bool
	created_at     *time.Time
	clearedFields  map[string]struct{}
	ticket         *int
	clearedticket  bool
	done           bool
	oldValue       func(context.Context) (*Message, error)
	predicates     []predicate.Message
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
func withMessageID(id int) messageOption {
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

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTicketID sets the "ticket_id" field.
func (m *MessageMutation) SetTicketID(i int) {
	m.ticket = &i
}

// TicketID returns the value of the "ticket_id" field in the mutation.
func (m *MessageMutation) TicketID() (r int, exists bool) {
	v := m.ticket
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketID returns the old "ticket_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldTicketID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketID: %w", err)
	}
	return oldValue.TicketID, nil
}

// ResetTicketID resets all changes to the "ticket_id" field.
func (m *MessageMutation) ResetTicketID() {
	m.ticket = nil
}

// SetRole sets the "role" field.
func (m *MessageMutation) SetRole(value message.Role) {
	m.role = &value
}

// Role returns the value of the "role" field in the mutation.
func (m *MessageMutation) Role() (r message.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRole(ctx context.Context) (v message.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *MessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetToolName sets the "tool_name" field.
func (m *MessageMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *MessageMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldToolName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ClearToolName clears the value of the "tool_name" field.
func (m *MessageMutation) ClearToolName() {
	m.tool_name = nil
	m.clearedFields[message.FieldToolName] = struct{}{}
}

// ToolNameCleared returns if the "tool_name" field was cleared in this mutation.
func (m *MessageMutation) ToolNameCleared() bool {
	_, ok := m.clearedFields[message.FieldToolName]
	return ok
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *MessageMutation) ResetToolName() {
	m.tool_name = nil
	delete(m.clearedFields, message.FieldToolName)
}

// SetToolInput sets the "tool_input" field.
func (m *MessageMutation) SetToolInput(s string) {
	m.tool_input = &s
}

// ToolInput returns the value of the "tool_input" field in the mutation.
func (m *MessageMutation) ToolInput() (r string, exists bool) {
	v := m.tool_input
	if v == nil {
		return
	}
	return *v, true
}

// OldToolInput returns the old "tool_input" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldToolInput(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolInput: %w", err)
	}
	return oldValue.ToolInput, nil
}

// ClearToolInput clears the value of the "tool_input" field.
func (m *MessageMutation) ClearToolInput() {
	m.tool_input = nil
	m.clearedFields[message.FieldToolInput] = struct{}{}
}

// ToolInputCleared returns if the "tool_input" field was cleared in this mutation.
func (m *MessageMutation) ToolInputCleared() bool {
	_, ok := m.clearedFields[message.FieldToolInput]
	return ok
}

// ResetToolInput resets all changes to the "tool_input" field.
func (m *MessageMutation) ResetToolInput() {
	m.tool_input = nil
	delete(m.clearedFields, message.FieldToolInput)
}

// SetTokenCount sets the "token_count" field.
func (m *MessageMutation) SetTokenCount(i int) {
	m.token_count = &i
	m.addtoken_count = nil
}

// TokenCount returns the value of the "token_count" field in the mutation.
func (m *MessageMutation) TokenCount() (r int, exists bool) {
	v := m.token_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenCount returns the old "token_count" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldTokenCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenCount: %w", err)
	}
	return oldValue.TokenCount, nil
}

// AddTokenCount adds i to the "token_count" field.
func (m *MessageMutation) AddTokenCount(i int) {
	if m.addtoken_count != nil {
		*m.addtoken_count += i
	} else {
		m.addtoken_count = &i
	}
}

// AddedTokenCount returns the value that was added to the "token_count" field in this mutation.
func (m *MessageMutation) AddedTokenCount() (r int, exists bool) {
	v := m.addtoken_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokenCount resets all changes to the "token_count" field.
func (m *MessageMutation) ResetTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
}

// SetIsSummarized sets the "is_summarized" field.
func (m *MessageMutation) SetIsSummarized(b bool) {
	m.is_summarized = &b
}

// IsSummarized returns the value of the "is_summarized" field in the mutation.
func (m *MessageMutation) IsSummarized() (r bool, exists bool) {
	v := m.is_summarized
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSummarized returns the old "is_summarized" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldIsSummarized(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSummarized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSummarized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSummarized: %w", err)
	}
	return oldValue.IsSummarized, nil
}

// ResetIsSummarized resets all changes to the "is_summarized" field.
func (m *MessageMutation) ResetIsSummarized() {
	m.is_summarized = nil
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

// ClearTicket clears the "ticket" edge to the Ticket entity.
func (m *MessageMutation) ClearTicket() {
	m.clearedticket = true
	m.clearedFields[message.FieldTicketID] = struct{}{}
}

// TicketCleared reports if the "ticket" edge to the Ticket entity was cleared.
func (m *MessageMutation) TicketCleared() bool {
	return m.clearedticket
}

// TicketIDs returns the "ticket" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TicketID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) TicketIDs() (ids []int) {
	if id := m.ticket; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTicket resets all changes to the "ticket" edge.
func (m *MessageMutation) ResetTicket() {
	m.ticket = nil
	m.clearedticket = false
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
	if m.ticket != nil {
		fields = append(fields, message.FieldTicketID)
	}
	if m.role != nil {
		fields = append(fields, message.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.tool_name != nil {
		fields = append(fields, message.FieldToolName)
	}
	if m.tool_input != nil {
		fields = append(fields, message.FieldToolInput)
	}
	if m.token_count != nil {
		fields = append(fields, message.FieldTokenCount)
	}
	if m.is_summarized != nil {
		fields = append(fields, message.FieldIsSummarized)
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
	case message.FieldTicketID:
		return m.TicketID()
	case message.FieldRole:
		return m.Role()
	case message.FieldContent:
		return m.Content()
	case message.FieldToolName:
		return m.ToolName()
	case message.FieldToolInput:
		return m.ToolInput()
	case message.FieldTokenCount:
		return m.TokenCount()
	case message.FieldIsSummarized:
		return m.IsSummarized()
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
	case message.FieldTicketID:
		return m.OldTicketID(ctx)
	case message.FieldRole:
		return m.OldRole(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldToolName:
		return m.OldToolName(ctx)
	case message.FieldToolInput:
		return m.OldToolInput(ctx)
	case message.FieldTokenCount:
		return m.OldTokenCount(ctx)
	case message.FieldIsSummarized:
		return m.OldIsSummarized(ctx)
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
	case message.FieldTicketID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketID(v)
		return nil
	case message.FieldRole:
		v, ok := value.(message.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case message.FieldToolInput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolInput(v)
		return nil
	case message.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenCount(v)
		return nil
	case message.FieldIsSummarized:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSummarized(v)
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
	var fields []string
	if m.addtoken_count != nil {
		fields = append(fields, message.FieldTokenCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case message.FieldTokenCount:
		return m.AddedTokenCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case message.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenCount(v)
		return nil
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldToolName) {
		fields = append(fields, message.FieldToolName)
	}
	if m.FieldCleared(message.FieldToolInput) {
		fields = append(fields, message.FieldToolInput)
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
	case message.FieldToolName:
		m.ClearToolName()
		return nil
	case message.FieldToolInput:
		m.ClearToolInput()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldTicketID:
		m.ResetTicketID()
		return nil
	case message.FieldRole:
		m.ResetRole()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldToolName:
		m.ResetToolName()
		return nil
	case message.FieldToolInput:
		m.ResetToolInput()
		return nil
	case message.FieldTokenCount:
		m.ResetTokenCount()
		return nil
	case message.FieldIsSummarized:
		m.ResetIsSummarized()
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
	if m.ticket != nil {
		edges = append(edges, message.EdgeTicket)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeTicket:
		if id := m.ticket; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedticket {
		edges = append(edges, message.EdgeTicket)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeTicket:
		return m.clearedticket
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeTicket:
		m.ClearTicket()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeTicket:
		m.ResetTicket()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	code                   *string
	name                   *string
	web_path               *string
	app_path               *string
	default_execution_mode *project.DefaultExecutionMode
	model_tier             *project.ModelTier
	git_enabled            *bool
	archived               *bool
	knowledge              *string
	map_content            *string
	map_generated_at       *time.Time
	next_ticket_seq        *int
	addnext_ticket_seq     *int
	total_input_tokens     *int64
	addtotal_input_tokens  *int64
	total_output_tokens    *int64
	addtotal_output_tokens *int64
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	tickets                map[int]struct{}
	removedtickets         map[int]struct{}
	clearedtickets         bool
	done                   bool
	oldValue               func(context.Context) (*Project, error)
	predicates             []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id int) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCode sets the "code" field.
func (m *ProjectMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *ProjectMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *ProjectMutation) ResetCode() {
	m.code = nil
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetWebPath sets the "web_path" field.
func (m *ProjectMutation) SetWebPath(s string) {
	m.web_path = &s
}

// WebPath returns the value of the "web_path" field in the mutation.
func (m *ProjectMutation) WebPath() (r string, exists bool) {
	v := m.web_path
	if v == nil {
		return
	}
	return *v, true
}

// OldWebPath returns the old "web_path" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldWebPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebPath: %w", err)
	}
	return oldValue.WebPath, nil
}

// ClearWebPath clears the value of the "web_path" field.
func (m *ProjectMutation) ClearWebPath() {
	m.web_path = nil
	m.clearedFields[project.FieldWebPath] = struct{}{}
}

// WebPathCleared returns if the "web_path" field was cleared in this mutation.
func (m *ProjectMutation) WebPathCleared() bool {
	_, ok := m.clearedFields[project.FieldWebPath]
	return ok
}

// ResetWebPath resets all changes to the "web_path" field.
func (m *ProjectMutation) ResetWebPath() {
	m.web_path = nil
	delete(m.clearedFields, project.FieldWebPath)
}

// SetAppPath sets the "app_path" field.
func (m *ProjectMutation) SetAppPath(s string) {
	m.app_path = &s
}

// AppPath returns the value of the "app_path" field in the mutation.
func (m *ProjectMutation) AppPath() (r string, exists bool) {
	v := m.app_path
	if v == nil {
		return
	}
	return *v, true
}

// OldAppPath returns the old "app_path" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldAppPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppPath: %w", err)
	}
	return oldValue.AppPath, nil
}

// ClearAppPath clears the value of the "app_path" field.
func (m *ProjectMutation) ClearAppPath() {
	m.app_path = nil
	m.clearedFields[project.FieldAppPath] = struct{}{}
}

// AppPathCleared returns if the "app_path" field was cleared in this mutation.
func (m *ProjectMutation) AppPathCleared() bool {
	_, ok := m.clearedFields[project.FieldAppPath]
	return ok
}

// ResetAppPath resets all changes to the "app_path" field.
func (m *ProjectMutation) ResetAppPath() {
	m.app_path = nil
	delete(m.clearedFields, project.FieldAppPath)
}

// SetDefaultExecutionMode sets the "default_execution_mode" field.
func (m *ProjectMutation) SetDefaultExecutionMode(pem project.DefaultExecutionMode) {
	m.default_execution_mode = &pem
}

// DefaultExecutionMode returns the value of the "default_execution_mode" field in the mutation.
func (m *ProjectMutation) DefaultExecutionMode() (r project.DefaultExecutionMode, exists bool) {
	v := m.default_execution_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultExecutionMode returns the old "default_execution_mode" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDefaultExecutionMode(ctx context.Context) (v project.DefaultExecutionMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultExecutionMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultExecutionMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultExecutionMode: %w", err)
	}
	return oldValue.DefaultExecutionMode, nil
}

// ResetDefaultExecutionMode resets all changes to the "default_execution_mode" field.
func (m *ProjectMutation) ResetDefaultExecutionMode() {
	m.default_execution_mode = nil
}

// SetModelTier sets the "model_tier" field.
func (m *ProjectMutation) SetModelTier(pt project.ModelTier) {
	m.model_tier = &pt
}

// ModelTier returns the value of the "model_tier" field in the mutation.
func (m *ProjectMutation) ModelTier() (r project.ModelTier, exists bool) {
	v := m.model_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldModelTier returns the old "model_tier" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldModelTier(ctx context.Context) (v project.ModelTier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelTier: %w", err)
	}
	return oldValue.ModelTier, nil
}

// ResetModelTier resets all changes to the "model_tier" field.
func (m *ProjectMutation) ResetModelTier() {
	m.model_tier = nil
}

// SetGitEnabled sets the "git_enabled" field.
func (m *ProjectMutation) SetGitEnabled(b bool) {
	m.git_enabled = &b
}

// GitEnabled returns the value of the "git_enabled" field in the mutation.
func (m *ProjectMutation) GitEnabled() (r bool, exists bool) {
	v := m.git_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldGitEnabled returns the old "git_enabled" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldGitEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGitEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGitEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGitEnabled: %w", err)
	}
	return oldValue.GitEnabled, nil
}

// ResetGitEnabled resets all changes to the "git_enabled" field.
func (m *ProjectMutation) ResetGitEnabled() {
	m.git_enabled = nil
}

// SetArchived sets the "archived" field.
func (m *ProjectMutation) SetArchived(b bool) {
	m.archived = &b
}

// Archived returns the value of the "archived" field in the mutation.
func (m *ProjectMutation) Archived() (r bool, exists bool) {
	v := m.archived
	if v == nil {
		return
	}
	return *v, true
}

// OldArchived returns the old "archived" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldArchived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchived: %w", err)
	}
	return oldValue.Archived, nil
}

// ResetArchived resets all changes to the "archived" field.
func (m *ProjectMutation) ResetArchived() {
	m.archived = nil
}

// SetKnowledge sets the "knowledge" field.
func (m *ProjectMutation) SetKnowledge(s string) {
	m.knowledge = &s
}

// Knowledge returns the value of the "knowledge" field in the mutation.
func (m *ProjectMutation) Knowledge() (r string, exists bool) {
	v := m.knowledge
	if v == nil {
		return
	}
	return *v, true
}

// OldKnowledge returns the old "knowledge" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldKnowledge(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKnowledge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKnowledge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKnowledge: %w", err)
	}
	return oldValue.Knowledge, nil
}

// ClearKnowledge clears the value of the "knowledge" field.
func (m *ProjectMutation) ClearKnowledge() {
	m.knowledge = nil
	m.clearedFields[project.FieldKnowledge] = struct{}{}
}

// KnowledgeCleared returns if the "knowledge" field was cleared in this mutation.
func (m *ProjectMutation) KnowledgeCleared() bool {
	_, ok := m.clearedFields[project.FieldKnowledge]
	return ok
}

// ResetKnowledge resets all changes to the "knowledge" field.
func (m *ProjectMutation) ResetKnowledge() {
	m.knowledge = nil
	delete(m.clearedFields, project.FieldKnowledge)
}

// SetMapContent sets the "map_content" field.
func (m *ProjectMutation) SetMapContent(s string) {
	m.map_content = &s
}

// MapContent returns the value of the "map_content" field in the mutation.
func (m *ProjectMutation) MapContent() (r string, exists bool) {
	v := m.map_content
	if v == nil {
		return
	}
	return *v, true
}

// OldMapContent returns the old "map_content" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldMapContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMapContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMapContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMapContent: %w", err)
	}
	return oldValue.MapContent, nil
}

// ClearMapContent clears the value of the "map_content" field.
func (m *ProjectMutation) ClearMapContent() {
	m.map_content = nil
	m.clearedFields[project.FieldMapContent] = struct{}{}
}

// MapContentCleared returns if the "map_content" field was cleared in this mutation.
func (m *ProjectMutation) MapContentCleared() bool {
	_, ok := m.clearedFields[project.FieldMapContent]
	return ok
}

// ResetMapContent resets all changes to the "map_content" field.
func (m *ProjectMutation) ResetMapContent() {
	m.map_content = nil
	delete(m.clearedFields, project.FieldMapContent)
}

// SetMapGeneratedAt sets the "map_generated_at" field.
func (m *ProjectMutation) SetMapGeneratedAt(t time.Time) {
	m.map_generated_at = &t
}

// MapGeneratedAt returns the value of the "map_generated_at" field in the mutation.
func (m *ProjectMutation) MapGeneratedAt() (r time.Time, exists bool) {
	v := m.map_generated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldMapGeneratedAt returns the old "map_generated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldMapGeneratedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMapGeneratedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMapGeneratedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMapGeneratedAt: %w", err)
	}
	return oldValue.MapGeneratedAt, nil
}

// ClearMapGeneratedAt clears the value of the "map_generated_at" field.
func (m *ProjectMutation) ClearMapGeneratedAt() {
	m.map_generated_at = nil
	m.clearedFields[project.FieldMapGeneratedAt] = struct{}{}
}

// MapGeneratedAtCleared returns if the "map_generated_at" field was cleared in this mutation.
func (m *ProjectMutation) MapGeneratedAtCleared() bool {
	_, ok := m.clearedFields[project.FieldMapGeneratedAt]
	return ok
}

// ResetMapGeneratedAt resets all changes to the "map_generated_at" field.
func (m *ProjectMutation) ResetMapGeneratedAt() {
	m.map_generated_at = nil
	delete(m.clearedFields, project.FieldMapGeneratedAt)
}

// SetNextTicketSeq sets the "next_ticket_seq" field.
func (m *ProjectMutation) SetNextTicketSeq(i int) {
	m.next_ticket_seq = &i
	m.addnext_ticket_seq = nil
}

// NextTicketSeq returns the value of the "next_ticket_seq" field in the mutation.
func (m *ProjectMutation) NextTicketSeq() (r int, exists bool) {
	v := m.next_ticket_seq
	if v == nil {
		return
	}
	return *v, true
}

// OldNextTicketSeq returns the old "next_ticket_seq" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldNextTicketSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextTicketSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextTicketSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextTicketSeq: %w", err)
	}
	return oldValue.NextTicketSeq, nil
}

// AddNextTicketSeq adds i to the "next_ticket_seq" field.
func (m *ProjectMutation) AddNextTicketSeq(i int) {
	if m.addnext_ticket_seq != nil {
		*m.addnext_ticket_seq += i
	} else {
		m.addnext_ticket_seq = &i
	}
}

// AddedNextTicketSeq returns the value that was added to the "next_ticket_seq" field in this mutation.
func (m *ProjectMutation) AddedNextTicketSeq() (r int, exists bool) {
	v := m.addnext_ticket_seq
	if v == nil {
		return
	}
	return *v, true
}

// ResetNextTicketSeq resets all changes to the "next_ticket_seq" field.
func (m *ProjectMutation) ResetNextTicketSeq() {
	m.next_ticket_seq = nil
	m.addnext_ticket_seq = nil
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (m *ProjectMutation) SetTotalInputTokens(i int64) {
	m.total_input_tokens = &i
	m.addtotal_input_tokens = nil
}

// TotalInputTokens returns the value of the "total_input_tokens" field in the mutation.
func (m *ProjectMutation) TotalInputTokens() (r int64, exists bool) {
	v := m.total_input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalInputTokens returns the old "total_input_tokens" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldTotalInputTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalInputTokens: %w", err)
	}
	return oldValue.TotalInputTokens, nil
}

// AddTotalInputTokens adds i to the "total_input_tokens" field.
func (m *ProjectMutation) AddTotalInputTokens(i int64) {
	if m.addtotal_input_tokens != nil {
		*m.addtotal_input_tokens += i
	} else {
		m.addtotal_input_tokens = &i
	}
}

// AddedTotalInputTokens returns the value that was added to the "total_input_tokens" field in this mutation.
func (m *ProjectMutation) AddedTotalInputTokens() (r int64, exists bool) {
	v := m.addtotal_input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalInputTokens resets all changes to the "total_input_tokens" field.
func (m *ProjectMutation) ResetTotalInputTokens() {
	m.total_input_tokens = nil
	m.addtotal_input_tokens = nil
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (m *ProjectMutation) SetTotalOutputTokens(i int64) {
	m.total_output_tokens = &i
	m.addtotal_output_tokens = nil
}

// TotalOutputTokens returns the value of the "total_output_tokens" field in the mutation.
func (m *ProjectMutation) TotalOutputTokens() (r int64, exists bool) {
	v := m.total_output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalOutputTokens returns the old "total_output_tokens" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldTotalOutputTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalOutputTokens: %w", err)
	}
	return oldValue.TotalOutputTokens, nil
}

// AddTotalOutputTokens adds i to the "total_output_tokens" field.
func (m *ProjectMutation) AddTotalOutputTokens(i int64) {
	if m.addtotal_output_tokens != nil {
		*m.addtotal_output_tokens += i
	} else {
		m.addtotal_output_tokens = &i
	}
}

// AddedTotalOutputTokens returns the value that was added to the "total_output_tokens" field in this mutation.
func (m *ProjectMutation) AddedTotalOutputTokens() (r int64, exists bool) {
	v := m.addtotal_output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalOutputTokens resets all changes to the "total_output_tokens" field.
func (m *ProjectMutation) ResetTotalOutputTokens() {
	m.total_output_tokens = nil
	m.addtotal_output_tokens = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddTicketIDs adds the "tickets" edge to the Ticket entity by ids.
func (m *ProjectMutation) AddTicketIDs(ids ...int) {
	if m.tickets == nil {
		m.tickets = make(map[int]struct{})
	}
	for i := range ids {
		m.tickets[ids[i]] = struct{}{}
	}
}

// ClearTickets clears the "tickets" edge to the Ticket entity.
func (m *ProjectMutation) ClearTickets() {
	m.clearedtickets = true
}

// TicketsCleared reports if the "tickets" edge to the Ticket entity was cleared.
func (m *ProjectMutation) TicketsCleared() bool {
	return m.clearedtickets
}

// RemoveTicketIDs removes the "tickets" edge to the Ticket entity by IDs.
func (m *ProjectMutation) RemoveTicketIDs(ids ...int) {
	if m.removedtickets == nil {
		m.removedtickets = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.tickets, ids[i])
		m.removedtickets[ids[i]] = struct{}{}
	}
}

// RemovedTickets returns the removed IDs of the "tickets" edge to the Ticket entity.
func (m *ProjectMutation) RemovedTicketsIDs() (ids []int) {
	for id := range m.removedtickets {
		ids = append(ids, id)
	}
	return
}

// TicketsIDs returns the "tickets" edge IDs in the mutation.
func (m *ProjectMutation) TicketsIDs() (ids []int) {
	for id := range m.tickets {
		ids = append(ids, id)
	}
	return
}

// ResetTickets resets all changes to the "tickets" edge.
func (m *ProjectMutation) ResetTickets() {
	m.tickets = nil
	m.clearedtickets = false
	m.removedtickets = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.code != nil {
		fields = append(fields, project.FieldCode)
	}
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.web_path != nil {
		fields = append(fields, project.FieldWebPath)
	}
	if m.app_path != nil {
		fields = append(fields, project.FieldAppPath)
	}
	if m.default_execution_mode != nil {
		fields = append(fields, project.FieldDefaultExecutionMode)
	}
	if m.model_tier != nil {
		fields = append(fields, project.FieldModelTier)
	}
	if m.git_enabled != nil {
		fields = append(fields, project.FieldGitEnabled)
	}
	if m.archived != nil {
		fields = append(fields, project.FieldArchived)
	}
	if m.knowledge != nil {
		fields = append(fields, project.FieldKnowledge)
	}
	if m.map_content != nil {
		fields = append(fields, project.FieldMapContent)
	}
	if m.map_generated_at != nil {
		fields = append(fields, project.FieldMapGeneratedAt)
	}
	if m.next_ticket_seq != nil {
		fields = append(fields, project.FieldNextTicketSeq)
	}
	if m.total_input_tokens != nil {
		fields = append(fields, project.FieldTotalInputTokens)
	}
	if m.total_output_tokens != nil {
		fields = append(fields, project.FieldTotalOutputTokens)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldCode:
		return m.Code()
	case project.FieldName:
		return m.Name()
	case project.FieldWebPath:
		return m.WebPath()
	case project.FieldAppPath:
		return m.AppPath()
	case project.FieldDefaultExecutionMode:
		return m.DefaultExecutionMode()
	case project.FieldModelTier:
		return m.ModelTier()
	case project.FieldGitEnabled:
		return m.GitEnabled()
	case project.FieldArchived:
		return m.Archived()
	case project.FieldKnowledge:
		return m.Knowledge()
	case project.FieldMapContent:
		return m.MapContent()
	case project.FieldMapGeneratedAt:
		return m.MapGeneratedAt()
	case project.FieldNextTicketSeq:
		return m.NextTicketSeq()
	case project.FieldTotalInputTokens:
		return m.TotalInputTokens()
	case project.FieldTotalOutputTokens:
		return m.TotalOutputTokens()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldCode:
		return m.OldCode(ctx)
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldWebPath:
		return m.OldWebPath(ctx)
	case project.FieldAppPath:
		return m.OldAppPath(ctx)
	case project.FieldDefaultExecutionMode:
		return m.OldDefaultExecutionMode(ctx)
	case project.FieldModelTier:
		return m.OldModelTier(ctx)
	case project.FieldGitEnabled:
		return m.OldGitEnabled(ctx)
	case project.FieldArchived:
		return m.OldArchived(ctx)
	case project.FieldKnowledge:
		return m.OldKnowledge(ctx)
	case project.FieldMapContent:
		return m.OldMapContent(ctx)
	case project.FieldMapGeneratedAt:
		return m.OldMapGeneratedAt(ctx)
	case project.FieldNextTicketSeq:
		return m.OldNextTicketSeq(ctx)
	case project.FieldTotalInputTokens:
		return m.OldTotalInputTokens(ctx)
	case project.FieldTotalOutputTokens:
		return m.OldTotalOutputTokens(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldWebPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebPath(v)
		return nil
	case project.FieldAppPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppPath(v)
		return nil
	case project.FieldDefaultExecutionMode:
		v, ok := value.(project.DefaultExecutionMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultExecutionMode(v)
		return nil
	case project.FieldModelTier:
		v, ok := value.(project.ModelTier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelTier(v)
		return nil
	case project.FieldGitEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGitEnabled(v)
		return nil
	case project.FieldArchived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchived(v)
		return nil
	case project.FieldKnowledge:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKnowledge(v)
		return nil
	case project.FieldMapContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMapContent(v)
		return nil
	case project.FieldMapGeneratedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMapGeneratedAt(v)
		return nil
	case project.FieldNextTicketSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextTicketSeq(v)
		return nil
	case project.FieldTotalInputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalInputTokens(v)
		return nil
	case project.FieldTotalOutputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalOutputTokens(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	var fields []string
	if m.addnext_ticket_seq != nil {
		fields = append(fields, project.FieldNextTicketSeq)
	}
	if m.addtotal_input_tokens != nil {
		fields = append(fields, project.FieldTotalInputTokens)
	}
	if m.addtotal_output_tokens != nil {
		fields = append(fields, project.FieldTotalOutputTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case project.FieldNextTicketSeq:
		return m.AddedNextTicketSeq()
	case project.FieldTotalInputTokens:
		return m.AddedTotalInputTokens()
	case project.FieldTotalOutputTokens:
		return m.AddedTotalOutputTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	case project.FieldNextTicketSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNextTicketSeq(v)
		return nil
	case project.FieldTotalInputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalInputTokens(v)
		return nil
	case project.FieldTotalOutputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalOutputTokens(v)
		return nil
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldWebPath) {
		fields = append(fields, project.FieldWebPath)
	}
	if m.FieldCleared(project.FieldAppPath) {
		fields = append(fields, project.FieldAppPath)
	}
	if m.FieldCleared(project.FieldKnowledge) {
		fields = append(fields, project.FieldKnowledge)
	}
	if m.FieldCleared(project.FieldMapContent) {
		fields = append(fields, project.FieldMapContent)
	}
	if m.FieldCleared(project.FieldMapGeneratedAt) {
		fields = append(fields, project.FieldMapGeneratedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldWebPath:
		m.ClearWebPath()
		return nil
	case project.FieldAppPath:
		m.ClearAppPath()
		return nil
	case project.FieldKnowledge:
		m.ClearKnowledge()
		return nil
	case project.FieldMapContent:
		m.ClearMapContent()
		return nil
	case project.FieldMapGeneratedAt:
		m.ClearMapGeneratedAt()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldCode:
		m.ResetCode()
		return nil
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldWebPath:
		m.ResetWebPath()
		return nil
	case project.FieldAppPath:
		m.ResetAppPath()
		return nil
	case project.FieldDefaultExecutionMode:
		m.ResetDefaultExecutionMode()
		return nil
	case project.FieldModelTier:
		m.ResetModelTier()
		return nil
	case project.FieldGitEnabled:
		m.ResetGitEnabled()
		return nil
	case project.FieldArchived:
		m.ResetArchived()
		return nil
	case project.FieldKnowledge:
		m.ResetKnowledge()
		return nil
	case project.FieldMapContent:
		m.ResetMapContent()
		return nil
	case project.FieldMapGeneratedAt:
		m.ResetMapGeneratedAt()
		return nil
	case project.FieldNextTicketSeq:
		m.ResetNextTicketSeq()
		return nil
	case project.FieldTotalInputTokens:
		m.ResetTotalInputTokens()
		return nil
	case project.FieldTotalOutputTokens:
		m.ResetTotalOutputTokens()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tickets != nil {
		edges = append(edges, project.EdgeTickets)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeTickets:
		ids := make([]ent.Value, 0, len(m.tickets))
		for id := range m.tickets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtickets != nil {
		edges = append(edges, project.EdgeTickets)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeTickets:
		ids := make([]ent.Value, 0, len(m.removedtickets))
		for id := range m.removedtickets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtickets {
		edges = append(edges, project.EdgeTickets)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeTickets:
		return m.clearedtickets
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeTickets:
		m.ResetTickets()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// TicketMutation represents an operation that mutates the Ticket nodes in the graph.
type TicketMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	ticket_number          *string
	title                  *string
	description            *string
	ticket_type            *ticket.TicketType
	priority               *ticket.Priority
	sequence_order         *int
	addsequence_order      *int
	is_forced              *bool
	execution_mode         *ticket.ExecutionMode
	deps_include_awaiting  *bool
	model_tier             *ticket.ModelTier
	max_retries            *int
	addmax_retries         *int
	retry_count            *int
	addretry_count         *int
	retry_after            *time.Time
	review_scheduled_at    *time.Time
	review_attempts        *int
	addreview_attempts     *int
	awaiting_reason        *ticket.AwaitingReason
	status                 *ticket.Status
	result_summary         *string
	unsummarized_tokens    *int
	addunsummarized_tokens *int
	total_tokens           *int64
	addtotal_tokens        *int64
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	project                *int
	clearedproject         bool
	parent                 *int
	clearedparent          bool
	children               map[int]struct{}
	removedchildren        map[int]struct{}
	clearedchildren        bool
	messages               map[int]struct{}
	removedmessages        map[int]struct{}
	clearedmessages        bool
	extractions            map[int]struct{}
	removedextractions     map[int]struct{}
	clearedextractions     bool
	sessions               map[string]struct{}
	removedsessions        map[string]struct{}
	clearedsessions        bool
	permissions            map[int]struct{}
	removedpermissions     map[int]struct{}
	clearedpermissions     bool
	dependencies           map[int]struct{}
	removeddependencies    map[int]struct{}
	cleareddependencies    bool
	dependents             map[int]struct{}
	removeddependents      map[int]struct{}
	cleareddependents      bool
	done                   bool
	oldValue               func(context.Context) (*Ticket, error)
	predicates             []predicate.Ticket
}

var _ ent.Mutation = (*TicketMutation)(nil)

// ticketOption allows management of the mutation configuration using functional options.
type ticketOption func(*TicketMutation)

// newTicketMutation creates new mutation for the Ticket entity.
func newTicketMutation(c config, op Op, opts ...ticketOption) *TicketMutation {
	m := &TicketMutation{
		config:        c,
		op:            op,
		typ:           TypeTicket,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTicketID sets the ID field of the mutation.
func withTicketID(id int) ticketOption {
	return func(m *TicketMutation) {
		var (
			err   error
			once  sync.Once
			value *Ticket
		)
		m.oldValue = func(ctx context.Context) (*Ticket, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Ticket.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTicket sets the old Ticket of the mutation.
func withTicket(node *Ticket) ticketOption {
	return func(m *TicketMutation) {
		m.oldValue = func(context.Context) (*Ticket, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TicketMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TicketMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TicketMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TicketMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Ticket.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *TicketMutation) SetProjectID(i int) {
	m.project = &i
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *TicketMutation) ProjectID() (r int, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldProjectID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *TicketMutation) ResetProjectID() {
	m.project = nil
}

// SetTicketNumber sets the "ticket_number" field.
func (m *TicketMutation) SetTicketNumber(s string) {
	m.ticket_number = &s
}

// TicketNumber returns the value of the "ticket_number" field in the mutation.
func (m *TicketMutation) TicketNumber() (r string, exists bool) {
	v := m.ticket_number
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketNumber returns the old "ticket_number" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldTicketNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketNumber: %w", err)
	}
	return oldValue.TicketNumber, nil
}

// ResetTicketNumber resets all changes to the "ticket_number" field.
func (m *TicketMutation) ResetTicketNumber() {
	m.ticket_number = nil
}

// SetTitle sets the "title" field.
func (m *TicketMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TicketMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldTitle(ctx context.Context) (v string, err error) {
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
func (m *TicketMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TicketMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TicketMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldDescription(ctx context.Context) (v string, err error) {
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
func (m *TicketMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[ticket.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TicketMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[ticket.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TicketMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, ticket.FieldDescription)
}

// SetTicketType sets the "ticket_type" field.
func (m *TicketMutation) SetTicketType(tt ticket.TicketType) {
	m.ticket_type = &tt
}

// TicketType returns the value of the "ticket_type" field in the mutation.
func (m *TicketMutation) TicketType() (r ticket.TicketType, exists bool) {
	v := m.ticket_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketType returns the old "ticket_type" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldTicketType(ctx context.Context) (v ticket.TicketType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketType: %w", err)
	}
	return oldValue.TicketType, nil
}

// ResetTicketType resets all changes to the "ticket_type" field.
func (m *TicketMutation) ResetTicketType() {
	m.ticket_type = nil
}

// SetPriority sets the "priority" field.
func (m *TicketMutation) SetPriority(t ticket.Priority) {
	m.priority = &t
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TicketMutation) Priority() (r ticket.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldPriority(ctx context.Context) (v ticket.Priority, err error) {
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

// ResetPriority resets all changes to the "priority" field.
func (m *TicketMutation) ResetPriority() {
	m.priority = nil
}

// SetSequenceOrder sets the "sequence_order" field.
func (m *TicketMutation) SetSequenceOrder(i int) {
	m.sequence_order = &i
	m.addsequence_order = nil
}

// SequenceOrder returns the value of the "sequence_order" field in the mutation.
func (m *TicketMutation) SequenceOrder() (r int, exists bool) {
	v := m.sequence_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceOrder returns the old "sequence_order" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldSequenceOrder(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceOrder: %w", err)
	}
	return oldValue.SequenceOrder, nil
}

// AddSequenceOrder adds i to the "sequence_order" field.
func (m *TicketMutation) AddSequenceOrder(i int) {
	if m.addsequence_order != nil {
		*m.addsequence_order += i
	} else {
		m.addsequence_order = &i
	}
}

// AddedSequenceOrder returns the value that was added to the "sequence_order" field in this mutation.
func (m *TicketMutation) AddedSequenceOrder() (r int, exists bool) {
	v := m.addsequence_order
	if v == nil {
		return
	}
	return *v, true
}

// ClearSequenceOrder clears the value of the "sequence_order" field.
func (m *TicketMutation) ClearSequenceOrder() {
	m.sequence_order = nil
	m.addsequence_order = nil
	m.clearedFields[ticket.FieldSequenceOrder] = struct{}{}
}

// SequenceOrderCleared returns if the "sequence_order" field was cleared in this mutation.
func (m *TicketMutation) SequenceOrderCleared() bool {
	_, ok := m.clearedFields[ticket.FieldSequenceOrder]
	return ok
}

// ResetSequenceOrder resets all changes to the "sequence_order" field.
func (m *TicketMutation) ResetSequenceOrder() {
	m.sequence_order = nil
	m.addsequence_order = nil
	delete(m.clearedFields, ticket.FieldSequenceOrder)
}

// SetParentTicketID sets the "parent_ticket_id" field.
func (m *TicketMutation) SetParentTicketID(i int) {
	m.parent = &i
}

// ParentTicketID returns the value of the "parent_ticket_id" field in the mutation.
func (m *TicketMutation) ParentTicketID() (r int, exists bool) {
	v := m.parent
	if v == nil {
		return
	}
	return *v, true
}

// OldParentTicketID returns the old "parent_ticket_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldParentTicketID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentTicketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentTicketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentTicketID: %w", err)
	}
	return oldValue.ParentTicketID, nil
}

// ClearParentTicketID clears the value of the "parent_ticket_id" field.
func (m *TicketMutation) ClearParentTicketID() {
	m.parent = nil
	m.clearedFields[ticket.FieldParentTicketID] = struct{}{}
}

// ParentTicketIDCleared returns if the "parent_ticket_id" field was cleared in this mutation.
func (m *TicketMutation) ParentTicketIDCleared() bool {
	_, ok := m.clearedFields[ticket.FieldParentTicketID]
	return ok
}

// ResetParentTicketID resets all changes to the "parent_ticket_id" field.
func (m *TicketMutation) ResetParentTicketID() {
	m.parent = nil
	delete(m.clearedFields, ticket.FieldParentTicketID)
}

// SetIsForced sets the "is_forced" field.
func (m *TicketMutation) SetIsForced(b bool) {
	m.is_forced = &b
}

// IsForced returns the value of the "is_forced" field in the mutation.
func (m *TicketMutation) IsForced() (r bool, exists bool) {
	v := m.is_forced
	if v == nil {
		return
	}
	return *v, true
}

// OldIsForced returns the old "is_forced" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldIsForced(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsForced is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsForced requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsForced: %w", err)
	}
	return oldValue.IsForced, nil
}

// ResetIsForced resets all changes to the "is_forced" field.
func (m *TicketMutation) ResetIsForced() {
	m.is_forced = nil
}

// SetExecutionMode sets the "execution_mode" field.
func (m *TicketMutation) SetExecutionMode(tm ticket.ExecutionMode) {
	m.execution_mode = &tm
}

// ExecutionMode returns the value of the "execution_mode" field in the mutation.
func (m *TicketMutation) ExecutionMode() (r ticket.ExecutionMode, exists bool) {
	v := m.execution_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionMode returns the old "execution_mode" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldExecutionMode(ctx context.Context) (v *ticket.ExecutionMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionMode: %w", err)
	}
	return oldValue.ExecutionMode, nil
}

// ClearExecutionMode clears the value of the "execution_mode" field.
func (m *TicketMutation) ClearExecutionMode() {
	m.execution_mode = nil
	m.clearedFields[ticket.FieldExecutionMode] = struct{}{}
}

// ExecutionModeCleared returns if the "execution_mode" field was cleared in this mutation.
func (m *TicketMutation) ExecutionModeCleared() bool {
	_, ok := m.clearedFields[ticket.FieldExecutionMode]
	return ok
}

// ResetExecutionMode resets all changes to the "execution_mode" field.
func (m *TicketMutation) ResetExecutionMode() {
	m.execution_mode = nil
	delete(m.clearedFields, ticket.FieldExecutionMode)
}

// SetDepsIncludeAwaiting sets the "deps_include_awaiting" field.
func (m *TicketMutation) SetDepsIncludeAwaiting(b bool) {
	m.deps_include_awaiting = &b
}

// DepsIncludeAwaiting returns the value of the "deps_include_awaiting" field in the mutation.
func (m *TicketMutation) DepsIncludeAwaiting() (r bool, exists bool) {
	v := m.deps_include_awaiting
	if v == nil {
		return
	}
	return *v, true
}

// OldDepsIncludeAwaiting returns the old "deps_include_awaiting" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldDepsIncludeAwaiting(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepsIncludeAwaiting is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepsIncludeAwaiting requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepsIncludeAwaiting: %w", err)
	}
	return oldValue.DepsIncludeAwaiting, nil
}

// ResetDepsIncludeAwaiting resets all changes to the "deps_include_awaiting" field.
func (m *TicketMutation) ResetDepsIncludeAwaiting() {
	m.deps_include_awaiting = nil
}

// SetModelTier sets the "model_tier" field.
func (m *TicketMutation) SetModelTier(tt ticket.ModelTier) {
	m.model_tier = &tt
}

// ModelTier returns the value of the "model_tier" field in the mutation.
func (m *TicketMutation) ModelTier() (r ticket.ModelTier, exists bool) {
	v := m.model_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldModelTier returns the old "model_tier" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldModelTier(ctx context.Context) (v *ticket.ModelTier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelTier: %w", err)
	}
	return oldValue.ModelTier, nil
}

// ClearModelTier clears the value of the "model_tier" field.
func (m *TicketMutation) ClearModelTier() {
	m.model_tier = nil
	m.clearedFields[ticket.FieldModelTier] = struct{}{}
}

// ModelTierCleared returns if the "model_tier" field was cleared in this mutation.
func (m *TicketMutation) ModelTierCleared() bool {
	_, ok := m.clearedFields[ticket.FieldModelTier]
	return ok
}

// ResetModelTier resets all changes to the "model_tier" field.
func (m *TicketMutation) ResetModelTier() {
	m.model_tier = nil
	delete(m.clearedFields, ticket.FieldModelTier)
}

// SetMaxRetries sets the "max_retries" field.
func (m *TicketMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *TicketMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *TicketMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *TicketMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *TicketMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *TicketMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *TicketMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *TicketMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *TicketMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *TicketMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetRetryAfter sets the "retry_after" field.
func (m *TicketMutation) SetRetryAfter(t time.Time) {
	m.retry_after = &t
}

// RetryAfter returns the value of the "retry_after" field in the mutation.
func (m *TicketMutation) RetryAfter() (r time.Time, exists bool) {
	v := m.retry_after
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryAfter returns the old "retry_after" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldRetryAfter(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryAfter: %w", err)
	}
	return oldValue.RetryAfter, nil
}

// ClearRetryAfter clears the value of the "retry_after" field.
func (m *TicketMutation) ClearRetryAfter() {
	m.retry_after = nil
	m.clearedFields[ticket.FieldRetryAfter] = struct{}{}
}

// RetryAfterCleared returns if the "retry_after" field was cleared in this mutation.
func (m *TicketMutation) RetryAfterCleared() bool {
	_, ok := m.clearedFields[ticket.FieldRetryAfter]
	return ok
}

// ResetRetryAfter resets all changes to the "retry_after" field.
func (m *TicketMutation) ResetRetryAfter() {
	m.retry_after = nil
	delete(m.clearedFields, ticket.FieldRetryAfter)
}

// SetReviewScheduledAt sets the "review_scheduled_at" field.
func (m *TicketMutation) SetReviewScheduledAt(t time.Time) {
	m.review_scheduled_at = &t
}

// ReviewScheduledAt returns the value of the "review_scheduled_at" field in the mutation.
func (m *TicketMutation) ReviewScheduledAt() (r time.Time, exists bool) {
	v := m.review_scheduled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewScheduledAt returns the old "review_scheduled_at" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldReviewScheduledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewScheduledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewScheduledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewScheduledAt: %w", err)
	}
	return oldValue.ReviewScheduledAt, nil
}

// ClearReviewScheduledAt clears the value of the "review_scheduled_at" field.
func (m *TicketMutation) ClearReviewScheduledAt() {
	m.review_scheduled_at = nil
	m.clearedFields[ticket.FieldReviewScheduledAt] = struct{}{}
}

// ReviewScheduledAtCleared returns if the "review_scheduled_at" field was cleared in this mutation.
func (m *TicketMutation) ReviewScheduledAtCleared() bool {
	_, ok := m.clearedFields[ticket.FieldReviewScheduledAt]
	return ok
}

// ResetReviewScheduledAt resets all changes to the "review_scheduled_at" field.
func (m *TicketMutation) ResetReviewScheduledAt() {
	m.review_scheduled_at = nil
	delete(m.clearedFields, ticket.FieldReviewScheduledAt)
}

// SetReviewAttempts sets the "review_attempts" field.
func (m *TicketMutation) SetReviewAttempts(i int) {
	m.review_attempts = &i
	m.addreview_attempts = nil
}

// ReviewAttempts returns the value of the "review_attempts" field in the mutation.
func (m *TicketMutation) ReviewAttempts() (r int, exists bool) {
	v := m.review_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewAttempts returns the old "review_attempts" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldReviewAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewAttempts: %w", err)
	}
	return oldValue.ReviewAttempts, nil
}

// AddReviewAttempts adds i to the "review_attempts" field.
func (m *TicketMutation) AddReviewAttempts(i int) {
	if m.addreview_attempts != nil {
		*m.addreview_attempts += i
	} else {
		m.addreview_attempts = &i
	}
}

// AddedReviewAttempts returns the value that was added to the "review_attempts" field in this mutation.
func (m *TicketMutation) AddedReviewAttempts() (r int, exists bool) {
	v := m.addreview_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetReviewAttempts resets all changes to the "review_attempts" field.
func (m *TicketMutation) ResetReviewAttempts() {
	m.review_attempts = nil
	m.addreview_attempts = nil
}

// SetAwaitingReason sets the "awaiting_reason" field.
func (m *TicketMutation) SetAwaitingReason(tr ticket.AwaitingReason) {
	m.awaiting_reason = &tr
}

// AwaitingReason returns the value of the "awaiting_reason" field in the mutation.
func (m *TicketMutation) AwaitingReason() (r ticket.AwaitingReason, exists bool) {
	v := m.awaiting_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldAwaitingReason returns the old "awaiting_reason" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldAwaitingReason(ctx context.Context) (v *ticket.AwaitingReason, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAwaitingReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAwaitingReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAwaitingReason: %w", err)
	}
	return oldValue.AwaitingReason, nil
}

// ClearAwaitingReason clears the value of the "awaiting_reason" field.
func (m *TicketMutation) ClearAwaitingReason() {
	m.awaiting_reason = nil
	m.clearedFields[ticket.FieldAwaitingReason] = struct{}{}
}

// AwaitingReasonCleared returns if the "awaiting_reason" field was cleared in this mutation.
func (m *TicketMutation) AwaitingReasonCleared() bool {
	_, ok := m.clearedFields[ticket.FieldAwaitingReason]
	return ok
}

// ResetAwaitingReason resets all changes to the "awaiting_reason" field.
func (m *TicketMutation) ResetAwaitingReason() {
	m.awaiting_reason = nil
	delete(m.clearedFields, ticket.FieldAwaitingReason)
}

// SetStatus sets the "status" field.
func (m *TicketMutation) SetStatus(t ticket.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TicketMutation) Status() (r ticket.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldStatus(ctx context.Context) (v ticket.Status, err error) {
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
func (m *TicketMutation) ResetStatus() {
	m.status = nil
}

// SetResultSummary sets the "result_summary" field.
func (m *TicketMutation) SetResultSummary(s string) {
	m.result_summary = &s
}

// ResultSummary returns the value of the "result_summary" field in the mutation.
func (m *TicketMutation) ResultSummary() (r string, exists bool) {
	v := m.result_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldResultSummary returns the old "result_summary" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldResultSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultSummary: %w", err)
	}
	return oldValue.ResultSummary, nil
}

// ClearResultSummary clears the value of the "result_summary" field.
func (m *TicketMutation) ClearResultSummary() {
	m.result_summary = nil
	m.clearedFields[ticket.FieldResultSummary] = struct{}{}
}

// ResultSummaryCleared returns if the "result_summary" field was cleared in this mutation.
func (m *TicketMutation) ResultSummaryCleared() bool {
	_, ok := m.clearedFields[ticket.FieldResultSummary]
	return ok
}

// ResetResultSummary resets all changes to the "result_summary" field.
func (m *TicketMutation) ResetResultSummary() {
	m.result_summary = nil
	delete(m.clearedFields, ticket.FieldResultSummary)
}

// SetUnsummarizedTokens sets the "unsummarized_tokens" field.
func (m *TicketMutation) SetUnsummarizedTokens(i int) {
	m.unsummarized_tokens = &i
	m.addunsummarized_tokens = nil
}

// UnsummarizedTokens returns the value of the "unsummarized_tokens" field in the mutation.
func (m *TicketMutation) UnsummarizedTokens() (r int, exists bool) {
	v := m.unsummarized_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldUnsummarizedTokens returns the old "unsummarized_tokens" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldUnsummarizedTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnsummarizedTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnsummarizedTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnsummarizedTokens: %w", err)
	}
	return oldValue.UnsummarizedTokens, nil
}

// AddUnsummarizedTokens adds i to the "unsummarized_tokens" field.
func (m *TicketMutation) AddUnsummarizedTokens(i int) {
	if m.addunsummarized_tokens != nil {
		*m.addunsummarized_tokens += i
	} else {
		m.addunsummarized_tokens = &i
	}
}

// AddedUnsummarizedTokens returns the value that was added to the "unsummarized_tokens" field in this mutation.
func (m *TicketMutation) AddedUnsummarizedTokens() (r int, exists bool) {
	v := m.addunsummarized_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnsummarizedTokens resets all changes to the "unsummarized_tokens" field.
func (m *TicketMutation) ResetUnsummarizedTokens() {
	m.unsummarized_tokens = nil
	m.addunsummarized_tokens = nil
}

// SetTotalTokens sets the "total_tokens" field.
func (m *TicketMutation) SetTotalTokens(i int64) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *TicketMutation) TotalTokens() (r int64, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldTotalTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *TicketMutation) AddTotalTokens(i int64) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *TicketMutation) AddedTotalTokens() (r int64, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *TicketMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TicketMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TicketMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TicketMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TicketMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TicketMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TicketMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *TicketMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[ticket.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *TicketMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *TicketMutation) ProjectIDs() (ids []int) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *TicketMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// SetParentID sets the "parent" edge to the Ticket entity by id.
func (m *TicketMutation) SetParentID(id int) {
	m.parent = &id
}

// ClearParent clears the "parent" edge to the Ticket entity.
func (m *TicketMutation) ClearParent() {
	m.clearedparent = true
	m.clearedFields[ticket.FieldParentTicketID] = struct{}{}
}

// ParentCleared reports if the "parent" edge to the Ticket entity was cleared.
func (m *TicketMutation) ParentCleared() bool {
	return m.ParentTicketIDCleared() || m.clearedparent
}

// ParentID returns the "parent" edge ID in the mutation.
func (m *TicketMutation) ParentID() (id int, exists bool) {
	if m.parent != nil {
		return *m.parent, true
	}
	return
}

// ParentIDs returns the "parent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParentID instead. It exists only for internal usage by the builders.
func (m *TicketMutation) ParentIDs() (ids []int) {
	if id := m.parent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParent resets all changes to the "parent" edge.
func (m *TicketMutation) ResetParent() {
	m.parent = nil
	m.clearedparent = false
}

// AddChildIDs adds the "children" edge to the Ticket entity by ids.
func (m *TicketMutation) AddChildIDs(ids ...int) {
	if m.children == nil {
		m.children = make(map[int]struct{})
	}
	for i := range ids {
		m.children[ids[i]] = struct{}{}
	}
}

// ClearChildren clears the "children" edge to the Ticket entity.
func (m *TicketMutation) ClearChildren() {
	m.clearedchildren = true
}

// ChildrenCleared reports if the "children" edge to the Ticket entity was cleared.
func (m *TicketMutation) ChildrenCleared() bool {
	return m.clearedchildren
}

// RemoveChildIDs removes the "children" edge to the Ticket entity by IDs.
func (m *TicketMutation) RemoveChildIDs(ids ...int) {
	if m.removedchildren == nil {
		m.removedchildren = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.children, ids[i])
		m.removedchildren[ids[i]] = struct{}{}
	}
}

// RemovedChildren returns the removed IDs of the "children" edge to the Ticket entity.
func (m *TicketMutation) RemovedChildrenIDs() (ids []int) {
	for id := range m.removedchildren {
		ids = append(ids, id)
	}
	return
}

// ChildrenIDs returns the "children" edge IDs in the mutation.
func (m *TicketMutation) ChildrenIDs() (ids []int) {
	for id := range m.children {
		ids = append(ids, id)
	}
	return
}

// ResetChildren resets all changes to the "children" edge.
func (m *TicketMutation) ResetChildren() {
	m.children = nil
	m.clearedchildren = false
	m.removedchildren = nil
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *TicketMutation) AddMessageIDs(ids ...int) {
	if m.messages == nil {
		m.messages = make(map[int]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *TicketMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *TicketMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *TicketMutation) RemoveMessageIDs(ids ...int) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *TicketMutation) RemovedMessagesIDs() (ids []int) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *TicketMutation) MessagesIDs() (ids []int) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *TicketMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddExtractionIDs adds the "extractions" edge to the Extraction entity by ids.
func (m *TicketMutation) AddExtractionIDs(ids ...int) {
	if m.extractions == nil {
		m.extractions = make(map[int]struct{})
	}
	for i := range ids {
		m.extractions[ids[i]] = struct{}{}
	}
}

// ClearExtractions clears the "extractions" edge to the Extraction entity.
func (m *TicketMutation) ClearExtractions() {
	m.clearedextractions = true
}

// ExtractionsCleared reports if the "extractions" edge to the Extraction entity was cleared.
func (m *TicketMutation) ExtractionsCleared() bool {
	return m.clearedextractions
}

// RemoveExtractionIDs removes the "extractions" edge to the Extraction entity by IDs.
func (m *TicketMutation) RemoveExtractionIDs(ids ...int) {
	if m.removedextractions == nil {
		m.removedextractions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.extractions, ids[i])
		m.removedextractions[ids[i]] = struct{}{}
	}
}

// RemovedExtractions returns the removed IDs of the "extractions" edge to the Extraction entity.
func (m *TicketMutation) RemovedExtractionsIDs() (ids []int) {
	for id := range m.removedextractions {
		ids = append(ids, id)
	}
	return
}

// ExtractionsIDs returns the "extractions" edge IDs in the mutation.
func (m *TicketMutation) ExtractionsIDs() (ids []int) {
	for id := range m.extractions {
		ids = append(ids, id)
	}
	return
}

// ResetExtractions resets all changes to the "extractions" edge.
func (m *TicketMutation) ResetExtractions() {
	m.extractions = nil
	m.clearedextractions = false
	m.removedextractions = nil
}

// AddSessionIDs adds the "sessions" edge to the ExecutionSession entity by ids.
func (m *TicketMutation) AddSessionIDs(ids ...string) {
	if m.sessions == nil {
		m.sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the ExecutionSession entity.
func (m *TicketMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the ExecutionSession entity was cleared.
func (m *TicketMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the ExecutionSession entity by IDs.
func (m *TicketMutation) RemoveSessionIDs(ids ...string) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the ExecutionSession entity.
func (m *TicketMutation) RemovedSessionsIDs() (ids []string) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *TicketMutation) SessionsIDs() (ids []string) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *TicketMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// AddPermissionIDs adds the "permissions" edge to the ApprovedPermission entity by ids.
func (m *TicketMutation) AddPermissionIDs(ids ...int) {
	if m.permissions == nil {
		m.permissions = make(map[int]struct{})
	}
	for i := range ids {
		m.permissions[ids[i]] = struct{}{}
	}
}

// ClearPermissions clears the "permissions" edge to the ApprovedPermission entity.
func (m *TicketMutation) ClearPermissions() {
	m.clearedpermissions = true
}

// PermissionsCleared reports if the "permissions" edge to the ApprovedPermission entity was cleared.
func (m *TicketMutation) PermissionsCleared() bool {
	return m.clearedpermissions
}

// RemovePermissionIDs removes the "permissions" edge to the ApprovedPermission entity by IDs.
func (m *TicketMutation) RemovePermissionIDs(ids ...int) {
	if m.removedpermissions == nil {
		m.removedpermissions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.permissions, ids[i])
		m.removedpermissions[ids[i]] = struct{}{}
	}
}

// RemovedPermissions returns the removed IDs of the "permissions" edge to the ApprovedPermission entity.
func (m *TicketMutation) RemovedPermissionsIDs() (ids []int) {
	for id := range m.removedpermissions {
		ids = append(ids, id)
	}
	return
}

// PermissionsIDs returns the "permissions" edge IDs in the mutation.
func (m *TicketMutation) PermissionsIDs() (ids []int) {
	for id := range m.permissions {
		ids = append(ids, id)
	}
	return
}

// ResetPermissions resets all changes to the "permissions" edge.
func (m *TicketMutation) ResetPermissions() {
	m.permissions = nil
	m.clearedpermissions = false
	m.removedpermissions = nil
}

// AddDependencyIDs adds the "dependencies" edge to the TicketDependency entity by ids.
func (m *TicketMutation) AddDependencyIDs(ids ...int) {
	if m.dependencies == nil {
		m.dependencies = make(map[int]struct{})
	}
	for i := range ids {
		m.dependencies[ids[i]] = struct{}{}
	}
}

// ClearDependencies clears the "dependencies" edge to the TicketDependency entity.
func (m *TicketMutation) ClearDependencies() {
	m.cleareddependencies = true
}

// DependenciesCleared reports if the "dependencies" edge to the TicketDependency entity was cleared.
func (m *TicketMutation) DependenciesCleared() bool {
	return m.cleareddependencies
}

// RemoveDependencyIDs removes the "dependencies" edge to the TicketDependency entity by IDs.
func (m *TicketMutation) RemoveDependencyIDs(ids ...int) {
	if m.removeddependencies == nil {
		m.removeddependencies = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.dependencies, ids[i])
		m.removeddependencies[ids[i]] = struct{}{}
	}
}

// RemovedDependencies returns the removed IDs of the "dependencies" edge to the TicketDependency entity.
func (m *TicketMutation) RemovedDependenciesIDs() (ids []int) {
	for id := range m.removeddependencies {
		ids = append(ids, id)
	}
	return
}

// DependenciesIDs returns the "dependencies" edge IDs in the mutation.
func (m *TicketMutation) DependenciesIDs() (ids []int) {
	for id := range m.dependencies {
		ids = append(ids, id)
	}
	return
}

// ResetDependencies resets all changes to the "dependencies" edge.
func (m *TicketMutation) ResetDependencies() {
	m.dependencies = nil
	m.cleareddependencies = false
	m.removeddependencies = nil
}

// AddDependentIDs adds the "dependents" edge to the TicketDependency entity by ids.
func (m *TicketMutation) AddDependentIDs(ids ...int) {
	if m.dependents == nil {
		m.dependents = make(map[int]struct{})
	}
	for i := range ids {
		m.dependents[ids[i]] = struct{}{}
	}
}

// ClearDependents clears the "dependents" edge to the TicketDependency entity.
func (m *TicketMutation) ClearDependents() {
	m.cleareddependents = true
}

// DependentsCleared reports if the "dependents" edge to the TicketDependency entity was cleared.
func (m *TicketMutation) DependentsCleared() bool {
	return m.cleareddependents
}

// RemoveDependentIDs removes the "dependents" edge to the TicketDependency entity by IDs.
func (m *TicketMutation) RemoveDependentIDs(ids ...int) {
	if m.removeddependents == nil {
		m.removeddependents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.dependents, ids[i])
		m.removeddependents[ids[i]] = struct{}{}
	}
}

// RemovedDependents returns the removed IDs of the "dependents" edge to the TicketDependency entity.
func (m *TicketMutation) RemovedDependentsIDs() (ids []int) {
	for id := range m.removeddependents {
		ids = append(ids, id)
	}
	return
}

// DependentsIDs returns the "dependents" edge IDs in the mutation.
func (m *TicketMutation) DependentsIDs() (ids []int) {
	for id := range m.dependents {
		ids = append(ids, id)
	}
	return
}

// ResetDependents resets all changes to the "dependents" edge.
func (m *TicketMutation) ResetDependents() {
	m.dependents = nil
	m.cleareddependents = false
	m.removeddependents = nil
}

// Where appends a list predicates to the TicketMutation builder.
func (m *TicketMutation) Where(ps ...predicate.Ticket) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TicketMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TicketMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Ticket, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TicketMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TicketMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Ticket).
func (m *TicketMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TicketMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.project != nil {
		fields = append(fields, ticket.FieldProjectID)
	}
	if m.ticket_number != nil {
		fields = append(fields, ticket.FieldTicketNumber)
	}
	if m.title != nil {
		fields = append(fields, ticket.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, ticket.FieldDescription)
	}
	if m.ticket_type != nil {
		fields = append(fields, ticket.FieldTicketType)
	}
	if m.priority != nil {
		fields = append(fields, ticket.FieldPriority)
	}
	if m.sequence_order != nil {
		fields = append(fields, ticket.FieldSequenceOrder)
	}
	if m.parent != nil {
		fields = append(fields, ticket.FieldParentTicketID)
	}
	if m.is_forced != nil {
		fields = append(fields, ticket.FieldIsForced)
	}
	if m.execution_mode != nil {
		fields = append(fields, ticket.FieldExecutionMode)
	}
	if m.deps_include_awaiting != nil {
		fields = append(fields, ticket.FieldDepsIncludeAwaiting)
	}
	if m.model_tier != nil {
		fields = append(fields, ticket.FieldModelTier)
	}
	if m.max_retries != nil {
		fields = append(fields, ticket.FieldMaxRetries)
	}
	if m.retry_count != nil {
		fields = append(fields, ticket.FieldRetryCount)
	}
	if m.retry_after != nil {
		fields = append(fields, ticket.FieldRetryAfter)
	}
	if m.review_scheduled_at != nil {
		fields = append(fields, ticket.FieldReviewScheduledAt)
	}
	if m.review_attempts != nil {
		fields = append(fields, ticket.FieldReviewAttempts)
	}
	if m.awaiting_reason != nil {
		fields = append(fields, ticket.FieldAwaitingReason)
	}
	if m.status != nil {
		fields = append(fields, ticket.FieldStatus)
	}
	if m.result_summary != nil {
		fields = append(fields, ticket.FieldResultSummary)
	}
	if m.unsummarized_tokens != nil {
		fields = append(fields, ticket.FieldUnsummarizedTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, ticket.FieldTotalTokens)
	}
	if m.created_at != nil {
		fields = append(fields, ticket.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, ticket.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TicketMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ticket.FieldProjectID:
		return m.ProjectID()
	case ticket.FieldTicketNumber:
		return m.TicketNumber()
	case ticket.FieldTitle:
		return m.Title()
	case ticket.FieldDescription:
		return m.Description()
	case ticket.FieldTicketType:
		return m.TicketType()
	case ticket.FieldPriority:
		return m.Priority()
	case ticket.FieldSequenceOrder:
		return m.SequenceOrder()
	case ticket.FieldParentTicketID:
		return m.ParentTicketID()
	case ticket.FieldIsForced:
		return m.IsForced()
	case ticket.FieldExecutionMode:
		return m.ExecutionMode()
	case ticket.FieldDepsIncludeAwaiting:
		return m.DepsIncludeAwaiting()
	case ticket.FieldModelTier:
		return m.ModelTier()
	case ticket.FieldMaxRetries:
		return m.MaxRetries()
	case ticket.FieldRetryCount:
		return m.RetryCount()
	case ticket.FieldRetryAfter:
		return m.RetryAfter()
	case ticket.FieldReviewScheduledAt:
		return m.ReviewScheduledAt()
	case ticket.FieldReviewAttempts:
		return m.ReviewAttempts()
	case ticket.FieldAwaitingReason:
		return m.AwaitingReason()
	case ticket.FieldStatus:
		return m.Status()
	case ticket.FieldResultSummary:
		return m.ResultSummary()
	case ticket.FieldUnsummarizedTokens:
		return m.UnsummarizedTokens()
	case ticket.FieldTotalTokens:
		return m.TotalTokens()
	case ticket.FieldCreatedAt:
		return m.CreatedAt()
	case ticket.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TicketMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ticket.FieldProjectID:
		return m.OldProjectID(ctx)
	case ticket.FieldTicketNumber:
		return m.OldTicketNumber(ctx)
	case ticket.FieldTitle:
		return m.OldTitle(ctx)
	case ticket.FieldDescription:
		return m.OldDescription(ctx)
	case ticket.FieldTicketType:
		return m.OldTicketType(ctx)
	case ticket.FieldPriority:
		return m.OldPriority(ctx)
	case ticket.FieldSequenceOrder:
		return m.OldSequenceOrder(ctx)
	case ticket.FieldParentTicketID:
		return m.OldParentTicketID(ctx)
	case ticket.FieldIsForced:
		return m.OldIsForced(ctx)
	case ticket.FieldExecutionMode:
		return m.OldExecutionMode(ctx)
	case ticket.FieldDepsIncludeAwaiting:
		return m.OldDepsIncludeAwaiting(ctx)
	case ticket.FieldModelTier:
		return m.OldModelTier(ctx)
	case ticket.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case ticket.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case ticket.FieldRetryAfter:
		return m.OldRetryAfter(ctx)
	case ticket.FieldReviewScheduledAt:
		return m.OldReviewScheduledAt(ctx)
	case ticket.FieldReviewAttempts:
		return m.OldReviewAttempts(ctx)
	case ticket.FieldAwaitingReason:
		return m.OldAwaitingReason(ctx)
	case ticket.FieldStatus:
		return m.OldStatus(ctx)
	case ticket.FieldResultSummary:
		return m.OldResultSummary(ctx)
	case ticket.FieldUnsummarizedTokens:
		return m.OldUnsummarizedTokens(ctx)
	case ticket.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case ticket.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case ticket.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Ticket field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ticket.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case ticket.FieldTicketNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketNumber(v)
		return nil
	case ticket.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case ticket.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case ticket.FieldTicketType:
		v, ok := value.(ticket.TicketType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketType(v)
		return nil
	case ticket.FieldPriority:
		v, ok := value.(ticket.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case ticket.FieldSequenceOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceOrder(v)
		return nil
	case ticket.FieldParentTicketID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentTicketID(v)
		return nil
	case ticket.FieldIsForced:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsForced(v)
		return nil
	case ticket.FieldExecutionMode:
		v, ok := value.(ticket.ExecutionMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionMode(v)
		return nil
	case ticket.FieldDepsIncludeAwaiting:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepsIncludeAwaiting(v)
		return nil
	case ticket.FieldModelTier:
		v, ok := value.(ticket.ModelTier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelTier(v)
		return nil
	case ticket.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case ticket.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case ticket.FieldRetryAfter:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryAfter(v)
		return nil
	case ticket.FieldReviewScheduledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewScheduledAt(v)
		return nil
	case ticket.FieldReviewAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewAttempts(v)
		return nil
	case ticket.FieldAwaitingReason:
		v, ok := value.(ticket.AwaitingReason)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAwaitingReason(v)
		return nil
	case ticket.FieldStatus:
		v, ok := value.(ticket.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case ticket.FieldResultSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultSummary(v)
		return nil
	case ticket.FieldUnsummarizedTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnsummarizedTokens(v)
		return nil
	case ticket.FieldTotalTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case ticket.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case ticket.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Ticket field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TicketMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_order != nil {
		fields = append(fields, ticket.FieldSequenceOrder)
	}
	if m.addmax_retries != nil {
		fields = append(fields, ticket.FieldMaxRetries)
	}
	if m.addretry_count != nil {
		fields = append(fields, ticket.FieldRetryCount)
	}
	if m.addreview_attempts != nil {
		fields = append(fields, ticket.FieldReviewAttempts)
	}
	if m.addunsummarized_tokens != nil {
		fields = append(fields, ticket.FieldUnsummarizedTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, ticket.FieldTotalTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TicketMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ticket.FieldSequenceOrder:
		return m.AddedSequenceOrder()
	case ticket.FieldMaxRetries:
		return m.AddedMaxRetries()
	case ticket.FieldRetryCount:
		return m.AddedRetryCount()
	case ticket.FieldReviewAttempts:
		return m.AddedReviewAttempts()
	case ticket.FieldUnsummarizedTokens:
		return m.AddedUnsummarizedTokens()
	case ticket.FieldTotalTokens:
		return m.AddedTotalTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ticket.FieldSequenceOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceOrder(v)
		return nil
	case ticket.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	case ticket.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case ticket.FieldReviewAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReviewAttempts(v)
		return nil
	case ticket.FieldUnsummarizedTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnsummarizedTokens(v)
		return nil
	case ticket.FieldTotalTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	}
	return fmt.Errorf("unknown Ticket numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TicketMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ticket.FieldDescription) {
		fields = append(fields, ticket.FieldDescription)
	}
	if m.FieldCleared(ticket.FieldSequenceOrder) {
		fields = append(fields, ticket.FieldSequenceOrder)
	}
	if m.FieldCleared(ticket.FieldParentTicketID) {
		fields = append(fields, ticket.FieldParentTicketID)
	}
	if m.FieldCleared(ticket.FieldExecutionMode) {
		fields = append(fields, ticket.FieldExecutionMode)
	}
	if m.FieldCleared(ticket.FieldModelTier) {
		fields = append(fields, ticket.FieldModelTier)
	}
	if m.FieldCleared(ticket.FieldRetryAfter) {
		fields = append(fields, ticket.FieldRetryAfter)
	}
	if m.FieldCleared(ticket.FieldReviewScheduledAt) {
		fields = append(fields, ticket.FieldReviewScheduledAt)
	}
	if m.FieldCleared(ticket.FieldAwaitingReason) {
		fields = append(fields, ticket.FieldAwaitingReason)
	}
	if m.FieldCleared(ticket.FieldResultSummary) {
		fields = append(fields, ticket.FieldResultSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TicketMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TicketMutation) ClearField(name string) error {
	switch name {
	case ticket.FieldDescription:
		m.ClearDescription()
		return nil
	case ticket.FieldSequenceOrder:
		m.ClearSequenceOrder()
		return nil
	case ticket.FieldParentTicketID:
		m.ClearParentTicketID()
		return nil
	case ticket.FieldExecutionMode:
		m.ClearExecutionMode()
		return nil
	case ticket.FieldModelTier:
		m.ClearModelTier()
		return nil
	case ticket.FieldRetryAfter:
		m.ClearRetryAfter()
		return nil
	case ticket.FieldReviewScheduledAt:
		m.ClearReviewScheduledAt()
		return nil
	case ticket.FieldAwaitingReason:
		m.ClearAwaitingReason()
		return nil
	case ticket.FieldResultSummary:
		m.ClearResultSummary()
		return nil
	}
	return fmt.Errorf("unknown Ticket nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TicketMutation) ResetField(name string) error {
	switch name {
	case ticket.FieldProjectID:
		m.ResetProjectID()
		return nil
	case ticket.FieldTicketNumber:
		m.ResetTicketNumber()
		return nil
	case ticket.FieldTitle:
		m.ResetTitle()
		return nil
	case ticket.FieldDescription:
		m.ResetDescription()
		return nil
	case ticket.FieldTicketType:
		m.ResetTicketType()
		return nil
	case ticket.FieldPriority:
		m.ResetPriority()
		return nil
	case ticket.FieldSequenceOrder:
		m.ResetSequenceOrder()
		return nil
	case ticket.FieldParentTicketID:
		m.ResetParentTicketID()
		return nil
	case ticket.FieldIsForced:
		m.ResetIsForced()
		return nil
	case ticket.FieldExecutionMode:
		m.ResetExecutionMode()
		return nil
	case ticket.FieldDepsIncludeAwaiting:
		m.ResetDepsIncludeAwaiting()
		return nil
	case ticket.FieldModelTier:
		m.ResetModelTier()
		return nil
	case ticket.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case ticket.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case ticket.FieldRetryAfter:
		m.ResetRetryAfter()
		return nil
	case ticket.FieldReviewScheduledAt:
		m.ResetReviewScheduledAt()
		return nil
	case ticket.FieldReviewAttempts:
		m.ResetReviewAttempts()
		return nil
	case ticket.FieldAwaitingReason:
		m.ResetAwaitingReason()
		return nil
	case ticket.FieldStatus:
		m.ResetStatus()
		return nil
	case ticket.FieldResultSummary:
		m.ResetResultSummary()
		return nil
	case ticket.FieldUnsummarizedTokens:
		m.ResetUnsummarizedTokens()
		return nil
	case ticket.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case ticket.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case ticket.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Ticket field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TicketMutation) AddedEdges() []string {
	edges := make([]string, 0, 9)
	if m.project != nil {
		edges = append(edges, ticket.EdgeProject)
	}
	if m.parent != nil {
		edges = append(edges, ticket.EdgeParent)
	}
	if m.children != nil {
		edges = append(edges, ticket.EdgeChildren)
	}
	if m.messages != nil {
		edges = append(edges, ticket.EdgeMessages)
	}
	if m.extractions != nil {
		edges = append(edges, ticket.EdgeExtractions)
	}
	if m.sessions != nil {
		edges = append(edges, ticket.EdgeSessions)
	}
	if m.permissions != nil {
		edges = append(edges, ticket.EdgePermissions)
	}
	if m.dependencies != nil {
		edges = append(edges, ticket.EdgeDependencies)
	}
	if m.dependents != nil {
		edges = append(edges, ticket.EdgeDependents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TicketMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ticket.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case ticket.EdgeParent:
		if id := m.parent; id != nil {
			return []ent.Value{*id}
		}
	case ticket.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.children))
		for id := range m.children {
			ids = append(ids, id)
		}
		return ids
	case ticket.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case ticket.EdgeExtractions:
		ids := make([]ent.Value, 0, len(m.extractions))
		for id := range m.extractions {
			ids = append(ids, id)
		}
		return ids
	case ticket.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	case ticket.EdgePermissions:
		ids := make([]ent.Value, 0, len(m.permissions))
		for id := range m.permissions {
			ids = append(ids, id)
		}
		return ids
	case ticket.EdgeDependencies:
		ids := make([]ent.Value, 0, len(m.dependencies))
		for id := range m.dependencies {
			ids = append(ids, id)
		}
		return ids
	case ticket.EdgeDependents:
		ids := make([]ent.Value, 0, len(m.dependents))
		for id := range m.dependents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TicketMutation) RemovedEdges() []string {
	edges := make([]string, 0, 9)
	if m.removedchildren != nil {
		edges = append(edges, ticket.EdgeChildren)
	}
	if m.removedmessages != nil {
		edges = append(edges, ticket.EdgeMessages)
	}
	if m.removedextractions != nil {
		edges = append(edges, ticket.EdgeExtractions)
	}
	if m.removedsessions != nil {
		edges = append(edges, ticket.EdgeSessions)
	}
	if m.removedpermissions != nil {
		edges = append(edges, ticket.EdgePermissions)
	}
	if m.removeddependencies != nil {
		edges = append(edges, ticket.EdgeDependencies)
	}
	if m.removeddependents != nil {
		edges = append(edges, ticket.EdgeDependents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TicketMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case ticket.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.removedchildren))
		for id := range m.removedchildren {
			ids = append(ids, id)
		}
		return ids
	case ticket.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case ticket.EdgeExtractions:
		ids := make([]ent.Value, 0, len(m.removedextractions))
		for id := range m.removedextractions {
			ids = append(ids, id)
		}
		return ids
	case ticket.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	case ticket.EdgePermissions:
		ids := make([]ent.Value, 0, len(m.removedpermissions))
		for id := range m.removedpermissions {
			ids = append(ids, id)
		}
		return ids
	case ticket.EdgeDependencies:
		ids := make([]ent.Value, 0, len(m.removeddependencies))
		for id := range m.removeddependencies {
			ids = append(ids, id)
		}
		return ids
	case ticket.EdgeDependents:
		ids := make([]ent.Value, 0, len(m.removeddependents))
		for id := range m.removeddependents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TicketMutation) ClearedEdges() []string {
	edges := make([]string, 0, 9)
	if m.clearedproject {
		edges = append(edges, ticket.EdgeProject)
	}
	if m.clearedparent {
		edges = append(edges, ticket.EdgeParent)
	}
	if m.clearedchildren {
		edges = append(edges, ticket.EdgeChildren)
	}
	if m.clearedmessages {
		edges = append(edges, ticket.EdgeMessages)
	}
	if m.clearedextractions {
		edges = append(edges, ticket.EdgeExtractions)
	}
	if m.clearedsessions {
		edges = append(edges, ticket.EdgeSessions)
	}
	if m.clearedpermissions {
		edges = append(edges, ticket.EdgePermissions)
	}
	if m.cleareddependencies {
		edges = append(edges, ticket.EdgeDependencies)
	}
	if m.cleareddependents {
		edges = append(edges, ticket.EdgeDependents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TicketMutation) EdgeCleared(name string) bool {
	switch name {
	case ticket.EdgeProject:
		return m.clearedproject
	case ticket.EdgeParent:
		return m.clearedparent
	case ticket.EdgeChildren:
		return m.clearedchildren
	case ticket.EdgeMessages:
		return m.clearedmessages
	case ticket.EdgeExtractions:
		return m.clearedextractions
	case ticket.EdgeSessions:
		return m.clearedsessions
	case ticket.EdgePermissions:
		return m.clearedpermissions
	case ticket.EdgeDependencies:
		return m.cleareddependencies
	case ticket.EdgeDependents:
		return m.cleareddependents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TicketMutation) ClearEdge(name string) error {
	switch name {
	case ticket.EdgeProject:
		m.ClearProject()
		return nil
	case ticket.EdgeParent:
		m.ClearParent()
		return nil
	}
	return fmt.Errorf("unknown Ticket unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TicketMutation) ResetEdge(name string) error {
	switch name {
	case ticket.EdgeProject:
		m.ResetProject()
		return nil
	case ticket.EdgeParent:
		m.ResetParent()
		return nil
	case ticket.EdgeChildren:
		m.ResetChildren()
		return nil
	case ticket.EdgeMessages:
		m.ResetMessages()
		return nil
	case ticket.EdgeExtractions:
		m.ResetExtractions()
		return nil
	case ticket.EdgeSessions:
		m.ResetSessions()
		return nil
	case ticket.EdgePermissions:
		m.ResetPermissions()
		return nil
	case ticket.EdgeDependencies:
		m.ResetDependencies()
		return nil
	case ticket.EdgeDependents:
		m.ResetDependents()
		return nil
	}
	return fmt.Errorf("unknown Ticket edge %s", name)
}

// TicketDependencyMutation represents an operation that mutates the TicketDependency nodes in the graph.
type TicketDependencyMutation struct {
	config
	op                Op
	typ               string
	id                *int
	created_at        *time.Time
	clearedFields     map[string]struct{}
	ticket            *int
	clearedticket     bool
	depends_on        *int
	cleareddepends_on bool
	done              bool
	oldValue          func(context.Context) (*TicketDependency, error)
	predicates        []predicate.TicketDependency
}

var _ ent.Mutation = (*TicketDependencyMutation)(nil)

// ticketdependencyOption allows management of the mutation configuration using functional options.
type ticketdependencyOption func(*TicketDependencyMutation)

// newTicketDependencyMutation creates new mutation for the TicketDependency entity.
func newTicketDependencyMutation(c config, op Op, opts ...ticketdependencyOption) *TicketDependencyMutation {
	m := &TicketDependencyMutation{
		config:        c,
		op:            op,
		typ:           TypeTicketDependency,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTicketDependencyID sets the ID field of the mutation.
func withTicketDependencyID(id int) ticketdependencyOption {
	return func(m *TicketDependencyMutation) {
		var (
			err   error
			once  sync.Once
			value *TicketDependency
		)
		m.oldValue = func(ctx context.Context) (*TicketDependency, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TicketDependency.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTicketDependency sets the old TicketDependency of the mutation.
func withTicketDependency(node *TicketDependency) ticketdependencyOption {
	return func(m *TicketDependencyMutation) {
		m.oldValue = func(context.Context) (*TicketDependency, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TicketDependencyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TicketDependencyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TicketDependencyMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TicketDependencyMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TicketDependency.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTicketID sets the "ticket_id" field.
func (m *TicketDependencyMutation) SetTicketID(i int) {
	m.ticket = &i
}

// TicketID returns the value of the "ticket_id" field in the mutation.
func (m *TicketDependencyMutation) TicketID() (r int, exists bool) {
	v := m.ticket
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketID returns the old "ticket_id" field's value of the TicketDependency entity.
// If the TicketDependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketDependencyMutation) OldTicketID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketID: %w", err)
	}
	return oldValue.TicketID, nil
}

// ResetTicketID resets all changes to the "ticket_id" field.
func (m *TicketDependencyMutation) ResetTicketID() {
	m.ticket = nil
}

// SetDependsOnTicketID sets the "depends_on_ticket_id" field.
func (m *TicketDependencyMutation) SetDependsOnTicketID(i int) {
	m.depends_on = &i
}

// DependsOnTicketID returns the value of the "depends_on_ticket_id" field in the mutation.
func (m *TicketDependencyMutation) DependsOnTicketID() (r int, exists bool) {
	v := m.depends_on
	if v == nil {
		return
	}
	return *v, true
}

// OldDependsOnTicketID returns the old "depends_on_ticket_id" field's value of the TicketDependency entity.
// If the TicketDependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketDependencyMutation) OldDependsOnTicketID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependsOnTicketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependsOnTicketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependsOnTicketID: %w", err)
	}
	return oldValue.DependsOnTicketID, nil
}

// ResetDependsOnTicketID resets all changes to the "depends_on_ticket_id" field.
func (m *TicketDependencyMutation) ResetDependsOnTicketID() {
	m.depends_on = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TicketDependencyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TicketDependencyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TicketDependency entity.
// If the TicketDependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketDependencyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TicketDependencyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTicket clears the "ticket" edge to the Ticket entity.
func (m *TicketDependencyMutation) ClearTicket() {
	m.clearedticket = true
	m.clearedFields[ticketdependency.FieldTicketID] = struct{}{}
}

// TicketCleared reports if the "ticket" edge to the Ticket entity was cleared.
func (m *TicketDependencyMutation) TicketCleared() bool {
	return m.clearedticket
}

// TicketIDs returns the "ticket" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TicketID instead. It exists only for internal usage by the builders.
func (m *TicketDependencyMutation) TicketIDs() (ids []int) {
	if id := m.ticket; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTicket resets all changes to the "ticket" edge.
func (m *TicketDependencyMutation) ResetTicket() {
	m.ticket = nil
	m.clearedticket = false
}

// SetDependsOnID sets the "depends_on" edge to the Ticket entity by id.
func (m *TicketDependencyMutation) SetDependsOnID(id int) {
	m.depends_on = &id
}

// ClearDependsOn clears the "depends_on" edge to the Ticket entity.
func (m *TicketDependencyMutation) ClearDependsOn() {
	m.cleareddepends_on = true
	m.clearedFields[ticketdependency.FieldDependsOnTicketID] = struct{}{}
}

// DependsOnCleared reports if the "depends_on" edge to the Ticket entity was cleared.
func (m *TicketDependencyMutation) DependsOnCleared() bool {
	return m.cleareddepends_on
}

// DependsOnID returns the "depends_on" edge ID in the mutation.
func (m *TicketDependencyMutation) DependsOnID() (id int, exists bool) {
	if m.depends_on != nil {
		return *m.depends_on, true
	}
	return
}

// DependsOnIDs returns the "depends_on" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DependsOnID instead. It exists only for internal usage by the builders.
func (m *TicketDependencyMutation) DependsOnIDs() (ids []int) {
	if id := m.depends_on; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDependsOn resets all changes to the "depends_on" edge.
func (m *TicketDependencyMutation) ResetDependsOn() {
	m.depends_on = nil
	m.cleareddepends_on = false
}

// Where appends a list predicates to the TicketDependencyMutation builder.
func (m *TicketDependencyMutation) Where(ps ...predicate.TicketDependency) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TicketDependencyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TicketDependencyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TicketDependency, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TicketDependencyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TicketDependencyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TicketDependency).
func (m *TicketDependencyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TicketDependencyMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.ticket != nil {
		fields = append(fields, ticketdependency.FieldTicketID)
	}
	if m.depends_on != nil {
		fields = append(fields, ticketdependency.FieldDependsOnTicketID)
	}
	if m.created_at != nil {
		fields = append(fields, ticketdependency.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TicketDependencyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ticketdependency.FieldTicketID:
		return m.TicketID()
	case ticketdependency.FieldDependsOnTicketID:
		return m.DependsOnTicketID()
	case ticketdependency.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TicketDependencyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ticketdependency.FieldTicketID:
		return m.OldTicketID(ctx)
	case ticketdependency.FieldDependsOnTicketID:
		return m.OldDependsOnTicketID(ctx)
	case ticketdependency.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TicketDependency field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketDependencyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ticketdependency.FieldTicketID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketID(v)
		return nil
	case ticketdependency.FieldDependsOnTicketID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependsOnTicketID(v)
		return nil
	case ticketdependency.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TicketDependency field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TicketDependencyMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TicketDependencyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketDependencyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TicketDependency numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TicketDependencyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TicketDependencyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TicketDependencyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TicketDependency nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TicketDependencyMutation) ResetField(name string) error {
	switch name {
	case ticketdependency.FieldTicketID:
		m.ResetTicketID()
		return nil
	case ticketdependency.FieldDependsOnTicketID:
		m.ResetDependsOnTicketID()
		return nil
	case ticketdependency.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TicketDependency field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TicketDependencyMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.ticket != nil {
		edges = append(edges, ticketdependency.EdgeTicket)
	}
	if m.depends_on != nil {
		edges = append(edges, ticketdependency.EdgeDependsOn)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TicketDependencyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ticketdependency.EdgeTicket:
		if id := m.ticket; id != nil {
			return []ent.Value{*id}
		}
	case ticketdependency.EdgeDependsOn:
		if id := m.depends_on; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TicketDependencyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TicketDependencyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TicketDependencyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedticket {
		edges = append(edges, ticketdependency.EdgeTicket)
	}
	if m.cleareddepends_on {
		edges = append(edges, ticketdependency.EdgeDependsOn)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TicketDependencyMutation) EdgeCleared(name string) bool {
	switch name {
	case ticketdependency.EdgeTicket:
		return m.clearedticket
	case ticketdependency.EdgeDependsOn:
		return m.cleareddepends_on
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TicketDependencyMutation) ClearEdge(name string) error {
	switch name {
	case ticketdependency.EdgeTicket:
		m.ClearTicket()
		return nil
	case ticketdependency.EdgeDependsOn:
		m.ClearDependsOn()
		return nil
	}
	return fmt.Errorf("unknown TicketDependency unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TicketDependencyMutation) ResetEdge(name string) error {
	switch name {
	case ticketdependency.EdgeTicket:
		m.ResetTicket()
		return nil
	case ticketdependency.EdgeDependsOn:
		m.ResetDependsOn()
		return nil
	}
	return fmt.Errorf("unknown TicketDependency edge %s", name)
}
