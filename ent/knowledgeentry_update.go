// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/batonworks/baton/ent/knowledgeentry"
	"github.com/batonworks/baton/ent/predicate"
)

// KnowledgeEntryUpdate is the builder for updating KnowledgeEntry entities.
type KnowledgeEntryUpdate struct {
	config
	hooks    []Hook
	mutation *KnowledgeEntryMutation
}

// Where appends a list predicates to the KnowledgeEntryUpdate builder.
func (_u *KnowledgeEntryUpdate) Where(ps ...predicate.KnowledgeEntry) *KnowledgeEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *KnowledgeEntryUpdate) SetTitle(v string) *KnowledgeEntryUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *KnowledgeEntryUpdate) SetNillableTitle(v *string) *KnowledgeEntryUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *KnowledgeEntryUpdate) SetContent(v string) *KnowledgeEntryUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *KnowledgeEntryUpdate) SetNillableContent(v *string) *KnowledgeEntryUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *KnowledgeEntryUpdate) SetCategory(v string) *KnowledgeEntryUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *KnowledgeEntryUpdate) SetNillableCategory(v *string) *KnowledgeEntryUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *KnowledgeEntryUpdate) ClearCategory() *KnowledgeEntryUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetTags sets the "tags" field.
func (_u *KnowledgeEntryUpdate) SetTags(v []string) *KnowledgeEntryUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *KnowledgeEntryUpdate) AppendTags(v []string) *KnowledgeEntryUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *KnowledgeEntryUpdate) ClearTags() *KnowledgeEntryUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetActive sets the "active" field.
func (_u *KnowledgeEntryUpdate) SetActive(v bool) *KnowledgeEntryUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *KnowledgeEntryUpdate) SetNillableActive(v *bool) *KnowledgeEntryUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *KnowledgeEntryUpdate) SetUpdatedAt(v time.Time) *KnowledgeEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the KnowledgeEntryMutation object of the builder.
func (_u *KnowledgeEntryUpdate) Mutation() *KnowledgeEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KnowledgeEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KnowledgeEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *KnowledgeEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := knowledgeentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeEntryUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := knowledgeentry.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "KnowledgeEntry.title": %w`, err)}
		}
	}
	return nil
}

func (_u *KnowledgeEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgeentry.Table, knowledgeentry.Columns, sqlgraph.NewFieldSpec(knowledgeentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(knowledgeentry.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(knowledgeentry.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(knowledgeentry.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(knowledgeentry.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(knowledgeentry.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, knowledgeentry.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(knowledgeentry.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(knowledgeentry.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(knowledgeentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgeentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KnowledgeEntryUpdateOne is the builder for updating a single KnowledgeEntry entity.
type KnowledgeEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KnowledgeEntryMutation
}

// SetTitle sets the "title" field.
func (_u *KnowledgeEntryUpdateOne) SetTitle(v string) *KnowledgeEntryUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *KnowledgeEntryUpdateOne) SetNillableTitle(v *string) *KnowledgeEntryUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *KnowledgeEntryUpdateOne) SetContent(v string) *KnowledgeEntryUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *KnowledgeEntryUpdateOne) SetNillableContent(v *string) *KnowledgeEntryUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *KnowledgeEntryUpdateOne) SetCategory(v string) *KnowledgeEntryUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *KnowledgeEntryUpdateOne) SetNillableCategory(v *string) *KnowledgeEntryUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *KnowledgeEntryUpdateOne) ClearCategory() *KnowledgeEntryUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetTags sets the "tags" field.
func (_u *KnowledgeEntryUpdateOne) SetTags(v []string) *KnowledgeEntryUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *KnowledgeEntryUpdateOne) AppendTags(v []string) *KnowledgeEntryUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *KnowledgeEntryUpdateOne) ClearTags() *KnowledgeEntryUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetActive sets the "active" field.
func (_u *KnowledgeEntryUpdateOne) SetActive(v bool) *KnowledgeEntryUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *KnowledgeEntryUpdateOne) SetNillableActive(v *bool) *KnowledgeEntryUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *KnowledgeEntryUpdateOne) SetUpdatedAt(v time.Time) *KnowledgeEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the KnowledgeEntryMutation object of the builder.
func (_u *KnowledgeEntryUpdateOne) Mutation() *KnowledgeEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the KnowledgeEntryUpdate builder.
func (_u *KnowledgeEntryUpdateOne) Where(ps ...predicate.KnowledgeEntry) *KnowledgeEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KnowledgeEntryUpdateOne) Select(field string, fields ...string) *KnowledgeEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KnowledgeEntry entity.
func (_u *KnowledgeEntryUpdateOne) Save(ctx context.Context) (*KnowledgeEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeEntryUpdateOne) SaveX(ctx context.Context) *KnowledgeEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KnowledgeEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *KnowledgeEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := knowledgeentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := knowledgeentry.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "KnowledgeEntry.title": %w`, err)}
		}
	}
	return nil
}

func (_u *KnowledgeEntryUpdateOne) sqlSave(ctx context.Context) (_node *KnowledgeEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgeentry.Table, knowledgeentry.Columns, sqlgraph.NewFieldSpec(knowledgeentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KnowledgeEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knowledgeentry.FieldID)
		for _, f := range fields {
			if !knowledgeentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != knowledgeentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(knowledgeentry.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(knowledgeentry.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(knowledgeentry.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(knowledgeentry.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(knowledgeentry.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, knowledgeentry.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(knowledgeentry.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(knowledgeentry.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(knowledgeentry.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &KnowledgeEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgeentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
