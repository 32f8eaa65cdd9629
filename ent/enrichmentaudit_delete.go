// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepforge/quanta/ent/enrichmentaudit"
	"github.com/prepforge/quanta/ent/predicate"
)

// EnrichmentAuditDelete is the builder for deleting a EnrichmentAudit entity.
type EnrichmentAuditDelete struct {
	config
	hooks    []Hook
	mutation *EnrichmentAuditMutation
}

// Where appends a list predicates to the EnrichmentAuditDelete builder.
func (_d *EnrichmentAuditDelete) Where(ps ...predicate.EnrichmentAudit) *EnrichmentAuditDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EnrichmentAuditDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EnrichmentAuditDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EnrichmentAuditDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(enrichmentaudit.Table, sqlgraph.NewFieldSpec(enrichmentaudit.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// EnrichmentAuditDeleteOne is the builder for deleting a single EnrichmentAudit entity.
type EnrichmentAuditDeleteOne struct {
	_d *EnrichmentAuditDelete
}

// Where appends a list predicates to the EnrichmentAuditDelete builder.
func (_d *EnrichmentAuditDeleteOne) Where(ps ...predicate.EnrichmentAudit) *EnrichmentAuditDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EnrichmentAuditDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{enrichmentaudit.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EnrichmentAuditDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
