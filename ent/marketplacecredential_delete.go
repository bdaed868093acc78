// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aaron-lee-hebert/seller-metrics/ent/marketplacecredential"
	"github.com/aaron-lee-hebert/seller-metrics/ent/predicate"
)

// MarketplaceCredentialDelete is the builder for deleting a MarketplaceCredential entity.
type MarketplaceCredentialDelete struct {
	config
	hooks    []Hook
	mutation *MarketplaceCredentialMutation
}

// Where appends a list predicates to the MarketplaceCredentialDelete builder.
func (_d *MarketplaceCredentialDelete) Where(ps ...predicate.MarketplaceCredential) *MarketplaceCredentialDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MarketplaceCredentialDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MarketplaceCredentialDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MarketplaceCredentialDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(marketplacecredential.Table, sqlgraph.NewFieldSpec(marketplacecredential.FieldID, field.TypeInt))
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

// MarketplaceCredentialDeleteOne is the builder for deleting a single MarketplaceCredential entity.
type MarketplaceCredentialDeleteOne struct {
	_d *MarketplaceCredentialDelete
}

// Where appends a list predicates to the MarketplaceCredentialDelete builder.
func (_d *MarketplaceCredentialDeleteOne) Where(ps ...predicate.MarketplaceCredential) *MarketplaceCredentialDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MarketplaceCredentialDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{marketplacecredential.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MarketplaceCredentialDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
