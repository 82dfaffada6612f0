// Package repository is the only component that issues persistence operations
// against rental_contracts. All five operations are independent
// single-statement operations; the store's implicit per-statement transaction
// is the only concurrency control.
package repository

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/bilabonnement/rental-service/internal/models"
	"github.com/bilabonnement/rental-service/internal/storage"
)

const contractsTable = "rental_contracts"

type Repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

// New builds a repository over an already-opened store handle.
func New(store *storage.Store, log *zap.Logger) *Repository {
	return &Repository{db: store.DB(), log: log}
}

func selectColumns() []string {
	return append([]string{"id"}, models.ContractColumns...)
}

// Create inserts a complete contract and returns it with the store-assigned
// id. The input must already have passed Validate.
func (r *Repository) Create(ctx context.Context, in models.CreateContractInput) (*models.RentalContract, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	rec := in.Record()

	query, args, err := sq.Insert(contractsTable).
		Columns(models.ContractColumns...).
		Values(rec.Values()...).
		ToSql()
	if err != nil {
		return nil, &PersistenceError{Op: "build insert", Err: err}
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError("create rental contract", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, &PersistenceError{Op: "read inserted id", Err: err}
	}
	rec.ID = id

	r.log.Info("rental contract created", zap.Int64("id", id))
	return &rec, nil
}

// List returns every contract ordered by id. An empty table yields an empty
// slice, never an error.
func (r *Repository) List(ctx context.Context) ([]models.RentalContract, error) {
	query, args, err := sq.Select(selectColumns()...).
		From(contractsTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, &PersistenceError{Op: "build select", Err: err}
	}

	contracts := []models.RentalContract{}
	if err := r.db.SelectContext(ctx, &contracts, query, args...); err != nil {
		return nil, wrapDBError("list rental contracts", err)
	}
	return contracts, nil
}

// GetByID returns the contract with the given id, or ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id int64) (*models.RentalContract, error) {
	query, args, err := sq.Select(selectColumns()...).
		From(contractsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, &PersistenceError{Op: "build select", Err: err}
	}

	var contract models.RentalContract
	if err := r.db.GetContext(ctx, &contract, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, wrapDBError("get rental contract", err)
	}
	return &contract, nil
}

// UpdatePartial applies the set fields of upd to the contract with the given
// id, leaving all other columns untouched. Returns ErrNoFields when nothing
// updatable was supplied and ErrNotFound when no row matched. A constraint
// failure leaves the record unchanged.
func (r *Repository) UpdatePartial(ctx context.Context, id int64, upd models.ContractUpdate) error {
	assignments := upd.Assignments()
	if len(assignments) == 0 {
		return ErrNoFields
	}

	query, args, err := sq.Update(contractsTable).
		SetMap(assignments).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return &PersistenceError{Op: "build update", Err: err}
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapDBError("update rental contract", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return &PersistenceError{Op: "read affected rows", Err: err}
	}
	if affected == 0 {
		return ErrNotFound
	}

	r.log.Info("rental contract updated", zap.Int64("id", id), zap.Int("fields", len(assignments)))
	return nil
}

// Delete removes the contract with the given id. A missing id is not an
// error; the boolean reports whether a row was removed.
func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := sq.Delete(contractsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, &PersistenceError{Op: "build delete", Err: err}
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, wrapDBError("delete rental contract", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, &PersistenceError{Op: "read affected rows", Err: err}
	}
	if affected == 0 {
		return false, nil
	}

	r.log.Info("rental contract deleted", zap.Int64("id", id))
	return true, nil
}
