// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/models"
)

// catalogSpec describes one catalog table to the generic [catalogTable].
//
// T is the row model, C the create payload, P the patch payload and F the
// list filter.
type catalogSpec[T, C, P, F any] struct {
	table string

	// row lays out every column of T in select order.
	row func(*T) []field

	// create returns the title and detail fields written on insert.
	create func(*C) []field

	// patch returns the patchable fields; only non-nil ones are written.
	patch func(*P) []field

	// filter turns F into WHERE predicates and paging options.
	filter func(F) ([]sq.Sqlizer, models.ListOptions)

	// sortColumns is the ORDER BY whitelist. Unknown keys fall back to
	// defaultSort.
	sortColumns map[string]string
	defaultSort string
}

// catalogTable implements [CatalogRepository] for any table described by a
// [catalogSpec]. Every statement is scoped by user_id.
type catalogTable[T, C, P, F any] struct {
	db      *DB
	ids     idGenerator
	spec    catalogSpec[T, C, P, F]
	columns []string
}

func newCatalogTable[T, C, P, F any](db *DB, ids idGenerator, spec catalogSpec[T, C, P, F]) *catalogTable[T, C, P, F] {
	return &catalogTable[T, C, P, F]{
		db:      db,
		ids:     ids,
		spec:    spec,
		columns: columns(spec.row(new(T))),
	}
}

// Create inserts a new row owned by userID and returns it as stored.
func (t *catalogTable[T, C, P, F]) Create(ctx context.Context, userID string, input C) (T, error) {
	now := time.Now().UTC()
	id := t.ids.Generate()

	fields := concat(
		[]field{{"id", &id}, {"user_id", &userID}},
		t.spec.create(&input),
		[]field{{"created_at", &now}, {"updated_at", &now}},
	)

	query, args, err := sq.Insert(t.spec.table).
		Columns(columns(fields)...).
		Values(values(fields)...).
		ToSql()
	if err != nil {
		return *new(T), t.buildError(ctx, "Create", err)
	}

	if _, err = t.exec(ctx, "Create", query, args); err != nil {
		return *new(T), err
	}

	return t.Get(ctx, userID, id)
}

// Get returns the row with id if it belongs to userID, [ErrNotFound] otherwise.
func (t *catalogTable[T, C, P, F]) Get(ctx context.Context, userID, id string) (T, error) {
	query, args, err := t.selectRows(userID, sq.Eq{"id": id}).ToSql()
	if err != nil {
		return *new(T), t.buildError(ctx, "Get", err)
	}

	return t.queryOne(ctx, "Get", query, args)
}

// List returns one page of the user's rows matching filter.
func (t *catalogTable[T, C, P, F]) List(ctx context.Context, userID string, filter F) ([]T, error) {
	preds, opts := t.spec.filter(filter)
	opts = opts.Normalize()

	query, args, err := t.selectRows(userID, preds...).
		OrderBy(t.orderBy(opts), "id ASC").
		Limit(opts.Limit).
		Offset(opts.Offset).
		ToSql()
	if err != nil {
		return nil, t.buildError(ctx, "List", err)
	}

	return t.queryMany(ctx, "List", query, args)
}

// Count returns the number of the user's rows matching filter, ignoring paging.
func (t *catalogTable[T, C, P, F]) Count(ctx context.Context, userID string, filter F) (int64, error) {
	log := logger.FromContext(ctx)
	preds, _ := t.spec.filter(filter)

	builder := sq.Select("COUNT(*)").From(t.spec.table).Where(sq.Eq{"user_id": userID})
	for _, pred := range preds {
		builder = builder.Where(pred)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, t.buildError(ctx, "Count", err)
	}

	c, err := t.db.conn(ctx)
	if err != nil {
		return 0, err
	}
	defer c.Close()

	var total int64
	if err = c.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		err = classifyError(err)
		log.Err(err).Str("func", t.funcName("Count")).Msg("error counting rows")
		return 0, err
	}

	return total, nil
}

// Update writes the non-nil fields of patch in a single statement and
// refreshes updated_at. An empty patch returns the row unchanged.
func (t *catalogTable[T, C, P, F]) Update(ctx context.Context, userID, id string, patch P) (T, error) {
	set := setMap(t.spec.patch(&patch))
	if len(set) == 0 {
		return t.Get(ctx, userID, id)
	}
	set["updated_at"] = time.Now().UTC()

	query, args, err := sq.Update(t.spec.table).
		SetMap(set).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return *new(T), t.buildError(ctx, "Update", err)
	}

	affected, err := t.exec(ctx, "Update", query, args)
	if err != nil {
		return *new(T), err
	}
	if affected == 0 {
		return *new(T), ErrNotFound
	}

	return t.Get(ctx, userID, id)
}

// Delete removes the row. Rows of other users are reported as [ErrNotFound].
func (t *catalogTable[T, C, P, F]) Delete(ctx context.Context, userID, id string) error {
	query, args, err := sq.Delete(t.spec.table).Where(sq.Eq{"id": id, "user_id": userID}).ToSql()
	if err != nil {
		return t.buildError(ctx, "Delete", err)
	}

	affected, err := t.exec(ctx, "Delete", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// FindByBarcode returns at most one row with the given barcode.
func (t *catalogTable[T, C, P, F]) FindByBarcode(ctx context.Context, userID, barcode string) ([]T, error) {
	return t.findBy(ctx, "FindByBarcode", userID, sq.Eq{"barcode": barcode}, 1)
}

// FindByTMDBID returns at most one row with the given provider id.
func (t *catalogTable[T, C, P, F]) FindByTMDBID(ctx context.Context, userID string, tmdbID int64) ([]T, error) {
	return t.findBy(ctx, "FindByTMDBID", userID, sq.Eq{"tmdb_id": tmdbID}, 1)
}

// FindByTitle returns every row whose title or original title equals title.
func (t *catalogTable[T, C, P, F]) FindByTitle(ctx context.Context, userID, title string) ([]T, error) {
	return t.findBy(ctx, "FindByTitle", userID, sq.Or{sq.Eq{"title": title}, sq.Eq{"original_title": title}}, models.MaxScanRows)
}

// ListAll returns the user's rows in creation order, capped at
// [models.MaxScanRows].
func (t *catalogTable[T, C, P, F]) ListAll(ctx context.Context, userID string) ([]T, error) {
	query, args, err := t.selectRows(userID).
		OrderBy("created_at ASC", "id ASC").
		Limit(models.MaxScanRows).
		ToSql()
	if err != nil {
		return nil, t.buildError(ctx, "ListAll", err)
	}

	return t.queryMany(ctx, "ListAll", query, args)
}

func (t *catalogTable[T, C, P, F]) findBy(ctx context.Context, fn, userID string, pred sq.Sqlizer, limit uint64) ([]T, error) {
	query, args, err := t.selectRows(userID, pred).
		OrderBy("created_at ASC", "id ASC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, t.buildError(ctx, fn, err)
	}

	return t.queryMany(ctx, fn, query, args)
}

func (t *catalogTable[T, C, P, F]) selectRows(userID string, preds ...sq.Sqlizer) sq.SelectBuilder {
	builder := sq.Select(t.columns...).From(t.spec.table).Where(sq.Eq{"user_id": userID})
	for _, pred := range preds {
		builder = builder.Where(pred)
	}
	return builder
}

// orderBy resolves the sort key through the whitelist; the column name never
// comes from the caller.
func (t *catalogTable[T, C, P, F]) orderBy(opts models.ListOptions) string {
	column, ok := t.spec.sortColumns[opts.SortBy]
	if !ok {
		column = t.spec.defaultSort
	}

	direction := "ASC"
	if opts.SortOrder == models.SortDesc {
		direction = "DESC"
	}

	return column + " " + direction
}

// exec runs a write statement and returns the number of affected rows.
func (t *catalogTable[T, C, P, F]) exec(ctx context.Context, fn, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	c, err := t.db.conn(ctx)
	if err != nil {
		return 0, err
	}
	defer c.Close()

	res, err := c.ExecContext(ctx, query, args...)
	if err != nil {
		err = classifyError(err)
		log.Err(err).Str("func", t.funcName(fn)).Msg("error executing statement")
		return 0, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, classifyError(err)
	}

	return affected, nil
}

func (t *catalogTable[T, C, P, F]) queryOne(ctx context.Context, fn, query string, args []any) (T, error) {
	log := logger.FromContext(ctx)

	var row T
	c, err := t.db.conn(ctx)
	if err != nil {
		return row, err
	}
	defer c.Close()

	if err = c.QueryRowContext(ctx, query, args...).Scan(pointers(t.spec.row(&row))...); err != nil {
		err = classifyError(err)
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", t.funcName(fn)).Msg("error querying row")
		}
		return *new(T), err
	}

	return row, nil
}

func (t *catalogTable[T, C, P, F]) queryMany(ctx context.Context, fn, query string, args []any) ([]T, error) {
	log := logger.FromContext(ctx)

	c, err := t.db.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	rows, err := c.QueryContext(ctx, query, args...)
	if err != nil {
		err = classifyError(err)
		log.Err(err).Str("func", t.funcName(fn)).Msg("error querying rows")
		return nil, err
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		var row T
		if err = rows.Scan(pointers(t.spec.row(&row))...); err != nil {
			log.Err(err).Str("func", t.funcName(fn)).Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", t.funcName(fn)).Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (t *catalogTable[T, C, P, F]) buildError(ctx context.Context, fn string, err error) error {
	logger.FromContext(ctx).Err(err).Str("func", t.funcName(fn)).Msg("error building query")
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}

func (t *catalogTable[T, C, P, F]) funcName(fn string) string {
	return "*catalogTable[" + t.spec.table + "]." + fn
}

// catalogPredicates builds the WHERE predicates shared by movies and series.
func catalogPredicates(f models.CatalogFilter, searchColumns ...string) []sq.Sqlizer {
	var preds []sq.Sqlizer

	if f.Search != nil && *f.Search != "" {
		pattern := "%" + *f.Search + "%"
		search := make(sq.Or, 0, len(searchColumns))
		for _, column := range searchColumns {
			search = append(search, sq.Like{column: pattern})
		}
		preds = append(preds, search)
	}
	if f.Genre != nil && *f.Genre != "" {
		preds = append(preds, sq.Like{"genres": "%" + *f.Genre + "%"})
	}
	if f.DiscType != nil && *f.DiscType != "" {
		preds = append(preds, sq.Eq{"disc_type": *f.DiscType})
	}
	if f.Watched != nil {
		preds = append(preds, sq.Expr("COALESCE(watched, 0) = ?", *f.Watched))
	}
	if f.YearFrom != nil {
		preds = append(preds, sq.GtOrEq{"production_year": *f.YearFrom})
	}
	if f.YearTo != nil {
		preds = append(preds, sq.LtOrEq{"production_year": *f.YearTo})
	}

	return preds
}
