package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// GetOne runs a single-row query and scans it into a T. A query matching no
// row yields (nil, nil); any other failure is returned as is.
func GetOne[T any](ctx context.Context, q sqlx.QueryerContext, query string, args ...any) (*T, error) {
	var out T
	if err := sqlx.GetContext(ctx, q, &out, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

// Table is a read helper for one table whose rows scan into T. Entity
// repositories embed it instead of sharing a base type.
type Table[T any] struct {
	db      *DB
	name    string
	columns string
}

// NewTable describes table name. Reads select the given columns, or every
// column when none are listed.
func NewTable[T any](d *DB, name string, columns ...string) Table[T] {
	cols := "*"
	if len(columns) > 0 {
		cols = strings.Join(columns, ", ")
	}
	return Table[T]{db: d, name: name, columns: cols}
}

// DB returns the handle the table reads from.
func (t Table[T]) DB() *DB {
	return t.db
}

// GetBy returns the row whose column equals value, or nil when there is none.
// column must be a trusted identifier, never caller input.
func (t Table[T]) GetBy(ctx context.Context, column string, value any) (*T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", t.columns, t.name, column)
	row, err := GetOne[T](ctx, t.db, query, value)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find %s by %s", t.name, column)
	}
	return row, nil
}
