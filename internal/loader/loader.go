// Package loader pushes generated datasets into live databases so synthetic
// data can back integration environments directly.
package loader

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"synthkit/internal/engine"
)

const defaultBatchSize = 500

// SQLLoader writes datasets into one SQL database. The table must already
// exist with columns matching the dataset's fields.
type SQLLoader struct {
	db        *sql.DB
	provider  string
	qb        squirrel.StatementBuilderType
	BatchSize int
}

// driverName maps a provider alias onto the registered database/sql driver.
func driverName(provider string) (string, error) {
	switch strings.ToLower(provider) {
	case "postgres", "postgresql":
		return "pgx", nil
	case "mysql":
		return "mysql", nil
	case "sqlite", "sqlite3":
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported database provider: %s", provider)
	}
}

// OpenSQL connects to provider at url and verifies the connection.
func OpenSQL(ctx context.Context, provider, url string) (*SQLLoader, error) {
	driver, err := driverName(provider)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	qb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	if driver == "pgx" {
		qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return &SQLLoader{db: db, provider: provider, qb: qb, BatchSize: defaultBatchSize}, nil
}

// Close releases the underlying connection pool.
func (l *SQLLoader) Close() error {
	return l.db.Close()
}

// quoteIdent quotes an identifier for the active dialect.
func (l *SQLLoader) quoteIdent(name string) string {
	switch strings.ToLower(l.provider) {
	case "mysql":
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	default:
		return pq.QuoteIdentifier(name)
	}
}

// LoadTable inserts rows into table in batches inside one transaction.
// Column order follows the sorted union of keys so every batch shares one
// statement shape.
func (l *SQLLoader) LoadTable(ctx context.Context, table string, rows engine.Dataset) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	cols := columnSet(rows)
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = l.quoteIdent(c)
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	batchSize := l.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	inserted := 0
	for start := 0; start < len(rows); start += batchSize {
		end := min(start+batchSize, len(rows))
		builder := l.qb.Insert(l.quoteIdent(table)).Columns(quoted...)
		for _, row := range rows[start:end] {
			values := make([]any, len(cols))
			for i, c := range cols {
				values[i] = row[c]
			}
			builder = builder.Values(values...)
		}
		query, args, err := builder.ToSql()
		if err != nil {
			return inserted, fmt.Errorf("failed to build insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return inserted, fmt.Errorf("failed to insert into %s: %w", table, err)
		}
		inserted += end - start
	}

	if err := tx.Commit(); err != nil {
		return inserted, fmt.Errorf("failed to commit: %w", err)
	}
	return inserted, nil
}

// LoadAll inserts every dataset in tables order, returning per-table counts.
// It stops at the first failing table.
func (l *SQLLoader) LoadAll(ctx context.Context, datasets map[string]engine.Dataset) (map[string]int, error) {
	tables := make([]string, 0, len(datasets))
	for t := range datasets {
		tables = append(tables, t)
	}
	sort.Strings(tables)

	counts := make(map[string]int, len(tables))
	for _, table := range tables {
		n, err := l.LoadTable(ctx, table, datasets[table])
		counts[table] = n
		if err != nil {
			return counts, err
		}
	}
	return counts, nil
}

func columnSet(rows engine.Dataset) []string {
	seen := make(map[string]bool)
	var cols []string
	for _, row := range rows {
		for k := range row {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)
	return cols
}
