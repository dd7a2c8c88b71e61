package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/shortiehands/finances-tracking-app/internal/core"

	_ "modernc.org/sqlite"
)

// dateLayout is fixed-width so that lexical ORDER BY on the column matches
// chronological order. All values are stored in UTC.
const dateLayout = "2006-01-02 15:04:05.000000000"

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, tx core.Transaction) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (date, type, amount, category, description, transport_type)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		tx.Date.UTC().Format(dateLayout),
		string(tx.Type),
		tx.Amount,
		tx.Category,
		tx.Description,
		nullString(tx.TransportType),
	)
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved",
		"id", id,
		"type", tx.Type,
		"category", tx.Category,
		"amount", tx.Amount)

	return id, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (core.Transaction, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, date, type, amount, category, description, transport_type
		 FROM transactions WHERE id = ?`, id)

	tx, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, fmt.Errorf("get transaction %d: %w", id, core.ErrNotFound)
	}
	if err != nil {
		return core.Transaction{}, fmt.Errorf("get transaction %d: %w", id, err)
	}
	return tx, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, type, amount, category, description, transport_type
		 FROM transactions ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	txs := make([]core.Transaction, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, id int64, tx core.Transaction) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE transactions
		 SET date = ?, type = ?, amount = ?, category = ?, description = ?, transport_type = ?
		 WHERE id = ?`,
		tx.Date.UTC().Format(dateLayout),
		string(tx.Type),
		tx.Amount,
		tx.Category,
		tx.Description,
		nullString(tx.TransportType),
		id,
	)
	if err != nil {
		return fmt.Errorf("update transaction %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update transaction %d: rows affected: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("update transaction %d: %w", id, core.ErrNotFound)
	}

	slog.InfoContext(ctx, "Transaction updated", "id", id)
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete transaction %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete transaction %d: rows affected: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete transaction %d: %w", id, core.ErrNotFound)
	}

	slog.InfoContext(ctx, "Transaction deleted", "id", id)
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (core.Transaction, error) {
	var (
		tx        core.Transaction
		date      string
		typ       string
		transport sql.NullString
	)
	if err := row.Scan(&tx.ID, &date, &typ, &tx.Amount, &tx.Category, &tx.Description, &transport); err != nil {
		return core.Transaction{}, err
	}

	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse stored date %q: %w", date, err)
	}
	tx.Date = parsed.UTC()
	tx.Type = core.TransactionType(typ)
	if transport.Valid {
		tx.TransportType = &transport.String
	}
	return tx, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
