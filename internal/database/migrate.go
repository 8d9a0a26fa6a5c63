package database

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"elearning/internal/logger"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const migrationsTable = "SCHEMA_MIGRATIONS"

// Migrator applies numbered *.up.sql / *.down.sql files to Oracle.
// Files are enumerated through a golang-migrate source driver; versions
// are tracked in SCHEMA_MIGRATIONS.
type Migrator struct {
	db  *sqlx.DB
	src source.Driver
}

type appliedMigration struct {
	Version int64 `db:"VERSION"`
	Dirty   int   `db:"DIRTY"`
}

// NewMigrator reads migrations from dir inside fsys.
func NewMigrator(db *sqlx.DB, fsys fs.FS, dir string) (*Migrator, error) {
	src, err := iofs.New(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("could not open migration source %s: %w", dir, err)
	}
	return &Migrator{db: db, src: src}, nil
}

// Close releases the migration source.
func (m *Migrator) Close() error {
	return m.src.Close()
}

// Versions lists every version available in the source, ascending.
func (m *Migrator) Versions() ([]uint, error) {
	var versions []uint
	v, err := m.src.First()
	for err == nil {
		versions = append(versions, v)
		v, err = m.src.Next(v)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not list migrations: %w", err)
	}
	return versions, nil
}

// Up applies every migration not yet recorded and returns how many ran.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	if err := m.ensureTable(ctx); err != nil {
		return 0, err
	}
	applied, err := m.applied(ctx)
	if err != nil {
		return 0, err
	}
	versions, err := m.Versions()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, v := range versions {
		if _, ok := applied[v]; ok {
			continue
		}
		body, identifier, err := readAll(m.src.ReadUp(v))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return count, fmt.Errorf("could not read migration %d: %w", v, err)
		}

		if _, err := m.db.ExecContext(ctx,
			`INSERT INTO schema_migrations (version, dirty, applied_at) VALUES (:1, 1, :2)`,
			int64(v), time.Now().UTC()); err != nil {
			return count, fmt.Errorf("could not record migration %d: %w", v, err)
		}
		if err := m.execScript(ctx, body); err != nil {
			return count, fmt.Errorf("could not execute migration %d_%s (schema left dirty): %w", v, identifier, err)
		}
		if _, err := m.db.ExecContext(ctx,
			`UPDATE schema_migrations SET dirty = 0 WHERE version = :1`, int64(v)); err != nil {
			return count, fmt.Errorf("could not mark migration %d clean: %w", v, err)
		}

		logger.Get().Info("Executed migration", zap.Uint("version", v), zap.String("name", identifier))
		count++
	}
	return count, nil
}

// Down reverts the newest steps applied migrations and returns how many ran.
func (m *Migrator) Down(ctx context.Context, steps int) (int, error) {
	if err := m.ensureTable(ctx); err != nil {
		return 0, err
	}
	var versions []int64
	if err := m.db.SelectContext(ctx, &versions,
		`SELECT version FROM schema_migrations ORDER BY version DESC`); err != nil {
		return 0, fmt.Errorf("could not read applied migrations: %w", err)
	}

	count := 0
	for _, v := range versions {
		if count >= steps {
			break
		}
		body, identifier, err := readAll(m.src.ReadDown(uint(v)))
		if err != nil {
			return count, fmt.Errorf("could not read down migration %d: %w", v, err)
		}
		if err := m.execScript(ctx, body); err != nil {
			return count, fmt.Errorf("could not revert migration %d_%s: %w", v, identifier, err)
		}
		if _, err := m.db.ExecContext(ctx, `DELETE FROM schema_migrations WHERE version = :1`, v); err != nil {
			return count, fmt.Errorf("could not unrecord migration %d: %w", v, err)
		}
		logger.Get().Info("Reverted migration", zap.Int64("version", v), zap.String("name", identifier))
		count++
	}
	return count, nil
}

func (m *Migrator) ensureTable(ctx context.Context) error {
	var exists int
	if err := m.db.GetContext(ctx, &exists,
		`SELECT COUNT(*) FROM user_tables WHERE table_name = :1`, migrationsTable); err != nil {
		return fmt.Errorf("could not check migrations table: %w", err)
	}
	if exists > 0 {
		return nil
	}
	_, err := m.db.ExecContext(ctx, `CREATE TABLE schema_migrations (
    version    NUMBER(19) PRIMARY KEY,
    dirty      NUMBER(1) DEFAULT 0 NOT NULL,
    applied_at TIMESTAMP NOT NULL
)`)
	if err != nil {
		return fmt.Errorf("could not create migrations table: %w", err)
	}
	return nil
}

func (m *Migrator) applied(ctx context.Context) (map[uint]struct{}, error) {
	var rows []appliedMigration
	if err := m.db.SelectContext(ctx, &rows, `SELECT version, dirty FROM schema_migrations`); err != nil {
		return nil, fmt.Errorf("could not read applied migrations: %w", err)
	}
	applied := make(map[uint]struct{}, len(rows))
	for _, r := range rows {
		if r.Dirty != 0 {
			return nil, fmt.Errorf("database is dirty at version %d; fix it manually and delete the row", r.Version)
		}
		applied[uint(r.Version)] = struct{}{}
	}
	return applied, nil
}

func (m *Migrator) execScript(ctx context.Context, script string) error {
	for _, stmt := range SplitStatements(script) {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w\nstatement: %s", err, stmt)
		}
	}
	return nil
}

// SplitStatements splits a migration script on statement-terminating
// semicolons and drops the terminators, which Oracle rejects in a single Exec.
// Lines starting with "--" are ignored.
func SplitStatements(script string) []string {
	var (
		stmts   []string
		current strings.Builder
	)
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(strings.TrimRight(line, " \t\r"))
		if strings.HasSuffix(trimmed, ";") {
			stmt := strings.TrimSuffix(strings.TrimSpace(current.String()), ";")
			stmts = append(stmts, stmt)
			current.Reset()
		}
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		stmts = append(stmts, rest)
	}
	return stmts
}

func readAll(r io.ReadCloser, identifier string, err error) (string, string, error) {
	if err != nil {
		return "", identifier, err
	}
	defer r.Close()
	body, err := io.ReadAll(r)
	if err != nil {
		return "", identifier, err
	}
	return string(body), identifier, nil
}
