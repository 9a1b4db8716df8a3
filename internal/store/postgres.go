package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/javajoker/saree-sanctuary/internal/filter"
	"github.com/javajoker/saree-sanctuary/internal/models"
)

// PostgresBackend stores each collection as a table of JSONB documents:
//
//	seq bigserial primary key | id uuid unique | body jsonb | created_at timestamptz
//
// seq records insertion order; id is exposed as the document identifier.
type PostgresBackend struct {
	db *gorm.DB
}

type PostgresOptions struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
	LogLevel     string
}

type documentRow struct {
	Seq       int64           `gorm:"column:seq;primaryKey;autoIncrement"`
	ID        uuid.UUID       `gorm:"column:id;type:uuid"`
	Body      models.Document `gorm:"column:body;type:jsonb"`
	CreatedAt time.Time       `gorm:"column:created_at"`
}

func NewPostgresBackend(ctx context.Context, opts PostgresOptions) (*PostgresBackend, error) {
	db, err := gorm.Open(postgres.Open(opts.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(opts.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.MaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.MaxLifetime)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresBackend{db: db}, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func (p *PostgresBackend) Name() string { return "postgres" }

func (p *PostgresBackend) Insert(ctx context.Context, collection string, doc models.Document) (string, error) {
	if doc == nil {
		doc = models.Document{}
	}
	row := documentRow{ID: uuid.New(), Body: doc}
	if err := p.db.WithContext(ctx).Table(collection).Create(&row).Error; err != nil {
		return "", err
	}
	return row.ID.String(), nil
}

func (p *PostgresBackend) Find(ctx context.Context, collection string, spec filter.Spec, limit int) ([]models.Document, error) {
	where, args, err := sqlWhere(spec)
	if err != nil {
		return nil, err
	}

	query := p.db.WithContext(ctx).Table(collection).Order("seq").Limit(limit)
	if where != "" {
		query = query.Where(where, args...)
	}

	var rows []documentRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	docs := make([]models.Document, 0, len(rows))
	for _, row := range rows {
		doc := row.Body
		if doc == nil {
			doc = models.Document{}
		}
		doc[models.InternalIDField] = row.ID
		docs = append(docs, doc)
	}
	return docs, nil
}

func (p *PostgresBackend) Collections(ctx context.Context) ([]string, error) {
	var names []string
	err := p.db.WithContext(ctx).
		Raw("SELECT table_name FROM information_schema.tables WHERE table_schema = current_schema() ORDER BY table_name").
		Scan(&names).Error
	return names, err
}

// Migrate creates one document table per collection plus expression indexes on the
// given body fields.
func (p *PostgresBackend) Migrate(ctx context.Context, indexes map[string][]string) error {
	db := p.db.WithContext(ctx)
	for collection, fields := range indexes {
		table := quoteIdent(collection)
		create := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			seq BIGSERIAL PRIMARY KEY,
			id UUID NOT NULL UNIQUE,
			body JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, table)
		if err := db.Exec(create).Error; err != nil {
			return fmt.Errorf("create table %s: %w", collection, err)
		}

		for _, field := range fields {
			index := fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s ((body->>%s))",
				quoteIdent("idx_"+collection+"_"+field), table, quoteLiteral(field))
			if err := db.Exec(index).Error; err != nil {
				return fmt.Errorf("create index %s.%s: %w", collection, field, err)
			}
		}
	}
	return nil
}

func (p *PostgresBackend) Close(context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func quoteLiteral(s string) string {
	return `'` + strings.ReplaceAll(s, `'`, `''`) + `'`
}

// sqlWhere translates a filter.Spec into a gorm WHERE fragment over the body column.
// An empty fragment means match-all.
func sqlWhere(spec filter.Spec) (string, []interface{}, error) {
	t := &sqlTranslator{}
	if err := filter.Visit(spec, t); err != nil {
		return "", nil, err
	}
	return t.sql, t.args, nil
}

type sqlTranslator struct {
	sql  string
	args []interface{}
}

func (t *sqlTranslator) Equals(e filter.Equals) error {
	t.sql = "body->>? = ?"
	t.args = []interface{}{e.Field, e.Value}
	return nil
}

func (t *sqlTranslator) SubstringAny(s filter.SubstringAny) error {
	if len(s.Fields) == 0 {
		t.sql = "FALSE"
		return nil
	}
	pattern := "%" + escapeLike(s.Needle) + "%"
	parts := make([]string, 0, len(s.Fields))
	for _, field := range s.Fields {
		parts = append(parts, "body->>? ILIKE ?")
		t.args = append(t.args, field, pattern)
	}
	t.sql = "(" + strings.Join(parts, " OR ") + ")"
	return nil
}

func (t *sqlTranslator) And(a filter.And) error {
	var parts []string
	for _, clause := range a.Clauses {
		sql, args, err := sqlWhere(clause)
		if err != nil {
			return err
		}
		if sql == "" {
			continue
		}
		parts = append(parts, sql)
		t.args = append(t.args, args...)
	}
	t.sql = strings.Join(parts, " AND ")
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
