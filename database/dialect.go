package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/biosecret/go-todo/config"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// dialect captures the differences between the supported SQL backends.
// Queries are written with '?' placeholders and rebound when needed.
type dialect struct {
	name      string
	goose     goose.Dialect
	numbered  bool // $1, $2, ... placeholders
	returning bool // INSERT ... RETURNING id instead of LastInsertId
	open      func(cfg config.DatabaseConfig) (*sql.DB, error)
}

var (
	postgresDialect = dialect{
		name:      config.DriverPostgres,
		goose:     goose.DialectPostgres,
		numbered:  true,
		returning: true,
		open:      openPostgres,
	}
	mysqlDialect = dialect{
		name:  config.DriverMySQL,
		goose: goose.DialectMySQL,
		open:  openMySQL,
	}
)

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case config.DriverPostgres, "pgx":
		return postgresDialect, nil
	case config.DriverMySQL:
		return mysqlDialect, nil
	}
	return dialect{}, fmt.Errorf("unsupported database driver %q", driver)
}

func (d dialect) rebind(query string) string {
	if !d.numbered {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// insert runs an INSERT and returns the generated id.
func (d dialect) insert(ctx context.Context, q querier, query string, args ...any) (int64, error) {
	if d.returning {
		var id int64
		err := q.QueryRowContext(ctx, d.rebind(query)+" RETURNING id", args...).Scan(&id)
		return id, err
	}
	res, err := q.ExecContext(ctx, d.rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func postgresDSN(cfg config.DatabaseConfig) string {
	if cfg.URI != "" {
		return cfg.URI
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     cfg.Addr(),
		Path:     "/" + cfg.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func openPostgres(cfg config.DatabaseConfig) (*sql.DB, error) {
	connConfig, err := pgx.ParseConfig(postgresDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	return stdlib.OpenDB(*connConfig), nil
}

func mysqlConfig(cfg config.DatabaseConfig) (*mysql.Config, error) {
	if cfg.URI != "" {
		mc, err := mysql.ParseDSN(cfg.URI)
		if err != nil {
			return nil, fmt.Errorf("parse mysql dsn: %w", err)
		}
		mc.ParseTime = true
		return mc, nil
	}
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = cfg.Addr()
	mc.DBName = cfg.Name
	mc.ParseTime = true
	return mc, nil
}

func openMySQL(cfg config.DatabaseConfig) (*sql.DB, error) {
	mc, err := mysqlConfig(cfg)
	if err != nil {
		return nil, err
	}
	connector, err := mysql.NewConnector(mc)
	if err != nil {
		return nil, err
	}
	return sql.OpenDB(connector), nil
}
