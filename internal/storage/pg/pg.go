// Package pg implements the storage interfaces over PostgreSQL. Every query
// error is converted into a domain failure at this boundary; driver error
// codes are captured here and nowhere else.
package pg

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/qanda-dev/qanda/internal/config"
	"github.com/qanda-dev/qanda/internal/errors"
	"github.com/qanda-dev/qanda/internal/logger"
)

type Storage struct {
	db *sql.DB
}

// New connects and pings. A failure here aborts startup; there is no retry.
func New(cfg config.Pg) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	logger.Log.Info("connected to db", "host", cfg.Host, "dbname", cfg.Dbname)
	return &Storage{db}, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

// queryError wraps a driver error into the generic database failure,
// keeping the Postgres error code when the driver provides one.
func queryError(err error) *errors.Error {
	if pqErr, ok := err.(*pq.Error); ok {
		return errors.DatabaseErr(string(pqErr.Code), err)
	}
	return errors.DatabaseErr("", err)
}
