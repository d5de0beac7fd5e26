package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/surrealdb/surrealdb.go"
)

// SurrealDB is the websocket-backed implementation of Database. A zero
// connection is valid; every method checks for it and reports ErrConnection.
type SurrealDB struct {
	conn *surrealdb.DB
	cfg  Config
}

func NewSurrealDB(cfg Config) *SurrealDB {
	return &SurrealDB{cfg: cfg}
}

// Connect dials the configured endpoint, signs in, and selects the
// namespace and database. On any failure the partial connection is closed.
func (s *SurrealDB) Connect(ctx context.Context) error {
	conn, err := surrealdb.FromEndpointURLString(ctx, fmt.Sprintf("ws://%s:%s", s.cfg.Host, s.cfg.Port))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	if _, err := conn.SignIn(ctx, &surrealdb.Auth{Username: s.cfg.User, Password: s.cfg.Password}); err != nil {
		_ = conn.Close(ctx)
		return fmt.Errorf("%w: signin failed: %v", ErrConnection, err)
	}
	if err := conn.Use(ctx, s.cfg.Namespace, s.cfg.Database); err != nil {
		_ = conn.Close(ctx)
		return fmt.Errorf("%w: use failed: %v", ErrConnection, err)
	}

	s.conn = conn
	return nil
}

func (s *SurrealDB) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close(context.Background())
}

// Ping asks the server for its version, the cheapest round trip the
// protocol offers.
func (s *SurrealDB) Ping(ctx context.Context) error {
	if s.conn == nil {
		return ErrConnection
	}
	if _, err := s.conn.Version(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Query runs a SurrealQL statement and returns one envelope per statement
// result. Each envelope is a map with "status" and "result" keys; the
// repository helpers unwrap that shape. A non-OK statement fails the whole
// call.
func (s *SurrealDB) Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	if s.conn == nil {
		return nil, ErrConnection
	}

	raw, err := surrealdb.Query[interface{}](ctx, s.conn, query, vars)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	if raw == nil {
		return nil, nil
	}

	envelopes := make([]interface{}, 0, len(*raw))
	for _, res := range *raw {
		if res.Status != "OK" {
			if res.Error != nil {
				return nil, fmt.Errorf("%w: %s", ErrQuery, res.Error.Message)
			}
			return nil, ErrQuery
		}
		envelopes = append(envelopes, map[string]interface{}{
			"status": res.Status,
			"result": res.Result,
		})
	}
	return envelopes, nil
}

// QueryOne runs a query expected to yield a single record and unwraps it
// from the first envelope. An empty result set maps to ErrNotFound.
func (s *SurrealDB) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
	envelopes, err := s.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	if len(envelopes) == 0 {
		return nil, ErrNotFound
	}

	envelope, ok := envelopes[0].(map[string]interface{})
	if !ok {
		return envelopes[0], nil
	}
	if status, ok := envelope["status"].(string); !ok || status != "OK" {
		return envelopes[0], nil
	}

	switch result := envelope["result"].(type) {
	case []interface{}:
		if len(result) == 0 {
			return nil, ErrNotFound
		}
		return result[0], nil
	default:
		// Scalars (counts, booleans) come back unwrapped.
		return result, nil
	}
}

func (s *SurrealDB) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	_, err := s.Query(ctx, query, vars)
	return err
}

// BeginTx opens a batch transaction. SurrealDB has no connection-level
// transaction handle over this driver, so statements are buffered and sent
// as one BEGIN/COMMIT block when Commit is called.
func (s *SurrealDB) BeginTx(ctx context.Context) (Transaction, error) {
	if s.conn == nil {
		return nil, ErrConnection
	}
	return &batchTx{conn: s.conn, ctx: ctx}, nil
}

// batchTx buffers statements until Commit. Reads inside the batch cannot
// return data before commit, so Query and QueryOne yield nothing.
type batchTx struct {
	conn      *surrealdb.DB
	ctx       context.Context
	stmts     []bufferedStmt
	committed bool
}

type bufferedStmt struct {
	query string
	vars  map[string]interface{}
}

func (t *batchTx) buffer(query string, vars map[string]interface{}) {
	t.stmts = append(t.stmts, bufferedStmt{query: query, vars: vars})
}

func (t *batchTx) Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	t.buffer(query, vars)
	return nil, nil
}

func (t *batchTx) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
	t.buffer(query, vars)
	return nil, nil
}

func (t *batchTx) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	t.buffer(query, vars)
	return nil
}

// Commit sends the buffered statements as a single transaction block.
// Variable names must be unique across the batch since the maps merge.
func (t *batchTx) Commit() error {
	if t.committed {
		return nil
	}

	var block strings.Builder
	block.WriteString("BEGIN TRANSACTION;\n")
	vars := make(map[string]interface{})
	for _, stmt := range t.stmts {
		block.WriteString(stmt.query)
		block.WriteString(";\n")
		for name, value := range stmt.vars {
			vars[name] = value
		}
	}
	block.WriteString("COMMIT TRANSACTION;")

	if _, err := surrealdb.Query[interface{}](t.ctx, t.conn, block.String(), vars); err != nil {
		return fmt.Errorf("%w: commit failed: %v", ErrQuery, err)
	}

	t.committed = true
	return nil
}

// Rollback drops the buffered statements. Nothing has reached the server
// before Commit, so there is nothing to undo.
func (t *batchTx) Rollback() error {
	t.stmts = nil
	return nil
}
