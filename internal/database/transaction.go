package database

import (
	"context"
	"fmt"
	"strings"
)

// TxBuilder assembles a BEGIN/COMMIT block from independent statements.
// Each statement's variables are renamed into a private namespace
// ($email becomes $v1_email) so statements written in isolation cannot
// clobber each other's bindings when merged into one batch.
type TxBuilder struct {
	statements []string
	vars       map[string]interface{}
	nextVar    int
}

// NewTxBuilder creates a new transaction builder
func NewTxBuilder() *TxBuilder {
	return &TxBuilder{vars: make(map[string]interface{})}
}

// Add appends a statement, rewriting its variable references into the
// builder's namespace. The returned map gives the new name for each
// original variable, for callers that need to reference them later.
func (tb *TxBuilder) Add(query string, vars map[string]interface{}) map[string]string {
	renames := make(map[string]string, len(vars))
	for name, value := range vars {
		tb.nextVar++
		scoped := fmt.Sprintf("v%d_%s", tb.nextVar, name)
		query = strings.ReplaceAll(query, "$"+name, "$"+scoped)
		tb.vars[scoped] = value
		renames[name] = scoped
	}
	tb.statements = append(tb.statements, query)
	return renames
}

// AddRaw appends a statement untouched, for queries with no variables.
func (tb *TxBuilder) AddRaw(query string) {
	tb.statements = append(tb.statements, query)
}

// Build renders the transaction block and its merged variable map. An
// empty builder yields an empty query.
func (tb *TxBuilder) Build() (string, map[string]interface{}) {
	if len(tb.statements) == 0 {
		return "", nil
	}

	var block strings.Builder
	block.WriteString("BEGIN TRANSACTION;\n")
	for _, stmt := range tb.statements {
		block.WriteString(stmt)
		if !strings.HasSuffix(strings.TrimSpace(stmt), ";") {
			block.WriteString(";")
		}
		block.WriteString("\n")
	}
	block.WriteString("COMMIT TRANSACTION;")
	return block.String(), tb.vars
}

// ExecuteTransaction runs the built block as a single query.
func ExecuteTransaction(ctx context.Context, db Database, tb *TxBuilder) ([]interface{}, error) {
	query, vars := tb.Build()
	if query == "" {
		return nil, nil
	}
	return db.Query(ctx, query, vars)
}

// AtomicBatch is the fluent wrapper around TxBuilder for the common case
// of a few statements that must land together.
type AtomicBatch struct {
	queries []batchQuery
}

type batchQuery struct {
	query string
	vars  map[string]interface{}
}

// NewAtomicBatch creates a new atomic batch
func NewAtomicBatch() *AtomicBatch {
	return &AtomicBatch{}
}

// Add appends a query to the batch and returns the batch for chaining.
func (ab *AtomicBatch) Add(query string, vars map[string]interface{}) *AtomicBatch {
	ab.queries = append(ab.queries, batchQuery{query: query, vars: vars})
	return ab
}

// Execute runs the batch as one transaction. An empty batch is a no-op.
func (ab *AtomicBatch) Execute(ctx context.Context, db Database) error {
	if len(ab.queries) == 0 {
		return nil
	}

	tb := NewTxBuilder()
	for _, q := range ab.queries {
		tb.Add(q.query, q.vars)
	}
	_, err := ExecuteTransaction(ctx, db, tb)
	return err
}

// Len returns the number of queries in the batch
func (ab *AtomicBatch) Len() int {
	return len(ab.queries)
}
