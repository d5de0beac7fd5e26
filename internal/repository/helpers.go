package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/urbanmove/api/internal/database"
)

// isUniqueConstraintError checks if an error is a unique constraint violation
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "unique") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "already exists")
}

// extractQueryResults extracts query results array from SurrealDB response
func extractQueryResults(result interface{}) ([]interface{}, bool) {
	// Handle SurrealDB response format
	if results, ok := result.([]interface{}); ok {
		if len(results) > 0 {
			if firstResult, ok := results[0].(map[string]interface{}); ok {
				if resultArray, ok := firstResult["result"].([]interface{}); ok {
					return resultArray, true
				}
			}
			// Direct array format
			return results, true
		}
	}
	return nil, false
}

// unwrapRecord digs a single record map out of a query result, stepping
// through the envelope and array layers the database layer may add.
func unwrapRecord(result interface{}) (map[string]interface{}, bool) {
	if envelope, ok := result.(map[string]interface{}); ok {
		if status, ok := envelope["status"].(string); ok && status == "OK" {
			if rows, ok := envelope["result"].([]interface{}); ok {
				if len(rows) == 0 {
					return nil, false
				}
				result = rows[0]
			}
		}
	}
	if rows, ok := result.([]interface{}); ok {
		if len(rows) == 0 {
			return nil, false
		}
		result = rows[0]
	}
	record, ok := result.(map[string]interface{})
	return record, ok
}

// createdRecord carries the server-assigned fields of a freshly created row.
type createdRecord struct {
	ID        string
	CreatedOn time.Time
	UpdatedOn time.Time
}

// extractCreatedRecord reads the record a CREATE statement returned.
func extractCreatedRecord(result []interface{}) (*createdRecord, error) {
	if len(result) == 0 {
		return nil, errors.New("no result returned")
	}

	data, ok := unwrapRecord(result[0])
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	record := &createdRecord{}
	if id, ok := data["id"]; ok {
		record.ID = convertSurrealID(id)
	}
	if createdOn, invalid := getTimeChecked(data, "created_on"); !invalid {
		record.CreatedOn = createdOn
	}
	if updatedOn, invalid := getTimeChecked(data, "updated_on"); !invalid {
		record.UpdatedOn = updatedOn
	}
	return record, nil
}

// convertSurrealID renders a record ID as the "table:id" string form the
// API uses. The driver hands IDs back in several shapes depending on the
// decoder path, so every known one is handled here.
func convertSurrealID(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return fmt.Sprintf("%s:%v", v.Table, v.ID)
	case *models.RecordID:
		if v != nil {
			return fmt.Sprintf("%s:%v", v.Table, v.ID)
		}
	case map[string]interface{}:
		table := ""
		for _, key := range []string{"tb", "TB", "Table"} {
			if t, ok := v[key].(string); ok {
				table = t
				break
			}
		}
		idPart := ""
		if nested, ok := v["id"]; ok {
			idPart = extractIDValue(nested)
		} else if nested, ok := v["ID"]; ok {
			idPart = extractIDValue(nested)
		}
		if table != "" && idPart != "" {
			return table + ":" + idPart
		}
		if idPart != "" {
			return idPart
		}
	}
	return fmt.Sprintf("%v", id)
}

// extractIDValue extracts the ID value which may be nested
func extractIDValue(val interface{}) string {
	if str, ok := val.(string); ok {
		return str
	}
	if m, ok := val.(map[string]interface{}); ok {
		// Check for {"String": "value"} format
		if s, ok := m["String"].(string); ok {
			return s
		}
		// Check for other common formats
		if s, ok := m["string"].(string); ok {
			return s
		}
	}
	return fmt.Sprintf("%v", val)
}

// WithTransaction executes a function within a transaction context
// If the function returns an error, the transaction is rolled back
func WithTransaction(ctx context.Context, db database.Database, fn func(tx database.Transaction) error) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// getString extracts a string value from a map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getStringPtr extracts an optional string value from a map
func getStringPtr(m map[string]interface{}, key string) *string {
	if v, ok := m[key].(string); ok && v != "" {
		return &v
	}
	return nil
}

// getInt extracts an int value from a map
func getInt(m map[string]interface{}, key string) int {
	if v, ok := m[key].(float64); ok {
		return int(v)
	}
	if v, ok := m[key].(float32); ok {
		return int(v)
	}
	if v, ok := m[key].(int); ok {
		return v
	}
	if v, ok := m[key].(int64); ok {
		return int(v)
	}
	if v, ok := m[key].(uint64); ok {
		return int(v)
	}
	return 0
}

// getIntPtr extracts an optional int value from a map
func getIntPtr(m map[string]interface{}, key string) *int {
	if _, ok := m[key]; !ok {
		return nil
	}
	if m[key] == nil {
		return nil
	}
	v := getInt(m, key)
	return &v
}

// getFloat extracts a float value from a map
func getFloat(m map[string]interface{}, key string) float64 {
	if v, ok := m[key].(float64); ok {
		return v
	}
	if v, ok := m[key].(float32); ok {
		return float64(v)
	}
	return 0
}

// getTimeChecked extracts a time value from a map, distinguishing an absent
// value from a present-but-unparseable one. Returns the zero time with
// invalid=false when the key is missing, and the zero time with invalid=true
// when a value exists but cannot be read as a timestamp.
func getTimeChecked(m map[string]interface{}, key string) (t time.Time, invalid bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return time.Time{}, false
	}

	switch val := v.(type) {
	case time.Time:
		return val, false
	case models.CustomDateTime:
		return val.Time, false
	case *models.CustomDateTime:
		if val != nil {
			return val.Time, false
		}
		return time.Time{}, false
	case string:
		if val == "" {
			return time.Time{}, false
		}
		if parsed, err := time.Parse(time.RFC3339, val); err == nil {
			return parsed, false
		}
		if parsed, err := time.Parse(time.RFC3339Nano, val); err == nil {
			return parsed, false
		}
		return time.Time{}, true
	}
	return time.Time{}, true
}

// getStringSlice extracts a string slice from a map. A missing or malformed
// value yields an empty slice, never nil, so the field serializes as a JSON
// array rather than null.
func getStringSlice(m map[string]interface{}, key string) []string {
	result := []string{}
	if v, ok := m[key].([]interface{}); ok {
		for _, item := range v {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
	}
	return result
}
