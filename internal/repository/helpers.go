package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// toContent converts a domain struct to the map stored as record
// content. The id field is removed because it lives in the record id
// (table:uuid), not in the content; timestamps become RFC 3339 strings.
func toContent(v interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	content := map[string]interface{}{}
	if err := json.Unmarshal(raw, &content); err != nil {
		return nil, err
	}
	delete(content, "id")
	return content, nil
}

// decodeRecord converts a SurrealDB result row into a domain struct,
// normalizing the record id to a bare uuid first.
func decodeRecord(row interface{}, out interface{}) error {
	data, ok := row.(map[string]interface{})
	if !ok {
		return errors.New("unexpected result format")
	}
	if id, ok := data["id"]; ok {
		data["id"] = bareID(convertRecordID(id))
	}
	for k, v := range data {
		if dt, ok := v.(models.CustomDateTime); ok {
			data[k] = dt.Time.Format(time.RFC3339)
		} else if dt, ok := v.(*models.CustomDateTime); ok && dt != nil {
			data[k] = dt.Time.Format(time.RFC3339)
		}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// rowsFromResult unwraps the {status, result} wrapper Query returns.
func rowsFromResult(result []interface{}) []interface{} {
	if len(result) == 0 {
		return nil
	}
	if resp, ok := result[0].(map[string]interface{}); ok {
		if rows, ok := resp["result"].([]interface{}); ok {
			return rows
		}
	}
	return result
}

// convertRecordID converts a SurrealDB record id (which may be a complex
// object) to its table:id string form.
func convertRecordID(id interface{}) string {
	if str, ok := id.(string); ok {
		return str
	}

	if rid, ok := id.(models.RecordID); ok {
		return fmt.Sprintf("%s:%v", rid.Table, rid.ID)
	}
	if rid, ok := id.(*models.RecordID); ok && rid != nil {
		return fmt.Sprintf("%s:%v", rid.Table, rid.ID)
	}

	// Handle map format: {"tb": "wedding", "id": "xxx"} or similar
	if m, ok := id.(map[string]interface{}); ok {
		tb := ""
		idPart := ""

		if t, ok := m["tb"].(string); ok {
			tb = t
		} else if t, ok := m["Table"].(string); ok {
			tb = t
		}

		if idVal, ok := m["id"]; ok {
			idPart = extractIDValue(idVal)
		} else if idVal, ok := m["ID"]; ok {
			idPart = extractIDValue(idVal)
		}

		if tb != "" && idPart != "" {
			return tb + ":" + idPart
		}
		if idPart != "" {
			return idPart
		}
	}

	return fmt.Sprintf("%v", id)
}

// extractIDValue extracts the id value which may be nested
func extractIDValue(val interface{}) string {
	if str, ok := val.(string); ok {
		return str
	}
	if m, ok := val.(map[string]interface{}); ok {
		if s, ok := m["String"].(string); ok {
			return s
		}
		if s, ok := m["string"].(string); ok {
			return s
		}
	}
	return fmt.Sprintf("%v", val)
}

// bareID strips the table prefix from a table:id record id, including
// the angle brackets SurrealDB adds around non-alphanumeric ids.
func bareID(recordID string) string {
	if i := strings.IndexByte(recordID, ':'); i >= 0 {
		recordID = recordID[i+1:]
	}
	recordID = strings.TrimPrefix(recordID, "⟨")
	return strings.TrimSuffix(recordID, "⟩")
}
