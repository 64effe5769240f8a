package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The header row is the first record's keys in the order they appear
// on the wire. Decoding into a map would lose that order, so the
// first record is walked token by token.
func recordKeys(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("record is not an object")
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("decode record: unexpected token %v", tok)
		}
		keys = append(keys, key)

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, fmt.Errorf("decode record value for %q: %w", key, err)
		}
	}
	return keys, nil
}

func decodeRecord(raw json.RawMessage) (map[string]interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber() // keep "1" as 1, not 1.0

	m := map[string]interface{}{}
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return m, nil
}

// buildRows turns the submitted records into a header row and data
// rows. Every record is projected onto the first record's key list:
// a missing key becomes an empty cell, keys the first record did not
// have are dropped. This keeps columns aligned for ragged input
// instead of writing values positionally.
func buildRows(records []json.RawMessage) ([]interface{}, [][]interface{}, error) {
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("no records")
	}

	keys, err := recordKeys(records[0])
	if err != nil {
		return nil, nil, err
	}
	if len(keys) == 0 {
		return nil, nil, fmt.Errorf("first record has no fields")
	}

	header := make([]interface{}, len(keys))
	for i, k := range keys {
		header[i] = k
	}

	rows := make([][]interface{}, 0, len(records))
	for i, raw := range records {
		m, err := decodeRecord(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("record %d: %w", i, err)
		}
		row := make([]interface{}, len(keys))
		for j, k := range keys {
			v, ok := m[k]
			if !ok || v == nil {
				row[j] = ""
				continue
			}
			switch v.(type) {
			case string, json.Number, bool:
				row[j] = v
			default:
				// nested objects/arrays have no cell representation
				return nil, nil, fmt.Errorf("record %d: field %q is not a scalar", i, k)
			}
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}
