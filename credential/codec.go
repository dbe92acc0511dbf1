package credential

import "encoding/json"

// Encode serializes the full record collection to its JSON wire form.
func Encode(records map[string]Record) ([]byte, error) {
	return json.Marshal(records)
}

// Decode parses a stored blob into a record collection. Callers that treat
// corrupt data as an empty store should discard the map when err is non-nil.
func Decode(data []byte) (map[string]Record, error) {
	records := make(map[string]Record)
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = make(map[string]Record)
	}
	return records, nil
}
