package differ

import "encoding/json"

// Result summarizes one suite run: the configuration it ran with, how many
// cases were checked, and every mismatch found. It can be serialized as
// JSON to move run evidence between tools.
type Result struct {
	Rounds     int        `json:"rounds"`
	Ranges     []int64    `json:"ranges"`
	Checked    int        `json:"checkedCases"`
	Mismatches []Mismatch `json:"mismatches"`
}

// Clean reports whether the run found no mismatches.
func (r Result) Clean() bool {
	return len(r.Mismatches) == 0
}

// Export encodes the result as JSON.
func (r Result) Export() (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ImportResult parses a JSON-encoded run result, the inverse of Export.
func ImportResult(data string) (Result, error) {
	var r Result
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		return Result{}, err
	}
	return r, nil
}
