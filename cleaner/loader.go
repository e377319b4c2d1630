package cleaner

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrNotFound reports a missing patient data file. Callers can test
// for it with errors.Is.
var ErrNotFound = errors.New("patient data file not found")

// LoadPatients reads a JSON array of patient records from path. A
// missing file wraps ErrNotFound; malformed JSON or an uncoercible age
// value fails the whole load.
func LoadPatients(path string) ([]Patient, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var patients []Patient
	if err := json.Unmarshal(data, &patients); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return patients, nil
}
