package jsonutil

import (
	"encoding/json"
	"os"
)

// Read decodes the JSON file at pathname into document. Writing is left to
// the audit trail, which is plain text and append-only.
func Read(pathname string, document interface{}) error {
	b, err := os.ReadFile(pathname)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, document)
}
