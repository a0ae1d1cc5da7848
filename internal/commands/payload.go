package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// readPayload loads a raw message payload as JSON from a file path, or from
// stdin when path is "-" or empty.
func readPayload(path string) (map[string]any, error) {
	var (
		data []byte
		err  error
	)

	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read payload from stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read payload file: %w", err)
		}
	}

	var detail map[string]any
	if err := json.Unmarshal(data, &detail); err != nil {
		return nil, fmt.Errorf("parse payload json: %w", err)
	}

	return detail, nil
}
