package output

import (
	"encoding/json"
	"os"

	"github.com/asp28gar-eng/Dataworkflow/pkg/courserank/models"
)

// ToJSON serializes a summary.
func ToJSON(summary *models.Summary, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(summary, "", "  ")
	}
	return json.Marshal(summary)
}

// WriteJSON writes the indented summary to path.
func WriteJSON(summary *models.Summary, path string) error {
	data, err := ToJSON(summary, true)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
