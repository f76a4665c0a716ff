package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dozyapp/dozy/internal/store"
)

type jsonExport struct {
	ExportedAt string     `json:"exported_at"`
	Sessions   []jsonDay  `json:"sessions"`
	Tasks      []jsonTask `json:"tasks"`
}

type jsonDay struct {
	Date     string `json:"date"`
	Sessions int    `json:"sessions"`
}

type jsonTask struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Done      bool   `json:"done"`
	CreatedAt string `json:"created_at"`
}

func ToJSON(days []store.DayCount, tasks []store.Task, path string) error {
	out := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
	}

	for _, d := range days {
		out.Sessions = append(out.Sessions, jsonDay{Date: d.Date, Sessions: d.Count})
	}
	for _, t := range tasks {
		out.Tasks = append(out.Tasks, jsonTask{
			ID:        t.ID,
			Text:      t.Text,
			Done:      t.Done,
			CreatedAt: t.CreatedAt.Local().Format(time.RFC3339),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
