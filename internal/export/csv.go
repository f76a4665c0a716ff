package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/dozyapp/dozy/internal/store"
)

// ToCSV writes the session-ledger history followed by the task list. The two
// sections share one file, separated by a blank record.
func ToCSV(days []store.DayCount, tasks []store.Task, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Date", "Focus Sessions"}); err != nil {
		return err
	}
	for _, d := range days {
		if err := w.Write([]string{d.Date, fmt.Sprintf("%d", d.Count)}); err != nil {
			return err
		}
	}

	if err := w.Write([]string{""}); err != nil {
		return err
	}
	if err := w.Write([]string{"Task", "Done", "Created"}); err != nil {
		return err
	}
	for _, t := range tasks {
		done := "no"
		if t.Done {
			done = "yes"
		}
		row := []string{t.Text, done, t.CreatedAt.Local().Format(time.RFC3339)}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
