package report

import (
	"fmt"
	"time"
)

const timestampLayout = "20060102T150405Z"

// reportFilename builds the download filename: the sheet id (or "unknown")
// plus a UTC timestamp and the format extension.
func reportFilename(sheetID string, format Format, now time.Time) string {
	if sheetID == "" {
		sheetID = "unknown"
	}
	return fmt.Sprintf("sheet_%s_%s.%s", sheetID, now.UTC().Format(timestampLayout), format.Ext())
}
