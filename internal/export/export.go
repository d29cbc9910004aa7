// Package export writes plain-text board reports.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/planboard/pkg/types"
)

// statusGlyphs marks each task line with its status.
var statusGlyphs = map[string]string{
	types.TaskStatusOpen:       "🟢",
	types.TaskStatusInProgress: "🟡",
	types.TaskStatusComplete:   "✅",
}

// TextExporter writes reports into OutDir, one file per board.
type TextExporter struct {
	OutDir string
}

// FileName returns the report file name for a board id.
func FileName(boardID string) string {
	return "board_" + boardID + ".txt"
}

// Export writes the report for board and returns its file name relative to
// OutDir. An existing report for the same board is replaced.
func (x TextExporter) Export(board types.Board, tasks []types.Task) (string, error) {
	if err := os.MkdirAll(x.OutDir, 0o755); err != nil {
		return "", fmt.Errorf("create out dir: %w", err)
	}
	name := FileName(board.ID)
	if err := os.WriteFile(filepath.Join(x.OutDir, name), []byte(Render(board, tasks)), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return name, nil
}

// Render formats the report text.
func Render(board types.Board, tasks []types.Task) string {
	lines := []string{
		fmt.Sprintf("BOARD: %s (Status: %s)\n", board.Name, board.Status),
		fmt.Sprintf("Description: %s\n", board.Description),
		fmt.Sprintf("Created: %s", board.CreationTime),
	}
	if board.Status == types.BoardStatusClosed {
		endTime := ""
		if board.EndTime != nil {
			endTime = *board.EndTime
		}
		lines = append(lines, "Closed at: "+endTime)
	}
	lines = append(lines, "\nTasks:")
	for _, t := range tasks {
		glyph, ok := statusGlyphs[t.Status]
		if !ok {
			glyph = "?"
		}
		lines = append(lines, fmt.Sprintf("  [%s] %s: %s (Assigned: %s, Created: %s)",
			glyph, t.Title, t.Description, t.UserID, t.CreationTime))
	}
	return strings.Join(lines, "\n")
}
