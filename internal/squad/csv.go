package squad

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cricsim/auction-tui/internal/player"
)

// Fixed export filenames.
const (
	PlayersCSVName   = "auction_players.csv"
	SelectionCSVName = "squad_selection.csv"
)

var errExport = errors.New("csv export failed")

// ExportPlayers writes the visible player rows, in display order, to the
// fixed players filename under dir. Fields are quoted per RFC 4180 so names
// containing commas survive.
func ExportPlayers(dir string, players []player.Player) (string, error) {
	rows := make([][]string, 0, len(players))
	for _, current := range players {
		rows = append(rows, []string{
			current.Name,
			current.Role.String(),
			current.Nationality.String(),
			current.PriceDisplay(),
			current.Outcome,
		})
	}

	return writeCSV(dir, PlayersCSVName, []string{"name", "role", "nationality", "predicted_price_cr", "outcome"}, rows)
}

// ExportSelection writes the curated squad selection to the fixed selection
// filename under dir.
func ExportSelection(dir string, selection *Selection) (string, error) {
	rows := make([][]string, 0, selection.Count())
	for _, current := range selection.Players() {
		rows = append(rows, []string{
			current.Name,
			current.Role.String(),
			current.Nationality.String(),
			current.PriceDisplay(),
		})
	}

	return writeCSV(dir, SelectionCSVName, []string{"name", "role", "nationality", "price_cr"}, rows)
}

func writeCSV(dir string, name string, header []string, rows [][]string) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", errors.Join(err, errExport)
	}

	outPath := filepath.Join(dir, name)
	file, errFile := os.Create(outPath)
	if errFile != nil {
		return "", errors.Join(errFile, errExport)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		_ = file.Close()

		return "", errors.Join(err, errExport)
	}

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			_ = file.Close()

			return "", errors.Join(err, errExport)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = file.Close()

		return "", errors.Join(err, errExport)
	}

	if err := file.Close(); err != nil {
		return "", errors.Join(err, errExport)
	}

	return outPath, nil
}

// ExportLabel is the short status line shown after a successful export.
func ExportLabel(path string, rowCount int) string {
	return fmt.Sprintf("Exported %d rows to %s", rowCount, path)
}
