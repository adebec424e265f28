package bgg

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Fixed column positions of the daily ranking dump.
const (
	colID        = 0
	colRank      = 3
	colAverage   = 5
	colThumbnail = 8
)

// RankingRow is one game from the daily ranking dump.
type RankingRow struct {
	ID        string
	Rank      string
	Average   string
	Thumbnail string
}

// ParseRankingDump reads the ranking CSV, skipping the header row.
func ParseRankingDump(r io.Reader) ([]RankingRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	var rows []RankingRow
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read ranking dump line %d: %w", line, err)
		}
		if line == 1 {
			continue
		}
		if len(record) <= colThumbnail {
			return nil, fmt.Errorf("ranking dump line %d: expected at least %d columns, got %d", line, colThumbnail+1, len(record))
		}
		rows = append(rows, RankingRow{
			ID:        record[colID],
			Rank:      record[colRank],
			Average:   record[colAverage],
			Thumbnail: record[colThumbnail],
		})
	}
	return rows, nil
}
