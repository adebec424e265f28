package bgg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRankingDump(t *testing.T) {
	rows, err := ParseRankingDump(strings.NewReader(sampleDump))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, RankingRow{ID: "1", Rank: "1", Average: "8.475", Thumbnail: "https://url1.jpg"}, rows[0])
	assert.Equal(t, "3", rows[2].ID)
	assert.Equal(t, "https://url3.jpg", rows[2].Thumbnail)
}

func TestParseRankingDump_HeaderOnly(t *testing.T) {
	rows, err := ParseRankingDump(strings.NewReader("ID,Name,Year,Rank,Average,Bayes,Users,URL,Thumbnail\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseRankingDump_ShortRow(t *testing.T) {
	input := "ID,Name,Year,Rank,Average,Bayes,Users,URL,Thumbnail\n1,Game1,2021,1\n"

	_, err := ParseRankingDump(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
