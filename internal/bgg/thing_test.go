package bgg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseThing(t *testing.T) {
	thing, err := ParseThing([]byte(sampleThing))
	require.NoError(t, err)

	assert.Equal(t, "Game1", thing.Name)
	assert.Equal(t, "2021", thing.YearPublished)
	assert.Equal(t, "1", thing.MinPlayers)
	assert.Equal(t, "4", thing.MaxPlayers)
	assert.Equal(t, "120", thing.PlayingTime)
	assert.Equal(t, []string{"Gra1"}, thing.AlternateNames)
	assert.Equal(t, []string{"Adventure", "Exploration", "Fantasy", "Fighting", "Miniatures"}, thing.Categories)
	assert.Equal(t, []string{"Action Queue", "Action Retrieval", "Hand Management"}, thing.Mechanics)
	assert.Equal(t, "artist", thing.Artist)
	assert.Equal(t, "designer, second designer", thing.Designer)
}

func TestParseThing_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not xml", body: "Service Unavailable"},
		{name: "no item", body: `<?xml version="1.0" encoding="utf-8"?><items></items>`},
		{name: "wrong root", body: `<errors><error><message>Not found</message></error></errors>`},
		{name: "no primary name", body: `<items><item id="7"><name type="alternate" value="Alt"/></item></items>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseThing([]byte(tt.body))
			assert.ErrorIs(t, err, ErrMalformedThing)
		})
	}
}
