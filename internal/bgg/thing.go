package bgg

import (
	"encoding/xml"
	"fmt"
	"strings"
)

const (
	linkCategory = "boardgamecategory"
	linkMechanic = "boardgamemechanic"
	linkArtist   = "boardgameartist"
	linkDesigner = "boardgamedesigner"
)

type thingItems struct {
	XMLName xml.Name    `xml:"items"`
	Items   []thingItem `xml:"item"`
}

type thingItem struct {
	ID            string     `xml:"id,attr"`
	Names         []valueTag `xml:"name"`
	YearPublished valueTag   `xml:"yearpublished"`
	MinPlayers    valueTag   `xml:"minplayers"`
	MaxPlayers    valueTag   `xml:"maxplayers"`
	PlayingTime   valueTag   `xml:"playingtime"`
	Links         []valueTag `xml:"link"`
}

type valueTag struct {
	Type  string `xml:"type,attr"`
	Value string `xml:"value,attr"`
}

// Thing is the flat record read from a thing API response. Numbers are kept
// as the API sent them; conversion happens when the record is stored.
type Thing struct {
	Name           string
	YearPublished  string
	MinPlayers     string
	MaxPlayers     string
	PlayingTime    string
	AlternateNames []string
	Categories     []string
	Mechanics      []string
	Artist         string
	Designer       string
}

// ParseThing decodes the first item of a thing API response.
func ParseThing(body []byte) (*Thing, error) {
	var doc thingItems
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedThing, err)
	}
	if len(doc.Items) == 0 {
		return nil, fmt.Errorf("%w: no item element", ErrMalformedThing)
	}
	item := doc.Items[0]

	thing := &Thing{
		YearPublished: item.YearPublished.Value,
		MinPlayers:    item.MinPlayers.Value,
		MaxPlayers:    item.MaxPlayers.Value,
		PlayingTime:   item.PlayingTime.Value,
	}
	for _, name := range item.Names {
		switch name.Type {
		case "primary":
			if thing.Name == "" {
				thing.Name = name.Value
			}
		case "alternate":
			thing.AlternateNames = append(thing.AlternateNames, name.Value)
		}
	}
	if thing.Name == "" {
		return nil, fmt.Errorf("%w: item %s has no primary name", ErrMalformedThing, item.ID)
	}

	var artists, designers []string
	for _, link := range item.Links {
		switch link.Type {
		case linkCategory:
			thing.Categories = append(thing.Categories, link.Value)
		case linkMechanic:
			thing.Mechanics = append(thing.Mechanics, link.Value)
		case linkArtist:
			artists = append(artists, link.Value)
		case linkDesigner:
			designers = append(designers, link.Value)
		}
	}
	thing.Artist = strings.Join(artists, ", ")
	thing.Designer = strings.Join(designers, ", ")
	return thing, nil
}
