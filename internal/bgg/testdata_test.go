package bgg

const sampleThing = `<?xml version="1.0" encoding="utf-8"?>
<items termsofuse="https://boardgamegeek.com/xmlapi/termsofuse">
<item type="boardgame" id="1">
	<thumbnail>https://url.jpg</thumbnail>
	<name type="primary" sortindex="1" value="Game1" />
	<name type="alternate" sortindex="1" value="Gra1" />
	<yearpublished value="2021" />
	<minplayers value="1" />
	<maxplayers value="4" />
	<playingtime value="120" />
	<minplaytime value="60" />
	<maxplaytime value="120" />
	<minage value="14" />
	<link type="boardgamecategory" id="1022" value="Adventure" />
	<link type="boardgamecategory" id="1020" value="Exploration" />
	<link type="boardgamecategory" id="1010" value="Fantasy" />
	<link type="boardgamecategory" id="1046" value="Fighting" />
	<link type="boardgamecategory" id="1047" value="Miniatures" />
	<link type="boardgamemechanic" id="2689" value="Action Queue" />
	<link type="boardgamemechanic" id="2839" value="Action Retrieval" />
	<link type="boardgamemechanic" id="2040" value="Hand Management" />
	<link type="boardgameartist" id="11" value="artist" />
	<link type="boardgamedesigner" id="12" value="designer" />
	<link type="boardgamedesigner" id="13" value="second designer" />
</item>
</items>`

const sampleDump = `ID,Name,Year,Rank,Average,Bayes average,Users rated,URL,Thumbnail
1,Game1,2021,1,8.2,8.475,1000,/boardgame/1,https://url1.jpg
2,Game2,2019,2,7.9,8.1,900,/boardgame/2,https://url2.jpg
3,Game3,2015,3,7.7,7.9,800,/boardgame/3,https://url3.jpg
`
