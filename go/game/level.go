package game

import "fmt"

// Level is a scene in the game. Scenes are identified in memory by a four
// character id such as 'HB01'.
type Level int

const (
	MainMenu Level = iota
	IntroCutscene
	BikiniBottom
	SpongebobHouse
	SquidwardHouse
	PatrickHouse
	ShadyShoals
	PoliceStation
	Treedome
	KrustyKrab
	ChumBucket
	Theater
	Poseidome
	IndustrialPark
	JellyfishRock
	JellyfishCaves
	JellyfishLake
	JellyfishMountain
	DowntownStreets
	DowntownRooftops
	DowntownLighthouse
	DowntownSeaNeedle
	GooLagoonBeach
	GooLagoonCaves
	GooLagoonPier
	MermalairEntranceArea
	MermalairMainChamber
	MermalairSecurityTunnel
	MermalairBallroom
	MermalairVillianContainment
	RockBottomDowntown
	RockBottomMuseum
	RockBottomTrench
	SandMountainHub
	SandMountainSlide1
	SandMountainSlide2
	SandMountainSlide3
	KelpForest
	KelpSwamps
	KelpCaves
	KelpVines
	GraveyardLake
	GraveyardShipwreck
	GraveyardShip
	GraveyardBoss
	SpongebobsDream
	SandysDream
	SquidwardsDream
	KrabsDream
	PatricksDream
	ChumBucketLab
	ChumBucketBrain
	SpongeballArena
)

var levels = [...]struct {
	id   [4]byte
	name string
}{
	MainMenu:                    {[4]byte{'M', 'N', 'U', '3'}, "Main Menu"},
	IntroCutscene:               {[4]byte{'H', 'B', '0', '0'}, "Intro Cutscene"},
	BikiniBottom:                {[4]byte{'H', 'B', '0', '1'}, "Bikini Bottom"},
	SpongebobHouse:              {[4]byte{'H', 'B', '0', '2'}, "Spongebob's House"},
	SquidwardHouse:              {[4]byte{'H', 'B', '0', '3'}, "Squidward's House"},
	PatrickHouse:                {[4]byte{'H', 'B', '0', '4'}, "Patrick's House"},
	ShadyShoals:                 {[4]byte{'H', 'B', '0', '6'}, "Shady Shoals"},
	PoliceStation:               {[4]byte{'H', 'B', '0', '9'}, "Police Station"},
	Treedome:                    {[4]byte{'H', 'B', '0', '5'}, "Treedome"},
	KrustyKrab:                  {[4]byte{'H', 'B', '0', '7'}, "Krusty Krab"},
	ChumBucket:                  {[4]byte{'H', 'B', '0', '8'}, "Chum Bucket"},
	Theater:                     {[4]byte{'H', 'B', '1', '0'}, "Theater"},
	Poseidome:                   {[4]byte{'B', '1', '0', '1'}, "Poseidome"},
	IndustrialPark:              {[4]byte{'B', '2', '0', '1'}, "Industrial Park"},
	JellyfishRock:               {[4]byte{'J', 'F', '0', '1'}, "Jellyfish Rock"},
	JellyfishCaves:              {[4]byte{'J', 'F', '0', '2'}, "Jellyfish Caves"},
	JellyfishLake:               {[4]byte{'J', 'F', '0', '3'}, "Jellyfish Lake"},
	JellyfishMountain:           {[4]byte{'J', 'F', '0', '4'}, "Jellyfish Mountain"},
	DowntownStreets:             {[4]byte{'B', 'B', '0', '1'}, "Downtown Streets"},
	DowntownRooftops:            {[4]byte{'B', 'B', '0', '2'}, "Downtown Rooftops"},
	DowntownLighthouse:          {[4]byte{'B', 'B', '0', '3'}, "Downtown Lighthouse"},
	DowntownSeaNeedle:           {[4]byte{'B', 'B', '0', '4'}, "Downtown Sea Needle"},
	GooLagoonBeach:              {[4]byte{'G', 'L', '0', '1'}, "Goo Lagoon Beach"},
	GooLagoonCaves:              {[4]byte{'G', 'L', '0', '2'}, "Goo Lagoon Caves"},
	GooLagoonPier:               {[4]byte{'G', 'L', '0', '3'}, "Goo Lagoon Pier"},
	MermalairEntranceArea:       {[4]byte{'B', 'C', '0', '1'}, "Mermalair Entrance Area"},
	MermalairMainChamber:        {[4]byte{'B', 'C', '0', '2'}, "Mermalair Main Chamber"},
	MermalairSecurityTunnel:     {[4]byte{'B', 'C', '0', '3'}, "Mermalair Security Tunnel"},
	MermalairBallroom:           {[4]byte{'B', 'C', '0', '4'}, "Mermalair Ballroom"},
	MermalairVillianContainment: {[4]byte{'B', 'C', '0', '5'}, "Mermalair Villian Containment"},
	RockBottomDowntown:          {[4]byte{'R', 'B', '0', '1'}, "Rock Bottom Downtown"},
	RockBottomMuseum:            {[4]byte{'R', 'B', '0', '2'}, "Rock Bottom Museum"},
	RockBottomTrench:            {[4]byte{'R', 'B', '0', '3'}, "Rock Bottom Trench"},
	SandMountainHub:             {[4]byte{'S', 'M', '0', '1'}, "Ski Lodge"},
	SandMountainSlide1:          {[4]byte{'S', 'M', '0', '2'}, "Guppy Mound"},
	SandMountainSlide2:          {[4]byte{'S', 'M', '0', '3'}, "Flounder Hill"},
	SandMountainSlide3:          {[4]byte{'S', 'M', '0', '4'}, "Sand Mountain"},
	KelpForest:                  {[4]byte{'K', 'F', '0', '1'}, "Kelp Forest"},
	KelpSwamps:                  {[4]byte{'K', 'F', '0', '2'}, "Kelp Swamps"},
	KelpCaves:                   {[4]byte{'K', 'F', '0', '4'}, "Kelp Caves"},
	KelpVines:                   {[4]byte{'K', 'F', '0', '5'}, "Kelp Vines"},
	GraveyardLake:               {[4]byte{'G', 'Y', '0', '1'}, "Graveyard Lake"},
	GraveyardShipwreck:          {[4]byte{'G', 'Y', '0', '2'}, "Graveyard of Ships"},
	GraveyardShip:               {[4]byte{'G', 'Y', '0', '3'}, "Dutchman's Ship"},
	GraveyardBoss:               {[4]byte{'G', 'Y', '0', '4'}, "Flying Dutchman Battle"},
	SpongebobsDream:             {[4]byte{'D', 'B', '0', '1'}, "Spongebob's Dream"},
	SandysDream:                 {[4]byte{'D', 'B', '0', '2'}, "Sandy's Dream"},
	SquidwardsDream:             {[4]byte{'D', 'B', '0', '3'}, "Squidward's Dream"},
	KrabsDream:                  {[4]byte{'D', 'B', '0', '4'}, "Krab's Dream"},
	PatricksDream:               {[4]byte{'D', 'B', '0', '6'}, "Patrick's Dream"},
	ChumBucketLab:               {[4]byte{'B', '3', '0', '2'}, "Chum Bucket Lab"},
	ChumBucketBrain:             {[4]byte{'B', '3', '0', '3'}, "Chum Bucket Brain"},
	SpongeballArena:             {[4]byte{'P', 'G', '1', '2'}, "Spongeball Arena"},
}

func (l Level) Valid() bool { return l >= 0 && int(l) < len(levels) }

func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levels[l].name
}

// SceneID returns the id the game uses for this level.
func (l Level) SceneID() [4]byte { return levels[l].id }

// LevelFromSceneID maps a scene id read from memory to a Level.
func LevelFromSceneID(id [4]byte) (Level, bool) {
	for i, info := range levels {
		if info.id == id {
			return Level(i), true
		}
	}
	return 0, false
}
