package game

import "fmt"

// Spatula identifies one golden spatula, and with it the task that awards it.
type Spatula int

const (
	// Bikini Bottom
	OnTopOfThePineapple Spatula = iota
	OnTopOfShadyShoals
	OnTopOfTheChumBucket
	SpongebobsCloset
	AnnoySquidward
	AmbushAtTheTreeDome
	InfestationAtTheKrustyKrab
	AWallJumpInTheBucket

	// Jellyfish Fields
	TopOfTheHill
	CowaBungee
	Spelunking
	PatricksDilemma
	NavigateTheCanyonsAndMesas
	DrainTheLake
	SlideLeap
	DefeatKingJellyfish

	// Downtown Bikini Bottom
	EndOfTheRoad
	LearnSandysMoves
	TikisGoBoom
	AcrossTheRooftops
	SwinginSandy
	AmbushInTheLighthouse
	ExtremeBungee
	ComeBackWithTheCruiseBubble

	// Goo Lagoon
	KingOfTheCastle
	ConnectTheTowers
	SaveTheChildren
	OverTheMoat
	ThroughTheSeaCaves
	CleanOutTheBumperBoats
	SlipAndSlideUnderThePier
	TowerBungee

	// Poseidome
	RumbleAtThePoseidome

	// Rock Bottom
	GetToTheMuseum
	SlipSlidingAway
	ReturnTheMuseumsArt
	SwingalongSpatula
	PlunderingRobotsInTheMuseum
	AcrossTheTrenchOfDarkness
	LasersAreFunAndGoodForYou
	HowInTarnationDoYouGetThere

	// Mermalair
	TopOfTheEntranceAreaML
	TopOfTheComputerArea
	ShutDownTheSecuritySystem
	TheFunnelMachines
	TheSpinningTowersOfPower
	TopOfTheSecurityTunnel
	CompleteTheRollingBallRoom
	DefeatPrawn

	// Sand Mountain
	FrostyBungee
	TopOfTheLodge
	DefeatRobotsOnGuppyMound
	BeatMrsPuffsTime
	DefeatRobotsOnFlounderHill
	BeatBubbleBuddysTime
	DefeatRobotsOnSandMountain
	BeatLarrysTime

	// Industrial Park
	RoboPatrickAhoy

	// Kelp Forest
	ThroughTheWoods
	FindAllTheLostCampers
	TikiRoundup
	DownInTheSwamp
	ThroughTheKelpCaves
	PowerCrystalCrisis
	KelpVineSlide
	BeatMermaidMansTime

	// Flying Dutchman's Graveyard
	TopOfTheEntranceAreaFDG
	APathThroughTheGoo
	GooTankerAhoy
	TopOfTheStackOfShips
	ShipwreckBungee
	DestroyTheRobotShip
	GetAloftThereMatey
	DefeatTheFlyingDutchman

	// SpongeBob's Dream
	AcrossTheDreamscape
	FollowTheBouncingBall
	SlidingTexasStyle
	SwingersAhoy
	MusicIsInTheEarOfTheBeholder
	KrabbyPattyPlatforms
	SuperBounce
	HereYouGo

	// Chum Bucket Lab
	KahRahTae
	TheSmallShallRuleOrNot
)

// SpatulaCount is the number of spatulas in the game.
const SpatulaCount = 84

type spatulaInfo struct {
	name   string
	world  int
	index  int
	level  Level
	offset int
}

// offset is the index into the scene entity array, or -1 when the spatula is
// not a collectible entity.
var spatulas = [SpatulaCount]spatulaInfo{
	OnTopOfThePineapple:          {"On Top of the Pineapple", 0, 0, BikiniBottom, 0xa8},
	OnTopOfShadyShoals:           {"On Top of Shady Shoals", 0, 1, BikiniBottom, 0xcf},
	OnTopOfTheChumBucket:         {"On Top of the Chum Bucket", 0, 2, BikiniBottom, 0xd0},
	SpongebobsCloset:             {"SpongeBob's Closet", 0, 3, SpongebobHouse, 0x5d},
	AnnoySquidward:               {"Annoy Squidward", 0, 4, SquidwardHouse, 0x26},
	AmbushAtTheTreeDome:          {"Ambush at the Tree Dome", 0, 5, Treedome, 0x3a},
	InfestationAtTheKrustyKrab:   {"Infestation at the Krusty Krab", 0, 6, BikiniBottom, 0xce},
	AWallJumpInTheBucket:         {"A Wall Jump in the Bucket", 0, 7, ChumBucket, 0x2a},
	TopOfTheHill:                 {"Top of the Hill", 1, 0, JellyfishRock, 0xc8},
	CowaBungee:                   {"Cowa-Bungee!", 1, 1, JellyfishRock, 0xc9},
	Spelunking:                   {"Spelunking", 1, 2, JellyfishCaves, 0xd8},
	PatricksDilemma:              {"Patrick's Dilemma", 1, 3, JellyfishCaves, 0xd7},
	NavigateTheCanyonsAndMesas:   {"Navigate the Canyons and Mesas", 1, 4, JellyfishLake, 0xfa},
	DrainTheLake:                 {"Drain the Lake", 1, 5, JellyfishLake, 0xea},
	SlideLeap:                    {"Slide Leap", 1, 6, JellyfishMountain, 0x58},
	DefeatKingJellyfish:          {"Defeat King Jellyfish", 1, 7, JellyfishRock, 0x128},
	EndOfTheRoad:                 {"End of the Road", 2, 0, DowntownStreets, 0xba},
	LearnSandysMoves:             {"Learn Sandy's Moves", 2, 1, DowntownStreets, 0xb9},
	TikisGoBoom:                  {"Tiki's Go Boom", 2, 2, DowntownStreets, 0x111},
	AcrossTheRooftops:            {"Across the Rooftops", 2, 3, DowntownRooftops, 0xab},
	SwinginSandy:                 {"Swingin' Sandy", 2, 4, DowntownRooftops, 0xac},
	AmbushInTheLighthouse:        {"Ambush in the Lighthouse", 2, 5, DowntownLighthouse, 0x53},
	ExtremeBungee:                {"Extreme Bungee", 2, 6, DowntownSeaNeedle, 0x99},
	ComeBackWithTheCruiseBubble:  {"Come Back with the Cruise Bubble", 2, 7, DowntownSeaNeedle, 0x9a},
	KingOfTheCastle:              {"King of the Castle", 3, 0, GooLagoonBeach, 0x12a},
	ConnectTheTowers:             {"Connect the Towers", 3, 1, GooLagoonBeach, 0x154},
	SaveTheChildren:              {"Save the Children", 3, 2, GooLagoonBeach, 0x153},
	OverTheMoat:                  {"Over the Moat", 3, 3, GooLagoonBeach, 0x12b},
	ThroughTheSeaCaves:           {"Through the Sea Caves", 3, 4, GooLagoonCaves, 0x5c},
	CleanOutTheBumperBoats:       {"Clean Out the Bumper Boats", 3, 5, GooLagoonPier, 0xff},
	SlipAndSlideUnderThePier:     {"Slip and Slide under the Pier", 3, 6, GooLagoonPier, 0xfd},
	TowerBungee:                  {"Tower Bungee", 3, 7, GooLagoonPier, 0xfe},
	RumbleAtThePoseidome:         {"Rumble at the Poseidome", 4, 0, Poseidome, 0x28},
	GetToTheMuseum:               {"Get to the Museum", 5, 0, RockBottomDowntown, 0xff},
	SlipSlidingAway:              {"Slip Sliding Away", 5, 1, RockBottomDowntown, 0xfe},
	ReturnTheMuseumsArt:          {"Return the Museum's Art", 5, 2, RockBottomDowntown, 0x105},
	SwingalongSpatula:            {"Swingalong Spatula", 5, 3, RockBottomDowntown, 0x107},
	PlunderingRobotsInTheMuseum:  {"Plundering Robots in the Museum", 5, 4, RockBottomMuseum, 0x76},
	AcrossTheTrenchOfDarkness:    {"Across the Trench of Darkness", 5, 5, RockBottomTrench, 0xa5},
	LasersAreFunAndGoodForYou:    {"Lasers Are Fun and Good for You", 5, 6, RockBottomTrench, 0xa4},
	HowInTarnationDoYouGetThere:  {"How in Tarnation Do You Get There?", 5, 7, RockBottomTrench, 0xa3},
	TopOfTheEntranceAreaML:       {"Top of the Entrance Area", 6, 0, MermalairEntranceArea, 0x72},
	TopOfTheComputerArea:         {"Top of the Computer Area", 6, 1, MermalairMainChamber, 0x6a},
	ShutDownTheSecuritySystem:    {"Shut down the Security System", 6, 2, MermalairMainChamber, 0x6b},
	TheFunnelMachines:            {"The Funnel Machines", 6, 3, MermalairMainChamber, 0x68},
	TheSpinningTowersOfPower:     {"The Spinning Towers of Power", 6, 4, MermalairMainChamber, 0x69},
	TopOfTheSecurityTunnel:       {"Top of the Security Tunnel", 6, 5, MermalairSecurityTunnel, 0x9a},
	CompleteTheRollingBallRoom:   {"Complete the Rolling Ball Room", 6, 6, MermalairBallroom, 0x45},
	DefeatPrawn:                  {"Defeat Prawn", 6, 7, MermalairVillianContainment, 0x39},
	FrostyBungee:                 {"Frosty Bungee", 7, 0, SandMountainHub, 0x5d},
	TopOfTheLodge:                {"Top of the Lodge", 7, 1, SandMountainHub, 0x5e},
	DefeatRobotsOnGuppyMound:     {"Defeat Robots on Guppy Mound", 7, 2, SandMountainSlide1, 0x91},
	BeatMrsPuffsTime:             {"Beat Mrs. Puff's Time", 7, 3, SandMountainSlide1, 0x92},
	DefeatRobotsOnFlounderHill:   {"Defeat Robots on Flounder Hill", 7, 4, SandMountainSlide2, 0xa8},
	BeatBubbleBuddysTime:         {"Beat Bubble Buddy's Time", 7, 5, SandMountainSlide2, 0xa9},
	DefeatRobotsOnSandMountain:   {"Defeat Robots on Sand Mountain", 7, 6, SandMountainSlide3, 0xcd},
	BeatLarrysTime:               {"Beat Larry's Time", 7, 7, SandMountainSlide3, 0xcc},
	RoboPatrickAhoy:              {"Robo-Patrick Ahoy!", 8, 0, IndustrialPark, 0x28},
	ThroughTheWoods:              {"Through the Woods", 9, 0, KelpForest, 0x94},
	FindAllTheLostCampers:        {"Find All the Lost Campers", 9, 1, KelpForest, 0x8d},
	TikiRoundup:                  {"Tiki Roundup", 9, 2, KelpSwamps, 0x83},
	DownInTheSwamp:               {"Down in the Swamp", 9, 3, KelpSwamps, 0x84},
	ThroughTheKelpCaves:          {"Through the Kelp Caves", 9, 4, KelpCaves, 0x5a},
	PowerCrystalCrisis:           {"Power Crystal Crisis", 9, 5, KelpCaves, 0x53},
	KelpVineSlide:                {"Kelp Vine Slide", 9, 6, KelpVines, 0x53},
	BeatMermaidMansTime:          {"Beat Mermaid Man's Time", 9, 7, KelpVines, 0x54},
	TopOfTheEntranceAreaFDG:      {"Top of the Entrance Area", 10, 0, GraveyardLake, 0x70},
	APathThroughTheGoo:           {"A Path through the Goo", 10, 1, GraveyardLake, 0x71},
	GooTankerAhoy:                {"Goo Tanker Ahoy!", 10, 2, GraveyardLake, 0x6f},
	TopOfTheStackOfShips:         {"Top of the Stack of Ships", 10, 3, GraveyardShipwreck, 0x86},
	ShipwreckBungee:              {"Shipwreck Bungee", 10, 4, GraveyardShipwreck, 0x87},
	DestroyTheRobotShip:          {"Destroy the Robot Ship", 10, 5, GraveyardShip, 0x5f},
	GetAloftThereMatey:           {"Get Aloft There, Matey!", 10, 6, GraveyardShip, 0x60},
	DefeatTheFlyingDutchman:      {"Defeat the Flying Dutchman", 10, 7, GraveyardBoss, 0x35},
	AcrossTheDreamscape:          {"Across the Dreamscape", 11, 0, SpongebobsDream, 0x5e},
	FollowTheBouncingBall:        {"Follow the Bouncing Ball", 11, 1, SpongebobsDream, 0x5f},
	SlidingTexasStyle:            {"Sliding Texas Style", 11, 2, SandysDream, 0xa1},
	SwingersAhoy:                 {"Swingers Ahoy!", 11, 3, SandysDream, 0xa3},
	MusicIsInTheEarOfTheBeholder: {"Music is in the Ear of the Beholder", 11, 4, SquidwardsDream, 0x22e},
	KrabbyPattyPlatforms:         {"Krabby Patty Platforms", 11, 5, KrabsDream, 0x7f},
	SuperBounce:                  {"Super Bounce", 11, 6, SpongebobsDream, 0x6e},
	HereYouGo:                    {"Here You Go", 11, 7, PatricksDream, 0x32},
	KahRahTae:                    {"Kah-Rah-Tae!", 12, 0, ChumBucketLab, -1},
	TheSmallShallRuleOrNot:       {"The Small Shall Rule... Or Not", 12, 1, ChumBucketBrain, -1},
}

// Spatulas returns every spatula in menu order.
func Spatulas() []Spatula {
	all := make([]Spatula, SpatulaCount)
	for i := range all {
		all[i] = Spatula(i)
	}
	return all
}

func (s Spatula) Valid() bool { return s >= 0 && s < SpatulaCount }

func (s Spatula) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Spatula(%d)", int(s))
	}
	return spatulas[s].name
}

// Menu returns the spatula's (world, index) coordinate in the pause menu.
func (s Spatula) Menu() (world, index int) {
	return spatulas[s].world, spatulas[s].index
}

// Level is the level the spatula can be collected in.
func (s Spatula) Level() Level { return spatulas[s].level }

// Offset returns the spatula's index in the scene entity array. It is only
// meaningful while Level() is loaded. Boss rewards have no entity.
func (s Spatula) Offset() (uint64, bool) {
	o := spatulas[s].offset
	if o < 0 {
		return 0, false
	}
	return uint64(o), true
}

// SpatulaFromMenu is the inverse of Spatula.Menu.
func SpatulaFromMenu(world, index int) (Spatula, bool) {
	for i, info := range spatulas {
		if info.world == world && info.index == index {
			return Spatula(i), true
		}
	}
	return 0, false
}
