package game

// JokerType identifies a joker.
type JokerType uint8

const (
	Jimbo JokerType = iota
	GreedyJoker
	LustyJoker
	WrathfulJoker
	GluttonousJoker
	JollyJoker
	ZanyJoker
	MadJoker
	CrazyJoker
	DrollJoker
	SlyJoker
	WilyJoker
	CleverJoker
	DeviousJoker
	CraftyJoker
	HalfJoker
	JokerStencil
	FourFingers
	Mime
	CreditCard
	CeremonialDagger
	Banner
	MysticSummit
	MarbleJoker
	LoyaltyCard
	EightBall
	Misprint
	Dusk
	RaisedFist
	ChaosTheClown
	Fibonacci
	SteelJoker
	ScaryFace
	AbstractJoker
	DelayedGratification
	Hack
	Pareidolia
	GrosMichel
	EvenSteven
	OddTodd
	Scholar
	BusinessCard
	Supernova
	RideTheBus
	SpaceJoker
	Egg
	Burglar
	Blackboard
	Runner
	IceCream
	DNA
	Splash
	BlueJoker
	SixthSense
	Constellation
	Hiker
	FacelessJoker
	GreenJoker
	Superposition
	ToDoList
	Cavendish
	CardSharp
	RedCard
	Madness
	SquareJoker
	Seance
	RiffRaff
	Vampire
	Shortcut
	Hologram
	Vagabond
	Baron
	Cloud9
	Rocket
	Obelisk
	MidasMask
	Luchador
	Photograph
	GiftCard
	TurtleBean
	Erosion
	ReservedParking
	MailInRebate
	ToTheMoon
	Hallucination
	FortuneTeller
	Juggler
	Drunkard
	StoneJoker
	GoldenJoker
	LuckyCat
	BaseballCard
	Bull
	DietCola
	TradingCard
	FlashCard
	Popcorn
	SpareTrousers
	AncientJoker
	Ramen
	WalkieTalkie
	Seltzer
	Castle
	SmileyFace
	Campfire
	GoldenTicket
	MrBones
	Acrobat
	SockAndBuskin
	Swashbuckler
	Troubadour
	Certificate
	SmearedJoker
	Throwback
	HangingChad
	RoughGem
	Bloodstone
	Arrowhead
	OnyxAgate
	GlassJoker
	Showman
	FlowerPot
	Blueprint
	WeeJoker
	MerryAndy
	OopsAll6s
	TheIdol
	SeeingDouble
	Matador
	HitTheRoad
	TheDuo
	TheTrio
	TheFamily
	TheOrder
	TheTribe
	Stuntman
	InvisibleJoker
	Brainstorm
	Satellite
	ShootTheMoon
	DriversLicense
	Cartomancer
	Astronomer
	BurntJoker
	Bootstraps
	Canio
	Triboulet
	Yorick
	Chicot
	Perkeo
)

// JokerTypeCount is the number of joker identities.
const JokerTypeCount = 150

var jokerNames = [JokerTypeCount]string{
	Jimbo:                "Joker",
	GreedyJoker:          "Greedy Joker",
	LustyJoker:           "Lusty Joker",
	WrathfulJoker:        "Wrathful Joker",
	GluttonousJoker:      "Gluttonous Joker",
	JollyJoker:           "Jolly Joker",
	ZanyJoker:            "Zany Joker",
	MadJoker:             "Mad Joker",
	CrazyJoker:           "Crazy Joker",
	DrollJoker:           "Droll Joker",
	SlyJoker:             "Sly Joker",
	WilyJoker:            "Wily Joker",
	CleverJoker:          "Clever Joker",
	DeviousJoker:         "Devious Joker",
	CraftyJoker:          "Crafty Joker",
	HalfJoker:            "Half Joker",
	JokerStencil:         "Joker Stencil",
	FourFingers:          "Four Fingers",
	Mime:                 "Mime",
	CreditCard:           "Credit Card",
	CeremonialDagger:     "Ceremonial Dagger",
	Banner:               "Banner",
	MysticSummit:         "Mystic Summit",
	MarbleJoker:          "Marble Joker",
	LoyaltyCard:          "Loyalty Card",
	EightBall:            "8 Ball",
	Misprint:             "Misprint",
	Dusk:                 "Dusk",
	RaisedFist:           "Raised Fist",
	ChaosTheClown:        "Chaos the Clown",
	Fibonacci:            "Fibonacci",
	SteelJoker:           "Steel Joker",
	ScaryFace:            "Scary Face",
	AbstractJoker:        "Abstract Joker",
	DelayedGratification: "Delayed Gratification",
	Hack:                 "Hack",
	Pareidolia:           "Pareidolia",
	GrosMichel:           "Gros Michel",
	EvenSteven:           "Even Steven",
	OddTodd:              "Odd Todd",
	Scholar:              "Scholar",
	BusinessCard:         "Business Card",
	Supernova:            "Supernova",
	RideTheBus:           "Ride the Bus",
	SpaceJoker:           "Space Joker",
	Egg:                  "Egg",
	Burglar:              "Burglar",
	Blackboard:           "Blackboard",
	Runner:               "Runner",
	IceCream:             "Ice Cream",
	DNA:                  "DNA",
	Splash:               "Splash",
	BlueJoker:            "Blue Joker",
	SixthSense:           "Sixth Sense",
	Constellation:        "Constellation",
	Hiker:                "Hiker",
	FacelessJoker:        "Faceless Joker",
	GreenJoker:           "Green Joker",
	Superposition:        "Superposition",
	ToDoList:             "To Do List",
	Cavendish:            "Cavendish",
	CardSharp:            "Card Sharp",
	RedCard:              "Red Card",
	Madness:              "Madness",
	SquareJoker:          "Square Joker",
	Seance:               "Seance",
	RiffRaff:             "Riff Raff",
	Vampire:              "Vampire",
	Shortcut:             "Shortcut",
	Hologram:             "Hologram",
	Vagabond:             "Vagabond",
	Baron:                "Baron",
	Cloud9:               "Cloud 9",
	Rocket:               "Rocket",
	Obelisk:              "Obelisk",
	MidasMask:            "Midas Mask",
	Luchador:             "Luchador",
	Photograph:           "Photograph",
	GiftCard:             "Gift Card",
	TurtleBean:           "Turtle Bean",
	Erosion:              "Erosion",
	ReservedParking:      "Reserved Parking",
	MailInRebate:         "Mail-In Rebate",
	ToTheMoon:            "To the Moon",
	Hallucination:        "Hallucination",
	FortuneTeller:        "Fortune Teller",
	Juggler:              "Juggler",
	Drunkard:             "Drunkard",
	StoneJoker:           "Stone Joker",
	GoldenJoker:          "Golden Joker",
	LuckyCat:             "Lucky Cat",
	BaseballCard:         "Baseball Card",
	Bull:                 "Bull",
	DietCola:             "Diet Cola",
	TradingCard:          "Trading Card",
	FlashCard:            "Flash Card",
	Popcorn:              "Popcorn",
	SpareTrousers:        "Spare Trousers",
	AncientJoker:         "Ancient Joker",
	Ramen:                "Ramen",
	WalkieTalkie:         "Walkie Talkie",
	Seltzer:              "Seltzer",
	Castle:               "Castle",
	SmileyFace:           "Smiley Face",
	Campfire:             "Campfire",
	GoldenTicket:         "Golden Ticket",
	MrBones:              "Mr. Bones",
	Acrobat:              "Acrobat",
	SockAndBuskin:        "Sock and Buskin",
	Swashbuckler:         "Swashbuckler",
	Troubadour:           "Troubadour",
	Certificate:          "Certificate",
	SmearedJoker:         "Smeared Joker",
	Throwback:            "Throwback",
	HangingChad:          "Hanging Chad",
	RoughGem:             "Rough Gem",
	Bloodstone:           "Bloodstone",
	Arrowhead:            "Arrowhead",
	OnyxAgate:            "Onyx Agate",
	GlassJoker:           "Glass Joker",
	Showman:              "Showman",
	FlowerPot:            "Flower Pot",
	Blueprint:            "Blueprint",
	WeeJoker:             "Wee Joker",
	MerryAndy:            "Merry Andy",
	OopsAll6s:            "Oops! All 6s",
	TheIdol:              "The Idol",
	SeeingDouble:         "Seeing Double",
	Matador:              "Matador",
	HitTheRoad:           "Hit the Road",
	TheDuo:               "The Duo",
	TheTrio:              "The Trio",
	TheFamily:            "The Family",
	TheOrder:             "The Order",
	TheTribe:             "The Tribe",
	Stuntman:             "Stuntman",
	InvisibleJoker:       "Invisible Joker",
	Brainstorm:           "Brainstorm",
	Satellite:            "Satellite",
	ShootTheMoon:         "Shoot the Moon",
	DriversLicense:       "Driver's License",
	Cartomancer:          "Cartomancer",
	Astronomer:           "Astronomer",
	BurntJoker:           "Burnt Joker",
	Bootstraps:           "Bootstraps",
	Canio:                "Canio",
	Triboulet:            "Triboulet",
	Yorick:               "Yorick",
	Chicot:               "Chicot",
	Perkeo:               "Perkeo",
}

// Rarity pools are drawn from by position, so their order must match the
// game's own tables.
var commonJokers = []JokerType{
	Jimbo, GreedyJoker, LustyJoker, WrathfulJoker, GluttonousJoker, JollyJoker, ZanyJoker, MadJoker,
	CrazyJoker, DrollJoker, SlyJoker, WilyJoker, CleverJoker, DeviousJoker, CraftyJoker, HalfJoker,
	CreditCard, Banner, MysticSummit, EightBall, Misprint, RaisedFist, ChaosTheClown, ScaryFace,
	AbstractJoker, DelayedGratification, GrosMichel, EvenSteven, OddTodd, Scholar, BusinessCard,
	Supernova, RideTheBus, Egg, Runner, IceCream, Splash, BlueJoker, FacelessJoker, GreenJoker,
	Superposition, ToDoList, Cavendish, RedCard, SquareJoker, RiffRaff, Photograph, ReservedParking,
	MailInRebate, Hallucination, FortuneTeller, Juggler, Drunkard, GoldenJoker, Popcorn, WalkieTalkie,
	SmileyFace, GoldenTicket, Swashbuckler, HangingChad, ShootTheMoon,
}

var uncommonJokers = []JokerType{
	JokerStencil, FourFingers, Mime, CeremonialDagger, MarbleJoker, LoyaltyCard, Dusk, Fibonacci,
	SteelJoker, Hack, Pareidolia, SpaceJoker, Burglar, Blackboard, SixthSense, Constellation, Hiker,
	CardSharp, Madness, Seance, Vampire, Shortcut, Hologram, Cloud9, Rocket, MidasMask, Luchador,
	GiftCard, TurtleBean, Erosion, ToTheMoon, StoneJoker, LuckyCat, Bull, DietCola, TradingCard,
	FlashCard, SpareTrousers, Ramen, Seltzer, Castle, MrBones, Acrobat, SockAndBuskin, Troubadour,
	Certificate, SmearedJoker, Throwback, RoughGem, Bloodstone, Arrowhead, OnyxAgate, GlassJoker,
	Showman, FlowerPot, MerryAndy, OopsAll6s, TheIdol, SeeingDouble, Matador, Satellite, Cartomancer,
	Astronomer, Bootstraps,
}

var rareJokers = []JokerType{
	DNA, Vagabond, Baron, Obelisk, BaseballCard, AncientJoker, Campfire, Blueprint, WeeJoker,
	HitTheRoad, TheDuo, TheTrio, TheFamily, TheOrder, TheTribe, Stuntman, InvisibleJoker, Brainstorm,
	DriversLicense, BurntJoker,
}

var legendaryJokers = []JokerType{
	Canio, Triboulet, Yorick, Chicot, Perkeo,
}
