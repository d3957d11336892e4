package cards

// Ids of the base game cards. The effect registry switches over these, so
// an id added here without a matching script is caught when the engine is
// constructed.
const (
	// Age 1
	Agriculture CardID = iota + 1
	Archery
	CityStates
	Clothing
	CodeOfLaws
	Domestication
	Masonry
	Metalworking
	Mysticism
	Oars
	Pottery
	Sailing
	TheWheel
	Tools
	Writing
	// Age 2
	Calendar
	CanalBuilding
	Construction
	Currency
	Fermenting
	Mapmaking
	Mathematics
	Monotheism
	Philosophy
	RoadBuilding
	// Age 3
	Alchemy
	Compass
	Education
	Engineering
	Feudalism
	Machinery
	Medicine
	Optics
	Paper
	Translation
	// Age 4
	Anatomy
	Colonialism
	Enterprise
	Experimentation
	Gunpowder
	Invention
	Navigation
	Perspective
	PrintingPress
	Reformation
	// Age 5
	Astronomy
	Banking
	Chemistry
	Coal
	Measurement
	Physics
	Piracy
	Societies
	Statistics
	ThePirateCode
	// Age 6
	AtomicTheory
	Canning
	Classification
	Democracy
	Emancipation
	Encyclopedia
	Industrialization
	MachineTools
	MetricSystem
	Vaccination
	// Age 7
	Bicycle
	Combustion
	Electricity
	Evolution
	Explosives
	Lighting
	Publications
	Railroad
	Refrigeration
	Sanitation
	// Age 8
	Antibiotics
	Corporations
	Empiricism
	Flight
	MassMedia
	Mobility
	QuantumTheory
	Rocketry
	Skyscrapers
	Socialism
	// Age 9
	Collaboration
	Composites
	Computers
	Ecology
	Fission
	Genetics
	Satellites
	Services
	Specialization
	Suburbia
	// Age 10
	AI
	Bioengineering
	Databases
	Globalization
	Miniaturization
	Robotics
	SelfService
	Software
	StemCells
	TheInternet
)

func card(id CardID, title string, age Age, color Color, dogmaIcon Icon, top, left, middle, right Icon, dogmas ...Dogma) Card {
	return Card{
		ID:        id,
		Title:     title,
		Age:       age,
		Color:     color,
		Icons:     [PositionCount]Icon{top, left, middle, right},
		DogmaIcon: dogmaIcon,
		Dogmas:    dogmas,
	}
}

func dogma(text string) Dogma {
	return Dogma{Text: text}
}

func demand(text string) Dogma {
	return Dogma{Demand: true, Text: text}
}

// BaseSet returns the built-in base game reference table. Deployments that
// regenerate the table from card text load it with LoadJSON instead.
func BaseSet() *Set {
	_ = IconNone // positions without a symbol
	n := IconNone

	list := []Card{
		// Age 1
		card(Agriculture, "Agriculture", 1, Yellow, Leaf, n, Leaf, Leaf, Leaf,
			dogma("You may return a card from your hand. If you do, draw and score a card of value one higher.")),
		card(Archery, "Archery", 1, Red, Castle, Castle, Lightbulb, n, Castle,
			demand("I demand you draw a 1, then transfer the highest card in your hand to my hand!")),
		card(CityStates, "City States", 1, Purple, Crown, n, Crown, Crown, Castle,
			demand("I demand you transfer a top card with a castle from your board to my board if you have at least four castles! If you do, draw a 1!")),
		card(Clothing, "Clothing", 1, Green, Leaf, n, Crown, Leaf, Leaf,
			dogma("Meld a card from your hand of a color not on your board.")),
		card(CodeOfLaws, "Code of Laws", 1, Purple, Crown, n, Crown, Crown, Leaf,
			dogma("You may tuck a card from your hand of the same color as a card on your board.")),
		card(Domestication, "Domestication", 1, Yellow, Castle, Castle, Crown, n, Castle,
			dogma("Meld the lowest card in your hand, then draw a 1.")),
		card(Masonry, "Masonry", 1, Yellow, Castle, Castle, n, Castle, Castle,
			dogma("You may meld any number of cards with a castle from your hand.")),
		card(Metalworking, "Metalworking", 1, Red, Castle, Castle, Castle, n, Castle,
			dogma("Draw and score a 1.")),
		card(Mysticism, "Mysticism", 1, Purple, Castle, n, Castle, Castle, Castle,
			dogma("Draw a 1 and meld it.")),
		card(Oars, "Oars", 1, Red, Castle, Castle, Crown, n, Castle,
			demand("I demand you transfer a card with a crown from your hand to my score pile! If you do, draw a 1, and repeat this demand!")),
		card(Pottery, "Pottery", 1, Blue, Leaf, n, Leaf, Leaf, Leaf,
			dogma("You may return up to three cards from your hand. If you do, draw and score a card of value equal to the number returned."),
			dogma("Draw a 1.")),
		card(Sailing, "Sailing", 1, Green, Crown, Crown, Crown, n, Leaf,
			dogma("Draw and meld a 1.")),
		card(TheWheel, "The Wheel", 1, Green, Castle, n, Castle, Castle, Castle,
			dogma("Draw two 1s.")),
		card(Tools, "Tools", 1, Blue, Lightbulb, n, Lightbulb, Lightbulb, Castle,
			dogma("You may return up to three cards from your hand. If you returned three, draw and meld a 3.")),
		card(Writing, "Writing", 1, Blue, Lightbulb, n, Lightbulb, Lightbulb, Crown,
			dogma("Draw a 2.")),
		// Age 2
		card(Calendar, "Calendar", 2, Blue, Leaf, n, Leaf, Leaf, Lightbulb,
			dogma("If you have more cards in your score pile than your hand, draw two 3s.")),
		card(CanalBuilding, "Canal Building", 2, Yellow, Crown, n, Crown, Leaf, Crown,
			dogma("You may exchange the highest cards in your hand and score pile.")),
		card(Construction, "Construction", 2, Red, Castle, Castle, n, Castle, Castle,
			demand("I demand you transfer two cards from your hand to my hand, then draw a 2!")),
		card(Currency, "Currency", 2, Green, Crown, Leaf, Crown, n, Crown,
			dogma("You may return a card from your hand. If you do, draw and score a 2.")),
		card(Fermenting, "Fermenting", 2, Yellow, Leaf, Leaf, Leaf, n, Castle,
			dogma("Draw a 2 for every two leaves visible on your board.")),
		card(Mapmaking, "Mapmaking", 2, Green, Crown, n, Crown, Crown, Castle,
			demand("I demand you transfer a card of value 1 from your score pile to my score pile! If any card was transferred, draw a 1."),
			dogma("Draw a 1.")),
		card(Mathematics, "Mathematics", 2, Blue, Lightbulb, n, Lightbulb, Crown, Lightbulb,
			dogma("You may return a card from your hand. If you do, draw and meld a card of value one higher.")),
		card(Monotheism, "Monotheism", 2, Purple, Castle, n, Castle, Castle, Castle,
			demand("I demand you transfer a top card on your board of a color I lack to my score pile! If you do, draw and tuck a 1!"),
			dogma("Draw and tuck a 1.")),
		card(Philosophy, "Philosophy", 2, Purple, Lightbulb, n, Lightbulb, Lightbulb, Lightbulb,
			dogma("You may splay left any one color of your cards."),
			dogma("You may score a card from your hand.")),
		card(RoadBuilding, "Road Building", 2, Red, Castle, Castle, Castle, n, Castle,
			dogma("Meld one or two cards from your hand.")),
		// Age 3
		card(Alchemy, "Alchemy", 3, Blue, Castle, n, Leaf, Castle, Castle,
			dogma("Draw and reveal a 4 for every three castles visible on your board."),
			dogma("Meld a card from your hand, then score a card from your hand.")),
		card(Compass, "Compass", 3, Green, Crown, n, Crown, Crown, Leaf,
			demand("I demand you transfer a top non-green card with a leaf from your board to my board!")),
		card(Education, "Education", 3, Purple, Lightbulb, Lightbulb, Lightbulb, Lightbulb, n,
			dogma("You may return the highest card from your score pile. If you do, draw a card of value two higher than the highest card remaining.")),
		card(Engineering, "Engineering", 3, Red, Castle, Castle, n, Lightbulb, Castle,
			demand("I demand you transfer all top cards with a castle from your board to my score pile!"),
			dogma("You may splay your red cards left.")),
		card(Feudalism, "Feudalism", 3, Purple, Castle, n, Castle, Leaf, Castle,
			demand("I demand you transfer a card with a castle from your hand to my hand!"),
			dogma("You may splay your yellow or purple cards left.")),
		card(Machinery, "Machinery", 3, Yellow, Leaf, Leaf, Leaf, n, Castle,
			demand("I demand you exchange all the cards in your hand with all the highest cards in my hand!"),
			dogma("Score a card from your hand with a castle, then you may splay your red cards left.")),
		card(Medicine, "Medicine", 3, Yellow, Crown, Crown, Leaf, Leaf, n,
			demand("I demand you exchange the highest card in your score pile with the lowest card in my score pile!")),
		card(Optics, "Optics", 3, Red, Castle, Castle, Crown, Castle, n,
			dogma("Draw and meld a 3. If it has a crown, draw and score a 4.")),
		card(Paper, "Paper", 3, Green, Lightbulb, n, Lightbulb, Lightbulb, Crown,
			dogma("You may splay your green or blue cards left."),
			dogma("Draw a 4 for every color you have splayed left.")),
		card(Translation, "Translation", 3, Blue, Crown, n, Crown, Crown, Crown,
			dogma("You may meld all the cards in your score pile.")),
		// Age 4
		card(Anatomy, "Anatomy", 4, Yellow, Leaf, Leaf, Leaf, Leaf, n,
			demand("I demand you return a card from your score pile! If you do, return a top card of equal value from your board!")),
		card(Colonialism, "Colonialism", 4, Red, Factory, n, Factory, Lightbulb, Factory,
			dogma("Draw and tuck a 3. If it has a crown, repeat this effect.")),
		card(Enterprise, "Enterprise", 4, Purple, Crown, n, Crown, Crown, Crown,
			demand("I demand you transfer a top non-purple card with a crown from your board to my board! If you do, draw and meld a 4!")),
		card(Experimentation, "Experimentation", 4, Blue, Lightbulb, n, Lightbulb, Lightbulb, Lightbulb,
			dogma("Draw and meld a 5.")),
		card(Gunpowder, "Gunpowder", 4, Red, Factory, n, Factory, Crown, Factory,
			demand("I demand you transfer a top card with a castle from your board to my score pile!"),
			dogma("If any card was transferred, draw and score a 2.")),
		card(Invention, "Invention", 4, Green, Lightbulb, n, Lightbulb, Lightbulb, Factory,
			dogma("You may splay right any one color currently splayed left. If you do, draw and score a 4.")),
		card(Navigation, "Navigation", 4, Green, Crown, n, Crown, Crown, Crown,
			demand("I demand you transfer a card of value 2 or 3 from your score pile to my score pile!")),
		card(Perspective, "Perspective", 4, Yellow, Lightbulb, n, Lightbulb, Lightbulb, Leaf,
			dogma("You may return a card from your hand. If you do, score a card from your hand for every two lightbulbs visible on your board.")),
		card(PrintingPress, "Printing Press", 4, Blue, Lightbulb, n, Lightbulb, Lightbulb, Crown,
			dogma("You may return a card from your score pile. If you do, draw a card of value two higher than the top purple card on your board."),
			dogma("You may splay your blue cards right.")),
		card(Reformation, "Reformation", 4, Purple, Leaf, Leaf, Leaf, n, Leaf,
			dogma("You may tuck a card from your hand for every two leaves visible on your board."),
			dogma("You may splay your yellow or purple cards right.")),
		// Age 5
		card(Astronomy, "Astronomy", 5, Purple, Lightbulb, Crown, Lightbulb, Lightbulb, n,
			dogma("Draw a 6. If it is green or blue, meld it and repeat this effect.")),
		card(Banking, "Banking", 5, Green, Factory, Factory, Crown, n, Factory,
			demand("I demand you transfer a top non-green card with a factory from your board to my board! If you do, draw and score a 5!"),
			dogma("You may splay your green cards right.")),
		card(Chemistry, "Chemistry", 5, Blue, Factory, Factory, Lightbulb, Factory, n,
			dogma("You may splay your blue cards right."),
			dogma("Draw and score a card of value one higher than the highest top card on your board, then return a card from your score pile.")),
		card(Coal, "Coal", 5, Red, Factory, Factory, Factory, Factory, n,
			dogma("Draw and tuck a 5."),
			dogma("You may splay your red cards right.")),
		card(Measurement, "Measurement", 5, Green, Lightbulb, Lightbulb, Leaf, n, Lightbulb,
			dogma("You may return a card from your hand. If you do, splay any one color of your cards right and draw a card of value equal to the number of cards of that color on your board.")),
		card(Physics, "Physics", 5, Blue, Factory, Factory, Lightbulb, Lightbulb, n,
			dogma("Draw three 6s and reveal them. If two or more are the same color, return them and all cards in your hand.")),
		card(Piracy, "Piracy", 5, Red, Crown, Crown, Factory, Crown, n,
			demand("I demand you transfer a card of value 4 or less from your score pile to my score pile!"),
			dogma("Draw and score a 4.")),
		card(Societies, "Societies", 5, Purple, Crown, Crown, n, Lightbulb, Crown,
			demand("I demand you transfer a top card with a lightbulb from your board to my board! If you do, draw a 5!")),
		card(Statistics, "Statistics", 5, Yellow, Leaf, Leaf, Lightbulb, Leaf, n,
			demand("I demand you draw the highest card in your score pile into your hand!"),
			dogma("You may splay your yellow cards right.")),
		card(ThePirateCode, "The Pirate Code", 5, Red, Crown, Crown, Factory, n, Crown,
			demand("I demand you transfer two cards of value 4 or less from your score pile to my score pile!"),
			dogma("If any cards were transferred, score the lowest top card with a crown from your board.")),
		// Age 6
		card(AtomicTheory, "Atomic Theory", 6, Blue, Lightbulb, Lightbulb, Lightbulb, n, Lightbulb,
			dogma("You may splay your blue cards right."),
			dogma("Draw and meld a 7.")),
		card(Canning, "Canning", 6, Yellow, Factory, n, Factory, Leaf, Factory,
			dogma("You may draw and tuck a 6. If you do, score all your top cards without a factory."),
			dogma("You may splay your yellow cards right.")),
		card(Classification, "Classification", 6, Green, Leaf, Leaf, Leaf, Leaf, n,
			dogma("Reveal the color of a card in your hand, then meld all cards of that color from your hand.")),
		card(Democracy, "Democracy", 6, Purple, Lightbulb, Crown, Lightbulb, Lightbulb, n,
			dogma("You may return any number of cards from your hand. If you returned more than any opponent, draw and score an 8.")),
		card(Emancipation, "Emancipation", 6, Purple, Factory, Factory, Lightbulb, Factory, n,
			demand("I demand you transfer a card from your hand to my score pile! If you do, draw a 6!")),
		card(Encyclopedia, "Encyclopedia", 6, Blue, Crown, n, Crown, Crown, Crown,
			dogma("You may meld all the highest cards in your score pile.")),
		card(Industrialization, "Industrialization", 6, Red, Factory, Factory, Factory, n, Factory,
			dogma("Draw and tuck a 6 for every two factories visible on your board."),
			dogma("You may splay your red or purple cards right.")),
		card(MachineTools, "Machine Tools", 6, Red, Factory, Factory, Factory, n, Factory,
			dogma("Draw and score a card of value equal to the highest card in your score pile.")),
		card(MetricSystem, "Metric System", 6, Green, Crown, n, Factory, Crown, Crown,
			dogma("If your green cards are splayed right, you may splay any one color of your cards right."),
			dogma("You may splay your green cards right.")),
		card(Vaccination, "Vaccination", 6, Yellow, Leaf, Leaf, Factory, Leaf, n,
			demand("I demand you return all the lowest cards in your score pile! If you returned any, draw and meld a 6!"),
			dogma("If any card was returned, draw and meld a 7.")),
		// Age 7
		card(Bicycle, "Bicycle", 7, Green, Crown, Crown, Crown, Clock, n,
			dogma("You may exchange all the cards in your hand with all the cards in your score pile.")),
		card(Combustion, "Combustion", 7, Red, Factory, Crown, Crown, Factory, n,
			demand("I demand you transfer two cards from your score pile to my score pile!")),
		card(Electricity, "Electricity", 7, Green, Lightbulb, Lightbulb, Factory, n, Factory,
			dogma("Return all your top cards without a factory, then draw an 8 for each card returned.")),
		card(Evolution, "Evolution", 7, Blue, Lightbulb, Lightbulb, Lightbulb, Leaf, n,
			dogma("You may draw and score an 8, then return a card from your score pile; or draw a card of value one higher than the highest card in your score pile.")),
		card(Explosives, "Explosives", 7, Red, Factory, n, Factory, Factory, Factory,
			demand("I demand you transfer the three highest cards from your hand to my hand! If you transferred any, draw a 7!")),
		card(Lighting, "Lighting", 7, Purple, Leaf, n, Leaf, Clock, Leaf,
			dogma("You may tuck up to three cards from your hand. If you do, draw and score a 7 for every different value tucked.")),
		card(Publications, "Publications", 7, Blue, Lightbulb, n, Lightbulb, Clock, Lightbulb,
			dogma("You may rearrange the order of one color of cards on your board."),
			dogma("You may splay your yellow or blue cards up.")),
		card(Railroad, "Railroad", 7, Purple, Clock, Clock, Factory, Clock, n,
			dogma("Return all the cards in your hand, then draw three 6s."),
			dogma("You may splay any one color of your cards up that is currently splayed right.")),
		card(Refrigeration, "Refrigeration", 7, Yellow, Leaf, n, Leaf, Leaf, Crown,
			demand("I demand you return half the cards in your hand, rounded down!"),
			dogma("You may score a card from your hand.")),
		card(Sanitation, "Sanitation", 7, Yellow, Leaf, Leaf, Leaf, n, Leaf,
			demand("I demand you exchange the two highest cards in your hand with the lowest card in my hand!")),
		// Age 8
		card(Antibiotics, "Antibiotics", 8, Yellow, Leaf, Leaf, Leaf, Leaf, n,
			dogma("You may return up to three cards from your hand. For every different value returned, draw two 8s.")),
		card(Corporations, "Corporations", 8, Green, Factory, n, Factory, Factory, Crown,
			demand("I demand you transfer a top non-green card with a factory from your board to my score pile! If you do, draw and meld an 8!"),
			dogma("Draw and meld an 8.")),
		card(Empiricism, "Empiricism", 8, Purple, Lightbulb, Lightbulb, Lightbulb, Lightbulb, n,
			dogma("Choose two colors, then draw and reveal a 9. If it is either color, meld it and splay that color up.")),
		card(Flight, "Flight", 8, Red, Crown, Crown, n, Clock, Crown,
			dogma("If your red cards are splayed up, you may splay any one color of your cards up."),
			dogma("You may splay your red cards up.")),
		card(MassMedia, "Mass Media", 8, Green, Lightbulb, Lightbulb, n, Clock, Lightbulb,
			dogma("You may return a card from your hand. If you do, choose a value and return all cards of that value from all score piles."),
			dogma("You may splay your purple cards up.")),
		card(Mobility, "Mobility", 8, Red, Factory, Factory, Clock, Factory, n,
			demand("I demand you transfer your two highest non-red top cards without a factory from your board to my score pile! If you transferred any, draw an 8!")),
		card(QuantumTheory, "Quantum Theory", 8, Blue, Clock, Clock, Clock, Lightbulb, n,
			dogma("You may return up to two cards from your hand. If you return two, draw a 10 and then draw and score a 10.")),
		card(Rocketry, "Rocketry", 8, Blue, Clock, Clock, Lightbulb, Clock, n,
			dogma("Return a card in any opponent's score pile for every two clocks visible on your board.")),
		card(Skyscrapers, "Skyscrapers", 8, Yellow, Crown, n, Factory, Crown, Crown,
			demand("I demand you transfer a top non-yellow card with a clock from your board to my board! If you do, score the card beneath it and return the rest of that pile!")),
		card(Socialism, "Socialism", 8, Purple, Leaf, Leaf, n, Leaf, Leaf,
			dogma("You may tuck all cards from your hand. If you tuck one of every color, take all the lowest cards in each opponent's hand into your hand.")),
		// Age 9
		card(Collaboration, "Collaboration", 9, Green, Crown, n, Crown, Clock, Crown,
			demand("I demand you draw two 9s and reveal them! Transfer the one of my choice to my board!"),
			dogma("Draw a 9.")),
		card(Composites, "Composites", 9, Red, Factory, Factory, Factory, n, Factory,
			demand("I demand you transfer all but one card from your hand to my hand, and the highest card from your score pile to my score pile!")),
		card(Computers, "Computers", 9, Blue, Clock, Clock, n, Clock, Factory,
			dogma("You may splay your red or green cards up."),
			dogma("Draw and meld a 10, then execute its non-demand dogma effects for yourself only.")),
		card(Ecology, "Ecology", 9, Yellow, Leaf, Leaf, Lightbulb, Lightbulb, n,
			dogma("You may return a card from your hand. If you do, score a card from your hand and draw two 10s.")),
		card(Fission, "Fission", 9, Red, Clock, n, Clock, Clock, Clock,
			demand("I demand you draw a 10! If it is red, remove all hands, boards and score piles from the game!"),
			dogma("Return a top card other than Fission from any player's board.")),
		card(Genetics, "Genetics", 9, Blue, Lightbulb, Lightbulb, Clock, Clock, n,
			dogma("Draw and meld a 10, then score all cards beneath it.")),
		card(Satellites, "Satellites", 9, Green, Clock, n, Clock, Clock, Lightbulb,
			dogma("Return all the cards in your hand, then draw three 8s."),
			dogma("You may splay your purple cards up.")),
		card(Services, "Services", 9, Purple, Leaf, Leaf, Leaf, Leaf, n,
			demand("I demand you transfer all the highest cards from your score pile to my hand! If you transferred any, take a top card from my board with a leaf into your hand!")),
		card(Specialization, "Specialization", 9, Purple, Factory, n, Factory, Leaf, Factory,
			dogma("Reveal a card from your hand, then take a top card of that color from every opponent's board into your hand."),
			dogma("You may splay your yellow or blue cards up.")),
		card(Suburbia, "Suburbia", 9, Yellow, Crown, n, Crown, Leaf, Leaf,
			dogma("You may tuck any number of cards from your hand. Draw and score a 1 for each card tucked.")),
		// Age 10
		card(AI, "A.I.", 10, Purple, Lightbulb, Lightbulb, Lightbulb, Clock, n,
			dogma("Draw and score a 10."),
			dogma("If Robotics and Software are top cards on any board, the single player with the lowest score wins.")),
		card(Bioengineering, "Bioengineering", 10, Blue, Lightbulb, Lightbulb, Clock, Clock, n,
			dogma("Transfer a top card with a leaf from any opponent's board to your score pile."),
			dogma("If any player has fewer than three leaves visible on their board, the single player with the most leaves wins.")),
		card(Databases, "Databases", 10, Green, Clock, n, Clock, Clock, Clock,
			demand("I demand you return half the cards in your score pile, rounded up!")),
		card(Globalization, "Globalization", 10, Yellow, Factory, n, Factory, Factory, Factory,
			demand("I demand you return a top card with a leaf from your board!"),
			dogma("Draw and score a 6. If no player has more leaves than factories visible, the single player with the most points wins.")),
		card(Miniaturization, "Miniaturization", 10, Red, Lightbulb, n, Lightbulb, Clock, Lightbulb,
			dogma("You may return a card from your hand. If you returned a 10, draw a 10 for every different value in your score pile.")),
		card(Robotics, "Robotics", 10, Red, Factory, n, Factory, Clock, Factory,
			dogma("Score your top green card, then draw and meld a 10 and execute its non-demand dogma effects for yourself only.")),
		card(SelfService, "Self Service", 10, Green, Crown, n, Crown, Crown, Crown,
			dogma("Execute the non-demand dogma effects of any other top card on your board for yourself only."),
			dogma("If you have more achievements than each other player, you win.")),
		card(Software, "Software", 10, Blue, Clock, Clock, Clock, Clock, n,
			dogma("Draw and score a 10."),
			dogma("Draw and meld two 10s, then execute the second card's non-demand dogma effects for yourself only.")),
		card(StemCells, "Stem Cells", 10, Yellow, Leaf, n, Leaf, Leaf, Leaf,
			dogma("You may score all the cards in your hand.")),
		card(TheInternet, "The Internet", 10, Purple, Clock, n, Clock, Clock, Lightbulb,
			dogma("You may splay your green cards up."),
			dogma("Draw and score a 10."),
			dogma("Draw and meld a 10 for every two clocks visible on your board.")),
	}

	set, err := NewSet(list)
	if err != nil {
		// the base table is compiled in; a bad entry is a build defect
		panic("cards: invalid base set: " + err.Error())
	}
	return set
}
