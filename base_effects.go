package innovation

import "github.com/innovation-engine/innovation/cards"

// baseEffects maps every base set card to its script. The mapping is a
// plain switch so an id without a case is caught when BaseRegistry is
// built, before any game starts.
func baseEffects(id cards.CardID) []DogmaEffect {
	switch id {
	// Age 1
	case cards.Agriculture:
		return effs(nd(
			pickCards("You may return a card from your hand", 0, 1, fromHand(nil), returnPicked(ZoneHand)),
			ifVarAtLeast("count", 1, drawDyn(varAgePlus("value", 1), placeScore)),
		))
	case cards.Archery:
		return effs(dd(
			drawN(1, 1),
			pickCards("Transfer the highest card in your hand", 1, 1, highest(fromHand(nil)),
				transferPicked(zExec(ZoneHand), zAct(ZoneHand))),
		))
	case cards.CityStates:
		return effs(dd(
			ifCond(iconsAtLeast(cards.Castle, 4),
				pickCards("Transfer a top card with a castle", 1, 1, fromTops(hasIconOn(cards.Castle)),
					transferPicked(zExec(ZoneBoard), zAct(ZoneBoard)))),
			ifVarAtLeast("count", 1, drawN(1, 1)),
		))
	case cards.Clothing:
		return effs(nd(
			pickCards("Meld a card of a color not on your board", 1, 1, fromHand(colorNotOnBoard), meldPicked(ZoneHand)),
		))
	case cards.CodeOfLaws:
		return effs(nd(
			pickCards("You may tuck a card of a color on your board", 0, 1, fromHand(colorOnBoard), tuckPicked(ZoneHand)),
		))
	case cards.Domestication:
		return effs(nd(
			pickCards("Meld the lowest card in your hand", 1, 1, lowest(fromHand(nil)), meldPicked(ZoneHand)),
			drawN(1, 1),
		))
	case cards.Masonry:
		return effs(nd(
			pickCards("You may meld any number of cards with a castle", 0, -1, fromHand(hasIconOn(cards.Castle)), meldPicked(ZoneHand)),
		))
	case cards.Metalworking:
		return effs(nd(drawScore(1, 1)))
	case cards.Mysticism:
		return effs(nd(drawMeld(1, 1)))
	case cards.Oars:
		return effs(dd(
			pickCards("Transfer a card with a crown to my score pile", 1, 1, fromHand(hasIconOn(cards.Crown)), oarsTransfer),
		))
	case cards.Pottery:
		return effs(
			nd(
				pickCards("You may return up to three cards from your hand", 0, 3, fromHand(nil), returnPicked(ZoneHand)),
				ifVarAtLeast("count", 1, drawDyn(varAgePlus("count", 0), placeScore)),
			),
			nd(drawN(1, 1)),
		)
	case cards.Sailing:
		return effs(nd(drawMeld(1, 1)))
	case cards.TheWheel:
		return effs(nd(drawN(1, 2)))
	case cards.Tools:
		return effs(nd(
			pickCards("You may return up to three cards from your hand", 0, 3, fromHand(nil), returnPicked(ZoneHand)),
			ifVarAtLeast("count", 3, drawMeld(3, 1)),
		))
	case cards.Writing:
		return effs(nd(drawN(2, 1)))

	// Age 2
	case cards.Calendar:
		return effs(nd(ifCond(scoreOutnumbersHand, drawN(3, 2))))
	case cards.CanalBuilding:
		return effs(nd(yesNo("Exchange the highest cards in your hand and score pile?", canalExchange)))
	case cards.Construction:
		return effs(dd(
			pickCards("Transfer two cards from your hand", 2, 2, fromHand(nil),
				transferPicked(zExec(ZoneHand), zAct(ZoneHand))),
			drawN(2, 1),
		))
	case cards.Currency:
		return effs(nd(
			pickCards("You may return a card from your hand", 0, 1, fromHand(nil), returnPicked(ZoneHand)),
			ifVarAtLeast("count", 1, drawScore(2, 1)),
		))
	case cards.Fermenting:
		return effs(nd(drawPerIcon(cards.Leaf, 2, 2, nil)))
	case cards.Mapmaking:
		return effs(
			dd(
				pickCards("Transfer a 1 from your score pile", 1, 1, fromScore(ageIn(1)),
					transferPicked(zExec(ZoneScore), zAct(ZoneScore))),
				ifVarAtLeast("count", 1, drawN(1, 1)),
			),
			nd(drawN(1, 1)),
		)
	case cards.Mathematics:
		return effs(nd(
			pickCards("You may return a card from your hand", 0, 1, fromHand(nil), returnPicked(ZoneHand)),
			ifVarAtLeast("count", 1, drawDyn(varAgePlus("value", 1), placeMeld)),
		))
	case cards.Monotheism:
		return effs(
			dd(
				pickCards("Transfer a top card of a color I lack", 1, 1, fromTops(colorActivatorLacks),
					transferPicked(zExec(ZoneBoard), zAct(ZoneScore))),
				ifVarAtLeast("count", 1, drawTuck(1, 1)),
			),
			nd(drawTuck(1, 1)),
		)
	case cards.Philosophy:
		return effs(
			nd(maySplay(SplayLeft, allColors...)),
			nd(pickCards("You may score a card from your hand", 0, 1, fromHand(nil), scorePicked(ZoneHand))),
		)
	case cards.RoadBuilding:
		return effs(nd(
			pickCards("Meld one or two cards from your hand", 1, 2, fromHand(nil), meldPicked(ZoneHand)),
		))

	// Age 3
	case cards.Alchemy:
		return effs(
			nd(drawPerIcon(cards.Castle, 3, 4, nil)),
			nd(
				pickCards("Meld a card from your hand", 1, 1, fromHand(nil), meldPicked(ZoneHand)),
				pickCards("Score a card from your hand", 1, 1, fromHand(nil), scorePicked(ZoneHand)),
			),
		)
	case cards.Compass:
		return effs(dd(
			pickCards("Transfer a top non-green card with a leaf", 1, 1,
				fromTops(both(notColor(cards.Green), hasIconOn(cards.Leaf))),
				transferPicked(zExec(ZoneBoard), zAct(ZoneBoard))),
		))
	case cards.Education:
		return effs(nd(
			pickCards("You may return the highest card from your score pile", 0, 1, highest(fromScore(nil)), returnPicked(ZoneScore)),
			ifVarAtLeast("count", 1, drawDyn(highestScorePlus(2), nil)),
		))
	case cards.Engineering:
		return effs(
			dd(pickCards("Transfer all top cards with a castle", -1, -1, fromTops(hasIconOn(cards.Castle)),
				transferPicked(zExec(ZoneBoard), zAct(ZoneScore)))),
			nd(maySplay(SplayLeft, cards.Red)),
		)
	case cards.Feudalism:
		return effs(
			dd(pickCards("Transfer a card with a castle from your hand", 1, 1, fromHand(hasIconOn(cards.Castle)),
				transferPicked(zExec(ZoneHand), zAct(ZoneHand)))),
			nd(maySplay(SplayLeft, cards.Yellow, cards.Purple)),
		)
	case cards.Machinery:
		return effs(
			dd(machineryExchange),
			nd(
				pickCards("Score a card from your hand with a castle", 1, 1, fromHand(hasIconOn(cards.Castle)), scorePicked(ZoneHand)),
				maySplay(SplayLeft, cards.Red),
			),
		)
	case cards.Medicine:
		return effs(dd(medicineExchange))
	case cards.Optics:
		return effs(nd(
			drawMeldRemember(3, "melded"),
			ifCond(varCardHas("melded", cards.Crown), drawScore(4, 1)),
		))
	case cards.Paper:
		return effs(
			nd(maySplay(SplayLeft, cards.Green, cards.Blue)),
			nd(drawPerSplay(SplayLeft, 4)),
		)
	case cards.Translation:
		return effs(nd(yesNo("Meld all the cards in your score pile?", meldAllScore)))

	// Age 4
	case cards.Anatomy:
		return effs(dd(
			pickCards("Return a card from your score pile", 1, 1, fromScore(nil), returnPicked(ZoneScore)),
			ifVarAtLeast("count", 1,
				pickCards("Return a top card of equal value", 1, 1, fromTops(ageOfVar("value")), returnPicked(ZoneBoard))),
		))
	case cards.Colonialism:
		return effs(nd(drawTuckRepeatIf(3, cards.Crown)))
	case cards.Enterprise:
		return effs(dd(
			pickCards("Transfer a top non-purple card with a crown", 1, 1,
				fromTops(both(notColor(cards.Purple), hasIconOn(cards.Crown))),
				transferPicked(zExec(ZoneBoard), zAct(ZoneBoard))),
			ifVarAtLeast("count", 1, drawMeld(4, 1)),
		))
	case cards.Experimentation:
		return effs(nd(drawMeld(5, 1)))
	case cards.Gunpowder:
		return effs(
			dd(pickCards("Transfer a top card with a castle", 1, 1, fromTops(hasIconOn(cards.Castle)),
				transferPicked(zExec(ZoneBoard), zAct(ZoneScore)))),
			nd(ifMovedSince(drawScore(2, 1), EventTransferred)),
		)
	case cards.Invention:
		return effs(nd(
			maySplayFrom(SplayLeft, SplayRight, allColors...),
			ifVarAtLeast("splayed", 1, drawScore(4, 1)),
		))
	case cards.Navigation:
		return effs(dd(
			pickCards("Transfer a 2 or 3 from your score pile", 1, 1, fromScore(ageIn(2, 3)),
				transferPicked(zExec(ZoneScore), zAct(ZoneScore))),
		))
	case cards.Perspective:
		return effs(nd(
			pickCards("You may return a card from your hand", 0, 1, fromHand(nil), returnPicked(ZoneHand)),
			ifVarAtLeast("count", 1,
				pickCardsFn("Score a card from your hand per two lightbulbs", iconQuota(cards.Lightbulb, 2), fromHand(nil), scorePicked(ZoneHand))),
		))
	case cards.PrintingPress:
		return effs(
			nd(
				pickCards("You may return a card from your score pile", 0, 1, fromScore(nil), returnPicked(ZoneScore)),
				ifVarAtLeast("count", 1, drawDyn(topColorPlus(cards.Purple, 2), nil)),
			),
			nd(maySplay(SplayRight, cards.Blue)),
		)
	case cards.Reformation:
		return effs(
			nd(pickCardsFn("You may tuck a card per two leaves", iconQuotaMay(cards.Leaf, 2), fromHand(nil), tuckPicked(ZoneHand))),
			nd(maySplay(SplayRight, cards.Yellow, cards.Purple)),
		)

	// Age 5
	case cards.Astronomy:
		return effs(nd(drawMeldRepeatIf(6, cards.Green, cards.Blue)))
	case cards.Banking:
		return effs(
			dd(
				pickCards("Transfer a top non-green card with a factory", 1, 1,
					fromTops(both(notColor(cards.Green), hasIconOn(cards.Factory))),
					transferPicked(zExec(ZoneBoard), zAct(ZoneBoard))),
				ifVarAtLeast("count", 1, drawScore(5, 1)),
			),
			nd(maySplay(SplayRight, cards.Green)),
		)
	case cards.Chemistry:
		return effs(
			nd(maySplay(SplayRight, cards.Blue)),
			nd(
				drawDyn(highestTopPlus(1), placeScore),
				pickCards("Return a card from your score pile", 1, 1, fromScore(nil), returnPicked(ZoneScore)),
			),
		)
	case cards.Coal:
		return effs(
			nd(drawTuck(5, 1)),
			nd(maySplay(SplayRight, cards.Red)),
		)
	case cards.Measurement:
		return effs(nd(
			pickCards("You may return a card from your hand", 0, 1, fromHand(nil), returnPicked(ZoneHand)),
			ifVarAtLeast("count", 1, maySplay(SplayRight, allColors...)),
			ifVarAtLeast("splayed", 1, drawDyn(splayedColorSize, nil)),
		))
	case cards.Physics:
		return effs(nd(physicsDraw))
	case cards.Piracy:
		return effs(
			dd(pickCards("Transfer a card of value 4 or less from your score pile", 1, 1, fromScore(ageAtMost(4)),
				transferPicked(zExec(ZoneScore), zAct(ZoneScore)))),
			nd(drawScore(4, 1)),
		)
	case cards.Societies:
		return effs(dd(
			pickCards("Transfer a top card with a lightbulb", 1, 1, fromTops(hasIconOn(cards.Lightbulb)),
				transferPicked(zExec(ZoneBoard), zAct(ZoneBoard))),
			ifVarAtLeast("count", 1, drawN(5, 1)),
		))
	case cards.Statistics:
		return effs(
			dd(pickCards("Draw the highest card in your score pile into your hand", 1, 1, highest(fromScore(nil)),
				transferPicked(zExec(ZoneScore), zExec(ZoneHand)))),
			nd(maySplay(SplayRight, cards.Yellow)),
		)
	case cards.ThePirateCode:
		return effs(
			dd(pickCards("Transfer two cards of value 4 or less from your score pile", 2, 2, fromScore(ageAtMost(4)),
				transferPicked(zExec(ZoneScore), zAct(ZoneScore)))),
			nd(ifMovedSince(
				pickCards("Score the lowest top card with a crown", -1, -1, lowest(fromTops(hasIconOn(cards.Crown))), scorePicked(ZoneBoard)),
				EventTransferred)),
		)

	// Age 6
	case cards.AtomicTheory:
		return effs(
			nd(maySplay(SplayRight, cards.Blue)),
			nd(drawMeld(7, 1)),
		)
	case cards.Canning:
		return effs(
			nd(yesNo("Draw and tuck a 6?", canningTuck)),
			nd(maySplay(SplayRight, cards.Yellow)),
		)
	case cards.Classification:
		return effs(nd(
			pickCards("Reveal a card from your hand", 1, 1, fromHand(nil), meldRevealedColor),
		))
	case cards.Democracy:
		return effs(nd(
			pickCards("You may return any number of cards from your hand", 0, -1, fromHand(nil), returnPicked(ZoneHand)),
			ifVarAtLeast("count", 1, drawScore(8, 1)),
		))
	case cards.Emancipation:
		return effs(dd(
			pickCards("Transfer a card from your hand to my score pile", 1, 1, fromHand(nil),
				transferPicked(zExec(ZoneHand), zAct(ZoneScore))),
			ifVarAtLeast("count", 1, drawN(6, 1)),
		))
	case cards.Encyclopedia:
		return effs(nd(yesNo("Meld all the highest cards in your score pile?", meldHighestScore)))
	case cards.Industrialization:
		return effs(
			nd(drawPerIcon(cards.Factory, 2, 6, placeTuck)),
			nd(maySplay(SplayRight, cards.Red, cards.Purple)),
		)
	case cards.MachineTools:
		return effs(nd(drawDyn(highestScorePlus(0), placeScore)))
	case cards.MetricSystem:
		return effs(
			nd(ifSplayed(cards.Green, SplayRight, maySplay(SplayRight, allColors...))),
			nd(maySplay(SplayRight, cards.Green)),
		)
	case cards.Vaccination:
		return effs(
			dd(
				pickCards("Return all the lowest cards in your score pile", -1, -1, lowest(fromScore(nil)), returnPicked(ZoneScore)),
				ifVarAtLeast("count", 1, drawMeld(6, 1)),
			),
			nd(ifMovedSince(drawMeld(7, 1), EventReturned)),
		)

	// Age 7
	case cards.Bicycle:
		return effs(nd(yesNo("Exchange all the cards in your hand with your score pile?", bicycleExchange)))
	case cards.Combustion:
		return effs(dd(
			pickCards("Transfer two cards from your score pile", 2, 2, fromScore(nil),
				transferPicked(zExec(ZoneScore), zAct(ZoneScore))),
		))
	case cards.Electricity:
		return effs(nd(electricityReturn))
	case cards.Evolution:
		return effs(nd(
			yesNo("Draw and score an 8, then return a card from your score pile?", setVar("mode", 1)),
			ifVarAtLeast("mode", 1, drawScore(8, 1)),
			ifVarAtLeast("mode", 1,
				pickCards("Return a card from your score pile", 1, 1, fromScore(nil), returnPicked(ZoneScore))),
			ifVarIsZero("mode", drawDyn(highestScorePlus(1), nil)),
		))
	case cards.Explosives:
		return effs(dd(
			pickCards("Transfer the three highest cards from your hand", -1, -1, highestN(fromHand(nil), 3),
				transferPicked(zExec(ZoneHand), zAct(ZoneHand))),
			ifVarAtLeast("count", 1, drawN(7, 1)),
		))
	case cards.Lighting:
		return effs(nd(
			pickCards("You may tuck up to three cards from your hand", 0, 3, fromHand(nil), tuckPicked(ZoneHand)),
			ifVarAtLeast("count", 1, drawScorePerTuckedValue(7)),
		))
	case cards.Publications:
		return effs(
			nd(pickCards("You may move a covered card to the top of its pile", 0, 1, fromCovered, raiseToTop)),
			nd(maySplay(SplayUp, cards.Yellow, cards.Blue)),
		)
	case cards.Railroad:
		return effs(
			nd(
				pickCards("Return all the cards in your hand", -1, -1, fromHand(nil), returnPicked(ZoneHand)),
				drawN(6, 3),
			),
			nd(maySplayFrom(SplayRight, SplayUp, allColors...)),
		)
	case cards.Refrigeration:
		return effs(
			dd(pickCardsFn("Return half the cards in your hand", halfHandDown, fromHand(nil), returnPicked(ZoneHand))),
			nd(pickCards("You may score a card from your hand", 0, 1, fromHand(nil), scorePicked(ZoneHand))),
		)
	case cards.Sanitation:
		return effs(dd(sanitationExchange))

	// Age 8
	case cards.Antibiotics:
		return effs(nd(
			pickCards("You may return up to three cards from your hand", 0, 3, fromHand(nil), returnPicked(ZoneHand)),
			ifVarAtLeast("count", 1, drawTwoPerReturnedValue(8)),
		))
	case cards.Corporations:
		return effs(
			dd(
				pickCards("Transfer a top non-green card with a factory", 1, 1,
					fromTops(both(notColor(cards.Green), hasIconOn(cards.Factory))),
					transferPicked(zExec(ZoneBoard), zAct(ZoneScore))),
				ifVarAtLeast("count", 1, drawMeld(8, 1)),
			),
			nd(drawMeld(8, 1)),
		)
	case cards.Empiricism:
		return effs(nd(
			chooseColors("Choose two colors", 2, "colmask"),
			empiricismDraw,
		))
	case cards.Flight:
		return effs(
			nd(ifSplayed(cards.Red, SplayUp, maySplay(SplayUp, allColors...))),
			nd(maySplay(SplayUp, cards.Red)),
		)
	case cards.MassMedia:
		return effs(
			nd(
				pickCards("You may return a card from your hand", 0, 1, fromHand(nil), returnPicked(ZoneHand)),
				ifVarAtLeast("count", 1, massMediaPurge),
			),
			nd(maySplay(SplayUp, cards.Purple)),
		)
	case cards.Mobility:
		return effs(dd(
			pickCards("Transfer your two highest non-red top cards without a factory", -1, -1,
				highestN(fromTops(both(notColor(cards.Red), lacksIconOn(cards.Factory))), 2),
				transferPicked(zExec(ZoneBoard), zAct(ZoneScore))),
			ifVarAtLeast("count", 1, drawN(8, 1)),
		))
	case cards.QuantumTheory:
		return effs(nd(
			pickCards("You may return up to two cards from your hand", 0, 2, fromHand(nil), returnPicked(ZoneHand)),
			ifVarAtLeast("count", 2, drawN(10, 1)),
			ifVarAtLeast("count", 2, drawScore(10, 1)),
		))
	case cards.Rocketry:
		return effs(nd(
			pickCardsFn("Return a card from your opponent's score pile per two clocks", iconQuota(cards.Clock, 2),
				fromOppScore(nil), returnOppScore),
		))
	case cards.Skyscrapers:
		return effs(dd(
			pickCards("Transfer a top non-yellow card with a clock", 1, 1,
				fromTops(both(notColor(cards.Yellow), hasIconOn(cards.Clock))),
				skyscrapersSeize),
		))
	case cards.Socialism:
		return effs(nd(
			pickCards("You may tuck all cards from your hand", -1, -1, fromHand(nil), maybeTuckAll),
			ifVarAtLeast("allcolors", 1, socialismTake),
		))

	// Age 9
	case cards.Collaboration:
		return effs(
			dd(collaborationDraw),
			nd(drawN(9, 1)),
		)
	case cards.Composites:
		return effs(dd(
			pickCards("Choose a card to keep in your hand", 1, 1, fromHand(nil), compositesSurrender),
			pickCards("Transfer the highest card from your score pile", -1, -1, highest(fromScore(nil)),
				transferPicked(zExec(ZoneScore), zAct(ZoneScore))),
		))
	case cards.Computers:
		return effs(
			nd(maySplay(SplayUp, cards.Red, cards.Green)),
			nd(drawMeldRemember(10, "melded"), executeInline("melded")),
		)
	case cards.Ecology:
		return effs(nd(
			pickCards("You may return a card from your hand", 0, 1, fromHand(nil), returnPicked(ZoneHand)),
			ifVarAtLeast("count", 1,
				pickCards("Score a card from your hand", 1, 1, fromHand(nil), scorePicked(ZoneHand))),
			ifVarAtLeast("count", 1, drawN(10, 2)),
		))
	case cards.Fission:
		return effs(
			dd(fissionDraw),
			nd(pickCards("Return a top card from your board", 1, 1, fromTops(notCard(cards.Fission)), returnPicked(ZoneBoard))),
		)
	case cards.Genetics:
		return effs(nd(
			drawMeldRemember(10, "melded"),
			scoreBeneathMelded,
		))
	case cards.Satellites:
		return effs(
			nd(
				pickCards("Return all the cards in your hand", -1, -1, fromHand(nil), returnPicked(ZoneHand)),
				drawN(8, 3),
			),
			nd(maySplay(SplayUp, cards.Purple)),
		)
	case cards.Services:
		return effs(dd(
			pickCards("Transfer all the highest cards from your score pile", -1, -1, highest(fromScore(nil)),
				transferPicked(zExec(ZoneScore), zAct(ZoneHand))),
			ifVarAtLeast("count", 1,
				pickCards("Take a top card with a leaf from my board", 1, 1, fromActivatorTops(hasIconOn(cards.Leaf)),
					transferPicked(zAct(ZoneBoard), zExec(ZoneHand)))),
		))
	case cards.Specialization:
		return effs(
			nd(pickCards("Reveal a card from your hand", 1, 1, fromHand(nil), takeOppTopOfColor)),
			nd(maySplay(SplayUp, cards.Yellow, cards.Blue)),
		)
	case cards.Suburbia:
		return effs(nd(
			pickCards("You may tuck any number of cards from your hand", 0, -1, fromHand(nil), tuckPicked(ZoneHand)),
			drawScorePerVar("count", 1),
		))

	// Age 10
	case cards.AI:
		return effs(
			nd(drawScore(10, 1)),
			nd(cardVictory()),
		)
	case cards.Bioengineering:
		return effs(
			nd(pickCards("Transfer a top card with a leaf from your opponent's board", 1, 1,
				fromOppTops(hasIconOn(cards.Leaf)), transferPicked(zOpp(ZoneBoard), zExec(ZoneScore)))),
			nd(cardVictory()),
		)
	case cards.Databases:
		return effs(dd(
			pickCardsFn("Return half the cards in your score pile", halfScoreUp, fromScore(nil), returnPicked(ZoneScore)),
		))
	case cards.Globalization:
		return effs(
			dd(pickCards("Return a top card with a leaf from your board", 1, 1, fromTops(hasIconOn(cards.Leaf)), returnPicked(ZoneBoard))),
			nd(drawScore(6, 1), cardVictory()),
		)
	case cards.Miniaturization:
		return effs(nd(
			pickCards("You may return a card from your hand", 0, 1, fromHand(nil), returnPicked(ZoneHand)),
			ifCond(varEquals("value", 10), drawPerScoreValue(10)),
		))
	case cards.Robotics:
		return effs(nd(
			pickCards("Score your top green card", -1, -1, fromTops(isColor(cards.Green)), scorePicked(ZoneBoard)),
			drawMeldRemember(10, "melded"),
			executeInline("melded"),
		))
	case cards.SelfService:
		return effs(
			nd(pickCards("Execute the non-demand effects of another top card", 1, 1, fromTops(notCard(cards.SelfService)), executePicked)),
			nd(cardVictory()),
		)
	case cards.Software:
		return effs(
			nd(drawScore(10, 1)),
			nd(drawMeld(10, 1), drawMeldRemember(10, "melded"), executeInline("melded")),
		)
	case cards.StemCells:
		return effs(nd(yesNo("Score all the cards in your hand?", scoreAllHand)))
	case cards.TheInternet:
		return effs(
			nd(maySplay(SplayUp, cards.Green)),
			nd(drawScore(10, 1)),
			nd(drawPerIcon(cards.Clock, 2, 10, placeMeld)),
		)
	}
	return nil
}

func effs(e ...DogmaEffect) []DogmaEffect { return e }

// ---- condition helpers ----------------------------------------------------

func iconsAtLeast(icon cards.Icon, n int) func(ctx *EffectContext) bool {
	return func(ctx *EffectContext) bool {
		return ctx.Engine.CountIcons(ctx.Game, ctx.Executor, icon) >= n
	}
}

func scoreOutnumbersHand(ctx *EffectContext) bool {
	b := ctx.board()
	return len(b.Scores) > len(b.Hand)
}

func varEquals(key string, v int) func(ctx *EffectContext) bool {
	return func(ctx *EffectContext) bool { return ctx.Vars[key] == v }
}

func ifVarIsZero(key string, inner StepFunc) StepFunc {
	return ifCond(varEquals(key, 0), inner)
}

func varCardHas(key string, icon cards.Icon) func(ctx *EffectContext) bool {
	return func(ctx *EffectContext) bool {
		id := cards.CardID(ctx.Vars[key])
		if id == 0 {
			return false
		}
		for _, ic := range ctx.Engine.card(id).Icons {
			if ic == icon {
				return true
			}
		}
		return false
	}
}

func setVar(key string, v int) func(ctx *EffectContext) (StepResult, error) {
	return func(ctx *EffectContext) (StepResult, error) {
		ctx.Vars[key] = v
		return StepResult{}, nil
	}
}

// ---- filters over board context -------------------------------------------

func colorOnBoard(ctx *EffectContext, c cards.Card) bool {
	return len(ctx.board().Stacks[c.Color].Cards) > 0
}

func colorNotOnBoard(ctx *EffectContext, c cards.Card) bool {
	return !colorOnBoard(ctx, c)
}

func colorActivatorLacks(ctx *EffectContext, c cards.Card) bool {
	return len(ctx.Game.Player(ctx.Activator).Stacks[c.Color].Cards) == 0
}

func ageOfVar(key string) cardFilter {
	return func(ctx *EffectContext, c cards.Card) bool {
		return int(c.Age) == ctx.Vars[key]
	}
}

func notCard(id cards.CardID) cardFilter {
	return func(_ *EffectContext, c cards.Card) bool { return c.ID != id }
}

// ---- dynamic ages and counts ----------------------------------------------

func varAgePlus(key string, delta int) func(ctx *EffectContext) cards.Age {
	return func(ctx *EffectContext) cards.Age {
		return cards.Age(ctx.Vars[key] + delta)
	}
}

func highestScorePlus(delta int) func(ctx *EffectContext) cards.Age {
	return func(ctx *EffectContext) cards.Age {
		a := cards.Age(0)
		for _, id := range ctx.board().Scores {
			if v := ctx.cardAge(id); v > a {
				a = v
			}
		}
		return a + cards.Age(delta)
	}
}

func highestTopPlus(delta int) func(ctx *EffectContext) cards.Age {
	return func(ctx *EffectContext) cards.Age {
		a := cards.Age(0)
		for _, id := range ctx.board().TopCards() {
			if v := ctx.cardAge(id); v > a {
				a = v
			}
		}
		return a + cards.Age(delta)
	}
}

func topColorPlus(col cards.Color, delta int) func(ctx *EffectContext) cards.Age {
	return func(ctx *EffectContext) cards.Age {
		if top, ok := ctx.board().Stacks[col].Top(); ok {
			return ctx.cardAge(top) + cards.Age(delta)
		}
		return cards.Age(delta)
	}
}

func splayedColorSize(ctx *EffectContext) cards.Age {
	col := cards.Color(ctx.Vars["splaycolor"])
	return cards.Age(len(ctx.board().Stacks[col].Cards))
}

func iconQuota(icon cards.Icon, per int) func(ctx *EffectContext) (int, int) {
	return func(ctx *EffectContext) (int, int) {
		n := ctx.Engine.CountIcons(ctx.Game, ctx.Executor, icon) / per
		return n, n
	}
}

func iconQuotaMay(icon cards.Icon, per int) func(ctx *EffectContext) (int, int) {
	return func(ctx *EffectContext) (int, int) {
		return 0, ctx.Engine.CountIcons(ctx.Game, ctx.Executor, icon) / per
	}
}

func halfHandDown(ctx *EffectContext) (int, int) {
	n := len(ctx.board().Hand) / 2
	return n, n
}

func halfScoreUp(ctx *EffectContext) (int, int) {
	n := (len(ctx.board().Scores) + 1) / 2
	return n, n
}

// ---- bespoke steps --------------------------------------------------------

// cardVictory is the extension point for card-triggered instant wins; the
// base game wires none, so the step only consults the (empty) hook.
func cardVictory() StepFunc {
	return func(ctx *EffectContext) (StepResult, error) {
		ctx.Engine.checkCardVictory(ctx.Game)
		return StepResult{}, nil
	}
}

// oarsTransfer moves the picked crown card to the demander's score pile,
// rewards the defender with a draw, and repeats the demand.
func oarsTransfer(ctx *EffectContext, picks []cards.CardID) (StepResult, error) {
	if res, err := transferPicked(zExec(ZoneHand), zAct(ZoneScore))(ctx, picks); err != nil {
		return res, err
	}
	if _, ok, err := ctx.draw(1); err != nil || !ok {
		return StepResult{}, err
	}
	return StepResult{Repeat: true}, nil
}

func canalExchange(ctx *EffectContext) (StepResult, error) {
	hand := extremeAge(ctx, ctx.board().Hand, true)
	score := extremeAge(ctx, ctx.board().Scores, true)
	for _, id := range hand {
		if err := ctx.Engine.TransferCard(ctx.Game, id, ZoneRef{Player: ctx.Executor, Kind: ZoneHand}, ZoneRef{Player: ctx.Executor, Kind: ZoneScore}); err != nil {
			return StepResult{}, err
		}
	}
	for _, id := range score {
		if err := ctx.Engine.TransferCard(ctx.Game, id, ZoneRef{Player: ctx.Executor, Kind: ZoneScore}, ZoneRef{Player: ctx.Executor, Kind: ZoneHand}); err != nil {
			return StepResult{}, err
		}
	}
	return StepResult{}, nil
}

// machineryExchange swaps the defender's whole hand for the highest cards
// in the demander's hand.
func machineryExchange(ctx *EffectContext) (StepResult, error) {
	mine := append([]cards.CardID{}, ctx.board().Hand...)
	theirs := extremeAge(ctx, ctx.Game.Player(ctx.Activator).Hand, true)
	for _, id := range mine {
		if err := ctx.Engine.TransferCard(ctx.Game, id, ZoneRef{Player: ctx.Executor, Kind: ZoneHand}, ZoneRef{Player: ctx.Activator, Kind: ZoneHand}); err != nil {
			return StepResult{}, err
		}
	}
	for _, id := range theirs {
		if err := ctx.Engine.TransferCard(ctx.Game, id, ZoneRef{Player: ctx.Activator, Kind: ZoneHand}, ZoneRef{Player: ctx.Executor, Kind: ZoneHand}); err != nil {
			return StepResult{}, err
		}
	}
	return StepResult{}, nil
}

// medicineExchange swaps the defender's highest score card for the
// demander's lowest. Ties resolve by zone order.
func medicineExchange(ctx *EffectContext) (StepResult, error) {
	mine := extremeAge(ctx, ctx.board().Scores, true)
	theirs := extremeAge(ctx, ctx.Game.Player(ctx.Activator).Scores, false)
	if len(mine) > 0 {
		if err := ctx.Engine.TransferCard(ctx.Game, mine[0], ZoneRef{Player: ctx.Executor, Kind: ZoneScore}, ZoneRef{Player: ctx.Activator, Kind: ZoneScore}); err != nil {
			return StepResult{}, err
		}
	}
	if len(theirs) > 0 {
		if err := ctx.Engine.TransferCard(ctx.Game, theirs[0], ZoneRef{Player: ctx.Activator, Kind: ZoneScore}, ZoneRef{Player: ctx.Executor, Kind: ZoneScore}); err != nil {
			return StepResult{}, err
		}
	}
	return StepResult{}, nil
}

func meldAllScore(ctx *EffectContext) (StepResult, error) {
	for _, id := range append([]cards.CardID{}, ctx.board().Scores...) {
		if err := ctx.Engine.MeldCard(ctx.Game, ctx.Executor, id, ZoneScore); err != nil {
			return StepResult{}, err
		}
	}
	return StepResult{}, nil
}

func meldHighestScore(ctx *EffectContext) (StepResult, error) {
	for _, id := range extremeAge(ctx, ctx.board().Scores, true) {
		if err := ctx.Engine.MeldCard(ctx.Game, ctx.Executor, id, ZoneScore); err != nil {
			return StepResult{}, err
		}
	}
	return StepResult{}, nil
}

func scoreAllHand(ctx *EffectContext) (StepResult, error) {
	for _, id := range append([]cards.CardID{}, ctx.board().Hand...) {
		if err := ctx.Engine.ScoreCard(ctx.Game, ctx.Executor, id, ZoneHand); err != nil {
			return StepResult{}, err
		}
	}
	return StepResult{}, nil
}

func drawTuckRepeatIf(age cards.Age, icon cards.Icon) StepFunc {
	return func(ctx *EffectContext) (StepResult, error) {
		id, ok, err := ctx.draw(age)
		if err != nil || !ok {
			return StepResult{}, err
		}
		if err := placeTuck(ctx, id); err != nil {
			return StepResult{}, err
		}
		for _, ic := range ctx.Engine.card(id).Icons {
			if ic == icon {
				return StepResult{Repeat: true}, nil
			}
		}
		return StepResult{}, nil
	}
}

func drawMeldRepeatIf(age cards.Age, colors ...cards.Color) StepFunc {
	return func(ctx *EffectContext) (StepResult, error) {
		id, ok, err := ctx.draw(age)
		if err != nil || !ok {
			return StepResult{}, err
		}
		c := ctx.Engine.card(id)
		for _, col := range colors {
			if c.Color == col {
				if err := placeMeld(ctx, id); err != nil {
					return StepResult{}, err
				}
				return StepResult{Repeat: true}, nil
			}
		}
		return StepResult{}, nil
	}
}

// drawPerSplay draws one card of the given value per color splayed in the
// given direction on the executor's board.
func drawPerSplay(dir SplayDirection, age cards.Age) StepFunc {
	return func(ctx *EffectContext) (StepResult, error) {
		n := 0
		for col := range ctx.board().Stacks {
			st := &ctx.board().Stacks[col]
			if len(st.Cards) >= 2 && st.Splay == dir {
				n++
			}
		}
		for i := 0; i < n; i++ {
			if _, ok, err := ctx.draw(age); err != nil || !ok {
				return StepResult{}, err
			}
		}
		return StepResult{}, nil
	}
}

// physicsDraw draws three 6s; if two of them share a color, they and the
// rest of the hand go back to the supply.
func physicsDraw(ctx *EffectContext) (StepResult, error) {
	var colors [cards.ColorCount]int
	dup := false
	for i := 0; i < 3; i++ {
		id, ok, err := ctx.draw(6)
		if err != nil || !ok {
			return StepResult{}, err
		}
		c := ctx.Engine.card(id)
		colors[c.Color]++
		if colors[c.Color] > 1 {
			dup = true
		}
	}
	if !dup {
		return StepResult{}, nil
	}
	for _, id := range append([]cards.CardID{}, ctx.board().Hand...) {
		if err := ctx.Engine.ReturnCard(ctx.Game, ctx.Executor, id, ZoneHand); err != nil {
			return StepResult{}, err
		}
	}
	return StepResult{}, nil
}

func canningTuck(ctx *EffectContext) (StepResult, error) {
	id, ok, err := ctx.draw(6)
	if err != nil || !ok {
		return StepResult{}, err
	}
	if err := placeTuck(ctx, id); err != nil {
		return StepResult{}, err
	}
	for _, top := range filterIDs(ctx, ctx.board().TopCards(), lacksIconOn(cards.Factory)) {
		if err := ctx.Engine.ScoreCard(ctx.Game, ctx.Executor, top, ZoneBoard); err != nil {
			return StepResult{}, err
		}
	}
	return StepResult{}, nil
}

// meldRevealedColor melds every hand card sharing the revealed card's color.
func meldRevealedColor(ctx *EffectContext, picks []cards.CardID) (StepResult, error) {
	col := ctx.Engine.card(picks[0]).Color
	for _, id := range filterIDs(ctx, append([]cards.CardID{}, ctx.board().Hand...), isColor(col)) {
		if err := ctx.Engine.MeldCard(ctx.Game, ctx.Executor, id, ZoneHand); err != nil {
			return StepResult{}, err
		}
	}
	return StepResult{}, nil
}

func bicycleExchange(ctx *EffectContext) (StepResult, error) {
	hand := append([]cards.CardID{}, ctx.board().Hand...)
	score := append([]cards.CardID{}, ctx.board().Scores...)
	for _, id := range hand {
		if err := ctx.Engine.TransferCard(ctx.Game, id, ZoneRef{Player: ctx.Executor, Kind: ZoneHand}, ZoneRef{Player: ctx.Executor, Kind: ZoneScore}); err != nil {
			return StepResult{}, err
		}
	}
	for _, id := range score {
		if err := ctx.Engine.TransferCard(ctx.Game, id, ZoneRef{Player: ctx.Executor, Kind: ZoneScore}, ZoneRef{Player: ctx.Executor, Kind: ZoneHand}); err != nil {
			return StepResult{}, err
		}
	}
	return StepResult{}, nil
}

// electricityReturn returns every top card without a factory, then draws
// an 8 per card returned.
func electricityReturn(ctx *EffectContext) (StepResult, error) {
	tops := filterIDs(ctx, ctx.board().TopCards(), lacksIconOn(cards.Factory))
	for _, id := range tops {
		if err := ctx.Engine.ReturnCard(ctx.Game, ctx.Executor, id, ZoneBoard); err != nil {
			return StepResult{}, err
		}
	}
	for range tops {
		if _, ok, err := ctx.draw(8); err != nil || !ok {
			return StepResult{}, err
		}
	}
	return StepResult{}, nil
}

func sanitationExchange(ctx *EffectContext) (StepResult, error) {
	mine := highestN(fromHand(nil), 2)(ctx)
	theirs := extremeAge(ctx, ctx.Game.Player(ctx.Activator).Hand, false)
	for _, id := range mine {
		if err := ctx.Engine.TransferCard(ctx.Game, id, ZoneRef{Player: ctx.Executor, Kind: ZoneHand}, ZoneRef{Player: ctx.Activator, Kind: ZoneHand}); err != nil {
			return StepResult{}, err
		}
	}
	if len(theirs) > 0 {
		if err := ctx.Engine.TransferCard(ctx.Game, theirs[0], ZoneRef{Player: ctx.Activator, Kind: ZoneHand}, ZoneRef{Player: ctx.Executor, Kind: ZoneHand}); err != nil {
			return StepResult{}, err
		}
	}
	return StepResult{}, nil
}

func drawScorePerTuckedValue(age cards.Age) StepFunc {
	return func(ctx *EffectContext) (StepResult, error) {
		n := bitcount(ctx.Vars["values"])
		for i := 0; i < n; i++ {
			id, ok, err := ctx.draw(age)
			if err != nil || !ok {
				return StepResult{}, err
			}
			if err := placeScore(ctx, id); err != nil {
				return StepResult{}, err
			}
		}
		return StepResult{}, nil
	}
}

func drawTwoPerReturnedValue(age cards.Age) StepFunc {
	return func(ctx *EffectContext) (StepResult, error) {
		n := 2 * bitcount(ctx.Vars["values"])
		for i := 0; i < n; i++ {
			if _, ok, err := ctx.draw(age); err != nil || !ok {
				return StepResult{}, err
			}
		}
		return StepResult{}, nil
	}
}

func drawScorePerVar(key string, age cards.Age) StepFunc {
	return func(ctx *EffectContext) (StepResult, error) {
		for i := 0; i < ctx.Vars[key]; i++ {
			id, ok, err := ctx.draw(age)
			if err != nil || !ok {
				return StepResult{}, err
			}
			if err := placeScore(ctx, id); err != nil {
				return StepResult{}, err
			}
		}
		return StepResult{}, nil
	}
}

// fromCovered lists the executor's board cards that are not on top of
// their pile.
func fromCovered(ctx *EffectContext) []cards.CardID {
	out := []cards.CardID{}
	for col := range ctx.board().Stacks {
		st := &ctx.board().Stacks[col]
		for i := 0; i+1 < len(st.Cards); i++ {
			out = append(out, st.Cards[i])
		}
	}
	return out
}

// raiseToTop moves a covered card to the top of its pile.
func raiseToTop(ctx *EffectContext, picks []cards.CardID) (StepResult, error) {
	id := picks[0]
	col := ctx.Engine.card(id).Color
	st := &ctx.board().Stacks[col]
	rest, ok := removeID(st.Cards, id)
	if !ok {
		return StepResult{}, nil
	}
	st.Cards = append(rest, id)
	ctx.Game.logEvent(GameEvent{Type: EventMelded, Player: ctx.Executor, Card: id, FromZone: ZoneBoard, FromPlayer: ctx.Executor, ToZone: ZoneBoard, ToPlayer: ctx.Executor})
	return StepResult{}, nil
}

// chooseColors asks for n colors and stores them as a bitmask.
func chooseColors(prompt string, n int, key string) StepFunc {
	return func(ctx *EffectContext) (StepResult, error) {
		if ctx.Answer != nil {
			for _, x := range ctx.Answer {
				ctx.Vars[key] |= 1 << x
			}
			return StepResult{}, nil
		}
		opts := make([]int, 0, len(allColors))
		for _, col := range allColors {
			opts = append(opts, int(col))
		}
		return StepResult{Choice: &ChoiceRequest{
			Kind:     ChoiceSplay,
			Prompt:   prompt,
			MinCount: n,
			MaxCount: n,
			Options:  opts,
		}}, nil
	}
}

// empiricismDraw draws a 9 and, when it matches a chosen color, melds it
// and splays that color up.
func empiricismDraw(ctx *EffectContext) (StepResult, error) {
	id, ok, err := ctx.draw(9)
	if err != nil || !ok {
		return StepResult{}, err
	}
	c := ctx.Engine.card(id)
	if ctx.Vars["colmask"]&(1<<c.Color) == 0 {
		return StepResult{}, nil
	}
	if err := placeMeld(ctx, id); err != nil {
		return StepResult{}, err
	}
	if len(ctx.board().Stacks[c.Color].Cards) >= 2 && ctx.board().Stacks[c.Color].Splay != SplayUp {
		if err := ctx.Engine.SplayColor(ctx.Game, ctx.Executor, c.Color, SplayUp); err != nil {
			return StepResult{}, err
		}
	}
	return StepResult{}, nil
}

// massMediaPurge asks for a value and returns every card of that value
// from both score piles.
func massMediaPurge(ctx *EffectContext) (StepResult, error) {
	if ctx.Answer != nil {
		if len(ctx.Answer) == 0 {
			return StepResult{}, nil
		}
		age := cards.Age(ctx.Answer[0])
		for p := Player0; p < NumPlayers; p++ {
			scores := append([]cards.CardID{}, ctx.Game.Player(p).Scores...)
			for _, id := range scores {
				if ctx.cardAge(id) == age {
					if err := ctx.Engine.ReturnCard(ctx.Game, p, id, ZoneScore); err != nil {
						return StepResult{}, err
					}
				}
			}
		}
		return StepResult{}, nil
	}
	seen := map[int]bool{}
	opts := []int{}
	for p := Player0; p < NumPlayers; p++ {
		for _, id := range ctx.Game.Player(p).Scores {
			a := int(ctx.cardAge(id))
			if !seen[a] {
				seen[a] = true
				opts = append(opts, a)
			}
		}
	}
	if len(opts) == 0 {
		return StepResult{}, nil
	}
	// stable option order regardless of pile order
	for i := 1; i < len(opts); i++ {
		for j := i; j > 0 && opts[j] < opts[j-1]; j-- {
			opts[j], opts[j-1] = opts[j-1], opts[j]
		}
	}
	return StepResult{Choice: &ChoiceRequest{
		Kind:     ChoiceValue,
		Prompt:   "Choose a value to return from all score piles",
		MinCount: 1,
		MaxCount: 1,
		Options:  opts,
	}}, nil
}

// skyscrapersSeize transfers the picked top card to the demander's board,
// scores the card revealed beneath it, and returns the rest of that pile.
func skyscrapersSeize(ctx *EffectContext, picks []cards.CardID) (StepResult, error) {
	id := picks[0]
	col := ctx.Engine.card(id).Color
	if err := ctx.Engine.TransferCard(ctx.Game, id, ZoneRef{Player: ctx.Executor, Kind: ZoneBoard}, ZoneRef{Player: ctx.Activator, Kind: ZoneBoard}); err != nil {
		return StepResult{}, err
	}
	st := &ctx.board().Stacks[col]
	if top, ok := st.Top(); ok {
		if err := ctx.Engine.ScoreCard(ctx.Game, ctx.Executor, top, ZoneBoard); err != nil {
			return StepResult{}, err
		}
	}
	for _, rest := range append([]cards.CardID{}, st.Cards...) {
		if err := ctx.Engine.ReturnCard(ctx.Game, ctx.Executor, rest, ZoneBoard); err != nil {
			return StepResult{}, err
		}
	}
	return StepResult{}, nil
}

// maybeTuckAll tucks the whole hand and records whether one card of every
// color was tucked.
func maybeTuckAll(ctx *EffectContext, picks []cards.CardID) (StepResult, error) {
	if res, err := tuckPicked(ZoneHand)(ctx, picks); err != nil {
		return res, err
	}
	if bitcount(ctx.Vars["colors"]) == cards.ColorCount {
		ctx.Vars["allcolors"] = 1
	}
	return StepResult{}, nil
}

func socialismTake(ctx *EffectContext) (StepResult, error) {
	opp := ctx.Executor.Opponent()
	for _, id := range extremeAge(ctx, ctx.Game.Player(opp).Hand, false) {
		if err := ctx.Engine.TransferCard(ctx.Game, id, ZoneRef{Player: opp, Kind: ZoneHand}, ZoneRef{Player: ctx.Executor, Kind: ZoneHand}); err != nil {
			return StepResult{}, err
		}
	}
	return StepResult{}, nil
}

// collaborationDraw has the defender draw two 9s and surrender the higher
// one to the demander's board. Ties resolve by draw order.
func collaborationDraw(ctx *EffectContext) (StepResult, error) {
	first, ok, err := ctx.draw(9)
	if err != nil || !ok {
		return StepResult{}, err
	}
	second, ok, err := ctx.draw(9)
	if err != nil || !ok {
		return StepResult{}, err
	}
	give := first
	if ctx.cardAge(second) > ctx.cardAge(first) {
		give = second
	}
	return StepResult{}, ctx.Engine.TransferCard(ctx.Game, give,
		ZoneRef{Player: ctx.Executor, Kind: ZoneHand},
		ZoneRef{Player: ctx.Activator, Kind: ZoneBoard})
}

// compositesSurrender transfers every hand card except the kept one.
func compositesSurrender(ctx *EffectContext, picks []cards.CardID) (StepResult, error) {
	keep := picks[0]
	for _, id := range append([]cards.CardID{}, ctx.board().Hand...) {
		if id == keep {
			continue
		}
		if err := ctx.Engine.TransferCard(ctx.Game, id, ZoneRef{Player: ctx.Executor, Kind: ZoneHand}, ZoneRef{Player: ctx.Activator, Kind: ZoneHand}); err != nil {
			return StepResult{}, err
		}
	}
	return StepResult{}, nil
}

// fissionDraw draws a 10; a red result sends both players' hands and score
// piles back to the supply.
func fissionDraw(ctx *EffectContext) (StepResult, error) {
	id, ok, err := ctx.draw(10)
	if err != nil || !ok {
		return StepResult{}, err
	}
	if ctx.Engine.card(id).Color != cards.Red {
		return StepResult{}, nil
	}
	for p := Player0; p < NumPlayers; p++ {
		b := ctx.Game.Player(p)
		for _, h := range append([]cards.CardID{}, b.Hand...) {
			if err := ctx.Engine.ReturnCard(ctx.Game, p, h, ZoneHand); err != nil {
				return StepResult{}, err
			}
		}
		for _, s := range append([]cards.CardID{}, b.Scores...) {
			if err := ctx.Engine.ReturnCard(ctx.Game, p, s, ZoneScore); err != nil {
				return StepResult{}, err
			}
		}
	}
	return StepResult{}, nil
}

// scoreBeneathMelded scores every card beneath the just-melded one.
func scoreBeneathMelded(ctx *EffectContext) (StepResult, error) {
	id := cards.CardID(ctx.Vars["melded"])
	if id == 0 {
		return StepResult{}, nil
	}
	col := ctx.Engine.card(id).Color
	st := &ctx.board().Stacks[col]
	beneath := append([]cards.CardID{}, st.Cards...)
	for _, b := range beneath {
		if b == id {
			continue
		}
		if err := ctx.Engine.ScoreCard(ctx.Game, ctx.Executor, b, ZoneBoard); err != nil {
			return StepResult{}, err
		}
	}
	return StepResult{}, nil
}

// takeOppTopOfColor takes the opponent's top card of the revealed color
// into the executor's hand.
func takeOppTopOfColor(ctx *EffectContext, picks []cards.CardID) (StepResult, error) {
	col := ctx.Engine.card(picks[0]).Color
	opp := ctx.Executor.Opponent()
	top, ok := ctx.Game.Player(opp).Stacks[col].Top()
	if !ok {
		return StepResult{}, nil
	}
	return StepResult{}, ctx.Engine.TransferCard(ctx.Game, top,
		ZoneRef{Player: opp, Kind: ZoneBoard},
		ZoneRef{Player: ctx.Executor, Kind: ZoneHand})
}

func returnOppScore(ctx *EffectContext, picks []cards.CardID) (StepResult, error) {
	opp := ctx.Executor.Opponent()
	for _, id := range picks {
		if err := ctx.Engine.ReturnCard(ctx.Game, opp, id, ZoneScore); err != nil {
			return StepResult{}, err
		}
	}
	return StepResult{}, nil
}

func executePicked(ctx *EffectContext, picks []cards.CardID) (StepResult, error) {
	return StepResult{}, ctx.Engine.runInlineEffects(ctx.Game, picks[0], ctx.Executor)
}

func drawPerScoreValue(age cards.Age) StepFunc {
	return func(ctx *EffectContext) (StepResult, error) {
		mask := 0
		for _, id := range ctx.board().Scores {
			mask |= 1 << ctx.cardAge(id)
		}
		n := bitcount(mask)
		for i := 0; i < n; i++ {
			if _, ok, err := ctx.draw(age); err != nil || !ok {
				return StepResult{}, err
			}
		}
		return StepResult{}, nil
	}
}
