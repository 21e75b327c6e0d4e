// Package scoring implements the fixed tarot ruleset: converting a
// round's contract, oudler count and raw trick points into signed point
// deltas for every player, and folding rounds into running totals.
package scoring

import "tarot-scores/internal/db"

// Contract is the stakes tier declared by the attack before play.
type Contract string

const (
	Petite      Contract = "petite"
	Garde       Contract = "garde"
	GardeSans   Contract = "garde sans"
	GardeContre Contract = "garde contre"
)

// Contracts lists the four tiers in ascending stakes order.
var Contracts = []Contract{Petite, Garde, GardeSans, GardeContre}

var contractMultipliers = map[Contract]int{
	Petite:      1,
	Garde:       2,
	GardeSans:   4,
	GardeContre: 6,
}

// Valid reports whether c is one of the four known tiers.
func (c Contract) Valid() bool {
	_, ok := contractMultipliers[c]
	return ok
}

// Multiplier returns the stakes multiplier for c. An unknown contract is
// a programming error: the store validates tiers before persisting.
func (c Contract) Multiplier() int {
	multiplier, ok := contractMultipliers[c]
	if !ok {
		panic("scoring: unknown contract " + string(c))
	}
	return multiplier
}

var targets = [4]int{56, 51, 41, 36}

// Target returns the score the attack must reach given how many oudlers
// it holds. Fewer oudlers raise the bar.
func Target(oudlers int) int {
	if oudlers < 0 || oudlers >= len(targets) {
		panic("scoring: oudler count out of range")
	}
	return targets[oudlers]
}

// Score returns the signed score shared by every player in the round:
// a fixed 25 point bonus plus the margin of victory or defeat, negated
// when the attack fails, scaled by the contract multiplier.
func Score(round db.Round) int {
	target := Target(round.AttackOudlers)
	margin := round.AttackScore - target
	outcome := 1
	if margin < 0 {
		outcome = -1
		margin = -margin
	}
	return (25 + margin) * outcome * Contract(round.Contract).Multiplier()
}

// PlayerMultiplier returns the per-player factor applied to the round
// score. With five players the called-partner rule applies: an attacker
// who called themself plays alone against four, an attacker who called
// someone else shares the outcome with them. At any other roster size a
// stale called value is ignored.
func PlayerMultiplier(playerID uint, rosterSize int, round db.Round) int {
	if rosterSize == 5 {
		called := round.Called != nil && *round.Called == playerID
		switch {
		case playerID == round.Attacker && called:
			// Attacker who called themselves (1 against 4)
			return 4
		case playerID == round.Attacker:
			// Attacker who called someone else
			return 2
		case called:
			// Player called (king)
			return 1
		default:
			// Defense
			return -1
		}
	}
	if playerID == round.Attacker {
		return rosterSize - 1
	}
	return -1
}

// Delta returns the signed point change for one player in one round.
func Delta(playerID uint, rosterSize int, round db.Round) int {
	return Score(round) * PlayerMultiplier(playerID, rosterSize, round)
}

// Totals folds every round's deltas into a cumulative total per player.
// Every known player starts at zero; rounds are folded in storage order.
func Totals(players []db.Player, rounds []db.Round) map[uint]int {
	totals := make(map[uint]int, len(players))
	for _, player := range players {
		totals[player.ID] = 0
	}
	for _, round := range rounds {
		score := Score(round)
		for _, player := range players {
			totals[player.ID] += score * PlayerMultiplier(player.ID, len(players), round)
		}
	}
	return totals
}
