package scoring

import (
	"testing"

	"tarot-scores/internal/db"
)

func roster(n int) []db.Player {
	players := make([]db.Player, 0, n)
	for i := 1; i <= n; i++ {
		players = append(players, db.Player{ID: uint(i), GameID: 1, Name: "Player"})
	}
	return players
}

func called(id uint) *uint {
	return &id
}

func TestTarget(t *testing.T) {
	want := map[int]int{0: 56, 1: 51, 2: 41, 3: 36}
	for oudlers, target := range want {
		if got := Target(oudlers); got != target {
			t.Errorf("Target(%d) = %d, want %d", oudlers, got, target)
		}
	}
}

func TestTargetPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range oudlers")
		}
	}()
	Target(4)
}

func TestContractMultipliers(t *testing.T) {
	want := map[Contract]int{
		Petite:      1,
		Garde:       2,
		GardeSans:   4,
		GardeContre: 6,
	}
	for contract, multiplier := range want {
		if !contract.Valid() {
			t.Errorf("%q should be a valid contract", contract)
		}
		if got := contract.Multiplier(); got != multiplier {
			t.Errorf("%q multiplier = %d, want %d", contract, got, multiplier)
		}
	}
}

func TestUnknownContractPanics(t *testing.T) {
	if Contract("grand chelem").Valid() {
		t.Fatal("unexpected valid contract")
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown contract")
		}
	}()
	Contract("grand chelem").Multiplier()
}

func TestScoreSignFollowsTarget(t *testing.T) {
	for score := 0; score <= 91; score++ {
		round := db.Round{Contract: string(Garde), AttackOudlers: 2, AttackScore: score}
		got := Score(round)
		if score >= 41 && got <= 0 {
			t.Fatalf("attack score %d reached target but round score is %d", score, got)
		}
		if score < 41 && got >= 0 {
			t.Fatalf("attack score %d missed target but round score is %d", score, got)
		}
	}
}

func TestFourPlayerPetiteRound(t *testing.T) {
	round := db.Round{Attacker: 1, Contract: string(Petite), AttackOudlers: 1, AttackScore: 60}
	if got := Score(round); got != 34 {
		t.Fatalf("score = %d, want 34", got)
	}
	players := roster(4)
	totals := Totals(players, []db.Round{round})
	if totals[1] != 102 {
		t.Errorf("attacker total = %d, want 102", totals[1])
	}
	sum := 0
	for _, player := range players {
		if player.ID != 1 && totals[player.ID] != -34 {
			t.Errorf("defender %d total = %d, want -34", player.ID, totals[player.ID])
		}
		sum += totals[player.ID]
	}
	if sum != 0 {
		t.Errorf("four-player round deltas sum to %d, want 0", sum)
	}
}

func TestFourPlayerGardeContreRound(t *testing.T) {
	round := db.Round{Attacker: 1, Contract: string(GardeContre), AttackOudlers: 1, AttackScore: 60}
	if got := Score(round); got != 204 {
		t.Fatalf("score = %d, want 204", got)
	}
	totals := Totals(roster(4), []db.Round{round})
	if totals[1] != 612 {
		t.Errorf("attacker total = %d, want 612", totals[1])
	}
	if totals[2] != -204 {
		t.Errorf("defender total = %d, want -204", totals[2])
	}
}

func TestFivePlayerCalledPartnerRound(t *testing.T) {
	round := db.Round{Attacker: 1, Called: called(2), Contract: string(Petite), AttackOudlers: 0, AttackScore: 50}
	if got := Score(round); got != -31 {
		t.Fatalf("score = %d, want -31", got)
	}
	players := roster(5)
	totals := Totals(players, []db.Round{round})
	if totals[1] != -62 {
		t.Errorf("attacker total = %d, want -62", totals[1])
	}
	if totals[2] != -31 {
		t.Errorf("called partner total = %d, want -31", totals[2])
	}
	sum := 0
	for _, player := range players {
		if player.ID > 2 && totals[player.ID] != 31 {
			t.Errorf("defender %d total = %d, want 31", player.ID, totals[player.ID])
		}
		sum += totals[player.ID]
	}
	if sum != 0 {
		t.Errorf("five-player round deltas sum to %d, want 0", sum)
	}
}

func TestFivePlayerSelfCallSumsToZero(t *testing.T) {
	players := roster(5)
	for _, contract := range Contracts {
		for oudlers := 0; oudlers <= 3; oudlers++ {
			for _, score := range []int{0, 36, 41, 56, 70, 91} {
				round := db.Round{
					Attacker:      3,
					Called:        called(3),
					Contract:      string(contract),
					AttackOudlers: oudlers,
					AttackScore:   score,
				}
				sum := 0
				for _, player := range players {
					sum += Delta(player.ID, len(players), round)
				}
				if sum != 0 {
					t.Fatalf("self-call round %+v deltas sum to %d, want 0", round, sum)
				}
			}
		}
	}
}

func TestStaleCalledIgnoredOutsideFivePlayers(t *testing.T) {
	// A round saved in a 5-player game can survive a roster mismatch;
	// the partner rule must not fire at other sizes.
	round := db.Round{Attacker: 1, Called: called(2), Contract: string(Petite), AttackOudlers: 1, AttackScore: 60}
	players := roster(4)
	totals := Totals(players, []db.Round{round})
	if totals[1] != 102 {
		t.Errorf("attacker total = %d, want 102", totals[1])
	}
	if totals[2] != -34 {
		t.Errorf("player 2 total = %d, want -34 (called must be ignored)", totals[2])
	}
}

func TestTotalsOrderIndependent(t *testing.T) {
	players := roster(4)
	rounds := []db.Round{
		{Attacker: 1, Contract: string(Petite), AttackOudlers: 1, AttackScore: 60},
		{Attacker: 2, Contract: string(Garde), AttackOudlers: 0, AttackScore: 30},
		{Attacker: 3, Contract: string(GardeSans), AttackOudlers: 3, AttackScore: 36},
		{Attacker: 4, Contract: string(GardeContre), AttackOudlers: 2, AttackScore: 91},
	}
	reversed := make([]db.Round, len(rounds))
	for i, round := range rounds {
		reversed[len(rounds)-1-i] = round
	}

	forward := Totals(players, rounds)
	backward := Totals(players, reversed)
	for _, player := range players {
		if forward[player.ID] != backward[player.ID] {
			t.Errorf("player %d total changed with round order: %d vs %d",
				player.ID, forward[player.ID], backward[player.ID])
		}
	}
}

func TestTotalsStartEveryPlayerAtZero(t *testing.T) {
	players := roster(5)
	totals := Totals(players, nil)
	if len(totals) != 5 {
		t.Fatalf("totals has %d entries, want 5", len(totals))
	}
	for id, total := range totals {
		if total != 0 {
			t.Errorf("player %d starts at %d, want 0", id, total)
		}
	}
}
