package domain

// IsSlam reports whether a seat's round tallies prove a clean sweep: all 13
// tricks captured at the base rate with every penalty point absorbed by the
// sweeper, i.e. tricksWon*10 - pointsThisRound == 130. At most one seat can
// satisfy this per round.
func IsSlam(tricksWon, pointsThisRound int) bool {
	return tricksWon*TrickBaseValue-pointsThisRound == SlamProduct
}

// SlamPlayer returns the seat that swept the round, or nil.
func SlamPlayer(players []*Player) *Player {
	for _, p := range players {
		if IsSlam(p.TricksWon, p.PointsThisRound) {
			return p
		}
	}
	return nil
}
