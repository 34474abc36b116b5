package ranking

// Upset reports whether the winner was the numerically worse-ranked player.
func Upset(winnerRank int, loserRank int) bool {
	return winnerRank > loserRank
}

// Swap computes post-match ranks. On an upset the two players trade rank
// numbers; otherwise both keep their ranks. This is a direct two-party swap,
// never a re-sort of the ladder: players ranked between the two are not
// displaced.
func Swap(winnerRank int, loserRank int) (newWinnerRank int, newLoserRank int) {
	if Upset(winnerRank, loserRank) {
		return loserRank, winnerRank
	}
	return winnerRank, loserRank
}
