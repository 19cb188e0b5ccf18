package model

import "time"

// WeeklyResult is the official outcome of an episode, entered once by the
// commissioner. Once recorded, scoring for that week is final.
type WeeklyResult struct {
	Week            int
	StarBaker       string
	TechnicalWinner string
	EliminatedBaker string
	Handshake       bool
	Entered         time.Time
}

// SeasonResult is the official finale outcome: the winner and the two other
// finalists. Entering it triggers foresight scoring over every stored
// season-pick snapshot.
type SeasonResult struct {
	Winner    string
	FinalistA string
	FinalistB string
	Entered   time.Time
}
