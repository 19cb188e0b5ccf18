package model

import "time"

// WeeklyPick is a player's predictions for a single episode. There is one per
// (player, week); resubmissions overwrite it until the week's deadline.
type WeeklyPick struct {
	PlayerID        int64
	Week            int
	StarBaker       string
	TechnicalWinner string
	EliminatedBaker string
	Handshake       bool
	Submitted       time.Time
}

// SeasonPick is a player's finale prediction as of a given week. Players can
// change their season prediction every week; each week's snapshot is kept and
// scored independently when the season result comes in.
type SeasonPick struct {
	PlayerID  int64
	Week      int
	Winner    string
	FinalistA string
	FinalistB string
	Submitted time.Time
}

// PicksFinalist reports whether the pick names the baker in either finalist slot.
func (p *SeasonPick) PicksFinalist(name string) bool {
	return p.FinalistA == name || p.FinalistB == name
}
