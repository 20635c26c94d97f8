// Package strategy holds the Basic Strategy chart and looks up the
// textbook action for a player hand against a dealer upcard.
package strategy

import "github.com/calvinwijaya/blackjack-trainer/internal/game"

// Upcards are the chart columns in order. Face cards read as "10".
var Upcards = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "A"}

// Row holds one action per dealer upcard column, in Upcards order
type Row [10]game.Action

// Table is the full Basic Strategy chart.
// Hard is keyed 5..21, Soft 13..21 and Pairs by rank "A", "2".."10".
type Table struct {
	Hard  map[int]Row    `json:"hard"`
	Soft  map[int]Row    `json:"soft"`
	Pairs map[string]Row `json:"pairs"`
}

// Action returns the entry in column upcard (one of Upcards)
func (r Row) Action(upcard string) (game.Action, bool) {
	for i, u := range Upcards {
		if u == upcard {
			return r[i], true
		}
	}
	return "", false
}

// Chart shorthand
const (
	h = game.Hit
	s = game.Stand
	d = game.Double
	p = game.Split
)

func all(a game.Action) Row {
	return Row{a, a, a, a, a, a, a, a, a, a}
}

var basicStrategy = Table{
	Hard: map[int]Row{
		//   2  3  4  5  6  7  8  9  10 A
		5:  all(h),
		6:  all(h),
		7:  all(h),
		8:  all(h),
		9:  {h, d, d, d, d, h, h, h, h, h},
		10: {d, d, d, d, d, d, d, d, h, h},
		11: all(d),
		12: {h, h, s, s, s, h, h, h, h, h},
		13: {s, s, s, s, s, h, h, h, h, h},
		14: {s, s, s, s, s, h, h, h, h, h},
		15: {s, s, s, s, s, h, h, h, h, h},
		16: {s, s, s, s, s, h, h, h, h, h},
		17: all(s),
		18: all(s),
		19: all(s),
		20: all(s),
		21: all(s),
	},
	Soft: map[int]Row{
		//   2  3  4  5  6  7  8  9  10 A
		13: {h, h, h, d, d, h, h, h, h, h},
		14: {h, h, h, d, d, h, h, h, h, h},
		15: {h, h, d, d, d, h, h, h, h, h},
		16: {h, h, d, d, d, h, h, h, h, h},
		17: {h, d, d, d, d, h, h, h, h, h},
		18: {d, d, d, d, d, s, s, h, h, h},
		19: {s, s, s, s, d, s, s, s, s, s},
		20: all(s),
		21: all(s),
	},
	Pairs: map[string]Row{
		//    2  3  4  5  6  7  8  9  10 A
		"A":  {p, p, p, p, p, p, p, p, p, h},
		"2":  {p, p, p, p, p, p, h, h, h, h},
		"3":  {p, p, p, p, p, p, h, h, h, h},
		"4":  {h, h, h, p, p, h, h, h, h, h},
		"5":  {d, d, d, d, d, d, d, d, h, h},
		"6":  {p, p, p, p, p, h, h, h, h, h},
		"7":  {p, p, p, p, p, p, h, h, h, h},
		"8":  all(p),
		"9":  {p, p, p, p, p, s, p, p, s, s},
		"10": all(s),
	},
}

// BasicStrategyTable returns a copy of the chart
func BasicStrategyTable() Table {
	return Table{
		Hard:  copyRows(basicStrategy.Hard),
		Soft:  copyRows(basicStrategy.Soft),
		Pairs: copyRows(basicStrategy.Pairs),
	}
}

func copyRows[K comparable](rows map[K]Row) map[K]Row {
	out := make(map[K]Row, len(rows))
	for k, r := range rows {
		out[k] = r
	}
	return out
}
