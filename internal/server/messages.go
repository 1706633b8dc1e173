package server

import (
	"github.com/lox/pokeranalyzer/internal/analyzer"
	"github.com/lox/pokeranalyzer/poker"
)

// RankRequest asks for a set of hands to be ranked. Each hand is a list of
// five card codes such as "10H" or "AS".
type RankRequest struct {
	Hands [][]string `json:"hands"`
}

// RankedHand is one entry of the winning order.
type RankedHand struct {
	Place    int       `json:"place"`
	Index    int       `json:"index"` // position in the request, from 0
	Cards    []string  `json:"cards"`
	Ordered  []string  `json:"ordered"`
	Category string    `json:"category"`
	Values   []float64 `json:"values"`
}

// RankResponse carries the winning order, or an error.
type RankResponse struct {
	Ranking []RankedHand `json:"ranking,omitempty"`
	Error   string       `json:"error,omitempty"`
}

func newRankResponse(round *analyzer.Round) *RankResponse {
	index := make(map[*poker.Hand]int, len(round.Hands))
	for i, h := range round.Hands {
		index[h] = i
	}

	resp := &RankResponse{Ranking: make([]RankedHand, 0, len(round.Ranking))}
	for place, h := range round.Ranking {
		rh := RankedHand{
			Place:    place + 1,
			Index:    index[h],
			Category: h.Category().String(),
		}
		for _, c := range h.Dealt() {
			rh.Cards = append(rh.Cards, c.String())
		}
		for _, c := range h.Cards() {
			rh.Ordered = append(rh.Ordered, c.String())
		}
		for _, v := range h.Values() {
			rh.Values = append(rh.Values, v.Float())
		}
		resp.Ranking = append(resp.Ranking, rh)
	}
	return resp
}
