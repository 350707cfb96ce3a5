package handeval

import "sort"

type tier struct {
	strength int16
	ids      []int64
}

// tiers groups players by the strength of their hand
type tiers map[int16]*tier

func newTiers() tiers {
	return make(tiers)
}

func (t tiers) add(id int64, strength int16) {
	tr, ok := t[strength]
	if !ok {
		tr = &tier{
			strength: strength,
			ids:      make([]int64, 0, 1),
		}
		t[strength] = tr
	}

	tr.ids = append(tr.ids, id)
}

// sorted returns the player ids grouped from the best hand to the worst hand
func (t tiers) sorted() [][]int64 {
	list := make([]*tier, 0, len(t))
	for _, tr := range t {
		list = append(list, tr)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].strength > list[j].strength
	})

	ids := make([][]int64, len(list))
	for i, tr := range list {
		ids[i] = tr.ids
	}

	return ids
}
