package completion

// Moment is a fixed, display-only partition of the twelve card positions.
// Moments never mutate cards; they only group orders for presentation.
type Moment struct {
	Index       int    `json:"index"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FirstOrder  int    `json:"firstOrder"`
	LastOrder   int    `json:"lastOrder"`
}

// MomentCount is the number of thematic moments in every collection.
const MomentCount = 3

var moments = [MomentCount]Moment{
	{
		Index:       0,
		Title:       "How It Began",
		Description: "The first memories: how you met, the early days, the small things that started it all.",
		FirstOrder:  1,
		LastOrder:   4,
	},
	{
		Index:       1,
		Title:       "Along The Way",
		Description: "The road you walked together: trips, milestones, the everyday moments in between.",
		FirstOrder:  5,
		LastOrder:   8,
	},
	{
		Index:       2,
		Title:       "Here And Now",
		Description: "What they mean to you today, and everything you wish for the days ahead.",
		FirstOrder:  9,
		LastOrder:   12,
	},
}

// Moments returns the fixed partition, in display order.
func Moments() []Moment {
	out := make([]Moment, MomentCount)
	copy(out, moments[:])
	return out
}

// MomentAt returns the moment at index, or ok=false when out of range.
func MomentAt(index int) (Moment, bool) {
	if index < 0 || index >= MomentCount {
		return Moment{}, false
	}
	return moments[index], true
}

// MomentForOrder returns the moment containing the given card order.
func MomentForOrder(order int) (Moment, bool) {
	for _, m := range moments {
		if order >= m.FirstOrder && order <= m.LastOrder {
			return m, true
		}
	}
	return Moment{}, false
}
