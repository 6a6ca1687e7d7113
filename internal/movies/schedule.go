package movies

// Mock showtime schedule per theatre id. The slots are independent of
// the movie being shown; theatres without an entry get an empty list.
var theatreSchedules = map[int64][]string{
	1: {"10:30", "13:45", "17:00", "20:30"},
	2: {"11:00", "14:15", "17:30", "21:00"},
	3: {"10:00", "13:30", "16:45", "20:15"},
}

// Theatre 1 charges the premium base price, every other theatre the
// standard one. Prices are per slot, not per movie.
const (
	premiumTheatreID  = 1
	premiumBasePrice  = 400.00
	standardBasePrice = 300.00
)

// slotStatus is positional: the second and fourth slot of every
// schedule read "Fast Filling" regardless of real occupancy.
func slotStatus(index int) string {
	if index == 1 || index == 3 {
		return "Fast Filling"
	}
	return "Available"
}

func slotPrice(theatreID int64) float64 {
	if theatreID == premiumTheatreID {
		return premiumBasePrice
	}
	return standardBasePrice
}
