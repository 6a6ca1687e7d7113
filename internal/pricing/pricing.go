package pricing

// Seat prices depend on the row letter only: rows A-C are premium,
// D-F gold, everything from G on silver. The auditorium layout is a
// fixed 10x10 grid (rows A-J, seats 1-10).

const (
	PremiumPrice = 400
	GoldPrice    = 300
	SilverPrice  = 200

	SeatsPerRow = 10
)

var Rows = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

// TierName returns the pricing tier for a row letter.
func TierName(row string) string {
	switch row {
	case "A", "B", "C":
		return "premium"
	case "D", "E", "F":
		return "gold"
	default:
		return "silver"
	}
}

// SeatPrice returns the price of a single seat code, e.g. "D5".
// The row letter is the first character; the seat number is ignored.
func SeatPrice(seat string) float64 {
	if seat == "" {
		return SilverPrice
	}
	switch TierName(seat[:1]) {
	case "premium":
		return PremiumPrice
	case "gold":
		return GoldPrice
	default:
		return SilverPrice
	}
}

// TotalPrice sums the tier price of every selected seat. The selection
// is not deduplicated: picking the same seat twice counts twice.
func TotalPrice(seats []string) float64 {
	var total float64
	for _, seat := range seats {
		total += SeatPrice(seat)
	}
	return total
}
