package models

// ShowtimeSlot is one entry of a theatre's mock schedule. Status is
// positional ("Fast Filling" at slot indices 1 and 3, "Available"
// elsewhere) and does not reflect real seat occupancy.
type ShowtimeSlot struct {
	Time   string  `json:"time"`
	Status string  `json:"status"`
	Price  float64 `json:"price"`
}

type TheatreShowtimes struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	Location   string         `json:"location"`
	Amenities  string         `json:"amenities"`
	MovieTitle string         `json:"movie_title"`
	ShowTimes  []ShowtimeSlot `json:"show_times"`
}

type Seat struct {
	ID    string  `json:"id"`
	Row   string  `json:"row"`
	Tier  string  `json:"tier"`
	Price float64 `json:"price"`
}

type SeatRow struct {
	Row   string `json:"row"`
	Seats []Seat `json:"seats"`
}
