package entity

// Flight is one flight row from ingestion. Capacity is the number of seats
// still free on it.
type Flight struct {
	ID       string `json:"id"`
	Origin   string `json:"origin"`
	Dest     string `json:"dest"`
	Capacity int64  `json:"capacity"`
}

// Serves reports whether the flight flies exactly origin -> dest.
func (f Flight) Serves(origin, dest string) bool {
	return f.Origin == origin && f.Dest == dest
}
