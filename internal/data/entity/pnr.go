package entity

// PNR is a passenger group that has to travel together on one flight.
type PNR struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"` // seats needed
	Origin string `json:"origin"`
	Dest   string `json:"dest"`
}
