package entity

// Plan is a billing plan a store subscribes to.
type Plan struct {
	ID     int64
	Period string
	Cost   float64
}
