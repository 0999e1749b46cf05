package entity

// Category groups products.
type Category struct {
	ID          int64
	Name        string
	Description string
}
