package domain

// Course tracks an online course a user is working through.
type Course struct {
	ID       int64
	Name     string
	Link     string
	Price    float64
	Finished bool
	Notes    string
	UserID   int64
}
