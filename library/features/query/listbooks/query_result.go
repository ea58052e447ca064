package listbooks

// BookRow is one line of the book listing.
type BookRow struct {
	Position       int
	Title          string
	Author         string
	Available      int
	TotalCopies    int
	Status         string
	NextReturnDate string // empty when no copy is on loan
}

// BookList represents the query result containing the displayed books in list order.
type BookList struct {
	Books []BookRow
	Count int
}
