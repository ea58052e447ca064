package loansbyperson

// LoanInfo represents one book currently held by the person.
type LoanInfo struct {
	Title      string
	Author     string
	ReturnDate string
	Overdue    bool
}

// PersonLoans represents the query result containing the loans of one person.
type PersonLoans struct {
	Name         string
	Loans        []LoanInfo
	Count        int
	OverdueCount int
}
