package loansbyperson

import (
	"time"
)

const (
	queryType = "LoansByPerson"
)

// Query represents the intent to list the loans of one displayed person.
type Query struct {
	PersonIndex int
	AsOf        time.Time
}

// BuildQuery creates a new Query. Loans due before the day of asOf are reported as overdue.
func BuildQuery(personIndex int, asOf time.Time) Query {
	return Query{
		PersonIndex: personIndex,
		AsOf:        asOf,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
