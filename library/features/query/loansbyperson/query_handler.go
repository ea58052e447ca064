package loansbyperson

import (
	"context"

	"github.com/AntonStoeckl/bookface-go/library/shared/core"
	"github.com/AntonStoeckl/bookface-go/library/shared/model"
)

// QueryHandler resolves the displayed person and projects their loans.
type QueryHandler struct {
	library *model.Model
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(library *model.Model) QueryHandler {
	return QueryHandler{library: library}
}

// Handle returns the loans of the person at the query's position of the displayed person list.
// It fails with core.ErrPersonNotFound for a position beyond the list.
func (h QueryHandler) Handle(ctx context.Context, query Query) (PersonLoans, error) {
	if err := ctx.Err(); err != nil {
		return PersonLoans{}, err
	}

	index, err := core.IndexFromOneBased(query.PersonIndex)
	if err != nil {
		return PersonLoans{}, err
	}

	person, err := h.library.FilteredPersonAt(index)
	if err != nil {
		return PersonLoans{}, err
	}

	return ProjectPersonLoans(person, h.library.BooksLoanedTo(person), query.AsOf), nil
}
