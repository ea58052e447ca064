package listbooks

import (
	"context"

	"github.com/AntonStoeckl/bookface-go/library/shared/model"
)

// QueryHandler reads the displayed book list from the library.
type QueryHandler struct {
	library *model.Model
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(library *model.Model) QueryHandler {
	return QueryHandler{library: library}
}

// Handle projects the displayed book list.
func (h QueryHandler) Handle(ctx context.Context, _ Query) (BookList, error) {
	if err := ctx.Err(); err != nil {
		return BookList{}, err
	}

	return ProjectBookList(h.library.FilteredBooks()), nil
}
