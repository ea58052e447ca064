package returnbookcopy

import (
	"context"

	"github.com/AntonStoeckl/bookface-go/library/shared/core"
	"github.com/AntonStoeckl/bookface-go/library/shared/model"
	"github.com/AntonStoeckl/bookface-go/library/shared/shell"
)

// CommandHandler resolves the displayed person and book, takes the copy back and saves the library.
type CommandHandler struct {
	library *model.Model
	saver   shell.SavesLibrary
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(library *model.Model, saver shell.SavesLibrary) CommandHandler {
	return CommandHandler{
		library: library,
		saver:   saver,
	}
}

// Handle returns the addressed person's copy of the addressed book.
//
// Errors:
//   - core.ErrIllegalValue for a non-positive index
//   - core.ErrBookNotFound / core.ErrPersonNotFound if an index is beyond the displayed list
//   - core.ErrNotOnLoan if no copy of the book is lent out
//   - core.ErrLoaneeMismatch if copies are lent out, but not to this person
//   - shell.ErrSavingLibraryFailed if the return was recorded but the library could not be saved
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	if err := ctx.Err(); err != nil {
		return shell.NewRejectedResult(), err
	}

	bookIndex, err := core.IndexFromOneBased(command.BookIndex)
	if err != nil {
		return shell.NewRejectedResult(), err
	}

	personIndex, err := core.IndexFromOneBased(command.PersonIndex)
	if err != nil {
		return shell.NewRejectedResult(), err
	}

	book, err := h.library.FilteredBookAt(bookIndex)
	if err != nil {
		return shell.NewRejectedResult(), err
	}

	person, err := h.library.FilteredPersonAt(personIndex)
	if err != nil {
		return shell.NewRejectedResult(), err
	}

	returned, err := h.library.ReturnLoanedBook(person, book)
	if err != nil {
		return shell.NewRejectedResult(), err
	}

	h.library.UpdateFilteredBookList(model.ShowAllBooks)

	return shell.SaveMutation(ctx, h.saver, h.library, returned.Title().String())
}
