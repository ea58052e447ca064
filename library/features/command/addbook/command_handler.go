package addbook

import (
	"context"

	"github.com/AntonStoeckl/bookface-go/library/shared/core"
	"github.com/AntonStoeckl/bookface-go/library/shared/model"
	"github.com/AntonStoeckl/bookface-go/library/shared/shell"
)

// CommandHandler validates the command, adds the book and saves the library.
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

// Handle adds the book described by command to the catalog.
//
// Errors:
//   - core.ErrIllegalValue (as core.IllegalValueError) for an invalid title, author or quantity
//   - core.ErrDuplicateBook if the title is already in the catalog
//   - shell.ErrSavingLibraryFailed if the book was added but the library could not be saved
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	if err := ctx.Err(); err != nil {
		return shell.NewRejectedResult(), err
	}

	book, err := bookFrom(command)
	if err != nil {
		return shell.NewRejectedResult(), err
	}

	if err = h.library.AddBook(book); err != nil {
		return shell.NewRejectedResult(), err
	}

	return shell.SaveMutation(ctx, h.saver, h.library, book.Title().String())
}

func bookFrom(command Command) (core.Book, error) {
	title, err := core.BuildTitle(command.Title)
	if err != nil {
		return core.Book{}, err
	}

	author, err := core.BuildAuthor(command.Author)
	if err != nil {
		return core.Book{}, err
	}

	quantity, err := core.BuildQuantity(command.Quantity)
	if err != nil {
		return core.Book{}, err
	}

	if quantity.IsZero() {
		return core.Book{}, core.IllegalValue(core.FieldQuantity, "a new book needs at least one copy")
	}

	return core.BuildBook(title, author, quantity), nil
}
