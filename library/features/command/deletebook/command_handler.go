package deletebook

import (
	"context"

	"github.com/AntonStoeckl/bookface-go/library/shared/core"
	"github.com/AntonStoeckl/bookface-go/library/shared/model"
	"github.com/AntonStoeckl/bookface-go/library/shared/shell"
)

// CommandHandler removes the displayed book from the catalog and saves the library.
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

// Handle deletes the book at the command's position of the displayed book list.
// It fails with core.ErrBookNotFound for an index beyond the list and core.ErrBookOnLoan
// while any copy is lent out.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	if err := ctx.Err(); err != nil {
		return shell.NewRejectedResult(), err
	}

	index, err := core.IndexFromOneBased(command.BookIndex)
	if err != nil {
		return shell.NewRejectedResult(), err
	}

	book, err := h.library.FilteredBookAt(index)
	if err != nil {
		return shell.NewRejectedResult(), err
	}

	deleted, err := h.library.DeleteBook(book)
	if err != nil {
		return shell.NewRejectedResult(), err
	}

	return shell.SaveMutation(ctx, h.saver, h.library, deleted.Title().String())
}
