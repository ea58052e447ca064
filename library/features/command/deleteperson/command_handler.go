package deleteperson

import (
	"context"

	"github.com/AntonStoeckl/bookface-go/library/shared/core"
	"github.com/AntonStoeckl/bookface-go/library/shared/model"
	"github.com/AntonStoeckl/bookface-go/library/shared/shell"
)

// CommandHandler removes the displayed person from the registry and saves the library.
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

// Handle deletes the person at the command's position of the displayed person list.
// It fails with core.ErrPersonNotFound for an index beyond the list and
// core.ErrPersonHasActiveLoans while the person holds any book.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	if err := ctx.Err(); err != nil {
		return shell.NewRejectedResult(), err
	}

	index, err := core.IndexFromOneBased(command.PersonIndex)
	if err != nil {
		return shell.NewRejectedResult(), err
	}

	person, err := h.library.FilteredPersonAt(index)
	if err != nil {
		return shell.NewRejectedResult(), err
	}

	deleted, err := h.library.DeletePerson(person)
	if err != nil {
		return shell.NewRejectedResult(), err
	}

	return shell.SaveMutation(ctx, h.saver, h.library, deleted.Name().String())
}
