package addperson

import (
	"context"

	"github.com/AntonStoeckl/bookface-go/library/shared/core"
	"github.com/AntonStoeckl/bookface-go/library/shared/model"
	"github.com/AntonStoeckl/bookface-go/library/shared/shell"
)

// CommandHandler registers persons and saves the library.
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

// Handle registers the person named in command.
// It fails with core.ErrIllegalValue for an invalid name and core.ErrDuplicatePerson for a taken one.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	if err := ctx.Err(); err != nil {
		return shell.NewRejectedResult(), err
	}

	name, err := core.BuildName(command.Name)
	if err != nil {
		return shell.NewRejectedResult(), err
	}

	person := core.BuildPerson(name)
	if err = h.library.AddPerson(person); err != nil {
		return shell.NewRejectedResult(), err
	}

	return shell.SaveMutation(ctx, h.saver, h.library, name.String())
}
