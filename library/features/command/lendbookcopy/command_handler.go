package lendbookcopy

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/AntonStoeckl/bookface-go/library/shared/core"
	"github.com/AntonStoeckl/bookface-go/library/shared/model"
	"github.com/AntonStoeckl/bookface-go/library/shared/shell"
)

// ErrInvalidLoanPeriod is returned by WithLoanPeriod for a period shorter than one day.
var ErrInvalidLoanPeriod = errors.New("loan period must be at least one day")

// CommandHandler resolves the displayed person and book, lends the copy and saves the library.
type CommandHandler struct {
	library    *model.Model
	saver      shell.SavesLibrary
	loanPeriod time.Duration
}

// Option configures a CommandHandler.
type Option func(*CommandHandler) error

// WithLoanPeriod sets the period after which a loan without explicit return date is due.
func WithLoanPeriod(period time.Duration) Option {
	return func(h *CommandHandler) error {
		if period < 24*time.Hour {
			return ErrInvalidLoanPeriod
		}

		h.loanPeriod = period

		return nil
	}
}

// NewCommandHandler creates a new CommandHandler. The loan period defaults to core.DefaultLoanPeriod.
func NewCommandHandler(library *model.Model, saver shell.SavesLibrary, opts ...Option) (CommandHandler, error) {
	handler := CommandHandler{
		library:    library,
		saver:      saver,
		loanPeriod: core.DefaultLoanPeriod,
	}

	for _, opt := range opts {
		if err := opt(&handler); err != nil {
			return CommandHandler{}, err
		}
	}

	return handler, nil
}

// Handle lends a copy of the addressed book to the addressed person.
//
// Errors:
//   - core.ErrIllegalValue for a non-positive index or a malformed return date
//   - core.ErrPersonNotFound / core.ErrBookNotFound if an index is beyond the displayed list
//   - core.ErrOutOfCopies if every copy is on loan
//   - core.ErrAlreadyLoanedToPerson if the person already holds a copy
//   - shell.ErrSavingLibraryFailed if the loan was made but the library could not be saved
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	if err := ctx.Err(); err != nil {
		return shell.NewRejectedResult(), err
	}

	person, book, err := h.resolve(command)
	if err != nil {
		return shell.NewRejectedResult(), err
	}

	returnDate, err := h.returnDateFor(command)
	if err != nil {
		return shell.NewRejectedResult(), err
	}

	lent, err := h.library.LoanBookTo(person, book, returnDate)
	if err != nil {
		return shell.NewRejectedResult(), err
	}

	return shell.SaveMutation(ctx, h.saver, h.library, lent.Title().String())
}

func (h CommandHandler) resolve(command Command) (core.Person, core.Book, error) {
	personIndex, err := core.IndexFromOneBased(command.PersonIndex)
	if err != nil {
		return core.Person{}, core.Book{}, err
	}

	bookIndex, err := core.IndexFromOneBased(command.BookIndex)
	if err != nil {
		return core.Person{}, core.Book{}, err
	}

	person, err := h.library.FilteredPersonAt(personIndex)
	if err != nil {
		return core.Person{}, core.Book{}, err
	}

	book, err := h.library.FilteredBookAt(bookIndex)
	if err != nil {
		return core.Person{}, core.Book{}, err
	}

	return person, book, nil
}

func (h CommandHandler) returnDateFor(command Command) (core.ReturnDate, error) {
	if strings.TrimSpace(command.ReturnDate) == "" {
		return core.DefaultReturnDate(command.OccurredAt, h.loanPeriod), nil
	}

	return core.ParseReturnDate(command.ReturnDate)
}
