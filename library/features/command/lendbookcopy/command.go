package lendbookcopy

import (
	"time"
)

const (
	commandType = "LendBookCopy"
)

// Command represents the intent to lend a book copy to a person.
// ReturnDate is optional and uses the yyyy-MM-dd format.
type Command struct {
	PersonIndex int
	BookIndex   int
	ReturnDate  string
	OccurredAt  time.Time
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
// Pass an empty returnDate to use the handler's loan period.
func BuildCommand(personIndex int, bookIndex int, returnDate string, occurredAt time.Time) Command {
	return Command{
		PersonIndex: personIndex,
		BookIndex:   bookIndex,
		ReturnDate:  returnDate,
		OccurredAt:  occurredAt,
	}
}
