package returnbookcopy

const (
	commandType = "ReturnBookCopy"
)

// Command represents the intent to return a lent book copy.
type Command struct {
	PersonIndex int
	BookIndex   int
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(personIndex int, bookIndex int) Command {
	return Command{
		PersonIndex: personIndex,
		BookIndex:   bookIndex,
	}
}
