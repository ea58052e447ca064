package deletebook

const (
	commandType = "DeleteBook"
)

// Command represents the intent to remove a book from the catalog.
type Command struct {
	BookIndex int
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookIndex int) Command {
	return Command{
		BookIndex: bookIndex,
	}
}
