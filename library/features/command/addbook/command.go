package addbook

const (
	commandType = "AddBook"
)

// Command represents the intent to add a book to the catalog.
// The raw values are validated by the CommandHandler.
type Command struct {
	Title    string
	Author   string
	Quantity int
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(title string, author string, quantity int) Command {
	return Command{
		Title:    title,
		Author:   author,
		Quantity: quantity,
	}
}
