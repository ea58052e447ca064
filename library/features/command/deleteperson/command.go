package deleteperson

const (
	commandType = "DeletePerson"
)

// Command represents the intent to remove a person from the registry.
type Command struct {
	PersonIndex int
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(personIndex int) Command {
	return Command{
		PersonIndex: personIndex,
	}
}
