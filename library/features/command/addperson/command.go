package addperson

const (
	commandType = "AddPerson"
)

// Command represents the intent to register a person.
type Command struct {
	Name string
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(name string) Command {
	return Command{
		Name: name,
	}
}
