package statements

type StatementType int

const (
	Insert StatementType = iota
	Select
)

func (st StatementType) String() string {
	switch st {
	case Insert:
		return "INSERT"
	case Select:
		return "SELECT"
	default:
		return "UNKNOWN"
	}
}

// IsWrite reports whether executing the statement mutates the table.
func (st StatementType) IsWrite() bool {
	return st == Insert
}

// Statement is the interface every prepared statement implements
type Statement interface {
	// GetType returns the type of the statement
	GetType() StatementType
	// String returns a string representation of the statement
	String() string
	// Validate checks the statement's values against the row layout
	Validate() error
}
