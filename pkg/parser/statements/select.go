package statements

// SelectStatement reads back every row in insertion order.
type SelectStatement struct {
	BaseStatement
}

func NewSelectStatement() *SelectStatement {
	return &SelectStatement{BaseStatement: NewBaseStatement(Select)}
}

func (ss *SelectStatement) Validate() error {
	return nil
}

func (ss *SelectStatement) String() string {
	return "select"
}
