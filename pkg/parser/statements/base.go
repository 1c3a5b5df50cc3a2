package statements

// BaseStatement provides common functionality for all statement types
type BaseStatement struct {
	stmtType StatementType
}

func NewBaseStatement(stmtType StatementType) BaseStatement {
	return BaseStatement{stmtType: stmtType}
}

func (bs *BaseStatement) GetType() StatementType {
	return bs.stmtType
}
