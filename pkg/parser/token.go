package parser

type TokenType int

const (
	INSERT TokenType = iota
	SELECT
	WORD
	EOF
)

var keywords = map[string]TokenType{
	"insert": INSERT,
	"select": SELECT,
}

type Token struct {
	Type     TokenType
	Value    string
	Position int
}

func createToken(tokenType TokenType, value string, position int) Token {
	return Token{
		Type:     tokenType,
		Value:    value,
		Position: position,
	}
}
