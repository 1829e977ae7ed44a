package lexer

import "testing"

func tokenTypes(t *testing.T, input string) []TokenType {
	t.Helper()
	l := New(input)
	var types []TokenType
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == EOF {
			return types
		}
	}
}

func TestNextTokenSingleCharacterTokens(t *testing.T) {
	input := "=+-!*/%<>;:(),{}[]"
	want := []TokenType{
		ASSIGN, PLUS, MINUS, BANG, ASTERISK, SLASH, MODULO, LT, GT,
		SEMICOLON, COLON, LPAREN, RPAREN, COMMA, LBRACE, RBRACE,
		LBRACKET, RBRACKET, EOF,
	}

	got := tokenTypes(t, input)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d\ngot: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestNextTokenTwoCharacterOperators(t *testing.T) {
	input := "== != && ||"
	want := []TokenType{EQ, NOT_EQ, AND, OR, EOF}

	got := tokenTypes(t, input)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestNextTokenKeywordsAndIdentifiers(t *testing.T) {
	input := `fn let true false if else return import while counter`
	want := []TokenType{
		FUNCTION, LET, TRUE, FALSE, IF, ELSE, RETURN, IMPORT, WHILE, IDENT, EOF,
	}

	got := tokenTypes(t, input)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestNextTokenCompleteProgram(t *testing.T) {
	input := `
let five = 5;
let add = fn(x, y) {
  x + y;
};
let result = add(five, 10);
!-/*5;
5 < 10 > 5;

if (5 < 10) {
	return true;
} else {
	return false;
}

10 == 10;
10 != 9;
"foobar";
"foo bar";
[1, 2];
{"one": 1};
while (x < 10) {
  x = x + 1;
}
`
	want := []struct {
		typ     TokenType
		literal string
	}{
		{LET, "let"}, {IDENT, "five"}, {ASSIGN, "="}, {INT, "5"}, {SEMICOLON, ";"},
		{LET, "let"}, {IDENT, "add"}, {ASSIGN, "="}, {FUNCTION, "fn"}, {LPAREN, "("},
		{IDENT, "x"}, {COMMA, ","}, {IDENT, "y"}, {RPAREN, ")"}, {LBRACE, "{"},
		{IDENT, "x"}, {PLUS, "+"}, {IDENT, "y"}, {SEMICOLON, ";"},
		{RBRACE, "}"}, {SEMICOLON, ";"},
		{LET, "let"}, {IDENT, "result"}, {ASSIGN, "="}, {IDENT, "add"}, {LPAREN, "("},
		{IDENT, "five"}, {COMMA, ","}, {INT, "10"}, {RPAREN, ")"}, {SEMICOLON, ";"},
		{BANG, "!"}, {MINUS, "-"}, {SLASH, "/"}, {ASTERISK, "*"}, {INT, "5"}, {SEMICOLON, ";"},
		{INT, "5"}, {LT, "<"}, {INT, "10"}, {GT, ">"}, {INT, "5"}, {SEMICOLON, ";"},
		{IF, "if"}, {LPAREN, "("}, {INT, "5"}, {LT, "<"}, {INT, "10"}, {RPAREN, ")"}, {LBRACE, "{"},
		{RETURN, "return"}, {TRUE, "true"}, {SEMICOLON, ";"}, {RBRACE, "}"}, {ELSE, "else"}, {LBRACE, "{"},
		{RETURN, "return"}, {FALSE, "false"}, {SEMICOLON, ";"}, {RBRACE, "}"},
		{INT, "10"}, {EQ, "=="}, {INT, "10"}, {SEMICOLON, ";"},
		{INT, "10"}, {NOT_EQ, "!="}, {INT, "9"}, {SEMICOLON, ";"},
		{STRING, "foobar"}, {SEMICOLON, ";"},
		{STRING, "foo bar"}, {SEMICOLON, ";"},
		{LBRACKET, "["}, {INT, "1"}, {COMMA, ","}, {INT, "2"}, {RBRACKET, "]"}, {SEMICOLON, ";"},
		{LBRACE, "{"}, {STRING, "one"}, {COLON, ":"}, {INT, "1"}, {RBRACE, "}"}, {SEMICOLON, ";"},
		{WHILE, "while"}, {LPAREN, "("}, {IDENT, "x"}, {LT, "<"}, {INT, "10"}, {RPAREN, ")"}, {LBRACE, "{"},
		{IDENT, "x"}, {ASSIGN, "="}, {IDENT, "x"}, {PLUS, "+"}, {INT, "1"}, {SEMICOLON, ";"},
		{RBRACE, "}"},
		{EOF, ""},
	}

	l := New(input)
	for i, tt := range want {
		tok := l.NextToken()
		if tok.Type != tt.typ {
			t.Fatalf("token %d: type got %s, want %s (literal %q)", i, tok.Type, tt.typ, tok.Literal)
		}
		if tok.Literal != tt.literal {
			t.Fatalf("token %d: literal got %q, want %q", i, tok.Literal, tt.literal)
		}
	}
}

func TestNextTokenIllegalCharacter(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	if tok.Type != ILLEGAL {
		t.Errorf("got %s, want ILLEGAL", tok.Type)
	}
	if tok.Literal != "@" {
		t.Errorf("got literal %q, want %q", tok.Literal, "@")
	}
}

func TestNextTokenComment(t *testing.T) {
	l := New("let x = 1; // a trailing remark\nlet y = 2;")
	var got []Token
	for {
		tok := l.NextToken()
		got = append(got, tok)
		if tok.Type == EOF {
			break
		}
	}

	var comment *Token
	for i := range got {
		if got[i].Type == COMMENT {
			comment = &got[i]
			break
		}
	}
	if comment == nil {
		t.Fatal("expected a COMMENT token")
	}
	if comment.Literal != " a trailing remark" {
		t.Errorf("got comment literal %q, want %q", comment.Literal, " a trailing remark")
	}

	// The token after the comment must be the next statement's LET, not
	// something still inside the consumed line.
	foundLetAfter := false
	for i, tok := range got {
		if tok.Type == COMMENT {
			if got[i+1].Type == LET {
				foundLetAfter = true
			}
			break
		}
	}
	if !foundLetAfter {
		t.Error("expected LET token immediately after the comment")
	}
}

func TestNextTokenLineAndColumnTracking(t *testing.T) {
	l := New("let x = 1;\nlet y = 2;")
	var lastLine int
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			break
		}
		if tok.Literal == "y" {
			lastLine = tok.Line
		}
	}
	if lastLine != 2 {
		t.Errorf("expected identifier 'y' on line 2, got line %d", lastLine)
	}
}
