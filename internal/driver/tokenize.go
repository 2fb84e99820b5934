package driver

import (
	"rebuildlex/internal/diag"
	"rebuildlex/internal/lexer"
	"rebuildlex/internal/source"
	"rebuildlex/internal/token"
)

// TokenizeResult is the outcome of running the raw byte scanner over a
// single file.
type TokenizeResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path and runs it through the raw byte scanner, collecting
// both the token stream and any scan-level diagnostics it raises.
func Tokenize(path string) (*TokenizeResult, error) {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}
	file := fileSet.Get(fileID)

	bag := diag.NewBag()
	reporter := &lexer.SinkReporter{Sink: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{FileSet: fileSet, FileID: fileID, Tokens: tokens, Bag: bag}, nil
}
