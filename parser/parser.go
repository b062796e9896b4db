package parser

import (
	"github.com/heathj/htmlparse/parser/spec"
)

type Parser struct {
	Tokenizer       *HTMLTokenizer
	TreeConstructor *HTMLTreeConstructor
}

func NewParser(htmlIn string) *Parser {
	return NewParserWithErrorSink(htmlIn, nil)
}

// NewParserWithErrorSink is like NewParser but records recoverable
// parse errors into sink as they're raised, up to sink's capacity.
// Passing a nil sink disables collection, matching NewParser.
func NewParserWithErrorSink(htmlIn string, sink *ErrorSink) *Parser {
	tokenizer := NewHTMLTokenizer(htmlIn)
	tokenizer.SetErrorSink(sink)
	treeConstructor := NewHTMLTreeConstructor()
	treeConstructor.errorSink = sink
	return &Parser{
		Tokenizer:       tokenizer,
		TreeConstructor: treeConstructor,
	}
}

// Errors returns the parse errors collected during Start, or nil if
// this Parser wasn't constructed with an error sink.
func (p *Parser) Errors() []ParseError {
	if p.TreeConstructor.errorSink == nil {
		return nil
	}
	return p.TreeConstructor.errorSink.Errors
}

type Progress struct {
	AdjustedCurrentNode    *spec.Node
	TokenizerState         *tokenizerState
	AcknowledgeSelfClosing bool
}

func MakeProgress(adjCurNode *spec.Node, tokenizerState *tokenizerState) *Progress {
	return &Progress{
		AdjustedCurrentNode: adjCurNode,
		TokenizerState:      tokenizerState,
	}
}

// MakeProgressAck is MakeProgress plus the tree constructor's signal
// that the current token's self-closing flag (if any) was consulted,
// so the tokeniser should not raise its unacknowledged-flag parse
// error on the next Token call.
func MakeProgressAck(adjCurNode *spec.Node, tokenizerState *tokenizerState, ack bool) *Progress {
	return &Progress{
		AdjustedCurrentNode:    adjCurNode,
		TokenizerState:         tokenizerState,
		AcknowledgeSelfClosing: ack,
	}
}

func (p *Parser) Start() (*spec.Node, error) {
	start := dataState
	_, err := p.startAt(&start)
	if err != nil {
		return nil, err
	}
	return p.TreeConstructor.Document, nil
}

func (p *Parser) startAt(startState *tokenizerState) ([]*Token, error) {
	var (
		progress *Progress = MakeProgress(nil, startState)
		tokens             = []*Token{}
	)
	for p.Tokenizer.Next() {
		t, err := p.Tokenizer.Token(progress)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
		progress = p.TreeConstructor.ProcessToken(t)
	}

	return tokens, nil
}
