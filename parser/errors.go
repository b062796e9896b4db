package parser

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// parseError names one of the "parse error" conditions the tree
// construction algorithm signals without aborting, per
// https://html.spec.whatwg.org/multipage/parsing.html#parse-errors.
// The tokeniser and tree constructor keep running after every one of
// these; they exist only to be reported.
type parseError string

const (
	noError                            parseError = ""
	generalParseError                  parseError = "unexpected-token"
	unexpectedDocTypeError             parseError = "unexpected-doctype"
	unexpectedStartTagError            parseError = "unexpected-start-tag"
	unexpectedEndTagError              parseError = "unexpected-end-tag"
	unexpectedEOFError                 parseError = "unexpected-eof"
	adoptionAgencyLoopLimitReached     parseError = "adoption-agency-4.4-loop-limit"
	unacknowledgedSelfClosingFlagError parseError = "non-void-html-element-start-tag-with-trailing-solidus"
)

var log = logrus.New()

// ParseError is a single recoverable condition raised by the tokeniser
// or tree constructor. Position is the CharacterReader offset at which
// the tokeniser observed the condition; errors reported by the tree
// constructor carry position 0.
type ParseError struct {
	Position int
	Message  string
}

// ErrorSink is a capacity-bounded collector for ParseErrors. A zero
// Max disables collection entirely; Add is then a no-op. Once Len
// reaches Max, further errors are silently dropped rather than
// growing the slice without bound.
type ErrorSink struct {
	Max    int
	Errors []ParseError
}

// NewErrorSink returns a sink that retains at most max errors. Passing
// 0 disables collection.
func NewErrorSink(max int) *ErrorSink {
	return &ErrorSink{Max: max}
}

func (s *ErrorSink) canAdd() bool {
	return s != nil && s.Max > 0 && len(s.Errors) < s.Max
}

// Add records err at position if the sink has room for it.
func (s *ErrorSink) Add(position int, err parseError) {
	if err == noError || !s.canAdd() {
		return
	}
	s.Errors = append(s.Errors, ParseError{Position: position, Message: string(err)})
}

// logError reports a non-fatal parse error through the structured
// logger rather than returning it up the call stack; every mode
// handler keeps processing the document after one of these. sink may
// be nil, in which case the error is only logged.
func logError(sink *ErrorSink, position int, err parseError) {
	if err == noError {
		return
	}
	log.WithError(errors.New(string(err))).Debug("parse error")
	sink.Add(position, err)
}
