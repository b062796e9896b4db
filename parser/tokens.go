package parser

import (
	"fmt"
	"strings"

	"github.com/heathj/htmlparse/parser/spec"
)

//go:generate stringer -type=tokenType
type tokenType uint

const (
	characterToken tokenType = iota
	startTagToken
	endTagToken
	endOfFileToken
	commentToken
	docTypeToken
)

const missing string = "MISSING"

type tagType uint

const (
	startTag tagType = iota
	endTag
)

// Token is a concrete token ready to be handed to the tree builder.
// Attributes is an ordered, unique-keyed map: the tokeniser enforces
// the "first attribute with a given name wins" rule as it builds one
// up, per https://html.spec.whatwg.org/#attribute-name-state.
type Token struct {
	TokenType        tokenType
	Attributes       *spec.AttributeMap
	TagName          string
	PublicIdentifier string
	SystemIdentifier string
	ForceQuirks      bool
	SelfClosing      bool
	Data             string
}

// TokenBuilder builds various tokens up during the tokenization
// phase.
type TokenBuilder struct {
	attributes     *spec.AttributeMap
	attributeKey   strings.Builder
	attributeValue strings.Builder
	name           strings.Builder
	data           strings.Builder
	tempBuffer     strings.Builder
	publicID       strings.Builder
	systemID       strings.Builder
	selfClosing    bool
	forceQuirks    bool
	removeNextAttr bool
	curTagType     tagType

	characterReferenceCode int
}

// MakeTokenBuilder allocates a TokenBuilder ready to accumulate the
// first token.
func MakeTokenBuilder() *TokenBuilder {
	b := &TokenBuilder{
		attributes: spec.NewAttributeMap(nil),
	}
	b.publicID.WriteString(missing)
	b.systemID.WriteString(missing)
	return b
}

// Reset clears all the builders and attributes. We don't include
// the temp buffer here because it's cleared by the states that use it.
func (t *TokenBuilder) Reset() {
	t.attributes = spec.NewAttributeMap(nil)
	t.attributeKey.Reset()
	t.attributeValue.Reset()
	// default state for public and system id is "MISSING"
	t.publicID.Reset()
	t.systemID.Reset()
	t.publicID.WriteString(missing)
	t.systemID.WriteString(missing)
	t.data.Reset()
	t.name.Reset()
	t.selfClosing = false
	t.forceQuirks = false
	t.removeNextAttr = false
}

// EnableSelfClosing changes the self-closing flag to "set".
func (t *TokenBuilder) EnableSelfClosing() {
	t.selfClosing = true
}

// EnableForceQuirks changes the force-quirks flag to "set".
func (t *TokenBuilder) EnableForceQuirks() {
	t.forceQuirks = true
}

// WritePublicIdentifierEmpty clears the "MISSING" sentinel so the
// public identifier buffer can start accumulating real content,
// mirroring the "set the DOCTYPE token's public identifier to the
// empty string" steps in the DOCTYPE states.
func (t *TokenBuilder) WritePublicIdentifierEmpty() {
	t.publicID.Reset()
}

// WriteSystemIdentifierEmpty is WritePublicIdentifierEmpty for the
// system identifier buffer.
func (t *TokenBuilder) WriteSystemIdentifierEmpty() {
	t.systemID.Reset()
}

// WritePublicIdentifier appends a rune to the public identifier buffer.
func (t *TokenBuilder) WritePublicIdentifier(r rune) {
	_, err := t.publicID.WriteRune(r)
	if err != nil {
		fmt.Print(err)
	}
}

// WriteSystemIdentifier appends a rune to the system identifier buffer.
func (t *TokenBuilder) WriteSystemIdentifier(r rune) {
	_, err := t.systemID.WriteRune(r)
	if err != nil {
		fmt.Print(err)
	}
}

// WriteAttributeName appends a character to the current attribute's name.
func (t *TokenBuilder) WriteAttributeName(r rune) {
	_, err := t.attributeKey.WriteRune(r)
	if err != nil {
		fmt.Print(err)
	}
}

// WriteData appends a character to the current data section.
func (t *TokenBuilder) WriteData(r rune) {
	_, err := t.data.WriteRune(r)
	if err != nil {
		fmt.Print(err)
	}
}

// WriteAttributeValue appends a character to the current attribute's value.
func (t *TokenBuilder) WriteAttributeValue(r rune) {
	_, err := t.attributeValue.WriteRune(r)
	if err != nil {
		fmt.Print(err)
	}
}

// RemoveDuplicateAttributeName checks if the current name has already
// been committed to this tag. If so, the pending attribute is
// dropped rather than overwriting the first occurrence, per
// https://html.spec.whatwg.org/#attribute-name-state.
func (t *TokenBuilder) RemoveDuplicateAttributeName() bool {
	if t.attributes.GetNamedItem(t.attributeKey.String()) != nil {
		t.removeNextAttr = true
		return true
	}
	return false
}

// WriteName appends a character to the current name value.
func (t *TokenBuilder) WriteName(r rune) {
	_, err := t.name.WriteRune(r)
	if err != nil {
		fmt.Print(err)
	}
}

// CommitAttribute ends the creation of a key/value pair by copying
// the name and value fields into the attribute list and clearing the
// name and value fields.
func (t *TokenBuilder) CommitAttribute() {
	if !t.removeNextAttr {
		k := t.attributeKey.String()
		v := t.attributeValue.String()

		if k != "" {
			t.attributes.Add(k, v)
		}
	}
	t.attributeKey.Reset()
	t.attributeValue.Reset()
	t.removeNextAttr = false
}

// WriteTempBuffer appends a character to the temporary buffer of the current state.
func (t *TokenBuilder) WriteTempBuffer(r rune) {
	_, err := t.tempBuffer.WriteRune(r)
	if err != nil {
		fmt.Print(err)
	}
}

// ResetTempBuffer clears the temporary buffer to be used by some other state.
func (t *TokenBuilder) ResetTempBuffer() {
	t.tempBuffer.Reset()
}

// TempBuffer just returns the string version of the current buffer contents.
func (t *TokenBuilder) TempBuffer() string {
	return t.tempBuffer.String()
}

// SetCharRef sets the internal character reference accumulator.
func (t *TokenBuilder) SetCharRef(i int) {
	t.characterReferenceCode = i
}

// GetCharRef returns the internal character reference accumulator.
func (t *TokenBuilder) GetCharRef() int {
	return t.characterReferenceCode
}

// AddToCharRef adds a number to the current char ref count.
func (t *TokenBuilder) AddToCharRef(i int) {
	t.characterReferenceCode += i
}

// MultByCharRef multiplies the current char ref count by a number.
func (t *TokenBuilder) MultByCharRef(i int) {
	t.characterReferenceCode *= i
}

// Cmp compares the accumulated character reference code against n,
// returning -1, 0 or 1 the way bytes.Compare does.
func (t *TokenBuilder) Cmp(n int) int {
	switch {
	case t.characterReferenceCode < n:
		return -1
	case t.characterReferenceCode > n:
		return 1
	default:
		return 0
	}
}

// TempBufferCharTokens turns the temp buffer into one character token
// per rune, for states that flush it back out as data.
func (t *TokenBuilder) TempBufferCharTokens() []Token {
	s := t.tempBuffer.String()
	toks := make([]Token, 0, len(s))
	for _, r := range s {
		toks = append(toks, t.CharacterToken(r))
	}
	return toks
}

// StartTagToken creates a start tag token from the builder contents.
func (t *TokenBuilder) StartTagToken() Token {
	return Token{
		TokenType:   startTagToken,
		TagName:     t.name.String(),
		Attributes:  t.attributes,
		SelfClosing: t.selfClosing,
	}
}

// EndTagToken creates an end tag token from the builder contents.
func (t *TokenBuilder) EndTagToken() Token {
	return Token{
		TokenType:   endTagToken,
		TagName:     t.name.String(),
		Attributes:  t.attributes,
		SelfClosing: t.selfClosing,
	}
}

// CharacterToken creates a character token from a single rune.
func (t *TokenBuilder) CharacterToken(r rune) Token {
	return Token{
		TokenType: characterToken,
		Data:      string(r),
	}
}

// EndOfFileToken creates an end of file token.
func (t *TokenBuilder) EndOfFileToken() Token {
	return Token{
		TokenType: endOfFileToken,
	}
}

// CommentToken creates a comment token from the builder contents.
func (t *TokenBuilder) CommentToken() Token {
	return Token{
		TokenType: commentToken,
		Data:      t.data.String(),
	}
}

// DocTypeToken creates a doc type token from the builder contents.
func (t *TokenBuilder) DocTypeToken() Token {
	return Token{
		TokenType:        docTypeToken,
		TagName:          t.name.String(),
		ForceQuirks:      t.forceQuirks,
		PublicIdentifier: t.publicID.String(),
		SystemIdentifier: t.systemID.String(),
	}
}
