package spec

// QuirksMode records how strictly the document should be rendered,
// decided during DOCTYPE processing.
// https://html.spec.whatwg.org/#concept-document-limited-quirks
type QuirksMode string

const (
	NoQuirks      QuirksMode = "no-quirks"
	Quirks        QuirksMode = "quirks"
	LimitedQuirks QuirksMode = "limited-quirks"
)

// Document is the minimum https://dom.spec.whatwg.org/#interface-document
// surface a parser needs to expose: just enough to hold the resulting
// tree and the facts the tree builder decided about it along the way.
type Document struct {
	BaseURI         string
	CharacterSet    string
	QuirksMode      QuirksMode
	Doctype         *Node
	DocumentElement *Element
}

// DocumentType mirrors the <!DOCTYPE> token's three identifying
// fields, per https://dom.spec.whatwg.org/#documenttype.
type DocumentType struct {
	Name     string
	PublicID string
	SystemID string
}

// DocumentFragment is an unattached container of nodes. The parser
// creates none: fragment parsing collects its result under an html
// element, and template children stay in the main tree.
type DocumentFragment struct{}

// CharacterData backs Text, Comment and ProcessingInstruction nodes.
type CharacterData struct {
	Data string
}

type Text struct {
	*CharacterData
}

func NewText(data string) *Text {
	return &Text{CharacterData: &CharacterData{Data: data}}
}

type Comment struct {
	*CharacterData
}

type ProcessingInstruction struct {
	Target string
	*CharacterData
}

type CDATASection struct {
	*CharacterData
}
