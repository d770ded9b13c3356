package models

// ResultKind tags the shape of an extraction result.
type ResultKind int

const (
	ResultAbsent ResultKind = iota
	ResultSingle
	ResultCollection
)

// String returns the kind name.
func (k ResultKind) String() string {
	switch k {
	case ResultSingle:
		return "single"
	case ResultCollection:
		return "collection"
	default:
		return "absent"
	}
}

// Item is one downloadable media entry.
type Item struct {
	ID    string
	Title string
}

// ExtractResult is what the extraction library resolved a URL to.
//
// For ResultSingle, Single is set. For ResultCollection, Entries holds one
// slot per item, where a nil slot is an item that was unavailable.
type ExtractResult struct {
	Kind    ResultKind
	Single  *Item
	Entries []*Item
}

// AbsentResult returns a result signalling nothing was extracted.
func AbsentResult() ExtractResult {
	return ExtractResult{Kind: ResultAbsent}
}

// SingleResult returns a single-item result.
func SingleResult(item *Item) ExtractResult {
	return ExtractResult{Kind: ResultSingle, Single: item}
}

// CollectionResult returns a collection result. Nil entries are kept as unavailable slots.
func CollectionResult(entries ...*Item) ExtractResult {
	return ExtractResult{Kind: ResultCollection, Entries: entries}
}
