package lexicon

// Category classifies a dictionary entry by the role it plays in a sentence.
type Category int

// Categories known to the generator. Word is the zero value so an entry
// without a recognised tag lands in the generic word list.
const (
	Word     Category = iota
	Protocol          // tag "*"
	End               // tag "$"
	Suffix            // tag "%"
	Start             // tag "^"
	NoEnd             // tag "|", also a Word
)

// Dictionary tags.
const (
	TagProtocol = "*"
	TagEnd      = "$"
	TagSuffix   = "%"
	TagStart    = "^"
	TagNoEnd    = "|"
)

var allCategories = []Category{Protocol, End, Suffix, Start, NoEnd, Word}

// Categories returns every category in the order used by dumps.
func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// CategoryFromTag resolves a dictionary tag. Any tag outside the known set,
// including the empty one, resolves to Word.
func CategoryFromTag(tag string) Category {
	switch tag {
	case TagProtocol:
		return Protocol
	case TagEnd:
		return End
	case TagSuffix:
		return Suffix
	case TagStart:
		return Start
	case TagNoEnd:
		return NoEnd
	default:
		return Word
	}
}

// Tag returns the dictionary tag for c. Word has no tag.
func (c Category) Tag() string {
	switch c {
	case Protocol:
		return TagProtocol
	case End:
		return TagEnd
	case Suffix:
		return TagSuffix
	case Start:
		return TagStart
	case NoEnd:
		return TagNoEnd
	default:
		return ""
	}
}

// String returns the plural key used for c in YAML dictionaries and log records.
func (c Category) String() string {
	switch c {
	case Protocol:
		return "protocols"
	case End:
		return "ends"
	case Suffix:
		return "suffixes"
	case Start:
		return "starts"
	case NoEnd:
		return "noends"
	default:
		return "words"
	}
}
