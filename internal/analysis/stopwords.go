package analysis

// stopwords contains English function words and high-frequency fillers
// that carry no discriminative value in a word cloud.
var stopwords = map[string]struct{}{
	// Articles and determiners
	"a": {}, "an": {}, "the": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "some": {}, "any": {}, "each": {}, "every": {}, "all": {},
	// Pronouns
	"i": {}, "me": {}, "my": {}, "we": {}, "our": {}, "us": {}, "you": {},
	"your": {}, "he": {}, "she": {}, "it": {}, "its": {}, "they": {},
	"them": {}, "their": {}, "who": {}, "what": {}, "which": {},
	// Conjunctions
	"and": {}, "or": {}, "but": {}, "nor": {}, "so": {}, "yet": {},
	"because": {}, "while": {}, "when": {}, "if": {}, "than": {},
	// Prepositions
	"at": {}, "by": {}, "for": {}, "from": {}, "in": {}, "into": {},
	"of": {}, "on": {}, "onto": {}, "out": {}, "over": {}, "to": {},
	"under": {}, "up": {}, "with": {}, "without": {}, "about": {},
	"after": {}, "before": {}, "between": {}, "during": {}, "through": {},
	// Auxiliaries and copulas
	"am": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {},
	"been": {}, "being": {}, "do": {}, "does": {}, "did": {}, "have": {},
	"has": {}, "had": {}, "will": {}, "would": {}, "can": {}, "could": {},
	"should": {}, "shall": {}, "may": {}, "might": {}, "must": {},
	// Negations and fillers
	"not": {}, "no": {}, "dont": {}, "didnt": {}, "doesnt": {}, "isnt": {},
	"wasnt": {}, "very": {}, "really": {}, "just": {}, "too": {},
	"also": {}, "there": {}, "here": {}, "then": {}, "now": {}, "only": {},
	"more": {}, "most": {}, "much": {}, "many": {}, "as": {}, "how": {},
}

func isStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}
