package naming

// MaxSuggestions caps the "did you mean" list
const MaxSuggestions = 3

// MinFuzzyLength is the shortest input that gets fuzzy suggestions
const MinFuzzyLength = 3

// WordSeparator joins words in ingredient ids
const WordSeparator = "_"
