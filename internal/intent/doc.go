// Package intent parses free-form menu input into one of the six fixed
// customer intents. Parsing is deterministic: ordered number patterns first,
// then an ordered bilingual keyword lexicon.
package intent
