// Package name splits free-form personal names into labeled parts.
//
// # Overview
//
// Names do not tokenize on whitespace: order varies ("Ash, Steve M." versus
// "Steve M. Ash") and some parts span several words ("van der Berg",
// "Hon."). The parser instead paints a label onto every character of the
// input by repeatedly matching a pattern against what is left of the name
// and cutting the match out.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Stages    │────▶│  Tokenizer  │
//	│  (string)   │     │ (match/cut) │     │ (runs→toks) │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                           │                   ▲
//	                           ▼                   │
//	                    ┌─────────────┐     ┌─────────────┐
//	                    │  Sequence   │────▶│   Canvas    │
//	                    │ (redirects) │     │ (1 label/ch)│
//	                    └─────────────┘     └─────────────┘
//
// # Sequence views
//
// A Sequence is a character view that shrinks and reorders without
// touching its backing buffer. It keeps a redirect map from each visible
// position to the position in the input, so a match found on the reduced
// text can always be traced back:
//
//	s := name.NewSequence("0123456789")
//	s.Remove(1, 3)         // "03456789"
//	s.OriginalIndex(1)     // 3
//
// Flip trades the blocks on either side of a pivot in place, which is how
// "Ash, Steve" becomes "Steve,Ash":
//
//	s := name.NewSequence("a,bcdef")
//	s.Flip(1)              // "bcdef,a"
//
// Sub returns a Window; windows nest and delegate to their direct parent.
//
// # Pipeline
//
// Stages run in a fixed order: nickname, postnominal, suffix, the comma
// flip, last name, salutation, leading initial, first name, then middle
// initials and middle names until nothing more matches. Word lists and
// expressions come from Config; the order is fixed.
//
// # Thread Safety
//
// A Parser is immutable after New and may be shared between goroutines.
// Sequences and Windows are not safe for concurrent use.
package name
