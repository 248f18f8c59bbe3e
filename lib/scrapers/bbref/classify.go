package bbref

import (
	"fmt"
	"strings"

	"bbref-transactions/lib/textutil"

	"golang.org/x/net/html"
)

// the vocabulary basketball reference uses to describe transactions.
// no keyword maps to more than one type.
var keywordTypes = map[string]TransactionType{
	"traded":     TypeTrade,
	"trade":      TypeTrade,
	"sold":       TypeTrade,
	"signed":     TypeSigning,
	"re-signed":  TypeSigning,
	"hired":      TypeSigning,
	"drafted":    TypeDraft,
	"selected":   TypeDraft,
	"reassigned": TypeReassignment,
	"assigned":   TypeReassignment,
	"recalled":   TypeReassignment,
	"appointed":  TypeReassignment,
	"converted":  TypeConversion,
	"suspended":  TypeSuspension,
	"waived":     TypeWaiver,
	"claimed":    TypeWaiver,
	"released":   TypeRelease,
	"release":    TypeRelease,
	"expires":    TypeRelease,
	"fired":      TypeRelease,
	"resigns":    TypeResignation,
	"retired":    TypeRetirement,
	"retirement": TypeRetirement,
}

// ClassificationError reports a statement in which no keyword matched.
type ClassificationError struct {
	Statement string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("failed to find transaction type keyword in: %s", e.Statement)
}

// classifyType scans the statement's direct text children in document
// order, word by word, and returns the type of the first keyword found.
// Punctuation is stripped before matching but dashes are kept, so
// "re-signed" still matches.
func classifyType(statement *html.Node, description string) (TransactionType, error) {
	for child := statement.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.TextNode {
			continue
		}
		text := textutil.StripPunctuation(strings.ToLower(strings.TrimSpace(child.Data)))
		for _, word := range strings.Fields(text) {
			if ttype, ok := keywordTypes[word]; ok {
				return ttype, nil
			}
		}
	}

	return "", &ClassificationError{Statement: description}
}
