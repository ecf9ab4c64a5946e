// Package extract parses free text into a structured requirement profile.
// Every field is optional; a message with no recognizable requirements yields
// an empty profile, never an error.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sparkyshop/sparky/internal/domain"
)

var (
	budgetRe = regexp.MustCompile(`\$(\d+)`)
	ageRe    = regexp.MustCompile(`(\d+)[- ]?year[- ]?old`)
)

// keywordVocab is the fixed tag vocabulary tested for presence.
var keywordVocab = []string{"gift", "toy", "game", "electronic", "outdoor", "food", "grill"}

// occasionChecks map trigger substrings to occasions. First match wins;
// occasions are mutually exclusive.
var occasionChecks = []struct {
	occasion domain.Occasion
	triggers []string
}{
	{domain.OccasionBirthday, []string{"birthday"}},
	{domain.OccasionBBQ, []string{"bbq", "cookout", "grilling"}},
	{domain.OccasionParty, []string{"party"}},
}

// Requirements extracts budget ($<n>), age (<n> year old), occasion and
// keyword tags from a message.
func Requirements(message string) domain.RequirementProfile {
	msg := strings.ToLower(message)
	req := domain.RequirementProfile{}

	if m := budgetRe.FindStringSubmatch(msg); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			req.Budget = v
		}
	}

	if m := ageRe.FindStringSubmatch(msg); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			req.Age = v
		}
	}

occasions:
	for _, c := range occasionChecks {
		for _, trigger := range c.triggers {
			if strings.Contains(msg, trigger) {
				req.Occasion = c.occasion
				break occasions
			}
		}
	}

	for _, kw := range keywordVocab {
		if strings.Contains(msg, kw) {
			req.Keywords = append(req.Keywords, kw)
		}
	}

	return req
}
