package matching

import (
	"sort"
	"strings"

	"github.com/sasank-sasi/Vertx/internal/models"
)

// Candidate is a founder that survived lexical pre-filtering. Strength is
// the number of matching axes: 1 for an industry token overlap, 1 for a
// verticals token overlap.
type Candidate struct {
	Record   models.FounderRecord
	Strength int
}

// industryTokens splits an industry string on whitespace into a lower-cased
// token set.
func industryTokens(s string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(s)) {
		tokens[word] = struct{}{}
	}
	return tokens
}

// verticalTokens splits a comma-separated verticals string into a
// lower-cased token set, breaking each tag on whitespace.
func verticalTokens(s string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, tag := range strings.Split(s, ",") {
		for _, word := range strings.Fields(strings.ToLower(tag)) {
			tokens[word] = struct{}{}
		}
	}
	return tokens
}

func intersects(a, b map[string]struct{}) bool {
	for k := range a {
		if _, ok := b[k]; ok {
			return true
		}
	}
	return false
}

// Prefilter reduces the founder pool to candidates sharing at least one
// industry or vertical token with the query, ordered by descending match
// strength. The sort is stable, so equal-strength candidates keep their
// dataset order.
func Prefilter(query models.FounderInput, pool []models.FounderRecord) []Candidate {
	queryIndustry := industryTokens(query.Industry)
	queryVerticals := verticalTokens(query.Verticals)

	var candidates []Candidate
	for _, founder := range pool {
		industryMatch := intersects(queryIndustry, industryTokens(founder.Industry))
		verticalMatch := intersects(queryVerticals, verticalTokens(founder.Verticals))

		if !industryMatch && !verticalMatch {
			continue
		}

		strength := 0
		if industryMatch {
			strength++
		}
		if verticalMatch {
			strength++
		}

		candidates = append(candidates, Candidate{Record: founder, Strength: strength})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Strength > candidates[j].Strength
	})

	return candidates
}
