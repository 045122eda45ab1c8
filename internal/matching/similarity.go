package matching

import (
	"math"
	"regexp"
	"strings"

	"github.com/sasank-sasi/Vertx/internal/models"
)

// termPattern keeps word tokens of two or more characters, matching the
// tokenization the investor descriptions were originally scored with.
var termPattern = regexp.MustCompile(`\b\w\w+\b`)

// Similarities scores a founder description against every investor in the
// pool. Each investor document is its description concatenated with its
// industries field; the corpus is vectorized over unigrams and bigrams with
// English stop words removed, TF-IDF weighted (smoothed IDF, L2 norm), and
// the result is the cosine similarity of the query against each investor,
// aligned by original index. Every score lies in [0,1]. A degenerate corpus
// (no usable vocabulary) yields an all-zero vector.
func Similarities(queryDesc string, investors []models.InvestorRecord) []float64 {
	scores := make([]float64, len(investors))
	if len(investors) == 0 {
		return scores
	}

	docs := make([][]string, 0, len(investors)+1)
	for _, inv := range investors {
		docs = append(docs, terms(inv.Description+" "+inv.Industries))
	}
	docs = append(docs, terms(queryDesc))

	// Vocabulary and document frequencies over the whole corpus, query
	// document included.
	vocab := make(map[string]int)
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, term := range doc {
			if _, ok := vocab[term]; !ok {
				vocab[term] = len(vocab)
			}
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				df[term]++
			}
		}
	}

	if len(vocab) == 0 {
		return scores
	}

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for term, idx := range vocab {
		idf[idx] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vectors := make([][]float64, len(docs))
	for i, doc := range docs {
		vec := make([]float64, len(vocab))
		for _, term := range doc {
			vec[vocab[term]]++
		}
		var norm float64
		for j := range vec {
			vec[j] *= idf[j]
			norm += vec[j] * vec[j]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range vec {
				vec[j] /= norm
			}
		}
		vectors[i] = vec
	}

	// Vectors are unit length, so cosine similarity is the dot product.
	query := vectors[len(vectors)-1]
	for i := 0; i < len(investors); i++ {
		var dot float64
		for j := range query {
			dot += query[j] * vectors[i][j]
		}
		if dot < 0 {
			dot = 0
		}
		if dot > 1 {
			dot = 1
		}
		scores[i] = dot
	}

	return scores
}

// terms lower-cases, tokenizes, drops stop words, and emits unigrams plus
// bigrams. Stop words are removed before bigram formation, so "state of the
// art" produces the bigram "state art".
func terms(text string) []string {
	raw := termPattern.FindAllString(strings.ToLower(text), -1)

	tokens := raw[:0]
	for _, tok := range raw {
		if _, stop := englishStopWords[tok]; !stop {
			tokens = append(tokens, tok)
		}
	}

	out := make([]string, 0, 2*len(tokens))
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}
