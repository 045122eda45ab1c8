package matching

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/sasank-sasi/Vertx/internal/models"

	"go.uber.org/zap"
)

// DefaultMinScore is the founder-to-founder score threshold.
const DefaultMinScore = 50

// FounderMatcher runs the founder-to-founder pipeline: lexical pre-filter,
// one LLM score per surviving candidate, threshold, sort.
type FounderMatcher struct {
	scorer   *Scorer
	logger   *zap.Logger
	minScore float64
	// When non-empty, formatted results are also exported as a quoted CSV
	// under this directory.
	exportDir string
}

// NewFounderMatcher creates a founder-to-founder matcher. A minScore of
// zero selects DefaultMinScore.
func NewFounderMatcher(scorer *Scorer, logger *zap.Logger, minScore float64, exportDir string) *FounderMatcher {
	if minScore == 0 {
		minScore = DefaultMinScore
	}
	return &FounderMatcher{
		scorer:    scorer,
		logger:    logger,
		minScore:  minScore,
		exportDir: exportDir,
	}
}

// Match scores the pool against the query founder. Returns ErrNoMatches
// when pre-filtering leaves no candidates or nobody clears the threshold.
func (m *FounderMatcher) Match(ctx context.Context, query models.FounderInput, pool []models.FounderRecord) ([]models.FounderMatch, error) {
	candidates := Prefilter(query, pool)
	if len(candidates) == 0 {
		m.logger.Warn("No preliminary matches found based on industry and verticals",
			zap.String("company", query.CompanyName))
		return nil, models.ErrNoMatches
	}

	m.logger.Info("Analyzing potential matches",
		zap.String("company", query.CompanyName),
		zap.Int("candidates", len(candidates)))

	var matches []models.FounderMatch
	for _, candidate := range candidates {
		score, explanation := m.scorer.ScoreFounderPair(ctx, query, candidate.Record)
		if score < m.minScore {
			continue
		}

		matches = append(matches, models.FounderMatch{
			MatchedCompany: candidate.Record.CompanyName,
			MatchScore:     score,
			Industry:       candidate.Record.Industry,
			Verticals:      candidate.Record.Verticals,
			Explanation:    explanation,
		})
	}

	if len(matches) == 0 {
		return nil, models.ErrNoMatches
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	if m.exportDir != "" {
		path := exportPath(m.exportDir, "matches_for_", query.CompanyName)
		if err := exportFounderMatches(path, matches); err != nil {
			m.logger.Error("Failed to export matches", zap.String("path", path), zap.Error(err))
		} else {
			m.logger.Info("Results saved", zap.String("path", path))
		}
	}

	return matches, nil
}

// InvestorMatcher runs the founder-to-investor pipeline: industry substring
// filter, TF-IDF similarity, one LLM score per investor. No score threshold
// is applied; every filtered investor appears in the results.
type InvestorMatcher struct {
	scorer    *Scorer
	logger    *zap.Logger
	exportDir string
}

// NewInvestorMatcher creates a founder-to-investor matcher.
func NewInvestorMatcher(scorer *Scorer, logger *zap.Logger, exportDir string) *InvestorMatcher {
	return &InvestorMatcher{
		scorer:    scorer,
		logger:    logger,
		exportDir: exportDir,
	}
}

// Match scores every investor whose industries contain the founder's
// industry (case-insensitive). Returns ErrNoMatches when the filter leaves
// nothing to score.
func (m *InvestorMatcher) Match(ctx context.Context, founder models.FounderInput, pool []models.InvestorRecord) ([]models.InvestorMatch, error) {
	industry := strings.ToLower(founder.Industry)

	var filtered []models.InvestorRecord
	for _, inv := range pool {
		if strings.Contains(strings.ToLower(inv.Industries), industry) {
			filtered = append(filtered, inv)
		}
	}

	if len(filtered) == 0 {
		m.logger.Warn("No investors matched industry filter",
			zap.String("company", founder.CompanyName),
			zap.String("industry", founder.Industry))
		return nil, models.ErrNoMatches
	}

	similarities := Similarities(founder.Description, filtered)

	m.logger.Info("Analyzing investor matches",
		zap.String("company", founder.CompanyName),
		zap.Int("investors", len(filtered)))

	results := make([]models.InvestorMatch, 0, len(filtered))
	for i, inv := range filtered {
		score, explanation := m.scorer.ScoreInvestor(ctx, founder, inv, similarities[i])

		results = append(results, models.InvestorMatch{
			CompanyName:     inv.CompanyName,
			InvestorType:    inv.InvestorType,
			Location:        inv.Location,
			Industries:      inv.Industries,
			SimilarityScore: similarities[i],
			GroqScore:       score,
			Explanation:     explanation,
		})
	}

	if m.exportDir != "" {
		path := exportPath(m.exportDir, "investor_matches_for_", founder.CompanyName)
		if err := exportInvestorMatches(path, results); err != nil {
			m.logger.Error("Failed to export matches", zap.String("path", path), zap.Error(err))
		} else {
			m.logger.Info("Results saved", zap.String("path", path))
		}
	}

	return results, nil
}

func exportFounderMatches(path string, matches []models.FounderMatch) error {
	rows := make([][]string, 0, len(matches)+1)
	rows = append(rows, []string{"Matched Company", "Match Score", "Industry", "Verticals", "Explanation"})
	for _, m := range matches {
		rows = append(rows, []string{
			m.MatchedCompany,
			strconv.FormatFloat(m.MatchScore, 'f', -1, 64),
			m.Industry,
			m.Verticals,
			m.Explanation,
		})
	}
	return writeQuotedCSV(path, rows)
}

func exportInvestorMatches(path string, matches []models.InvestorMatch) error {
	rows := make([][]string, 0, len(matches)+1)
	rows = append(rows, []string{"company_name", "investor_type", "location", "industries", "similarity_score", "groq_score", "explanation"})
	for _, m := range matches {
		rows = append(rows, []string{
			m.CompanyName,
			m.InvestorType,
			m.Location,
			m.Industries,
			strconv.FormatFloat(m.SimilarityScore, 'f', -1, 64),
			strconv.FormatFloat(m.GroqScore, 'f', -1, 64),
			m.Explanation,
		})
	}
	return writeQuotedCSV(path, rows)
}
