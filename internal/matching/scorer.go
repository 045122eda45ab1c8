package matching

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sasank-sasi/Vertx/internal/models"

	"go.uber.org/zap"
)

// failedExplanation is returned whenever a provider call errors out; the
// candidate is scored zero instead of aborting the sweep.
const failedExplanation = "Analysis failed"

// Completer is the slice of the LLM provider the scorer needs.
type Completer interface {
	Complete(ctx context.Context, req models.CompletionRequest) (string, error)
}

// Scorer asks the LLM for a 0-100 compatibility score and a short
// explanation for one candidate pair at a time.
type Scorer struct {
	client Completer
	logger *zap.Logger
}

// NewScorer creates a match scorer on top of an LLM provider.
func NewScorer(client Completer, logger *zap.Logger) *Scorer {
	return &Scorer{
		client: client,
		logger: logger,
	}
}

const founderPromptFormat = `Analyze the potential match between these founders:

New Founder:
Industry: %s
Verticals: %s
Description: %s

Existing Founder:
Company: %s
Industry: %s
Verticals: %s
Description: %s

Provide score and explanation in exactly this format:
<score>|<brief_explanation>

Example:
85|Strong match due to overlapping healthcare focus and complementary AI technologies in diagnostic solutions.

Score should be 0-100. Keep explanation under 25 words.`

const investorPromptFormat = `As an investment matching expert, analyze the compatibility between:

Founder:
Description: %s
Industry: %s

Investor:
Company: %s
Type: %s
Description: %s
Industries: %s
Location: %s
Initial Similarity Score: %.2f

Provide:
1. A score from 0 to 100 based on:
   - Industry alignment
   - Investment stage fit
   - Technology focus
   - Geographic compatibility
2. A brief explanation

Response format must be exactly:
<numerical_score>|<brief_explanation>
Example: 85|Strong industry alignment and technology focus match`

// ScoreFounderPair scores the synergy between the query founder and one
// existing founder. Provider failures degrade to (0, "Analysis failed") and
// are never surfaced as errors.
func (s *Scorer) ScoreFounderPair(ctx context.Context, query models.FounderInput, candidate models.FounderRecord) (float64, string) {
	prompt := fmt.Sprintf(founderPromptFormat,
		query.Industry, query.Verticals, query.Description,
		candidate.CompanyName, candidate.Industry, candidate.Verticals, candidate.Description)

	raw, err := s.client.Complete(ctx, models.CompletionRequest{
		Prompt:      prompt,
		Temperature: 0.3,
		MaxTokens:   100,
	})
	if err != nil {
		s.logger.Error("Founder match analysis failed",
			zap.String("candidate", candidate.CompanyName),
			zap.Error(err))
		return 0, failedExplanation
	}

	return ParseScoreResponse(raw)
}

// ScoreInvestor scores founder-investor compatibility, feeding the TF-IDF
// similarity into the prompt as additional context.
func (s *Scorer) ScoreInvestor(ctx context.Context, founder models.FounderInput, investor models.InvestorRecord, similarity float64) (float64, string) {
	prompt := fmt.Sprintf(investorPromptFormat,
		founder.Description, founder.Industry,
		investor.CompanyName, investor.InvestorType, investor.Description,
		investor.Industries, investor.Location, similarity)

	raw, err := s.client.Complete(ctx, models.CompletionRequest{
		Prompt:      prompt,
		Temperature: 0.3,
		MaxTokens:   150,
	})
	if err != nil {
		s.logger.Error("Investor match analysis failed",
			zap.String("investor", investor.CompanyName),
			zap.Error(err))
		return 0, failedExplanation
	}

	return ParseScoreResponse(raw)
}

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ParseScoreResponse parses a `<score>|<explanation>` response. If the pipe
// is missing, the first numeric substring becomes the score and the full
// raw text the explanation; with no number at all the score is zero. The
// score is always clamped into [0,100].
func ParseScoreResponse(raw string) (float64, string) {
	resp := strings.TrimSpace(raw)

	if i := strings.Index(resp, "|"); i >= 0 {
		left := strings.TrimSpace(resp[:i])
		explanation := strings.TrimSpace(resp[i+1:])

		if score, err := strconv.ParseFloat(left, 64); err == nil {
			return clampScore(score), explanation
		}
		if num := numberPattern.FindString(left); num != "" {
			score, _ := strconv.ParseFloat(num, 64)
			return clampScore(score), explanation
		}
		return 0, resp
	}

	if num := numberPattern.FindString(resp); num != "" {
		score, _ := strconv.ParseFloat(num, 64)
		return clampScore(score), resp
	}

	return 0, resp
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
