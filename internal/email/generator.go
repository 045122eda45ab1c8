package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/sasank-sasi/Vertx/internal/models"

	"go.uber.org/zap"
)

// systemPrompt mandates the Subject/Body/signature structure every variant
// is parsed against.
const systemPrompt = `You are an expert at crafting professional investor emails.
Always format your response with:
Subject: [Clear, concise subject line]

Body: [Professional email body]

End every email with:
Best regards,
[Founder Name]
[Company Name]`

// Completer is the slice of the LLM provider the generator needs.
type Completer interface {
	Complete(ctx context.Context, req models.CompletionRequest) (string, error)
}

// Generator produces outreach email drafts, one LLM request per variant.
type Generator struct {
	client Completer
	logger *zap.Logger
}

// NewGenerator creates an email draft generator.
func NewGenerator(client Completer, logger *zap.Logger) *Generator {
	return &Generator{
		client: client,
		logger: logger,
	}
}

// GenerateVariants requests the four standard variants and, when custom is
// non-nil, one additional custom variant. A single variant's failure is
// logged and skipped; whatever succeeded is returned, possibly nothing.
func (g *Generator) GenerateVariants(ctx context.Context, founder models.FounderProfile, investor models.InvestorProfile, custom *models.CustomInstruction) []models.EmailDraft {
	baseContext := buildBaseContext(founder, investor)

	var drafts []models.EmailDraft
	for _, variant := range models.StandardVariants {
		instruction := models.VariantInstructions[variant]

		raw, err := g.client.Complete(ctx, models.CompletionRequest{
			System:      systemPrompt,
			Prompt:      baseContext + "\n\n" + instruction,
			Temperature: 0.7,
			MaxTokens:   1000,
		})
		if err != nil {
			g.logger.Error("Failed to generate email variant",
				zap.String("variant", string(variant)),
				zap.Error(err))
			continue
		}

		drafts = append(drafts, ParseDraft(raw, founder.CompanyName, variant))
	}

	if custom != nil {
		raw, err := g.client.Complete(ctx, models.CompletionRequest{
			System:      systemPrompt,
			Prompt:      buildCustomPrompt(baseContext, custom),
			Temperature: 0.7,
			MaxTokens:   1000,
		})
		if err != nil {
			g.logger.Error("Failed to generate custom email variant", zap.Error(err))
		} else {
			drafts = append(drafts, ParseDraft(raw, founder.CompanyName, models.VariantCustom))
		}
	}

	return drafts
}

func buildBaseContext(founder models.FounderProfile, investor models.InvestorProfile) string {
	return fmt.Sprintf(`Founder Details:
- Name: %s
- Company: %s
- Industry: %s
- Stage: %s
- Pitch: %s
- Metrics:
  - MRR: %s
  - Growth: %s
  - Customers: %s

Investor Details:
- Name: %s
- Firm: %s
- Focus Areas: %s
- Stage Preference: %s`,
		founder.Name, founder.CompanyName, founder.Industry, founder.Stage, founder.Pitch,
		metricOr(founder.Metrics, "mrr"),
		metricOr(founder.Metrics, "growth"),
		metricOr(founder.Metrics, "customers"),
		investor.Name, investor.Firm,
		strings.Join(investor.InvestmentFocus, ", "),
		strings.Join(investor.PreferredStages, ", "))
}

func buildCustomPrompt(baseContext string, custom *models.CustomInstruction) string {
	var b strings.Builder
	b.WriteString(baseContext)
	b.WriteString("\n\n")
	b.WriteString(custom.Instruction)

	if custom.Tone != "" {
		b.WriteString("\nTone: ")
		b.WriteString(custom.Tone)
	}
	if len(custom.FocusPoints) > 0 {
		b.WriteString("\nFocus on:\n")
		for _, point := range custom.FocusPoints {
			b.WriteString("- ")
			b.WriteString(point)
			b.WriteString("\n")
		}
	}
	if custom.Template != "" {
		b.WriteString("\nUse this template as a skeleton:\n")
		b.WriteString(custom.Template)
	}

	return b.String()
}

func metricOr(metrics map[string]string, key string) string {
	if v, ok := metrics[key]; ok && v != "" {
		return v
	}
	return "N/A"
}

// ParseDraft extracts subject and body from a response shaped as
// "Subject: ...\n\nBody: ...". A malformed response falls back to a default
// subject with the raw text as body so the variant is never discarded.
func ParseDraft(raw, companyName string, variant models.EmailVariant) models.EmailDraft {
	si := strings.Index(raw, "Subject:")
	bi := strings.Index(raw, "Body:")

	if si >= 0 && bi > si {
		subject := strings.TrimSpace(raw[si+len("Subject:") : bi])
		body := strings.TrimSpace(raw[bi+len("Body:"):])
		return models.EmailDraft{Subject: subject, Body: body, Variant: variant}
	}

	return models.EmailDraft{
		Subject: companyName + " - Investment Opportunity",
		Body:    strings.TrimSpace(raw),
		Variant: variant,
	}
}
