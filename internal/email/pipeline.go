package email

import (
	"context"
	"time"

	"github.com/sasank-sasi/Vertx/internal/comlog"
	"github.com/sasank-sasi/Vertx/internal/models"
	"github.com/sasank-sasi/Vertx/internal/repository"

	"go.uber.org/zap"
)

// Draft bundles a generated draft with its advisory verification results.
type Draft struct {
	models.EmailDraft
	Verification map[string]bool `json:"verification"`
}

// Pipeline ties generation, verification, sending, and logging together.
// Sender may be nil when SMTP credentials are not configured; generation
// still works, sending reports failure.
type Pipeline struct {
	generator *Generator
	sender    *Sender
	logs      *comlog.Writer
	history   *repository.CommunicationRepository
	logger    *zap.Logger
}

// NewPipeline creates the email pipeline.
func NewPipeline(generator *Generator, sender *Sender, logs *comlog.Writer, history *repository.CommunicationRepository, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		generator: generator,
		sender:    sender,
		logs:      logs,
		history:   history,
		logger:    logger,
	}
}

// Generate produces drafts for every variant that succeeded, each paired
// with its verification results.
func (p *Pipeline) Generate(ctx context.Context, founder models.FounderProfile, investor models.InvestorProfile, custom *models.CustomInstruction) []Draft {
	raw := p.generator.GenerateVariants(ctx, founder, investor, custom)

	drafts := make([]Draft, 0, len(raw))
	for _, d := range raw {
		drafts = append(drafts, Draft{EmailDraft: d, Verification: Verify(d)})
	}
	return drafts
}

// Send delivers one draft to the investor and records the attempt in every
// log regardless of outcome. The returned flag and message describe the
// send result; logging failures are reported in the logs only and never
// change the result.
func (p *Pipeline) Send(founder models.FounderProfile, investor models.InvestorProfile, draft models.EmailDraft) (bool, string) {
	var success bool
	var message string

	if p.sender == nil {
		message = "email sender is not configured"
		p.logger.Warn("Send attempted without configured SMTP sender")
	} else if investor.Email == "" {
		message = "investor email address is missing"
	} else if err := p.sender.Send(draft, investor.Email); err != nil {
		message = err.Error()
	} else {
		success = true
		message = "Email sent successfully"
	}

	entry := models.CommunicationLogEntry{
		Timestamp:    time.Now(),
		FounderName:  founder.Name,
		CompanyName:  founder.CompanyName,
		InvestorName: investor.Name,
		InvestorFirm: investor.Firm,
		Variant:      draft.Variant,
		Subject:      draft.Subject,
		Success:      success,
	}

	if err := p.logs.Append(entry); err != nil {
		p.logger.Error("Failed to log communication", zap.Error(err))
	}

	if p.history != nil {
		if err := p.history.SaveCommunication(&entry); err != nil {
			p.logger.Error("Failed to save communication history", zap.Error(err))
		}
	}

	return success, message
}
