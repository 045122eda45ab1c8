package email

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sasank-sasi/Vertx/internal/comlog"
	"github.com/sasank-sasi/Vertx/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPipelineGeneratePairsVerification(t *testing.T) {
	client := completerFunc(func(ctx context.Context, req models.CompletionRequest) (string, error) {
		return "Subject: Intro\n\nBody: Dear Priya, " + strings.Repeat("traction. ", 15) +
			"Would love to connect.\n\nBest regards,\nAsha", nil
	})
	p := NewPipeline(NewGenerator(client, zap.NewNop()), nil, comlog.NewWriter(t.TempDir(), zap.NewNop()), nil, zap.NewNop())

	drafts := p.Generate(context.Background(), testFounder(), testInvestor(), nil)
	require.Len(t, drafts, len(models.StandardVariants))

	for _, d := range drafts {
		assert.Equal(t, "Intro", d.Subject)
		assert.True(t, d.Verification["has_greeting"])
		assert.True(t, d.Verification["has_signature"])
		assert.True(t, d.Verification["has_call_to_action"])
	}
}

func TestPipelineSendWithoutSenderStillLogs(t *testing.T) {
	dir := t.TempDir()
	p := NewPipeline(nil, nil, comlog.NewWriter(dir, zap.NewNop()), nil, zap.NewNop())

	sent, message := p.Send(testFounder(), testInvestor(), models.EmailDraft{
		Subject: "Intro",
		Variant: models.VariantBusiness,
	})

	assert.False(t, sent)
	assert.Contains(t, message, "not configured")

	// The attempt is logged even though nothing was sent.
	raw, err := os.ReadFile(filepath.Join(dir, "email_logs.csv"))
	require.NoError(t, err)
	data := string(raw)
	assert.Contains(t, data, "HealthBridge")
	assert.Contains(t, data, "business")
	assert.Contains(t, data, "false")
}
