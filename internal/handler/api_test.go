package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sasank-sasi/Vertx/internal/comlog"
	"github.com/sasank-sasi/Vertx/internal/email"
	"github.com/sasank-sasi/Vertx/internal/matching"
	"github.com/sasank-sasi/Vertx/internal/models"
	"github.com/sasank-sasi/Vertx/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type completerFunc func(ctx context.Context, req models.CompletionRequest) (string, error)

func (f completerFunc) Complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	return f(ctx, req)
}

const foundersCSV = `company_name,industry,verticals,stage,country,business_model,description
HealthBridge,HealthTech,"Telemedicine, AI Diagnostics",Series A,India,B2C,Telemedicine platform for rural patients.
PayFlow,FinTech,"Payments, SME Banking",Seed,Singapore,B2B,Payment orchestration for small merchants.
`

const investorsCSV = `company_name,investor_type,location,industries,description
MedVentures,VC,Boston,HealthTech BioTech,Healthcare specialist fund.
Retail Forward,VC,New York,Retail E-commerce,Consumer retail fund.
`

func newTestRouter(t *testing.T, respond completerFunc) (*gin.Engine, *repository.CommunicationRepository) {
	t.Helper()

	dir := t.TempDir()
	foundersPath := filepath.Join(dir, "founders.csv")
	investorsPath := filepath.Join(dir, "investors.csv")
	require.NoError(t, os.WriteFile(foundersPath, []byte(foundersCSV), 0644))
	require.NoError(t, os.WriteFile(investorsPath, []byte(investorsCSV), 0644))

	logger := zap.NewNop()
	scorer := matching.NewScorer(respond, logger)
	founderMatcher := matching.NewFounderMatcher(scorer, logger, 0, "")
	investorMatcher := matching.NewInvestorMatcher(scorer, logger, "")

	history, err := repository.NewCommunicationRepository(filepath.Join(dir, "test.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { history.Close() })

	pipeline := email.NewPipeline(
		email.NewGenerator(respond, logger),
		nil,
		comlog.NewWriter(filepath.Join(dir, "logs"), logger),
		history,
		logger,
	)

	h := NewHandler(founderMatcher, investorMatcher, pipeline, history, foundersPath, investorsPath, logger)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h.RegisterRoutes(router)
	return router, history
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHomeAndHealth(t *testing.T) {
	router, _ := newTestRouter(t, func(ctx context.Context, req models.CompletionRequest) (string, error) {
		return "80|fine", nil
	})

	w := doJSON(router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome to the Founder Matching API")

	w = doJSON(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestMatchFounders(t *testing.T) {
	router, _ := newTestRouter(t, func(ctx context.Context, req models.CompletionRequest) (string, error) {
		return "85|Strong overlap in telemedicine", nil
	})

	w := doJSON(router, http.MethodPost, "/match/founder-to-founder", models.FounderInput{
		CompanyName: "CareLoop",
		Industry:    "HealthTech",
		Verticals:   "AI Diagnostics, Remote Care",
		Description: "AI triage for clinics",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var matches []models.FounderMatch
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &matches))
	require.Len(t, matches, 1)
	assert.Equal(t, "HealthBridge", matches[0].MatchedCompany)
	assert.Equal(t, float64(85), matches[0].MatchScore)
}

func TestMatchFoundersNoMatches(t *testing.T) {
	router, _ := newTestRouter(t, func(ctx context.Context, req models.CompletionRequest) (string, error) {
		return "85|irrelevant", nil
	})

	w := doJSON(router, http.MethodPost, "/match/founder-to-founder", models.FounderInput{
		CompanyName: "AgriCo",
		Industry:    "AgriTech",
		Verticals:   "Drones",
		Description: "Crop monitoring",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No matches found")
}

func TestMatchFoundersBadRequest(t *testing.T) {
	router, _ := newTestRouter(t, func(ctx context.Context, req models.CompletionRequest) (string, error) {
		return "85|fine", nil
	})

	req := httptest.NewRequest(http.MethodPost, "/match/founder-to-founder", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMatchInvestors(t *testing.T) {
	router, _ := newTestRouter(t, func(ctx context.Context, req models.CompletionRequest) (string, error) {
		return "70|Industry aligned", nil
	})

	w := doJSON(router, http.MethodPost, "/match/founder-to-investor", models.FounderInput{
		CompanyName: "CareLoop",
		Industry:    "HealthTech",
		Verticals:   "AI Diagnostics",
		Description: "AI triage for clinics",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var matches []models.InvestorMatch
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &matches))
	require.Len(t, matches, 1)
	assert.Equal(t, "MedVentures", matches[0].CompanyName)
	assert.Equal(t, float64(70), matches[0].GroqScore)
	assert.GreaterOrEqual(t, matches[0].SimilarityScore, 0.0)
}

func TestMatchInvestorsNoIndustryOverlap(t *testing.T) {
	router, _ := newTestRouter(t, func(ctx context.Context, req models.CompletionRequest) (string, error) {
		return "70|irrelevant", nil
	})

	w := doJSON(router, http.MethodPost, "/match/founder-to-investor", models.FounderInput{
		CompanyName: "AgriCo",
		Industry:    "AgriTech",
		Verticals:   "Drones",
		Description: "Crop monitoring",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMatchFoundersDatasetMissing(t *testing.T) {
	logger := zap.NewNop()
	respond := completerFunc(func(ctx context.Context, req models.CompletionRequest) (string, error) {
		return "80|fine", nil
	})
	scorer := matching.NewScorer(respond, logger)
	h := NewHandler(
		matching.NewFounderMatcher(scorer, logger, 0, ""),
		matching.NewInvestorMatcher(scorer, logger, ""),
		nil, nil,
		filepath.Join(t.TempDir(), "missing.csv"),
		filepath.Join(t.TempDir(), "missing.csv"),
		logger,
	)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h.RegisterRoutes(router)

	w := doJSON(router, http.MethodPost, "/match/founder-to-founder", models.FounderInput{
		CompanyName: "X", Industry: "HealthTech", Verticals: "AI", Description: "d",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Founders dataset not found")
}

func TestGenerateEmails(t *testing.T) {
	router, _ := newTestRouter(t, func(ctx context.Context, req models.CompletionRequest) (string, error) {
		return "Subject: Intro\n\nBody: Dear Priya, would love to connect. Best regards, Asha", nil
	})

	w := doJSON(router, http.MethodPost, "/email/generate", GenerateEmailsRequest{
		Founder: models.FounderProfile{
			Name:        "Asha Rao",
			CompanyName: "HealthBridge",
			Industry:    "HealthTech",
			Stage:       "Series A",
			Pitch:       "Telemedicine for rural clinics",
		},
		Investor: models.InvestorProfile{
			Name:  "Priya Mehta",
			Firm:  "MedVentures",
			Email: "priya@medventures.example",
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Variants []email.Draft `json:"variants"`
		Total    int           `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, len(models.StandardVariants), resp.Total)
	for _, d := range resp.Variants {
		assert.Equal(t, "Intro", d.Subject)
		assert.NotNil(t, d.Verification)
	}
}

func TestSendEmailRecordsHistory(t *testing.T) {
	router, history := newTestRouter(t, func(ctx context.Context, req models.CompletionRequest) (string, error) {
		return "unused", nil
	})

	w := doJSON(router, http.MethodPost, "/email/send", SendEmailRequest{
		Founder: models.FounderProfile{
			Name:        "Asha Rao",
			CompanyName: "HealthBridge",
		},
		Investor: models.InvestorProfile{
			Name:  "Priya Mehta",
			Firm:  "MedVentures",
			Email: "priya@medventures.example",
		},
		Email: models.EmailDraft{
			Subject: "Intro",
			Body:    "Dear Priya...",
			Variant: models.VariantBusiness,
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	// No SMTP sender configured in tests, so the send fails but is recorded.
	var resp struct {
		Sent    bool   `json:"sent"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Sent)

	entries, err := history.GetAllCommunications()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "HealthBridge", entries[0].CompanyName)
	assert.False(t, entries[0].Success)
}

func TestGetCommunicationsAndStats(t *testing.T) {
	router, _ := newTestRouter(t, func(ctx context.Context, req models.CompletionRequest) (string, error) {
		return "unused", nil
	})

	doJSON(router, http.MethodPost, "/email/send", SendEmailRequest{
		Founder:  models.FounderProfile{Name: "Asha", CompanyName: "HealthBridge"},
		Investor: models.InvestorProfile{Name: "Priya", Firm: "MedVentures", Email: "p@x.example"},
		Email:    models.EmailDraft{Subject: "Intro", Body: "b", Variant: models.VariantVision},
	})

	w := doJSON(router, http.MethodGet, "/communications", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
	assert.Contains(t, w.Body.String(), "HealthBridge")

	w = doJSON(router, http.MethodGet, "/communications/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
	assert.Contains(t, w.Body.String(), "vision")
}
