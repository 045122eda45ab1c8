package models

import "time"

// EmailVariant is the closed set of outreach email styles.
type EmailVariant string

const (
	VariantBusiness EmailVariant = "business"
	VariantPersonal EmailVariant = "personal"
	VariantMetrics  EmailVariant = "metrics"
	VariantVision   EmailVariant = "vision"
	VariantCustom   EmailVariant = "custom"
)

// StandardVariants are generated on every call, in this order.
var StandardVariants = []EmailVariant{
	VariantBusiness,
	VariantPersonal,
	VariantMetrics,
	VariantVision,
}

// VariantInstructions maps each standard variant to its prompt instruction.
var VariantInstructions = map[EmailVariant]string{
	VariantBusiness: "Generate a direct, business-focused email highlighting metrics and market opportunity.",
	VariantPersonal: "Generate a personal email focusing on founder journey and vision alignment.",
	VariantMetrics:  "Generate a data-driven email emphasizing traction and growth metrics.",
	VariantVision:   "Generate a visionary email focusing on industry impact and future potential.",
}

// FounderProfile describes the founder on the email side of the system.
type FounderProfile struct {
	Name        string            `json:"name" binding:"required"`
	CompanyName string            `json:"company_name" binding:"required"`
	Industry    string            `json:"industry"`
	Stage       string            `json:"stage"`
	Pitch       string            `json:"pitch"`
	Metrics     map[string]string `json:"metrics"`
}

// InvestorProfile describes the target investor on the email side.
type InvestorProfile struct {
	Name            string   `json:"name" binding:"required"`
	Firm            string   `json:"firm"`
	InvestmentFocus []string `json:"investment_focus"`
	PreferredStages []string `json:"preferred_stages"`
	Email           string   `json:"email"`
}

// CustomInstruction carries the optional free-form instruction payload for
// the custom variant.
type CustomInstruction struct {
	Instruction string   `json:"instruction"`
	Tone        string   `json:"tone,omitempty"`
	FocusPoints []string `json:"focus_points,omitempty"`
	Template    string   `json:"template,omitempty"`
}

// EmailDraft is a generated email awaiting verification and sending.
type EmailDraft struct {
	Subject string       `json:"subject"`
	Body    string       `json:"body"`
	Variant EmailVariant `json:"variant"`
}

// CommunicationLogEntry records one send attempt. It is appended to the
// JSONL and CSV logs and saved to the history store; nothing ever updates
// or deletes it.
type CommunicationLogEntry struct {
	ID           int64        `json:"id,omitempty"`
	Timestamp    time.Time    `json:"timestamp"`
	FounderName  string       `json:"founder_name"`
	CompanyName  string       `json:"company_name"`
	InvestorName string       `json:"investor_name"`
	InvestorFirm string       `json:"investor_firm"`
	Variant      EmailVariant `json:"email_variant"`
	Subject      string       `json:"email_subject"`
	Success      bool         `json:"success"`
}
