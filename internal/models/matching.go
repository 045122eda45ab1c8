package models

import "errors"

// ErrNoMatches is returned when a matching sweep produces no candidates,
// either because the pre-filter eliminated everyone or because nobody
// cleared the score threshold.
var ErrNoMatches = errors.New("no matches found")

// FounderInput is the request body shared by both matching endpoints.
type FounderInput struct {
	CompanyName string `json:"company_name" binding:"required"`
	Industry    string `json:"industry" binding:"required"`
	Verticals   string `json:"verticals"`
	Description string `json:"description"`
}

// FounderRecord is one row of the founders dataset.
type FounderRecord struct {
	CompanyName   string `csv:"company_name"`
	Industry      string `csv:"industry"`
	Verticals     string `csv:"verticals"`
	Stage         string `csv:"stage"`
	Country       string `csv:"country"`
	BusinessModel string `csv:"business_model"`
	Description   string `csv:"description"`
}

// InvestorRecord is one row of the investors dataset.
type InvestorRecord struct {
	CompanyName  string `csv:"company_name"`
	InvestorType string `csv:"investor_type"`
	Location     string `csv:"location"`
	Industries   string `csv:"industries"`
	Description  string `csv:"description"`
}

// FounderMatch is a scored founder-to-founder result.
type FounderMatch struct {
	MatchedCompany string  `json:"matched_company"`
	MatchScore     float64 `json:"match_score"`
	Industry       string  `json:"industry"`
	Verticals      string  `json:"verticals"`
	Explanation    string  `json:"explanation"`
}

// InvestorMatch is a scored founder-to-investor result. SimilarityScore is
// the TF-IDF cosine similarity in [0,1]; GroqScore is the LLM compatibility
// score in [0,100].
type InvestorMatch struct {
	CompanyName     string  `json:"company_name"`
	InvestorType    string  `json:"investor_type"`
	Location        string  `json:"location"`
	Industries      string  `json:"industries"`
	SimilarityScore float64 `json:"similarity_score"`
	GroqScore       float64 `json:"groq_score"`
	Explanation     string  `json:"explanation"`
}
