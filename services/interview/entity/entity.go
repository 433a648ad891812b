package entity

import "time"

type Status string

const (
	StatusReceived      Status = "received"
	StatusScored        Status = "scored"
	StatusScoringFailed Status = "scoring_failed"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

type RetentionRisk string

const (
	RiskLow    RetentionRisk = "Low"
	RiskMedium RetentionRisk = "Medium"
	RiskHigh   RetentionRisk = "High"
)

func (r RetentionRisk) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// Satisfaction score bounds. Values outside are rejected, never clamped.
const (
	MinSatisfactionScore = 1.0
	MaxSatisfactionScore = 5.0
)

// Submission is one normalized transcript webhook delivery. Immutable after
// validation except for the status transitions received -> scored and
// received -> scoring_failed.
type Submission struct {
	ID               string
	ConversationID   string
	AgentID          string
	EmployeeID       string
	Transcript       string
	TranscriptLength int
	DurationSeconds  int
	AudioURL         string
	OrganizationID   string
	Status           Status
	ReceivedAt       time.Time
}

// Analysis is the scoring outcome for one submission. Written once.
type Analysis struct {
	ID                string
	SubmissionID      string
	SatisfactionScore float64
	Sentiment         Sentiment
	RetentionRisk     RetentionRisk
	Summary           string
	ModelUsed         string
	CreatedAt         time.Time
}

type IngestRequest struct {
	ConversationID  string
	AgentID         string
	Transcript      string
	EmployeeID      string
	DurationSeconds int
	AudioURL        string
	OrganizationID  string
}

type IngestResponse struct {
	AckID  string
	Status Status
}

type Preview struct {
	ID                string
	ConversationID    string
	EmployeeID        string
	TranscriptPreview string
	Status            Status
	ReceivedAt        time.Time
	Analysis          *Analysis
}

type ListRequest struct {
	OrganizationID string
	Offset         int
	Limit          int
}

type ListResponse struct {
	Interviews []*Preview
	Total      int
}

type DashboardStats struct {
	TotalInterviews int
	Scored          int
	ScoringFailed   int
	AvgSatisfaction float64
	SentimentCounts map[Sentiment]int
	RiskCounts      map[RetentionRisk]int
}
