// internal/models/assessment.go
package models

// ExperienceLevel buckets total career progression.
type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "entry"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelLead      ExperienceLevel = "lead"
	LevelExecutive ExperienceLevel = "executive"
)

// DemandLevel is the estimated market demand for a role.
type DemandLevel string

const (
	DemandLow    DemandLevel = "low"
	DemandMedium DemandLevel = "medium"
	DemandHigh   DemandLevel = "high"
)

// RecommendationPriority orders recommendations for display.
type RecommendationPriority string

const (
	PriorityHigh   RecommendationPriority = "high"
	PriorityMedium RecommendationPriority = "medium"
	PriorityLow    RecommendationPriority = "low"
)

// SalaryRange is an illustrative heuristic estimate, not live market data.
type SalaryRange struct {
	Min    int `json:"min"`
	Max    int `json:"max"`
	Median int `json:"median"`
}

// Recommendation is a single actionable suggestion attached to a market
// position estimate.
type Recommendation struct {
	Type     string                 `json:"type"`
	Priority RecommendationPriority `json:"priority"`
	Message  string                 `json:"message"`
}

// MarketPosition estimates how competitive a candidate is for their
// classified role.
type MarketPosition struct {
	Competitiveness float64          `json:"competitiveness"`
	SalaryRange     SalaryRange      `json:"salaryRange"`
	DemandLevel     DemandLevel      `json:"demandLevel"`
	Recommendations []Recommendation `json:"recommendations"`
}

// CareerAssessment is the composed output of the analysis chain. It is built
// once per analysis run and never mutated afterwards.
type CareerAssessment struct {
	CurrentRole     string          `json:"currentRole"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	Skills          []Skill         `json:"skills"`
	Strengths       []string        `json:"strengths"`
	Experience      ExperienceSummary `json:"experience"`
	Classification  RoleClassification `json:"classification"`
	MarketPosition  MarketPosition  `json:"marketPosition"`
	Confidence      float64         `json:"confidence"`
}
