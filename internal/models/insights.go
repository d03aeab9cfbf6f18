package models

// SourceStats summarizes one application source: how many applications went
// through it, how they are distributed across statuses, and the share that
// were rejected. SuccessRate is the complement of RejectionRate for source
// grouping.
type SourceStats struct {
	Source        string                    `json:"source"`
	Total         int                       `json:"total"`
	StatusCounts  map[ApplicationStatus]int `json:"status_counts"`
	RejectionRate int                       `json:"rejection_rate"`
	SuccessRate   int                       `json:"success_rate"`
}

// VersionStats summarizes one resume version. Its SuccessRate is computed
// independently as (interview + offer) / total, NOT as 100 - RejectionRate;
// the two formulas are not required to be consistent.
type VersionStats struct {
	Version       string                    `json:"version"`
	Total         int                       `json:"total"`
	StatusCounts  map[ApplicationStatus]int `json:"status_counts"`
	SuccessRate   int                       `json:"success_rate"`
	InterviewRate int                       `json:"interview_rate"`
	OfferRate     int                       `json:"offer_rate"`
	RejectionRate int                       `json:"rejection_rate"`
}

type SourceRejectionReport struct {
	Insights         []SourceStats `json:"insights"`
	HighestRejection *SourceStats  `json:"highest_rejection,omitempty"`
	LowestRejection  *SourceStats  `json:"lowest_rejection,omitempty"`
	Narrative        string        `json:"narrative"`
}

type ResumePerformanceReport struct {
	Versions  []VersionStats `json:"versions"`
	Best      *VersionStats  `json:"best,omitempty"`
	Worst     *VersionStats  `json:"worst,omitempty"`
	Narrative string         `json:"narrative"`
}

// ResponseTimeReport carries the average days from application to the current
// status, for terminal statuses only. Averages holds an entry only for
// statuses with at least one qualifying record; it may be empty.
type ResponseTimeReport struct {
	Averages  map[ApplicationStatus]int `json:"averages"`
	Fastest   ApplicationStatus         `json:"fastest,omitempty"`
	Slowest   ApplicationStatus         `json:"slowest,omitempty"`
	Narrative string                    `json:"narrative"`
}

type DetailedReports struct {
	SourceRejection   *SourceRejectionReport   `json:"source_rejection"`
	ResumePerformance *ResumePerformanceReport `json:"resume_performance"`
	ResponseTime      *ResponseTimeReport      `json:"response_time"`
}

// ComprehensiveReport is the full insights bundle: the three sub-reports plus
// the composite narrative that stitches their findings together.
type ComprehensiveReport struct {
	Narrative string          `json:"narrative"`
	Detailed  DetailedReports `json:"detailed"`
}
