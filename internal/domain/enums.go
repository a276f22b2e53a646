package domain

type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "low"
	UrgencyNormal   UrgencyLevel = "normal"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyCritical UrgencyLevel = "critical"
)

type ScoreGrade string

const (
	GradeRest      ScoreGrade = "rest"
	GradeLight     ScoreGrade = "light"
	GradeOkay      ScoreGrade = "okay"
	GradeGood      ScoreGrade = "good"
	GradeExcellent ScoreGrade = "excellent"
)

type HealthStatus string

const (
	HealthEmpty          HealthStatus = "empty"
	HealthStruggling     HealthStatus = "struggling"
	HealthNeedsAttention HealthStatus = "needs_attention"
	HealthHealthy        HealthStatus = "healthy"
	HealthThriving       HealthStatus = "thriving"
)
