package events

import "time"

const PeriodProcessedTopic = "payroll.period.processed.v1"

type PeriodProcessedEvent struct {
	EventType         string    `json:"event_type"`
	PeriodID          string    `json:"period_id"`
	CompanyID         string    `json:"company_id"`
	Succeeded         int       `json:"succeeded"`
	FailedEmployeeIDs []string  `json:"failed_employee_ids,omitempty"`
	OccurredAt        time.Time `json:"occurred_at"`
}
