// Package models contains data models for the clinic front-desk service.
package models

import "time"

// Patient priorities. Emergency entries are served before Normal ones
// regardless of arrival order.
const (
	PriorityNormal    = "Normal"
	PriorityEmergency = "Emergency"
)

// Patient statuses. Waiting is the initial state; Visited is terminal.
const (
	StatusWaiting = "Waiting"
	StatusVisited = "Visited"
)

// ArrivalTimeFormat is the storage layout for Patient.ArrivalTime: ISO-8601
// with second precision in UTC. Lexicographic order on the stored string
// matches chronological order, which the queue ordering relies on.
const ArrivalTimeFormat = "2006-01-02T15:04:05Z"

// Patient represents one queue entry at the front desk.
type Patient struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Problem     string `json:"problem" gorm:"not null"`
	Priority    string `json:"priority" gorm:"not null;default:Normal"`
	ArrivalTime string `json:"arrival_time" gorm:"not null"`
	Status      string `json:"status" gorm:"not null;default:Waiting;index"`
}

// TableName returns the database table name for the Patient model.
func (Patient) TableName() string {
	return "patients"
}

// FormatArrivalTime renders t as a storable arrival time, truncating
// fractional seconds.
func FormatArrivalTime(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(ArrivalTimeFormat)
}
