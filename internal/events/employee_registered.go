package events

import "time"

// Topik untuk mailer yang mengirim email aktivasi di luar proses ini.
const EmployeeRegisteredTopic = "hr.employee.registered.v1"

type EmployeeRegisteredEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id"`
	EmployeeID uint      `json:"employee_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}
