package notification

type NotificationResponse struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	EmployeeID string `json:"employee_id"`
	Message    string `json:"message"`
	Read       bool   `json:"read"`
	CreatedAt  string `json:"created_at"`
}
