package domain

type NotificationMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type ShiftAssignedMailData struct {
	FullName     string `json:"fullName"`
	LocationName string `json:"locationName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

type ShiftMovedMailData struct {
	FullName     string `json:"fullName"`
	LocationName string `json:"locationName"`
	OldDate      string `json:"oldDate"`
	NewDate      string `json:"newDate"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

type ShiftCancelledMailData struct {
	FullName     string `json:"fullName"`
	LocationName string `json:"locationName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}
