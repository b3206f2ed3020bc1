package models

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTrainer Role = "trainer"
	RoleMember  Role = "member"
)

type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "pending"
	StatusConfirmed ApplicationStatus = "confirmed"
	StatusRejected  ApplicationStatus = "rejected"
)

func ValidStatus(s ApplicationStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected:
		return true
	}
	return false
}

// Pagination is the one envelope every list endpoint uses.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"totalCount"`
	HasMore    bool  `json:"hasMore"`
}

type PagedData struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}
