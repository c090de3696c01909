// Package domain holds the authorization types shared by the middleware and
// the rbac package without either importing the other.
package domain

const RoleAdmin = "admin"

type EnforceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Role       string `json:"role"`
	Resource   string `json:"resource" binding:"required"`
	Action     string `json:"action" binding:"required"`
}

// IsAdmin reports whether the request carries the admin role, which sees
// everything.
func (r EnforceRequest) IsAdmin() bool {
	return r.Role == RoleAdmin
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type CapabilitiesResponse struct {
	EmployeeID   string   `json:"employee_id"`
	Role         string   `json:"role"`
	Admin        bool     `json:"admin"`
	Capabilities []string `json:"capabilities"`
}
