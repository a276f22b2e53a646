package contract

// TaskCreate is the request body for POST /api/tasks. Zero-value fields get
// the documented defaults before validation.
type TaskCreate struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	EnergyCost       int    `json:"energy_cost"`
	ExpectedInterval int    `json:"expected_interval"`
	Importance       int    `json:"importance"`
	Category         string `json:"category"`
	Color            string `json:"color"`
	Icon             string `json:"icon"`
}

// TaskUpdate carries partial updates; nil fields stay untouched.
type TaskUpdate struct {
	Name             *string `json:"name"`
	Description      *string `json:"description"`
	EnergyCost       *int    `json:"energy_cost"`
	ExpectedInterval *int    `json:"expected_interval"`
	Importance       *int    `json:"importance"`
	Category         *string `json:"category"`
	Color            *string `json:"color"`
	Icon             *string `json:"icon"`
	IsActive         *bool   `json:"is_active"`
}

type TaskResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	EnergyCost       int    `json:"energy_cost"`
	ExpectedInterval int    `json:"expected_interval"`
	Importance       int    `json:"importance"`
	Category         string `json:"category"`
	Color            string `json:"color"`
	Icon             string `json:"icon"`
	IsActive         bool   `json:"is_active"`
	CreatedAt        string `json:"created_at"`
}

// CompleteTaskRequest is the optional body for POST /api/today/complete/{id}.
type CompleteTaskRequest struct {
	Note string `json:"note"`
	Mood *int   `json:"mood"`
}
