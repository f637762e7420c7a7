package rbac

const (
	ActionView    = "view"
	RoleAnonymous = "anonymous"
)

type EnforceRequest struct {
	Role     string `json:"-"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

// PolicyRow grants role the action on resource. Resource may be a route
// pattern such as /employee/:id.
type PolicyRow struct {
	Role     string
	Resource string
	Action   string
}

type RoleInheritRow struct {
	Role   string
	Parent string
}
