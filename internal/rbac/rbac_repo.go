package rbac

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetPolicies() ([]PolicyRow, error)
	GetRoleInheritance() ([]RoleInheritRow, error)
}

type staticRepository struct {
	policies []PolicyRow
	inherits []RoleInheritRow
}

// NewStaticRepository serves a fixed policy table. Signed-in roles inherit
// everything granted to the anonymous role.
func NewStaticRepository(policies []PolicyRow, roles ...string) Repository {
	inherits := make([]RoleInheritRow, 0, len(roles))
	for _, r := range roles {
		if r == RoleAnonymous {
			continue
		}
		inherits = append(inherits, RoleInheritRow{Role: r, Parent: RoleAnonymous})
	}
	return &staticRepository{
		policies: append([]PolicyRow(nil), policies...),
		inherits: inherits,
	}
}

func (r *staticRepository) GetPolicies() ([]PolicyRow, error) {
	return r.policies, nil
}

func (r *staticRepository) GetRoleInheritance() ([]RoleInheritRow, error) {
	return r.inherits, nil
}
