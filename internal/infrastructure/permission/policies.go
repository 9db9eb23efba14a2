package permission

import (
	"fmt"

	"github.com/phonefix-inc/phonefix/internal/shared/actor"
)

const (
	ResourceOrder     = "order"
	ResourceRepair    = "repair"
	ResourceWholesale = "wholesale"

	ActionRead   = "read"
	ActionUpdate = "update"
	ActionReview = "review"
)

// DefaultPolicies are the back-office rules. Admins inherit technician
// rights on top of their own.
var DefaultPolicies = [][]string{
	{actor.RoleTechnician.String(), ResourceRepair, ActionRead},
	{actor.RoleTechnician.String(), ResourceRepair, ActionUpdate},

	{actor.RoleAdmin.String(), ResourceOrder, "*"},
	{actor.RoleAdmin.String(), ResourceWholesale, ActionRead},
	{actor.RoleAdmin.String(), ResourceWholesale, ActionReview},
}

// InitDefaultPolicies writes the default rules, keeping any extra rules an
// operator added to casbin_rule.
func InitDefaultPolicies(e *Enforcer) error {
	for _, p := range DefaultPolicies {
		if err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p[0], p[1], p[2], err)
		}
	}

	if err := e.AddRoleInheritance(actor.RoleAdmin.String(), actor.RoleTechnician.String()); err != nil {
		return err
	}

	e.logger.Infow("default permissions initialized", "policies", len(DefaultPolicies))
	return nil
}
