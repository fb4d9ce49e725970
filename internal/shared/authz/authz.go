package authz

// Permission names carried in the actor's permission set.
const (
	PermissionAdmin      = "admin"
	PermissionLabelOwner = "label_owner"
)

// Actor is the resolved caller of a use case. A nil *Actor is an anonymous visitor.
type Actor struct {
	UserID      string
	Permissions map[string]struct{}
}

// NewActor builds an actor from a flat permission list.
func NewActor(userID string, permissions ...string) *Actor {
	set := make(map[string]struct{}, len(permissions))
	for _, p := range permissions {
		set[p] = struct{}{}
	}
	return &Actor{UserID: userID, Permissions: set}
}

// Has reports whether the actor holds the permission. Safe on a nil actor.
func (a *Actor) Has(permission string) bool {
	if a == nil {
		return false
	}
	_, ok := a.Permissions[permission]
	return ok
}

// PermissionList returns the permission set as a slice, for token claims and logs.
func (a *Actor) PermissionList() []string {
	if a == nil {
		return nil
	}
	out := make([]string, 0, len(a.Permissions))
	for p := range a.Permissions {
		out = append(out, p)
	}
	return out
}

// Authorizer decides whether an actor holds a permission.
type Authorizer interface {
	ActorHasPermission(actor *Actor, permission string) bool
}

// PermissionChecker is the default Authorizer: a pure lookup in the actor's permission set.
type PermissionChecker struct{}

func (PermissionChecker) ActorHasPermission(actor *Actor, permission string) bool {
	return actor.Has(permission)
}

// HasAll reports whether the actor holds every listed permission.
func HasAll(az Authorizer, actor *Actor, permissions ...string) bool {
	if actor == nil {
		return false
	}
	for _, p := range permissions {
		if !az.ActorHasPermission(actor, p) {
			return false
		}
	}
	return true
}

// CanManageCatalog is the gate for every mutating catalog use case.
func CanManageCatalog(az Authorizer, actor *Actor) bool {
	return HasAll(az, actor, PermissionAdmin, PermissionLabelOwner)
}

// IsPrivilegedViewer reports whether the actor sees hidden and deleted entities.
func IsPrivilegedViewer(az Authorizer, actor *Actor) bool {
	return az.ActorHasPermission(actor, PermissionLabelOwner)
}
