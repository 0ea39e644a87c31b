package application

// authorize permits a mutation only when the caller owns the target entity.
// Callers are authenticated upstream; this is a pure ownership check with no
// side effects.
func authorize(ownerID, callerID string) error {
	if ownerID != callerID {
		return ErrNotOwner
	}
	return nil
}
