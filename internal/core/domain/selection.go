package domain

// Selection is the cascading domain → subdomain → scope choice as a value
// object. A zero ID means "unselected". Changing a parent always clears its
// descendants, so a stale child selection can never outlive a parent change.
type Selection struct {
	DomainID    int64 `json:"domain_id"`
	SubdomainID int64 `json:"subdomain_id"`
	ScopeID     int64 `json:"scope_id"`
}

// SelectDomain returns the selection after choosing domain id. Re-selecting
// the current domain is a no-op; anything else resets subdomain and scope.
func (s Selection) SelectDomain(id int64) Selection {
	if id == s.DomainID {
		return s
	}
	return Selection{DomainID: id}
}

// SelectSubdomain returns the selection after choosing subdomain id.
// A changed subdomain resets the scope.
func (s Selection) SelectSubdomain(id int64) Selection {
	if id == s.SubdomainID {
		return s
	}
	return Selection{DomainID: s.DomainID, SubdomainID: id}
}

// SelectScope returns the selection after choosing scope id.
func (s Selection) SelectScope(id int64) Selection {
	s.ScopeID = id
	return s
}

// Complete reports whether all three levels have been chosen.
func (s Selection) Complete() bool {
	return s.DomainID != 0 && s.SubdomainID != 0 && s.ScopeID != 0
}
