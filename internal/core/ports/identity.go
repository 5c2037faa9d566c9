package ports

// Identity is the verified caller identity threaded through every
// consultant-scoped and admin-scoped operation. It is populated from the
// session token by the auth middleware and never from request payloads.
type Identity struct {
	UserID   int64
	Username string
	Role     string
	Active   bool
}
