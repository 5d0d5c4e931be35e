package domain

// Claims is the identity claim carried inside a session token. The issuer
// accepts it as-is from an externally-authenticated caller and never
// validates its origin.
type Claims map[string]any

// Email returns the user key field of the claim. The second return value is
// false when the field is absent or not a string; callers must treat that as
// a non-match (fail closed).
func (c Claims) Email() (string, bool) {
	email, ok := c["email"].(string)
	return email, ok
}
