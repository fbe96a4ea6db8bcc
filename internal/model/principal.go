package model

// Principal is the authenticated shop owner resolved by the external
// identity provider. Its ID is the tenant key for every customer query.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
