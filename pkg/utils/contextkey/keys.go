package contextkey

// key is a private type to avoid context key collisions across packages.
type key string

const (
	Document key = "document"
	CodeFile key = "code_file"
	Backend  key = "backend"
)
