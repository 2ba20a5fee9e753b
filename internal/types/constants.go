package types

// ContextUserKey is the gin context key holding the authenticated user.
const ContextUserKey = "user"
