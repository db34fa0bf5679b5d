package handler

type ContextKey string

var (
	RoleCtxKey      ContextKey = "role"
	SubCtxKey       ContextKey = "sub"
	LocationCtx     ContextKey = "location"
	ShiftCtx        ContextKey = "shift"
	BulkTemplateCtx ContextKey = "bulkTemplate"
)
