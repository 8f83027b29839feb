package domain

type CtxKey string

const (
	KeyUserID      CtxKey = "UserID"
	KeyUserRole    CtxKey = "Role"
	KeyCurrentUser CtxKey = "CurrentUser"
)
