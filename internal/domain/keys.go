package domain

type CtxKey string

const (
	KeyAccountID    CtxKey = "AccountID"
	KeyAccountEmail CtxKey = "Email"
	KeyAccountRole  CtxKey = "Role"
	KeyRequestID    CtxKey = "RequestID"
)
