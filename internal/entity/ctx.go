package entity

import (
	"context"
)

type CtxKey int

const (
	CtxKeyPrincipal CtxKey = iota
	CtxKeyToken
)

func CtxWithPrincipal(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, CtxKeyPrincipal, email)
}

// PrincipalFromCtx returns the verified principal email or ErrUnauthenticated
// if the request carried no valid credential.
func PrincipalFromCtx(ctx context.Context) (string, error) {
	email, ok := ctx.Value(CtxKeyPrincipal).(string)
	if !ok || email == "" {
		return "", ErrUnauthenticated
	}

	return email, nil
}

func CtxWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CtxKeyToken, token)
}

// TokenFromCtx returns the bearer token from context or empty string.
func TokenFromCtx(ctx context.Context) string {
	token, ok := ctx.Value(CtxKeyToken).(string)
	if !ok {
		return ""
	}

	return token
}
