package client

import (
	"context"
	"net/http"

	"propmart/internal/domain/entity"
	"propmart/internal/transport"
)

// Auth performs login/register against the backend. It is not a resource
// slice: credentials flow through it once and the issued token is handed
// to the transport; token persistence is the embedder's concern.
type Auth struct {
	t transport.Client
}

func newAuth(t transport.Client) *Auth {
	return &Auth{t: t}
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput is the signup payload.
type RegisterInput struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     entity.Role `json:"role"`
	Agency   string      `json:"agency,omitempty"`
}

// Session is the issued token plus the authenticated account.
type Session struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

// Login exchanges credentials for a session and, when the transport
// carries tokens, attaches the issued token to subsequent requests.
func (a *Auth) Login(ctx context.Context, creds Credentials) (Session, error) {
	var sess Session
	err := a.t.Do(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   creds,
	}, &sess)
	if err != nil {
		return Session{}, err
	}

	if carrier, ok := a.t.(transport.TokenCarrier); ok {
		carrier.SetToken(sess.Token)
	}

	return sess, nil
}

// Register creates an account and logs it in.
func (a *Auth) Register(ctx context.Context, input RegisterInput) (Session, error) {
	var sess Session
	err := a.t.Do(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Body:   input,
	}, &sess)
	if err != nil {
		return Session{}, err
	}

	if carrier, ok := a.t.(transport.TokenCarrier); ok {
		carrier.SetToken(sess.Token)
	}

	return sess, nil
}
