package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// AuthClient wraps the Firebase Admin SDK. Identity management itself stays
// with Firebase; this service only verifies tokens and reads profile basics.
type AuthClient struct {
	client *auth.Client
}

func NewAuthClient(client *auth.Client) *AuthClient {
	return &AuthClient{
		client: client,
	}
}

func (f *AuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

func (f *AuthClient) GetEmail(ctx context.Context, uid string) (string, error) {
	user, err := f.client.GetUser(ctx, uid)
	if err != nil {
		return "", err
	}

	return user.Email, nil
}
