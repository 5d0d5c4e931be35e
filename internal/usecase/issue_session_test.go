package usecase

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"motoshop/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestIssueSession_PassesClaimThrough(t *testing.T) {
	issuer := &mockIssuer{token: "signed-token"}
	uc := NewIssueSession(issuer, slog.Default())

	claims := domain.Claims{"email": "a@x.com", "name": "Rider"}
	token, err := uc.Execute(context.Background(), claims)

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.True(t, issuer.called)
	assert.Equal(t, claims, issuer.claims)
}

func TestIssueSession_SigningFailure(t *testing.T) {
	issuer := &mockIssuer{err: domain.ErrTokenGeneration}
	uc := NewIssueSession(issuer, slog.Default())

	_, err := uc.Execute(context.Background(), domain.Claims{"email": "a@x.com"})
	assert.True(t, errors.Is(err, domain.ErrTokenGeneration))
}
