package usecase

import (
	"context"
	"log/slog"

	"motoshop/internal/domain"
)

// IssueSession mints a session token from an externally-authenticated
// identity claim. The claim is trusted as-is; authenticity is the caller's
// concern.
type IssueSession struct {
	issuer domain.TokenIssuer
	logger *slog.Logger
}

// NewIssueSession creates a new IssueSession usecase.
func NewIssueSession(issuer domain.TokenIssuer, logger *slog.Logger) *IssueSession {
	return &IssueSession{issuer: issuer, logger: logger}
}

// Execute signs the claim into a session token.
func (uc *IssueSession) Execute(ctx context.Context, claims domain.Claims) (string, error) {
	token, err := uc.issuer.Issue(claims)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to issue session token", "error", err)
		return "", err
	}
	return token, nil
}
