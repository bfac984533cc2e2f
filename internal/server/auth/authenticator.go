package auth

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/gophposts/internal/common"
	"github.com/dmitrijs2005/gophposts/internal/logging"
	"github.com/dmitrijs2005/gophposts/internal/server/models"
)

// Authenticator turns an authorization header value into a principal.
type Authenticator struct {
	verifier *Verifier
	lookup   PrincipalLookup
	now      func() time.Time
	logger   logging.Logger
}

func NewAuthenticator(v *Verifier, lookup PrincipalLookup, now func() time.Time, l logging.Logger) *Authenticator {
	if now == nil {
		now = time.Now
	}
	return &Authenticator{
		verifier: v,
		lookup:   lookup,
		now:      now,
		logger:   l.With("module", "auth"),
	}
}

// Authenticate runs extraction, verification and resolution in order and stops
// at the first failure. Failures are logged and returned classified; none of
// them is fatal.
func (a *Authenticator) Authenticate(ctx context.Context, headerValue string) (*models.User, error) {
	raw, ok := ExtractRaw(headerValue)
	if !ok {
		a.logger.Warn(ctx, "request rejected", "reason", "missing_token")
		return nil, common.ErrMissingToken
	}

	subject, err := a.verifier.Verify(raw, a.now())
	if err != nil {
		reason := "unknown"
		var verr *VerifyError
		if errors.As(err, &verr) {
			reason = verr.Code()
		}
		a.logger.Warn(ctx, "token rejected", "reason", reason, "error", err.Error())
		return nil, err
	}

	user, err := Resolve(ctx, subject, a.lookup)
	if err != nil {
		if errors.Is(err, common.ErrPrincipalNotFound) {
			a.logger.Warn(ctx, "token rejected", "reason", "unknown_principal", "subject", subject)
		} else {
			a.logger.Error(ctx, "principal lookup failed", "subject", subject, "error", err.Error())
		}
		return nil, err
	}

	return user, nil
}
