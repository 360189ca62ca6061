package oauth

import (
	"context"
	"strconv"

	"github.com/alcyxob/fitness-ai/internal/domain"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/idtoken"
)

const (
	msgGoogleTokenRequired = "Google ID token is required"
	msgGoogleNotConfigured = "Google login is not configured"
	msgGoogleTokenInvalid  = "Invalid Google ID token"
)

type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// GoogleVerifier checks Google ID tokens issued for our client id.
type GoogleVerifier struct {
	clientID string
	validate validateFunc
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{
		clientID: clientID,
		validate: idtoken.Validate,
	}
}

func (v *GoogleVerifier) Verify(ctx context.Context, idToken string) (domain.ExternalIdentity, error) {
	if idToken == "" {
		return domain.ExternalIdentity{}, domain.Validation(msgGoogleTokenRequired)
	}
	if v.clientID == "" {
		return domain.ExternalIdentity{}, domain.Validation(msgGoogleNotConfigured)
	}

	payload, err := v.validate(ctx, idToken, v.clientID)
	if err != nil {
		log.Warnf("google id token rejected: %s", err)
		return domain.ExternalIdentity{}, domain.Unauthorized(msgGoogleTokenInvalid)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" || !emailVerified(payload.Claims["email_verified"]) {
		return domain.ExternalIdentity{}, domain.Unauthorized(msgGoogleTokenInvalid)
	}

	return domain.ExternalIdentity{
		Provider:   domain.ProviderGoogle,
		ExternalID: payload.Subject,
		Email:      email,
	}, nil
}

// emailVerified accepts both the boolean and the string form Google has used.
func emailVerified(claim any) bool {
	switch v := claim.(type) {
	case bool:
		return v
	case string:
		ok, _ := strconv.ParseBool(v)
		return ok
	default:
		return false
	}
}
