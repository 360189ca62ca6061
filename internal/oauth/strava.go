package oauth

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alcyxob/fitness-ai/internal/domain"

	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const (
	msgStravaCodeRequired  = "Strava authorization code is required"
	msgStravaNotConfigured = "Strava credentials not configured"
	msgStravaBadAthlete    = "Invalid athlete data from Strava"
)

var StravaEndpoint = oauth2.Endpoint{
	AuthURL:   "https://www.strava.com/oauth/authorize",
	TokenURL:  "https://www.strava.com/oauth/token",
	AuthStyle: oauth2.AuthStyleInParams,
}

// StravaExchanger trades an authorization code for the athlete behind it.
type StravaExchanger struct {
	config *oauth2.Config
}

func NewStravaExchanger(clientID, clientSecret string, endpoint oauth2.Endpoint) *StravaExchanger {
	return &StravaExchanger{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     endpoint,
		},
	}
}

type stravaAthlete struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	Email     string
}

func (e *StravaExchanger) Exchange(ctx context.Context, code string) (domain.ExternalIdentity, error) {
	if code == "" {
		return domain.ExternalIdentity{}, domain.Validation(msgStravaCodeRequired)
	}
	if e.config.ClientID == "" || e.config.ClientSecret == "" {
		return domain.ExternalIdentity{}, domain.Validation(msgStravaNotConfigured)
	}

	token, err := e.config.Exchange(ctx, code)
	if err != nil {
		log.Warnf("strava code exchange: %s", err)
		return domain.ExternalIdentity{}, domain.Validation(fmt.Sprintf("Strava API Error: %s", exchangeErrorMessage(err)))
	}

	athlete, ok := parseAthlete(token.Extra("athlete"))
	if !ok {
		return domain.ExternalIdentity{}, domain.Validation(msgStravaBadAthlete)
	}

	externalID := strconv.FormatInt(athlete.ID, 10)
	username := athlete.Username
	if username == "" {
		first, last := athlete.FirstName, athlete.LastName
		if first == "" {
			first = "User"
		}
		if last == "" {
			last = externalID
		}
		username = first + "_" + last
	}
	email := athlete.Email
	if email == "" {
		email = fmt.Sprintf("strava_%s@temp.com", externalID)
	}

	return domain.ExternalIdentity{
		Provider:    domain.ProviderStrava,
		ExternalID:  externalID,
		Email:       email,
		DisplayName: username,
	}, nil
}

func parseAthlete(raw any) (stravaAthlete, bool) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return stravaAthlete{}, false
	}
	id, ok := m["id"].(float64)
	if !ok || id <= 0 {
		return stravaAthlete{}, false
	}

	str := func(key string) string {
		s, _ := m[key].(string)
		return s
	}
	return stravaAthlete{
		ID:        int64(id),
		Username:  str("username"),
		FirstName: str("firstname"),
		LastName:  str("lastname"),
		Email:     str("email"),
	}, true
}

func exchangeErrorMessage(err error) string {
	if rErr, ok := err.(*oauth2.RetrieveError); ok {
		if rErr.ErrorDescription != "" {
			return rErr.ErrorDescription
		}
		if len(rErr.Body) > 0 {
			return string(rErr.Body)
		}
	}
	return err.Error()
}
