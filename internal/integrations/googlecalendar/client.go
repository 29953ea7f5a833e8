package googlecalendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Scope минимально необходимый доступ - только события календаря
const Scope = "https://www.googleapis.com/auth/calendar.events"

// defaultTokenTTL срок действия access token, если Google не вернул expiry
const defaultTokenTTL = time.Hour

// Client клиент Google Calendar API.
// Без состояния между вызовами: учетные данные передаются параметром,
// авторизованный handle строится заново на каждый вызов - общий мутируемый
// OAuth-клиент на все запросы приводил к подмене чужих токенов под нагрузкой.
type Client struct {
	clientID     string
	clientSecret string
	redirectURL  string
	timeout      time.Duration
	log          Logger
}

// NewClient создает новый экземпляр клиента Google Calendar
func NewClient(clientID, clientSecret, redirectURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURL:  redirectURL,
		timeout:      timeout,
		log:          log,
	}
}

// oauthConfig возвращает свежую OAuth-конфигурацию на один вызов
func (c *Client) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
		RedirectURL:  c.redirectURL,
		Scopes:       []string{Scope},
		Endpoint:     google.Endpoint,
	}
}

// AuthURL возвращает URL авторизации Google
// access_type=offline и prompt=consent заставляют Google выдать refresh token
func (c *Client) AuthURL(state string) string {
	return c.oauthConfig().AuthCodeURL(
		state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// ExchangeCode обменивает authorization code на пару токенов
func (c *Client) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	tok, err := c.oauthConfig().Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenExchange, err)
	}

	scope, _ := tok.Extra("scope").(string)
	return &Token{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		Scope:        scope,
		ExpiresAt:    expiryOrDefault(tok.Expiry),
	}, nil
}

// RefreshToken получает новый access token по refresh token
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*Token, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	source := c.oauthConfig().TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	tok, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenRefresh, err)
	}

	return &Token{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
		ExpiresAt:   expiryOrDefault(tok.Expiry),
	}, nil
}

// CreateEvent создает событие в указанном календаре от имени владельца accessToken
func (c *Client) CreateEvent(ctx context.Context, accessToken, calendarID string, input *EventInput) (*EventResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	svc, err := calendar.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return nil, fmt.Errorf("%w: build service: %v", ErrInternal, err)
	}

	event := &calendar.Event{
		Summary:     input.Summary,
		Description: input.Description,
		Start: &calendar.EventDateTime{
			DateTime: input.StartLocal,
			TimeZone: input.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: input.EndLocal,
			TimeZone: input.TimeZone,
		},
		Reminders: &calendar.EventReminders{
			UseDefault:      true,
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := svc.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEventCreate, err)
	}

	c.log.Info("Created calendar event id=%s status=%s", created.Id, created.Status)

	status := created.Status
	if status == "" {
		status = "confirmed"
	}
	return &EventResult{
		EventID: created.Id,
		Status:  status,
	}, nil
}

func expiryOrDefault(expiry time.Time) time.Time {
	if expiry.IsZero() {
		return time.Now().Add(defaultTokenTTL)
	}
	return expiry
}
