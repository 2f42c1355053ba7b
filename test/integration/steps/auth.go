package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
)

const defaultTestPassword = "password123"

// registerAuthSteps registers authentication helper steps. They drive the
// real /api/auth endpoints so scenarios exercise the same token flow as
// production clients.
func registerAuthSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a registered user "([^"]*)" with password "([^"]*)"$`, aRegisteredUserWithPassword)
	ctx.Step(`^I am authenticated$`, iAmAuthenticated)
	ctx.Step(`^I am authenticated as "([^"]*)"$`, iAmAuthenticatedAs)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
}

// signUp registers an account through the API. If the email is already
// taken the existing account is kept.
func (tc *TestContext) signUp(email, password string) error {
	username := strings.SplitN(email, "@", 2)[0]

	payload := map[string]string{
		"username":  username,
		"email":     email,
		"password":  password,
		"firstName": "Test",
		"lastName":  "User",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if err := tc.doRequest(http.MethodPost, "/api/auth/register", string(body)); err != nil {
		return err
	}

	switch tc.response.StatusCode {
	case http.StatusCreated:
		return nil
	case http.StatusBadRequest:
		// Already registered by an earlier step in the scenario.
		return nil
	default:
		return fmt.Errorf("failed to register %s: status %d, body %s", email, tc.response.StatusCode, string(tc.responseBody))
	}
}

// signIn logs the account in and captures the bearer token for
// subsequent requests.
func (tc *TestContext) signIn(email, password string) error {
	payload := map[string]string{
		"login":    email,
		"password": password,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if err := tc.doRequest(http.MethodPost, "/api/auth/login", string(body)); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to log in %s: status %d, body %s", email, tc.response.StatusCode, string(tc.responseBody))
	}

	var auth struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(tc.responseBody, &auth); err != nil {
		return fmt.Errorf("failed to parse login response: %w", err)
	}
	if auth.Token == "" {
		return fmt.Errorf("login response for %s carried no token", email)
	}

	tc.accessToken = auth.Token
	return nil
}

func aRegisteredUserWithPassword(ctx context.Context, email, password string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	// Register without adopting the new account's token.
	previousToken := tc.accessToken
	tc.accessToken = ""
	err := tc.signUp(email, password)
	tc.accessToken = previousToken
	if err != nil {
		return ctx, err
	}

	return SetTestContext(ctx, tc), nil
}

func iAmAuthenticated(ctx context.Context) (context.Context, error) {
	return iAmAuthenticatedAs(ctx, "user@example.com")
}

func iAmAuthenticatedAs(ctx context.Context, email string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	tc.accessToken = ""
	if err := tc.signUp(email, defaultTestPassword); err != nil {
		return ctx, err
	}
	if err := tc.signIn(email, defaultTestPassword); err != nil {
		return ctx, err
	}

	return SetTestContext(ctx, tc), nil
}

func iAmNotAuthenticated(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.accessToken = ""
	return SetTestContext(ctx, tc), nil
}
