/*
Package api is a small client for the Roblox web APIs.

Each platform service lives on its own host (users.roblox.com,
games.roblox.com, ...). Client methods name the service and path; the
client builds the URL, attaches the .ROBLOSECURITY session cookie and
performs the x-csrf-token handshake that state-changing requests require.

# Basic Usage

	client := api.NewClient(cookie, api.WithTimeout(30*time.Second))

	user, err := client.AuthenticatedUser(ctx)
	if err != nil {
		return err
	}

	presence, err := client.Presence(ctx, user.ID)

# Errors

Failed responses are returned as *Error. Its Unwrap maps well-known status
codes onto the sentinels in the util package, so callers can use
errors.Is(err, util.ErrNotFound) without inspecting status codes. A 429 is
additionally wrapped in a *util.RetryableError carrying Retry-After.

# Pagination

Listing endpoints take a Page and return Cursors. Pass Cursors.Next back as
Page.Cursor to continue. Limits are rounded up to a size the services
accept (10, 25, 50 or 100).

# Testing

WithBaseURL routes every service to baseURL/<service>, which lets a single
httptest.Server stand in for all hosts.
*/
package api
