package bookingapi

import (
	"context"

	"github.com/cinetick/cinetick/pkg/apiclient"
)

// Login authenticates with the backend and returns the user identity and
// bearer token. Invalid credentials surface as an error from the pipeline;
// the session store is only updated by the caller on success.
func (c *Client) Login(ctx context.Context, creds Credentials) (UserInfo, error) {
	return apiclient.Post[UserInfo](ctx, c.api, "/login", creds)
}
