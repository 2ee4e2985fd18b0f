package testutil

import (
	"net/http"

	id "dsa-onboarding/pkg/domain"
	"dsa-onboarding/pkg/requestcontext"
)

// AsUser marks req as authenticated for userID, as RequireAuth would.
func AsUser(req *http.Request, userID id.UserID) *http.Request {
	return req.WithContext(requestcontext.WithUserID(req.Context(), userID))
}
