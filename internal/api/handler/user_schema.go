package handler

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// resultsResponse is the canonical success envelope: every endpoint answers
// with its payload wrapped in a results array.
type resultsResponse struct {
	Results []any `json:"results"`
}

func results(items ...any) resultsResponse {
	if items == nil {
		items = []any{}
	}
	return resultsResponse{Results: items}
}

// loggedUser decorates the user payload with the session token on login.
// The token lives only in this response object, never in the store.
type loggedUser struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
	MyGuitars any    `json:"myGuitars"`
	Token     string `json:"token"`
}
