package sse

// ConnectedPayload is the first message sent on every stream
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Filters  []string `json:"filters,omitempty"`
	Username string   `json:"username,omitempty"`
}

// usernamePayload picks the owner out of any garden event payload
type usernamePayload struct {
	Username string `json:"username"`
}
