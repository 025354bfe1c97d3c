package common

// Keys under which the client persists data in the local key-value store.
const (
	AuthTokenKey  = "auth_token"
	AuthUsersKey  = "auth_users"
	AuthTokensKey = "auth_tokens"
	TempLoginKey  = "temp_login_data"
)
