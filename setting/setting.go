package setting

// Google OAuth scopes requested during sign-in. Offline access plus
// these two is everything the analytics flow needs.
var Scopes = []string{
	"https://www.googleapis.com/auth/drive.readonly",
	"https://www.googleapis.com/auth/userinfo.email",
}

const (
	// GoogleIssuer is the OIDC issuer used to verify ID tokens.
	GoogleIssuer string = "https://accounts.google.com"

	// GoogleRevokeURL is where access/refresh tokens get revoked.
	GoogleRevokeURL string = "https://oauth2.googleapis.com/revoke"
)

const (
	// ListPageSize caps the Drive listing at a single page.
	ListPageSize int64 = 25

	// ListQuery selects files the user owns or can write to.
	ListQuery string = "'me' in owners or 'me' in writers"

	// ListFields is the field mask for the Drive listing call.
	ListFields string = "nextPageToken, files(id, name, mimeType, size, webViewLink, permissions, ownedByMe, createdTime, modifiedTime, fileExtension, shared, owners)"
)

// LargeFileBytes is the size threshold (10 MiB) above which a file
// picks up an extra risk bonus.
const LargeFileBytes int64 = 10485760
