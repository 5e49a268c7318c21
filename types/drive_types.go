package types

// FileOwner mirrors the owner info returned by the Drive listing.
type FileOwner struct {
	DisplayName  string `json:"displayName,omitempty"`
	EmailAddress string `json:"emailAddress,omitempty"`
}

type FilePermission struct {
	ID           string `json:"id,omitempty"`
	Type         string `json:"type,omitempty"`
	Role         string `json:"role,omitempty"`
	EmailAddress string `json:"emailAddress,omitempty"`
}

// FileMetadata is one file from the Drive listing. RiskScore is not a
// Drive field, it gets attached in place by the risk analyzer.
type FileMetadata struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	MimeType      string           `json:"mimeType"`
	Size          int64            `json:"size"`
	WebViewLink   string           `json:"webViewLink,omitempty"`
	Permissions   []FilePermission `json:"permissions,omitempty"`
	OwnedByMe     bool             `json:"ownedByMe"`
	CreatedTime   string           `json:"createdTime,omitempty"`
	ModifiedTime  string           `json:"modifiedTime,omitempty"`
	FileExtension string           `json:"fileExtension,omitempty"`
	Shared        bool             `json:"shared"`
	Owners        []FileOwner      `json:"owners,omitempty"`
	RiskScore     float64          `json:"riskscore"`
}

type StorageQuota struct {
	Usage int64 `json:"usage"`
	Limit int64 `json:"limit"`
}

type AnalyticsResult struct {
	TotalUsage  int64           `json:"totalUsage"`
	Limit       int64           `json:"limit"`
	Files       []*FileMetadata `json:"files"`
	RiskCounter float64         `json:"riskCounter"`
}
