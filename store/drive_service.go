package store

import (
	"context"
	"net/http"

	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/setting"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/types"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/util"
	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GoogleDriveService talks to the Drive API. It holds no state, the
// underlying client is built per call from the caller's access token.
type GoogleDriveService struct{}

func NewGoogleDriveService() *GoogleDriveService {
	return &GoogleDriveService{}
}

func makeDriveService(ctx context.Context, accessToken string) (*drive.Service, error) {
	token := &oauth2.Token{
		AccessToken: accessToken,
	}
	ts := oauth2.StaticTokenSource(token)
	client := oauth2.NewClient(ctx, ts)

	srv, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, err
	}

	return srv, nil
}

// ListFiles fetches the first page of files the user owns or can write
// to, with the metadata the risk analyzer needs.
func (s *GoogleDriveService) ListFiles(ctx context.Context, accessToken string) ([]*types.FileMetadata, error) {
	srv, err := makeDriveService(ctx, accessToken)
	if err != nil {
		return nil, util.NewAppError(
			http.StatusInternalServerError,
			"failed to initialize the GDrive service",
			"GoogleDriveService, ListFiles() error: ",
			err,
		)
	}

	r, err := srv.Files.List().
		PageSize(setting.ListPageSize).
		Q(setting.ListQuery).
		Fields(googleapi.Field(setting.ListFields)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, util.NewAppError(
			http.StatusInternalServerError,
			"failed to list the drive files",
			"GoogleDriveService, ListFiles() error: ",
			err,
		)
	}

	files := make([]*types.FileMetadata, 0, len(r.Files))
	for _, f := range r.Files {
		files = append(files, toFileMetadata(f))
	}

	return files, nil
}

// GetQuota fetches the storage usage and limit of the user's drive.
func (s *GoogleDriveService) GetQuota(ctx context.Context, accessToken string) (*types.StorageQuota, error) {
	srv, err := makeDriveService(ctx, accessToken)
	if err != nil {
		return nil, util.NewAppError(
			http.StatusInternalServerError,
			"failed to initialize the GDrive service",
			"GoogleDriveService, GetQuota() error: ",
			err,
		)
	}

	about, err := srv.About.Get().
		Fields("storageQuota").
		Context(ctx).
		Do()
	if err != nil {
		return nil, util.NewAppError(
			http.StatusInternalServerError,
			"failed to get the storage quota",
			"GoogleDriveService, GetQuota() error: ",
			err,
		)
	}

	return &types.StorageQuota{
		Usage: about.StorageQuota.Usage,
		Limit: about.StorageQuota.Limit,
	}, nil
}

func toFileMetadata(f *drive.File) *types.FileMetadata {
	meta := &types.FileMetadata{
		ID:            f.Id,
		Name:          f.Name,
		MimeType:      f.MimeType,
		Size:          f.Size,
		WebViewLink:   f.WebViewLink,
		OwnedByMe:     f.OwnedByMe,
		CreatedTime:   f.CreatedTime,
		ModifiedTime:  f.ModifiedTime,
		FileExtension: f.FileExtension,
		Shared:        f.Shared,
	}

	for _, o := range f.Owners {
		meta.Owners = append(meta.Owners, types.FileOwner{
			DisplayName:  o.DisplayName,
			EmailAddress: o.EmailAddress,
		})
	}
	for _, p := range f.Permissions {
		meta.Permissions = append(meta.Permissions, types.FilePermission{
			ID:           p.Id,
			Type:         p.Type,
			Role:         p.Role,
			EmailAddress: p.EmailAddress,
		})
	}

	return meta
}
