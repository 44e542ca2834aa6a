package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/kitchenhub/internal/config"
	"github.com/MKhiriev/kitchenhub/internal/logger"
	"github.com/MKhiriev/kitchenhub/internal/utils"
	"github.com/MKhiriev/kitchenhub/models"
)

const (
	folderMimeType = "application/vnd.google-apps.folder"
	jsonMimeType   = "application/json"

	multipartBoundary = "kitchenhub_boundary"
)

type driveRemoteStore struct {
	api    *utils.HTTPClient
	upload *utils.HTTPClient

	logger *logger.Logger
}

// NewDriveRemoteStore constructs a Drive-style REST implementation of
// [RemoteStore]. Two base URLs are configured because the provider serves
// metadata/search and raw content upload from different hosts.
//
// Returns an error if either base URL is empty.
func NewDriveRemoteStore(cfg config.ClientRemote, log *logger.Logger) (RemoteStore, error) {
	if strings.TrimSpace(cfg.APIBaseURL) == "" || strings.TrimSpace(cfg.UploadBaseURL) == "" {
		return nil, fmt.Errorf("remote store base URLs are not configured")
	}

	api := utils.NewHTTPClient()
	api.
		SetBaseURL(strings.TrimRight(cfg.APIBaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	upload := utils.NewHTTPClient()
	upload.
		SetBaseURL(strings.TrimRight(cfg.UploadBaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &driveRemoteStore{api: api, upload: upload, logger: log}, nil
}

func (d *driveRemoteStore) FindOrCreateFolder(ctx context.Context, token, name string) (string, error) {
	query := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false",
		escapeQueryTerm(name), folderMimeType)

	files, err := d.search(ctx, token, query)
	if err != nil {
		return "", fmt.Errorf("find folder %q: %w", name, err)
	}
	if len(files) > 0 {
		return files[0].ID, nil
	}

	resp, err := d.authedRequest(ctx, d.api, token).
		SetHeader("Content-Type", jsonMimeType).
		SetBody(map[string]any{"name": name, "mimeType": folderMimeType}).
		Post("/files")
	if err != nil {
		return "", fmt.Errorf("create folder %q: %w", name, wrapTransportError(err))
	}
	if err = mapRemoteError(resp); err != nil {
		return "", fmt.Errorf("create folder %q: %w", name, err)
	}

	var created models.RemoteFile
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return "", fmt.Errorf("decode create folder response: %w", err)
	}

	return created.ID, nil
}

func (d *driveRemoteStore) FindFile(ctx context.Context, token, folderID, name string) (*models.RemoteFile, error) {
	query := fmt.Sprintf("name = '%s' and '%s' in parents and trashed = false",
		escapeQueryTerm(name), folderID)

	files, err := d.search(ctx, token, query)
	if err != nil {
		return nil, fmt.Errorf("find file %q: %w", name, err)
	}
	if len(files) == 0 {
		return nil, nil
	}

	file := files[0]
	return &file, nil
}

func (d *driveRemoteStore) UploadFile(ctx context.Context, token, folderID, name string, payload []byte) (*models.RemoteFile, error) {
	meta, err := json.Marshal(map[string]any{
		"name":     name,
		"mimeType": jsonMimeType,
		"parents":  []string{folderID},
	})
	if err != nil {
		return nil, fmt.Errorf("encode upload metadata: %w", err)
	}

	resp, err := d.authedRequest(ctx, d.upload, token).
		SetHeader("Content-Type", "multipart/related; boundary="+multipartBoundary).
		SetQueryParams(map[string]string{"uploadType": "multipart", "fields": "id,name"}).
		SetBody(buildMultipartBody(meta, payload)).
		Post("/files")
	if err != nil {
		return nil, fmt.Errorf("upload file %q: %w", name, wrapTransportError(err))
	}
	if err = mapRemoteError(resp); err != nil {
		return nil, fmt.Errorf("upload file %q: %w", name, err)
	}

	var created models.RemoteFile
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}

	return &created, nil
}

func (d *driveRemoteStore) UpdateFile(ctx context.Context, token, fileID string, payload []byte) error {
	resp, err := d.authedRequest(ctx, d.upload, token).
		SetHeader("Content-Type", jsonMimeType).
		SetQueryParam("uploadType", "media").
		SetBody(payload).
		Patch("/files/" + fileID)
	if err != nil {
		return fmt.Errorf("update file %s: %w", fileID, wrapTransportError(err))
	}

	if err = mapRemoteError(resp); err != nil {
		return fmt.Errorf("update file %s: %w", fileID, err)
	}
	return nil
}

func (d *driveRemoteStore) DownloadFile(ctx context.Context, token, fileID string) ([]byte, error) {
	resp, err := d.authedRequest(ctx, d.api, token).
		SetQueryParam("alt", "media").
		Get("/files/" + fileID)
	if err != nil {
		return nil, fmt.Errorf("download file %s: %w", fileID, wrapTransportError(err))
	}
	if err = mapRemoteError(resp); err != nil {
		return nil, fmt.Errorf("download file %s: %w", fileID, err)
	}

	return resp.Body(), nil
}

// search runs a files.list query and decodes the result page. A single page
// is enough: tracked file names are unique within the account folder.
func (d *driveRemoteStore) search(ctx context.Context, token, query string) ([]models.RemoteFile, error) {
	resp, err := d.authedRequest(ctx, d.api, token).
		SetQueryParams(map[string]string{
			"q":      query,
			"fields": "files(id,name,modifiedTime)",
			"spaces": "drive",
		}).
		Get("/files")
	if err != nil {
		return nil, wrapTransportError(err)
	}
	if err = mapRemoteError(resp); err != nil {
		return nil, err
	}

	var result struct {
		Files []models.RemoteFile `json:"files"`
	}
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	return result.Files, nil
}

func (d *driveRemoteStore) authedRequest(ctx context.Context, client *utils.HTTPClient, token string) *resty.Request {
	req := client.R().SetContext(ctx)
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func buildMultipartBody(meta, payload []byte) string {
	var b strings.Builder
	b.WriteString("--" + multipartBoundary + "\r\n")
	b.WriteString("Content-Type: " + jsonMimeType + "; charset=UTF-8\r\n\r\n")
	b.Write(meta)
	b.WriteString("\r\n--" + multipartBoundary + "\r\n")
	b.WriteString("Content-Type: " + jsonMimeType + "\r\n\r\n")
	b.Write(payload)
	b.WriteString("\r\n--" + multipartBoundary + "--")
	return b.String()
}

// escapeQueryTerm escapes the characters the search query grammar treats
// specially inside single-quoted terms.
func escapeQueryTerm(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

func mapRemoteError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	switch code {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrPermissionDenied
	case http.StatusNotFound:
		return ErrNotFound
	}

	return &RemoteError{Status: code, Body: strings.TrimSpace(string(resp.Body()))}
}

func wrapTransportError(err error) error {
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}
