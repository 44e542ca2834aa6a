package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/kitchenhub/internal/adapter"
	"github.com/MKhiriev/kitchenhub/internal/app"
)

func TestClassifySyncError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "sync not configured",
			err:  ErrSyncNotConfigured,
			want: app.MsgSyncNotConfigured,
		},
		{
			name: "not connected",
			err:  ErrNotConnected,
			want: app.MsgNotConnected,
		},
		{
			name: "session expired",
			err:  ErrSessionExpired,
			want: app.MsgSessionExpired,
		},
		{
			name: "unauthorized from remote",
			err:  fmt.Errorf("upload recipes.json: %w", adapter.ErrUnauthorized),
			want: app.MsgSessionExpired,
		},
		{
			name: "permission denied",
			err:  adapter.ErrPermissionDenied,
			want: app.MsgPermissionDenied,
		},
		{
			name: "folder not found",
			err:  adapter.ErrNotFound,
			want: app.MsgRemoteFolderNotFound,
		},
		{
			name: "wrapped network failure",
			err:  fmt.Errorf("upload mealplans.json: %w", adapter.ErrNetwork),
			want: app.MsgNetworkError,
		},
		{
			// серверная ошибка не маскируется под проблему со связью
			name: "remote 500 passes through verbatim",
			err:  &adapter.RemoteError{Status: 500, Body: "backend exploded"},
			want: "remote store error: http 500: backend exploded",
		},
		{
			name: "unknown error passes through verbatim",
			err:  fmt.Errorf("snapshot recipes: disk full"),
			want: "snapshot recipes: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifySyncError(tt.err))
		})
	}
}
