// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/kitchenhub/internal/adapter"
	"github.com/MKhiriev/kitchenhub/internal/app"
)

// classifySyncError translates a sync failure into the user-facing message
// shown in the status line. Failures outside the known classes keep their
// own message: a remote 500 is not a connectivity problem.
func classifySyncError(err error) string {
	switch {
	case errors.Is(err, ErrSyncNotConfigured):
		return app.MsgSyncNotConfigured

	case errors.Is(err, ErrNotConnected):
		return app.MsgNotConnected

	case errors.Is(err, ErrSessionExpired), errors.Is(err, adapter.ErrUnauthorized):
		return app.MsgSessionExpired

	case errors.Is(err, adapter.ErrPermissionDenied):
		return app.MsgPermissionDenied

	case errors.Is(err, adapter.ErrNotFound):
		return app.MsgRemoteFolderNotFound

	case errors.Is(err, adapter.ErrNetwork):
		return app.MsgNetworkError

	default:
		return err.Error()
	}
}
