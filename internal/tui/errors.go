// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/kitchenhub/internal/adapter"
	"github.com/MKhiriev/kitchenhub/internal/app"
	"github.com/MKhiriev/kitchenhub/internal/service"
)

func humanizeRemoteError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrSyncNotConfigured):
		return app.MsgSyncNotConfigured
	case errors.Is(err, service.ErrSignInInFlight):
		return "Вход уже выполняется, завершите его в браузере"
	case errors.Is(err, service.ErrSessionExpired), errors.Is(err, adapter.ErrUnauthorized):
		return app.MsgSessionExpired
	case errors.Is(err, adapter.ErrNetwork):
		return app.MsgNetworkError
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgNetworkError
	}

	return err.Error()
}
