package service

import "errors"

var (
	// ErrSessionExpired means no usable token is held: either the user
	// never signed in, or a silent refresh was rejected by the provider.
	ErrSessionExpired = errors.New("session expired")

	// ErrSignInInFlight means an interactive sign-in is already waiting
	// for the user to finish the consent flow.
	ErrSignInInFlight = errors.New("sign-in already in progress")

	// ErrSyncNotConfigured means no OAuth client identity was supplied, so
	// the installation cannot link an account at all.
	ErrSyncNotConfigured = errors.New("sync is not configured")

	// ErrNotConnected means sync was requested while no account is linked.
	ErrNotConnected = errors.New("no account connected")

	// ErrSnapshotDecodeFailed means a downloaded snapshot file could not be
	// parsed and the local dataset was left untouched.
	ErrSnapshotDecodeFailed = errors.New("downloaded snapshot cannot be decoded")
)
