package service

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/kitchenhub/models"
)

// Хенд-мейд стабы вместо кодогенерации: сценарии маленькие, так проще
// управлять порядком вызовов.

// ── remote store stub ────────────────────────────────────────────────────────

type remoteCall struct {
	op   string // "findFolder", "find", "upload", "update", "download"
	name string
}

type stubRemoteStore struct {
	mu    sync.Mutex
	calls []remoteCall

	folderID  string
	folderErr error

	// files maps file name -> handle; absent names yield nil (not found)
	files   map[string]*models.RemoteFile
	findErr error

	// contents maps file ID -> payload returned by DownloadFile
	contents    map[string][]byte
	downloadErr error

	// uploadErr fails uploads; with failOnName set, only the named file
	uploadErr  error
	failOnName string

	updateErr error

	// uploaded and updated record payloads by file name / file ID
	uploaded map[string][]byte
	updated  map[string][]byte
}

func newStubRemoteStore() *stubRemoteStore {
	return &stubRemoteStore{
		folderID: "folder-1",
		files:    map[string]*models.RemoteFile{},
		contents: map[string][]byte{},
		uploaded: map[string][]byte{},
		updated:  map[string][]byte{},
	}
}

func (s *stubRemoteStore) record(op, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, remoteCall{op: op, name: name})
}

func (s *stubRemoteStore) callOps() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ops := make([]string, 0, len(s.calls))
	for _, c := range s.calls {
		ops = append(ops, c.op+":"+c.name)
	}
	return ops
}

func (s *stubRemoteStore) FindOrCreateFolder(_ context.Context, _, name string) (string, error) {
	s.record("findFolder", name)
	return s.folderID, s.folderErr
}

func (s *stubRemoteStore) FindFile(_ context.Context, _, _, name string) (*models.RemoteFile, error) {
	s.record("find", name)
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.files[name], nil
}

func (s *stubRemoteStore) UploadFile(_ context.Context, _, _, name string, payload []byte) (*models.RemoteFile, error) {
	s.record("upload", name)
	if s.uploadErr != nil && (s.failOnName == "" || s.failOnName == name) {
		return nil, s.uploadErr
	}
	s.mu.Lock()
	s.uploaded[name] = payload
	s.mu.Unlock()
	return &models.RemoteFile{ID: "id-" + name, Name: name}, nil
}

func (s *stubRemoteStore) UpdateFile(_ context.Context, _, fileID string, payload []byte) error {
	s.record("update", fileID)
	if s.updateErr != nil {
		return s.updateErr
	}
	s.mu.Lock()
	s.updated[fileID] = payload
	s.mu.Unlock()
	return nil
}

func (s *stubRemoteStore) DownloadFile(_ context.Context, _, fileID string) ([]byte, error) {
	s.record("download", fileID)
	if s.downloadErr != nil {
		return nil, s.downloadErr
	}
	return s.contents[fileID], nil
}

// ── auth provider stub ───────────────────────────────────────────────────────

type stubAuthProvider struct {
	mu sync.Mutex

	authorizeToken models.ProviderToken
	authorizeErr   error
	authorizeCalls int

	refreshToken models.ProviderToken
	refreshErr   error
	refreshCalls int

	revokeErr    error
	revokeCalls  int
	revokedToken string
}

func (p *stubAuthProvider) Authorize(context.Context) (models.ProviderToken, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.authorizeCalls++
	return p.authorizeToken, p.authorizeErr
}

func (p *stubAuthProvider) Refresh(_ context.Context, _ string) (models.ProviderToken, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.refreshCalls++
	return p.refreshToken, p.refreshErr
}

func (p *stubAuthProvider) Revoke(_ context.Context, accessToken string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.revokeCalls++
	p.revokedToken = accessToken
	return p.revokeErr
}

// ── token service stub ───────────────────────────────────────────────────────

type stubTokenService struct {
	accessToken string
	ensureErr   error
	configured  bool
	signInToken models.Token
	signInErr   error
	signOutHits int
}

func (t *stubTokenService) SignIn(context.Context) (models.Token, error) {
	return t.signInToken, t.signInErr
}

func (t *stubTokenService) EnsureToken(context.Context) (string, error) {
	return t.accessToken, t.ensureErr
}

func (t *stubTokenService) CurrentToken() *models.Token { return nil }

func (t *stubTokenService) SignOut(context.Context) { t.signOutHits++ }

func (t *stubTokenService) Configured() bool { return t.configured }

// ── snapshot service stub ────────────────────────────────────────────────────

type stubSnapshotService struct {
	mu sync.Mutex

	exports   map[models.Dataset][]byte
	exportErr error

	imported  map[models.Dataset][]byte
	importErr error
}

func newStubSnapshotService() *stubSnapshotService {
	return &stubSnapshotService{
		exports: map[models.Dataset][]byte{
			models.DatasetRecipes:   []byte(`[{"id":"r1"}]`),
			models.DatasetMealPlans: []byte(`[]`),
			models.DatasetShopping:  []byte(`[]`),
		},
		imported: map[models.Dataset][]byte{},
	}
}

func (s *stubSnapshotService) Export(_ context.Context, dataset models.Dataset) ([]byte, error) {
	if s.exportErr != nil {
		return nil, s.exportErr
	}
	return s.exports[dataset], nil
}

func (s *stubSnapshotService) Import(_ context.Context, dataset models.Dataset, payload []byte) error {
	if s.importErr != nil {
		return s.importErr
	}
	s.mu.Lock()
	s.imported[dataset] = payload
	s.mu.Unlock()
	return nil
}

// ── settings repository stub ─────────────────────────────────────────────────

type memSettingsRepo struct {
	mu       sync.Mutex
	settings models.Settings
	loadErr  error
	saveErr  error
	saves    int
}

func newMemSettingsRepo(settings models.Settings) *memSettingsRepo {
	return &memSettingsRepo{settings: settings}
}

func (r *memSettingsRepo) Load(context.Context) (models.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return models.Settings{}, r.loadErr
	}
	return r.settings, nil
}

func (r *memSettingsRepo) Save(_ context.Context, settings models.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.settings = settings
	r.saves++
	return nil
}

func (r *memSettingsRepo) current() models.Settings {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.settings
}

// ── change tracker / notifier stubs ──────────────────────────────────────────

type stubTracker struct {
	mu     sync.Mutex
	dirty  bool
	clears int
}

func (t *stubTracker) Dirty() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dirty
}

func (t *stubTracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dirty = false
	t.clears++
}

type stubNotifier struct {
	mu   sync.Mutex
	hits int
}

func (n *stubNotifier) DataChanged() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.hits++
}

func (n *stubNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.hits
}

// ── scriptable sync service stub (for session tests) ─────────────────────────

type stubSyncService struct {
	mu      sync.Mutex
	calls   int
	result  SyncResult
	err     error
	started chan struct{}
	release chan struct{}
}

func (s *stubSyncService) RunSync(_ context.Context, _ ChangeTracker) (SyncResult, error) {
	s.mu.Lock()
	s.calls++
	started := s.started
	release := s.release
	s.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if release != nil {
		<-release
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.err
}

func (s *stubSyncService) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

var errStub = errors.New("stub failure")
