package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/kitchenhub/internal/logger"
	"github.com/MKhiriev/kitchenhub/models"
)

// scriptedProber возвращает заранее заданную последовательность ответов,
// после её исчерпания — последний ответ.
type scriptedProber struct {
	mu      sync.Mutex
	answers []bool
	pos     int
}

func (p *scriptedProber) Reachable() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pos < len(p.answers)-1 {
		p.pos++
		return p.answers[p.pos-1]
	}
	return p.answers[len(p.answers)-1]
}

type countingTrigger struct {
	mu   sync.Mutex
	hits int
}

func (t *countingTrigger) TriggerSync() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hits++
}

func (t *countingTrigger) count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hits
}

type memSettingsRepo struct {
	settings models.Settings
}

func (r *memSettingsRepo) Load(context.Context) (models.Settings, error) { return r.settings, nil }
func (r *memSettingsRepo) Save(_ context.Context, s models.Settings) error {
	r.settings = s
	return nil
}

func connectedSettings() models.Settings {
	s := models.DefaultSettings()
	s.AccountConnected = true
	return s
}

func waitForCount(t *testing.T, trigger *countingTrigger, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if trigger.count() >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("trigger count did not reach %d, got %d", want, trigger.count())
}

func TestConnectivityWatcher_TriggersOnReconnect(t *testing.T) {
	prober := &scriptedProber{answers: []bool{false, false, true}}
	trigger := &countingTrigger{}
	watcher := NewConnectivityWatcher(prober, trigger,
		&memSettingsRepo{settings: connectedSettings()}, 10*time.Millisecond, logger.Nop())

	watcher.Run()
	defer watcher.Stop()

	waitForCount(t, trigger, 1)
}

func TestConnectivityWatcher_NoTriggerWhileStable(t *testing.T) {
	prober := &scriptedProber{answers: []bool{true}}
	trigger := &countingTrigger{}
	watcher := NewConnectivityWatcher(prober, trigger,
		&memSettingsRepo{settings: connectedSettings()}, 10*time.Millisecond, logger.Nop())

	watcher.Run()
	time.Sleep(60 * time.Millisecond)
	watcher.Stop()

	// стабильный онлайн — переходов нет
	assert.Equal(t, 0, trigger.count())
}

func TestConnectivityWatcher_StartingOfflineIsNotATransition(t *testing.T) {
	prober := &scriptedProber{answers: []bool{false}}
	trigger := &countingTrigger{}
	watcher := NewConnectivityWatcher(prober, trigger,
		&memSettingsRepo{settings: connectedSettings()}, 10*time.Millisecond, logger.Nop())

	watcher.Run()
	time.Sleep(60 * time.Millisecond)
	watcher.Stop()

	assert.Equal(t, 0, trigger.count())
}

func TestConnectivityWatcher_AutoSyncDisabled(t *testing.T) {
	settings := connectedSettings()
	settings.AutoSync = false
	prober := &scriptedProber{answers: []bool{false, true}}
	trigger := &countingTrigger{}
	watcher := NewConnectivityWatcher(prober, trigger,
		&memSettingsRepo{settings: settings}, 10*time.Millisecond, logger.Nop())

	watcher.Run()
	time.Sleep(60 * time.Millisecond)
	watcher.Stop()

	assert.Equal(t, 0, trigger.count())
}

func TestConnectivityWatcher_NotConnected(t *testing.T) {
	prober := &scriptedProber{answers: []bool{false, true}}
	trigger := &countingTrigger{}
	watcher := NewConnectivityWatcher(prober, trigger,
		&memSettingsRepo{settings: models.DefaultSettings()}, 10*time.Millisecond, logger.Nop())

	watcher.Run()
	time.Sleep(60 * time.Millisecond)
	watcher.Stop()

	assert.Equal(t, 0, trigger.count())
}

func TestWorkers_RunAndStopAll(t *testing.T) {
	w1 := &recordingWorker{}
	w2 := &recordingWorker{}

	ws := NewWorkers(w1, w2)
	ws.Run()
	ws.Stop()

	assert.Equal(t, 1, w1.runs)
	assert.Equal(t, 1, w2.runs)
	assert.Equal(t, 1, w1.stops)
	assert.Equal(t, 1, w2.stops)
}

type recordingWorker struct {
	runs  int
	stops int
}

func (w *recordingWorker) Run()  { w.runs++ }
func (w *recordingWorker) Stop() { w.stops++ }
