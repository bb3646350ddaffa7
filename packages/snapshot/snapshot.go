// Package snapshot provides snapshot assertions for Go tests.
//
// The first run with UPDATE_SNAPSHOTS=1 records the asserted value
// under __snapshots__/<test>.snap.json; later runs fail when the value
// drifts from the recorded one, with a diff of the change.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abdul-hamid-achik/verity/packages/verify"
	"github.com/google/go-cmp/cmp"
)

const (
	// SnapshotDir is the directory name for storing snapshots.
	SnapshotDir = "__snapshots__"
	// SnapshotExt is the file extension for snapshot files.
	SnapshotExt = ".snap.json"
	// UpdateEnv enables update mode when set to "1".
	UpdateEnv = "UPDATE_SNAPSHOTS"
)

// NamedTest identifies the running test. *testing.T satisfies it; the
// full name (including subtests) keys the stored snapshot.
type NamedTest interface {
	Name() string
}

// Manager handles snapshot storage and comparison.
type Manager struct {
	dir    string
	update bool
	cache  map[string]map[string]any // file -> {test name -> value}
}

// Option configures a Manager.
type Option func(*Manager)

// WithDir overrides the snapshot directory.
func WithDir(dir string) Option {
	return func(m *Manager) {
		m.dir = dir
	}
}

// WithUpdate overrides update mode, normally taken from UPDATE_SNAPSHOTS.
func WithUpdate(update bool) Option {
	return func(m *Manager) {
		m.update = update
	}
}

// NewManager creates a snapshot manager rooted at __snapshots__ in the
// current directory, in update mode when UPDATE_SNAPSHOTS=1.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		dir:    SnapshotDir,
		update: os.Getenv(UpdateEnv) == "1",
		cache:  make(map[string]map[string]any),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Matches compares actual against the snapshot stored for t. A missing
// snapshot or a mismatch fails through v's strategy, unless update
// mode records the new value instead.
func (m *Manager) Matches(v *verify.Verifier, t NamedTest, actual any) {
	name := t.Name()
	file := m.snapshotFile(name)

	snapshots, err := m.load(file)
	if err != nil {
		m.fail(v, actual, fmt.Sprintf("failed to load snapshots: %v", err))
		return
	}

	normalized, err := normalize(actual)
	if err != nil {
		m.fail(v, actual, fmt.Sprintf("value is not JSON-serializable: %v", err))
		return
	}

	expected, exists := snapshots[name]
	if !exists {
		if !m.update {
			m.fail(v, actual,
				fmt.Sprintf("snapshot %q does not exist (set %s=1 to create)", name, UpdateEnv))
			return
		}
		snapshots[name] = normalized
		if err := m.save(file, snapshots); err != nil {
			m.fail(v, actual, fmt.Sprintf("failed to save snapshot: %v", err))
		}
		return
	}

	if cmp.Equal(expected, normalized) {
		return
	}

	if m.update {
		snapshots[name] = normalized
		if err := m.save(file, snapshots); err != nil {
			m.fail(v, actual, fmt.Sprintf("failed to update snapshot: %v", err))
		}
		return
	}

	m.fail(v, actual,
		fmt.Sprintf("snapshot %q mismatch (-recorded +actual):\n%s", name, cmp.Diff(expected, normalized)))
}

func (m *Manager) fail(v *verify.Verifier, actual any, message string) {
	v.Strategy().Fail(&verify.Failure{
		Check:   "matches snapshot",
		Actual:  actual,
		Message: message,
	})
}

// snapshotFile groups subtests with their parent: TestFoo/bar is
// stored in TestFoo.snap.json under the full subtest name.
func (m *Manager) snapshotFile(testName string) string {
	base := testName
	if i := strings.IndexByte(base, '/'); i >= 0 {
		base = base[:i]
	}
	return filepath.Join(m.dir, base+SnapshotExt)
}

func (m *Manager) load(path string) (map[string]any, error) {
	if cached, ok := m.cache[path]; ok {
		return cached, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			snapshots := make(map[string]any)
			m.cache[path] = snapshots
			return snapshots, nil
		}
		return nil, err
	}

	var snapshots map[string]any
	if err := json.Unmarshal(data, &snapshots); err != nil {
		return nil, err
	}

	m.cache[path] = snapshots
	return snapshots, nil
}

func (m *Manager) save(path string, snapshots map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshots, "", "  ")
	if err != nil {
		return err
	}

	m.cache[path] = snapshots
	return os.WriteFile(path, data, 0644)
}

// normalize round-trips a value through JSON so stored and live values
// compare with the same types (all numbers as float64, maps keyed by
// string).
func normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

var defaultManager = NewManager()

// Matches compares actual against the snapshot stored for t using the
// default manager.
func Matches(v *verify.Verifier, t NamedTest, actual any) {
	defaultManager.Matches(v, t, actual)
}
