package update

import (
	"github.com/sandeepkv93/dayboard/internal/state"
	"github.com/sandeepkv93/dayboard/internal/storage"
)

// apply installs next when err is nil and writes the dirty keys. It reports
// whether the state changed.
func (m *Model) apply(next state.State, keys []state.Key, err error) bool {
	if err != nil {
		m.fail(err)
		return false
	}
	m.State = next
	m.save(keys)
	m.refreshBoard()
	return len(keys) > 0
}

func (m *Model) save(keys []state.Key) {
	if m.store == nil || len(keys) == 0 {
		return
	}
	if err := storage.SaveKeys(m.ctx, m.store, m.State, keys); err != nil {
		m.logger.Error("persist state", "keys", keys, "err", err)
		m.fail(err)
		return
	}
	m.refreshLastSaved(keys[len(keys)-1])
}

// refreshLastSaved reads the store's timestamp for key into LastSaved.
func (m *Model) refreshLastSaved(key state.Key) {
	if m.store == nil {
		return
	}
	at, err := m.store.UpdatedAt(m.ctx, string(key))
	if err != nil {
		m.logger.Warn("read save time", "key", string(key), "err", err)
		return
	}
	if at != nil {
		m.LastSaved = at
	}
}

// clearStore wipes persisted data on log out.
func (m *Model) clearStore() {
	if m.store == nil {
		return
	}
	if err := m.store.Clear(m.ctx); err != nil {
		m.logger.Error("clear store", "err", err)
		m.fail(err)
		return
	}
	m.save([]state.Key{state.KeyTheme, state.KeyCurrentDate})
}

func (m *Model) fail(err error) {
	m.LastError = err
	m.Status = StatusBar{Text: err.Error(), IsError: true}
}
