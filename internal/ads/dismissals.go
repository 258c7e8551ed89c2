package ads

import (
	"sync"

	"storefront/internal/models"
)

// DismissalStore remembers which popups a visitor has closed.
type DismissalStore interface {
	Has(key string) bool
	Set(key string)
}

// MemoryDismissals is a DismissalStore safe for concurrent use. It keeps at
// most capacity keys and forgets the oldest ones first.
type MemoryDismissals struct {
	mu       sync.RWMutex
	capacity int
	keys     map[string]struct{}
	order    []string
}

const defaultDismissalCapacity = 10000

func NewMemoryDismissals(capacity int) *MemoryDismissals {
	if capacity < 1 {
		capacity = defaultDismissalCapacity
	}
	return &MemoryDismissals{capacity: capacity, keys: make(map[string]struct{})}
}

func (m *MemoryDismissals) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.keys[key]
	return ok
}

func (m *MemoryDismissals) Set(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.keys[key]; ok {
		return
	}
	for len(m.order) >= m.capacity {
		delete(m.keys, m.order[0])
		m.order = m.order[1:]
	}
	m.keys[key] = struct{}{}
	m.order = append(m.order, key)
}

// Len is the number of remembered keys.
func (m *MemoryDismissals) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.keys)
}

type scoped struct {
	prefix string
	store  DismissalStore
}

// Scoped namespaces store under a visitor session id.
func Scoped(store DismissalStore, session string) DismissalStore {
	return scoped{prefix: session + ":", store: store}
}

func (s scoped) Has(key string) bool { return s.store.Has(s.prefix + key) }
func (s scoped) Set(key string)      { s.store.Set(s.prefix + key) }

// PopupKey is the dismissal key of a popup ad.
func PopupKey(adID string) string {
	return "saiisai-popup-" + adID
}

// ActivePopup returns the popup to show: the first popup ad, unless the
// visitor already dismissed it. Popups without an id cannot be dismissed.
func ActivePopup(popups []models.Ad, store DismissalStore) *models.Ad {
	if len(popups) == 0 {
		return nil
	}
	candidate := popups[0]
	if candidate.ID != "" && store != nil && store.Has(PopupKey(candidate.ID)) {
		return nil
	}
	return &candidate
}

// IsPopup reports whether adID names one of popups.
func IsPopup(popups []models.Ad, adID string) bool {
	if adID == "" {
		return false
	}
	for _, ad := range popups {
		if ad.ID == adID {
			return true
		}
	}
	return false
}

// DismissPopup records that the popup with adID was closed.
func DismissPopup(store DismissalStore, adID string) bool {
	if adID == "" {
		return false
	}
	store.Set(PopupKey(adID))
	return true
}

// FilterDismissed drops the popups the visitor already closed.
func FilterDismissed(popups []models.Ad, store DismissalStore) []models.Ad {
	out := make([]models.Ad, 0, len(popups))
	for _, ad := range popups {
		if ad.ID != "" && store != nil && store.Has(PopupKey(ad.ID)) {
			continue
		}
		out = append(out, ad)
	}
	return out
}
