package billing

import (
	"sync"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain"
	domainbilling "github.com/LieTttv/PDVomnierp-sub000/internal/domain/billing"
)

// DraftSessions guarda los borradores de facturación en memoria. Los borradores
// nunca se persisten: descartar la sesión antes de Success pierde las ediciones.
// El mutex protege el proceso entre requests; entre clientes no hay control de
// concurrencia.
type DraftSessions struct {
	mu     sync.Mutex
	drafts map[string]*domainbilling.Draft
}

// NewDraftSessions construye el almacén de sesiones.
func NewDraftSessions() *DraftSessions {
	return &DraftSessions{drafts: make(map[string]*domainbilling.Draft)}
}

// Put registra un borrador nuevo.
func (s *DraftSessions) Put(d *domainbilling.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[d.ID] = d
}

// Mutate ejecuta fn sobre el borrador bajo el lock. ErrNotFound si no existe
// o si no pertenece a la tienda.
func (s *DraftSessions) Mutate(storeID, id string, fn func(*domainbilling.Draft) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok || d.StoreID != storeID {
		return domain.ErrNotFound
	}
	return fn(d)
}

// Delete descarta la sesión. Idempotente.
func (s *DraftSessions) Delete(storeID, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.drafts[id]; ok && d.StoreID == storeID {
		delete(s.drafts, id)
	}
}
