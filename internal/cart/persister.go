package cart

import (
	"net/http"

	"github.com/gorilla/sessions"
)

// SessionKey is the fixed slot the serialized cart document lives under in
// durable client-side storage.
const SessionKey = "cart"

// Persister loads and saves the serialized cart document. Load returning an
// empty slice means no cart has been persisted yet.
type Persister interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// MemoryPersister keeps the document in process memory. It backs tests and
// the fallback path when durable storage is unavailable.
type MemoryPersister struct {
	data []byte
}

// NewMemoryPersister creates an empty in-memory persister
func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{}
}

// Load returns the stored document
func (p *MemoryPersister) Load() ([]byte, error) {
	return p.data, nil
}

// Save stores the document
func (p *MemoryPersister) Save(data []byte) error {
	p.data = append(p.data[:0], data...)
	return nil
}

// SessionPersister stores the cart document in a gorilla session, scoped to
// one request/response exchange. Save writes the session cookie immediately
// so a read later in the same request never sees stale state.
type SessionPersister struct {
	session *sessions.Session
	w       http.ResponseWriter
	r       *http.Request
}

// NewSessionPersister creates a persister bound to the request's session
func NewSessionPersister(session *sessions.Session, w http.ResponseWriter, r *http.Request) *SessionPersister {
	return &SessionPersister{session: session, w: w, r: r}
}

// Load reads the cart document from the session
func (p *SessionPersister) Load() ([]byte, error) {
	raw, ok := p.session.Values[SessionKey]
	if !ok {
		return nil, nil
	}

	doc, ok := raw.(string)
	if !ok {
		return nil, nil
	}

	return []byte(doc), nil
}

// Save writes the cart document to the session and flushes the cookie
func (p *SessionPersister) Save(data []byte) error {
	p.session.Values[SessionKey] = string(data)
	return p.session.Save(p.r, p.w)
}
