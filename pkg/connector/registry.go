package connector

import (
	"fmt"
	"sync"
)

// Registry is the process-wide connector_type -> implementation map,
// populated at startup before the scheduler begins dispatching fetches.
type Registry struct {
	mu         sync.RWMutex
	connectors map[string]Connector
}

// NewRegistry constructs an empty connector registry.
func NewRegistry() *Registry {
	return &Registry{connectors: make(map[string]Connector)}
}

// Register binds a connector implementation to a connector_type. Calling it
// twice for the same type is idempotent: the later registration wins, which
// lets tests swap in fakes without restarting the process.
func (r *Registry) Register(connectorType string, c Connector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connectors[connectorType] = c
}

// Get returns the connector registered for connectorType.
func (r *Registry) Get(connectorType string) (Connector, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.connectors[connectorType]
	if !ok {
		return nil, fmt.Errorf("unknown connector type %q", connectorType)
	}
	return c, nil
}

// Types lists every registered connector_type.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.connectors))
	for t := range r.connectors {
		types = append(types, t)
	}
	return types
}

// NewDefaultRegistry returns a registry with every built-in connector
// registered under the closed connector_type enum declared on Channel.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("web-feed", NewFeedConnector())
	r.Register("web-feed-variant", NewFeedConnector())
	r.Register("html-scrape", NewHTMLConnector())
	r.Register("document-page", NewDocumentConnector())
	r.Register("social-a", NewSocialAConnector())
	r.Register("social-b", NewSocialBConnector())
	r.Register("messaging-channel", NewMessagingConnector())
	r.Register("professional-network", NewProfessionalNetworkConnector())
	r.Register("photo-network", NewPhotoNetworkConnector())
	return r
}
