package repository

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"sort"
	"sync"

	"survev-skin-studio/models"
)

// SessionRepository keeps design sessions in memory. Sessions are working
// state, not persistent records; exported bundles are the durable output, so
// nothing here survives a restart.
// Implements SessionRepositoryInterface
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*models.OutfitDesign
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*models.OutfitDesign),
	}
}

// Ensure SessionRepository implements SessionRepositoryInterface
var _ SessionRepositoryInterface = (*SessionRepository)(nil)

// newSessionID generates a random 16-byte hex session identifier
func newSessionID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// clone copies a design so callers never share pointers with the store
func clone(design *models.OutfitDesign) *models.OutfitDesign {
	copied := *design
	return &copied
}

// Create stores a new design and returns its session ID
func (r *SessionRepository) Create(ctx context.Context, design *models.OutfitDesign) (string, error) {
	id, err := newSessionID()
	if err != nil {
		log.Printf("❌ Error generating session id: %v", err)
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := clone(design)
	stored.SessionID = id
	r.sessions[id] = stored

	log.Printf("💾 Created design session %s (ident: %s)", id, design.Ident)
	return id, nil
}

// Get retrieves a design by its session ID
func (r *SessionRepository) Get(ctx context.Context, sessionID string) (*models.OutfitDesign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	design, ok := r.sessions[sessionID]
	if !ok {
		log.Printf("⚠️  Design session not found: %s", sessionID)
		return nil, fmt.Errorf("design session %s not found", sessionID)
	}
	return clone(design), nil
}

// Update replaces the design stored under an existing session ID
func (r *SessionRepository) Update(ctx context.Context, sessionID string, design *models.OutfitDesign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sessionID]; !ok {
		log.Printf("⚠️  Cannot update missing design session: %s", sessionID)
		return fmt.Errorf("design session %s not found", sessionID)
	}

	stored := clone(design)
	stored.SessionID = sessionID
	r.sessions[sessionID] = stored

	log.Printf("🔄 Updated design session %s (ident: %s)", sessionID, design.Ident)
	return nil
}

// Delete removes a design session
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sessionID]; !ok {
		log.Printf("⚠️  Cannot delete missing design session: %s", sessionID)
		return fmt.Errorf("design session %s not found", sessionID)
	}

	delete(r.sessions, sessionID)
	log.Printf("🗑️  Deleted design session %s", sessionID)
	return nil
}

// List returns summaries of all stored sessions, sorted by session ID for a
// stable order
func (r *SessionRepository) List(ctx context.Context) ([]models.SessionSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]models.SessionSummary, 0, len(r.sessions))
	for id, design := range r.sessions {
		summaries = append(summaries, models.SessionSummary{
			SessionID: id,
			Ident:     design.Ident,
			Name:      design.Name,
			Preset:    design.Preset,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].SessionID < summaries[j].SessionID
	})

	log.Printf("✓ Listed %d design sessions", len(summaries))
	return summaries, nil
}
