// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/devkit-vault/internal/crypto"
	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/internal/store"
	"github.com/MKhiriev/devkit-vault/models"
)

type pendingRequest struct {
	req      models.AccessRequest
	onGrant  func()
	done     chan struct{}
	approved bool
	deciding bool
}

// AccessProtocol runs the per-plugin consent handshake. Grants are persisted
// through the grant repository; pending requests only live in memory.
type AccessProtocol struct {
	mu       sync.Mutex
	pending  map[string]*pendingRequest
	grants   store.GrantRepository
	prompter Prompter
	notifier Notifier
	now      func() time.Time
	logger   *logger.Logger
}

// NewAccessProtocol returns an AccessProtocol. A nil prompter or notifier
// is replaced by a no-op.
func NewAccessProtocol(grants store.GrantRepository, prompter Prompter, notifier Notifier, logger *logger.Logger) *AccessProtocol {
	if prompter == nil {
		prompter = nopPrompter{}
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &AccessProtocol{
		pending:  make(map[string]*pendingRequest),
		grants:   grants,
		prompter: prompter,
		notifier: notifier,
		now:      time.Now,
		logger:   logger,
	}
}

// RequestAccess asks the user to let plugin use its vault namespace.
//
// A plugin that already holds a grant gets onGranted called right away and
// no prompt. Otherwise the request becomes pending and the [Prompter] is
// told. A second request while one is pending returns [ErrRequestPending].
func (p *AccessProtocol) RequestAccess(ctx context.Context, plugin models.PluginDescriptor, onGranted func()) error {
	if err := ValidatePluginID(plugin.ID); err != nil {
		return err
	}

	granted, err := p.grants.IsGranted(ctx, plugin.ID)
	if err != nil {
		return fmt.Errorf("check grant: %w", err)
	}
	if granted {
		if onGranted != nil {
			onGranted()
		}
		return nil
	}

	p.mu.Lock()
	if _, ok := p.pending[plugin.ID]; ok {
		p.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrRequestPending, plugin.ID)
	}
	req := models.AccessRequest{Plugin: plugin, RequestedAt: p.now()}
	p.pending[plugin.ID] = &pendingRequest{
		req:     req,
		onGrant: onGranted,
		done:    make(chan struct{}),
	}
	p.mu.Unlock()

	p.logger.Info().Str("func", "AccessProtocol.RequestAccess").Str("plugin_id", plugin.ID).Msg("vault access requested")
	p.prompter.PromptAccess(req)
	return nil
}

// Decide resolves the pending request of pluginID. Approval persists the
// grant and then calls the request callback synchronously. Denial discards
// the request and its callback. The request stays pending, and immune to
// Cancel, until the grant is persisted.
func (p *AccessProtocol) Decide(ctx context.Context, pluginID string, approve bool) error {
	p.mu.Lock()
	pr, ok := p.pending[pluginID]
	if !ok || pr.deciding {
		p.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNoPendingRequest, pluginID)
	}
	pr.deciding = true
	p.mu.Unlock()

	if approve {
		if err := p.grants.SetGrant(ctx, pluginID); err != nil {
			p.mu.Lock()
			pr.deciding = false
			p.mu.Unlock()
			p.logger.Err(err).Str("func", "AccessProtocol.Decide").Str("plugin_id", pluginID).Msg("failed to persist grant")
			return fmt.Errorf("persist grant: %w", err)
		}
	}

	p.mu.Lock()
	delete(p.pending, pluginID)
	pr.approved = approve
	close(pr.done)
	p.mu.Unlock()

	if !approve {
		p.logger.Info().Str("func", "AccessProtocol.Decide").Str("plugin_id", pluginID).Msg("vault access denied")
		return nil
	}

	if pr.onGrant != nil {
		pr.onGrant()
	}
	p.logger.Info().Str("func", "AccessProtocol.Decide").Str("plugin_id", pluginID).Msg("vault access granted")
	p.notifier.Notify(models.Notification{
		Message: fmt.Sprintf("Vault access granted to %s.", displayName(pr.req.Plugin)),
		Type:    models.NotificationSuccess,
	})
	return nil
}

// Await blocks until the pending request of pluginID is decided or ctx is
// done. It reports whether the user approved.
func (p *AccessProtocol) Await(ctx context.Context, pluginID string) (bool, error) {
	p.mu.Lock()
	pr, ok := p.pending[pluginID]
	p.mu.Unlock()
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrNoPendingRequest, pluginID)
	}

	select {
	case <-pr.done:
		p.mu.Lock()
		approved := pr.approved
		p.mu.Unlock()
		return approved, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Cancel drops the pending request of pluginID without a decision. It is a
// no-op when nothing is pending or a decision is being persisted.
func (p *AccessProtocol) Cancel(pluginID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if pr, ok := p.pending[pluginID]; ok && !pr.deciding {
		delete(p.pending, pluginID)
		close(pr.done)
	}
}

// State returns the consent state of pluginID.
func (p *AccessProtocol) State(ctx context.Context, pluginID string) (models.AccessState, error) {
	granted, err := p.grants.IsGranted(ctx, pluginID)
	if err != nil {
		return models.AccessUngranted, fmt.Errorf("check grant: %w", err)
	}
	if granted {
		return models.AccessGranted, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.pending[pluginID]; ok {
		return models.AccessPending, nil
	}
	return models.AccessUngranted, nil
}

// HasAccess reports whether pluginID holds a persisted grant.
func (p *AccessProtocol) HasAccess(ctx context.Context, pluginID string) (bool, error) {
	return p.grants.IsGranted(ctx, pluginID)
}

// Pending returns waiting requests, oldest first.
func (p *AccessProtocol) Pending() []models.AccessRequest {
	p.mu.Lock()
	reqs := make([]models.AccessRequest, 0, len(p.pending))
	for _, pr := range p.pending {
		reqs = append(reqs, pr.req)
	}
	p.mu.Unlock()

	slices.SortFunc(reqs, func(a, b models.AccessRequest) int {
		if c := a.RequestedAt.Compare(b.RequestedAt); c != 0 {
			return c
		}
		if a.Plugin.ID < b.Plugin.ID {
			return -1
		}
		if a.Plugin.ID > b.Plugin.ID {
			return 1
		}
		return 0
	})
	return reqs
}

// Grants lists every persisted grant.
func (p *AccessProtocol) Grants(ctx context.Context) ([]models.AccessGrant, error) {
	return p.grants.ListGrants(ctx)
}

// Revoke takes access away from pluginID. Its secrets are deleted first and
// the grant second, so a failure leaves the plugin granted and able to be
// revoked again. The vault must be unlocked.
func (p *AccessProtocol) Revoke(ctx context.Context, key *crypto.MasterKey, manager *Manager, pluginID string) error {
	if key == nil {
		return ErrVaultLocked
	}
	if err := manager.DeleteAllPluginSecrets(ctx, key, pluginID); err != nil {
		p.logger.Err(err).Str("func", "AccessProtocol.Revoke").Str("plugin_id", pluginID).Msg("failed to delete plugin secrets")
		return fmt.Errorf("delete plugin secrets: %w", err)
	}
	if err := p.grants.DeleteGrant(ctx, pluginID); err != nil {
		p.logger.Err(err).Str("func", "AccessProtocol.Revoke").Str("plugin_id", pluginID).Msg("failed to delete grant")
		return fmt.Errorf("delete grant: %w", err)
	}
	p.Cancel(pluginID)

	p.logger.Info().Str("func", "AccessProtocol.Revoke").Str("plugin_id", pluginID).Msg("vault access revoked")
	return nil
}

func displayName(d models.PluginDescriptor) string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID
}
