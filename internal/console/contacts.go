package console

import (
	"context"
	"fmt"

	"ipoadvisor/internal/model"
)

// ContactsTab lists contact-page inquiries and edits their status and notes.
type ContactsTab struct {
	gw    ContactsGateway
	items []model.Contact
}

func NewContactsTab(gw ContactsGateway) *ContactsTab {
	return &ContactsTab{gw: gw}
}

// Refresh reloads the list. On failure the previous list is kept.
func (t *ContactsTab) Refresh(ctx context.Context) error {
	items, err := t.gw.ListContacts(ctx)
	if err != nil {
		return err
	}
	t.items = items
	return nil
}

// Items returns the last fetched list in backend order.
func (t *ContactsTab) Items() []model.Contact { return t.items }

// Filter matches term against name, company and email, and status exactly
// (StatusAll or "" for any).
func (t *ContactsTab) Filter(term, status string) []model.Contact {
	out := make([]model.Contact, 0, len(t.items))
	for _, c := range t.items {
		if !matchesStatus(status, string(c.Status)) {
			continue
		}
		if containsFold(term, c.Name, c.CompanyName, model.Deref(c.Email)) {
			out = append(out, c)
		}
	}
	return out
}

// Save stores a new status and notes for a contact, then refetches.
func (t *ContactsTab) Save(ctx context.Context, id string, status model.ContactStatus, notes string) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	if _, err := t.gw.UpdateContact(ctx, id, model.ContactUpdate{Status: &status, Notes: &notes}); err != nil {
		return err
	}
	return t.Refresh(ctx)
}

// Delete removes a contact, then refetches. Asking for confirmation is the caller's job.
func (t *ContactsTab) Delete(ctx context.Context, id string) error {
	if err := t.gw.DeleteContact(ctx, id); err != nil {
		return err
	}
	return t.Refresh(ctx)
}
