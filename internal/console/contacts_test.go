package console

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ipoadvisor/internal/console/mocks"
	"ipoadvisor/internal/model"
)

func sampleContacts() []model.Contact {
	return []model.Contact{
		{ID: "1", Name: "Asha Rao", CompanyName: "Asha Foods", Email: model.OptionalString("asha@foods.in"), Status: model.ContactPending},
		{ID: "2", Name: "Vikram", CompanyName: "Steelworks Ltd", Status: model.ContactContacted},
		{ID: "3", Name: "Meera", CompanyName: "Nimbus", Email: model.OptionalString("meera@steel.co"), Status: model.ContactConverted},
	}
}

func TestContactsTab_Filter(t *testing.T) {
	gw := new(mocks.MockContactsGateway)
	gw.On("ListContacts", mock.Anything).Return(sampleContacts(), nil)

	tab := NewContactsTab(gw)
	require.NoError(t, tab.Refresh(context.Background()))

	ids := func(cs []model.Contact) []string {
		out := []string{}
		for _, c := range cs {
			out = append(out, c.ID)
		}
		return out
	}

	tests := []struct {
		name   string
		term   string
		status string
		want   []string
	}{
		{"everything", "", StatusAll, []string{"1", "2", "3"}},
		{"empty status means all", "", "", []string{"1", "2", "3"}},
		{"name case insensitive", "ASHA", StatusAll, []string{"1"}},
		{"company or email", "steel", StatusAll, []string{"2", "3"}},
		{"status only", "", "contacted", []string{"2"}},
		{"term and status", "steel", "converted", []string{"3"}},
		{"no match", "zzz", StatusAll, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(tab.Filter(tt.term, tt.status)))
		})
	}
}

func TestContactsTab_RefreshFailureKeepsList(t *testing.T) {
	gw := new(mocks.MockContactsGateway)
	gw.On("ListContacts", mock.Anything).Return(sampleContacts(), nil).Once()
	gw.On("ListContacts", mock.Anything).Return(nil, errors.New("Failed to fetch contacts")).Once()

	tab := NewContactsTab(gw)
	require.NoError(t, tab.Refresh(context.Background()))
	assert.Error(t, tab.Refresh(context.Background()))
	assert.Len(t, tab.Items(), 3)
}

func TestContactsTab_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("updates then refetches", func(t *testing.T) {
		gw := new(mocks.MockContactsGateway)
		status := model.ContactConverted
		notes := "Signed engagement letter"
		gw.On("UpdateContact", ctx, "2", model.ContactUpdate{Status: &status, Notes: &notes}).
			Return(model.Contact{ID: "2", Status: status}, nil).Once()
		gw.On("ListContacts", ctx).Return(sampleContacts(), nil).Once()

		tab := NewContactsTab(gw)
		require.NoError(t, tab.Save(ctx, "2", status, notes))
		assert.Len(t, tab.Items(), 3)
		gw.AssertExpectations(t)
	})

	t.Run("failed update leaves list untouched", func(t *testing.T) {
		gw := new(mocks.MockContactsGateway)
		gw.On("UpdateContact", ctx, "2", mock.Anything).Return(model.Contact{}, errors.New("Failed to update contact"))

		tab := NewContactsTab(gw)
		assert.EqualError(t, tab.Save(ctx, "2", model.ContactRejected, ""), "Failed to update contact")
		gw.AssertNotCalled(t, "ListContacts", mock.Anything)
	})

	t.Run("unknown status never sent", func(t *testing.T) {
		gw := new(mocks.MockContactsGateway)
		tab := NewContactsTab(gw)

		err := tab.Save(ctx, "2", model.ContactStatus("reviewing"), "")

		assert.ErrorIs(t, err, ErrUnknownStatus)
		gw.AssertNotCalled(t, "UpdateContact", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestContactsTab_Delete(t *testing.T) {
	ctx := context.Background()
	gw := new(mocks.MockContactsGateway)
	gw.On("DeleteContact", ctx, "1").Return(nil)
	gw.On("ListContacts", ctx).Return(sampleContacts()[1:], nil)

	tab := NewContactsTab(gw)
	require.NoError(t, tab.Delete(ctx, "1"))
	assert.Len(t, tab.Items(), 2)
	gw.AssertExpectations(t)
}
