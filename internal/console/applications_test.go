package console

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ipoadvisor/internal/console/mocks"
	"ipoadvisor/internal/model"
)

func TestApplicationsTab(t *testing.T) {
	ctx := context.Background()
	apps := []model.Application{
		{ID: "a", Name: "Ravi", CompanyName: "Ravi Textiles", MobileNumber: "9876500000", Status: model.ApplicationPending},
		{ID: "b", Name: "Kiran", CompanyName: "Blue Pharma", MobileNumber: "9123400000", Status: model.ApplicationQualified},
	}

	gw := new(mocks.MockApplicationsGateway)
	gw.On("ListApplications", ctx).Return(apps, nil)

	tab := NewApplicationsTab(gw)
	require.NoError(t, tab.Refresh(ctx))

	assert.Len(t, tab.Filter("", StatusAll), 2)
	assert.Len(t, tab.Filter("pharma", StatusAll), 1)
	assert.Len(t, tab.Filter("98765", ""), 1)
	assert.Empty(t, tab.Filter("ravi", string(model.ApplicationQualified)))

	qualified := model.ApplicationQualified
	gw.On("UpdateApplication", ctx, "a", model.ApplicationUpdate{Status: &qualified}).Return(apps[0], nil).Once()
	require.NoError(t, tab.SetStatus(ctx, "a", qualified))

	assert.ErrorIs(t, tab.SetStatus(ctx, "a", "won"), ErrUnknownStatus)

	gw.On("DeleteApplication", ctx, "b").Return(errors.New("Failed to delete application")).Once()
	assert.Error(t, tab.Delete(ctx, "b"))
	assert.Len(t, tab.Items(), 2)

	gw.AssertNumberOfCalls(t, "ListApplications", 2)
	gw.AssertExpectations(t)
}

func TestContainsFold(t *testing.T) {
	assert.True(t, containsFold("", "anything"))
	assert.True(t, containsFold("  ipo ", "SME IPO Guide"))
	assert.False(t, containsFold("x", "", "abc"))
}
