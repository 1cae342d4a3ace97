package pawprint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pawprint-hq/pawprint/database/mocks"
	"github.com/pawprint-hq/pawprint/internal/apierror"
	"github.com/pawprint-hq/pawprint/model"
)

func TestResolveUser_Found(t *testing.T) {
	mockDS := new(mocks.MockDataSource)
	p := &Pawprint{datasource: mockDS}

	mockDS.On("GetUserByID", context.Background(), int64(42)).
		Return(&model.User{ID: 42, Name: "Jane"}, nil)

	user, err := p.resolveUser(context.Background(), "42")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	mockDS.AssertExpectations(t)
}

func TestResolveUser_NotFound(t *testing.T) {
	mockDS := new(mocks.MockDataSource)
	p := &Pawprint{datasource: mockDS}

	mockDS.On("GetUserByID", context.Background(), int64(99999)).
		Return(nil, apierror.NewAPIError(apierror.ErrNotFound, "user with id 99999 not found", nil))

	_, err := p.resolveUser(context.Background(), "99999")
	assert.Error(t, err)
	assert.True(t, apierror.IsCode(err, apierror.ErrNotFound))
	assert.Contains(t, err.Error(), "User with ID 99999 not found")
}

func TestResolveUser_MalformedIsDistinctFromNotFound(t *testing.T) {
	mockDS := new(mocks.MockDataSource)
	p := &Pawprint{datasource: mockDS}

	for _, raw := range []string{"abc", "12.5", "-3", ""} {
		_, err := p.resolveUser(context.Background(), raw)
		assert.Error(t, err, raw)
		// malformed input is INVALID_INPUT, never NOT_FOUND
		assert.True(t, apierror.IsCode(err, apierror.ErrInvalidInput), raw)
		assert.False(t, apierror.IsCode(err, apierror.ErrNotFound), raw)
	}

	// the store is never consulted for a malformed reference
	mockDS.AssertNotCalled(t, "GetUserByID")
}

func TestResolveOrganization_MessageNamesKindAndRawID(t *testing.T) {
	mockDS := new(mocks.MockDataSource)
	p := &Pawprint{datasource: mockDS}

	mockDS.On("GetOrganizationByID", context.Background(), int64(7)).
		Return(nil, apierror.NewAPIError(apierror.ErrNotFound, "organization with id 7 not found", nil))

	_, err := p.resolveOrganization(context.Background(), "7")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Organization with ID 7 not found")
}

func TestMalformedReferenceError_EmbedsRawValue(t *testing.T) {
	_, err := parseRef("User", "not-a-number")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `"not-a-number"`)

	var malformed MalformedReferenceError
	assert.ErrorAs(t, err, &malformed)
	assert.Equal(t, "User", malformed.Kind)
	assert.Equal(t, "not-a-number", malformed.Raw)
}
