package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthenticateRiderQuery_Valid(t *testing.T) {
	query, err := queries.NewAuthenticateRiderQuery("ravi89", "s3cret")

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "ravi89", query.Identifier())
	assert.Equal(t, "s3cret", query.Password())
}

func TestNewAuthenticateRiderQuery_MissingFields(t *testing.T) {
	_, err := queries.NewAuthenticateRiderQuery("", "s3cret")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewAuthenticateRiderQuery("ravi89", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestAuthenticateRiderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.AuthenticateRiderQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrAuthenticateRiderQueryIsNotConstructed)
}
