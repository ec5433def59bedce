package queries

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// AuthenticateRiderQueryHandler performs rider login checks.
// Resolves the rider by phone or username, then delegates the password check
// to the pluggable CredentialVerifier so the credential scheme can change
// without touching this flow.
//
// Example:
//
//	handler := NewAuthenticateRiderQueryHandler(db, services.NewPlaintextVerifier())
//	rider, err := handler.Handle(ctx, query)
//	if errors.Is(err, ErrInvalidCredentials) {
//	    fmt.Println("Wrong password")
//	}
type AuthenticateRiderQueryHandler struct {
	db       *gorm.DB
	verifier services.CredentialVerifier
}

// NewAuthenticateRiderQueryHandler creates a handler for rider login queries.
func NewAuthenticateRiderQueryHandler(
	db *gorm.DB,
	verifier services.CredentialVerifier,
) AuthenticateRiderQueryHandler {
	return AuthenticateRiderQueryHandler{db: db, verifier: verifier}
}

// Handle executes the login check and returns the rider read model on success.
// An unknown identifier is an ObjectNotFoundError; a known identifier with a
// non-matching password is ErrInvalidCredentials.
func (h AuthenticateRiderQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateRiderQuery,
) (RiderResponse, error) {
	if err := query.Validate(); err != nil {
		return RiderResponse{}, err
	}

	column := "username"
	if kernel.IsPhoneNumber(query.Identifier()) {
		column = "phone"
	}

	var storedPassword string

	row := h.db.WithContext(ctx).Raw(`
		SELECT password
		FROM riders
		WHERE `+column+` = ?
	`, query.Identifier()).Row()

	if err := row.Scan(&storedPassword); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RiderResponse{}, errs.NewObjectNotFoundError("identifier", query.Identifier())
		}
		return RiderResponse{}, err
	}

	if !h.verifier.Verify(storedPassword, query.Password()) {
		return RiderResponse{}, ErrInvalidCredentials
	}

	findQuery, err := NewFindRiderQuery(query.Identifier())
	if err != nil {
		return RiderResponse{}, err
	}

	return NewFindRiderQueryHandler(h.db).Handle(ctx, findQuery)
}
