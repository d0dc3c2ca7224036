package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apienvelope "github.com/pegasus-cloud/pegasus/pkg/api/types/envelope"
	apierr "github.com/pegasus-cloud/pegasus/pkg/api/types/errors"
	apiinvitations "github.com/pegasus-cloud/pegasus/pkg/api/types/invitations"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
	kerr "github.com/pegasus-cloud/pegasus/pkg/domain/errors"
	kdbinv "github.com/pegasus-cloud/pegasus/pkg/domain/invitation/db"
	kdbuser "github.com/pegasus-cloud/pegasus/pkg/domain/user/db"
	"github.com/pegasus-cloud/pegasus/pkg/mail"
)

// PostInvitationHandler creates an invitation and mails its link.
//
// Refusals (known user, per-email rate cap) are answered with 200 and
// status=false so the frontend can show the message as-is.
func PostInvitationHandler(
	dbUser kdbuser.UserInterface,
	dbInvitation kdbinv.InvitationInterface,
	sender mail.Sender,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req, herr := bind[apiinvitations.PostRequest](c)
		if herr != nil {
			return herr
		}

		known, err := dbUser.Exists(ctx, req.Email)
		if err != nil {
			return apierr.InternalServerError(err)
		}
		if known {
			return c.JSON(http.StatusOK, apienvelope.Refused("The user with this email exist"))
		}

		since := time.Now().Add(-domain.InvitationTTL)
		count, err := dbInvitation.CountSince(ctx, req.Email, since)
		if err != nil {
			return apierr.InternalServerError(err)
		}
		if count >= domain.MaxInvitationsPerDay {
			return c.JSON(http.StatusOK, apienvelope.Refused(
				"Most 3 invitations are allow for one email within 24 hours",
			))
		}

		invitation, err := dbInvitation.New(ctx, domain.InvitationSpec{
			Email:      req.Email,
			Department: req.Department,
			IsAdmin:    req.IsAdmin,
		})
		if err != nil {
			return apierr.InternalServerError(err)
		}

		if err := sender.SendInvitation(ctx, invitation); err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("invitation email could not be sent"))
		}

		return c.JSON(http.StatusOK, apienvelope.OK(
			fmt.Sprintf("Invitation for %s send successfully", req.Email),
		))
	}
}

// InvitationExpiredHandler reports whether an invitation is still usable.
func InvitationExpiredHandler(dbInvitation kdbinv.InvitationInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req, herr := bind[apiinvitations.IdRequest](c)
		if herr != nil {
			return herr
		}
		id, err := uuid.Parse(req.Id)
		if err != nil {
			return apierr.BadRequest("id should be a UUID", err)
		}

		invitation, err := dbInvitation.Get(ctx, id)
		if errors.Is(err, kerr.ErrMissing) {
			return apierr.NotFound()
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiinvitations.ExpireStatus{
			Expire: invitation.Expired(time.Now()),
		})
	}
}

// GetInvitationHandler resolves an invitation id into its detail,
// used by the sign-up page reached from the emailed link.
func GetInvitationHandler(dbInvitation kdbinv.InvitationInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req, herr := bind[apiinvitations.IdRequest](c)
		if herr != nil {
			return herr
		}
		id, err := uuid.Parse(req.Id)
		if err != nil {
			return apierr.BadRequest("id should be a UUID", err)
		}

		invitation, err := dbInvitation.Get(ctx, id)
		if errors.Is(err, kerr.ErrMissing) {
			return apierr.NotFound()
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiinvitations.ComposeDetail(invitation))
	}
}
