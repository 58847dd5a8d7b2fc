//go:build unit

package commands_test

import (
	"context"
	"testing"

	"carhire-booking/internal/domain/agreement"
	"carhire-booking/internal/domain/booking"
	"carhire-booking/internal/domain/inspection"
	"carhire-booking/internal/domain/user"
	"carhire-booking/internal/pkg/errs"
	"carhire-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sendInput() commands.SendAgreementInput {
	return commands.SendAgreementInput{UnsignedURL: "agreements/draft.pdf", Text: "Terms of hire"}
}

func signInput() commands.SignAgreementInput {
	return commands.SignAgreementInput{Signature: "data:image/png;base64,iVBOR", SignerName: "Sam Carter"}
}

func handover() commands.RecordInspectionInput {
	return commands.RecordInspectionInput{
		Type:            "handover",
		FuelLevel:       "full",
		Odometer:        12050,
		Condition:       "good",
		ExteriorPhotos:  []string{"inspections/front.jpg", "inspections/rear.jpg"},
		InspectorName:   "Priya Shah",
		CustomerPresent: true,
	}
}

func returned() commands.RecordInspectionInput {
	return commands.RecordInspectionInput{Type: "return", FuelLevel: "half", Odometer: 12410, Condition: "fair", CustomerPresent: true}
}

func TestSendAgreement(t *testing.T) {
	ctx := context.Background()

	t.Run("staff sends with the vehicle registration", func(t *testing.T) {
		f := newFixture(t)
		owner := customer()
		b := f.seed(booking.StatusPaymentCompleted, 3, 6, ownedBy(owner.UserID))

		a, err := f.coordinator.SendAgreement(ctx, staff, b.ID(), sendInput())
		require.NoError(t, err)
		assert.Equal(t, agreement.StatusSent, a.Status())
		assert.Equal(t, "AB12CDE", a.Registration())

		inbox := f.store.Notifications(owner.UserID)
		require.Len(t, inbox, 1)
		assert.Equal(t, "Rental agreement ready to sign", inbox[0].Title())
	})

	t.Run("resending keeps one agreement", func(t *testing.T) {
		f := newFixture(t)
		b := f.seed(booking.StatusDocumentsSubmitted, 3, 6)

		first, err := f.coordinator.SendAgreement(ctx, staff, b.ID(), sendInput())
		require.NoError(t, err)
		in := sendInput()
		in.UnsignedURL = "agreements/v2.pdf"
		second, err := f.coordinator.SendAgreement(ctx, staff, b.ID(), in)
		require.NoError(t, err)

		assert.Equal(t, first.ID(), second.ID())
		assert.Equal(t, "agreements/v2.pdf", *second.UnsignedURL())
	})

	tests := []struct {
		name   string
		status booking.Status
		actor  user.Actor
		errIs  error
	}{
		{name: "customers cannot send", status: booking.StatusPaymentCompleted, actor: customer(), errIs: errs.ErrAuthorization},
		{name: "not before payment", status: booking.StatusPendingReview, actor: staff, errIs: errs.ErrGuardViolation},
		{name: "not after cancellation", status: booking.StatusCancelled, actor: staff, errIs: errs.ErrGuardViolation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			b := f.seed(tt.status, 3, 6)

			_, err := f.coordinator.SendAgreement(ctx, tt.actor, b.ID(), sendInput())
			assert.True(t, errs.Is(err, tt.errIs), "got %v", err)
			_, ok := f.store.AgreementFor(b.ID())
			assert.False(t, ok)
		})
	}
}

func TestSignAgreement(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fixture, user.Actor, *booking.Booking, *agreement.Agreement) {
		f := newFixture(t)
		owner := customer()
		b := f.seed(booking.StatusConfirmed, 3, 6, ownedBy(owner.UserID))
		a, err := f.coordinator.SendAgreement(ctx, staff, b.ID(), sendInput())
		require.NoError(t, err)
		return f, owner, b, a
	}

	t.Run("owner signs", func(t *testing.T) {
		f, owner, b, a := setup(t)

		signed, err := f.coordinator.SignAgreement(ctx, owner, a.ID(), signInput())
		require.NoError(t, err)
		assert.True(t, signed.IsSigned())
		assert.Equal(t, booking.StatusConfirmed, f.statusOf(t, b.ID()), "handover still missing")
	})

	t.Run("staff signs at the counter", func(t *testing.T) {
		f, _, _, a := setup(t)
		_, err := f.coordinator.SignAgreement(ctx, staff, a.ID(), signInput())
		assert.NoError(t, err)
	})

	t.Run("another customer cannot sign", func(t *testing.T) {
		f, _, b, a := setup(t)
		_, err := f.coordinator.SignAgreement(ctx, customer(), a.ID(), signInput())
		assert.True(t, errs.Is(err, errs.ErrAuthorization), "got %v", err)

		stored, _ := f.store.AgreementFor(b.ID())
		assert.False(t, stored.IsSigned())
	})

	t.Run("second signature is refused", func(t *testing.T) {
		f, owner, _, a := setup(t)
		_, err := f.coordinator.SignAgreement(ctx, owner, a.ID(), signInput())
		require.NoError(t, err)

		_, err = f.coordinator.SignAgreement(ctx, owner, a.ID(), signInput())
		assert.True(t, errs.Is(err, errs.ErrGuardViolation), "got %v", err)
	})

	t.Run("signature data is required", func(t *testing.T) {
		f, owner, _, a := setup(t)
		in := signInput()
		in.Signature = ""
		_, err := f.coordinator.SignAgreement(ctx, owner, a.ID(), in)
		assert.True(t, errs.Is(err, errs.ErrValidation), "got %v", err)
	})

	t.Run("draft cannot be signed", func(t *testing.T) {
		f := newFixture(t)
		owner := customer()
		b := f.seed(booking.StatusPaymentCompleted, 3, 6, ownedBy(owner.UserID))
		a, err := f.coordinator.IssueAgreement(ctx, b.ID())
		require.NoError(t, err)

		_, err = f.coordinator.SignAgreement(ctx, owner, a.ID(), signInput())
		assert.True(t, errs.Is(err, errs.ErrGuardViolation), "got %v", err)
	})

	t.Run("unknown agreement", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.coordinator.SignAgreement(ctx, staff, uuid.New(), signInput())
		assert.True(t, errs.Is(err, errs.ErrNotFound), "got %v", err)
	})
}

func TestRentalActivation(t *testing.T) {
	ctx := context.Background()

	t.Run("sign then handover", func(t *testing.T) {
		f := newFixture(t)
		owner := customer()
		b := f.seed(booking.StatusConfirmed, 0, 3, ownedBy(owner.UserID))
		a, err := f.coordinator.SendAgreement(ctx, staff, b.ID(), sendInput())
		require.NoError(t, err)

		_, err = f.coordinator.SignAgreement(ctx, owner, a.ID(), signInput())
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, f.statusOf(t, b.ID()))

		rec, err := f.coordinator.RecordInspection(ctx, staff, b.ID(), handover())
		require.NoError(t, err)
		assert.Equal(t, booking.StatusOnRent, f.statusOf(t, b.ID()))
		require.NotNil(t, rec.AgreementID(), "handover links the agreement")
		assert.Equal(t, a.ID(), *rec.AgreementID())
		assert.Equal(t, inspection.ConditionGood, rec.Condition())
		assert.Equal(t, []string{"inspections/front.jpg", "inspections/rear.jpg"}, rec.Evidence().ExteriorPhotos)

		stamped, _ := f.store.AgreementFor(b.ID())
		require.NotNil(t, stamped.FuelLevel())
		assert.Equal(t, inspection.FuelFull, *stamped.FuelLevel())
		assert.Equal(t, 12050, *stamped.Odometer())
	})

	t.Run("handover then sign", func(t *testing.T) {
		f := newFixture(t)
		owner := customer()
		b := f.seed(booking.StatusConfirmed, 0, 3, ownedBy(owner.UserID))
		a, err := f.coordinator.SendAgreement(ctx, staff, b.ID(), sendInput())
		require.NoError(t, err)

		_, err = f.coordinator.RecordInspection(ctx, staff, b.ID(), handover())
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, f.statusOf(t, b.ID()))

		ready, err := f.coordinator.CanActivateRental(ctx, b.ID())
		require.NoError(t, err)
		assert.False(t, ready)

		_, err = f.coordinator.SignAgreement(ctx, owner, a.ID(), signInput())
		require.NoError(t, err)
		assert.Equal(t, booking.StatusOnRent, f.statusOf(t, b.ID()))

		titles := []string{}
		for _, n := range f.store.Notifications(owner.UserID) {
			titles = append(titles, n.Title())
		}
		assert.Contains(t, titles, "Rental started")
	})

	t.Run("return inspection completes the rental", func(t *testing.T) {
		f := newFixture(t)
		b := f.seed(booking.StatusOnRent, 0, 3)

		done, err := f.coordinator.CanCompleteRental(ctx, b.ID())
		require.NoError(t, err)
		assert.False(t, done)

		rec, err := f.coordinator.RecordInspection(ctx, staff, b.ID(), returned())
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCompleted, f.statusOf(t, b.ID()))
		assert.Nil(t, rec.AgreementID(), "no agreement on file")
	})

	t.Run("advance is a no-op until guards hold", func(t *testing.T) {
		f := newFixture(t)
		b := f.seed(booking.StatusConfirmed, 0, 3)

		got, err := f.coordinator.AdvanceRental(ctx, b.ID())
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, got.Status())
	})

	t.Run("damage on inspection notifies the customer", func(t *testing.T) {
		f := newFixture(t)
		owner := customer()
		b := f.seed(booking.StatusOnRent, 0, 3, ownedBy(owner.UserID))
		in := returned()
		in.DamageNotes = "Cracked wing mirror"

		_, err := f.coordinator.RecordInspection(ctx, staff, b.ID(), in)
		require.NoError(t, err)

		var damage int
		for _, n := range f.store.Notifications(owner.UserID) {
			if n.Title() == "Damage recorded" {
				damage++
				assert.Contains(t, n.Message(), "Cracked wing mirror")
			}
		}
		assert.Equal(t, 1, damage)
	})
}

func TestRecordInspection_Rules(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		status booking.Status
		actor  user.Actor
		in     commands.RecordInspectionInput
		errIs  error
	}{
		{name: "customers cannot inspect", status: booking.StatusConfirmed, actor: customer(), in: handover(), errIs: errs.ErrAuthorization},
		{name: "handover before confirmation", status: booking.StatusPaymentCompleted, actor: staff, in: handover(), errIs: errs.ErrGuardViolation},
		{name: "return before handover", status: booking.StatusConfirmed, actor: staff, in: returned(), errIs: errs.ErrGuardViolation},
		{name: "handover while on rent", status: booking.StatusOnRent, actor: staff, in: handover()},
		{name: "return after completion", status: booking.StatusCompleted, actor: staff, in: returned()},
		{
			name: "bad fuel level", status: booking.StatusConfirmed, actor: staff,
			in:    commands.RecordInspectionInput{Type: "handover", FuelLevel: "brimming"},
			errIs: errs.ErrValidation,
		},
		{
			name: "negative odometer", status: booking.StatusConfirmed, actor: staff,
			in:    commands.RecordInspectionInput{Type: "handover", FuelLevel: "full", Odometer: -5, Condition: "good"},
			errIs: errs.ErrValidation,
		},
		{
			name: "unknown condition", status: booking.StatusConfirmed, actor: staff,
			in:    commands.RecordInspectionInput{Type: "handover", FuelLevel: "full", Condition: "mint"},
			errIs: errs.ErrValidation,
		},
		{
			name: "too many videos", status: booking.StatusConfirmed, actor: staff,
			in: commands.RecordInspectionInput{
				Type: "handover", FuelLevel: "full", Condition: "good",
				VideoURLs: make([]string, inspection.MaxVideos+1),
			},
			errIs: errs.ErrValidation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			b := f.seed(tt.status, 0, 3)

			rec, err := f.coordinator.RecordInspection(ctx, tt.actor, b.ID(), tt.in)
			if tt.errIs != nil {
				assert.True(t, errs.Is(err, tt.errIs), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, staff.UserID, rec.InspectedBy())
		})
	}
}

func TestIssueAgreement(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	b := f.seed(booking.StatusPaymentCompleted, 3, 6)

	first, err := f.coordinator.IssueAgreement(ctx, b.ID())
	require.NoError(t, err)
	second, err := f.coordinator.IssueAgreement(ctx, b.ID())
	require.NoError(t, err)
	assert.Equal(t, first.ID(), second.ID())

	_, err = f.coordinator.IssueAgreement(ctx, uuid.New())
	assert.True(t, errs.Is(err, errs.ErrNotFound), "got %v", err)
}
