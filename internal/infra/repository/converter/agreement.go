package converter

import (
	"carhire-booking/internal/domain/agreement"
	"carhire-booking/internal/domain/inspection"
	sqlc "carhire-booking/internal/infra/sqlc/generated"
	"carhire-booking/internal/pkg/errs"
	"carhire-booking/internal/pkg/pgconv"
)

func AgreementFromRow(row sqlc.Agreements) (*agreement.Agreement, error) {
	status, err := agreement.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "agreement %s", row.ID)
	}

	var fuel *inspection.FuelLevel
	if row.FuelLevel.Valid {
		f, ferr := inspection.ParseFuelLevel(row.FuelLevel.String)
		if ferr != nil {
			return nil, errs.Wrapf(ferr, "agreement %s", row.ID)
		}
		fuel = &f
	}

	return agreement.Reconstruct(agreement.ReconstructParams{
		ID:           row.ID,
		BookingID:    row.BookingID,
		Status:       status,
		Text:         row.AgreementText,
		Registration: row.VehicleRegistration,
		UnsignedURL:  pgconv.StringPtrFromPgtype(row.UnsignedUrl),
		SignedURL:    pgconv.StringPtrFromPgtype(row.SignedUrl),
		Signature:    pgconv.StringPtrFromPgtype(row.SignatureData),
		SignerName:   pgconv.StringPtrFromPgtype(row.SignerName),
		SignedAt:     pgconv.TimePtrFromPgtype(row.SignedAt),
		FuelLevel:    fuel,
		Odometer:     pgconv.IntPtrFromPgtype(row.Odometer),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func AgreementToUpdateParams(a *agreement.Agreement, expected agreement.Status) sqlc.UpdateAgreementParams {
	var fuel *string
	if f := a.FuelLevel(); f != nil {
		s := f.String()
		fuel = &s
	}
	return sqlc.UpdateAgreementParams{
		Status:              a.Status().String(),
		AgreementText:       a.Text(),
		VehicleRegistration: a.Registration(),
		UnsignedUrl:         pgconv.StringPtrToPgtype(a.UnsignedURL()),
		SignedUrl:           pgconv.StringPtrToPgtype(a.SignedURL()),
		SignatureData:       pgconv.StringPtrToPgtype(a.Signature()),
		SignerName:          pgconv.StringPtrToPgtype(a.SignerName()),
		SignedAt:            pgconv.TimePtrToPgtype(a.SignedAt()),
		FuelLevel:           pgconv.StringPtrToPgtype(fuel),
		Odometer:            pgconv.IntPtrToPgtype(a.Odometer()),
		UpdatedAt:           pgconv.TimeToPgtype(a.UpdatedAt()),
		ID:                  a.ID(),
		ExpectedStatus:      expected.String(),
	}
}
