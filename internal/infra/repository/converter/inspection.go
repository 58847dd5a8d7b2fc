package converter

import (
	"carhire-booking/internal/domain/inspection"
	sqlc "carhire-booking/internal/infra/sqlc/generated"
	"carhire-booking/internal/pkg/errs"
	"carhire-booking/internal/pkg/pgconv"
)

func InspectionToCreateParams(i *inspection.Inspection) sqlc.CreateInspectionParams {
	// #nosec G115 -- validated non-negative, fits int32
	odometer := int32(i.Odometer())
	ev := i.Evidence()
	return sqlc.CreateInspectionParams{
		ID:               i.ID(),
		BookingID:        i.BookingID(),
		AgreementID:      pgconv.UUIDPtrToPgtype(i.AgreementID()),
		InspectionType:   i.Type().String(),
		FuelLevel:        i.FuelLevel().String(),
		OdometerReading:  odometer,
		OverallCondition: i.Condition().String(),
		ConditionNotes:   i.ConditionNotes(),
		DamageNotes:      i.DamageNotes(),
		ExteriorPhotos:   textArray(ev.ExteriorPhotos),
		InteriorPhotos:   textArray(ev.InteriorPhotos),
		DamagePhotos:     textArray(ev.DamagePhotos),
		VideoUrls:        textArray(ev.VideoURLs),
		InspectedBy:      i.InspectedBy(),
		InspectorName:    i.InspectorName(),
		CustomerPresent:  i.CustomerPresent(),
		CreatedAt:        pgconv.TimeToPgtype(i.CreatedAt()),
	}
}

func InspectionFromRow(row sqlc.VehicleInspections) (*inspection.Inspection, error) {
	t, err := inspection.ParseType(row.InspectionType)
	if err != nil {
		return nil, errs.Wrapf(err, "inspection %s", row.ID)
	}
	fuel, err := inspection.ParseFuelLevel(row.FuelLevel)
	if err != nil {
		return nil, errs.Wrapf(err, "inspection %s", row.ID)
	}
	cond, err := inspection.ParseCondition(row.OverallCondition)
	if err != nil {
		return nil, errs.Wrapf(err, "inspection %s", row.ID)
	}
	return inspection.Reconstruct(row.ID, inspection.Params{
		BookingID:      row.BookingID,
		AgreementID:    pgconv.UUIDPtrFromPgtype(row.AgreementID),
		Type:           t,
		FuelLevel:      fuel,
		Odometer:       int(row.OdometerReading),
		Condition:      cond,
		ConditionNotes: row.ConditionNotes,
		DamageNotes:    row.DamageNotes,
		Evidence: inspection.Evidence{
			ExteriorPhotos: row.ExteriorPhotos,
			InteriorPhotos: row.InteriorPhotos,
			DamagePhotos:   row.DamagePhotos,
			VideoURLs:      row.VideoUrls,
		},
		InspectedBy:     row.InspectedBy,
		InspectorName:   row.InspectorName,
		CustomerPresent: row.CustomerPresent,
	}, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}

// textArray keeps NOT NULL array columns from receiving a nil slice.
func textArray(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
