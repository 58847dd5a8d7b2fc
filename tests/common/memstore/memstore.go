//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for use case tests.
// Within runs one transaction at a time and rolls back on error, and the
// booking overlap rule is enforced the way the exclusion constraint does it.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"carhire-booking/internal/domain/agreement"
	"carhire-booking/internal/domain/booking"
	"carhire-booking/internal/domain/inspection"
	"carhire-booking/internal/domain/notification"
	"carhire-booking/internal/domain/payment"
	"carhire-booking/internal/infra"
	"carhire-booking/internal/pkg/clock"
	"carhire-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const overlapConstraint = "bookings_no_overlap"

type idempotencyKey struct {
	key    uuid.UUID
	userID uuid.UUID
}

type PaymentEventRow struct {
	EventID    string
	Type       payment.EventType
	BookingID  *uuid.UUID
	Outcome    payment.Outcome
	ReceivedAt time.Time
}

type state struct {
	vehicles      map[uuid.UUID]shared.VehicleSnapshot
	bookings      map[uuid.UUID]*booking.Booking
	agreements    map[uuid.UUID]*agreement.Agreement
	inspections   []*inspection.Inspection
	idempotency   map[idempotencyKey]shared.IdempotencyRecord
	paymentEvents map[string]PaymentEventRow
	notifications map[uuid.UUID]*notification.Notification
}

// Stored entities are never mutated in place: every write stores a fresh
// clone, so a shallow copy of the maps is a consistent snapshot.
func (s *state) snapshot() *state {
	cp := &state{
		vehicles:      make(map[uuid.UUID]shared.VehicleSnapshot, len(s.vehicles)),
		bookings:      make(map[uuid.UUID]*booking.Booking, len(s.bookings)),
		agreements:    make(map[uuid.UUID]*agreement.Agreement, len(s.agreements)),
		inspections:   append([]*inspection.Inspection(nil), s.inspections...),
		idempotency:   make(map[idempotencyKey]shared.IdempotencyRecord, len(s.idempotency)),
		paymentEvents: make(map[string]PaymentEventRow, len(s.paymentEvents)),
		notifications: make(map[uuid.UUID]*notification.Notification, len(s.notifications)),
	}
	for k, v := range s.vehicles {
		cp.vehicles[k] = v
	}
	for k, v := range s.bookings {
		cp.bookings[k] = v
	}
	for k, v := range s.agreements {
		cp.agreements[k] = v
	}
	for k, v := range s.idempotency {
		cp.idempotency[k] = v
	}
	for k, v := range s.paymentEvents {
		cp.paymentEvents[k] = v
	}
	for k, v := range s.notifications {
		cp.notifications[k] = v
	}
	return cp
}

type Store struct {
	mu    sync.Mutex
	clock clock.Clock
	data  *state

	readErr  error
	writeErr error
}

func New(clk clock.Clock) *Store {
	return &Store{
		clock: clk,
		data: &state{
			vehicles:      map[uuid.UUID]shared.VehicleSnapshot{},
			bookings:      map[uuid.UUID]*booking.Booking{},
			agreements:    map[uuid.UUID]*agreement.Agreement{},
			idempotency:   map[idempotencyKey]shared.IdempotencyRecord{},
			paymentEvents: map[string]PaymentEventRow{},
			notifications: map[uuid.UUID]*notification.Notification{},
		},
	}
}

// FailReads makes every availability and vehicle read return err until cleared with nil.
func (s *Store) FailReads(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readErr = err
}

// FailWrites makes every booking write return err until cleared with nil.
func (s *Store) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}

func (s *Store) AddVehicle(v shared.VehicleSnapshot) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.Status == "" {
		v.Status = "available"
	}
	s.data.vehicles[v.ID] = v
	return v.ID
}

// PutBooking stores b as-is, bypassing the overlap check.
func (s *Store) PutBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.bookings[b.ID()] = cloneBooking(b)
}

func (s *Store) PutAgreement(a *agreement.Agreement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.agreements[a.ID()] = cloneAgreement(a)
}

func (s *Store) Booking(id uuid.UUID) (*booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.data.bookings[id]
	if !ok {
		return nil, false
	}
	return cloneBooking(b), true
}

func (s *Store) BookingsFor(vehicleID uuid.UUID) []*booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*booking.Booking
	for _, b := range s.data.bookings {
		if b.VehicleID() == vehicleID {
			out = append(out, cloneBooking(b))
		}
	}
	return out
}

func (s *Store) AgreementFor(bookingID uuid.UUID) (*agreement.Agreement, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.data.agreementByBooking(bookingID)
	if a == nil {
		return nil, false
	}
	return cloneAgreement(a), true
}

func (s *Store) PaymentEvents() []PaymentEventRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]PaymentEventRow, 0, len(s.data.paymentEvents))
	for _, e := range s.data.paymentEvents {
		out = append(out, e)
	}
	return out
}

func (s *Store) IdempotencyRecord(key, userID uuid.UUID) (shared.IdempotencyRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.data.idempotency[idempotencyKey{key: key, userID: userID}]
	return rec, ok
}

// Notifications returns the inbox of userID, oldest first.
func (s *Store) Notification(id uuid.UUID) (*notification.Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.data.notifications[id]
	return n, ok
}

func (s *Store) Notifications(userID uuid.UUID) []*notification.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*notification.Notification
	for _, n := range s.data.notifications {
		if n.UserID() == userID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	return out
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	working := s.data.snapshot()
	if err := fn(ctx, &memTx{store: s, data: working}); err != nil {
		return err
	}
	s.data = working
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &lockedReads{store: s}
}

// NotificationRepository satisfies commands.NotificationRepository.
func (s *Store) NotificationRepository() *NotificationRepository {
	return &NotificationRepository{store: s}
}

type memTx struct {
	store *Store
	data  *state
}

func (t *memTx) Bookings() shared.BookingRepository           { return &bookingRepo{tx: t} }
func (t *memTx) Agreements() shared.AgreementRepository       { return &agreementRepo{tx: t} }
func (t *memTx) Inspections() shared.InspectionRepository     { return &inspectionRepo{tx: t} }
func (t *memTx) Idempotency() shared.IdempotencyRepository    { return &idempotencyRepo{tx: t} }
func (t *memTx) PaymentEvents() shared.PaymentEventRepository { return &paymentEventRepo{tx: t} }
func (t *memTx) Reads() shared.CommandReads                   { return &reads{store: t.store, data: t.data} }

type bookingRepo struct{ tx *memTx }

func (r *bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if err := r.tx.store.writeErr; err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	if r.tx.data.overlaps(b.VehicleID(), b.Dates(), b.ID()) {
		return exclusionViolation("failed to create booking")
	}
	r.tx.data.bookings[b.ID()] = cloneBooking(b)
	return nil
}

func (r *bookingRepo) Get(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.tx.data.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return cloneBooking(b), nil
}

func (r *bookingRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.Get(ctx, id)
}

func (r *bookingRepo) GetByPaymentIntentForUpdate(_ context.Context, paymentIntentID string) (*booking.Booking, error) {
	for _, b := range r.tx.data.bookings {
		if pi := b.StripePaymentIntent(); pi != nil && *pi == paymentIntentID {
			return cloneBooking(b), nil
		}
	}
	return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
}

func (r *bookingRepo) UpdateStatus(_ context.Context, u shared.BookingStatusUpdate) error {
	if err := r.tx.store.writeErr; err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	b, ok := r.tx.data.bookings[u.ID]
	if !ok || b.Status() != u.From {
		return infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindStaleState)
	}
	if !u.From.BlocksAvailability() && u.To.BlocksAvailability() && r.tx.data.overlaps(b.VehicleID(), b.Dates(), b.ID()) {
		return exclusionViolation("failed to update booking status")
	}
	p := paramsOf(b)
	p.Status = u.To
	p.StatusReason = u.Reason
	p.UpdatedAt = u.At
	r.tx.data.bookings[u.ID] = booking.Reconstruct(p)
	return nil
}

func (r *bookingRepo) UpdatePayment(_ context.Context, u shared.BookingPaymentUpdate) error {
	b, ok := r.tx.data.bookings[u.ID]
	if !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	p := paramsOf(b)
	p.PaymentStatus = u.PaymentStatus
	if u.SessionID != "" {
		session := u.SessionID
		p.StripeSessionID = &session
	}
	if u.PaymentIntentID != "" {
		intent := u.PaymentIntentID
		p.StripePaymentIntent = &intent
	}
	p.UpdatedAt = u.At
	r.tx.data.bookings[u.ID] = booking.Reconstruct(p)
	return nil
}

func (r *bookingRepo) UpdateDates(_ context.Context, u shared.BookingDatesUpdate) error {
	b, ok := r.tx.data.bookings[u.ID]
	if !ok || b.Status() != u.ExpectedStatus {
		return infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindStaleState)
	}
	if b.Status().BlocksAvailability() && r.tx.data.overlaps(b.VehicleID(), u.Dates, b.ID()) {
		return exclusionViolation("failed to update booking dates")
	}
	p := paramsOf(b)
	p.Dates = u.Dates
	p.UpdatedAt = u.At
	r.tx.data.bookings[u.ID] = booking.Reconstruct(p)
	return nil
}

type agreementRepo struct{ tx *memTx }

func (r *agreementRepo) CreateDraft(_ context.Context, a *agreement.Agreement) (bool, error) {
	if r.tx.data.agreementByBooking(a.BookingID()) != nil {
		return false, nil
	}
	r.tx.data.agreements[a.ID()] = cloneAgreement(a)
	return true, nil
}

func (r *agreementRepo) Get(_ context.Context, id uuid.UUID) (*agreement.Agreement, error) {
	a, ok := r.tx.data.agreements[id]
	if !ok {
		return nil, infra.WrapRepoErr("agreement not found", nil, infra.KindNotFound)
	}
	return cloneAgreement(a), nil
}

func (r *agreementRepo) GetByBooking(_ context.Context, bookingID uuid.UUID) (*agreement.Agreement, error) {
	a := r.tx.data.agreementByBooking(bookingID)
	if a == nil {
		return nil, infra.WrapRepoErr("agreement not found", nil, infra.KindNotFound)
	}
	return cloneAgreement(a), nil
}

func (r *agreementRepo) Update(_ context.Context, a *agreement.Agreement, expected agreement.Status) error {
	stored, ok := r.tx.data.agreements[a.ID()]
	if !ok || stored.Status() != expected {
		return infra.WrapRepoErr("agreement changed concurrently", nil, infra.KindStaleState)
	}
	r.tx.data.agreements[a.ID()] = cloneAgreement(a)
	return nil
}

type inspectionRepo struct{ tx *memTx }

func (r *inspectionRepo) Create(_ context.Context, i *inspection.Inspection) error {
	r.tx.data.inspections = append(r.tx.data.inspections, i)
	return nil
}

func (r *inspectionRepo) Latest(_ context.Context, bookingID uuid.UUID, t inspection.Type) (*inspection.Inspection, error) {
	var latest *inspection.Inspection
	for _, i := range r.tx.data.inspections {
		if i.BookingID() != bookingID || i.Type() != t {
			continue
		}
		if latest == nil || !i.CreatedAt().Before(latest.CreatedAt()) {
			latest = i
		}
	}
	if latest == nil {
		return nil, infra.WrapRepoErr("inspection not found", nil, infra.KindNotFound)
	}
	return latest, nil
}

func (r *inspectionRepo) Exists(ctx context.Context, bookingID uuid.UUID, t inspection.Type) (bool, error) {
	_, err := r.Latest(ctx, bookingID, t)
	if infra.IsKind(err, infra.KindNotFound) {
		return false, nil
	}
	return err == nil, err
}

type idempotencyRepo struct{ tx *memTx }

func (r *idempotencyRepo) TryInsert(_ context.Context, key, userID uuid.UUID, _ string, requestHash string, expiresAt time.Time) (bool, error) {
	k := idempotencyKey{key: key, userID: userID}
	if existing, ok := r.tx.data.idempotency[k]; ok && !existing.ExpiresAt.Before(r.tx.store.clock.Now()) {
		return false, nil
	}
	r.tx.data.idempotency[k] = shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Status:      shared.IdempotencyProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r *idempotencyRepo) MarkCompleted(_ context.Context, key, userID, bookingID uuid.UUID) error {
	k := idempotencyKey{key: key, userID: userID}
	rec, ok := r.tx.data.idempotency[k]
	if !ok {
		return nil
	}
	rec.Status = shared.IdempotencyCompleted
	rec.ResultBookingID = &bookingID
	r.tx.data.idempotency[k] = rec
	return nil
}

func (r *idempotencyRepo) Release(_ context.Context, key, userID uuid.UUID) error {
	k := idempotencyKey{key: key, userID: userID}
	if rec, ok := r.tx.data.idempotency[k]; ok && rec.Status == shared.IdempotencyProcessing {
		delete(r.tx.data.idempotency, k)
	}
	return nil
}

func (r *idempotencyRepo) DeleteExpired(_ context.Context) (int64, error) {
	var n int64
	now := r.tx.store.clock.Now()
	for k, rec := range r.tx.data.idempotency {
		if rec.ExpiresAt.Before(now) {
			delete(r.tx.data.idempotency, k)
			n++
		}
	}
	return n, nil
}

type paymentEventRepo struct{ tx *memTx }

func (r *paymentEventRepo) Record(_ context.Context, ev payment.Event, bookingID *uuid.UUID, outcome payment.Outcome) (bool, error) {
	if _, ok := r.tx.data.paymentEvents[ev.ID]; ok {
		return false, nil
	}
	r.tx.data.paymentEvents[ev.ID] = PaymentEventRow{
		EventID:    ev.ID,
		Type:       ev.Type,
		BookingID:  bookingID,
		Outcome:    outcome,
		ReceivedAt: r.tx.store.clock.Now(),
	}
	return true, nil
}

func (r *paymentEventRepo) DeleteBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var n int64
	for id, e := range r.tx.data.paymentEvents {
		if e.ReceivedAt.Before(cutoff) {
			delete(r.tx.data.paymentEvents, id)
			n++
		}
	}
	return n, nil
}

// reads runs against a transaction's working state. The caller holds the lock.
type reads struct {
	store *Store
	data  *state
}

func (r *reads) VehicleByID(_ context.Context, id uuid.UUID) (*shared.VehicleSnapshot, error) {
	if err := r.store.readErr; err != nil {
		return nil, infra.WrapRepoErr("failed to get vehicle", err)
	}
	v, ok := r.data.vehicles[id]
	if !ok {
		return nil, infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return &v, nil
}

func (r *reads) BlockingBookings(_ context.Context, vehicleID uuid.UUID, dates booking.DateRange, exclude *uuid.UUID) ([]shared.BlockingBooking, error) {
	if err := r.store.readErr; err != nil {
		return nil, infra.WrapRepoErr("failed to list blocking bookings", err)
	}
	out := []shared.BlockingBooking{}
	for _, b := range r.data.bookings {
		if b.VehicleID() != vehicleID || !b.Status().BlocksAvailability() || !b.Dates().Overlaps(dates) {
			continue
		}
		if exclude != nil && b.ID() == *exclude {
			continue
		}
		out = append(out, shared.BlockingBooking{ID: b.ID(), Dates: b.Dates(), Status: b.Status()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Dates.Start().Before(out[j].Dates.Start()) })
	return out, nil
}

func (r *reads) VehiclesFreeBetween(_ context.Context, dates booking.DateRange) ([]*shared.VehicleSnapshot, error) {
	if err := r.store.readErr; err != nil {
		return nil, infra.WrapRepoErr("failed to list free vehicles", err)
	}
	out := []*shared.VehicleSnapshot{}
	for id, v := range r.data.vehicles {
		if v.Status != "available" || r.data.overlaps(id, dates, uuid.Nil) {
			continue
		}
		v := v
		out = append(out, &v)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DailyRateCents != out[j].DailyRateCents {
			return out[i].DailyRateCents < out[j].DailyRateCents
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *reads) IdempotencyByKey(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.data.idempotency[idempotencyKey{key: key, userID: userID}]
	if !ok {
		return nil, infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return &rec, nil
}

// lockedReads serves UnitOfWork.CommandReads outside any transaction.
type lockedReads struct {
	store *Store
}

func (r *lockedReads) inner() *reads {
	return &reads{store: r.store, data: r.store.data}
}

func (r *lockedReads) VehicleByID(ctx context.Context, id uuid.UUID) (*shared.VehicleSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.inner().VehicleByID(ctx, id)
}

func (r *lockedReads) BlockingBookings(ctx context.Context, vehicleID uuid.UUID, dates booking.DateRange, exclude *uuid.UUID) ([]shared.BlockingBooking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.inner().BlockingBookings(ctx, vehicleID, dates, exclude)
}

func (r *lockedReads) VehiclesFreeBetween(ctx context.Context, dates booking.DateRange) ([]*shared.VehicleSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.inner().VehiclesFreeBetween(ctx, dates)
}

func (r *lockedReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.inner().IdempotencyByKey(ctx, key, userID)
}

// NotificationRepository writes straight to the store, outside any transaction.
type NotificationRepository struct {
	store *Store
}

func (r *NotificationRepository) Create(_ context.Context, n *notification.Notification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.data.notifications[n.ID()] = n
	return nil
}

func (r *NotificationRepository) MarkRead(_ context.Context, userID, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	n, ok := r.store.data.notifications[id]
	if !ok || n.UserID() != userID {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	r.store.data.notifications[id] = markRead(n, r.store.clock.Now())
	return nil
}

func (r *NotificationRepository) MarkAllRead(_ context.Context, userID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for id, n := range r.store.data.notifications {
		if n.UserID() == userID && !n.IsRead() {
			r.store.data.notifications[id] = markRead(n, r.store.clock.Now())
			count++
		}
	}
	return count, nil
}

func (r *NotificationRepository) Delete(_ context.Context, userID, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	n, ok := r.store.data.notifications[id]
	if !ok || n.UserID() != userID {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	delete(r.store.data.notifications, id)
	return nil
}

func (s *state) overlaps(vehicleID uuid.UUID, dates booking.DateRange, self uuid.UUID) bool {
	for _, b := range s.bookings {
		if b.ID() == self || b.VehicleID() != vehicleID || !b.Status().BlocksAvailability() {
			continue
		}
		if b.Dates().Overlaps(dates) {
			return true
		}
	}
	return false
}

func (s *state) agreementByBooking(bookingID uuid.UUID) *agreement.Agreement {
	for _, a := range s.agreements {
		if a.BookingID() == bookingID {
			return a
		}
	}
	return nil
}

func exclusionViolation(msg string) error {
	return infra.WrapRepoErr(msg, &pgconn.PgError{
		Code:           "23P01",
		Message:        "conflicting key value violates exclusion constraint \"" + overlapConstraint + "\"",
		ConstraintName: overlapConstraint,
	})
}

func paramsOf(b *booking.Booking) booking.ReconstructParams {
	return booking.ReconstructParams{
		ID:                  b.ID(),
		Reference:           b.Reference(),
		VehicleID:           b.VehicleID(),
		Customer:            b.Customer(),
		PickupLocation:      b.PickupLocation(),
		DropoffLocation:     b.DropoffLocation(),
		Dates:               b.Dates(),
		PickupTime:          b.PickupTime(),
		DropoffTime:         b.DropoffTime(),
		TotalCents:          b.Total().Cents(),
		Status:              b.Status(),
		PaymentStatus:       b.PaymentStatus(),
		Type:                b.Type(),
		StatusReason:        b.StatusReason(),
		StripeSessionID:     b.StripeSessionID(),
		StripePaymentIntent: b.StripePaymentIntent(),
		CreatedAt:           b.CreatedAt(),
		UpdatedAt:           b.UpdatedAt(),
	}
}

func cloneBooking(b *booking.Booking) *booking.Booking {
	return booking.Reconstruct(paramsOf(b))
}

func cloneAgreement(a *agreement.Agreement) *agreement.Agreement {
	return agreement.Reconstruct(agreement.ReconstructParams{
		ID:           a.ID(),
		BookingID:    a.BookingID(),
		Status:       a.Status(),
		Text:         a.Text(),
		Registration: a.Registration(),
		UnsignedURL:  a.UnsignedURL(),
		SignedURL:    a.SignedURL(),
		Signature:    a.Signature(),
		SignerName:   a.SignerName(),
		SignedAt:     a.SignedAt(),
		FuelLevel:    a.FuelLevel(),
		Odometer:     a.Odometer(),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	})
}

func markRead(n *notification.Notification, now time.Time) *notification.Notification {
	return notification.Reconstruct(n.ID(), n.UserID(), n.Category(), n.Title(), n.Message(), n.Link(), true, n.CreatedAt(), now)
}
