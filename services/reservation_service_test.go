package services

import (
	"errors"
	"strings"
	"testing"

	"hotel-booking/models"
)

func defaultInput(t *testing.T, roomID uint, checkIn, checkOut string) CreateReservationInput {
	t.Helper()
	return CreateReservationInput{
		RoomID:         roomID,
		GuestName:      "Alice Smith",
		GuestEmail:     "alice@example.com",
		GuestPhone:     "+1-555-0100",
		CheckInDate:    mustDate(t, checkIn),
		CheckOutDate:   mustDate(t, checkOut),
		NumberOfGuests: 2,
	}
}

func TestCreateReservation(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Standard")
	room := seedRoom(t, db, rt.ID, roomFixture{Name: "Ocean View", Price: "120.00", Capacity: 2, Available: true})

	svc := NewReservationService(db)
	res, err := svc.Create(defaultInput(t, room.ID, "2026-03-01", "2026-03-04"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if res.Status != models.ReservationStatusConfirmed {
		t.Errorf("status = %q, want confirmed", res.Status)
	}
	if got := res.TotalPrice.StringFixed(2); got != "360.00" {
		t.Errorf("total = %s, want 360.00 (3 nights x 120.00)", got)
	}
	if len(res.ConfirmationCode) != 8 {
		t.Errorf("confirmation code %q, want 8 chars", res.ConfirmationCode)
	}
	if res.ConfirmationCode != strings.ToUpper(res.ConfirmationCode) {
		t.Errorf("confirmation code %q not uppercase", res.ConfirmationCode)
	}
}

func TestCreateReservationRejectsOverlap(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Standard")
	room := seedRoom(t, db, rt.ID, roomFixture{Name: "Ocean View", Price: "120.00", Capacity: 2, Available: true})
	seedReservation(t, db, room.ID, "2026-03-01", "2026-03-04", models.ReservationStatusConfirmed, "EXIST001")

	svc := NewReservationService(db)
	_, err := svc.Create(defaultInput(t, room.ID, "2026-03-03", "2026-03-05"))
	if !errors.Is(err, ErrRoomNotAvailable) {
		t.Fatalf("err = %v, want ErrRoomNotAvailable", err)
	}

	// the rejected submission must leave nothing behind
	var n int64
	if err := db.Model(&models.Reservation{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("reservation count = %d, want 1", n)
	}
}

func TestCreateReservationBackToBack(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Standard")
	room := seedRoom(t, db, rt.ID, roomFixture{Name: "Ocean View", Price: "120.00", Capacity: 2, Available: true})
	seedReservation(t, db, room.ID, "2026-03-01", "2026-03-04", models.ReservationStatusConfirmed, "EXIST001")

	svc := NewReservationService(db)

	// checkout day equals the next check-in day: no conflict
	if _, err := svc.Create(defaultInput(t, room.ID, "2026-03-04", "2026-03-06")); err != nil {
		t.Errorf("stay starting on checkout day: %v", err)
	}
	// and the mirror case, ending on an existing check-in day
	if _, err := svc.Create(defaultInput(t, room.ID, "2026-02-27", "2026-03-01")); err != nil {
		t.Errorf("stay ending on check-in day: %v", err)
	}
}

func TestCreateReservationIgnoresInactiveStays(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Standard")
	room := seedRoom(t, db, rt.ID, roomFixture{Name: "Ocean View", Price: "120.00", Capacity: 2, Available: true})
	seedReservation(t, db, room.ID, "2026-03-01", "2026-03-04", models.ReservationStatusCancelled, "CANC0001")
	seedReservation(t, db, room.ID, "2026-03-01", "2026-03-04", models.ReservationStatusCompleted, "COMP0001")

	svc := NewReservationService(db)
	if _, err := svc.Create(defaultInput(t, room.ID, "2026-03-02", "2026-03-03")); err != nil {
		t.Fatalf("cancelled/completed stays must not block: %v", err)
	}
}

func TestCreateReservationUnavailableRoom(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Standard")
	room := seedRoom(t, db, rt.ID, roomFixture{Name: "Closed Room", Price: "120.00", Capacity: 2, Available: false})

	svc := NewReservationService(db)
	_, err := svc.Create(defaultInput(t, room.ID, "2026-03-01", "2026-03-04"))
	if !errors.Is(err, ErrRoomNotAvailable) {
		t.Fatalf("err = %v, want ErrRoomNotAvailable for available=false", err)
	}
}

func TestCreateReservationInvalidDates(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Standard")
	room := seedRoom(t, db, rt.ID, roomFixture{Name: "Ocean View", Price: "120.00", Capacity: 2, Available: true})

	svc := NewReservationService(db)

	_, err := svc.Create(defaultInput(t, room.ID, "2026-03-04", "2026-03-04"))
	if !errors.Is(err, ErrInvalidDates) {
		t.Errorf("same-day stay: err = %v, want ErrInvalidDates", err)
	}
	_, err = svc.Create(defaultInput(t, room.ID, "2026-03-04", "2026-03-01"))
	if !errors.Is(err, ErrInvalidDates) {
		t.Errorf("reversed dates: err = %v, want ErrInvalidDates", err)
	}
}

func TestCreateReservationUnknownRoom(t *testing.T) {
	db := openTestDB(t)

	svc := NewReservationService(db)
	_, err := svc.Create(defaultInput(t, 999, "2026-03-01", "2026-03-04"))
	if !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("err = %v, want ErrRoomNotFound", err)
	}
}

func TestCreateReservationDefaultsGuests(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Standard")
	room := seedRoom(t, db, rt.ID, roomFixture{Name: "Ocean View", Price: "120.00", Capacity: 2, Available: true})

	svc := NewReservationService(db)
	in := defaultInput(t, room.ID, "2026-03-01", "2026-03-02")
	in.NumberOfGuests = 0
	res, err := svc.Create(in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if res.NumberOfGuests != 1 {
		t.Fatalf("numberOfGuests = %d, want 1", res.NumberOfGuests)
	}
}

func TestCreateReservationCodesDistinct(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Standard")
	room := seedRoom(t, db, rt.ID, roomFixture{Name: "Ocean View", Price: "120.00", Capacity: 2, Available: true})

	svc := NewReservationService(db)
	seen := make(map[string]struct{})
	checkIn := mustDate(t, "2026-01-01")
	for i := 0; i < 50; i++ {
		in := defaultInput(t, room.ID, "2026-01-01", "2026-01-02")
		in.CheckInDate = checkIn.AddDate(0, 0, i)
		in.CheckOutDate = checkIn.AddDate(0, 0, i+1)
		res, err := svc.Create(in)
		if err != nil {
			t.Fatalf("Create #%d: %v", i, err)
		}
		if _, dup := seen[res.ConfirmationCode]; dup {
			t.Fatalf("duplicate confirmation code %q", res.ConfirmationCode)
		}
		seen[res.ConfirmationCode] = struct{}{}
	}
}

func TestUpdateStatus(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Standard")
	room := seedRoom(t, db, rt.ID, roomFixture{Name: "Ocean View", Price: "120.00", Capacity: 2, Available: true})
	res := seedReservation(t, db, room.ID, "2026-03-01", "2026-03-04", models.ReservationStatusConfirmed, "EXIST001")

	svc := NewReservationService(db)

	updated, err := svc.UpdateStatus(res.ID, models.ReservationStatusCancelled)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != models.ReservationStatusCancelled {
		t.Errorf("status = %q, want cancelled", updated.Status)
	}
	if updated.ConfirmationCode != "EXIST001" {
		t.Errorf("confirmation code changed to %q", updated.ConfirmationCode)
	}

	// repeating the current status is a no-op, not a missing record
	again, err := svc.UpdateStatus(res.ID, models.ReservationStatusCancelled)
	if err != nil {
		t.Fatalf("same-status update: %v", err)
	}
	if again.Status != models.ReservationStatusCancelled {
		t.Errorf("status = %q after repeat, want cancelled", again.Status)
	}

	if _, err := svc.UpdateStatus(res.ID, "checked-in"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("unknown status: err = %v, want ErrInvalidStatus", err)
	}
	if _, err := svc.UpdateStatus(999, models.ReservationStatusCancelled); !errors.Is(err, ErrReservationNotFound) {
		t.Errorf("unknown id: err = %v, want ErrReservationNotFound", err)
	}
}

func TestDeleteReservation(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Standard")
	room := seedRoom(t, db, rt.ID, roomFixture{Name: "Ocean View", Price: "120.00", Capacity: 2, Available: true})
	res := seedReservation(t, db, room.ID, "2026-03-01", "2026-03-04", models.ReservationStatusConfirmed, "EXIST001")

	svc := NewReservationService(db)
	if err := svc.Delete(res.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(res.ID); !errors.Is(err, ErrReservationNotFound) {
		t.Fatalf("second delete: err = %v, want ErrReservationNotFound", err)
	}
}

func TestListReservationFilters(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Standard")
	roomA := seedRoom(t, db, rt.ID, roomFixture{Name: "Room A", Price: "120.00", Capacity: 2, Available: true})
	roomB := seedRoom(t, db, rt.ID, roomFixture{Name: "Room B", Price: "200.00", Capacity: 4, Available: true})

	seedReservation(t, db, roomA.ID, "2026-03-01", "2026-03-04", models.ReservationStatusConfirmed, "CODEAAA1")
	seedReservation(t, db, roomA.ID, "2026-04-01", "2026-04-04", models.ReservationStatusCancelled, "CODEAAA2")
	seedReservation(t, db, roomB.ID, "2026-03-01", "2026-03-04", models.ReservationStatusConfirmed, "CODEBBB1")

	svc := NewReservationService(db)

	byStatus, err := svc.List(ListFilters{Status: models.ReservationStatusCancelled})
	if err != nil {
		t.Fatalf("List by status: %v", err)
	}
	if len(byStatus) != 1 || byStatus[0].ConfirmationCode != "CODEAAA2" {
		t.Errorf("status filter returned %d rows", len(byStatus))
	}

	byRoom, err := svc.List(ListFilters{RoomID: &roomB.ID})
	if err != nil {
		t.Fatalf("List by room: %v", err)
	}
	if len(byRoom) != 1 || byRoom[0].ConfirmationCode != "CODEBBB1" {
		t.Errorf("room filter returned %d rows", len(byRoom))
	}

	// lookup code is normalized before matching
	byCode, err := svc.List(ListFilters{ConfirmationCode: " codeaaa1 "})
	if err != nil {
		t.Fatalf("List by code: %v", err)
	}
	if len(byCode) != 1 || byCode[0].ConfirmationCode != "CODEAAA1" {
		t.Errorf("code filter returned %d rows", len(byCode))
	}
}

func TestListByStayWindow(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Standard")
	room := seedRoom(t, db, rt.ID, roomFixture{Name: "Ocean View", Price: "120.00", Capacity: 2, Available: true})

	seedReservation(t, db, room.ID, "2026-02-15", "2026-02-18", models.ReservationStatusConfirmed, "FEB00001")
	seedReservation(t, db, room.ID, "2026-03-10", "2026-03-12", models.ReservationStatusConfirmed, "MAR00001")
	seedReservation(t, db, room.ID, "2026-03-20", "2026-03-22", models.ReservationStatusConfirmed, "MAR00002")

	svc := NewReservationService(db)
	list, err := svc.ListByStayWindow(mustDate(t, "2026-03-01"), mustDate(t, "2026-03-31"))
	if err != nil {
		t.Fatalf("ListByStayWindow: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d rows, want 2", len(list))
	}
	if list[0].ConfirmationCode != "MAR00001" || list[1].ConfirmationCode != "MAR00002" {
		t.Errorf("rows not ordered by check-in: %s, %s", list[0].ConfirmationCode, list[1].ConfirmationCode)
	}
}

func TestCompleteFinishedStays(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Standard")
	room := seedRoom(t, db, rt.ID, roomFixture{Name: "Ocean View", Price: "120.00", Capacity: 2, Available: true})

	past := seedReservation(t, db, room.ID, "2026-02-01", "2026-02-05", models.ReservationStatusConfirmed, "PAST0001")
	future := seedReservation(t, db, room.ID, "2026-04-01", "2026-04-05", models.ReservationStatusConfirmed, "FUTR0001")
	cancelled := seedReservation(t, db, room.ID, "2026-02-10", "2026-02-12", models.ReservationStatusCancelled, "CANC0001")

	svc := NewReservationService(db)
	n, err := svc.CompleteFinishedStays(mustDate(t, "2026-03-01"))
	if err != nil {
		t.Fatalf("CompleteFinishedStays: %v", err)
	}
	if n != 1 {
		t.Fatalf("updated %d rows, want 1", n)
	}

	check := func(id uint, want string) {
		var res models.Reservation
		if err := db.First(&res, id).Error; err != nil {
			t.Fatalf("reload %d: %v", id, err)
		}
		if res.Status != want {
			t.Errorf("reservation %d status = %q, want %q", id, res.Status, want)
		}
	}
	check(past.ID, models.ReservationStatusCompleted)
	check(future.ID, models.ReservationStatusConfirmed)
	check(cancelled.ID, models.ReservationStatusCancelled)
}
