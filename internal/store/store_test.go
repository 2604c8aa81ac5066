package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"hrdash/internal/domain/core"
	"hrdash/internal/domain/leave"
	"hrdash/internal/domain/payroll"
	"hrdash/internal/domain/recruitment"
	"hrdash/internal/domain/tasks"
	"hrdash/internal/domain/timetracker"
	"hrdash/internal/platform/events"
)

var fixedNow = time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)

func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestStore(t *testing.T, ds Dataset) *Store {
	t.Helper()
	s := New(
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(sequentialIDs()),
		WithAvatarGenerator(func() string { return "avatar.png" }),
	)
	if err := s.Load(ds); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOperationsBeforeLoadFail(t *testing.T) {
	s := New()

	if _, err := s.Employees(); !errors.Is(err, ErrStoreNotInitialized) {
		t.Fatalf("expected ErrStoreNotInitialized, got %v", err)
	}
	if _, err := s.SearchApplicants(""); !errors.Is(err, ErrStoreNotInitialized) {
		t.Fatalf("expected ErrStoreNotInitialized, got %v", err)
	}
	if err := s.DeleteApplicant("A1"); !errors.Is(err, ErrStoreNotInitialized) {
		t.Fatalf("expected ErrStoreNotInitialized, got %v", err)
	}
	if _, err := s.CreateTask("x", 1); !errors.Is(err, ErrStoreNotInitialized) {
		t.Fatalf("expected ErrStoreNotInitialized, got %v", err)
	}
	if s.Initialized() {
		t.Fatal("expected store to report uninitialized")
	}
}

func TestLoadTwiceFails(t *testing.T) {
	s := newTestStore(t, Dataset{})
	if err := s.Load(Dataset{}); !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("expected ErrAlreadyInitialized, got %v", err)
	}
}

func TestClosedStoreRejectsAccess(t *testing.T) {
	s := newTestStore(t, Dataset{})
	if err := s.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second close failed: %v", err)
	}

	_, err := s.Tasks()
	if !errors.Is(err, ErrStoreClosed) || !errors.Is(err, ErrStoreNotInitialized) {
		t.Fatalf("expected closed store error, got %v", err)
	}
	if err := s.Load(Dataset{}); !errors.Is(err, ErrStoreClosed) {
		t.Fatalf("expected ErrStoreClosed on reload, got %v", err)
	}
}

func TestLoadCopiesDataset(t *testing.T) {
	ds := Dataset{Employees: []core.Employee{{ID: "E1", FirstName: "Ada"}}}
	s := newTestStore(t, ds)
	ds.Employees[0].FirstName = "Changed"

	employees, err := s.Employees()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if employees[0].FirstName != "Ada" {
		t.Fatalf("expected store to keep its own copy, got %q", employees[0].FirstName)
	}
}

func TestEmptyCollectionsReadAsEmpty(t *testing.T) {
	s := newTestStore(t, Dataset{})
	applicants, err := s.SearchApplicants("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if applicants == nil || len(applicants) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", applicants)
	}
}

func TestCreateEmployeePrependsWithIDAndAvatar(t *testing.T) {
	s := newTestStore(t, Dataset{Employees: []core.Employee{{ID: "E1", FirstName: "Old"}}})

	emp, err := s.CreateEmployee(core.EmployeeInput{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada@example.com",
		Role:       "Engineer",
		Department: "Engineering",
		Status:     core.EmployeeStatusActive,
		JoinDate:   fixedNow,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if emp.ID != "id-1" || emp.Avatar != "avatar.png" {
		t.Fatalf("expected stamped id and avatar, got %+v", emp)
	}

	employees, _ := s.Employees()
	if len(employees) != 2 || employees[0].ID != emp.ID || employees[1].ID != "E1" {
		t.Fatalf("expected new employee first, got %+v", employees)
	}

	got, found, err := s.Employee(emp.ID)
	if err != nil || !found || got.Email != "ada@example.com" {
		t.Fatalf("expected lookup to find employee, got %+v found=%v err=%v", got, found, err)
	}
}

func TestSearchEmployees(t *testing.T) {
	s := newTestStore(t, Dataset{Employees: []core.Employee{
		{ID: "E1", FirstName: "Ada", LastName: "Lovelace", Role: "Engineer"},
		{ID: "E2", FirstName: "Grace", LastName: "Hopper", Role: "Admiral"},
	}})

	got, err := s.SearchEmployees("ENGIN")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "E1" {
		t.Fatalf("expected E1, got %+v", got)
	}

	all, _ := s.SearchEmployees("")
	if len(all) != 2 || all[0].ID != "E1" || all[1].ID != "E2" {
		t.Fatalf("expected unfiltered order, got %+v", all)
	}
}

func TestApplicantStageThenDeleteScenario(t *testing.T) {
	s := newTestStore(t, Dataset{Applicants: []recruitment.Applicant{
		{ID: "A1", Name: "Jon Baker", Role: "UIUX Designer", Stage: recruitment.StageApplied, Email: "jon@example.com"},
	}})
	before, _, _ := s.Applicant("A1")

	if err := s.UpdateApplicantStage("A1", recruitment.StageHired); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after, found, err := s.Applicant("A1")
	if err != nil || !found {
		t.Fatalf("expected applicant, found=%v err=%v", found, err)
	}
	if after.Stage != recruitment.StageHired {
		t.Fatalf("expected Hired, got %q", after.Stage)
	}
	after.Stage = before.Stage
	if after.Name != before.Name || after.Role != before.Role || after.Email != before.Email {
		t.Fatalf("expected only stage to change, before=%+v after=%+v", before, after)
	}

	if err := s.DeleteApplicant("A1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	remaining, _ := s.SearchApplicants("")
	if len(remaining) != 0 {
		t.Fatalf("expected no applicants, got %+v", remaining)
	}
}

func TestDeleteApplicantIsIdempotent(t *testing.T) {
	s := newTestStore(t, Dataset{Applicants: []recruitment.Applicant{
		{ID: "A1", Name: "Jon"},
		{ID: "A2", Name: "Floyd"},
	}})

	if err := s.DeleteApplicant("A1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.DeleteApplicant("A1"); err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}
	if err := s.DeleteApplicant("missing"); err != nil {
		t.Fatalf("missing id should be a no-op, got %v", err)
	}

	remaining, _ := s.SearchApplicants("")
	if len(remaining) != 1 || remaining[0].ID != "A2" {
		t.Fatalf("expected only A2, got %+v", remaining)
	}
}

func TestUpdateApplicantStageIdempotentAndUnrestricted(t *testing.T) {
	s := newTestStore(t, Dataset{Applicants: []recruitment.Applicant{{ID: "A1", Stage: recruitment.StageHired}}})

	if err := s.UpdateApplicantStage("A1", recruitment.StageApplied); err != nil {
		t.Fatalf("expected reopen from Hired to be allowed, got %v", err)
	}
	if err := s.UpdateApplicantStage("A1", recruitment.StageOffer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	once, _ := s.Applicants()
	if err := s.UpdateApplicantStage("A1", recruitment.StageOffer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, _ := s.Applicants()
	if once[0].Stage != twice[0].Stage || twice[0].Stage != recruitment.StageOffer {
		t.Fatalf("expected idempotent stage update, got %q then %q", once[0].Stage, twice[0].Stage)
	}

	if err := s.UpdateApplicantStage("missing", recruitment.StageHired); err != nil {
		t.Fatalf("missing id should be a no-op, got %v", err)
	}
	if err := s.UpdateApplicantStage("A1", recruitment.Stage("Rejected")); !errors.Is(err, recruitment.ErrInvalidStage) {
		t.Fatalf("expected ErrInvalidStage, got %v", err)
	}
}

func TestApplicantReadsAreCopies(t *testing.T) {
	s := newTestStore(t, Dataset{Applicants: []recruitment.Applicant{
		{ID: "A1", Skills: []recruitment.Skill{{Name: "UI", Score: 90}}},
	}})
	got, _ := s.Applicants()
	got[0].Skills[0].Score = 1

	again, _ := s.Applicants()
	if again[0].Skills[0].Score != 90 {
		t.Fatal("expected callers not to share applicant slices with the store")
	}
}

func TestCreatePayrollEntryScenario(t *testing.T) {
	s := newTestStore(t, Dataset{})
	entry, err := s.CreatePayrollEntry(payroll.Input{
		EmployeeID: "E1",
		Month:      fixedNow,
		BaseSalary: 5000,
		Overtime:   200,
		Deductions: 300,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.NetPay != 4900 {
		t.Fatalf("expected net pay 4900, got %v", entry.NetPay)
	}
	if entry.Status != payroll.StatusPending {
		t.Fatalf("expected Pending, got %q", entry.Status)
	}

	entries, _ := s.PayrollEntries()
	if len(entries) != 1 || entries[0].ID != entry.ID {
		t.Fatalf("expected entry stored, got %+v", entries)
	}
}

func TestCreatePayrollEntryIsPermissive(t *testing.T) {
	s := newTestStore(t, Dataset{})
	entry, err := s.CreatePayrollEntry(payroll.Input{EmployeeID: "nobody", BaseSalary: -10, Overtime: -5, Deductions: -1})
	if err != nil {
		t.Fatalf("expected permissive create, got %v", err)
	}
	if entry.NetPay != -14 {
		t.Fatalf("expected net pay -14, got %v", entry.NetPay)
	}
}

func TestPayrollRowAndSearch(t *testing.T) {
	s := newTestStore(t, Dataset{
		Employees: []core.Employee{{ID: "E1", FirstName: "Ada", LastName: "Lovelace"}},
		Payroll:   []payroll.Entry{{ID: "P1", EmployeeID: "E1", NetPay: 10}},
	})

	row, err := s.PayrollRow("P1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.EmployeeName != "Ada Lovelace" {
		t.Fatalf("expected joined name, got %q", row.EmployeeName)
	}
	if _, err := s.PayrollRow("missing"); !errors.Is(err, payroll.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}

	rows, _ := s.SearchPayroll("love")
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	rows, _ = s.SearchPayroll("zzz")
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

func TestCreateTaskDueDate(t *testing.T) {
	s := newTestStore(t, Dataset{Tasks: []tasks.Task{{ID: "T0", Title: "seed"}}})
	task, err := s.CreateTask("Prepare onboarding", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !task.DueDate.Equal(fixedNow.AddDate(0, 0, 2)) {
		t.Fatalf("expected due %v, got %v", fixedNow.AddDate(0, 0, 2), task.DueDate)
	}
	if task.Status != tasks.StatusPending {
		t.Fatalf("expected Pending, got %q", task.Status)
	}
	list, _ := s.Tasks()
	if list[0].ID != task.ID || list[1].ID != "T0" {
		t.Fatalf("expected new task first, got %+v", list)
	}
}

func TestCreateDayOffRequestIsPending(t *testing.T) {
	s := newTestStore(t, Dataset{})
	req, err := s.CreateDayOffRequest(leave.DayOffInput{
		EmployeeID: "E1",
		Type:       leave.TypeRemote,
		StartDate:  fixedNow,
		EndDate:    fixedNow.AddDate(0, 0, 1),
		Reason:     "home office",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Status != leave.StatusPending || req.ID == "" {
		t.Fatalf("expected pending request with id, got %+v", req)
	}
}

func TestDayOffDecisions(t *testing.T) {
	s := newTestStore(t, Dataset{DayOffRequests: []leave.DayOffRequest{
		{ID: "D1", Status: leave.StatusPending},
		{ID: "D2", Status: leave.StatusPending},
	}})

	approved, err := s.ApproveDayOffRequest("D1")
	if err != nil || approved.Status != leave.StatusApproved {
		t.Fatalf("expected approval, got %+v err=%v", approved, err)
	}
	again, err := s.ApproveDayOffRequest("D1")
	if err != nil || again.Status != leave.StatusApproved {
		t.Fatalf("expected idempotent approval, got %+v err=%v", again, err)
	}
	if _, err := s.RejectDayOffRequest("D1"); !errors.Is(err, leave.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if _, err := s.RejectDayOffRequest("missing"); !errors.Is(err, leave.ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}

	rejected, err := s.RejectDayOffRequest("D2")
	if err != nil || rejected.Status != leave.StatusRejected {
		t.Fatalf("expected rejection, got %+v err=%v", rejected, err)
	}

	list, _ := s.DayOffRequests()
	if list[0].Status != leave.StatusApproved || list[1].Status != leave.StatusRejected {
		t.Fatalf("unexpected stored statuses %+v", list)
	}
}

func TestCreateTimeTrackerEntryKeepsDurationText(t *testing.T) {
	s := newTestStore(t, Dataset{TimeTrackers: []timetracker.Entry{{ID: "T0", Status: timetracker.StatusCompleted}}})
	end := fixedNow.Add(time.Hour)
	entry, err := s.CreateTimeTrackerEntry(timetracker.Input{
		EmployeeID: "E1",
		Project:    "Mobile App",
		Task:       "compile driver",
		StartTime:  fixedNow,
		EndTime:    &end,
		Duration:   "4h 30m",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Status != timetracker.StatusRunning || entry.Duration != "4h 30m" {
		t.Fatalf("unexpected entry %+v", entry)
	}

	running, _ := s.TimeTrackerEntriesByStatus(timetracker.StatusRunning)
	if len(running) != 1 || running[0].ID != entry.ID {
		t.Fatalf("expected one running entry, got %+v", running)
	}
	completed, _ := s.TimeTrackerEntriesByStatus(timetracker.StatusCompleted)
	if len(completed) != 1 || completed[0].ID != "T0" {
		t.Fatalf("expected one completed entry, got %+v", completed)
	}
}

func TestAttendanceOn(t *testing.T) {
	s := newTestStore(t, Dataset{Attendance: []core.AttendanceRecord{
		{ID: "A1", EmployeeID: "E1", Date: fixedNow},
		{ID: "A2", EmployeeID: "E1", Date: fixedNow.AddDate(0, 0, -1)},
	}})
	today, err := s.AttendanceOn(s.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(today) != 1 || today[0].ID != "A1" {
		t.Fatalf("expected only A1, got %+v", today)
	}
}

func TestMutationsPublishFullCollection(t *testing.T) {
	s := newTestStore(t, Dataset{Applicants: []recruitment.Applicant{{ID: "A1"}, {ID: "A2"}}})

	var received []events.Event
	unsubscribe := s.Subscribe(events.ObserverFunc(func(e events.Event) {
		received = append(received, e)
	}))

	if err := s.DeleteApplicant("A1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.CreateTask("t", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	unsubscribe()
	if _, err := s.CreateTask("ignored", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	first := received[0]
	if first.Collection != events.CollectionApplicants || first.Action != events.ActionDelete || first.RecordID != "A1" {
		t.Fatalf("unexpected first event %+v", first)
	}
	snapshot, ok := first.Snapshot.([]recruitment.Applicant)
	if !ok || len(snapshot) != 1 || snapshot[0].ID != "A2" {
		t.Fatalf("expected applicant snapshot without A1, got %#v", first.Snapshot)
	}
	if !first.At.Equal(fixedNow) {
		t.Fatalf("expected event time from store clock, got %v", first.At)
	}
	if received[1].Collection != events.CollectionTasks {
		t.Fatalf("expected tasks event, got %+v", received[1])
	}
}

func TestFailedMutationDoesNotPublish(t *testing.T) {
	s := newTestStore(t, Dataset{})
	calls := 0
	s.Subscribe(events.ObserverFunc(func(events.Event) { calls++ }))
	if _, err := s.ApproveDayOffRequest("missing"); err == nil {
		t.Fatal("expected error")
	}
	if calls != 0 {
		t.Fatalf("expected no events, got %d", calls)
	}
}

func TestObserverMayReadStore(t *testing.T) {
	s := newTestStore(t, Dataset{})
	var seen int
	s.Subscribe(events.ObserverFunc(func(events.Event) {
		list, err := s.Tasks()
		if err != nil {
			t.Errorf("observer read failed: %v", err)
			return
		}
		seen = len(list)
	}))
	if _, err := s.CreateTask("a", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != 1 {
		t.Fatalf("expected observer to see 1 task, got %d", seen)
	}
}

func TestConcurrentMutationsPublishInOrder(t *testing.T) {
	s := New(WithClock(func() time.Time { return fixedNow }))
	if err := s.Load(Dataset{}); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	defer s.Close()

	var lengths []int
	s.Subscribe(events.ObserverFunc(func(e events.Event) {
		lengths = append(lengths, len(e.Snapshot.([]tasks.Task)))
	}))

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := s.CreateTask(fmt.Sprintf("task-%d", i), i); err != nil {
				t.Errorf("create failed: %v", err)
			}
			if _, err := s.SearchEmployees("x"); err != nil {
				t.Errorf("search failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if len(lengths) != writers {
		t.Fatalf("expected %d events, got %d", writers, len(lengths))
	}
	for i, n := range lengths {
		if n != i+1 {
			t.Fatalf("expected snapshot %d to hold %d tasks, got %d", i, i+1, n)
		}
	}
}
