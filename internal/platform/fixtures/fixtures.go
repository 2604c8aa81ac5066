// Package fixtures builds the demo dataset the dashboard starts with.
package fixtures

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"hrdash/internal/domain/core"
	"hrdash/internal/domain/leave"
	"hrdash/internal/domain/payroll"
	"hrdash/internal/domain/recruitment"
	"hrdash/internal/domain/tasks"
	"hrdash/internal/domain/timetracker"
	"hrdash/internal/store"
)

const (
	DefaultEmployees = 50
	attendanceDays   = 5
	dayOffRequests   = 8
	timeTrackers     = 10
)

type Config struct {
	// Seed fixes the generated data. Zero picks a time based seed.
	Seed      int64
	Employees int
	Now       time.Time
}

type generator struct {
	rng *rand.Rand
	src *rand.ChaCha8
	now time.Time
}

// Generate returns a full dataset. The same Config always yields the same
// records.
func Generate(cfg Config) store.Dataset {
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	if cfg.Seed == 0 {
		cfg.Seed = cfg.Now.UnixNano()
	}
	if cfg.Employees <= 0 {
		cfg.Employees = DefaultEmployees
	}

	var seed [32]byte
	binary.LittleEndian.PutUint64(seed[:8], uint64(cfg.Seed))
	src := rand.NewChaCha8(seed)
	g := &generator{rng: rand.New(src), src: src, now: cfg.Now}

	employees := g.employees(cfg.Employees)
	return store.Dataset{
		Employees:      employees,
		Attendance:     g.attendance(employees),
		Applicants:     Applicants(cfg.Now),
		Payroll:        g.payroll(employees),
		Tasks:          Tasks(cfg.Now),
		DayOffRequests: g.dayOffRequests(employees),
		TimeTrackers:   g.timeTrackers(employees),
	}
}

func (g *generator) id() string {
	id, err := uuid.NewRandomFromReader(g.src)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (g *generator) pick(values []string) string {
	return values[g.rng.IntN(len(values))]
}

// between returns an int in [lo, hi].
func (g *generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func (g *generator) employees(n int) []core.Employee {
	statuses := []core.EmployeeStatus{
		core.EmployeeStatusActive,
		core.EmployeeStatusActive,
		core.EmployeeStatusActive,
		core.EmployeeStatusInactive,
	}
	out := make([]core.Employee, 0, n)
	for i := 0; i < n; i++ {
		first := g.pick(firstNames)
		last := g.pick(lastNames)
		id := g.id()
		out = append(out, core.Employee{
			ID:         id,
			FirstName:  first,
			LastName:   last,
			Email:      fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), g.between(1, 99)),
			Role:       g.pick(jobTitles),
			Department: g.pick(core.Departments),
			Status:     statuses[g.rng.IntN(len(statuses))],
			JoinDate:   g.now.AddDate(0, 0, -g.between(1, 365)),
			Avatar:     "https://i.pravatar.cc/256?u=" + id,
		})
	}
	return out
}

func (g *generator) attendance(employees []core.Employee) []core.AttendanceRecord {
	out := make([]core.AttendanceRecord, 0, len(employees)*attendanceDays)
	for _, emp := range employees {
		for i := 0; i < attendanceDays; i++ {
			day := g.now.AddDate(0, 0, -i)
			late := g.rng.Float64() > 0.8
			hour := 8
			status := core.AttendanceOnTime
			if late {
				hour = 9
				status = core.AttendanceLate
			}
			out = append(out, core.AttendanceRecord{
				ID:         g.id(),
				EmployeeID: emp.ID,
				Date:       day,
				CheckIn:    atTime(day, hour, g.between(0, 59)),
				CheckOut:   atTime(day, 17, g.between(0, 30)),
				Status:     status,
			})
		}
	}
	return out
}

func (g *generator) payroll(employees []core.Employee) []payroll.Entry {
	statuses := []payroll.Status{payroll.StatusPaid, payroll.StatusPending}
	out := make([]payroll.Entry, 0, len(employees))
	for _, emp := range employees {
		out = append(out, payroll.NewEntry(g.id(), payroll.Input{
			EmployeeID: emp.ID,
			Month:      g.now,
			BaseSalary: float64(g.between(3000, 9000)),
			Overtime:   float64(g.between(0, 500)),
			Deductions: float64(g.between(100, 1000)),
			Status:     statuses[g.rng.IntN(len(statuses))],
		}))
	}
	return out
}

func (g *generator) dayOffRequests(employees []core.Employee) []leave.DayOffRequest {
	types := []leave.Type{leave.TypeSick, leave.TypeAnnual, leave.TypePersonal}
	statuses := []leave.Status{leave.StatusPending, leave.StatusApproved, leave.StatusRejected}
	out := make([]leave.DayOffRequest, 0, dayOffRequests)
	for _, emp := range head(employees, dayOffRequests) {
		start := g.now.AddDate(0, 0, g.between(1, 60))
		out = append(out, leave.DayOffRequest{
			ID:         g.id(),
			EmployeeID: emp.ID,
			Type:       types[g.rng.IntN(len(types))],
			StartDate:  start,
			EndDate:    start.AddDate(0, 0, g.between(0, 5)),
			Reason:     g.pick(reasons),
			Status:     statuses[g.rng.IntN(len(statuses))],
		})
	}
	return out
}

func (g *generator) timeTrackers(employees []core.Employee) []timetracker.Entry {
	out := make([]timetracker.Entry, 0, timeTrackers)
	for _, emp := range head(employees, timeTrackers) {
		out = append(out, timetracker.Entry{
			ID:         g.id(),
			EmployeeID: emp.ID,
			Project:    g.pick(timetracker.Projects),
			Task:       g.pick(verbs) + " " + g.pick(nouns),
			StartTime:  g.now.Add(-time.Duration(g.between(1, 48)) * time.Hour),
			Duration:   fmt.Sprintf("%dh %dm", g.between(1, 8), g.between(0, 59)),
			Status:     timetracker.StatusCompleted,
		})
	}
	return out
}

// Applicants returns the fixed recruitment pipeline, applied on now.
func Applicants(now time.Time) []recruitment.Applicant {
	return []recruitment.Applicant{
		{
			ID:         "APL002",
			Name:       "Jonathan Baker",
			Role:       "UIUX Designer",
			Email:      "jonbaker@gmail.com",
			Phone:      "(406) 555-0120",
			Address:    "74C Aaliyah River, Bayerhaven",
			Experience: 4,
			Stage:      recruitment.StageInterview,
			Skills:     []recruitment.Skill{{Name: "UI", Score: 90}},
			Stats:      recruitment.Stats{HardSkills: 1029, SoftSkills: 1352, OvrScore: 1174},
			Avatar:     "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=compress&fit=facearea&facepad=2&w=256&h=256&q=80",
			PastExperience: []recruitment.PastExperience{
				{
					Company:     "Drupal, Inc.",
					Role:        "UIUX Designer",
					Duration:    "2022 - 2024 • 2 Years 3 Month",
					Logo:        "https://upload.wikimedia.org/wikipedia/commons/thumb/e/e7/Drupal_icon_vector.svg/1200px-Drupal_icon_vector.svg.png",
					Description: "Worked on interfaces and ran interviews with stakeholders and users to gather feedback on the product.",
				},
				{
					Company:  "Slack, Inc.",
					Role:     "Product Designer",
					Duration: "2020 - 2022 • 2 Years 8 Month",
					Logo:     "https://upload.wikimedia.org/wikipedia/commons/thumb/d/d5/Slack_icon_2019.svg/2048px-Slack_icon_2019.svg.png",
				},
			},
			AppliedDate: now,
		},
		{
			ID:         "APL003",
			Name:       "Floyd Miles",
			Role:       "UIUX Designer",
			Email:      "floyd.miles@example.com",
			Phone:      "(205) 555-0100",
			Address:    "2464 Royal Ln. Mesa, New Jersey",
			Experience: 6,
			Stage:      recruitment.StageApplied,
			Skills:     []recruitment.Skill{{Name: "UI", Score: 85}},
			Stats:      recruitment.Stats{HardSkills: 2394, SoftSkills: 982, OvrScore: 1082},
			Avatar:     "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=compress&fit=facearea&facepad=2&w=256&h=256&q=80",
			PastExperience: []recruitment.PastExperience{
				{
					Company:  "Github, Inc.",
					Role:     "Frontend Dev",
					Duration: "2019 - 2024 • 5 Years 3 Month",
					Logo:     "https://github.githubassets.com/images/modules/logos_page/GitHub-Mark.png",
				},
				{
					Company:  "Spotify Technology SA",
					Role:     "UI Designer",
					Duration: "2018 - 2019 • 1 Years 2 Month",
					Logo:     "https://upload.wikimedia.org/wikipedia/commons/thumb/1/19/Spotify_logo_without_text.svg/2048px-Spotify_logo_without_text.svg.png",
				},
			},
			AppliedDate: now,
		},
		{
			ID:             "APL004",
			Name:           "Jenny Wilson",
			Role:           "UIUX Designer",
			Email:          "jenny.wilson@example.com",
			Phone:          "(303) 555-0105",
			Address:        "2972 Westheimer Rd. Santa Ana, Illinois",
			Experience:     4,
			Stage:          recruitment.StageOffer,
			Skills:         []recruitment.Skill{{Name: "UI", Score: 92}},
			Stats:          recruitment.Stats{HardSkills: 1100, SoftSkills: 1200, OvrScore: 1150},
			Avatar:         "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?auto=compress&fit=facearea&facepad=2&w=256&h=256&q=80",
			PastExperience: []recruitment.PastExperience{},
			AppliedDate:    now,
		},
	}
}

// Tasks returns the seed task list with due dates relative to now.
func Tasks(now time.Time) []tasks.Task {
	return []tasks.Task{
		{ID: "1", Title: "Creating new broadcast message for new Employee", DueDate: tasks.DueIn(now, 2), Status: tasks.StatusPending},
		{ID: "2", Title: "Creating campaign task for Digital Marketing", DueDate: tasks.DueIn(now, 6), Status: tasks.StatusInProgress},
		{ID: "3", Title: "Creating conference meet with stakeholders", DueDate: tasks.DueIn(now, 9), Status: tasks.StatusPending},
		{ID: "4", Title: "Move all finance files to new directory", DueDate: tasks.DueIn(now, 24), Status: tasks.StatusPending},
	}
}

func atTime(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func head[T any](list []T, n int) []T {
	if len(list) < n {
		return list
	}
	return list[:n]
}
