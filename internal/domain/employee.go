package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Employee is the persisted staff profile. Every field apart from ID and FullName is free text;
// dates and numbers are kept as strings exactly as entered.
type Employee struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`

	// role and employment
	Roles           string `json:"roles"`
	EduStartDate    string `json:"eduStartDate"`
	EduSeniority    string `json:"eduSeniority"`
	SchoolStartDate string `json:"schoolStartDate"`
	SchoolSeniority string `json:"schoolSeniority"`
	Team            string `json:"team"`
	Status          string `json:"status"`

	// development
	ManagementPotential string `json:"managementPotential"`
	CareerAspirations   string `json:"careerAspirations"`
	AnnualGoal          string `json:"annualGoal"`
	CoordinatorFeedback string `json:"coordinatorFeedback"`

	// welfare
	RetentionStatus string `json:"retentionStatus"`
	AbsenceTrend    string `json:"absenceTrend"`
	BurnoutLevel    string `json:"burnoutLevel"`
	PrevCheckinDate string `json:"prevCheckinDate"`
	PrevCheckinBy   string `json:"prevCheckinBy"`
	LastCheckinDate string `json:"lastCheckinDate"`
	LastCheckinBy   string `json:"lastCheckinBy"`
	CheckinNotes    string `json:"checkinNotes"`
	Illness         string `json:"illness"`
	LifeEvents      string `json:"lifeEvents"`

	// compensation
	SalaryReform       string `json:"salaryReform"`
	Benefits           string `json:"benefits"`
	CurrentGrade       string `json:"currentGrade"`
	GradePromotionYear string `json:"gradePromotionYear"`
	SalaryIssues       string `json:"salaryIssues"`

	// misc
	SmallThing   string `json:"smallThing"`
	Committees   string `json:"committees"`
	BirthDate    string `json:"birthDate"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	GeneralNotes string `json:"generalNotes"`
}

// NewEmployeeID mints an opaque, time-ordered identifier.
func NewEmployeeID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// NewEmployee builds a blank record whose categorical fields carry the defaults of the given
// taxonomy. The taxonomy must be the current one so defaults follow admin edits.
func NewEmployee(t Taxonomy) Employee {
	sem := t.Resolve()
	return Employee{
		ID:                  NewEmployeeID(),
		Status:              sem.ActiveStatus,
		ManagementPotential: sem.DefaultPotential,
		RetentionStatus:     sem.DefaultRetention,
		AbsenceTrend:        sem.DefaultAbsenceTrend,
		BurnoutLevel:        sem.DefaultBurnout,
	}
}

// HasName reports whether the required full name is present.
func (e Employee) HasName() bool {
	return strings.TrimSpace(e.FullName) != ""
}

// NeedsCheckin reports whether no check-in has been recorded yet.
func (e Employee) NeedsCheckin() bool {
	return e.LastCheckinDate == ""
}
