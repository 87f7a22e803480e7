package interchange

import "github.com/spec-kit/hr-service/internal/domain"

// column binds an exported header to the record field it carries.
type column struct {
	header string
	field  func(*domain.Employee) *string
}

// columns is the fixed interchange layout. Order is the export order.
var columns = []column{
	{"שם מלא", func(e *domain.Employee) *string { return &e.FullName }},
	{"תפקיד", func(e *domain.Employee) *string { return &e.Roles }},
	{"תאריך תחילת עבודה בחינוך", func(e *domain.Employee) *string { return &e.EduStartDate }},
	{"ותק בחינוך", func(e *domain.Employee) *string { return &e.EduSeniority }},
	{`תאריך תחילת עבודה בביה"ס`, func(e *domain.Employee) *string { return &e.SchoolStartDate }},
	{`ותק בביה"ס`, func(e *domain.Employee) *string { return &e.SchoolSeniority }},
	{"שיוך ארגוני", func(e *domain.Employee) *string { return &e.Team }},
	{"סטטוס", func(e *domain.Employee) *string { return &e.Status }},
	{"פוטנציאל ניהולי", func(e *domain.Employee) *string { return &e.ManagementPotential }},
	{"שאיפות קריירה", func(e *domain.Employee) *string { return &e.CareerAspirations }},
	{"יעד שנתי", func(e *domain.Employee) *string { return &e.AnnualGoal }},
	{"משוב רכזים", func(e *domain.Employee) *string { return &e.CoordinatorFeedback }},
	{"שימור", func(e *domain.Employee) *string { return &e.RetentionStatus }},
	{"מגמת היעדרויות", func(e *domain.Employee) *string { return &e.AbsenceTrend }},
	{"שחיקה", func(e *domain.Employee) *string { return &e.BurnoutLevel }},
	{"תאריך שיחה קודמת", func(e *domain.Employee) *string { return &e.PrevCheckinDate }},
	{"מי ביצע קודם", func(e *domain.Employee) *string { return &e.PrevCheckinBy }},
	{"תאריך שיחה אחרונה", func(e *domain.Employee) *string { return &e.LastCheckinDate }},
	{"מי ביצע אחרון", func(e *domain.Employee) *string { return &e.LastCheckinBy }},
	{"הערות שיחות", func(e *domain.Employee) *string { return &e.CheckinNotes }},
	{"מחלה", func(e *domain.Employee) *string { return &e.Illness }},
	{"אירועי חיים", func(e *domain.Employee) *string { return &e.LifeEvents }},
	{"רפורמת שכר", func(e *domain.Employee) *string { return &e.SalaryReform }},
	{"גמולים", func(e *domain.Employee) *string { return &e.Benefits }},
	{"דרגה", func(e *domain.Employee) *string { return &e.CurrentGrade }},
	{"צפי דרגה", func(e *domain.Employee) *string { return &e.GradePromotionYear }},
	{"פניות שכר", func(e *domain.Employee) *string { return &e.SalaryIssues }},
	{"הדבר הקטן", func(e *domain.Employee) *string { return &e.SmallThing }},
	{"ועדים", func(e *domain.Employee) *string { return &e.Committees }},
	{"תאריך לידה", func(e *domain.Employee) *string { return &e.BirthDate }},
	{"נייד", func(e *domain.Employee) *string { return &e.Phone }},
	{"מייל", func(e *domain.Employee) *string { return &e.Email }},
}

var columnByHeader = func() map[string]int {
	m := make(map[string]int, len(columns))
	for i, c := range columns {
		m[c.header] = i
	}
	return m
}()

// Headers returns the interchange header row in export order.
func Headers() []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.header
	}
	return out
}

// Row returns the values of e in export order.
func Row(e domain.Employee) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = *c.field(&e)
	}
	return out
}
