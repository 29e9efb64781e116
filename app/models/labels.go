package models

// Badge is the display mapping for a status or category value: the Arabic
// label shown in the portal and the color class the client renders it with.
type Badge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// UnknownBadge is returned for any value outside the known set. Lookups are
// total: unknown values render gray, they are never rejected.
var UnknownBadge = Badge{Label: "غير معروف", Color: "gray"}

var serviceStatusBadges = map[string]Badge{
	"active":      {Label: "نشطة", Color: "green"},
	"inactive":    {Label: "غير نشطة", Color: "gray"},
	"maintenance": {Label: "قيد الصيانة", Color: "amber"},
}

var serviceCategoryBadges = map[string]Badge{
	"academic":       {Label: "أكاديمية", Color: "blue"},
	"certificates":   {Label: "شهادات", Color: "purple"},
	"technical":      {Label: "تقنية", Color: "cyan"},
	"administrative": {Label: "إدارية", Color: "orange"},
}

var clubStatusBadges = map[string]Badge{
	"active":     {Label: "نشط", Color: "green"},
	"inactive":   {Label: "غير نشط", Color: "gray"},
	"recruiting": {Label: "فتح باب الانضمام", Color: "blue"},
}

var clubCategoryBadges = map[string]Badge{
	"cultural":   {Label: "ثقافي", Color: "purple"},
	"sports":     {Label: "رياضي", Color: "green"},
	"scientific": {Label: "علمي", Color: "blue"},
	"social":     {Label: "اجتماعي", Color: "pink"},
	"artistic":   {Label: "فني", Color: "amber"},
	"technical":  {Label: "تقني", Color: "cyan"},
	"religious":  {Label: "ديني", Color: "teal"},
	"voluntary":  {Label: "تطوعي", Color: "orange"},
}

var activityTypeBadges = map[string]Badge{
	"event":       {Label: "فعالية", Color: "blue"},
	"workshop":    {Label: "ورشة عمل", Color: "purple"},
	"competition": {Label: "مسابقة", Color: "amber"},
	"seminar":     {Label: "ندوة", Color: "cyan"},
	"trip":        {Label: "رحلة", Color: "green"},
	"cultural":    {Label: "ثقافي", Color: "pink"},
	"sports":      {Label: "رياضي", Color: "teal"},
}

var activityStatusBadges = map[string]Badge{
	"planned":   {Label: "مخطط لها", Color: "gray"},
	"open":      {Label: "التسجيل مفتوح", Color: "green"},
	"closed":    {Label: "التسجيل مغلق", Color: "amber"},
	"ongoing":   {Label: "جارية", Color: "blue"},
	"completed": {Label: "مكتملة", Color: "teal"},
	"cancelled": {Label: "ملغاة", Color: "red"},
}

var appointmentStatusBadges = map[string]Badge{
	"scheduled":   {Label: "مجدول", Color: "blue"},
	"confirmed":   {Label: "مؤكد", Color: "green"},
	"completed":   {Label: "مكتمل", Color: "teal"},
	"cancelled":   {Label: "ملغي", Color: "red"},
	"rescheduled": {Label: "معاد جدولته", Color: "amber"},
}

var paymentStatusBadges = map[string]Badge{
	"pending":   {Label: "قيد الانتظار", Color: "amber"},
	"paid":      {Label: "مدفوعة", Color: "green"},
	"overdue":   {Label: "متأخرة", Color: "red"},
	"cancelled": {Label: "ملغاة", Color: "gray"},
}

var paymentTypeBadges = map[string]Badge{
	"tuition":      {Label: "رسوم دراسية", Color: "blue"},
	"registration": {Label: "رسوم تسجيل", Color: "purple"},
	"exam":         {Label: "رسوم امتحان", Color: "amber"},
	"library":      {Label: "رسوم مكتبة", Color: "cyan"},
	"fine":         {Label: "غرامة", Color: "red"},
	"other":        {Label: "أخرى", Color: "gray"},
}

var teacherPositionBadges = map[string]Badge{
	"professor":           {Label: "أستاذ", Color: "purple"},
	"associate_professor": {Label: "أستاذ مشارك", Color: "blue"},
	"assistant_professor": {Label: "أستاذ مساعد", Color: "cyan"},
	"lecturer":            {Label: "محاضر", Color: "green"},
	"assistant_lecturer":  {Label: "محاضر مساعد", Color: "teal"},
	"teaching_assistant":  {Label: "معيد", Color: "amber"},
}

var studentStatusBadges = map[string]Badge{
	"active":    {Label: "منتظم", Color: "green"},
	"inactive":  {Label: "غير منتظم", Color: "gray"},
	"suspended": {Label: "موقوف", Color: "red"},
	"graduated": {Label: "متخرج", Color: "blue"},
}

func badgeFor(m map[string]Badge, value string) Badge {
	if b, ok := m[value]; ok {
		return b
	}
	return UnknownBadge
}

func ServiceStatusBadge(s string) Badge     { return badgeFor(serviceStatusBadges, s) }
func ServiceCategoryBadge(s string) Badge   { return badgeFor(serviceCategoryBadges, s) }
func ClubStatusBadge(s string) Badge        { return badgeFor(clubStatusBadges, s) }
func ClubCategoryBadge(s string) Badge      { return badgeFor(clubCategoryBadges, s) }
func ActivityTypeBadge(s string) Badge      { return badgeFor(activityTypeBadges, s) }
func ActivityStatusBadge(s string) Badge    { return badgeFor(activityStatusBadges, s) }
func AppointmentStatusBadge(s string) Badge { return badgeFor(appointmentStatusBadges, s) }
func PaymentStatusBadge(s string) Badge     { return badgeFor(paymentStatusBadges, s) }
func PaymentTypeBadge(s string) Badge       { return badgeFor(paymentTypeBadges, s) }
func TeacherPositionBadge(s string) Badge   { return badgeFor(teacherPositionBadges, s) }
func StudentStatusBadge(s string) Badge     { return badgeFor(studentStatusBadges, s) }
