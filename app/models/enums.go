package models

// ServiceCategory defines the possible categories for a university service.
type ServiceCategory string

const (
	ServiceAcademic       ServiceCategory = "academic"
	ServiceCertificates   ServiceCategory = "certificates"
	ServiceTechnical      ServiceCategory = "technical"
	ServiceAdministrative ServiceCategory = "administrative"
)

// ServiceStatus defines the possible status values for a university service.
type ServiceStatus string

const (
	ServiceActive      ServiceStatus = "active"
	ServiceInactive    ServiceStatus = "inactive"
	ServiceMaintenance ServiceStatus = "maintenance"
)

// ClubCategory defines the possible categories for a student club.
type ClubCategory string

const (
	ClubCultural   ClubCategory = "cultural"
	ClubSports     ClubCategory = "sports"
	ClubScientific ClubCategory = "scientific"
	ClubSocial     ClubCategory = "social"
	ClubArtistic   ClubCategory = "artistic"
	ClubTechnical  ClubCategory = "technical"
	ClubReligious  ClubCategory = "religious"
	ClubVoluntary  ClubCategory = "voluntary"
)

// ClubStatus defines the possible status values for a student club.
type ClubStatus string

const (
	ClubActive     ClubStatus = "active"
	ClubInactive   ClubStatus = "inactive"
	ClubRecruiting ClubStatus = "recruiting"
)

// ActivityType defines the possible types for a campus activity.
type ActivityType string

const (
	ActivityEvent        ActivityType = "event"
	ActivityWorkshop     ActivityType = "workshop"
	ActivityCompetition  ActivityType = "competition"
	ActivitySeminar      ActivityType = "seminar"
	ActivityTrip         ActivityType = "trip"
	ActivityCulturalType ActivityType = "cultural"
	ActivitySportsType   ActivityType = "sports"
)

// ActivityStatus defines the lifecycle status of a campus activity.
type ActivityStatus string

const (
	ActivityPlanned   ActivityStatus = "planned"
	ActivityOpen      ActivityStatus = "open"
	ActivityClosed    ActivityStatus = "closed"
	ActivityOngoing   ActivityStatus = "ongoing"
	ActivityCompleted ActivityStatus = "completed"
	ActivityCancelled ActivityStatus = "cancelled"
)

// AppointmentStatus defines the possible status values for an appointment.
// Any status can be set from the edit screen; there is no transition graph.
type AppointmentStatus string

const (
	AppointmentScheduled   AppointmentStatus = "scheduled"
	AppointmentConfirmed   AppointmentStatus = "confirmed"
	AppointmentCompleted   AppointmentStatus = "completed"
	AppointmentCancelled   AppointmentStatus = "cancelled"
	AppointmentRescheduled AppointmentStatus = "rescheduled"
)

// PaymentType defines the kind of fee a payment covers.
type PaymentType string

const (
	PaymentTuition      PaymentType = "tuition"
	PaymentRegistration PaymentType = "registration"
	PaymentExam         PaymentType = "exam"
	PaymentLibrary      PaymentType = "library"
	PaymentFine         PaymentType = "fine"
	PaymentOther        PaymentType = "other"
)

// PaymentStatus defines the status of a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentOverdue   PaymentStatus = "overdue"
	PaymentCancelled PaymentStatus = "cancelled"
)

// TeacherPosition defines the academic rank of a teacher.
type TeacherPosition string

const (
	Professor          TeacherPosition = "professor"
	AssociateProfessor TeacherPosition = "associate_professor"
	AssistantProfessor TeacherPosition = "assistant_professor"
	Lecturer           TeacherPosition = "lecturer"
	AssistantLecturer  TeacherPosition = "assistant_lecturer"
	TeachingAssistant  TeacherPosition = "teaching_assistant"
)

// StudentStatus defines the enrollment status of a student.
type StudentStatus string

const (
	StudentActive    StudentStatus = "active"
	StudentInactive  StudentStatus = "inactive"
	StudentSuspended StudentStatus = "suspended"
	StudentGraduated StudentStatus = "graduated"
)
