package constant

// Customer type sets differ between registration and update. The two sets
// are kept independent on purpose; do not unify without confirming the
// business rule.
var (
	CustomerTypesOnCreate = []string{"Regular", "Normal"}
	CustomerTypesOnUpdate = []string{"Regular", "Premium"}
)

const (
	RoleOwner    = "owner"
	RoleEmployee = "employee"
)

const (
	JobStatusPending    = "pending"
	JobStatusInProgress = "in_progress"
	JobStatusCompleted  = "completed"
)

var JobStatuses = []string{JobStatusPending, JobStatusInProgress, JobStatusCompleted}

type ContextKey string

const RequestIDKey ContextKey = "request_id"

// Routing keys published to the repairshop.events exchange.
const (
	EventCustomerRegistered = "customer.registered"
	EventEmployeeRegistered = "employee.registered"
	EventJobCreated         = "job.created"
	EventJobStatusChanged   = "job.status_changed"
	EventJobDeleted         = "job.deleted"
)
