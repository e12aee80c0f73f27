package constant

const (
	PqErrorCodeUniqueViolation = "23505"
)

const (
	// DateLayout is the guest-facing calendar date layout (DD.MM.YYYY).
	DateLayout = "02.01.2006"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"

	OtelQueryAttributeKey = "query"
)
