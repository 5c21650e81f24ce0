package user

import "time"

// User represents a user record in the store.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
	Job       string `json:"job"`
}

// SupportInfo is the static block attached to single-user reads.
type SupportInfo struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// Support is built once and shared read-only by every request.
var Support = SupportInfo{
	URL:  "https://reqres.in/#support-heading",
	Text: "To keep ReqRes free, contributions towards server costs are appreciated!",
}

// CreateRequest is the validated body of POST /api/users/.
type CreateRequest struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// UpdateRequest is the validated body of PATCH /api/users/{id}.
type UpdateRequest = CreateRequest

// UserResponse wraps a single user.
type UserResponse struct {
	Data    *User       `json:"data"`
	Support SupportInfo `json:"support"`
}

// CreateResponse echoes a freshly created user.
type CreateResponse struct {
	Name      string `json:"name"`
	Job       string `json:"job"`
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
}

// UpdateResponse echoes the mutable fields after an update.
type UpdateResponse struct {
	Name      string `json:"name"`
	Job       string `json:"job"`
	UpdatedAt string `json:"updatedAt"`
}

// TimestampLayout renders UTC instants with millisecond precision and a
// trailing Z, e.g. 2024-05-01T09:30:00.123Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// newFromCreate maps the public create shape onto a record. Fields the
// public contract does not carry stay empty.
func newFromCreate(req CreateRequest) *User {
	return &User{
		Email:     "",
		FirstName: req.Name,
		LastName:  "",
		Avatar:    "",
		Job:       req.Job,
	}
}
