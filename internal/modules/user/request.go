package user

import (
	"net/http"

	"github.com/georgemunganga/reqres-users/internal/httpx"
)

// decodeUserRequest validates a create/update body: a JSON object with
// string fields name and job. Every offending field is reported at once.
func decodeUserRequest(r *http.Request) (CreateRequest, error) {
	obj, err := httpx.DecodeObject(r)
	if err != nil {
		return CreateRequest{}, err
	}
	var verr httpx.ValidationError
	req := CreateRequest{
		Name: obj.String("name", &verr),
		Job:  obj.String("job", &verr),
	}
	if err := verr.Err(); err != nil {
		return CreateRequest{}, err
	}
	return req, nil
}
