package payload

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jellydator/validation"
)

// DecodeValidator turns JSON request bodies into payload structs. Unknown
// fields are rejected, and payloads that carry validation rules are run
// through them after decoding.
type DecodeValidator struct{}

func (dv DecodeValidator) DecodeAndValidateJSONPayload(r *http.Request, object any) error {
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding request body: %w", err)
	}

	return dv.validatePayload(object)
}

func (dv *DecodeValidator) validatePayload(object any) error {
	v, ok := object.(validation.Validatable)
	if !ok {
		// payload carries no rules
		return nil
	}

	if err := v.Validate(); err != nil {
		return fmt.Errorf("validating request body: %w", err)
	}

	return nil
}
