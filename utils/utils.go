package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"contributorkpi/models"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New()
	// Report JSON field names instead of Go field names
	Validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// DecodeAndValidate decodes the request body into v and validates it.
// On failure the error response has already been written.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		HandleMessageResponse(w, "Invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return err
	}
	if err := Validate.Struct(v); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			HandleMessageResponse(w, err.Error(), http.StatusBadRequest)
			return err
		}

		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			field := strings.SplitN(e.Namespace(), ".", 2)
			errorMessages[field[len(field)-1]] = e.Tag()
		}
		HandleValidationResponse(w, http.StatusBadRequest, errorMessages)
		return err
	}
	return nil
}

func HandleMessageResponse(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, models.MessageResponse{StatusCode: statusCode, Message: message})
}

func HandleValidationResponse(w http.ResponseWriter, statusCode int, validationErrors map[string]string) {
	writeJSON(w, statusCode, models.ValidationResponse{StatusCode: statusCode, Errors: validationErrors})
}

func HandleDataResponse(w http.ResponseWriter, message string, data interface{}, statusCode int) {
	writeJSON(w, statusCode, models.DataResponse{StatusCode: statusCode, Message: message, Data: data})
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}
