package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// InvalidArgumentError is the typed error for spec.md §7's hard-failure
// class: non-positive or non-integer lengths, self-edges, and non-distinct
// connect triples. It is distinct from a refusal (plain bool)
// and from a not-found result (zero value + bool): an InvalidArgumentError
// means the caller passed something the API can never accept, independent
// of graph state. Out-of-range split positions are a refusal, not this
// error class — see trackops.SplitEdge.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// validate is a singleton validator instance, reused across DTOs the same
// way the teacher's pkg/validation does for its NodeRequest/EdgeRequest.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// AddEdgeRequest is validated before track.Graph.AddEdge mutates anything.
type AddEdgeRequest struct {
	Length int `validate:"required,gt=0"`
}

// ValidateAddEdgeRequest checks that Length is a positive integer, per
// spec.md §4.2's "Rejects length <= 0 or non-integer".
func ValidateAddEdgeRequest(req AddEdgeRequest) error {
	if err := validate.Struct(req); err != nil {
		return formatValidationError("Length", err)
	}
	return nil
}

// ConnectRequest is validated before track.Graph.Connect acts;
// track.Graph.Disconnect returns only a bool and does not check its triple
// for distinctness. Go's
// type system already rules out "non-integer" here; what struct tags can't
// express is pairwise distinctness across three values of a generic key
// type, so that check is a plain function rather than a validate tag.
type ConnectRequest[K comparable] struct {
	A       K
	Through K
	B       K
}

// ValidatePairwiseDistinct checks that A, Through, and B are pairwise
// distinct, per spec.md §4.2's "Requires a, through, b pairwise distinct".
func ValidatePairwiseDistinct[K comparable](req ConnectRequest[K]) error {
	if req.A == req.Through || req.A == req.B || req.Through == req.B {
		return &InvalidArgumentError{
			Field:  "connect",
			Reason: "a, through, and b must be pairwise distinct",
		}
	}
	return nil
}

// ValidateNoSelfEdge checks the I7 invariant ("no self-edges") for a raw key
// pair, ahead of AddEdge ever allocating a Node or Edge record.
func ValidateNoSelfEdge[K comparable](a, b K) error {
	if a == b {
		return &InvalidArgumentError{
			Field:  "addEdge",
			Reason: "low and high must be distinct nodes",
		}
	}
	return nil
}

// formatValidationError converts validator errors into an InvalidArgumentError,
// the same translation the teacher's formatValidationError performs for its
// own NodeRequest/EdgeRequest DTOs.
func formatValidationError(field string, err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &InvalidArgumentError{Field: field, Reason: err.Error()}
	}

	for _, e := range validationErrs {
		switch e.Tag() {
		case "required":
			return &InvalidArgumentError{Field: field, Reason: "is required"}
		case "gt":
			return &InvalidArgumentError{Field: field, Reason: fmt.Sprintf("must be greater than %s", e.Param())}
		default:
			return &InvalidArgumentError{Field: field, Reason: fmt.Sprintf("failed validation (%s)", e.Tag())}
		}
	}

	return err
}
