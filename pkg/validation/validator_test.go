package validation

import (
	"errors"
	"testing"
)

func TestValidateAddEdgeRequest(t *testing.T) {
	tests := []struct {
		name        string
		req         AddEdgeRequest
		expectError bool
	}{
		{name: "positive length", req: AddEdgeRequest{Length: 10}, expectError: false},
		{name: "length of one", req: AddEdgeRequest{Length: 1}, expectError: false},
		{name: "zero length", req: AddEdgeRequest{Length: 0}, expectError: true},
		{name: "negative length", req: AddEdgeRequest{Length: -5}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAddEdgeRequest(tt.req)
			if tt.expectError && err == nil {
				t.Errorf("ValidateAddEdgeRequest(%+v) = nil, want error", tt.req)
			}
			if !tt.expectError && err != nil {
				t.Errorf("ValidateAddEdgeRequest(%+v) = %v, want nil", tt.req, err)
			}
			if tt.expectError {
				var iae *InvalidArgumentError
				if !errors.As(err, &iae) {
					t.Errorf("error %v is not an *InvalidArgumentError", err)
				}
			}
		})
	}
}

func TestValidatePairwiseDistinct(t *testing.T) {
	tests := []struct {
		name        string
		req         ConnectRequest[string]
		expectError bool
	}{
		{name: "all distinct", req: ConnectRequest[string]{A: "a", Through: "b", B: "c"}, expectError: false},
		{name: "a equals through", req: ConnectRequest[string]{A: "a", Through: "a", B: "c"}, expectError: true},
		{name: "a equals b", req: ConnectRequest[string]{A: "a", Through: "b", B: "a"}, expectError: true},
		{name: "through equals b", req: ConnectRequest[string]{A: "a", Through: "b", B: "b"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePairwiseDistinct(tt.req)
			if tt.expectError && err == nil {
				t.Errorf("ValidatePairwiseDistinct(%+v) = nil, want error", tt.req)
			}
			if !tt.expectError && err != nil {
				t.Errorf("ValidatePairwiseDistinct(%+v) = %v, want nil", tt.req, err)
			}
		})
	}
}

func TestValidateNoSelfEdge(t *testing.T) {
	if err := ValidateNoSelfEdge("a", "b"); err != nil {
		t.Errorf("ValidateNoSelfEdge(a, b) = %v, want nil", err)
	}
	if err := ValidateNoSelfEdge("a", "a"); err == nil {
		t.Error("ValidateNoSelfEdge(a, a) = nil, want error")
	}
}
