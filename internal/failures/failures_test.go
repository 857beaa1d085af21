package failures

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"not found", NotFound("missing"), KindNotFound},
		{"authorization", Authorization("forbidden"), KindAuthorization},
		{"conflict", Conflict("duplicate"), KindConflict},
		{"invalid request", InvalidRequest("bad"), KindInvalidRequest},
		{"unsupported model", UnsupportedModel("nope"), KindUnsupportedModel},
		{"generation", Generation("upstream", errors.New("boom")), KindGeneration},
		{"plain error", errors.New("plain"), KindUnknown},
		{"nil", nil, KindUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := KindOf(tc.err); got != tc.want {
				t.Errorf("KindOf = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("handling request: %w", NotFound("Team does not exist"))
	if !IsKind(err, KindNotFound) {
		t.Error("kind lost through fmt.Errorf wrapping")
	}
}

func TestCausePreserved(t *testing.T) {
	cause := errors.New("connection refused")
	err := Generation("Error generating image", cause)
	if !errors.Is(err, cause) {
		t.Error("cause not reachable via errors.Is")
	}
	if err.Error() != "Error generating image" {
		t.Errorf("message = %q, want the clean message only", err.Error())
	}
}
