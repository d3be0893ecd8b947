package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness(CodeSlotUnavailable)

	if !IsBusiness(err, CodeSlotUnavailable) {
		t.Error("deveria reconhecer o próprio código")
	}
	if IsBusiness(err, CodeInvalidTransition) {
		t.Error("código diferente não pode casar")
	}
	if IsBusiness(errors.New("boom"), CodeSlotUnavailable) {
		t.Error("erro comum não é erro de negócio")
	}
}

func TestIsExclusionConflict(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"exclusao", &pgconn.PgError{Code: "23P01"}, true},
		{"unique", &pgconn.PgError{Code: "23505"}, true},
		{"exclusao embrulhada", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01"}), true},
		{"unique embrulhado", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), true},
		{"outro codigo pg", &pgconn.PgError{Code: "23503"}, false},
		{"erro comum", errors.New("connection refused"), false},
		{"nil", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsExclusionConflict(tc.err); got != tc.want {
				t.Errorf("IsExclusionConflict = %v, esperava %v", got, tc.want)
			}
		})
	}
}
