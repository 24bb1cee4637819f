package apperrors

import (
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestFromDB(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"record not found", gorm.ErrRecordNotFound, ErrNotFound},
		{"duplicated key", gorm.ErrDuplicatedKey, ErrDuplicate},
		{"check constraint", gorm.ErrCheckConstraintViolated, ErrValidation},
		{"foreign key", gorm.ErrForeignKeyViolated, ErrNotFound},
		{"anything else", errors.New("connection refused"), ErrStoreUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FromDB(tc.in)
			if tc.want == nil {
				if got != nil {
					t.Errorf("FromDB(nil) = %v, want nil", got)
				}
				return
			}
			if !errors.Is(got, tc.want) {
				t.Errorf("FromDB(%v) = %v, want wrapped %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestHelpersWrapSentinels(t *testing.T) {
	if !errors.Is(Validationf("bad %s", "input"), ErrValidation) {
		t.Error("Validationf should wrap ErrValidation")
	}
	if !errors.Is(Duplicatef("already liked"), ErrDuplicate) {
		t.Error("Duplicatef should wrap ErrDuplicate")
	}
	if !errors.Is(NotFoundf("missing"), ErrNotFound) {
		t.Error("NotFoundf should wrap ErrNotFound")
	}
	if !errors.Is(Forbiddenf("not yours"), ErrForbidden) {
		t.Error("Forbiddenf should wrap ErrForbidden")
	}
}
