package userservice

import (
	"strings"
	"testing"

	"github.com/sushihentaime/blogsite/internal/common"
)

func TestValidateName(t *testing.T) {
	testCases := []struct {
		name  string
		valid bool
	}{
		{name: "", valid: false},
		{name: "a", valid: true},
		{name: "alice", valid: true},
		{name: "alice smith", valid: true},
		{name: "ålice", valid: true},
		{name: strings.Repeat("a", 50), valid: true},
		{name: strings.Repeat("a", 51), valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validateName(v, tc.name)
			if v.Valid() != tc.valid {
				t.Errorf("expected %v, got %v", tc.valid, v.Valid())
				// print the errors
				for _, e := range v.Errors {
					t.Log(e)
				}
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	testCases := []struct {
		password string
		valid    bool
	}{
		{password: "", valid: false},
		{password: "a", valid: true},
		{password: "pw1", valid: true},
		{password: strings.Repeat("x", 72), valid: true},
		{password: strings.Repeat("x", 73), valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			v := common.NewValidator()
			validatePassword(v, tc.password)
			if v.Valid() != tc.valid {
				t.Errorf("expected %v, got %v", tc.valid, v.Valid())
				for _, e := range v.Errors {
					t.Log(e)
				}
			}
		})
	}
}
