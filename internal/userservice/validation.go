package userservice

import (
	"github.com/sushihentaime/blogsite/internal/common"
)

func validateName(v *common.Validator, name string) {
	v.Check(name != "", "name", "must be provided")
	v.Check(v.CheckStringLength(name, 1, 50), "name", "must be at most 50 characters long")
}

// bcrypt ignores everything past 72 bytes, so longer passwords are rejected.
func validatePassword(v *common.Validator, password string) {
	v.Check(password != "", "password", "must be provided")
	v.Check(len(password) <= 72, "password", "must not be more than 72 bytes long")
}

func validateInt(v *common.Validator, num int, name string) {
	v.Check(num > 0, name, "must be greater than zero")
}
